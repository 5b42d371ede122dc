// Package model holds the GraphQL object types. Field json tags carry the
// schema field names.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/nenadmarinkovic/sprachenwald/internal/domain"
	"github.com/nenadmarinkovic/sprachenwald/internal/render"
)

type Lesson struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Slug      string    `json:"slug"`
	Order     int       `json:"order"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// Blocks is non-nil when the lesson was loaded together with its blocks.
	Blocks []BlockLink `json:"-"`
}

type BlockLink struct {
	ID    uuid.UUID `json:"id"`
	Type  string    `json:"type"`
	Title string    `json:"title"`
	Slug  string    `json:"slug"`
	Order int       `json:"order"`
}

type BlockView struct {
	LessonSlug  string            `json:"lessonSlug"`
	LessonTitle string            `json:"lessonTitle"`
	Block       render.Block      `json:"block"`
	Candidates  []VocabularyEntry `json:"candidates"`
	Prev        *PagerLink        `json:"prev"`
	Next        *PagerLink        `json:"next"`
}

type PagerLink struct {
	LessonSlug string `json:"lessonSlug"`
	BlockSlug  string `json:"blockSlug"`
	Title      string `json:"title"`
	Type       string `json:"type"`
}

type VocabularyEntry struct {
	German       string `json:"german"`
	Serbian      string `json:"serbian"`
	Article      string `json:"article"`
	PartOfSpeech string `json:"partOfSpeech"`
	Info         string `json:"info"`
}

type User struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
	Name  string    `json:"name"`
	Role  string    `json:"role"`
}

type VocabularyTab struct {
	Tab   string           `json:"tab"`
	Words []VocabularyWord `json:"words"`
}

type VocabularyWord struct {
	ID           uuid.UUID `json:"id"`
	LessonID     uuid.UUID `json:"lessonId"`
	German       string    `json:"german"`
	Serbian      string    `json:"serbian"`
	Article      string    `json:"article"`
	PartOfSpeech string    `json:"partOfSpeech"`
	Info         string    `json:"info"`
	Type         string    `json:"type"`
	AddedAt      time.Time `json:"addedAt"`
}

type PracticeDeck struct {
	Cards         []PracticeCard `json:"cards"`
	Due           int            `json:"due"`
	Total         int            `json:"total"`
	ReviewedToday int            `json:"reviewedToday"`
}

type PracticeCard struct {
	Word           VocabularyWord        `json:"word"`
	Status         domain.LearningStatus `json:"status"`
	NextReviewAt   time.Time             `json:"nextReviewAt"`
	IntervalDays   int                   `json:"intervalDays"`
	Reviews        int                   `json:"reviews"`
	Lapses         int                   `json:"lapses"`
	LastReviewedAt *time.Time            `json:"lastReviewedAt"`
}

type PracticeReview struct {
	ID           uuid.UUID             `json:"id"`
	Grade        domain.ReviewGrade    `json:"grade"`
	PrevStatus   domain.LearningStatus `json:"prevStatus"`
	PrevInterval int                   `json:"prevInterval"`
	DurationMs   *int                  `json:"durationMs"`
	ReviewedAt   time.Time             `json:"reviewedAt"`
}
