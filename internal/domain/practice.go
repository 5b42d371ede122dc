package domain

import (
	"time"

	"github.com/google/uuid"
)

// LearningStatus is the scheduling state of a practice card.
type LearningStatus string

const (
	LearningStatusNew      LearningStatus = "NEW"
	LearningStatusLearning LearningStatus = "LEARNING"
	LearningStatusReview   LearningStatus = "REVIEW"
	LearningStatusMastered LearningStatus = "MASTERED"
)

func (s LearningStatus) String() string { return string(s) }

func (s LearningStatus) IsValid() bool {
	switch s {
	case LearningStatusNew, LearningStatusLearning, LearningStatusReview, LearningStatusMastered:
		return true
	}
	return false
}

// ReviewGrade is how well the learner recalled a word.
type ReviewGrade string

const (
	ReviewGradeAgain ReviewGrade = "AGAIN"
	ReviewGradeHard  ReviewGrade = "HARD"
	ReviewGradeGood  ReviewGrade = "GOOD"
	ReviewGradeEasy  ReviewGrade = "EASY"
)

func (g ReviewGrade) String() string { return string(g) }

func (g ReviewGrade) IsValid() bool {
	switch g {
	case ReviewGradeAgain, ReviewGradeHard, ReviewGradeGood, ReviewGradeEasy:
		return true
	}
	return false
}

// PracticeCard is the scheduling state of one vocabulary word. A word that
// was never reviewed has no stored card; NewPracticeCard stands in for it.
type PracticeCard struct {
	WordID         uuid.UUID
	UserID         uuid.UUID
	Status         LearningStatus
	LearningStep   int
	IntervalDays   int
	EaseFactor     float64
	NextReviewAt   time.Time
	Reviews        int
	Lapses         int
	LastReviewedAt *time.Time
	UpdatedAt      time.Time
}

// NewPracticeCard returns the card of a word that is due now.
func NewPracticeCard(w VocabularyWord, ease float64, now time.Time) PracticeCard {
	return PracticeCard{
		WordID:       w.ID,
		UserID:       w.UserID,
		Status:       LearningStatusNew,
		EaseFactor:   ease,
		NextReviewAt: now,
		UpdatedAt:    now,
	}
}

// IsDue reports whether the card should be shown at now.
func (c PracticeCard) IsDue(now time.Time) bool {
	return !c.NextReviewAt.After(now)
}

// PracticeReview is one graded answer, kept as the review history of a word.
type PracticeReview struct {
	ID           uuid.UUID
	WordID       uuid.UUID
	UserID       uuid.UUID
	Grade        ReviewGrade
	PrevStatus   LearningStatus
	PrevInterval int
	DurationMs   *int
	ReviewedAt   time.Time
}
