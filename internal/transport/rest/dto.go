package rest

import (
	"time"

	"github.com/nenadmarinkovic/sprachenwald/internal/domain"
	"github.com/nenadmarinkovic/sprachenwald/internal/render"
	"github.com/nenadmarinkovic/sprachenwald/internal/service/block"
	"github.com/nenadmarinkovic/sprachenwald/internal/service/practice"
	"github.com/nenadmarinkovic/sprachenwald/internal/service/vocabulary"
)

type lessonResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Slug      string    `json:"slug"`
	Order     int       `json:"order"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toLessonResponse(l domain.Lesson) lessonResponse {
	return lessonResponse{
		ID:        l.ID.String(),
		Title:     l.Title,
		Slug:      l.Slug,
		Order:     l.Order,
		CreatedAt: l.CreatedAt,
		UpdatedAt: l.UpdatedAt,
	}
}

func toLessonResponses(ls []domain.Lesson) []lessonResponse {
	out := make([]lessonResponse, 0, len(ls))
	for _, l := range ls {
		out = append(out, toLessonResponse(l))
	}
	return out
}

// blockResponse is the full stored form of a block, used by the admin UI.
type blockResponse struct {
	ID          string                   `json:"id"`
	LessonID    string                   `json:"lessonId"`
	Type        domain.BlockType         `json:"type"`
	Title       string                   `json:"title"`
	Slug        string                   `json:"slug"`
	Order       int                      `json:"order"`
	Content     []domain.ContentItem     `json:"content,omitempty"`
	VideoURL    string                   `json:"videoUrl,omitempty"`
	Description string                   `json:"description,omitempty"`
	Quizzes     []domain.Quiz            `json:"quizzes,omitempty"`
	Words       []domain.VocabularyEntry `json:"words,omitempty"`
	UpdatedAt   time.Time                `json:"updatedAt"`
}

func toBlockResponse(b domain.Block) blockResponse {
	return blockResponse{
		ID:          b.ID.String(),
		LessonID:    b.LessonID.String(),
		Type:        b.Type,
		Title:       b.Title,
		Slug:        b.Slug,
		Order:       b.Order,
		Content:     b.Content,
		VideoURL:    b.VideoURL,
		Description: b.Description,
		Quizzes:     b.Quizzes,
		Words:       b.Words,
		UpdatedAt:   b.UpdatedAt,
	}
}

func toBlockResponses(bs []domain.Block) []blockResponse {
	out := make([]blockResponse, 0, len(bs))
	for _, b := range bs {
		out = append(out, toBlockResponse(b))
	}
	return out
}

// blockLink is a block as listed on the lesson page.
type blockLink struct {
	Type  domain.BlockType `json:"type"`
	Title string           `json:"title"`
	Slug  string           `json:"slug"`
}

type lessonPageResponse struct {
	Lesson lessonResponse `json:"lesson"`
	Blocks []blockLink    `json:"blocks"`
}

type summaryResponse struct {
	Block   blockResponse  `json:"block"`
	Preview render.Preview `json:"preview"`
}

func toSummaryResponses(ss []block.Summary) []summaryResponse {
	out := make([]summaryResponse, 0, len(ss))
	for _, s := range ss {
		out = append(out, summaryResponse{Block: toBlockResponse(s.Block), Preview: s.Preview})
	}
	return out
}

type blockViewResponse struct {
	LessonSlug  string                   `json:"lessonSlug"`
	LessonTitle string                   `json:"lessonTitle"`
	Block       render.Block             `json:"block"`
	Candidates  []domain.VocabularyEntry `json:"candidates"`
	Pager       domain.Pager             `json:"pager"`
}

func toBlockViewResponse(v block.View) blockViewResponse {
	candidates := v.Candidates
	if candidates == nil {
		candidates = []domain.VocabularyEntry{}
	}
	return blockViewResponse{
		LessonSlug:  v.LessonSlug,
		LessonTitle: v.LessonTitle,
		Block:       v.Block,
		Candidates:  candidates,
		Pager:       v.Pager,
	}
}

type vocabularyWordResponse struct {
	ID           string              `json:"id"`
	LessonID     string              `json:"lessonId"`
	German       string              `json:"german"`
	Serbian      string              `json:"serbian"`
	Article      string              `json:"article,omitempty"`
	PartOfSpeech domain.PartOfSpeech `json:"partOfSpeech,omitempty"`
	Info         string              `json:"info,omitempty"`
	Type         domain.PartOfSpeech `json:"type,omitempty"`
	AddedAt      time.Time           `json:"addedAt"`
}

func toVocabularyWordResponse(w domain.VocabularyWord) vocabularyWordResponse {
	return vocabularyWordResponse{
		ID:           w.ID.String(),
		LessonID:     w.LessonID.String(),
		German:       w.German,
		Serbian:      w.Serbian,
		Article:      w.Article,
		PartOfSpeech: w.PartOfSpeech,
		Info:         w.Info,
		Type:         w.Type,
		AddedAt:      w.AddedAt,
	}
}

func toVocabularyWordResponses(ws []domain.VocabularyWord) []vocabularyWordResponse {
	out := make([]vocabularyWordResponse, 0, len(ws))
	for _, w := range ws {
		out = append(out, toVocabularyWordResponse(w))
	}
	return out
}

type tabResponse struct {
	Tab   domain.VocabularyTab     `json:"tab"`
	Words []vocabularyWordResponse `json:"words"`
}

func toTabResponses(gs []vocabulary.TabGroup) []tabResponse {
	out := make([]tabResponse, 0, len(gs))
	for _, g := range gs {
		out = append(out, tabResponse{Tab: g.Tab, Words: toVocabularyWordResponses(g.Words)})
	}
	return out
}

// practiceCardResponse is one flashcard: German and Info on the front,
// Serbian on the back.
type practiceCardResponse struct {
	Word           vocabularyWordResponse `json:"word"`
	Status         domain.LearningStatus  `json:"status"`
	NextReviewAt   time.Time              `json:"nextReviewAt"`
	IntervalDays   int                    `json:"intervalDays"`
	Reviews        int                    `json:"reviews"`
	Lapses         int                    `json:"lapses"`
	LastReviewedAt *time.Time             `json:"lastReviewedAt,omitempty"`
}

func toPracticeCardResponse(c practice.Card) practiceCardResponse {
	return practiceCardResponse{
		Word:           toVocabularyWordResponse(c.Word),
		Status:         c.Schedule.Status,
		NextReviewAt:   c.Schedule.NextReviewAt,
		IntervalDays:   c.Schedule.IntervalDays,
		Reviews:        c.Schedule.Reviews,
		Lapses:         c.Schedule.Lapses,
		LastReviewedAt: c.Schedule.LastReviewedAt,
	}
}

type deckResponse struct {
	Cards         []practiceCardResponse `json:"cards"`
	Due           int                    `json:"due"`
	Total         int                    `json:"total"`
	ReviewedToday int                    `json:"reviewedToday"`
}

func toDeckResponse(d practice.Deck) deckResponse {
	cards := make([]practiceCardResponse, 0, len(d.Cards))
	for _, c := range d.Cards {
		cards = append(cards, toPracticeCardResponse(c))
	}
	return deckResponse{Cards: cards, Due: d.Due, Total: d.Total, ReviewedToday: d.ReviewedToday}
}

type userResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

func toUserResponse(u domain.User) userResponse {
	return userResponse{ID: u.ID.String(), Email: u.Email, Name: u.Name, Role: u.Role.String()}
}
