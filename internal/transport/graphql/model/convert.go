package model

import (
	"github.com/nenadmarinkovic/sprachenwald/internal/domain"
	"github.com/nenadmarinkovic/sprachenwald/internal/service/block"
	"github.com/nenadmarinkovic/sprachenwald/internal/service/practice"
	"github.com/nenadmarinkovic/sprachenwald/internal/service/vocabulary"
)

func NewLesson(l domain.Lesson) Lesson {
	return Lesson{
		ID:        l.ID,
		Title:     l.Title,
		Slug:      l.Slug,
		Order:     l.Order,
		CreatedAt: l.CreatedAt,
		UpdatedAt: l.UpdatedAt,
	}
}

func NewLessons(ls []domain.Lesson) []Lesson {
	out := make([]Lesson, 0, len(ls))
	for _, l := range ls {
		out = append(out, NewLesson(l))
	}
	return out
}

// NewLessonWithBlocks keeps the blocks so Lesson.blocks needs no lookup.
func NewLessonWithBlocks(l domain.Lesson, blocks []domain.Block) Lesson {
	out := NewLesson(l)
	out.Blocks = NewBlockLinks(blocks)
	return out
}

func NewBlockLinks(bs []domain.Block) []BlockLink {
	out := make([]BlockLink, 0, len(bs))
	for _, b := range bs {
		out = append(out, BlockLink{ID: b.ID, Type: string(b.Type), Title: b.Title, Slug: b.Slug, Order: b.Order})
	}
	return out
}

func NewBlockView(v block.View) BlockView {
	return BlockView{
		LessonSlug:  v.LessonSlug,
		LessonTitle: v.LessonTitle,
		Block:       v.Block,
		Candidates:  NewVocabularyEntries(v.Candidates),
		Prev:        newPagerLink(v.Pager.Prev),
		Next:        newPagerLink(v.Pager.Next),
	}
}

func newPagerLink(l *domain.PagerLink) *PagerLink {
	if l == nil {
		return nil
	}
	return &PagerLink{LessonSlug: l.LessonSlug, BlockSlug: l.BlockSlug, Title: l.Title, Type: string(l.Type)}
}

func NewVocabularyEntries(es []domain.VocabularyEntry) []VocabularyEntry {
	out := make([]VocabularyEntry, 0, len(es))
	for _, e := range es {
		out = append(out, VocabularyEntry{
			German:       e.German,
			Serbian:      e.Serbian,
			Article:      e.Article,
			PartOfSpeech: string(e.PartOfSpeech),
			Info:         e.Info,
		})
	}
	return out
}

func NewUser(u domain.User) User {
	return User{ID: u.ID, Email: u.Email, Name: u.Name, Role: u.Role.String()}
}

func NewVocabularyWord(w domain.VocabularyWord) VocabularyWord {
	return VocabularyWord{
		ID:           w.ID,
		LessonID:     w.LessonID,
		German:       w.German,
		Serbian:      w.Serbian,
		Article:      w.Article,
		PartOfSpeech: string(w.PartOfSpeech),
		Info:         w.Info,
		Type:         string(w.Type),
		AddedAt:      w.AddedAt,
	}
}

func NewVocabularyWords(ws []domain.VocabularyWord) []VocabularyWord {
	out := make([]VocabularyWord, 0, len(ws))
	for _, w := range ws {
		out = append(out, NewVocabularyWord(w))
	}
	return out
}

func NewVocabularyTabs(gs []vocabulary.TabGroup) []VocabularyTab {
	out := make([]VocabularyTab, 0, len(gs))
	for _, g := range gs {
		out = append(out, VocabularyTab{Tab: string(g.Tab), Words: NewVocabularyWords(g.Words)})
	}
	return out
}

// NewPracticeCard pairs a schedule with the word it belongs to.
func NewPracticeCard(w VocabularyWord, c domain.PracticeCard) PracticeCard {
	return PracticeCard{
		Word:           w,
		Status:         c.Status,
		NextReviewAt:   c.NextReviewAt,
		IntervalDays:   c.IntervalDays,
		Reviews:        c.Reviews,
		Lapses:         c.Lapses,
		LastReviewedAt: c.LastReviewedAt,
	}
}

func NewDeckCard(c practice.Card) PracticeCard {
	return NewPracticeCard(NewVocabularyWord(c.Word), c.Schedule)
}

func NewPracticeDeck(d practice.Deck) PracticeDeck {
	cards := make([]PracticeCard, 0, len(d.Cards))
	for _, c := range d.Cards {
		cards = append(cards, NewDeckCard(c))
	}
	return PracticeDeck{Cards: cards, Due: d.Due, Total: d.Total, ReviewedToday: d.ReviewedToday}
}

func NewPracticeReviews(rs []domain.PracticeReview) []PracticeReview {
	out := make([]PracticeReview, 0, len(rs))
	for _, r := range rs {
		out = append(out, PracticeReview{
			ID:           r.ID,
			Grade:        r.Grade,
			PrevStatus:   r.PrevStatus,
			PrevInterval: r.PrevInterval,
			DurationMs:   r.DurationMs,
			ReviewedAt:   r.ReviewedAt,
		})
	}
	return out
}
