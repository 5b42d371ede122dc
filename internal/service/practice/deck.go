package practice

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/nenadmarinkovic/sprachenwald/internal/domain"
	"github.com/nenadmarinkovic/sprachenwald/pkg/ctxutil"
)

// Card is one flashcard: the word with its scheduling state. The front shows
// German and Info, the back Serbian.
type Card struct {
	Word     domain.VocabularyWord
	Schedule domain.PracticeCard
}

// Deck is a shuffled run of cards. Due cards come first; the rest of the
// vocabulary follows so a reader can keep practicing when nothing is due.
type Deck struct {
	Cards         []Card
	Due           int
	Total         int
	ReviewedToday int
}

// Deck draws a deck from the caller's vocabulary.
func (s *Service) Deck(ctx context.Context, in DeckInput) (Deck, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return Deck{}, domain.ErrUnauthorized
	}
	if err := in.Validate(s.cfg.MaxDeckSize); err != nil {
		return Deck{}, err
	}
	size := in.Size
	if size == 0 {
		size = s.cfg.DeckSize
	}

	words, err := s.words.ListByUser(ctx, userID, maxWords)
	if err != nil {
		return Deck{}, err
	}
	if in.Tab != "" {
		kept := words[:0]
		for _, w := range words {
			if w.Tab() == in.Tab {
				kept = append(kept, w)
			}
		}
		words = kept
	}

	ids := make([]uuid.UUID, len(words))
	for i, w := range words {
		ids[i] = w.ID
	}
	stored, err := s.cards.ByWordIDs(ctx, userID, ids)
	if err != nil {
		return Deck{}, fmt.Errorf("load practice cards: %w", err)
	}
	byWord := make(map[uuid.UUID]domain.PracticeCard, len(stored))
	for _, c := range stored {
		byWord[c.WordID] = c
	}

	now := s.now()
	var due, later []Card
	for _, w := range words {
		c, ok := byWord[w.ID]
		if !ok {
			c = domain.NewPracticeCard(w, s.cfg.DefaultEaseFactor, now)
		}
		if c.IsDue(now) {
			due = append(due, Card{Word: w, Schedule: c})
		} else {
			later = append(later, Card{Word: w, Schedule: c})
		}
	}
	s.shuffle(len(due), func(i, j int) { due[i], due[j] = due[j], due[i] })
	s.shuffle(len(later), func(i, j int) { later[i], later[j] = later[j], later[i] })

	cards := append(due, later...)
	if len(cards) > size {
		cards = cards[:size]
	}
	if cards == nil {
		cards = []Card{}
	}

	reviewed, err := s.reviews.CountSince(ctx, userID, startOfDay(now))
	if err != nil {
		return Deck{}, err
	}

	return Deck{
		Cards:         cards,
		Due:           len(due),
		Total:         len(words),
		ReviewedToday: reviewed,
	}, nil
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
