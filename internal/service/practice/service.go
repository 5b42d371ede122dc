// Package practice serves the Sprachgarten flashcard deck: the reader's
// words shown german side first, graded, and rescheduled.
package practice

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"github.com/nenadmarinkovic/sprachenwald/internal/config"
	"github.com/nenadmarinkovic/sprachenwald/internal/domain"
)

type vocabularyRepo interface {
	ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]domain.VocabularyWord, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.VocabularyWord, error)
}

type cardRepo interface {
	ByWordIDs(ctx context.Context, userID uuid.UUID, wordIDs []uuid.UUID) ([]domain.PracticeCard, error)
	Upsert(ctx context.Context, c domain.PracticeCard) (domain.PracticeCard, error)
}

type reviewLog interface {
	Create(ctx context.Context, r domain.PracticeReview) (domain.PracticeReview, error)
	CountSince(ctx context.Context, userID uuid.UUID, since time.Time) (int, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// maxWords caps the vocabulary a deck is drawn from.
const maxWords = 1000

// Service builds practice decks and records reviews.
type Service struct {
	words   vocabularyRepo
	cards   cardRepo
	reviews reviewLog
	tx      txManager
	cfg     config.PracticeConfig
	log     *slog.Logger
	now     func() time.Time
	shuffle func(n int, swap func(i, j int))
}

// NewService creates a new practice service. cfg must have been validated so
// its learning steps are parsed.
func NewService(
	log *slog.Logger,
	words vocabularyRepo,
	cards cardRepo,
	reviews reviewLog,
	tx txManager,
	cfg config.PracticeConfig,
) *Service {
	return &Service{
		words:   words,
		cards:   cards,
		reviews: reviews,
		tx:      tx,
		cfg:     cfg,
		log:     log.With("service", "practice"),
		now:     func() time.Time { return time.Now().UTC() },
		shuffle: rand.Shuffle,
	}
}
