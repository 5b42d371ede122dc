package vocabulary

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/nenadmarinkovic/sprachenwald/internal/config"
	"github.com/nenadmarinkovic/sprachenwald/internal/domain"
)

type blockReader interface {
	BySlug(ctx context.Context, slug string) (domain.Block, error)
}

type vocabularyRepo interface {
	Add(ctx context.Context, w domain.VocabularyWord) (domain.VocabularyWord, error)
	ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]domain.VocabularyWord, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

// ListLimit caps the number of words returned by List.
const ListLimit = 1000

// Service manages the personal vocabulary (Sprachgarten).
type Service struct {
	blocks  blockReader
	words   vocabularyRepo
	content config.ContentConfig
	cfg     config.VocabularyConfig
	log     *slog.Logger
	now     func() time.Time
}

// NewService creates a new vocabulary service.
func NewService(
	log *slog.Logger,
	blocks blockReader,
	words vocabularyRepo,
	content config.ContentConfig,
	cfg config.VocabularyConfig,
) *Service {
	return &Service{
		blocks:  blocks,
		words:   words,
		content: content,
		cfg:     cfg,
		log:     log.With("service", "vocabulary"),
		now:     func() time.Time { return time.Now().UTC() },
	}
}
