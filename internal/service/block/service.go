package block

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/nenadmarinkovic/sprachenwald/internal/config"
	"github.com/nenadmarinkovic/sprachenwald/internal/domain"
	"github.com/nenadmarinkovic/sprachenwald/internal/markup"
	"github.com/nenadmarinkovic/sprachenwald/pkg/ctxutil"
)

type lessonRepo interface {
	List(ctx context.Context) ([]domain.Lesson, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Lesson, error)
}

type blockRepo interface {
	ListByLesson(ctx context.Context, lessonID uuid.UUID) ([]domain.Block, error)
	ListOutlines(ctx context.Context) (map[uuid.UUID][]domain.Block, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Block, error)
	GetBySlug(ctx context.Context, slug string) (domain.Block, error)
	NextOrder(ctx context.Context, lessonID uuid.UUID) (int, error)
	Create(ctx context.Context, blocks []domain.Block) ([]domain.Block, error)
	Update(ctx context.Context, b domain.Block) (domain.Block, error)
	Delete(ctx context.Context, id uuid.UUID) (string, error)
	SetOrder(ctx context.Context, lessonID uuid.UUID, ids []uuid.UUID) error
}

type blockCache interface {
	GetBlock(ctx context.Context, slug string) (domain.Block, bool, error)
	SetBlock(ctx context.Context, b domain.Block) error
	Invalidate(ctx context.Context, slugs ...string) error
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// defaultTitles are given to new blocks until an admin renames them.
var defaultTitles = map[domain.BlockType]string{
	domain.BlockTypeText:       "Tekst",
	domain.BlockTypeGrammar:    "Gramatika",
	domain.BlockTypeVideo:      "Video",
	domain.BlockTypeQuiz:       "Kviz",
	domain.BlockTypeVocabulary: "Rečnik",
}

// Service provides block authoring and the reading view.
type Service struct {
	lessons   lessonRepo
	blocks    blockRepo
	cache     blockCache
	audit     auditLogger
	tx        txManager
	sanitizer *markup.Sanitizer
	cfg       config.ContentConfig
	log       *slog.Logger
	now       func() time.Time
}

// NewService creates a new block service.
func NewService(
	log *slog.Logger,
	lessons lessonRepo,
	blocks blockRepo,
	cache blockCache,
	audit auditLogger,
	tx txManager,
	cfg config.ContentConfig,
) *Service {
	return &Service{
		lessons:   lessons,
		blocks:    blocks,
		cache:     cache,
		audit:     audit,
		tx:        tx,
		sanitizer: markup.NewSanitizer(),
		cfg:       cfg,
		log:       log.With("service", "block"),
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func adminID(ctx context.Context) (uuid.UUID, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return uuid.Nil, domain.ErrUnauthorized
	}
	if !ctxutil.IsAdminCtx(ctx) {
		return uuid.Nil, domain.ErrForbidden
	}
	return userID, nil
}

// invalidate drops cached copies. Failures only cost a stale read until the
// entry expires, so they are logged and swallowed.
func (s *Service) invalidate(ctx context.Context, slugs ...string) {
	if err := s.cache.Invalidate(ctx, slugs...); err != nil {
		s.log.WarnContext(ctx, "invalidate cached blocks",
			slog.Any("slugs", slugs),
			slog.String("error", err.Error()),
		)
	}
}
