package lesson

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/nenadmarinkovic/sprachenwald/internal/config"
	"github.com/nenadmarinkovic/sprachenwald/internal/domain"
	"github.com/nenadmarinkovic/sprachenwald/pkg/ctxutil"
)

type lessonRepo interface {
	List(ctx context.Context) ([]domain.Lesson, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Lesson, error)
	GetBySlug(ctx context.Context, slug string) (domain.Lesson, error)
	NextOrder(ctx context.Context) (int, error)
	Create(ctx context.Context, l domain.Lesson) (domain.Lesson, error)
	Update(ctx context.Context, l domain.Lesson) (domain.Lesson, error)
	Delete(ctx context.Context, id uuid.UUID) error
	SetOrder(ctx context.Context, ids []uuid.UUID) error
}

type blockRepo interface {
	ListByLesson(ctx context.Context, lessonID uuid.UUID) ([]domain.Block, error)
	SlugsByLesson(ctx context.Context, lessonID uuid.UUID) ([]string, error)
}

type blockCache interface {
	Invalidate(ctx context.Context, slugs ...string) error
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides lesson management and lesson reads.
type Service struct {
	lessons lessonRepo
	blocks  blockRepo
	cache   blockCache
	audit   auditLogger
	tx      txManager
	cfg     config.ContentConfig
	log     *slog.Logger
	now     func() time.Time
}

// NewService creates a new lesson service.
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
		lessons: lessons,
		blocks:  blocks,
		cache:   cache,
		audit:   audit,
		tx:      tx,
		cfg:     cfg,
		log:     log.With("service", "lesson"),
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// adminID returns the calling admin, ErrUnauthorized for anonymous calls
// and ErrForbidden for non-admins.
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
