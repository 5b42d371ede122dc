package user

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/nenadmarinkovic/sprachenwald/internal/domain"
)

type userRepo interface {
	Upsert(ctx context.Context, u domain.User) (domain.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.User, error)
	GetByEmail(ctx context.Context, email string) (domain.User, error)
	SetRole(ctx context.Context, id uuid.UUID, role domain.UserRole) (domain.User, error)
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements profile sync and role management.
type Service struct {
	log   *slog.Logger
	users userRepo
	audit auditLogger
	tx    txManager
	now   func() time.Time
}

// NewService creates a new user service instance.
func NewService(
	logger *slog.Logger,
	users userRepo,
	audit auditLogger,
	tx txManager,
) *Service {
	return &Service{
		log:   logger.With("service", "user"),
		users: users,
		audit: audit,
		tx:    tx,
		now:   func() time.Time { return time.Now().UTC() },
	}
}
