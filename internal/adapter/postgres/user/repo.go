// Package user implements the User repository using PostgreSQL.
package user

import (
	"context"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/nenadmarinkovic/sprachenwald/internal/adapter/postgres"
	"github.com/nenadmarinkovic/sprachenwald/internal/domain"
)

const table = "users"

var (
	columns   = []string{"id", "email", "name", "role", "created_at", "updated_at"}
	returning = "RETURNING " + strings.Join(columns, ", ")
)

type row struct {
	ID        uuid.UUID `db:"id"`
	Email     string    `db:"email"`
	Name      string    `db:"name"`
	Role      string    `db:"role"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (r row) toDomain() domain.User {
	return domain.User{
		ID:        r.ID,
		Email:     r.Email,
		Name:      r.Name,
		Role:      domain.UserRole(r.Role),
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new user repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Upsert inserts the user or refreshes email and name of an existing one.
// The stored role is never changed by an upsert.
func (r *Repo) Upsert(ctx context.Context, u domain.User) (domain.User, error) {
	q := postgres.Builder().Insert(table).
		Columns(columns...).
		Values(u.ID, u.Email, u.Name, string(u.Role), u.CreatedAt, u.UpdatedAt).
		Suffix("ON CONFLICT (id) DO UPDATE SET email = EXCLUDED.email, name = EXCLUDED.name, updated_at = EXCLUDED.updated_at " + returning)

	var rw row
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.pool), &rw, q); err != nil {
		return domain.User{}, postgres.MapError(err, "user", u.ID)
	}
	return rw.toDomain(), nil
}

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (domain.User, error) {
	return r.get(ctx, sq.Eq{"id": id}, id)
}

// GetByEmail returns a user by email, compared case-insensitively.
func (r *Repo) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	return r.get(ctx, sq.Expr("lower(email) = lower(?)", email), email)
}

func (r *Repo) get(ctx context.Context, where sq.Sqlizer, key any) (domain.User, error) {
	var rw row
	q := postgres.Builder().Select(columns...).From(table).Where(where)
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.pool), &rw, q); err != nil {
		return domain.User{}, postgres.MapError(err, "user", key)
	}
	return rw.toDomain(), nil
}

// SetRole changes the role of a user.
func (r *Repo) SetRole(ctx context.Context, id uuid.UUID, role domain.UserRole) (domain.User, error) {
	q := postgres.Builder().Update(table).
		Set("role", string(role)).
		Set("updated_at", time.Now().UTC()).
		Where(sq.Eq{"id": id}).
		Suffix(returning)

	var rw row
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.pool), &rw, q); err != nil {
		return domain.User{}, postgres.MapError(err, "user", id)
	}
	return rw.toDomain(), nil
}
