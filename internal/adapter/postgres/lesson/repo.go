// Package lesson implements the Lesson repository using PostgreSQL.
package lesson

import (
	"context"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/nenadmarinkovic/sprachenwald/internal/adapter/postgres"
	"github.com/nenadmarinkovic/sprachenwald/internal/domain"
)

const table = "lessons"

var (
	columns   = []string{"id", "title", "slug", "sort_order", "created_at", "updated_at"}
	returning = "RETURNING " + strings.Join(columns, ", ")
)

type row struct {
	ID        uuid.UUID `db:"id"`
	Title     string    `db:"title"`
	Slug      string    `db:"slug"`
	SortOrder int       `db:"sort_order"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (r row) toDomain() domain.Lesson {
	return domain.Lesson{
		ID:        r.ID,
		Title:     r.Title,
		Slug:      r.Slug,
		Order:     r.SortOrder,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

// Repo provides lesson persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new lesson repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

func selectLessons() sq.SelectBuilder {
	return postgres.Builder().Select(columns...).From(table)
}

// List returns all lessons in reading order.
func (r *Repo) List(ctx context.Context) ([]domain.Lesson, error) {
	var rows []row
	q := selectLessons().OrderBy("sort_order ASC", "created_at ASC")
	if err := postgres.Select(ctx, postgres.QuerierFromCtx(ctx, r.pool), &rows, q); err != nil {
		return nil, fmt.Errorf("list lessons: %w", err)
	}

	out := make([]domain.Lesson, len(rows))
	for i, rw := range rows {
		out[i] = rw.toDomain()
	}
	return out, nil
}

// GetByID returns a lesson by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (domain.Lesson, error) {
	return r.get(ctx, sq.Eq{"id": id}, id)
}

// GetBySlug returns a lesson by slug.
func (r *Repo) GetBySlug(ctx context.Context, slug string) (domain.Lesson, error) {
	return r.get(ctx, sq.Eq{"slug": slug}, slug)
}

func (r *Repo) get(ctx context.Context, where sq.Eq, key any) (domain.Lesson, error) {
	var rw row
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.pool), &rw, selectLessons().Where(where)); err != nil {
		return domain.Lesson{}, postgres.MapError(err, "lesson", key)
	}
	return rw.toDomain(), nil
}

// NextOrder returns the order value for a lesson appended at the end.
func (r *Repo) NextOrder(ctx context.Context) (int, error) {
	var next int
	q := postgres.Builder().Select("COALESCE(MAX(sort_order) + 1, 0)").From(table)
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.pool), &next, q); err != nil {
		return 0, fmt.Errorf("next lesson order: %w", err)
	}
	return next, nil
}

// Create inserts a lesson and returns the stored row.
func (r *Repo) Create(ctx context.Context, l domain.Lesson) (domain.Lesson, error) {
	q := postgres.Builder().Insert(table).
		Columns(columns...).
		Values(l.ID, l.Title, l.Slug, l.Order, l.CreatedAt, l.UpdatedAt).
		Suffix(returning)

	var rw row
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.pool), &rw, q); err != nil {
		return domain.Lesson{}, postgres.MapError(err, "lesson", l.Slug)
	}
	return rw.toDomain(), nil
}

// Update stores the title and slug of a lesson.
func (r *Repo) Update(ctx context.Context, l domain.Lesson) (domain.Lesson, error) {
	q := postgres.Builder().Update(table).
		Set("title", l.Title).
		Set("slug", l.Slug).
		Set("updated_at", l.UpdatedAt).
		Where(sq.Eq{"id": l.ID}).
		Suffix(returning)

	var rw row
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.pool), &rw, q); err != nil {
		return domain.Lesson{}, postgres.MapError(err, "lesson", l.ID)
	}
	return rw.toDomain(), nil
}

// Delete removes a lesson. Its blocks are removed by cascade.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	n, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.pool), postgres.Builder().Delete(table).Where(sq.Eq{"id": id}))
	if err != nil {
		return postgres.MapError(err, "lesson", id)
	}
	return postgres.NotFoundIfNone(n, "lesson", id)
}

// SetOrder assigns sort_order = index for every id in one batch.
func (r *Repo) SetOrder(ctx context.Context, ids []uuid.UUID) error {
	batch := &pgx.Batch{}
	for i, id := range ids {
		batch.Queue(`UPDATE lessons SET sort_order = $1 WHERE id = $2`, i, id)
	}
	if err := postgres.QuerierFromCtx(ctx, r.pool).SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("reorder lessons: %w", err)
	}
	return nil
}
