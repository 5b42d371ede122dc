// Package reviewlog stores the graded answers given while practicing.
package reviewlog

import (
	"context"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/nenadmarinkovic/sprachenwald/internal/adapter/postgres"
	"github.com/nenadmarinkovic/sprachenwald/internal/domain"
)

const table = "practice_reviews"

var (
	columns = []string{
		"id", "word_id", "user_id", "grade", "prev_status", "prev_interval", "duration_ms", "reviewed_at",
	}
	returning = "RETURNING " + strings.Join(columns, ", ")
)

type row struct {
	ID           uuid.UUID `db:"id"`
	WordID       uuid.UUID `db:"word_id"`
	UserID       uuid.UUID `db:"user_id"`
	Grade        string    `db:"grade"`
	PrevStatus   string    `db:"prev_status"`
	PrevInterval int       `db:"prev_interval"`
	DurationMs   *int      `db:"duration_ms"`
	ReviewedAt   time.Time `db:"reviewed_at"`
}

func (r row) toDomain() domain.PracticeReview {
	return domain.PracticeReview{
		ID:           r.ID,
		WordID:       r.WordID,
		UserID:       r.UserID,
		Grade:        domain.ReviewGrade(r.Grade),
		PrevStatus:   domain.LearningStatus(r.PrevStatus),
		PrevInterval: r.PrevInterval,
		DurationMs:   r.DurationMs,
		ReviewedAt:   r.ReviewedAt,
	}
}

// Repo provides review log persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new review log repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create appends one review.
func (r *Repo) Create(ctx context.Context, rv domain.PracticeReview) (domain.PracticeReview, error) {
	q := postgres.Builder().Insert(table).
		Columns(columns...).
		Values(rv.ID, rv.WordID, rv.UserID, string(rv.Grade), string(rv.PrevStatus),
			rv.PrevInterval, rv.DurationMs, rv.ReviewedAt).
		Suffix(returning)

	var rw row
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.pool), &rw, q); err != nil {
		return domain.PracticeReview{}, postgres.MapError(err, "practice_review", rv.WordID)
	}
	return rw.toDomain(), nil
}

// ByWordIDs returns the reviews userID gave to wordIDs, newest first.
func (r *Repo) ByWordIDs(ctx context.Context, userID uuid.UUID, wordIDs []uuid.UUID) ([]domain.PracticeReview, error) {
	if len(wordIDs) == 0 {
		return []domain.PracticeReview{}, nil
	}

	q := postgres.Builder().Select(columns...).From(table).
		Where(sq.Eq{"user_id": userID, "word_id": wordIDs}).
		OrderBy("reviewed_at DESC", "id")

	var rows []row
	if err := postgres.Select(ctx, postgres.QuerierFromCtx(ctx, r.pool), &rows, q); err != nil {
		return nil, fmt.Errorf("list practice reviews of user %s: %w", userID, err)
	}

	out := make([]domain.PracticeReview, len(rows))
	for i, rw := range rows {
		out[i] = rw.toDomain()
	}
	return out, nil
}

// CountSince counts the reviews userID gave at or after since.
func (r *Repo) CountSince(ctx context.Context, userID uuid.UUID, since time.Time) (int, error) {
	q := postgres.Builder().Select("count(*)").From(table).
		Where(sq.Eq{"user_id": userID}).
		Where(sq.GtOrEq{"reviewed_at": since})

	var n int
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.pool), &n, q); err != nil {
		return 0, fmt.Errorf("count practice reviews of user %s: %w", userID, err)
	}
	return n, nil
}
