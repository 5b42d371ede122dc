// Package card stores the practice scheduling state of vocabulary words.
package card

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

const table = "practice_cards"

var (
	columns = []string{
		"word_id", "user_id", "status", "learning_step", "interval_days", "ease_factor",
		"next_review_at", "reviews", "lapses", "last_reviewed_at", "updated_at",
	}
	returning = "RETURNING " + strings.Join(columns, ", ")

	upsert = "ON CONFLICT (word_id) DO UPDATE SET " +
		"status = EXCLUDED.status, learning_step = EXCLUDED.learning_step, " +
		"interval_days = EXCLUDED.interval_days, ease_factor = EXCLUDED.ease_factor, " +
		"next_review_at = EXCLUDED.next_review_at, reviews = EXCLUDED.reviews, " +
		"lapses = EXCLUDED.lapses, last_reviewed_at = EXCLUDED.last_reviewed_at, " +
		"updated_at = EXCLUDED.updated_at " +
		"WHERE " + table + ".user_id = EXCLUDED.user_id " + returning
)

type row struct {
	WordID         uuid.UUID  `db:"word_id"`
	UserID         uuid.UUID  `db:"user_id"`
	Status         string     `db:"status"`
	LearningStep   int        `db:"learning_step"`
	IntervalDays   int        `db:"interval_days"`
	EaseFactor     float64    `db:"ease_factor"`
	NextReviewAt   time.Time  `db:"next_review_at"`
	Reviews        int        `db:"reviews"`
	Lapses         int        `db:"lapses"`
	LastReviewedAt *time.Time `db:"last_reviewed_at"`
	UpdatedAt      time.Time  `db:"updated_at"`
}

func (r row) toDomain() domain.PracticeCard {
	return domain.PracticeCard{
		WordID:         r.WordID,
		UserID:         r.UserID,
		Status:         domain.LearningStatus(r.Status),
		LearningStep:   r.LearningStep,
		IntervalDays:   r.IntervalDays,
		EaseFactor:     r.EaseFactor,
		NextReviewAt:   r.NextReviewAt,
		Reviews:        r.Reviews,
		Lapses:         r.Lapses,
		LastReviewedAt: r.LastReviewedAt,
		UpdatedAt:      r.UpdatedAt,
	}
}

// Repo provides practice card persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new card repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ByWordIDs returns the stored cards of userID among wordIDs. Words without
// a card are simply absent.
func (r *Repo) ByWordIDs(ctx context.Context, userID uuid.UUID, wordIDs []uuid.UUID) ([]domain.PracticeCard, error) {
	if len(wordIDs) == 0 {
		return []domain.PracticeCard{}, nil
	}

	q := postgres.Builder().Select(columns...).From(table).
		Where(sq.Eq{"user_id": userID, "word_id": wordIDs})

	var rows []row
	if err := postgres.Select(ctx, postgres.QuerierFromCtx(ctx, r.pool), &rows, q); err != nil {
		return nil, fmt.Errorf("list practice cards of user %s: %w", userID, err)
	}

	out := make([]domain.PracticeCard, len(rows))
	for i, rw := range rows {
		out[i] = rw.toDomain()
	}
	return out, nil
}

// Upsert stores the card of a word. A card owned by another user is left
// untouched and reported as not found.
func (r *Repo) Upsert(ctx context.Context, c domain.PracticeCard) (domain.PracticeCard, error) {
	q := postgres.Builder().Insert(table).
		Columns(columns...).
		Values(c.WordID, c.UserID, string(c.Status), c.LearningStep, c.IntervalDays, c.EaseFactor,
			c.NextReviewAt, c.Reviews, c.Lapses, c.LastReviewedAt, c.UpdatedAt).
		Suffix(upsert)

	var rw row
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.pool), &rw, q); err != nil {
		return domain.PracticeCard{}, postgres.MapError(err, "practice_card", c.WordID)
	}
	return rw.toDomain(), nil
}
