// Package vocabulary implements the personal vocabulary repository using PostgreSQL.
package vocabulary

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

const table = "user_vocabulary"

var (
	columns = []string{
		"id", "user_id", "lesson_id", "german", "serbian", "article",
		"part_of_speech", "info", "type", "added_at",
	}
	returning = "RETURNING " + strings.Join(columns, ", ")
)

type row struct {
	ID           uuid.UUID `db:"id"`
	UserID       uuid.UUID `db:"user_id"`
	LessonID     uuid.UUID `db:"lesson_id"`
	German       string    `db:"german"`
	Serbian      string    `db:"serbian"`
	Article      string    `db:"article"`
	PartOfSpeech string    `db:"part_of_speech"`
	Info         string    `db:"info"`
	Type         string    `db:"type"`
	AddedAt      time.Time `db:"added_at"`
}

func (r row) toDomain() domain.VocabularyWord {
	return domain.VocabularyWord{
		ID:           r.ID,
		UserID:       r.UserID,
		LessonID:     r.LessonID,
		German:       r.German,
		Serbian:      r.Serbian,
		Article:      r.Article,
		PartOfSpeech: domain.PartOfSpeech(r.PartOfSpeech),
		Info:         r.Info,
		Type:         domain.PartOfSpeech(r.Type),
		AddedAt:      r.AddedAt,
	}
}

// Repo provides personal vocabulary persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new vocabulary repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Add stores one word.
func (r *Repo) Add(ctx context.Context, w domain.VocabularyWord) (domain.VocabularyWord, error) {
	q := postgres.Builder().Insert(table).
		Columns(columns...).
		Values(w.ID, w.UserID, w.LessonID, w.German, w.Serbian, w.Article,
			string(w.PartOfSpeech), w.Info, string(w.Type), w.AddedAt).
		Suffix(returning)

	var rw row
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.pool), &rw, q); err != nil {
		return domain.VocabularyWord{}, postgres.MapError(err, "vocabulary_word", w.German)
	}
	return rw.toDomain(), nil
}

// ListByUser returns up to limit words of a user, newest first.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]domain.VocabularyWord, error) {
	q := postgres.Builder().Select(columns...).From(table).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("added_at DESC", "id").
		Limit(uint64(limit))

	var rows []row
	if err := postgres.Select(ctx, postgres.QuerierFromCtx(ctx, r.pool), &rows, q); err != nil {
		return nil, fmt.Errorf("list vocabulary of user %s: %w", userID, err)
	}

	out := make([]domain.VocabularyWord, len(rows))
	for i, rw := range rows {
		out[i] = rw.toDomain()
	}
	return out, nil
}

// GetByID returns one word.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (domain.VocabularyWord, error) {
	var rw row
	q := postgres.Builder().Select(columns...).From(table).Where(sq.Eq{"id": id})
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.pool), &rw, q); err != nil {
		return domain.VocabularyWord{}, postgres.MapError(err, "vocabulary_word", id)
	}
	return rw.toDomain(), nil
}

// Delete removes a word owned by userID.
func (r *Repo) Delete(ctx context.Context, userID, id uuid.UUID) error {
	q := postgres.Builder().Delete(table).Where(sq.Eq{"id": id, "user_id": userID})
	n, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.pool), q)
	if err != nil {
		return postgres.MapError(err, "vocabulary_word", id)
	}
	return postgres.NotFoundIfNone(n, "vocabulary_word", id)
}
