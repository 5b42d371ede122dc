// Package audit implements the append-only audit log using PostgreSQL.
package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/nenadmarinkovic/sprachenwald/internal/adapter/postgres"
	"github.com/nenadmarinkovic/sprachenwald/internal/domain"
)

const table = "audit_log"

var columns = []string{"id", "user_id", "entity_type", "entity_id", "action", "changes", "created_at"}

type row struct {
	ID         uuid.UUID  `db:"id"`
	UserID     uuid.UUID  `db:"user_id"`
	EntityType string     `db:"entity_type"`
	EntityID   *uuid.UUID `db:"entity_id"`
	Action     string     `db:"action"`
	Changes    []byte     `db:"changes"`
	CreatedAt  time.Time  `db:"created_at"`
}

func (r row) toDomain() (domain.AuditRecord, error) {
	rec := domain.AuditRecord{
		ID:         r.ID,
		UserID:     r.UserID,
		EntityType: domain.EntityType(r.EntityType),
		EntityID:   r.EntityID,
		Action:     domain.AuditAction(r.Action),
		CreatedAt:  r.CreatedAt,
	}
	if len(r.Changes) > 0 {
		if err := json.Unmarshal(r.Changes, &rec.Changes); err != nil {
			return domain.AuditRecord{}, fmt.Errorf("audit_record %s changes: %w", r.ID, err)
		}
	}
	return rec, nil
}

// Repo provides audit log persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new audit repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Log appends an audit record. A zero ID or timestamp is filled in.
func (r *Repo) Log(ctx context.Context, rec domain.AuditRecord) error {
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}
	if rec.Changes == nil {
		rec.Changes = map[string]any{}
	}
	changes, err := json.Marshal(rec.Changes)
	if err != nil {
		return fmt.Errorf("audit_record marshal changes: %w", err)
	}

	q := postgres.Builder().Insert(table).
		Columns(columns...).
		Values(rec.ID, rec.UserID, string(rec.EntityType), rec.EntityID, string(rec.Action), string(changes), rec.CreatedAt)
	if _, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.pool), q); err != nil {
		return postgres.MapError(err, "audit_record", rec.ID)
	}
	return nil
}

// ListByEntity returns the newest records of one entity.
func (r *Repo) ListByEntity(ctx context.Context, entityType domain.EntityType, entityID uuid.UUID, limit int) ([]domain.AuditRecord, error) {
	q := postgres.Builder().Select(columns...).From(table).
		Where(sq.Eq{"entity_type": string(entityType), "entity_id": entityID}).
		OrderBy("created_at DESC").
		Limit(uint64(limit))

	var rows []row
	if err := postgres.Select(ctx, postgres.QuerierFromCtx(ctx, r.pool), &rows, q); err != nil {
		return nil, fmt.Errorf("list audit_records: %w", err)
	}

	out := make([]domain.AuditRecord, 0, len(rows))
	for _, rw := range rows {
		rec, err := rw.toDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, nil
}

// DeleteOlderThan removes records created before cutoff and returns how many.
func (r *Repo) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	q := postgres.Builder().Delete(table).Where(sq.Lt{"created_at": cutoff})
	n, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.pool), q)
	if err != nil {
		return 0, fmt.Errorf("delete audit_records before %s: %w", cutoff.Format(time.RFC3339), err)
	}
	return n, nil
}
