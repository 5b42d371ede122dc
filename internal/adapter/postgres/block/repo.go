// Package block implements the Block repository using PostgreSQL. Payloads
// (content items, quizzes, vocabulary words) are stored as JSONB.
package block

import (
	"context"
	"encoding/json"
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

const table = "blocks"

var (
	columns = []string{
		"id", "lesson_id", "type", "title", "slug", "sort_order",
		"content", "video_url", "description", "quizzes", "words",
		"created_at", "updated_at",
	}
	outlineColumns = []string{"id", "lesson_id", "type", "title", "slug", "sort_order", "created_at", "updated_at"}
	returning      = "RETURNING " + strings.Join(columns, ", ")
)

type row struct {
	ID          uuid.UUID `db:"id"`
	LessonID    uuid.UUID `db:"lesson_id"`
	Type        string    `db:"type"`
	Title       string    `db:"title"`
	Slug        string    `db:"slug"`
	SortOrder   int       `db:"sort_order"`
	Content     []byte    `db:"content"`
	VideoURL    string    `db:"video_url"`
	Description string    `db:"description"`
	Quizzes     []byte    `db:"quizzes"`
	Words       []byte    `db:"words"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

func (r row) toDomain() (domain.Block, error) {
	b := domain.Block{
		ID:          r.ID,
		LessonID:    r.LessonID,
		Type:        domain.BlockType(r.Type),
		Title:       r.Title,
		Slug:        r.Slug,
		Order:       r.SortOrder,
		VideoURL:    r.VideoURL,
		Description: r.Description,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
	if err := unmarshal(r.Content, &b.Content); err != nil {
		return domain.Block{}, fmt.Errorf("block %s content: %w", r.ID, err)
	}
	if err := unmarshal(r.Quizzes, &b.Quizzes); err != nil {
		return domain.Block{}, fmt.Errorf("block %s quizzes: %w", r.ID, err)
	}
	if err := unmarshal(r.Words, &b.Words); err != nil {
		return domain.Block{}, fmt.Errorf("block %s words: %w", r.ID, err)
	}
	return b, nil
}

func unmarshal(raw []byte, dst any) error {
	if len(raw) == 0 {
		return nil
	}
	return json.Unmarshal(raw, dst)
}

type payload struct {
	content, quizzes, words string
}

func encode(b domain.Block) (payload, error) {
	var (
		p   payload
		err error
	)
	if p.content, err = marshal(b.Content); err != nil {
		return p, fmt.Errorf("marshal content: %w", err)
	}
	if p.quizzes, err = marshal(b.Quizzes); err != nil {
		return p, fmt.Errorf("marshal quizzes: %w", err)
	}
	if p.words, err = marshal(b.Words); err != nil {
		return p, fmt.Errorf("marshal words: %w", err)
	}
	return p, nil
}

// marshal encodes a slice, storing nil as an empty JSON array.
func marshal[T any](v []T) (string, error) {
	if v == nil {
		v = []T{}
	}
	raw, err := json.Marshal(v)
	return string(raw), err
}

// Repo provides block persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new block repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

func (r *Repo) list(ctx context.Context, q sq.SelectBuilder) ([]domain.Block, error) {
	var rows []row
	if err := postgres.Select(ctx, postgres.QuerierFromCtx(ctx, r.pool), &rows, q); err != nil {
		return nil, err
	}
	out := make([]domain.Block, 0, len(rows))
	for _, rw := range rows {
		b, err := rw.toDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, nil
}

func (r *Repo) get(ctx context.Context, q sq.Sqlizer, key any) (domain.Block, error) {
	var rw row
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.pool), &rw, q); err != nil {
		return domain.Block{}, postgres.MapError(err, "block", key)
	}
	return rw.toDomain()
}

// ListByLesson returns the blocks of a lesson in order.
func (r *Repo) ListByLesson(ctx context.Context, lessonID uuid.UUID) ([]domain.Block, error) {
	q := postgres.Builder().Select(columns...).From(table).
		Where(sq.Eq{"lesson_id": lessonID}).
		OrderBy("sort_order ASC", "created_at ASC")
	blocks, err := r.list(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list blocks of lesson %s: %w", lessonID, err)
	}
	return blocks, nil
}

// ListOutlines returns every block without its payload, grouped by lesson
// and ordered inside each lesson. It feeds the lesson pager.
func (r *Repo) ListOutlines(ctx context.Context) (map[uuid.UUID][]domain.Block, error) {
	q := postgres.Builder().Select(outlineColumns...).From(table).
		OrderBy("lesson_id", "sort_order ASC", "created_at ASC")
	blocks, err := r.list(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list block outlines: %w", err)
	}

	out := make(map[uuid.UUID][]domain.Block)
	for _, b := range blocks {
		out[b.LessonID] = append(out[b.LessonID], b)
	}
	return out, nil
}

// ListOutlinesByLessonIDs returns the blocks of several lessons without
// their payload, ordered inside each lesson.
func (r *Repo) ListOutlinesByLessonIDs(ctx context.Context, lessonIDs []uuid.UUID) ([]domain.Block, error) {
	if len(lessonIDs) == 0 {
		return []domain.Block{}, nil
	}
	q := postgres.Builder().Select(outlineColumns...).From(table).
		Where(sq.Eq{"lesson_id": lessonIDs}).
		OrderBy("lesson_id", "sort_order ASC", "created_at ASC")
	blocks, err := r.list(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list block outlines of %d lessons: %w", len(lessonIDs), err)
	}
	return blocks, nil
}

// GetByID returns a block by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (domain.Block, error) {
	return r.get(ctx, postgres.Builder().Select(columns...).From(table).Where(sq.Eq{"id": id}), id)
}

// GetBySlug returns a block by slug.
func (r *Repo) GetBySlug(ctx context.Context, slug string) (domain.Block, error) {
	return r.get(ctx, postgres.Builder().Select(columns...).From(table).Where(sq.Eq{"slug": slug}), slug)
}

// NextOrder returns the order value for a block appended to the lesson.
func (r *Repo) NextOrder(ctx context.Context, lessonID uuid.UUID) (int, error) {
	var next int
	q := postgres.Builder().Select("COALESCE(MAX(sort_order) + 1, 0)").From(table).Where(sq.Eq{"lesson_id": lessonID})
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.pool), &next, q); err != nil {
		return 0, fmt.Errorf("next block order: %w", err)
	}
	return next, nil
}

// Create inserts blocks in one statement. A second block of the same type in
// a lesson is reported as ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, blocks []domain.Block) ([]domain.Block, error) {
	if len(blocks) == 0 {
		return []domain.Block{}, nil
	}

	q := postgres.Builder().Insert(table).Columns(columns...).Suffix(returning)
	for _, b := range blocks {
		p, err := encode(b)
		if err != nil {
			return nil, fmt.Errorf("block %s: %w", b.Slug, err)
		}
		q = q.Values(b.ID, b.LessonID, string(b.Type), b.Title, b.Slug, b.Order,
			p.content, b.VideoURL, b.Description, p.quizzes, p.words,
			b.CreatedAt, b.UpdatedAt)
	}

	var rows []row
	if err := postgres.Select(ctx, postgres.QuerierFromCtx(ctx, r.pool), &rows, q); err != nil {
		return nil, postgres.MapError(err, "block", blocks[0].LessonID)
	}
	out := make([]domain.Block, 0, len(rows))
	for _, rw := range rows {
		b, err := rw.toDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, nil
}

// Update stores the title and payload of a block. Type, slug and lesson
// never change.
func (r *Repo) Update(ctx context.Context, b domain.Block) (domain.Block, error) {
	p, err := encode(b)
	if err != nil {
		return domain.Block{}, fmt.Errorf("block %s: %w", b.ID, err)
	}

	q := postgres.Builder().Update(table).
		Set("title", b.Title).
		Set("content", p.content).
		Set("video_url", b.VideoURL).
		Set("description", b.Description).
		Set("quizzes", p.quizzes).
		Set("words", p.words).
		Set("updated_at", b.UpdatedAt).
		Where(sq.Eq{"id": b.ID}).
		Suffix(returning)
	return r.get(ctx, q, b.ID)
}

// Delete removes a block and returns its slug.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) (string, error) {
	var slug string
	q := postgres.Builder().Delete(table).Where(sq.Eq{"id": id}).Suffix("RETURNING slug")
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.pool), &slug, q); err != nil {
		return "", postgres.MapError(err, "block", id)
	}
	return slug, nil
}

// SlugsByLesson returns the slugs of a lesson's blocks.
func (r *Repo) SlugsByLesson(ctx context.Context, lessonID uuid.UUID) ([]string, error) {
	var slugs []string
	q := postgres.Builder().Select("slug").From(table).Where(sq.Eq{"lesson_id": lessonID})
	if err := postgres.Select(ctx, postgres.QuerierFromCtx(ctx, r.pool), &slugs, q); err != nil {
		return nil, fmt.Errorf("block slugs of lesson %s: %w", lessonID, err)
	}
	return slugs, nil
}

// SetOrder assigns sort_order = index to the blocks of a lesson in one batch.
func (r *Repo) SetOrder(ctx context.Context, lessonID uuid.UUID, ids []uuid.UUID) error {
	batch := &pgx.Batch{}
	for i, id := range ids {
		batch.Queue(`UPDATE blocks SET sort_order = $1 WHERE id = $2 AND lesson_id = $3`, i, id, lessonID)
	}
	if err := postgres.QuerierFromCtx(ctx, r.pool).SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("reorder blocks of lesson %s: %w", lessonID, err)
	}
	return nil
}
