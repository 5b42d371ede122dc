// Package dataloader provides per-request DataLoaders that batch GraphQL
// field lookups into single SQL calls. Loaders call repositories directly;
// caller scoping is done in SQL through the user_id filter of each query.
package dataloader

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"

	"github.com/nenadmarinkovic/sprachenwald/internal/domain"
)

const (
	maxBatch = 100
	wait     = 2 * time.Millisecond
)

type blockRepo interface {
	ListOutlinesByLessonIDs(ctx context.Context, lessonIDs []uuid.UUID) ([]domain.Block, error)
}

type cardRepo interface {
	ByWordIDs(ctx context.Context, userID uuid.UUID, wordIDs []uuid.UUID) ([]domain.PracticeCard, error)
}

type reviewLogRepo interface {
	ByWordIDs(ctx context.Context, userID uuid.UUID, wordIDs []uuid.UUID) ([]domain.PracticeReview, error)
}

// Repos holds the repositories the loaders read from.
type Repos struct {
	Block     blockRepo
	Card      cardRepo
	ReviewLog reviewLogRepo
}

// Loaders is the per-request set of DataLoaders.
type Loaders struct {
	BlocksByLessonID *dataloader.Loader[uuid.UUID, []domain.Block]
	CardByWordID     *dataloader.Loader[uuid.UUID, *domain.PracticeCard]
	ReviewsByWordID  *dataloader.Loader[uuid.UUID, []domain.PracticeReview]
}

// NewLoaders creates loaders backed by repos. Results are cached for the
// loaders' lifetime, so a set must not outlive one request.
func NewLoaders(repos *Repos) *Loaders {
	return &Loaders{
		BlocksByLessonID: newLoader(newBlocksBatchFn(repos.Block)),
		CardByWordID:     newLoader(newCardBatchFn(repos.Card)),
		ReviewsByWordID:  newLoader(newReviewsBatchFn(repos.ReviewLog)),
	}
}

func newLoader[V any](batchFn dataloader.BatchFunc[uuid.UUID, V]) *dataloader.Loader[uuid.UUID, V] {
	return dataloader.NewBatchedLoader(
		batchFn,
		dataloader.WithWait[uuid.UUID, V](wait),
		dataloader.WithBatchCapacity[uuid.UUID, V](maxBatch),
	)
}

type contextKey string

const loadersKey contextKey = "dataloaders"

// WithLoaders stores l in ctx.
func WithLoaders(ctx context.Context, l *Loaders) context.Context {
	return context.WithValue(ctx, loadersKey, l)
}

// FromContext returns the request's loaders. It panics when Middleware did
// not run for the request.
func FromContext(ctx context.Context) *Loaders {
	l, ok := ctx.Value(loadersKey).(*Loaders)
	if !ok || l == nil {
		panic("dataloader: loaders not found in context, is the middleware mounted?")
	}
	return l
}
