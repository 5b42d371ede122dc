package dataloader

import (
	"context"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"

	"github.com/nenadmarinkovic/sprachenwald/internal/domain"
	"github.com/nenadmarinkovic/sprachenwald/pkg/ctxutil"
)

// Block outlines by lesson ID, in lesson order.
func newBlocksBatchFn(repo blockRepo) dataloader.BatchFunc[uuid.UUID, []domain.Block] {
	return func(ctx context.Context, keys []uuid.UUID) []*dataloader.Result[[]domain.Block] {
		blocks, err := repo.ListOutlinesByLessonIDs(ctx, keys)
		if err != nil {
			return errorResults[[]domain.Block](len(keys), err)
		}

		grouped := make(map[uuid.UUID][]domain.Block, len(keys))
		for _, b := range blocks {
			grouped[b.LessonID] = append(grouped[b.LessonID], b)
		}
		return mapResults(keys, grouped, emptySlice[domain.Block])
	}
}

// Practice card by word ID. Words never reviewed have none.
func newCardBatchFn(repo cardRepo) dataloader.BatchFunc[uuid.UUID, *domain.PracticeCard] {
	return func(ctx context.Context, keys []uuid.UUID) []*dataloader.Result[*domain.PracticeCard] {
		userID, ok := ctxutil.UserIDFromCtx(ctx)
		if !ok {
			return errorResults[*domain.PracticeCard](len(keys), domain.ErrUnauthorized)
		}
		cards, err := repo.ByWordIDs(ctx, userID, keys)
		if err != nil {
			return errorResults[*domain.PracticeCard](len(keys), err)
		}

		byWord := make(map[uuid.UUID]*domain.PracticeCard, len(cards))
		for i := range cards {
			byWord[cards[i].WordID] = &cards[i]
		}
		results := make([]*dataloader.Result[*domain.PracticeCard], len(keys))
		for i, key := range keys {
			results[i] = &dataloader.Result[*domain.PracticeCard]{Data: byWord[key]}
		}
		return results
	}
}

// Review history by word ID, newest first.
func newReviewsBatchFn(repo reviewLogRepo) dataloader.BatchFunc[uuid.UUID, []domain.PracticeReview] {
	return func(ctx context.Context, keys []uuid.UUID) []*dataloader.Result[[]domain.PracticeReview] {
		userID, ok := ctxutil.UserIDFromCtx(ctx)
		if !ok {
			return errorResults[[]domain.PracticeReview](len(keys), domain.ErrUnauthorized)
		}
		reviews, err := repo.ByWordIDs(ctx, userID, keys)
		if err != nil {
			return errorResults[[]domain.PracticeReview](len(keys), err)
		}

		grouped := make(map[uuid.UUID][]domain.PracticeReview, len(keys))
		for _, r := range reviews {
			grouped[r.WordID] = append(grouped[r.WordID], r)
		}
		return mapResults(keys, grouped, emptySlice[domain.PracticeReview])
	}
}

func errorResults[V any](n int, err error) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], n)
	for i := range results {
		results[i] = &dataloader.Result[V]{Error: err}
	}
	return results
}

// mapResults puts grouped values back in key order; keys without a group
// get defaultFn().
func mapResults[V any](keys []uuid.UUID, grouped map[uuid.UUID]V, defaultFn func() V) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], len(keys))
	for i, key := range keys {
		v, ok := grouped[key]
		if !ok {
			v = defaultFn()
		}
		results[i] = &dataloader.Result[V]{Data: v}
	}
	return results
}

func emptySlice[T any]() []T {
	return []T{}
}
