package vocabulary

import (
	"context"
	"sync"

	"github.com/nenadmarinkovic/sprachenwald/internal/domain"
)

var _ blockReader = &blockReaderMock{}

type blockReaderMock struct {
	BySlugFunc func(ctx context.Context, slug string) (domain.Block, error)

	calls struct {
		BySlug []struct {
			Ctx  context.Context
			Slug string
		}
	}
	lockBySlug sync.RWMutex
}

func (mock *blockReaderMock) BySlug(ctx context.Context, slug string) (domain.Block, error) {
	if mock.BySlugFunc == nil {
		panic("blockReaderMock.BySlugFunc: method is nil but blockReader.BySlug was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Slug string
	}{Ctx: ctx, Slug: slug}
	mock.lockBySlug.Lock()
	mock.calls.BySlug = append(mock.calls.BySlug, callInfo)
	mock.lockBySlug.Unlock()
	return mock.BySlugFunc(ctx, slug)
}

func (mock *blockReaderMock) BySlugCalls() []struct {
	Ctx  context.Context
	Slug string
} {
	mock.lockBySlug.RLock()
	calls := mock.calls.BySlug
	mock.lockBySlug.RUnlock()
	return calls
}
