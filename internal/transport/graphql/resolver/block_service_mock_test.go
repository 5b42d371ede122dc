package resolver

import (
	"context"
	"sync"

	"github.com/nenadmarinkovic/sprachenwald/internal/render"
	"github.com/nenadmarinkovic/sprachenwald/internal/service/block"
)

var _ blockService = &blockServiceMock{}

type blockServiceMock struct {
	GetBlockFunc func(ctx context.Context, slug string, f render.Filter) (block.View, error)

	calls struct {
		GetBlock []struct {
			Ctx  context.Context
			Slug string
			F    render.Filter
		}
	}
	lockGetBlock sync.RWMutex
}

func (mock *blockServiceMock) GetBlock(ctx context.Context, slug string, f render.Filter) (block.View, error) {
	if mock.GetBlockFunc == nil {
		panic("blockServiceMock.GetBlockFunc: method is nil but blockService.GetBlock was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Slug string
		F    render.Filter
	}{Ctx: ctx, Slug: slug, F: f}
	mock.lockGetBlock.Lock()
	mock.calls.GetBlock = append(mock.calls.GetBlock, callInfo)
	mock.lockGetBlock.Unlock()
	return mock.GetBlockFunc(ctx, slug, f)
}

func (mock *blockServiceMock) GetBlockCalls() []struct {
	Ctx  context.Context
	Slug string
	F    render.Filter
} {
	mock.lockGetBlock.RLock()
	calls := mock.calls.GetBlock
	mock.lockGetBlock.RUnlock()
	return calls
}
