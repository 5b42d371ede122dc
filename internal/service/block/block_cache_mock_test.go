package block

import (
	"context"
	"sync"

	"github.com/nenadmarinkovic/sprachenwald/internal/domain"
)

var _ blockCache = &blockCacheMock{}

type blockCacheMock struct {
	GetBlockFunc   func(ctx context.Context, slug string) (domain.Block, bool, error)
	SetBlockFunc   func(ctx context.Context, b domain.Block) error
	InvalidateFunc func(ctx context.Context, slugs ...string) error

	calls struct {
		GetBlock []struct {
			Ctx  context.Context
			Slug string
		}
		SetBlock []struct {
			Ctx context.Context
			B   domain.Block
		}
		Invalidate []struct {
			Ctx   context.Context
			Slugs []string
		}
	}
	lockGetBlock   sync.RWMutex
	lockSetBlock   sync.RWMutex
	lockInvalidate sync.RWMutex
}

func (mock *blockCacheMock) GetBlock(ctx context.Context, slug string) (domain.Block, bool, error) {
	if mock.GetBlockFunc == nil {
		panic("blockCacheMock.GetBlockFunc: method is nil but blockCache.GetBlock was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Slug string
	}{Ctx: ctx, Slug: slug}
	mock.lockGetBlock.Lock()
	mock.calls.GetBlock = append(mock.calls.GetBlock, callInfo)
	mock.lockGetBlock.Unlock()
	return mock.GetBlockFunc(ctx, slug)
}

func (mock *blockCacheMock) GetBlockCalls() []struct {
	Ctx  context.Context
	Slug string
} {
	mock.lockGetBlock.RLock()
	calls := mock.calls.GetBlock
	mock.lockGetBlock.RUnlock()
	return calls
}

func (mock *blockCacheMock) SetBlock(ctx context.Context, b domain.Block) error {
	if mock.SetBlockFunc == nil {
		panic("blockCacheMock.SetBlockFunc: method is nil but blockCache.SetBlock was just called")
	}
	callInfo := struct {
		Ctx context.Context
		B   domain.Block
	}{Ctx: ctx, B: b}
	mock.lockSetBlock.Lock()
	mock.calls.SetBlock = append(mock.calls.SetBlock, callInfo)
	mock.lockSetBlock.Unlock()
	return mock.SetBlockFunc(ctx, b)
}

func (mock *blockCacheMock) SetBlockCalls() []struct {
	Ctx context.Context
	B   domain.Block
} {
	mock.lockSetBlock.RLock()
	calls := mock.calls.SetBlock
	mock.lockSetBlock.RUnlock()
	return calls
}

func (mock *blockCacheMock) Invalidate(ctx context.Context, slugs ...string) error {
	if mock.InvalidateFunc == nil {
		panic("blockCacheMock.InvalidateFunc: method is nil but blockCache.Invalidate was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Slugs []string
	}{Ctx: ctx, Slugs: slugs}
	mock.lockInvalidate.Lock()
	mock.calls.Invalidate = append(mock.calls.Invalidate, callInfo)
	mock.lockInvalidate.Unlock()
	return mock.InvalidateFunc(ctx, slugs...)
}

func (mock *blockCacheMock) InvalidateCalls() []struct {
	Ctx   context.Context
	Slugs []string
} {
	mock.lockInvalidate.RLock()
	calls := mock.calls.Invalidate
	mock.lockInvalidate.RUnlock()
	return calls
}
