package lesson

import (
	"context"
	"sync"
)

var _ blockCache = &blockCacheMock{}

type blockCacheMock struct {
	InvalidateFunc func(ctx context.Context, slugs ...string) error

	calls struct {
		Invalidate []struct {
			Ctx   context.Context
			Slugs []string
		}
	}
	lockInvalidate sync.RWMutex
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
