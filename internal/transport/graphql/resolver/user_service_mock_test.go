package resolver

import (
	"context"
	"sync"

	"github.com/nenadmarinkovic/sprachenwald/internal/domain"
)

var _ userService = &userServiceMock{}

type userServiceMock struct {
	MeFunc func(ctx context.Context) (domain.User, error)

	calls struct {
		Me []struct {
			Ctx context.Context
		}
	}
	lockMe sync.RWMutex
}

func (mock *userServiceMock) Me(ctx context.Context) (domain.User, error) {
	if mock.MeFunc == nil {
		panic("userServiceMock.MeFunc: method is nil but userService.Me was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockMe.Lock()
	mock.calls.Me = append(mock.calls.Me, callInfo)
	mock.lockMe.Unlock()
	return mock.MeFunc(ctx)
}

func (mock *userServiceMock) MeCalls() []struct {
	Ctx context.Context
} {
	mock.lockMe.RLock()
	calls := mock.calls.Me
	mock.lockMe.RUnlock()
	return calls
}
