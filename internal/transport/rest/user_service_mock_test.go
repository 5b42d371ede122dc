package rest

import (
	"context"
	"sync"

	"github.com/nenadmarinkovic/sprachenwald/internal/domain"
	"github.com/nenadmarinkovic/sprachenwald/internal/service/user"
)

var _ userService = &userServiceMock{}

type userServiceMock struct {
	SyncProfileFunc func(ctx context.Context, input user.SyncProfileInput) (domain.User, error)
	MeFunc          func(ctx context.Context) (domain.User, error)
	SetRoleFunc     func(ctx context.Context, input user.SetRoleInput) (domain.User, error)

	calls struct {
		SyncProfile []struct {
			Ctx   context.Context
			Input user.SyncProfileInput
		}
		Me      []struct{ Ctx context.Context }
		SetRole []struct {
			Ctx   context.Context
			Input user.SetRoleInput
		}
	}
	lockSyncProfile sync.RWMutex
	lockMe          sync.RWMutex
	lockSetRole     sync.RWMutex
}

func (mock *userServiceMock) SyncProfile(ctx context.Context, input user.SyncProfileInput) (domain.User, error) {
	if mock.SyncProfileFunc == nil {
		panic("userServiceMock.SyncProfileFunc: method is nil but userService.SyncProfile was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input user.SyncProfileInput
	}{Ctx: ctx, Input: input}
	mock.lockSyncProfile.Lock()
	mock.calls.SyncProfile = append(mock.calls.SyncProfile, callInfo)
	mock.lockSyncProfile.Unlock()
	return mock.SyncProfileFunc(ctx, input)
}

func (mock *userServiceMock) SyncProfileCalls() []struct {
	Ctx   context.Context
	Input user.SyncProfileInput
} {
	mock.lockSyncProfile.RLock()
	calls := mock.calls.SyncProfile
	mock.lockSyncProfile.RUnlock()
	return calls
}

func (mock *userServiceMock) Me(ctx context.Context) (domain.User, error) {
	if mock.MeFunc == nil {
		panic("userServiceMock.MeFunc: method is nil but userService.Me was just called")
	}
	callInfo := struct{ Ctx context.Context }{Ctx: ctx}
	mock.lockMe.Lock()
	mock.calls.Me = append(mock.calls.Me, callInfo)
	mock.lockMe.Unlock()
	return mock.MeFunc(ctx)
}

func (mock *userServiceMock) MeCalls() []struct{ Ctx context.Context } {
	mock.lockMe.RLock()
	calls := mock.calls.Me
	mock.lockMe.RUnlock()
	return calls
}

func (mock *userServiceMock) SetRole(ctx context.Context, input user.SetRoleInput) (domain.User, error) {
	if mock.SetRoleFunc == nil {
		panic("userServiceMock.SetRoleFunc: method is nil but userService.SetRole was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input user.SetRoleInput
	}{Ctx: ctx, Input: input}
	mock.lockSetRole.Lock()
	mock.calls.SetRole = append(mock.calls.SetRole, callInfo)
	mock.lockSetRole.Unlock()
	return mock.SetRoleFunc(ctx, input)
}

func (mock *userServiceMock) SetRoleCalls() []struct {
	Ctx   context.Context
	Input user.SetRoleInput
} {
	mock.lockSetRole.RLock()
	calls := mock.calls.SetRole
	mock.lockSetRole.RUnlock()
	return calls
}
