package user

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/nenadmarinkovic/sprachenwald/internal/domain"
)

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	UpsertFunc     func(ctx context.Context, u domain.User) (domain.User, error)
	GetByIDFunc    func(ctx context.Context, id uuid.UUID) (domain.User, error)
	GetByEmailFunc func(ctx context.Context, email string) (domain.User, error)
	SetRoleFunc    func(ctx context.Context, id uuid.UUID, role domain.UserRole) (domain.User, error)

	calls struct {
		Upsert []struct {
			Ctx context.Context
			U   domain.User
		}
		GetByID []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		GetByEmail []struct {
			Ctx   context.Context
			Email string
		}
		SetRole []struct {
			Ctx  context.Context
			Id   uuid.UUID
			Role domain.UserRole
		}
	}
	lockUpsert     sync.RWMutex
	lockGetByID    sync.RWMutex
	lockGetByEmail sync.RWMutex
	lockSetRole    sync.RWMutex
}

func (mock *userRepoMock) Upsert(ctx context.Context, u domain.User) (domain.User, error) {
	if mock.UpsertFunc == nil {
		panic("userRepoMock.UpsertFunc: method is nil but userRepo.Upsert was just called")
	}
	callInfo := struct {
		Ctx context.Context
		U   domain.User
	}{Ctx: ctx, U: u}
	mock.lockUpsert.Lock()
	mock.calls.Upsert = append(mock.calls.Upsert, callInfo)
	mock.lockUpsert.Unlock()
	return mock.UpsertFunc(ctx, u)
}

func (mock *userRepoMock) UpsertCalls() []struct {
	Ctx context.Context
	U   domain.User
} {
	mock.lockUpsert.RLock()
	calls := mock.calls.Upsert
	mock.lockUpsert.RUnlock()
	return calls
}

func (mock *userRepoMock) GetByID(ctx context.Context, id uuid.UUID) (domain.User, error) {
	if mock.GetByIDFunc == nil {
		panic("userRepoMock.GetByIDFunc: method is nil but userRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{Ctx: ctx, Id: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *userRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *userRepoMock) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	if mock.GetByEmailFunc == nil {
		panic("userRepoMock.GetByEmailFunc: method is nil but userRepo.GetByEmail was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Email string
	}{Ctx: ctx, Email: email}
	mock.lockGetByEmail.Lock()
	mock.calls.GetByEmail = append(mock.calls.GetByEmail, callInfo)
	mock.lockGetByEmail.Unlock()
	return mock.GetByEmailFunc(ctx, email)
}

func (mock *userRepoMock) GetByEmailCalls() []struct {
	Ctx   context.Context
	Email string
} {
	mock.lockGetByEmail.RLock()
	calls := mock.calls.GetByEmail
	mock.lockGetByEmail.RUnlock()
	return calls
}

func (mock *userRepoMock) SetRole(ctx context.Context, id uuid.UUID, role domain.UserRole) (domain.User, error) {
	if mock.SetRoleFunc == nil {
		panic("userRepoMock.SetRoleFunc: method is nil but userRepo.SetRole was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Id   uuid.UUID
		Role domain.UserRole
	}{Ctx: ctx, Id: id, Role: role}
	mock.lockSetRole.Lock()
	mock.calls.SetRole = append(mock.calls.SetRole, callInfo)
	mock.lockSetRole.Unlock()
	return mock.SetRoleFunc(ctx, id, role)
}

func (mock *userRepoMock) SetRoleCalls() []struct {
	Ctx  context.Context
	Id   uuid.UUID
	Role domain.UserRole
} {
	mock.lockSetRole.RLock()
	calls := mock.calls.SetRole
	mock.lockSetRole.RUnlock()
	return calls
}
