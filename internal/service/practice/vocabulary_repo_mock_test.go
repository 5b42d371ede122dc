package practice

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/nenadmarinkovic/sprachenwald/internal/domain"
)

var _ vocabularyRepo = &vocabularyRepoMock{}

type vocabularyRepoMock struct {
	ListByUserFunc func(ctx context.Context, userID uuid.UUID, limit int) ([]domain.VocabularyWord, error)
	GetByIDFunc    func(ctx context.Context, id uuid.UUID) (domain.VocabularyWord, error)

	calls struct {
		ListByUser []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Limit  int
		}
		GetByID []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
	}
	lockListByUser sync.RWMutex
	lockGetByID    sync.RWMutex
}

func (mock *vocabularyRepoMock) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]domain.VocabularyWord, error) {
	if mock.ListByUserFunc == nil {
		panic("vocabularyRepoMock.ListByUserFunc: method is nil but vocabularyRepo.ListByUser was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Limit  int
	}{Ctx: ctx, UserID: userID, Limit: limit}
	mock.lockListByUser.Lock()
	mock.calls.ListByUser = append(mock.calls.ListByUser, callInfo)
	mock.lockListByUser.Unlock()
	return mock.ListByUserFunc(ctx, userID, limit)
}

func (mock *vocabularyRepoMock) ListByUserCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Limit  int
} {
	mock.lockListByUser.RLock()
	calls := mock.calls.ListByUser
	mock.lockListByUser.RUnlock()
	return calls
}

func (mock *vocabularyRepoMock) GetByID(ctx context.Context, id uuid.UUID) (domain.VocabularyWord, error) {
	if mock.GetByIDFunc == nil {
		panic("vocabularyRepoMock.GetByIDFunc: method is nil but vocabularyRepo.GetByID was just called")
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

func (mock *vocabularyRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}
