package vocabulary

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/nenadmarinkovic/sprachenwald/internal/domain"
)

var _ vocabularyRepo = &vocabularyRepoMock{}

type vocabularyRepoMock struct {
	AddFunc        func(ctx context.Context, w domain.VocabularyWord) (domain.VocabularyWord, error)
	ListByUserFunc func(ctx context.Context, userID uuid.UUID, limit int) ([]domain.VocabularyWord, error)
	DeleteFunc     func(ctx context.Context, userID uuid.UUID, id uuid.UUID) error

	calls struct {
		Add []struct {
			Ctx context.Context
			W   domain.VocabularyWord
		}
		ListByUser []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Limit  int
		}
		Delete []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Id     uuid.UUID
		}
	}
	lockAdd        sync.RWMutex
	lockListByUser sync.RWMutex
	lockDelete     sync.RWMutex
}

func (mock *vocabularyRepoMock) Add(ctx context.Context, w domain.VocabularyWord) (domain.VocabularyWord, error) {
	if mock.AddFunc == nil {
		panic("vocabularyRepoMock.AddFunc: method is nil but vocabularyRepo.Add was just called")
	}
	callInfo := struct {
		Ctx context.Context
		W   domain.VocabularyWord
	}{Ctx: ctx, W: w}
	mock.lockAdd.Lock()
	mock.calls.Add = append(mock.calls.Add, callInfo)
	mock.lockAdd.Unlock()
	return mock.AddFunc(ctx, w)
}

func (mock *vocabularyRepoMock) AddCalls() []struct {
	Ctx context.Context
	W   domain.VocabularyWord
} {
	mock.lockAdd.RLock()
	calls := mock.calls.Add
	mock.lockAdd.RUnlock()
	return calls
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

func (mock *vocabularyRepoMock) Delete(ctx context.Context, userID uuid.UUID, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("vocabularyRepoMock.DeleteFunc: method is nil but vocabularyRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Id     uuid.UUID
	}{Ctx: ctx, UserID: userID, Id: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, userID, id)
}

func (mock *vocabularyRepoMock) DeleteCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Id     uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}
