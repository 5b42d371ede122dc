package resolver

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/nenadmarinkovic/sprachenwald/internal/domain"
	"github.com/nenadmarinkovic/sprachenwald/internal/service/vocabulary"
)

var _ vocabularyService = &vocabularyServiceMock{}

type vocabularyServiceMock struct {
	AddSelectedFunc func(ctx context.Context, input vocabulary.AddSelectedInput) ([]domain.VocabularyWord, error)
	ListFunc        func(ctx context.Context, tab domain.VocabularyTab) ([]vocabulary.TabGroup, error)
	DeleteFunc      func(ctx context.Context, id uuid.UUID) error

	calls struct {
		AddSelected []struct {
			Ctx   context.Context
			Input vocabulary.AddSelectedInput
		}
		List []struct {
			Ctx context.Context
			Tab domain.VocabularyTab
		}
		Delete []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
	}
	lockAddSelected sync.RWMutex
	lockList        sync.RWMutex
	lockDelete      sync.RWMutex
}

func (mock *vocabularyServiceMock) AddSelected(ctx context.Context, input vocabulary.AddSelectedInput) ([]domain.VocabularyWord, error) {
	if mock.AddSelectedFunc == nil {
		panic("vocabularyServiceMock.AddSelectedFunc: method is nil but vocabularyService.AddSelected was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input vocabulary.AddSelectedInput
	}{Ctx: ctx, Input: input}
	mock.lockAddSelected.Lock()
	mock.calls.AddSelected = append(mock.calls.AddSelected, callInfo)
	mock.lockAddSelected.Unlock()
	return mock.AddSelectedFunc(ctx, input)
}

func (mock *vocabularyServiceMock) AddSelectedCalls() []struct {
	Ctx   context.Context
	Input vocabulary.AddSelectedInput
} {
	mock.lockAddSelected.RLock()
	calls := mock.calls.AddSelected
	mock.lockAddSelected.RUnlock()
	return calls
}

func (mock *vocabularyServiceMock) List(ctx context.Context, tab domain.VocabularyTab) ([]vocabulary.TabGroup, error) {
	if mock.ListFunc == nil {
		panic("vocabularyServiceMock.ListFunc: method is nil but vocabularyService.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Tab domain.VocabularyTab
	}{Ctx: ctx, Tab: tab}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, tab)
}

func (mock *vocabularyServiceMock) ListCalls() []struct {
	Ctx context.Context
	Tab domain.VocabularyTab
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *vocabularyServiceMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("vocabularyServiceMock.DeleteFunc: method is nil but vocabularyService.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{Ctx: ctx, Id: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *vocabularyServiceMock) DeleteCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}
