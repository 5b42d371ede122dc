package lesson

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/nenadmarinkovic/sprachenwald/internal/domain"
)

var _ lessonRepo = &lessonRepoMock{}

type lessonRepoMock struct {
	ListFunc      func(ctx context.Context) ([]domain.Lesson, error)
	GetByIDFunc   func(ctx context.Context, id uuid.UUID) (domain.Lesson, error)
	GetBySlugFunc func(ctx context.Context, slug string) (domain.Lesson, error)
	NextOrderFunc func(ctx context.Context) (int, error)
	CreateFunc    func(ctx context.Context, l domain.Lesson) (domain.Lesson, error)
	UpdateFunc    func(ctx context.Context, l domain.Lesson) (domain.Lesson, error)
	DeleteFunc    func(ctx context.Context, id uuid.UUID) error
	SetOrderFunc  func(ctx context.Context, ids []uuid.UUID) error

	calls struct {
		List    []struct{ Ctx context.Context }
		GetByID []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		GetBySlug []struct {
			Ctx  context.Context
			Slug string
		}
		NextOrder []struct{ Ctx context.Context }
		Create    []struct {
			Ctx context.Context
			L   domain.Lesson
		}
		Update []struct {
			Ctx context.Context
			L   domain.Lesson
		}
		Delete []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		SetOrder []struct {
			Ctx context.Context
			Ids []uuid.UUID
		}
	}
	lockList      sync.RWMutex
	lockGetByID   sync.RWMutex
	lockGetBySlug sync.RWMutex
	lockNextOrder sync.RWMutex
	lockCreate    sync.RWMutex
	lockUpdate    sync.RWMutex
	lockDelete    sync.RWMutex
	lockSetOrder  sync.RWMutex
}

func (mock *lessonRepoMock) List(ctx context.Context) ([]domain.Lesson, error) {
	if mock.ListFunc == nil {
		panic("lessonRepoMock.ListFunc: method is nil but lessonRepo.List was just called")
	}
	callInfo := struct{ Ctx context.Context }{Ctx: ctx}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx)
}

func (mock *lessonRepoMock) ListCalls() []struct{ Ctx context.Context } {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *lessonRepoMock) GetByID(ctx context.Context, id uuid.UUID) (domain.Lesson, error) {
	if mock.GetByIDFunc == nil {
		panic("lessonRepoMock.GetByIDFunc: method is nil but lessonRepo.GetByID was just called")
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

func (mock *lessonRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *lessonRepoMock) GetBySlug(ctx context.Context, slug string) (domain.Lesson, error) {
	if mock.GetBySlugFunc == nil {
		panic("lessonRepoMock.GetBySlugFunc: method is nil but lessonRepo.GetBySlug was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Slug string
	}{Ctx: ctx, Slug: slug}
	mock.lockGetBySlug.Lock()
	mock.calls.GetBySlug = append(mock.calls.GetBySlug, callInfo)
	mock.lockGetBySlug.Unlock()
	return mock.GetBySlugFunc(ctx, slug)
}

func (mock *lessonRepoMock) GetBySlugCalls() []struct {
	Ctx  context.Context
	Slug string
} {
	mock.lockGetBySlug.RLock()
	calls := mock.calls.GetBySlug
	mock.lockGetBySlug.RUnlock()
	return calls
}

func (mock *lessonRepoMock) NextOrder(ctx context.Context) (int, error) {
	if mock.NextOrderFunc == nil {
		panic("lessonRepoMock.NextOrderFunc: method is nil but lessonRepo.NextOrder was just called")
	}
	callInfo := struct{ Ctx context.Context }{Ctx: ctx}
	mock.lockNextOrder.Lock()
	mock.calls.NextOrder = append(mock.calls.NextOrder, callInfo)
	mock.lockNextOrder.Unlock()
	return mock.NextOrderFunc(ctx)
}

func (mock *lessonRepoMock) NextOrderCalls() []struct{ Ctx context.Context } {
	mock.lockNextOrder.RLock()
	calls := mock.calls.NextOrder
	mock.lockNextOrder.RUnlock()
	return calls
}

func (mock *lessonRepoMock) Create(ctx context.Context, l domain.Lesson) (domain.Lesson, error) {
	if mock.CreateFunc == nil {
		panic("lessonRepoMock.CreateFunc: method is nil but lessonRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		L   domain.Lesson
	}{Ctx: ctx, L: l}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, l)
}

func (mock *lessonRepoMock) CreateCalls() []struct {
	Ctx context.Context
	L   domain.Lesson
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *lessonRepoMock) Update(ctx context.Context, l domain.Lesson) (domain.Lesson, error) {
	if mock.UpdateFunc == nil {
		panic("lessonRepoMock.UpdateFunc: method is nil but lessonRepo.Update was just called")
	}
	callInfo := struct {
		Ctx context.Context
		L   domain.Lesson
	}{Ctx: ctx, L: l}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, l)
}

func (mock *lessonRepoMock) UpdateCalls() []struct {
	Ctx context.Context
	L   domain.Lesson
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *lessonRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("lessonRepoMock.DeleteFunc: method is nil but lessonRepo.Delete was just called")
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

func (mock *lessonRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *lessonRepoMock) SetOrder(ctx context.Context, ids []uuid.UUID) error {
	if mock.SetOrderFunc == nil {
		panic("lessonRepoMock.SetOrderFunc: method is nil but lessonRepo.SetOrder was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Ids []uuid.UUID
	}{Ctx: ctx, Ids: ids}
	mock.lockSetOrder.Lock()
	mock.calls.SetOrder = append(mock.calls.SetOrder, callInfo)
	mock.lockSetOrder.Unlock()
	return mock.SetOrderFunc(ctx, ids)
}

func (mock *lessonRepoMock) SetOrderCalls() []struct {
	Ctx context.Context
	Ids []uuid.UUID
} {
	mock.lockSetOrder.RLock()
	calls := mock.calls.SetOrder
	mock.lockSetOrder.RUnlock()
	return calls
}
