package block

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/nenadmarinkovic/sprachenwald/internal/domain"
)

var _ blockRepo = &blockRepoMock{}

type blockRepoMock struct {
	ListByLessonFunc func(ctx context.Context, lessonID uuid.UUID) ([]domain.Block, error)
	ListOutlinesFunc func(ctx context.Context) (map[uuid.UUID][]domain.Block, error)
	GetByIDFunc      func(ctx context.Context, id uuid.UUID) (domain.Block, error)
	GetBySlugFunc    func(ctx context.Context, slug string) (domain.Block, error)
	NextOrderFunc    func(ctx context.Context, lessonID uuid.UUID) (int, error)
	CreateFunc       func(ctx context.Context, blocks []domain.Block) ([]domain.Block, error)
	UpdateFunc       func(ctx context.Context, b domain.Block) (domain.Block, error)
	DeleteFunc       func(ctx context.Context, id uuid.UUID) (string, error)
	SetOrderFunc     func(ctx context.Context, lessonID uuid.UUID, ids []uuid.UUID) error

	calls struct {
		ListByLesson []struct {
			Ctx      context.Context
			LessonID uuid.UUID
		}
		ListOutlines []struct{ Ctx context.Context }
		GetByID      []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		GetBySlug []struct {
			Ctx  context.Context
			Slug string
		}
		NextOrder []struct {
			Ctx      context.Context
			LessonID uuid.UUID
		}
		Create []struct {
			Ctx    context.Context
			Blocks []domain.Block
		}
		Update []struct {
			Ctx context.Context
			B   domain.Block
		}
		Delete []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		SetOrder []struct {
			Ctx      context.Context
			LessonID uuid.UUID
			Ids      []uuid.UUID
		}
	}
	lockListByLesson sync.RWMutex
	lockListOutlines sync.RWMutex
	lockGetByID      sync.RWMutex
	lockGetBySlug    sync.RWMutex
	lockNextOrder    sync.RWMutex
	lockCreate       sync.RWMutex
	lockUpdate       sync.RWMutex
	lockDelete       sync.RWMutex
	lockSetOrder     sync.RWMutex
}

func (mock *blockRepoMock) ListByLesson(ctx context.Context, lessonID uuid.UUID) ([]domain.Block, error) {
	if mock.ListByLessonFunc == nil {
		panic("blockRepoMock.ListByLessonFunc: method is nil but blockRepo.ListByLesson was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		LessonID uuid.UUID
	}{Ctx: ctx, LessonID: lessonID}
	mock.lockListByLesson.Lock()
	mock.calls.ListByLesson = append(mock.calls.ListByLesson, callInfo)
	mock.lockListByLesson.Unlock()
	return mock.ListByLessonFunc(ctx, lessonID)
}

func (mock *blockRepoMock) ListByLessonCalls() []struct {
	Ctx      context.Context
	LessonID uuid.UUID
} {
	mock.lockListByLesson.RLock()
	calls := mock.calls.ListByLesson
	mock.lockListByLesson.RUnlock()
	return calls
}

func (mock *blockRepoMock) ListOutlines(ctx context.Context) (map[uuid.UUID][]domain.Block, error) {
	if mock.ListOutlinesFunc == nil {
		panic("blockRepoMock.ListOutlinesFunc: method is nil but blockRepo.ListOutlines was just called")
	}
	callInfo := struct{ Ctx context.Context }{Ctx: ctx}
	mock.lockListOutlines.Lock()
	mock.calls.ListOutlines = append(mock.calls.ListOutlines, callInfo)
	mock.lockListOutlines.Unlock()
	return mock.ListOutlinesFunc(ctx)
}

func (mock *blockRepoMock) ListOutlinesCalls() []struct{ Ctx context.Context } {
	mock.lockListOutlines.RLock()
	calls := mock.calls.ListOutlines
	mock.lockListOutlines.RUnlock()
	return calls
}

func (mock *blockRepoMock) GetByID(ctx context.Context, id uuid.UUID) (domain.Block, error) {
	if mock.GetByIDFunc == nil {
		panic("blockRepoMock.GetByIDFunc: method is nil but blockRepo.GetByID was just called")
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

func (mock *blockRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *blockRepoMock) GetBySlug(ctx context.Context, slug string) (domain.Block, error) {
	if mock.GetBySlugFunc == nil {
		panic("blockRepoMock.GetBySlugFunc: method is nil but blockRepo.GetBySlug was just called")
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

func (mock *blockRepoMock) GetBySlugCalls() []struct {
	Ctx  context.Context
	Slug string
} {
	mock.lockGetBySlug.RLock()
	calls := mock.calls.GetBySlug
	mock.lockGetBySlug.RUnlock()
	return calls
}

func (mock *blockRepoMock) NextOrder(ctx context.Context, lessonID uuid.UUID) (int, error) {
	if mock.NextOrderFunc == nil {
		panic("blockRepoMock.NextOrderFunc: method is nil but blockRepo.NextOrder was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		LessonID uuid.UUID
	}{Ctx: ctx, LessonID: lessonID}
	mock.lockNextOrder.Lock()
	mock.calls.NextOrder = append(mock.calls.NextOrder, callInfo)
	mock.lockNextOrder.Unlock()
	return mock.NextOrderFunc(ctx, lessonID)
}

func (mock *blockRepoMock) NextOrderCalls() []struct {
	Ctx      context.Context
	LessonID uuid.UUID
} {
	mock.lockNextOrder.RLock()
	calls := mock.calls.NextOrder
	mock.lockNextOrder.RUnlock()
	return calls
}

func (mock *blockRepoMock) Create(ctx context.Context, blocks []domain.Block) ([]domain.Block, error) {
	if mock.CreateFunc == nil {
		panic("blockRepoMock.CreateFunc: method is nil but blockRepo.Create was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Blocks []domain.Block
	}{Ctx: ctx, Blocks: blocks}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, blocks)
}

func (mock *blockRepoMock) CreateCalls() []struct {
	Ctx    context.Context
	Blocks []domain.Block
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *blockRepoMock) Update(ctx context.Context, b domain.Block) (domain.Block, error) {
	if mock.UpdateFunc == nil {
		panic("blockRepoMock.UpdateFunc: method is nil but blockRepo.Update was just called")
	}
	callInfo := struct {
		Ctx context.Context
		B   domain.Block
	}{Ctx: ctx, B: b}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, b)
}

func (mock *blockRepoMock) UpdateCalls() []struct {
	Ctx context.Context
	B   domain.Block
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *blockRepoMock) Delete(ctx context.Context, id uuid.UUID) (string, error) {
	if mock.DeleteFunc == nil {
		panic("blockRepoMock.DeleteFunc: method is nil but blockRepo.Delete was just called")
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

func (mock *blockRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *blockRepoMock) SetOrder(ctx context.Context, lessonID uuid.UUID, ids []uuid.UUID) error {
	if mock.SetOrderFunc == nil {
		panic("blockRepoMock.SetOrderFunc: method is nil but blockRepo.SetOrder was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		LessonID uuid.UUID
		Ids      []uuid.UUID
	}{Ctx: ctx, LessonID: lessonID, Ids: ids}
	mock.lockSetOrder.Lock()
	mock.calls.SetOrder = append(mock.calls.SetOrder, callInfo)
	mock.lockSetOrder.Unlock()
	return mock.SetOrderFunc(ctx, lessonID, ids)
}

func (mock *blockRepoMock) SetOrderCalls() []struct {
	Ctx      context.Context
	LessonID uuid.UUID
	Ids      []uuid.UUID
} {
	mock.lockSetOrder.RLock()
	calls := mock.calls.SetOrder
	mock.lockSetOrder.RUnlock()
	return calls
}
