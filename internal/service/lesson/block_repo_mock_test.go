package lesson

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/nenadmarinkovic/sprachenwald/internal/domain"
)

var _ blockRepo = &blockRepoMock{}

type blockRepoMock struct {
	ListByLessonFunc  func(ctx context.Context, lessonID uuid.UUID) ([]domain.Block, error)
	SlugsByLessonFunc func(ctx context.Context, lessonID uuid.UUID) ([]string, error)

	calls struct {
		ListByLesson []struct {
			Ctx      context.Context
			LessonID uuid.UUID
		}
		SlugsByLesson []struct {
			Ctx      context.Context
			LessonID uuid.UUID
		}
	}
	lockListByLesson  sync.RWMutex
	lockSlugsByLesson sync.RWMutex
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

func (mock *blockRepoMock) SlugsByLesson(ctx context.Context, lessonID uuid.UUID) ([]string, error) {
	if mock.SlugsByLessonFunc == nil {
		panic("blockRepoMock.SlugsByLessonFunc: method is nil but blockRepo.SlugsByLesson was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		LessonID uuid.UUID
	}{Ctx: ctx, LessonID: lessonID}
	mock.lockSlugsByLesson.Lock()
	mock.calls.SlugsByLesson = append(mock.calls.SlugsByLesson, callInfo)
	mock.lockSlugsByLesson.Unlock()
	return mock.SlugsByLessonFunc(ctx, lessonID)
}

func (mock *blockRepoMock) SlugsByLessonCalls() []struct {
	Ctx      context.Context
	LessonID uuid.UUID
} {
	mock.lockSlugsByLesson.RLock()
	calls := mock.calls.SlugsByLesson
	mock.lockSlugsByLesson.RUnlock()
	return calls
}
