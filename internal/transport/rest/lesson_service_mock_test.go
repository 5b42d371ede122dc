package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/nenadmarinkovic/sprachenwald/internal/domain"
	"github.com/nenadmarinkovic/sprachenwald/internal/service/lesson"
)

var _ lessonService = &lessonServiceMock{}

type lessonServiceMock struct {
	ListLessonsFunc    func(ctx context.Context) ([]domain.Lesson, error)
	GetLessonFunc      func(ctx context.Context, slug string) (lesson.LessonWithBlocks, error)
	CreateLessonFunc   func(ctx context.Context, input lesson.CreateLessonInput) (domain.Lesson, error)
	UpdateLessonFunc   func(ctx context.Context, input lesson.UpdateLessonInput) (domain.Lesson, error)
	DeleteLessonFunc   func(ctx context.Context, id uuid.UUID) error
	ReorderLessonsFunc func(ctx context.Context, input lesson.ReorderLessonsInput) ([]domain.Lesson, error)

	calls struct {
		ListLessons []struct{ Ctx context.Context }
		GetLesson   []struct {
			Ctx  context.Context
			Slug string
		}
		CreateLesson []struct {
			Ctx   context.Context
			Input lesson.CreateLessonInput
		}
		UpdateLesson []struct {
			Ctx   context.Context
			Input lesson.UpdateLessonInput
		}
		DeleteLesson []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		ReorderLessons []struct {
			Ctx   context.Context
			Input lesson.ReorderLessonsInput
		}
	}
	lockListLessons    sync.RWMutex
	lockGetLesson      sync.RWMutex
	lockCreateLesson   sync.RWMutex
	lockUpdateLesson   sync.RWMutex
	lockDeleteLesson   sync.RWMutex
	lockReorderLessons sync.RWMutex
}

func (mock *lessonServiceMock) ListLessons(ctx context.Context) ([]domain.Lesson, error) {
	if mock.ListLessonsFunc == nil {
		panic("lessonServiceMock.ListLessonsFunc: method is nil but lessonService.ListLessons was just called")
	}
	callInfo := struct{ Ctx context.Context }{Ctx: ctx}
	mock.lockListLessons.Lock()
	mock.calls.ListLessons = append(mock.calls.ListLessons, callInfo)
	mock.lockListLessons.Unlock()
	return mock.ListLessonsFunc(ctx)
}

func (mock *lessonServiceMock) ListLessonsCalls() []struct{ Ctx context.Context } {
	mock.lockListLessons.RLock()
	calls := mock.calls.ListLessons
	mock.lockListLessons.RUnlock()
	return calls
}

func (mock *lessonServiceMock) GetLesson(ctx context.Context, slug string) (lesson.LessonWithBlocks, error) {
	if mock.GetLessonFunc == nil {
		panic("lessonServiceMock.GetLessonFunc: method is nil but lessonService.GetLesson was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Slug string
	}{Ctx: ctx, Slug: slug}
	mock.lockGetLesson.Lock()
	mock.calls.GetLesson = append(mock.calls.GetLesson, callInfo)
	mock.lockGetLesson.Unlock()
	return mock.GetLessonFunc(ctx, slug)
}

func (mock *lessonServiceMock) GetLessonCalls() []struct {
	Ctx  context.Context
	Slug string
} {
	mock.lockGetLesson.RLock()
	calls := mock.calls.GetLesson
	mock.lockGetLesson.RUnlock()
	return calls
}

func (mock *lessonServiceMock) CreateLesson(ctx context.Context, input lesson.CreateLessonInput) (domain.Lesson, error) {
	if mock.CreateLessonFunc == nil {
		panic("lessonServiceMock.CreateLessonFunc: method is nil but lessonService.CreateLesson was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input lesson.CreateLessonInput
	}{Ctx: ctx, Input: input}
	mock.lockCreateLesson.Lock()
	mock.calls.CreateLesson = append(mock.calls.CreateLesson, callInfo)
	mock.lockCreateLesson.Unlock()
	return mock.CreateLessonFunc(ctx, input)
}

func (mock *lessonServiceMock) CreateLessonCalls() []struct {
	Ctx   context.Context
	Input lesson.CreateLessonInput
} {
	mock.lockCreateLesson.RLock()
	calls := mock.calls.CreateLesson
	mock.lockCreateLesson.RUnlock()
	return calls
}

func (mock *lessonServiceMock) UpdateLesson(ctx context.Context, input lesson.UpdateLessonInput) (domain.Lesson, error) {
	if mock.UpdateLessonFunc == nil {
		panic("lessonServiceMock.UpdateLessonFunc: method is nil but lessonService.UpdateLesson was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input lesson.UpdateLessonInput
	}{Ctx: ctx, Input: input}
	mock.lockUpdateLesson.Lock()
	mock.calls.UpdateLesson = append(mock.calls.UpdateLesson, callInfo)
	mock.lockUpdateLesson.Unlock()
	return mock.UpdateLessonFunc(ctx, input)
}

func (mock *lessonServiceMock) UpdateLessonCalls() []struct {
	Ctx   context.Context
	Input lesson.UpdateLessonInput
} {
	mock.lockUpdateLesson.RLock()
	calls := mock.calls.UpdateLesson
	mock.lockUpdateLesson.RUnlock()
	return calls
}

func (mock *lessonServiceMock) DeleteLesson(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteLessonFunc == nil {
		panic("lessonServiceMock.DeleteLessonFunc: method is nil but lessonService.DeleteLesson was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{Ctx: ctx, Id: id}
	mock.lockDeleteLesson.Lock()
	mock.calls.DeleteLesson = append(mock.calls.DeleteLesson, callInfo)
	mock.lockDeleteLesson.Unlock()
	return mock.DeleteLessonFunc(ctx, id)
}

func (mock *lessonServiceMock) DeleteLessonCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockDeleteLesson.RLock()
	calls := mock.calls.DeleteLesson
	mock.lockDeleteLesson.RUnlock()
	return calls
}

func (mock *lessonServiceMock) ReorderLessons(ctx context.Context, input lesson.ReorderLessonsInput) ([]domain.Lesson, error) {
	if mock.ReorderLessonsFunc == nil {
		panic("lessonServiceMock.ReorderLessonsFunc: method is nil but lessonService.ReorderLessons was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input lesson.ReorderLessonsInput
	}{Ctx: ctx, Input: input}
	mock.lockReorderLessons.Lock()
	mock.calls.ReorderLessons = append(mock.calls.ReorderLessons, callInfo)
	mock.lockReorderLessons.Unlock()
	return mock.ReorderLessonsFunc(ctx, input)
}

func (mock *lessonServiceMock) ReorderLessonsCalls() []struct {
	Ctx   context.Context
	Input lesson.ReorderLessonsInput
} {
	mock.lockReorderLessons.RLock()
	calls := mock.calls.ReorderLessons
	mock.lockReorderLessons.RUnlock()
	return calls
}
