package resolver

import (
	"context"
	"sync"

	"github.com/nenadmarinkovic/sprachenwald/internal/domain"
	"github.com/nenadmarinkovic/sprachenwald/internal/service/lesson"
)

var _ lessonService = &lessonServiceMock{}

type lessonServiceMock struct {
	ListLessonsFunc func(ctx context.Context) ([]domain.Lesson, error)
	GetLessonFunc   func(ctx context.Context, slug string) (lesson.LessonWithBlocks, error)

	calls struct {
		ListLessons []struct {
			Ctx context.Context
		}
		GetLesson []struct {
			Ctx  context.Context
			Slug string
		}
	}
	lockListLessons sync.RWMutex
	lockGetLesson   sync.RWMutex
}

func (mock *lessonServiceMock) ListLessons(ctx context.Context) ([]domain.Lesson, error) {
	if mock.ListLessonsFunc == nil {
		panic("lessonServiceMock.ListLessonsFunc: method is nil but lessonService.ListLessons was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockListLessons.Lock()
	mock.calls.ListLessons = append(mock.calls.ListLessons, callInfo)
	mock.lockListLessons.Unlock()
	return mock.ListLessonsFunc(ctx)
}

func (mock *lessonServiceMock) ListLessonsCalls() []struct {
	Ctx context.Context
} {
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
