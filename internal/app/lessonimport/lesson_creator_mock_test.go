package lessonimport

import (
	"context"
	"sync"

	"github.com/nenadmarinkovic/sprachenwald/internal/domain"
	"github.com/nenadmarinkovic/sprachenwald/internal/service/lesson"
)

var _ LessonCreator = &LessonCreatorMock{}

type LessonCreatorMock struct {
	CreateLessonFunc func(ctx context.Context, input lesson.CreateLessonInput) (domain.Lesson, error)

	calls struct {
		CreateLesson []struct {
			Ctx   context.Context
			Input lesson.CreateLessonInput
		}
	}
	lockCreateLesson sync.RWMutex
}

func (mock *LessonCreatorMock) CreateLesson(ctx context.Context, input lesson.CreateLessonInput) (domain.Lesson, error) {
	if mock.CreateLessonFunc == nil {
		panic("LessonCreatorMock.CreateLessonFunc: method is nil but LessonCreator.CreateLesson was just called")
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

func (mock *LessonCreatorMock) CreateLessonCalls() []struct {
	Ctx   context.Context
	Input lesson.CreateLessonInput
} {
	mock.lockCreateLesson.RLock()
	calls := mock.calls.CreateLesson
	mock.lockCreateLesson.RUnlock()
	return calls
}
