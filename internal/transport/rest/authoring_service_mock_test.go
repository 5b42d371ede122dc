package rest

import (
	"context"
	"sync"

	"github.com/nenadmarinkovic/sprachenwald/internal/service/authoring"
)

var _ authoringService = &authoringServiceMock{}

type authoringServiceMock struct {
	RunFunc func(ctx context.Context, input authoring.Input) (authoring.Result, error)

	calls struct {
		Run []struct {
			Ctx   context.Context
			Input authoring.Input
		}
	}
	lockRun sync.RWMutex
}

func (mock *authoringServiceMock) Run(ctx context.Context, input authoring.Input) (authoring.Result, error) {
	if mock.RunFunc == nil {
		panic("authoringServiceMock.RunFunc: method is nil but authoringService.Run was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input authoring.Input
	}{Ctx: ctx, Input: input}
	mock.lockRun.Lock()
	mock.calls.Run = append(mock.calls.Run, callInfo)
	mock.lockRun.Unlock()
	return mock.RunFunc(ctx, input)
}

func (mock *authoringServiceMock) RunCalls() []struct {
	Ctx   context.Context
	Input authoring.Input
} {
	mock.lockRun.RLock()
	calls := mock.calls.Run
	mock.lockRun.RUnlock()
	return calls
}
