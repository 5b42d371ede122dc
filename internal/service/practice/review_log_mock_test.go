package practice

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/nenadmarinkovic/sprachenwald/internal/domain"
)

var _ reviewLog = &reviewLogMock{}

type reviewLogMock struct {
	CreateFunc     func(ctx context.Context, r domain.PracticeReview) (domain.PracticeReview, error)
	CountSinceFunc func(ctx context.Context, userID uuid.UUID, since time.Time) (int, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			R   domain.PracticeReview
		}
		CountSince []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Since  time.Time
		}
	}
	lockCreate     sync.RWMutex
	lockCountSince sync.RWMutex
}

func (mock *reviewLogMock) Create(ctx context.Context, r domain.PracticeReview) (domain.PracticeReview, error) {
	if mock.CreateFunc == nil {
		panic("reviewLogMock.CreateFunc: method is nil but reviewLog.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		R   domain.PracticeReview
	}{Ctx: ctx, R: r}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, r)
}

func (mock *reviewLogMock) CreateCalls() []struct {
	Ctx context.Context
	R   domain.PracticeReview
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *reviewLogMock) CountSince(ctx context.Context, userID uuid.UUID, since time.Time) (int, error) {
	if mock.CountSinceFunc == nil {
		panic("reviewLogMock.CountSinceFunc: method is nil but reviewLog.CountSince was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Since  time.Time
	}{Ctx: ctx, UserID: userID, Since: since}
	mock.lockCountSince.Lock()
	mock.calls.CountSince = append(mock.calls.CountSince, callInfo)
	mock.lockCountSince.Unlock()
	return mock.CountSinceFunc(ctx, userID, since)
}

func (mock *reviewLogMock) CountSinceCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Since  time.Time
} {
	mock.lockCountSince.RLock()
	calls := mock.calls.CountSince
	mock.lockCountSince.RUnlock()
	return calls
}
