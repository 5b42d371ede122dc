package practice

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/nenadmarinkovic/sprachenwald/internal/domain"
)

var _ cardRepo = &cardRepoMock{}

type cardRepoMock struct {
	ByWordIDsFunc func(ctx context.Context, userID uuid.UUID, wordIDs []uuid.UUID) ([]domain.PracticeCard, error)
	UpsertFunc    func(ctx context.Context, c domain.PracticeCard) (domain.PracticeCard, error)

	calls struct {
		ByWordIDs []struct {
			Ctx     context.Context
			UserID  uuid.UUID
			WordIDs []uuid.UUID
		}
		Upsert []struct {
			Ctx context.Context
			C   domain.PracticeCard
		}
	}
	lockByWordIDs sync.RWMutex
	lockUpsert    sync.RWMutex
}

func (mock *cardRepoMock) ByWordIDs(ctx context.Context, userID uuid.UUID, wordIDs []uuid.UUID) ([]domain.PracticeCard, error) {
	if mock.ByWordIDsFunc == nil {
		panic("cardRepoMock.ByWordIDsFunc: method is nil but cardRepo.ByWordIDs was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		UserID  uuid.UUID
		WordIDs []uuid.UUID
	}{Ctx: ctx, UserID: userID, WordIDs: wordIDs}
	mock.lockByWordIDs.Lock()
	mock.calls.ByWordIDs = append(mock.calls.ByWordIDs, callInfo)
	mock.lockByWordIDs.Unlock()
	return mock.ByWordIDsFunc(ctx, userID, wordIDs)
}

func (mock *cardRepoMock) ByWordIDsCalls() []struct {
	Ctx     context.Context
	UserID  uuid.UUID
	WordIDs []uuid.UUID
} {
	mock.lockByWordIDs.RLock()
	calls := mock.calls.ByWordIDs
	mock.lockByWordIDs.RUnlock()
	return calls
}

func (mock *cardRepoMock) Upsert(ctx context.Context, c domain.PracticeCard) (domain.PracticeCard, error) {
	if mock.UpsertFunc == nil {
		panic("cardRepoMock.UpsertFunc: method is nil but cardRepo.Upsert was just called")
	}
	callInfo := struct {
		Ctx context.Context
		C   domain.PracticeCard
	}{Ctx: ctx, C: c}
	mock.lockUpsert.Lock()
	mock.calls.Upsert = append(mock.calls.Upsert, callInfo)
	mock.lockUpsert.Unlock()
	return mock.UpsertFunc(ctx, c)
}

func (mock *cardRepoMock) UpsertCalls() []struct {
	Ctx context.Context
	C   domain.PracticeCard
} {
	mock.lockUpsert.RLock()
	calls := mock.calls.Upsert
	mock.lockUpsert.RUnlock()
	return calls
}
