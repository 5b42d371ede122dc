package resolver

import (
	"context"
	"sync"

	"github.com/nenadmarinkovic/sprachenwald/internal/service/practice"
)

var _ practiceService = &practiceServiceMock{}

type practiceServiceMock struct {
	DeckFunc   func(ctx context.Context, in practice.DeckInput) (practice.Deck, error)
	ReviewFunc func(ctx context.Context, in practice.ReviewInput) (practice.Card, error)

	calls struct {
		Deck []struct {
			Ctx context.Context
			In  practice.DeckInput
		}
		Review []struct {
			Ctx context.Context
			In  practice.ReviewInput
		}
	}
	lockDeck   sync.RWMutex
	lockReview sync.RWMutex
}

func (mock *practiceServiceMock) Deck(ctx context.Context, in practice.DeckInput) (practice.Deck, error) {
	if mock.DeckFunc == nil {
		panic("practiceServiceMock.DeckFunc: method is nil but practiceService.Deck was just called")
	}
	callInfo := struct {
		Ctx context.Context
		In  practice.DeckInput
	}{Ctx: ctx, In: in}
	mock.lockDeck.Lock()
	mock.calls.Deck = append(mock.calls.Deck, callInfo)
	mock.lockDeck.Unlock()
	return mock.DeckFunc(ctx, in)
}

func (mock *practiceServiceMock) DeckCalls() []struct {
	Ctx context.Context
	In  practice.DeckInput
} {
	mock.lockDeck.RLock()
	calls := mock.calls.Deck
	mock.lockDeck.RUnlock()
	return calls
}

func (mock *practiceServiceMock) Review(ctx context.Context, in practice.ReviewInput) (practice.Card, error) {
	if mock.ReviewFunc == nil {
		panic("practiceServiceMock.ReviewFunc: method is nil but practiceService.Review was just called")
	}
	callInfo := struct {
		Ctx context.Context
		In  practice.ReviewInput
	}{Ctx: ctx, In: in}
	mock.lockReview.Lock()
	mock.calls.Review = append(mock.calls.Review, callInfo)
	mock.lockReview.Unlock()
	return mock.ReviewFunc(ctx, in)
}

func (mock *practiceServiceMock) ReviewCalls() []struct {
	Ctx context.Context
	In  practice.ReviewInput
} {
	mock.lockReview.RLock()
	calls := mock.calls.Review
	mock.lockReview.RUnlock()
	return calls
}
