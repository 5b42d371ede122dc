package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/nenadmarinkovic/sprachenwald/internal/domain"
	"github.com/nenadmarinkovic/sprachenwald/internal/render"
	"github.com/nenadmarinkovic/sprachenwald/internal/service/block"
)

var _ blockService = &blockServiceMock{}

type blockServiceMock struct {
	GetBlockFunc        func(ctx context.Context, slug string, f render.Filter) (block.View, error)
	CheckQuizFunc       func(ctx context.Context, input block.CheckQuizInput) (bool, error)
	ListBlocksFunc      func(ctx context.Context, lessonID uuid.UUID) ([]block.Summary, error)
	GetBlockForEditFunc func(ctx context.Context, id uuid.UUID) (domain.Block, error)
	AddBlocksFunc       func(ctx context.Context, input block.AddBlocksInput) ([]domain.Block, error)
	UpdateBlockFunc     func(ctx context.Context, input block.UpdateBlockInput) (domain.Block, error)
	DeleteBlockFunc     func(ctx context.Context, id uuid.UUID) error
	ReorderBlocksFunc   func(ctx context.Context, input block.ReorderBlocksInput) ([]domain.Block, error)

	calls struct {
		GetBlock []struct {
			Ctx  context.Context
			Slug string
			F    render.Filter
		}
		CheckQuiz []struct {
			Ctx   context.Context
			Input block.CheckQuizInput
		}
		ListBlocks []struct {
			Ctx      context.Context
			LessonID uuid.UUID
		}
		GetBlockForEdit []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		AddBlocks []struct {
			Ctx   context.Context
			Input block.AddBlocksInput
		}
		UpdateBlock []struct {
			Ctx   context.Context
			Input block.UpdateBlockInput
		}
		DeleteBlock []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		ReorderBlocks []struct {
			Ctx   context.Context
			Input block.ReorderBlocksInput
		}
	}
	lockGetBlock        sync.RWMutex
	lockCheckQuiz       sync.RWMutex
	lockListBlocks      sync.RWMutex
	lockGetBlockForEdit sync.RWMutex
	lockAddBlocks       sync.RWMutex
	lockUpdateBlock     sync.RWMutex
	lockDeleteBlock     sync.RWMutex
	lockReorderBlocks   sync.RWMutex
}

func (mock *blockServiceMock) GetBlock(ctx context.Context, slug string, f render.Filter) (block.View, error) {
	if mock.GetBlockFunc == nil {
		panic("blockServiceMock.GetBlockFunc: method is nil but blockService.GetBlock was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Slug string
		F    render.Filter
	}{Ctx: ctx, Slug: slug, F: f}
	mock.lockGetBlock.Lock()
	mock.calls.GetBlock = append(mock.calls.GetBlock, callInfo)
	mock.lockGetBlock.Unlock()
	return mock.GetBlockFunc(ctx, slug, f)
}

func (mock *blockServiceMock) GetBlockCalls() []struct {
	Ctx  context.Context
	Slug string
	F    render.Filter
} {
	mock.lockGetBlock.RLock()
	calls := mock.calls.GetBlock
	mock.lockGetBlock.RUnlock()
	return calls
}

func (mock *blockServiceMock) CheckQuiz(ctx context.Context, input block.CheckQuizInput) (bool, error) {
	if mock.CheckQuizFunc == nil {
		panic("blockServiceMock.CheckQuizFunc: method is nil but blockService.CheckQuiz was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input block.CheckQuizInput
	}{Ctx: ctx, Input: input}
	mock.lockCheckQuiz.Lock()
	mock.calls.CheckQuiz = append(mock.calls.CheckQuiz, callInfo)
	mock.lockCheckQuiz.Unlock()
	return mock.CheckQuizFunc(ctx, input)
}

func (mock *blockServiceMock) CheckQuizCalls() []struct {
	Ctx   context.Context
	Input block.CheckQuizInput
} {
	mock.lockCheckQuiz.RLock()
	calls := mock.calls.CheckQuiz
	mock.lockCheckQuiz.RUnlock()
	return calls
}

func (mock *blockServiceMock) ListBlocks(ctx context.Context, lessonID uuid.UUID) ([]block.Summary, error) {
	if mock.ListBlocksFunc == nil {
		panic("blockServiceMock.ListBlocksFunc: method is nil but blockService.ListBlocks was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		LessonID uuid.UUID
	}{Ctx: ctx, LessonID: lessonID}
	mock.lockListBlocks.Lock()
	mock.calls.ListBlocks = append(mock.calls.ListBlocks, callInfo)
	mock.lockListBlocks.Unlock()
	return mock.ListBlocksFunc(ctx, lessonID)
}

func (mock *blockServiceMock) ListBlocksCalls() []struct {
	Ctx      context.Context
	LessonID uuid.UUID
} {
	mock.lockListBlocks.RLock()
	calls := mock.calls.ListBlocks
	mock.lockListBlocks.RUnlock()
	return calls
}

func (mock *blockServiceMock) GetBlockForEdit(ctx context.Context, id uuid.UUID) (domain.Block, error) {
	if mock.GetBlockForEditFunc == nil {
		panic("blockServiceMock.GetBlockForEditFunc: method is nil but blockService.GetBlockForEdit was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{Ctx: ctx, Id: id}
	mock.lockGetBlockForEdit.Lock()
	mock.calls.GetBlockForEdit = append(mock.calls.GetBlockForEdit, callInfo)
	mock.lockGetBlockForEdit.Unlock()
	return mock.GetBlockForEditFunc(ctx, id)
}

func (mock *blockServiceMock) GetBlockForEditCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockGetBlockForEdit.RLock()
	calls := mock.calls.GetBlockForEdit
	mock.lockGetBlockForEdit.RUnlock()
	return calls
}

func (mock *blockServiceMock) AddBlocks(ctx context.Context, input block.AddBlocksInput) ([]domain.Block, error) {
	if mock.AddBlocksFunc == nil {
		panic("blockServiceMock.AddBlocksFunc: method is nil but blockService.AddBlocks was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input block.AddBlocksInput
	}{Ctx: ctx, Input: input}
	mock.lockAddBlocks.Lock()
	mock.calls.AddBlocks = append(mock.calls.AddBlocks, callInfo)
	mock.lockAddBlocks.Unlock()
	return mock.AddBlocksFunc(ctx, input)
}

func (mock *blockServiceMock) AddBlocksCalls() []struct {
	Ctx   context.Context
	Input block.AddBlocksInput
} {
	mock.lockAddBlocks.RLock()
	calls := mock.calls.AddBlocks
	mock.lockAddBlocks.RUnlock()
	return calls
}

func (mock *blockServiceMock) UpdateBlock(ctx context.Context, input block.UpdateBlockInput) (domain.Block, error) {
	if mock.UpdateBlockFunc == nil {
		panic("blockServiceMock.UpdateBlockFunc: method is nil but blockService.UpdateBlock was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input block.UpdateBlockInput
	}{Ctx: ctx, Input: input}
	mock.lockUpdateBlock.Lock()
	mock.calls.UpdateBlock = append(mock.calls.UpdateBlock, callInfo)
	mock.lockUpdateBlock.Unlock()
	return mock.UpdateBlockFunc(ctx, input)
}

func (mock *blockServiceMock) UpdateBlockCalls() []struct {
	Ctx   context.Context
	Input block.UpdateBlockInput
} {
	mock.lockUpdateBlock.RLock()
	calls := mock.calls.UpdateBlock
	mock.lockUpdateBlock.RUnlock()
	return calls
}

func (mock *blockServiceMock) DeleteBlock(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteBlockFunc == nil {
		panic("blockServiceMock.DeleteBlockFunc: method is nil but blockService.DeleteBlock was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{Ctx: ctx, Id: id}
	mock.lockDeleteBlock.Lock()
	mock.calls.DeleteBlock = append(mock.calls.DeleteBlock, callInfo)
	mock.lockDeleteBlock.Unlock()
	return mock.DeleteBlockFunc(ctx, id)
}

func (mock *blockServiceMock) DeleteBlockCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockDeleteBlock.RLock()
	calls := mock.calls.DeleteBlock
	mock.lockDeleteBlock.RUnlock()
	return calls
}

func (mock *blockServiceMock) ReorderBlocks(ctx context.Context, input block.ReorderBlocksInput) ([]domain.Block, error) {
	if mock.ReorderBlocksFunc == nil {
		panic("blockServiceMock.ReorderBlocksFunc: method is nil but blockService.ReorderBlocks was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input block.ReorderBlocksInput
	}{Ctx: ctx, Input: input}
	mock.lockReorderBlocks.Lock()
	mock.calls.ReorderBlocks = append(mock.calls.ReorderBlocks, callInfo)
	mock.lockReorderBlocks.Unlock()
	return mock.ReorderBlocksFunc(ctx, input)
}

func (mock *blockServiceMock) ReorderBlocksCalls() []struct {
	Ctx   context.Context
	Input block.ReorderBlocksInput
} {
	mock.lockReorderBlocks.RLock()
	calls := mock.calls.ReorderBlocks
	mock.lockReorderBlocks.RUnlock()
	return calls
}
