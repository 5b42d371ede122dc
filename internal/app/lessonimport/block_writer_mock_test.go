package lessonimport

import (
	"context"
	"sync"

	"github.com/nenadmarinkovic/sprachenwald/internal/domain"
	"github.com/nenadmarinkovic/sprachenwald/internal/service/block"
)

var _ BlockWriter = &BlockWriterMock{}

type BlockWriterMock struct {
	AddBlocksFunc   func(ctx context.Context, input block.AddBlocksInput) ([]domain.Block, error)
	UpdateBlockFunc func(ctx context.Context, input block.UpdateBlockInput) (domain.Block, error)

	calls struct {
		AddBlocks []struct {
			Ctx   context.Context
			Input block.AddBlocksInput
		}
		UpdateBlock []struct {
			Ctx   context.Context
			Input block.UpdateBlockInput
		}
	}
	lockAddBlocks   sync.RWMutex
	lockUpdateBlock sync.RWMutex
}

func (mock *BlockWriterMock) AddBlocks(ctx context.Context, input block.AddBlocksInput) ([]domain.Block, error) {
	if mock.AddBlocksFunc == nil {
		panic("BlockWriterMock.AddBlocksFunc: method is nil but BlockWriter.AddBlocks was just called")
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

func (mock *BlockWriterMock) AddBlocksCalls() []struct {
	Ctx   context.Context
	Input block.AddBlocksInput
} {
	mock.lockAddBlocks.RLock()
	calls := mock.calls.AddBlocks
	mock.lockAddBlocks.RUnlock()
	return calls
}

func (mock *BlockWriterMock) UpdateBlock(ctx context.Context, input block.UpdateBlockInput) (domain.Block, error) {
	if mock.UpdateBlockFunc == nil {
		panic("BlockWriterMock.UpdateBlockFunc: method is nil but BlockWriter.UpdateBlock was just called")
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

func (mock *BlockWriterMock) UpdateBlockCalls() []struct {
	Ctx   context.Context
	Input block.UpdateBlockInput
} {
	mock.lockUpdateBlock.RLock()
	calls := mock.calls.UpdateBlock
	mock.lockUpdateBlock.RUnlock()
	return calls
}
