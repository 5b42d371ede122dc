package block

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/nenadmarinkovic/sprachenwald/internal/domain"
	"github.com/nenadmarinkovic/sprachenwald/internal/markup"
	"github.com/nenadmarinkovic/sprachenwald/internal/render"
)

// Summary is one row of the admin block list.
type Summary struct {
	Block   domain.Block
	Preview render.Preview
}

// ListBlocks returns the blocks of a lesson with their admin previews.
func (s *Service) ListBlocks(ctx context.Context, lessonID uuid.UUID) ([]Summary, error) {
	if _, err := adminID(ctx); err != nil {
		return nil, err
	}

	blocks, err := s.blocks.ListByLesson(ctx, lessonID)
	if err != nil {
		return nil, err
	}

	out := make([]Summary, 0, len(blocks))
	for _, b := range blocks {
		p, err := render.BuildPreview(b, s.cfg.PreviewChars)
		if err != nil {
			return nil, fmt.Errorf("preview block %s: %w", b.Slug, err)
		}
		out = append(out, Summary{Block: b, Preview: p})
	}
	return out, nil
}

// GetBlockForEdit returns a block for the admin editor, with legacy text
// content already upgraded to markup.
func (s *Service) GetBlockForEdit(ctx context.Context, id uuid.UUID) (domain.Block, error) {
	if _, err := adminID(ctx); err != nil {
		return domain.Block{}, err
	}

	b, err := s.blocks.GetByID(ctx, id)
	if err != nil {
		return domain.Block{}, fmt.Errorf("get block: %w", err)
	}
	if b.Type.HasTextContent() {
		b.Content = markup.UpgradeAll(b.Content)
	}
	return b, nil
}
