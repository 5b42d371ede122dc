package block

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/nenadmarinkovic/sprachenwald/internal/domain"
)

// ReorderBlocks moves one block inside its lesson and persists dense
// zero-based orders. It returns the lesson's blocks in their new order.
func (s *Service) ReorderBlocks(ctx context.Context, input ReorderBlocksInput) ([]domain.Block, error) {
	userID, err := adminID(ctx)
	if err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var reordered []domain.Block
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		blocks, err := s.blocks.ListByLesson(txCtx, input.LessonID)
		if err != nil {
			return err
		}
		if reordered, err = domain.Reorder(blocks, input.From, input.To); err != nil {
			return err
		}

		ids := make([]uuid.UUID, len(reordered))
		for i := range reordered {
			reordered[i].Order = i
			ids[i] = reordered[i].ID
		}
		if err := s.blocks.SetOrder(txCtx, input.LessonID, ids); err != nil {
			return err
		}

		return s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     userID,
			EntityType: domain.EntityTypeBlock,
			EntityID:   &ids[input.To],
			Action:     domain.AuditActionReorder,
			Changes:    map[string]any{"order": map[string]any{"old": input.From, "new": input.To}},
		})
	})
	if err != nil {
		return nil, fmt.Errorf("reorder blocks: %w", err)
	}

	slugs := make([]string, len(reordered))
	for i, b := range reordered {
		slugs[i] = b.Slug
	}
	s.invalidate(ctx, slugs...)

	s.log.InfoContext(ctx, "blocks reordered",
		slog.String("lesson_id", input.LessonID.String()),
		slog.Int("from", input.From),
		slog.Int("to", input.To),
	)
	return reordered, nil
}
