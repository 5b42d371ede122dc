package block

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/nenadmarinkovic/sprachenwald/internal/domain"
)

// UpdateBlock edits a block. Text markup is upgraded from the legacy shape
// and sanitized before it is stored.
func (s *Service) UpdateBlock(ctx context.Context, input UpdateBlockInput) (domain.Block, error) {
	userID, err := adminID(ctx)
	if err != nil {
		return domain.Block{}, err
	}
	if err := input.Validate(); err != nil {
		return domain.Block{}, err
	}

	var updated domain.Block
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		old, err := s.blocks.GetByID(txCtx, input.ID)
		if err != nil {
			return fmt.Errorf("get block: %w", err)
		}

		b := s.sanitizer.Block(input.apply(old))
		b.UpdatedAt = s.now()
		if err := b.Validate(); err != nil {
			return err
		}
		if err := s.checkSize(b); err != nil {
			return err
		}

		if updated, err = s.blocks.Update(txCtx, b); err != nil {
			return fmt.Errorf("update block: %w", err)
		}

		return s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     userID,
			EntityType: domain.EntityTypeBlock,
			EntityID:   &updated.ID,
			Action:     domain.AuditActionUpdate,
			Changes:    changedFields(input),
		})
	})
	if err != nil {
		return domain.Block{}, err
	}

	s.invalidate(ctx, updated.Slug)
	s.log.InfoContext(ctx, "block updated",
		slog.String("block_id", updated.ID.String()),
		slog.String("slug", updated.Slug),
	)
	return updated, nil
}

// DeleteBlock removes a block.
func (s *Service) DeleteBlock(ctx context.Context, id uuid.UUID) error {
	userID, err := adminID(ctx)
	if err != nil {
		return err
	}
	if id == uuid.Nil {
		return domain.NewValidationError("id", "required")
	}

	var slug string
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if slug, err = s.blocks.Delete(txCtx, id); err != nil {
			return fmt.Errorf("delete block: %w", err)
		}
		return s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     userID,
			EntityType: domain.EntityTypeBlock,
			EntityID:   &id,
			Action:     domain.AuditActionDelete,
			Changes:    map[string]any{"slug": slug},
		})
	})
	if err != nil {
		return err
	}

	s.invalidate(ctx, slug)
	s.log.InfoContext(ctx, "block deleted", slog.String("block_id", id.String()), slog.String("slug", slug))
	return nil
}

func (s *Service) checkSize(b domain.Block) error {
	if s.cfg.MaxBlockBytes <= 0 {
		return nil
	}
	raw, err := json.Marshal(struct {
		C []domain.ContentItem
		Q []domain.Quiz
		W []domain.VocabularyEntry
	}{b.Content, b.Quizzes, b.Words})
	if err != nil {
		return fmt.Errorf("measure block: %w", err)
	}
	if len(raw) > s.cfg.MaxBlockBytes {
		return domain.NewValidationError("content", fmt.Sprintf("block payload exceeds %d bytes", s.cfg.MaxBlockBytes))
	}
	return nil
}

func changedFields(input UpdateBlockInput) map[string]any {
	changes := map[string]any{}
	if input.Title != nil {
		changes["title"] = *input.Title
	}
	if input.Content != nil {
		changes["content_items"] = len(input.Content)
	}
	if input.VideoURL != nil {
		changes["video_url"] = *input.VideoURL
	}
	if input.Description != nil {
		changes["description"] = true
	}
	if input.Quizzes != nil {
		changes["quizzes"] = len(input.Quizzes)
	}
	if input.Words != nil {
		changes["words"] = len(input.Words)
	}
	return changes
}
