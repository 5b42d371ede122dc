package lesson

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/nenadmarinkovic/sprachenwald/internal/domain"
)

// DeleteLesson removes a lesson with its blocks. Words users saved from it
// stay in their vocabulary.
func (s *Service) DeleteLesson(ctx context.Context, id uuid.UUID) error {
	userID, err := adminID(ctx)
	if err != nil {
		return err
	}
	if id == uuid.Nil {
		return domain.NewValidationError("id", "required")
	}

	var slugs []string
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		l, err := s.lessons.GetByID(txCtx, id)
		if err != nil {
			return fmt.Errorf("get lesson: %w", err)
		}
		if slugs, err = s.blocks.SlugsByLesson(txCtx, id); err != nil {
			return err
		}
		if err := s.lessons.Delete(txCtx, id); err != nil {
			return fmt.Errorf("delete lesson: %w", err)
		}

		return s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     userID,
			EntityType: domain.EntityTypeLesson,
			EntityID:   &id,
			Action:     domain.AuditActionDelete,
			Changes:    map[string]any{"title": map[string]any{"old": l.Title}, "blocks": len(slugs)},
		})
	})
	if err != nil {
		return err
	}

	if err := s.cache.Invalidate(ctx, slugs...); err != nil {
		s.log.WarnContext(ctx, "invalidate cached blocks", slog.String("error", err.Error()))
	}

	s.log.InfoContext(ctx, "lesson deleted",
		slog.String("lesson_id", id.String()),
		slog.Int("blocks", len(slugs)),
	)
	return nil
}
