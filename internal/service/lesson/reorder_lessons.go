package lesson

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/nenadmarinkovic/sprachenwald/internal/domain"
)

// ReorderLessons moves one lesson and persists dense zero-based orders for
// the whole course. It returns the lessons in their new order.
func (s *Service) ReorderLessons(ctx context.Context, input ReorderLessonsInput) ([]domain.Lesson, error) {
	userID, err := adminID(ctx)
	if err != nil {
		return nil, err
	}

	var reordered []domain.Lesson
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		lessons, err := s.lessons.List(txCtx)
		if err != nil {
			return fmt.Errorf("list lessons: %w", err)
		}

		reordered, err = domain.Reorder(lessons, input.From, input.To)
		if err != nil {
			return err
		}

		ids := make([]uuid.UUID, len(reordered))
		for i := range reordered {
			reordered[i].Order = i
			ids[i] = reordered[i].ID
		}
		if err := s.lessons.SetOrder(txCtx, ids); err != nil {
			return err
		}

		moved := reordered[input.To].ID
		return s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     userID,
			EntityType: domain.EntityTypeLesson,
			EntityID:   &moved,
			Action:     domain.AuditActionReorder,
			Changes:    map[string]any{"order": map[string]any{"old": input.From, "new": input.To}},
		})
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "lessons reordered",
		slog.Int("from", input.From),
		slog.Int("to", input.To),
	)
	return reordered, nil
}
