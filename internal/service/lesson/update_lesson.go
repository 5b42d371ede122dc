package lesson

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/nenadmarinkovic/sprachenwald/internal/domain"
)

// UpdateLesson renames a lesson. The slug follows the new title; block slugs
// keep their values.
func (s *Service) UpdateLesson(ctx context.Context, input UpdateLessonInput) (domain.Lesson, error) {
	userID, err := adminID(ctx)
	if err != nil {
		return domain.Lesson{}, err
	}
	if err := input.Validate(s.cfg.MaxLessonTitle); err != nil {
		return domain.Lesson{}, err
	}

	title := domain.CollapseSpaces(input.Title)

	var updated domain.Lesson
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		old, err := s.lessons.GetByID(txCtx, input.ID)
		if err != nil {
			return fmt.Errorf("get lesson: %w", err)
		}
		if old.Title == title {
			updated = old
			return nil
		}

		l := old
		l.Title = title
		l.Slug = domain.Slugify(title)
		l.UpdatedAt = s.now()
		updated, err = s.lessons.Update(txCtx, l)
		if err != nil {
			return fmt.Errorf("update lesson: %w", err)
		}

		return s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     userID,
			EntityType: domain.EntityTypeLesson,
			EntityID:   &updated.ID,
			Action:     domain.AuditActionUpdate,
			Changes:    map[string]any{"title": map[string]any{"old": old.Title, "new": title}},
		})
	})
	if err != nil {
		return domain.Lesson{}, err
	}

	s.log.InfoContext(ctx, "lesson updated",
		slog.String("lesson_id", updated.ID.String()),
		slog.String("slug", updated.Slug),
	)
	return updated, nil
}
