package lesson

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/nenadmarinkovic/sprachenwald/internal/domain"
)

// CreateLesson appends a new lesson at the end of the course.
func (s *Service) CreateLesson(ctx context.Context, input CreateLessonInput) (domain.Lesson, error) {
	userID, err := adminID(ctx)
	if err != nil {
		return domain.Lesson{}, err
	}
	if err := input.Validate(s.cfg.MaxLessonTitle); err != nil {
		return domain.Lesson{}, err
	}

	title := domain.CollapseSpaces(input.Title)
	now := s.now()

	var created domain.Lesson
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		order, err := s.lessons.NextOrder(txCtx)
		if err != nil {
			return err
		}

		created, err = s.lessons.Create(txCtx, domain.Lesson{
			ID:        uuid.New(),
			Title:     title,
			Slug:      domain.Slugify(title),
			Order:     order,
			CreatedAt: now,
			UpdatedAt: now,
		})
		if err != nil {
			return fmt.Errorf("create lesson: %w", err)
		}

		return s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     userID,
			EntityType: domain.EntityTypeLesson,
			EntityID:   &created.ID,
			Action:     domain.AuditActionCreate,
			Changes:    map[string]any{"title": map[string]any{"new": title}},
		})
	})
	if err != nil {
		return domain.Lesson{}, err
	}

	s.log.InfoContext(ctx, "lesson created",
		slog.String("lesson_id", created.ID.String()),
		slog.String("slug", created.Slug),
	)
	return created, nil
}
