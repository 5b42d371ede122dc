package lesson

import (
	"context"
	"fmt"
	"strings"

	"github.com/nenadmarinkovic/sprachenwald/internal/domain"
)

// LessonWithBlocks is a lesson together with its ordered blocks.
type LessonWithBlocks struct {
	Lesson domain.Lesson
	Blocks []domain.Block
}

// ListLessons returns all lessons in course order.
func (s *Service) ListLessons(ctx context.Context) ([]domain.Lesson, error) {
	lessons, err := s.lessons.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list lessons: %w", err)
	}
	return lessons, nil
}

// GetLesson returns a lesson by slug with its blocks.
func (s *Service) GetLesson(ctx context.Context, slug string) (LessonWithBlocks, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return LessonWithBlocks{}, domain.NewValidationError("slug", "required")
	}

	l, err := s.lessons.GetBySlug(ctx, slug)
	if err != nil {
		return LessonWithBlocks{}, fmt.Errorf("get lesson: %w", err)
	}
	blocks, err := s.blocks.ListByLesson(ctx, l.ID)
	if err != nil {
		return LessonWithBlocks{}, err
	}
	return LessonWithBlocks{Lesson: l, Blocks: blocks}, nil
}
