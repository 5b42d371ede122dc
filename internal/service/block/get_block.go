package block

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/nenadmarinkovic/sprachenwald/internal/domain"
	"github.com/nenadmarinkovic/sprachenwald/internal/render"
	"github.com/nenadmarinkovic/sprachenwald/internal/vocab"
)

// View is the reading page of one block.
type View struct {
	LessonSlug  string
	LessonTitle string
	Block       render.Block
	Candidates  []domain.VocabularyEntry
	Pager       domain.Pager
}

// BySlug loads a block through the cache.
func (s *Service) BySlug(ctx context.Context, slug string) (domain.Block, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return domain.Block{}, domain.NewValidationError("slug", "required")
	}

	if b, ok, err := s.cache.GetBlock(ctx, slug); err != nil {
		s.log.WarnContext(ctx, "read cached block", slog.String("slug", slug), slog.String("error", err.Error()))
	} else if ok {
		return b, nil
	}

	b, err := s.blocks.GetBySlug(ctx, slug)
	if err != nil {
		return domain.Block{}, fmt.Errorf("get block: %w", err)
	}
	if err := s.cache.SetBlock(ctx, b); err != nil {
		s.log.WarnContext(ctx, "cache block", slog.String("slug", slug), slog.String("error", err.Error()))
	}
	return b, nil
}

// GetBlock renders a block for reading under the given filter, together
// with the words it offers for the personal vocabulary and the links to
// its neighbours.
func (s *Service) GetBlock(ctx context.Context, slug string, f render.Filter) (View, error) {
	b, err := s.BySlug(ctx, slug)
	if err != nil {
		return View{}, err
	}

	rendered, err := render.RenderBlock(b, f)
	if err != nil {
		return View{}, fmt.Errorf("render block %s: %w", b.Slug, err)
	}

	lessons, err := s.lessons.List(ctx)
	if err != nil {
		return View{}, fmt.Errorf("list lessons: %w", err)
	}
	outlines, err := s.blocks.ListOutlines(ctx)
	if err != nil {
		return View{}, err
	}

	v := View{
		Block:      rendered,
		Candidates: vocab.Extract(b),
		Pager:      domain.BuildPager(lessons, outlines, b),
	}
	for _, l := range lessons {
		if l.ID == b.LessonID {
			v.LessonSlug, v.LessonTitle = l.Slug, l.Title
			break
		}
	}
	return v, nil
}

// CheckQuiz grades one answer. Quizzes are addressed by their position in
// the block.
func (s *Service) CheckQuiz(ctx context.Context, input CheckQuizInput) (bool, error) {
	b, err := s.BySlug(ctx, input.Slug)
	if err != nil {
		return false, err
	}
	if b.Type != domain.BlockTypeQuiz {
		return false, domain.NewValidationError("slug", "block is not a quiz")
	}
	if input.Index < 0 || input.Index >= len(b.Quizzes) {
		return false, domain.NewValidationError("index", fmt.Sprintf("quiz %d does not exist", input.Index))
	}
	return b.Quizzes[input.Index].Check(input.Answer), nil
}
