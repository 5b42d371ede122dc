package block

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/nenadmarinkovic/sprachenwald/internal/domain"
)

// AddBlocks creates empty blocks of the given types at the end of a lesson.
// A lesson holds at most one block per type; asking for a type it already
// has fails the whole call with ErrAlreadyExists.
func (s *Service) AddBlocks(ctx context.Context, input AddBlocksInput) ([]domain.Block, error) {
	userID, err := adminID(ctx)
	if err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var created []domain.Block
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		l, err := s.lessons.GetByID(txCtx, input.LessonID)
		if err != nil {
			return fmt.Errorf("get lesson: %w", err)
		}
		order, err := s.blocks.NextOrder(txCtx, l.ID)
		if err != nil {
			return err
		}

		now := s.now()
		blocks := make([]domain.Block, len(input.Types))
		for i, t := range input.Types {
			blocks[i] = emptyBlock(l, t, order+i, now)
		}

		if created, err = s.blocks.Create(txCtx, blocks); err != nil {
			return fmt.Errorf("create blocks: %w", err)
		}

		for _, b := range created {
			if err := s.audit.Log(txCtx, domain.AuditRecord{
				UserID:     userID,
				EntityType: domain.EntityTypeBlock,
				EntityID:   &b.ID,
				Action:     domain.AuditActionCreate,
				Changes:    map[string]any{"type": string(b.Type), "lesson_id": l.ID.String()},
			}); err != nil {
				return fmt.Errorf("audit log: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "blocks added",
		slog.String("lesson_id", input.LessonID.String()),
		slog.Int("count", len(created)),
	)
	return created, nil
}

func emptyBlock(l domain.Lesson, t domain.BlockType, order int, now time.Time) domain.Block {
	b := domain.Block{
		ID:        uuid.New(),
		LessonID:  l.ID,
		Type:      t,
		Title:     defaultTitles[t],
		Slug:      domain.BlockSlug(l.Slug, t),
		Order:     order,
		CreatedAt: now,
		UpdatedAt: now,
	}
	switch t {
	case domain.BlockTypeText, domain.BlockTypeGrammar:
		b.Content = []domain.ContentItem{}
	case domain.BlockTypeQuiz:
		b.Quizzes = []domain.Quiz{}
	case domain.BlockTypeVocabulary:
		b.Words = []domain.VocabularyEntry{}
	}
	return b
}
