package lessonimport

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"

	"github.com/google/uuid"

	"github.com/nenadmarinkovic/sprachenwald/internal/domain"
	"github.com/nenadmarinkovic/sprachenwald/internal/service/block"
	"github.com/nenadmarinkovic/sprachenwald/internal/service/lesson"
	"github.com/nenadmarinkovic/sprachenwald/pkg/ctxutil"
)

// ActorID identifies the importer in the audit log.
var ActorID = uuid.NewSHA1(uuid.NameSpaceURL, []byte("sprachenwald:lesson-import"))

// LessonCreator creates lessons.
type LessonCreator interface {
	CreateLesson(ctx context.Context, input lesson.CreateLessonInput) (domain.Lesson, error)
}

// BlockWriter adds blocks to a lesson and fills them.
type BlockWriter interface {
	AddBlocks(ctx context.Context, input block.AddBlocksInput) ([]domain.Block, error)
	UpdateBlock(ctx context.Context, input block.UpdateBlockInput) (domain.Block, error)
}

// Result holds import statistics.
type Result struct {
	FilesProcessed int
	Lessons        int
	Blocks         int
	Skipped        int
	Errors         int
}

// Run imports every *.json, *.yaml and *.yml pack in cfg.Dir in name order.
// A lesson whose slug already exists is skipped; a broken file is logged and
// counted without stopping the run.
func Run(ctx context.Context, cfg *Config, lessons LessonCreator, blocks BlockWriter, log *slog.Logger) (Result, error) {
	var files []string
	for _, pattern := range []string{"*.json", "*.yaml", "*.yml"} {
		matches, err := filepath.Glob(filepath.Join(cfg.Dir, pattern))
		if err != nil {
			return Result{}, fmt.Errorf("glob import dir: %w", err)
		}
		files = append(files, matches...)
	}
	slices.Sort(files)

	// Writes go through the services, which require an admin caller.
	ctx = ctxutil.AsAdmin(ctx, ActorID)

	var result Result
	for _, path := range files {
		result.FilesProcessed++

		data, err := os.ReadFile(path)
		if err != nil {
			log.Error("read file", slog.String("path", path), slog.String("error", err.Error()))
			result.Errors++
			continue
		}

		pack, err := Parse(path, data)
		if err != nil {
			log.Error("invalid pack", slog.String("path", path), slog.String("error", err.Error()))
			result.Errors++
			continue
		}

		for _, pl := range pack.Lessons {
			if cfg.DryRun {
				result.Lessons++
				result.Blocks += len(pl.Blocks)
				continue
			}

			n, err := importLesson(ctx, lessons, blocks, pl)
			switch {
			case errors.Is(err, domain.ErrAlreadyExists):
				log.Info("lesson exists, skipped", slog.String("title", pl.Title))
				result.Skipped++
			case err != nil:
				log.Error("import lesson",
					slog.String("path", path),
					slog.String("title", pl.Title),
					slog.String("error", err.Error()),
				)
				result.Errors++
			default:
				result.Lessons++
				result.Blocks += n
			}
		}
	}

	log.Info("lesson import complete",
		slog.Int("files", result.FilesProcessed),
		slog.Int("lessons", result.Lessons),
		slog.Int("blocks", result.Blocks),
		slog.Int("skipped", result.Skipped),
		slog.Int("errors", result.Errors),
		slog.Bool("dry_run", cfg.DryRun),
	)
	return result, nil
}

func importLesson(ctx context.Context, lessons LessonCreator, blocks BlockWriter, pl PackLesson) (int, error) {
	l, err := lessons.CreateLesson(ctx, lesson.CreateLessonInput{Title: pl.Title})
	if err != nil {
		return 0, err
	}
	if len(pl.Blocks) == 0 {
		return 0, nil
	}

	types := make([]domain.BlockType, 0, len(pl.Blocks))
	for _, pb := range pl.Blocks {
		types = append(types, pb.Type)
	}
	created, err := blocks.AddBlocks(ctx, block.AddBlocksInput{LessonID: l.ID, Types: types})
	if err != nil {
		return 0, fmt.Errorf("add blocks: %w", err)
	}

	byType := make(map[domain.BlockType]domain.Block, len(created))
	for _, b := range created {
		byType[b.Type] = b
	}

	for _, pb := range pl.Blocks {
		b, ok := byType[pb.Type]
		if !ok {
			return 0, fmt.Errorf("block %s was not created", pb.Type)
		}
		input, err := updateInput(b.ID, pb)
		if err != nil {
			return 0, fmt.Errorf("block %s: %w", pb.Type, err)
		}
		if _, err := blocks.UpdateBlock(ctx, input); err != nil {
			return 0, fmt.Errorf("fill block %s: %w", pb.Type, err)
		}
	}
	return len(created), nil
}

func updateInput(id uuid.UUID, pb PackBlock) (block.UpdateBlockInput, error) {
	input := block.UpdateBlockInput{ID: id}
	if pb.Title != "" {
		title := pb.Title
		input.Title = &title
	}

	switch pb.Type {
	case domain.BlockTypeText, domain.BlockTypeGrammar:
		items, err := pb.ContentItems()
		if err != nil {
			return block.UpdateBlockInput{}, err
		}
		input.Content = items
	case domain.BlockTypeVideo:
		input.VideoURL = &pb.VideoURL
		input.Description = &pb.Description
	case domain.BlockTypeQuiz:
		input.Quizzes = pb.Quizzes
		if input.Quizzes == nil {
			input.Quizzes = []domain.Quiz{}
		}
	case domain.BlockTypeVocabulary:
		input.Words = pb.Words
		if input.Words == nil {
			input.Words = []domain.VocabularyEntry{}
		}
	}
	return input, nil
}
