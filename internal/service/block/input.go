package block

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/nenadmarinkovic/sprachenwald/internal/domain"
)

// AddBlocksInput adds one block per type to a lesson.
type AddBlocksInput struct {
	LessonID uuid.UUID
	Types    []domain.BlockType
}

// Validate checks all fields and collects all errors.
func (i AddBlocksInput) Validate() error {
	var errs []domain.FieldError

	if i.LessonID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "lesson_id", Message: "required"})
	}
	if len(i.Types) == 0 {
		errs = append(errs, domain.FieldError{Field: "types", Message: "at least one block type required"})
	}
	seen := make(map[domain.BlockType]bool, len(i.Types))
	for idx, t := range i.Types {
		field := fmt.Sprintf("types[%d]", idx)
		if !t.IsValid() {
			errs = append(errs, domain.FieldError{Field: field, Message: "unknown block type"})
			continue
		}
		if seen[t] {
			errs = append(errs, domain.FieldError{Field: field, Message: "duplicate block type"})
		}
		seen[t] = true
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateBlockInput edits a block. Nil fields keep their stored value; which
// payload fields apply follows the block type.
type UpdateBlockInput struct {
	ID          uuid.UUID
	Title       *string
	Content     []domain.ContentItem
	VideoURL    *string
	Description *string
	Quizzes     []domain.Quiz
	Words       []domain.VocabularyEntry
}

// Validate checks all fields and collects all errors.
func (i UpdateBlockInput) Validate() error {
	var errs []domain.FieldError

	if i.ID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if i.Title != nil && strings.TrimSpace(*i.Title) == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	if i.Title == nil && i.Content == nil && i.VideoURL == nil && i.Description == nil && i.Quizzes == nil && i.Words == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// apply overlays the input on b.
func (i UpdateBlockInput) apply(b domain.Block) domain.Block {
	if i.Title != nil {
		b.Title = domain.CollapseSpaces(*i.Title)
	}
	switch b.Type {
	case domain.BlockTypeText, domain.BlockTypeGrammar:
		if i.Content != nil {
			b.Content = i.Content
		}
	case domain.BlockTypeVideo:
		if i.VideoURL != nil {
			b.VideoURL = strings.TrimSpace(*i.VideoURL)
		}
		if i.Description != nil {
			b.Description = *i.Description
		}
	case domain.BlockTypeQuiz:
		if i.Quizzes != nil {
			b.Quizzes = i.Quizzes
		}
	case domain.BlockTypeVocabulary:
		if i.Words != nil {
			b.Words = i.Words
		}
	}
	return b
}

// ReorderBlocksInput moves the block at From to position To inside a lesson.
type ReorderBlocksInput struct {
	LessonID uuid.UUID
	From     int
	To       int
}

// Validate checks all fields and collects all errors.
func (i ReorderBlocksInput) Validate() error {
	if i.LessonID == uuid.Nil {
		return domain.NewValidationError("lesson_id", "required")
	}
	return nil
}

// CheckQuizInput is a learner's answer to one quiz of a block.
type CheckQuizInput struct {
	Slug   string
	Index  int
	Answer domain.QuizAnswer
}
