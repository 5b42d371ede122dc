package practice

import (
	"fmt"
	"slices"

	"github.com/google/uuid"

	"github.com/nenadmarinkovic/sprachenwald/internal/domain"
)

// DeckInput selects the words to practice. An empty Tab practices all tabs;
// a zero Size uses the configured deck size.
type DeckInput struct {
	Tab  domain.VocabularyTab
	Size int
}

func (i DeckInput) Validate(maxSize int) error {
	var errs []domain.FieldError

	if i.Tab != "" && !slices.Contains(domain.AllTabs, i.Tab) {
		errs = append(errs, domain.FieldError{Field: "type", Message: "unknown vocabulary tab"})
	}
	if i.Size < 0 || i.Size > maxSize {
		errs = append(errs, domain.FieldError{Field: "size", Message: fmt.Sprintf("must be between 1 and %d", maxSize)})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ReviewInput grades one card.
type ReviewInput struct {
	WordID     uuid.UUID
	Grade      domain.ReviewGrade
	DurationMs *int
}

func (i ReviewInput) Validate() error {
	var errs []domain.FieldError

	if i.WordID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "word_id", Message: "required"})
	}
	if !i.Grade.IsValid() {
		errs = append(errs, domain.FieldError{Field: "grade", Message: "must be AGAIN, HARD, GOOD or EASY"})
	}
	if i.DurationMs != nil && *i.DurationMs < 0 {
		errs = append(errs, domain.FieldError{Field: "duration_ms", Message: "must not be negative"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
