package vocabulary

import (
	"fmt"
	"strings"

	"github.com/nenadmarinkovic/sprachenwald/internal/domain"
)

// AddSelectedInput holds the words a reader picked from a block.
type AddSelectedInput struct {
	BlockSlug string
	Germans   []string
}

// Validate checks all fields and collects all errors.
func (i AddSelectedInput) Validate(maxSelection int) error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.BlockSlug) == "" {
		errs = append(errs, domain.FieldError{Field: "block_slug", Message: "required"})
	}
	if len(i.Germans) == 0 {
		errs = append(errs, domain.FieldError{Field: "words", Message: "select at least one word"})
	}
	if maxSelection > 0 && len(i.Germans) > maxSelection {
		errs = append(errs, domain.FieldError{Field: "words", Message: fmt.Sprintf("max %d words", maxSelection)})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
