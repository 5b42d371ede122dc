package lesson

import (
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/nenadmarinkovic/sprachenwald/internal/domain"
)

// CreateLessonInput holds the parameters for creating a lesson.
type CreateLessonInput struct {
	Title string
}

// Validate checks all fields and collects all errors.
func (i CreateLessonInput) Validate(maxTitle int) error {
	if errs := validateTitle(i.Title, maxTitle); len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateLessonInput holds the parameters for renaming a lesson.
type UpdateLessonInput struct {
	ID    uuid.UUID
	Title string
}

// Validate checks all fields and collects all errors.
func (i UpdateLessonInput) Validate(maxTitle int) error {
	var errs []domain.FieldError
	if i.ID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	errs = append(errs, validateTitle(i.Title, maxTitle)...)

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ReorderLessonsInput moves the lesson at From to position To.
type ReorderLessonsInput struct {
	From int
	To   int
}

func validateTitle(title string, maxTitle int) []domain.FieldError {
	var errs []domain.FieldError
	title = strings.TrimSpace(title)
	if title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	if maxTitle > 0 && utf8.RuneCountInString(title) > maxTitle {
		errs = append(errs, domain.FieldError{Field: "title", Message: "too long"})
	}
	if title != "" && domain.Slugify(title) == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "must contain letters or digits"})
	}
	return errs
}
