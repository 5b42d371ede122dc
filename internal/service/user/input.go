package user

import (
	"net/mail"
	"strings"

	"github.com/nenadmarinkovic/sprachenwald/internal/domain"
)

// SyncProfileInput carries the profile claims of a signed-in user.
type SyncProfileInput struct {
	Email string
	Name  string
}

// Validate validates the sync profile input.
func (i SyncProfileInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Email) == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	} else if len(i.Email) > 320 {
		errs = append(errs, domain.FieldError{Field: "email", Message: "too long"})
	} else if _, err := mail.ParseAddress(i.Email); err != nil {
		errs = append(errs, domain.FieldError{Field: "email", Message: "invalid address"})
	}

	if len(i.Name) > 255 {
		errs = append(errs, domain.FieldError{Field: "name", Message: "too long"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// SetRoleInput changes the role of the user with the given email.
type SetRoleInput struct {
	Email string
	Role  domain.UserRole
}

// Validate validates the set role input.
func (i SetRoleInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Email) == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	}
	if !i.Role.IsValid() {
		errs = append(errs, domain.FieldError{Field: "role", Message: "must be 'user' or 'admin'"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
