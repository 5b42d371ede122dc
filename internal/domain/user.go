package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is a known identity. The ID is the subject issued by the identity
// provider; profile fields are synced on sign-in.
type User struct {
	ID        uuid.UUID
	Email     string
	Name      string
	Role      UserRole
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsAdmin reports whether the user may author content.
func (u User) IsAdmin() bool {
	return u.Role.IsAdmin()
}

// AuditRecord logs a mutation event on a domain entity.
type AuditRecord struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	EntityType EntityType
	EntityID   *uuid.UUID
	Action     AuditAction
	Changes    map[string]any
	CreatedAt  time.Time
}
