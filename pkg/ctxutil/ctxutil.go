// Package ctxutil carries the authenticated caller and the request ID
// through context.
package ctxutil

import (
	"context"

	"github.com/google/uuid"
)

// RoleAdmin is the role value that unlocks authoring and user management.
const RoleAdmin = "admin"

type caller struct {
	id   uuid.UUID
	role string
}

type (
	callerKey    struct{}
	requestIDKey struct{}
)

func callerFrom(ctx context.Context) caller {
	c, _ := ctx.Value(callerKey{}).(caller)
	return c
}

// WithUserID sets the caller's user ID, keeping a role set earlier.
func WithUserID(ctx context.Context, id uuid.UUID) context.Context {
	c := callerFrom(ctx)
	c.id = id
	return context.WithValue(ctx, callerKey{}, c)
}

// WithUserRole sets the caller's role, keeping the user ID.
func WithUserRole(ctx context.Context, role string) context.Context {
	c := callerFrom(ctx)
	c.role = role
	return context.WithValue(ctx, callerKey{}, c)
}

// AsAdmin marks ctx as an admin call made by id. Used by batch jobs that act
// outside an HTTP request.
func AsAdmin(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, callerKey{}, caller{id: id, role: RoleAdmin})
}

// UserIDFromCtx returns the caller's ID; false when unauthenticated.
func UserIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	c := callerFrom(ctx)
	return c.id, c.id != uuid.Nil
}

func UserRoleFromCtx(ctx context.Context) string {
	return callerFrom(ctx).role
}

// IsAdminCtx reports whether an authenticated admin is calling. A role
// without a user ID does not count.
func IsAdminCtx(ctx context.Context) bool {
	c := callerFrom(ctx)
	return c.id != uuid.Nil && c.role == RoleAdmin
}

func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestIDFromCtx returns "" outside a request.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}
