package user

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/nenadmarinkovic/sprachenwald/internal/domain"
	"github.com/nenadmarinkovic/sprachenwald/pkg/ctxutil"
)

// SetRole changes the role of the user identified by email (admin only).
// An admin cannot demote themselves.
func (s *Service) SetRole(ctx context.Context, input SetRoleInput) (domain.User, error) {
	callerID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.User{}, domain.ErrUnauthorized
	}
	if !ctxutil.IsAdminCtx(ctx) {
		return domain.User{}, domain.ErrForbidden
	}
	if err := input.Validate(); err != nil {
		return domain.User{}, err
	}

	return s.setRole(ctx, callerID, input)
}

// GrantAdmin gives the admin role to the user with the given email (admin
// only). An unknown email is ErrNotFound.
func (s *Service) GrantAdmin(ctx context.Context, email string) (domain.User, error) {
	return s.SetRole(ctx, SetRoleInput{Email: email, Role: domain.UserRoleAdmin})
}

// PromoteByEmail grants the admin role outside of a request, for operator
// tooling. The caller is recorded as the nil user in the audit log.
func (s *Service) PromoteByEmail(ctx context.Context, email string) (domain.User, error) {
	input := SetRoleInput{Email: email, Role: domain.UserRoleAdmin}
	if err := input.Validate(); err != nil {
		return domain.User{}, err
	}
	return s.setRole(ctx, uuid.Nil, input)
}

func (s *Service) setRole(ctx context.Context, callerID uuid.UUID, input SetRoleInput) (domain.User, error) {
	var updated domain.User
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		target, err := s.users.GetByEmail(txCtx, strings.TrimSpace(input.Email))
		if err != nil {
			return err
		}
		if target.ID == callerID && input.Role != domain.UserRoleAdmin {
			return domain.NewValidationError("role", "cannot demote yourself")
		}
		if target.Role == input.Role {
			updated = target
			return nil
		}

		updated, err = s.users.SetRole(txCtx, target.ID, input.Role)
		if err != nil {
			return err
		}

		return s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     callerID,
			EntityType: domain.EntityTypeUser,
			EntityID:   &updated.ID,
			Action:     domain.AuditActionUpdate,
			Changes: map[string]any{
				"role": map[string]any{"old": target.Role.String(), "new": input.Role.String()},
			},
		})
	})
	if err != nil {
		return domain.User{}, fmt.Errorf("user.SetRole: %w", err)
	}

	s.log.InfoContext(ctx, "user role updated",
		slog.String("target_user_id", updated.ID.String()),
		slog.String("new_role", updated.Role.String()),
	)
	return updated, nil
}
