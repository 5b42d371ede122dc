package user

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/nenadmarinkovic/sprachenwald/internal/domain"
	"github.com/nenadmarinkovic/sprachenwald/pkg/ctxutil"
)

// SyncProfile records the signed-in user, creating the row on first sign-in
// with the plain user role. Email and name are refreshed on later calls; the
// stored role is kept.
func (s *Service) SyncProfile(ctx context.Context, input SyncProfileInput) (domain.User, error) {
	if err := input.Validate(); err != nil {
		return domain.User{}, err
	}

	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.User{}, domain.ErrUnauthorized
	}

	now := s.now()
	user, err := s.users.Upsert(ctx, domain.User{
		ID:        userID,
		Email:     strings.ToLower(strings.TrimSpace(input.Email)),
		Name:      domain.CollapseSpaces(input.Name),
		Role:      domain.UserRoleUser,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return domain.User{}, fmt.Errorf("user.SyncProfile: %w", err)
	}

	s.log.DebugContext(ctx, "profile synced", slog.String("user_id", userID.String()))
	return user, nil
}

// Me returns the authenticated user's profile.
func (s *Service) Me(ctx context.Context) (domain.User, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.User{}, domain.ErrUnauthorized
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return domain.User{}, fmt.Errorf("user.Me: %w", err)
	}
	return user, nil
}
