package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/nenadmarinkovic/sprachenwald/internal/domain"
	"github.com/nenadmarinkovic/sprachenwald/internal/service/user"
)

type userService interface {
	SyncProfile(ctx context.Context, input user.SyncProfileInput) (domain.User, error)
	Me(ctx context.Context) (domain.User, error)
	SetRole(ctx context.Context, input user.SetRoleInput) (domain.User, error)
}

// UserHandler serves profile and role endpoints.
type UserHandler struct {
	svc userService
	log *slog.Logger
}

// NewUserHandler creates a UserHandler.
func NewUserHandler(svc userService, logger *slog.Logger) *UserHandler {
	return &UserHandler{svc: svc, log: logger.With("handler", "user")}
}

type syncProfileRequest struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

type setRoleRequest struct {
	Email string          `json:"email"`
	Role  domain.UserRole `json:"role"`
}

// Sync handles POST /api/me.
func (h *UserHandler) Sync(w http.ResponseWriter, r *http.Request) {
	var req syncProfileRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	u, err := h.svc.SyncProfile(r.Context(), user.SyncProfileInput{Email: req.Email, Name: req.Name})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toUserResponse(u))
}

// Me handles GET /api/me.
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	u, err := h.svc.Me(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toUserResponse(u))
}

// SetRole handles PUT /api/admin/users/role.
func (h *UserHandler) SetRole(w http.ResponseWriter, r *http.Request) {
	var req setRoleRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	u, err := h.svc.SetRole(r.Context(), user.SetRoleInput{Email: req.Email, Role: req.Role})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toUserResponse(u))
}
