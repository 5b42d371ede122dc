package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/nenadmarinkovic/sprachenwald/internal/domain"
	"github.com/nenadmarinkovic/sprachenwald/internal/editor"
	"github.com/nenadmarinkovic/sprachenwald/internal/service/authoring"
)

type authoringService interface {
	Run(ctx context.Context, input authoring.Input) (authoring.Result, error)
}

// AuthoringHandler exposes the editor commands.
type AuthoringHandler struct {
	svc authoringService
	log *slog.Logger
}

// NewAuthoringHandler creates an AuthoringHandler.
func NewAuthoringHandler(svc authoringService, logger *slog.Logger) *AuthoringHandler {
	return &AuthoringHandler{svc: svc, log: logger.With("handler", "authoring")}
}

type editorCommandRequest struct {
	HTML      string                     `json:"html"`
	Selection editor.Selection           `json:"selection"`
	Command   authoring.Command          `json:"command"`
	Text      string                     `json:"text,omitempty"`
	Attrs     domain.InteractiveWordSpan `json:"attrs,omitempty"`
	Patch     editor.AttrPatch           `json:"patch,omitempty"`
	Format    editor.MarkType            `json:"format,omitempty"`
	Block     editor.BlockTag            `json:"block,omitempty"`
	Href      string                     `json:"href,omitempty"`
}

type editorCommandResponse struct {
	HTML      string           `json:"html"`
	Selection editor.Selection `json:"selection"`
	Panel     editor.Panel     `json:"panel"`
	Words     []editor.Word    `json:"words"`
	Changed   bool             `json:"changed"`
}

// Run handles POST /api/admin/editor.
func (h *AuthoringHandler) Run(w http.ResponseWriter, r *http.Request) {
	var req editorCommandRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	res, err := h.svc.Run(r.Context(), authoring.Input{
		HTML:      req.HTML,
		Selection: req.Selection,
		Command:   req.Command,
		Text:      req.Text,
		Attrs:     req.Attrs,
		Patch:     req.Patch,
		Format:    req.Format,
		Block:     req.Block,
		Href:      req.Href,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	words := res.Words
	if words == nil {
		words = []editor.Word{}
	}
	writeJSON(w, http.StatusOK, editorCommandResponse{
		HTML:      res.HTML,
		Selection: res.Selection,
		Panel:     res.Panel,
		Words:     words,
		Changed:   res.Changed,
	})
}
