package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/nenadmarinkovic/sprachenwald/internal/domain"
	"github.com/nenadmarinkovic/sprachenwald/internal/service/practice"
)

type practiceService interface {
	Deck(ctx context.Context, in practice.DeckInput) (practice.Deck, error)
	Review(ctx context.Context, in practice.ReviewInput) (practice.Card, error)
}

// PracticeHandler serves the flashcard deck of the personal vocabulary.
type PracticeHandler struct {
	svc practiceService
	log *slog.Logger
}

// NewPracticeHandler creates a PracticeHandler.
func NewPracticeHandler(svc practiceService, logger *slog.Logger) *PracticeHandler {
	return &PracticeHandler{svc: svc, log: logger.With("handler", "practice")}
}

// Deck handles GET /api/vocabulary/practice?tab=imenica&size=20.
func (h *PracticeHandler) Deck(w http.ResponseWriter, r *http.Request) {
	in := practice.DeckInput{Tab: domain.VocabularyTab(r.URL.Query().Get("tab"))}
	if raw := r.URL.Query().Get("size"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid size")
			return
		}
		in.Size = n
	}

	deck, err := h.svc.Deck(r.Context(), in)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toDeckResponse(deck))
}

type reviewRequest struct {
	Grade      domain.ReviewGrade `json:"grade"`
	DurationMs *int               `json:"durationMs,omitempty"`
}

// Review handles POST /api/vocabulary/practice/{id}/review.
func (h *PracticeHandler) Review(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var req reviewRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	card, err := h.svc.Review(r.Context(), practice.ReviewInput{WordID: id, Grade: req.Grade, DurationMs: req.DurationMs})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toPracticeCardResponse(card))
}
