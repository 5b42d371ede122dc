package rest

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/nenadmarinkovic/sprachenwald/internal/domain"
	"github.com/nenadmarinkovic/sprachenwald/internal/export"
	"github.com/nenadmarinkovic/sprachenwald/internal/service/vocabulary"
)

type vocabularyService interface {
	AddSelected(ctx context.Context, input vocabulary.AddSelectedInput) ([]domain.VocabularyWord, error)
	List(ctx context.Context, tab domain.VocabularyTab) ([]vocabulary.TabGroup, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Export(ctx context.Context, w io.Writer) error
}

// VocabularyHandler serves the personal vocabulary endpoints.
type VocabularyHandler struct {
	svc vocabularyService
	log *slog.Logger
	now func() time.Time
}

// NewVocabularyHandler creates a VocabularyHandler.
func NewVocabularyHandler(svc vocabularyService, logger *slog.Logger) *VocabularyHandler {
	return &VocabularyHandler{
		svc: svc,
		log: logger.With("handler", "vocabulary"),
		now: time.Now,
	}
}

type addSelectedRequest struct {
	BlockSlug string   `json:"blockSlug"`
	Germans   []string `json:"germans"`
}

// Add handles POST /api/vocabulary.
func (h *VocabularyHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req addSelectedRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	words, err := h.svc.AddSelected(r.Context(), vocabulary.AddSelectedInput{BlockSlug: req.BlockSlug, Germans: req.Germans})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toVocabularyWordResponses(words))
}

// List handles GET /api/vocabulary?tab=imenica.
func (h *VocabularyHandler) List(w http.ResponseWriter, r *http.Request) {
	groups, err := h.svc.List(r.Context(), domain.VocabularyTab(r.URL.Query().Get("tab")))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toTabResponses(groups))
}

// Delete handles DELETE /api/vocabulary/{id}.
func (h *VocabularyHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	if err := h.svc.Delete(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Export handles GET /api/vocabulary/export. The workbook is built in memory
// so a failure can still be reported as JSON.
func (h *VocabularyHandler) Export(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := h.svc.Export(r.Context(), &buf); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	name := fmt.Sprintf("sprachgarten-%s.xlsx", h.now().Format("2006-01-02"))
	w.Header().Set("Content-Type", export.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	w.WriteHeader(http.StatusOK)
	buf.WriteTo(w) //nolint:errcheck
}
