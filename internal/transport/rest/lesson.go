package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/nenadmarinkovic/sprachenwald/internal/domain"
	"github.com/nenadmarinkovic/sprachenwald/internal/service/lesson"
)

type lessonService interface {
	ListLessons(ctx context.Context) ([]domain.Lesson, error)
	GetLesson(ctx context.Context, slug string) (lesson.LessonWithBlocks, error)
	CreateLesson(ctx context.Context, input lesson.CreateLessonInput) (domain.Lesson, error)
	UpdateLesson(ctx context.Context, input lesson.UpdateLessonInput) (domain.Lesson, error)
	DeleteLesson(ctx context.Context, id uuid.UUID) error
	ReorderLessons(ctx context.Context, input lesson.ReorderLessonsInput) ([]domain.Lesson, error)
}

// LessonHandler serves lesson endpoints.
type LessonHandler struct {
	svc lessonService
	log *slog.Logger
}

// NewLessonHandler creates a LessonHandler.
func NewLessonHandler(svc lessonService, logger *slog.Logger) *LessonHandler {
	return &LessonHandler{svc: svc, log: logger.With("handler", "lesson")}
}

type lessonTitleRequest struct {
	Title string `json:"title"`
}

type reorderRequest struct {
	From int `json:"from"`
	To   int `json:"to"`
}

// List handles GET /api/lessons.
func (h *LessonHandler) List(w http.ResponseWriter, r *http.Request) {
	lessons, err := h.svc.ListLessons(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toLessonResponses(lessons))
}

// Get handles GET /api/lessons/{slug}.
func (h *LessonHandler) Get(w http.ResponseWriter, r *http.Request) {
	res, err := h.svc.GetLesson(r.Context(), r.PathValue("slug"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	links := make([]blockLink, 0, len(res.Blocks))
	for _, b := range res.Blocks {
		links = append(links, blockLink{Type: b.Type, Title: b.Title, Slug: b.Slug})
	}
	writeJSON(w, http.StatusOK, lessonPageResponse{Lesson: toLessonResponse(res.Lesson), Blocks: links})
}

// Create handles POST /api/admin/lessons.
func (h *LessonHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req lessonTitleRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	l, err := h.svc.CreateLesson(r.Context(), lesson.CreateLessonInput{Title: req.Title})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toLessonResponse(l))
}

// Update handles PATCH /api/admin/lessons/{id}.
func (h *LessonHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var req lessonTitleRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	l, err := h.svc.UpdateLesson(r.Context(), lesson.UpdateLessonInput{ID: id, Title: req.Title})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toLessonResponse(l))
}

// Delete handles DELETE /api/admin/lessons/{id}.
func (h *LessonHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	if err := h.svc.DeleteLesson(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Reorder handles POST /api/admin/lessons/reorder.
func (h *LessonHandler) Reorder(w http.ResponseWriter, r *http.Request) {
	var req reorderRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	lessons, err := h.svc.ReorderLessons(r.Context(), lesson.ReorderLessonsInput{From: req.From, To: req.To})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toLessonResponses(lessons))
}
