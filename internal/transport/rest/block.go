package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/nenadmarinkovic/sprachenwald/internal/domain"
	"github.com/nenadmarinkovic/sprachenwald/internal/render"
	"github.com/nenadmarinkovic/sprachenwald/internal/service/block"
)

type blockService interface {
	GetBlock(ctx context.Context, slug string, f render.Filter) (block.View, error)
	CheckQuiz(ctx context.Context, input block.CheckQuizInput) (bool, error)
	ListBlocks(ctx context.Context, lessonID uuid.UUID) ([]block.Summary, error)
	GetBlockForEdit(ctx context.Context, id uuid.UUID) (domain.Block, error)
	AddBlocks(ctx context.Context, input block.AddBlocksInput) ([]domain.Block, error)
	UpdateBlock(ctx context.Context, input block.UpdateBlockInput) (domain.Block, error)
	DeleteBlock(ctx context.Context, id uuid.UUID) error
	ReorderBlocks(ctx context.Context, input block.ReorderBlocksInput) ([]domain.Block, error)
}

// BlockHandler serves block endpoints.
type BlockHandler struct {
	svc blockService
	log *slog.Logger
}

// NewBlockHandler creates a BlockHandler.
func NewBlockHandler(svc blockService, logger *slog.Logger) *BlockHandler {
	return &BlockHandler{svc: svc, log: logger.With("handler", "block")}
}

type addBlocksRequest struct {
	Types []domain.BlockType `json:"types"`
}

type updateBlockRequest struct {
	Title       *string                  `json:"title"`
	Content     []domain.ContentItem     `json:"content"`
	VideoURL    *string                  `json:"videoUrl"`
	Description *string                  `json:"description"`
	Quizzes     []domain.Quiz            `json:"quizzes"`
	Words       []domain.VocabularyEntry `json:"words"`
}

type checkQuizResponse struct {
	Correct bool `json:"correct"`
}

// filterFromQuery reads the reading filters: ?tip=imenica&padez=dativ,akuzativ&clan=1.
// Unknown values are ignored.
func filterFromQuery(r *http.Request) render.Filter {
	q := r.URL.Query()

	var cases []string
	for _, v := range q["padez"] {
		cases = append(cases, strings.Split(v, ",")...)
	}

	article := q.Get("clan")
	return render.Filter{
		PartOfSpeech:   domain.ParsePartOfSpeech(q.Get("tip")),
		Cases:          render.ParseCaseSet(cases),
		ColorByArticle: article == "1" || strings.EqualFold(article, "true"),
	}
}

// Get handles GET /api/blocks/{slug}.
func (h *BlockHandler) Get(w http.ResponseWriter, r *http.Request) {
	view, err := h.svc.GetBlock(r.Context(), r.PathValue("slug"), filterFromQuery(r))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toBlockViewResponse(view))
}

// CheckQuiz handles POST /api/blocks/{slug}/quizzes/{index}/check.
func (h *BlockHandler) CheckQuiz(w http.ResponseWriter, r *http.Request) {
	index, ok := pathInt(w, r, "index")
	if !ok {
		return
	}
	var answer domain.QuizAnswer
	if !decodeJSON(w, r, &answer) {
		return
	}

	correct, err := h.svc.CheckQuiz(r.Context(), block.CheckQuizInput{
		Slug:   r.PathValue("slug"),
		Index:  index,
		Answer: answer,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, checkQuizResponse{Correct: correct})
}

// ListForLesson handles GET /api/admin/lessons/{id}/blocks.
func (h *BlockHandler) ListForLesson(w http.ResponseWriter, r *http.Request) {
	lessonID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	summaries, err := h.svc.ListBlocks(r.Context(), lessonID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toSummaryResponses(summaries))
}

// Add handles POST /api/admin/lessons/{id}/blocks.
func (h *BlockHandler) Add(w http.ResponseWriter, r *http.Request) {
	lessonID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var req addBlocksRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	blocks, err := h.svc.AddBlocks(r.Context(), block.AddBlocksInput{LessonID: lessonID, Types: req.Types})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toBlockResponses(blocks))
}

// Reorder handles POST /api/admin/lessons/{id}/blocks/reorder.
func (h *BlockHandler) Reorder(w http.ResponseWriter, r *http.Request) {
	lessonID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var req reorderRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	blocks, err := h.svc.ReorderBlocks(r.Context(), block.ReorderBlocksInput{LessonID: lessonID, From: req.From, To: req.To})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toBlockResponses(blocks))
}

// GetForEdit handles GET /api/admin/blocks/{id}.
func (h *BlockHandler) GetForEdit(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	b, err := h.svc.GetBlockForEdit(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toBlockResponse(b))
}

// Update handles PATCH /api/admin/blocks/{id}.
func (h *BlockHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var req updateBlockRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	b, err := h.svc.UpdateBlock(r.Context(), block.UpdateBlockInput{
		ID:          id,
		Title:       req.Title,
		Content:     req.Content,
		VideoURL:    req.VideoURL,
		Description: req.Description,
		Quizzes:     req.Quizzes,
		Words:       req.Words,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toBlockResponse(b))
}

// Delete handles DELETE /api/admin/blocks/{id}.
func (h *BlockHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	if err := h.svc.DeleteBlock(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
