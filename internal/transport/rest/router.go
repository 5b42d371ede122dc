package rest

import (
	"net/http"

	"github.com/nenadmarinkovic/sprachenwald/internal/transport/middleware"
)

// Handlers groups every REST handler mounted by NewRouter.
type Handlers struct {
	Health     *HealthHandler
	Lessons    *LessonHandler
	Blocks     *BlockHandler
	Vocabulary *VocabularyHandler
	Practice   *PracticeHandler
	Authoring  *AuthoringHandler
	Users      *UserHandler
}

// NewRouter registers all routes on a new ServeMux. Routes under /api/admin
// require an admin caller.
func NewRouter(h Handlers) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	mux.HandleFunc("GET /api/lessons", h.Lessons.List)
	mux.HandleFunc("GET /api/lessons/{slug}", h.Lessons.Get)
	mux.HandleFunc("GET /api/blocks/{slug}", h.Blocks.Get)
	mux.HandleFunc("POST /api/blocks/{slug}/quizzes/{index}/check", h.Blocks.CheckQuiz)

	mux.HandleFunc("GET /api/me", h.Users.Me)
	mux.HandleFunc("POST /api/me", h.Users.Sync)

	mux.HandleFunc("GET /api/vocabulary", h.Vocabulary.List)
	mux.HandleFunc("POST /api/vocabulary", h.Vocabulary.Add)
	mux.HandleFunc("GET /api/vocabulary/export", h.Vocabulary.Export)
	mux.HandleFunc("DELETE /api/vocabulary/{id}", h.Vocabulary.Delete)
	mux.HandleFunc("GET /api/vocabulary/practice", h.Practice.Deck)
	mux.HandleFunc("POST /api/vocabulary/practice/{id}/review", h.Practice.Review)

	admin := func(pattern string, fn http.HandlerFunc) {
		mux.Handle(pattern, middleware.RequireAdmin(fn))
	}
	admin("POST /api/admin/lessons", h.Lessons.Create)
	admin("POST /api/admin/lessons/reorder", h.Lessons.Reorder)
	admin("PATCH /api/admin/lessons/{id}", h.Lessons.Update)
	admin("DELETE /api/admin/lessons/{id}", h.Lessons.Delete)
	admin("GET /api/admin/lessons/{id}/blocks", h.Blocks.ListForLesson)
	admin("POST /api/admin/lessons/{id}/blocks", h.Blocks.Add)
	admin("POST /api/admin/lessons/{id}/blocks/reorder", h.Blocks.Reorder)
	admin("GET /api/admin/blocks/{id}", h.Blocks.GetForEdit)
	admin("PATCH /api/admin/blocks/{id}", h.Blocks.Update)
	admin("DELETE /api/admin/blocks/{id}", h.Blocks.Delete)
	admin("POST /api/admin/editor", h.Authoring.Run)
	admin("PUT /api/admin/users/role", h.Users.SetRole)

	return mux
}
