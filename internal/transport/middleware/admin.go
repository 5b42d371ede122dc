package middleware

import (
	"net/http"

	"github.com/nenadmarinkovic/sprachenwald/pkg/ctxutil"
)

// RequireAdmin rejects requests whose caller is anonymous (401) or not an
// admin (403). Services check the role again; this keeps admin routes from
// reaching them at all.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := ctxutil.UserIDFromCtx(r.Context()); !ok {
			writeError(w, http.StatusUnauthorized, "unauthorized")
			return
		}
		if !ctxutil.IsAdminCtx(r.Context()) {
			writeError(w, http.StatusForbidden, "forbidden")
			return
		}
		next.ServeHTTP(w, r)
	})
}
