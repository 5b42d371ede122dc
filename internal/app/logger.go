package app

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/nenadmarinkovic/sprachenwald/internal/config"
	"github.com/nenadmarinkovic/sprachenwald/pkg/ctxutil"
)

// NewLogger builds the process logger on stderr and installs it as the slog
// default. Records logged with a context carry its request_id and user_id.
func NewLogger(cfg config.LogConfig) *slog.Logger {
	logger := newLogger(os.Stderr, cfg)
	slog.SetDefault(logger)
	return logger
}

func newLogger(w io.Writer, cfg config.LogConfig) *slog.Logger {
	text := strings.EqualFold(cfg.Format, "text")
	opts := &slog.HandlerOptions{Level: parseLevel(cfg.Level), AddSource: text}

	var h slog.Handler = slog.NewJSONHandler(w, opts)
	if text {
		h = slog.NewTextHandler(w, opts)
	}
	return slog.New(callerHandler{h}).With(slog.String("app", "sprachenwald"))
}

// callerHandler adds the request and caller identity from ctx unless the
// record already names them.
type callerHandler struct {
	slog.Handler
}

func (h callerHandler) Handle(ctx context.Context, r slog.Record) error {
	var hasRequestID bool
	r.Attrs(func(a slog.Attr) bool {
		hasRequestID = a.Key == "request_id"
		return !hasRequestID
	})
	if id := ctxutil.RequestIDFromCtx(ctx); id != "" && !hasRequestID {
		r.AddAttrs(slog.String("request_id", id))
	}
	if uid, ok := ctxutil.UserIDFromCtx(ctx); ok {
		r.AddAttrs(slog.String("user_id", uid.String()))
	}
	return h.Handler.Handle(ctx, r)
}

func (h callerHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return callerHandler{h.Handler.WithAttrs(attrs)}
}

func (h callerHandler) WithGroup(name string) slog.Handler {
	return callerHandler{h.Handler.WithGroup(name)}
}

func parseLevel(s string) slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo
	}
	return l
}
