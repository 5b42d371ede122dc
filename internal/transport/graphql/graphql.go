// Package graphql provides the GraphQL transport for the reader: lessons and
// their blocks, rendered blocks with filters, the Sprachgarten and its
// practice deck. Domain errors are mapped to GraphQL error codes, and the
// per-request dataloaders batch nested lookups.
package graphql

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	gqlhandler "github.com/99designs/gqlgen/graphql/handler"

	"github.com/nenadmarinkovic/sprachenwald/internal/transport/graphql/dataloader"
	"github.com/nenadmarinkovic/sprachenwald/internal/transport/graphql/schema"
)

// NewHandler serves GraphQL over resolvers. Each request gets its own
// dataloaders backed by repos.
func NewHandler(log *slog.Logger, resolvers schema.ResolverRoot, repos *dataloader.Repos) http.Handler {
	srv := gqlhandler.NewDefaultServer(schema.NewExecutableSchema(schema.Config{Resolvers: resolvers}))
	srv.SetErrorPresenter(NewErrorPresenter(log))
	srv.SetRecoverFunc(func(ctx context.Context, p any) error {
		log.ErrorContext(ctx, "graphql panic", slog.Any("panic", p))
		return errors.New("internal error")
	})
	return dataloader.Middleware(repos)(srv)
}
