package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"github.com/nenadmarinkovic/sprachenwald/internal/adapter/cache"
	postgres "github.com/nenadmarinkovic/sprachenwald/internal/adapter/postgres"
	auditrepo "github.com/nenadmarinkovic/sprachenwald/internal/adapter/postgres/audit"
	blockrepo "github.com/nenadmarinkovic/sprachenwald/internal/adapter/postgres/block"
	cardrepo "github.com/nenadmarinkovic/sprachenwald/internal/adapter/postgres/card"
	lessonrepo "github.com/nenadmarinkovic/sprachenwald/internal/adapter/postgres/lesson"
	reviewlogrepo "github.com/nenadmarinkovic/sprachenwald/internal/adapter/postgres/reviewlog"
	userrepo "github.com/nenadmarinkovic/sprachenwald/internal/adapter/postgres/user"
	vocabularyrepo "github.com/nenadmarinkovic/sprachenwald/internal/adapter/postgres/vocabulary"
	"github.com/nenadmarinkovic/sprachenwald/internal/auth"
	"github.com/nenadmarinkovic/sprachenwald/internal/config"
	"github.com/nenadmarinkovic/sprachenwald/internal/domain"
	"github.com/nenadmarinkovic/sprachenwald/internal/service/authoring"
	"github.com/nenadmarinkovic/sprachenwald/internal/service/block"
	"github.com/nenadmarinkovic/sprachenwald/internal/service/lesson"
	"github.com/nenadmarinkovic/sprachenwald/internal/service/practice"
	"github.com/nenadmarinkovic/sprachenwald/internal/service/user"
	"github.com/nenadmarinkovic/sprachenwald/internal/service/vocabulary"
	gql "github.com/nenadmarinkovic/sprachenwald/internal/transport/graphql"
	"github.com/nenadmarinkovic/sprachenwald/internal/transport/graphql/dataloader"
	"github.com/nenadmarinkovic/sprachenwald/internal/transport/graphql/resolver"
	"github.com/nenadmarinkovic/sprachenwald/internal/transport/middleware"
	"github.com/nenadmarinkovic/sprachenwald/internal/transport/rest"
)

// blockCache is the cache the block service reads through; Redis when
// configured, a no-op otherwise.
type blockCache interface {
	GetBlock(ctx context.Context, slug string) (domain.Block, bool, error)
	SetBlock(ctx context.Context, b domain.Block) error
	Invalidate(ctx context.Context, slugs ...string) error
	Ping(ctx context.Context) error
	Close() error
}

// Run is the application entry point. It loads configuration, connects to
// PostgreSQL and Redis, wires services and serves HTTP until ctx is
// cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("database", cfg.Database.RedactedDSN()),
	)

	if cfg.Database.AutoMigrate {
		if err := postgres.Migrate(ctx, cfg.Database.DSN, logger); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer pool.Close()

	var blocksCache blockCache = cache.Noop{}
	if cfg.Redis.Enabled() {
		rc, err := cache.NewRedis(ctx, cfg.Redis, logger)
		if err != nil {
			return fmt.Errorf("redis: %w", err)
		}
		blocksCache = rc
	}
	defer blocksCache.Close() //nolint:errcheck

	// Repositories
	txm := postgres.NewTxManager(pool)
	lessons := lessonrepo.New(pool)
	blocks := blockrepo.New(pool)
	words := vocabularyrepo.New(pool)
	users := userrepo.New(pool)
	audit := auditrepo.New(pool)
	cards := cardrepo.New(pool)
	reviews := reviewlogrepo.New(pool)

	// Services
	lessonSvc := lesson.NewService(logger, lessons, blocks, blocksCache, audit, txm, cfg.Content)
	blockSvc := block.NewService(logger, lessons, blocks, blocksCache, audit, txm, cfg.Content)
	vocabularySvc := vocabulary.NewService(logger, blockSvc, words, cfg.Content, cfg.Vocabulary)
	authoringSvc := authoring.NewService(logger, cfg.Content.MaxBlockBytes)
	userSvc := user.NewService(logger, users, audit, txm)
	practiceSvc := practice.NewService(logger, words, cards, reviews, txm, cfg.Practice)

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.TokenTTL)

	var cachePinger interface{ Ping(context.Context) error }
	if cfg.Redis.Enabled() {
		cachePinger = blocksCache
	}

	mux := rest.NewRouter(rest.Handlers{
		Health:     rest.NewHealthHandler(pool, cachePinger, BuildVersion()),
		Lessons:    rest.NewLessonHandler(lessonSvc, logger),
		Blocks:     rest.NewBlockHandler(blockSvc, logger),
		Vocabulary: rest.NewVocabularyHandler(vocabularySvc, logger),
		Practice:   rest.NewPracticeHandler(practiceSvc, logger),
		Authoring:  rest.NewAuthoringHandler(authoringSvc, logger),
		Users:      rest.NewUserHandler(userSvc, logger),
	})

	// GraphQL
	res := resolver.NewResolver(logger, lessonSvc, blockSvc, userSvc, vocabularySvc, practiceSvc)
	graphqlHandler := gql.NewHandler(logger, res, &dataloader.Repos{Block: blocks, Card: cards, ReviewLog: reviews})
	mux.Handle("POST /query", graphqlHandler)
	mux.Handle("OPTIONS /query", graphqlHandler)

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	var metricsMW middleware.Middleware
	if cfg.Metrics.Enabled {
		metricsMW = middleware.NewHTTPMetrics(reg).Middleware()
		mux.Handle("GET "+cfg.Metrics.Path, promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	}

	limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
	defer limiter.Stop()

	handler := middleware.Chain(
		middleware.RequestID(),
		middleware.Recovery(logger),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		limiter.Limit(cfg.RateLimit.RequestsPerMinute, cfg.RateLimit.WritesPerMinute),
		middleware.Auth(jwtManager),
		metricsMW,
	)(mux)

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		BaseContext:  func(net.Listener) context.Context { return ctx },
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.Server.ShutdownTimeout)
		defer cancel()

		logger.Info("shutting down http server")
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("application stopped")
	return nil
}
