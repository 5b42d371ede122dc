// Command import-lessons loads YAML or JSON lesson packs into the course.
// Each file is checked against the pack schema; [[wort]] shorthand in plain
// German text becomes interactive-word markup.
//
// Flags:
//
//	--import-config  path to import config YAML (optional; falls back to env)
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/nenadmarinkovic/sprachenwald/internal/adapter/cache"
	"github.com/nenadmarinkovic/sprachenwald/internal/adapter/postgres"
	"github.com/nenadmarinkovic/sprachenwald/internal/adapter/postgres/audit"
	blockrepo "github.com/nenadmarinkovic/sprachenwald/internal/adapter/postgres/block"
	lessonrepo "github.com/nenadmarinkovic/sprachenwald/internal/adapter/postgres/lesson"
	"github.com/nenadmarinkovic/sprachenwald/internal/app"
	"github.com/nenadmarinkovic/sprachenwald/internal/app/lessonimport"
	"github.com/nenadmarinkovic/sprachenwald/internal/config"
	"github.com/nenadmarinkovic/sprachenwald/internal/service/block"
	"github.com/nenadmarinkovic/sprachenwald/internal/service/lesson"
)

func main() {
	importConfigPath := flag.String("import-config", "", "path to import config YAML")
	flag.Parse()

	_ = godotenv.Load()

	appCfg, err := config.Load()
	if err != nil {
		log.Fatalf("load app config: %v", err)
	}
	logger := app.NewLogger(appCfg.Log)

	importCfg, err := lessonimport.LoadConfig(*importConfigPath)
	if err != nil {
		logger.Error("load import config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, appCfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	lessons := lessonrepo.New(pool)
	blocks := blockrepo.New(pool)
	auditRepo := audit.New(pool)
	txm := postgres.NewTxManager(pool)
	noCache := cache.Noop{}

	lessonSvc := lesson.NewService(logger, lessons, blocks, noCache, auditRepo, txm, appCfg.Content)
	blockSvc := block.NewService(logger, lessons, blocks, noCache, auditRepo, txm, appCfg.Content)

	if importCfg.DryRun {
		logger.Info("dry-run mode: no DB writes")
	}

	res, err := lessonimport.Run(ctx, importCfg, lessonSvc, blockSvc, logger)
	if err != nil {
		logger.Error("import failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if res.Errors > 0 {
		os.Exit(1)
	}
}
