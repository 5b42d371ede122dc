// Command cleanup prunes audit records older than audit.retention_days. Run
// it from cron; the server never prunes on its own.
//
//	cleanup [--retention-days=N] [--dry-run]
//
// With --dry-run the delete runs in a transaction that is rolled back, so the
// reported count is exact and nothing changes.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/nenadmarinkovic/sprachenwald/internal/adapter/postgres"
	"github.com/nenadmarinkovic/sprachenwald/internal/adapter/postgres/audit"
	"github.com/nenadmarinkovic/sprachenwald/internal/app"
	"github.com/nenadmarinkovic/sprachenwald/internal/config"
)

var errDryRun = errors.New("dry run")

func main() {
	retention := flag.Int("retention-days", 0, "override audit.retention_days")
	dryRun := flag.Bool("dry-run", false, "report what would be deleted without deleting")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logger := app.NewLogger(cfg.Log)

	days := cfg.Audit.RetentionDays
	if *retention > 0 {
		days = *retention
	}

	if err := run(logger, cfg.Database, days, *dryRun); err != nil {
		logger.Error("audit cleanup failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(logger *slog.Logger, dbCfg config.DatabaseConfig, days int, dryRun bool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, dbCfg)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer pool.Close()

	repo := audit.New(pool)
	cutoff := time.Now().AddDate(0, 0, -days)

	var deleted int64
	err = postgres.NewTxManager(pool).RunInTx(ctx, func(ctx context.Context) error {
		if deleted, err = repo.DeleteOlderThan(ctx, cutoff); err != nil {
			return err
		}
		if dryRun {
			return errDryRun
		}
		return nil
	})
	if err != nil && !errors.Is(err, errDryRun) {
		return err
	}

	logger.Info("audit cleanup completed",
		slog.Int64("deleted", deleted),
		slog.Time("cutoff", cutoff),
		slog.Bool("dry_run", dryRun),
	)
	return nil
}
