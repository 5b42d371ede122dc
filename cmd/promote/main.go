// Command promote sets a user's role to admin by email address.
// It is used to bootstrap the first admin user; the user must have signed in
// once so that their profile exists.
//
// Usage:
//
//	promote --email=user@example.com
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/nenadmarinkovic/sprachenwald/internal/adapter/postgres"
	"github.com/nenadmarinkovic/sprachenwald/internal/adapter/postgres/audit"
	userrepo "github.com/nenadmarinkovic/sprachenwald/internal/adapter/postgres/user"
	"github.com/nenadmarinkovic/sprachenwald/internal/app"
	"github.com/nenadmarinkovic/sprachenwald/internal/config"
	"github.com/nenadmarinkovic/sprachenwald/internal/domain"
	"github.com/nenadmarinkovic/sprachenwald/internal/service/user"
)

func main() {
	email := flag.String("email", "", "email of user to promote to admin")
	flag.Parse()

	if *email == "" {
		fmt.Fprintln(os.Stderr, "Usage: promote --email=user@example.com")
		os.Exit(1)
	}

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("connect to database: %v", err)
	}
	defer pool.Close()

	svc := user.NewService(logger, userrepo.New(pool), audit.New(pool), postgres.NewTxManager(pool))

	u, err := svc.PromoteByEmail(ctx, *email)
	if errors.Is(err, domain.ErrNotFound) {
		fmt.Printf("No user found with email %q.\n", *email)
		os.Exit(1)
	}
	if err != nil {
		log.Fatalf("promote: %v", err)
	}

	fmt.Printf("User %q is now %s.\n", u.Email, u.Role)
}
