// Package main implements the entry point for the contacts API server,
// which lets registered users manage their own contacts and the
// addresses attached to them.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/phrazzld/contacts-api/internal/config"
	"github.com/phrazzld/contacts-api/internal/platform/logger"
	"github.com/phrazzld/contacts-api/internal/platform/postgres"
)

func main() {
	migrateCmd := flag.String("migrate", "",
		"run a migration command and exit: "+strings.Join(postgres.MigrationCommands, ", "))
	flag.Parse()

	if err := run(*migrateCmd); err != nil {
		log.Fatalf("contacts-api: %v", err)
	}
}

// run loads configuration, connects to the database and either executes a
// migration command or serves HTTP until SIGINT/SIGTERM.
func run(migrateCmd string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	l, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}
	l.Info("server configuration loaded",
		slog.Int("port", cfg.Server.Port),
		slog.String("log_level", cfg.Server.LogLevel),
		slog.String("token_mode", cfg.Auth.TokenMode))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := setupAppDatabase(ctx, cfg.Database, l)
	if err != nil {
		return err
	}

	if migrateCmd != "" {
		defer closeDB(db, l)
		return runMigrations(ctx, db, migrateCmd, l)
	}

	app, err := newApplication(cfg, l, db)
	if err != nil {
		closeDB(db, l)
		return fmt.Errorf("failed to initialize application: %w", err)
	}
	return app.Run(ctx)
}
