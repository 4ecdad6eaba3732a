package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"slices"

	"github.com/phrazzld/contacts-api/internal/platform/postgres"
)

// runMigrations executes one goose command against db using the embedded
// migration files.
func runMigrations(ctx context.Context, db *sql.DB, command string, logger *slog.Logger) error {
	if !slices.Contains(postgres.MigrationCommands, command) {
		return fmt.Errorf("unknown migration command %q (expected one of %v)",
			command, postgres.MigrationCommands)
	}

	logger.Info("executing migrations", slog.String("command", command))
	if err := postgres.Migrate(ctx, db, command); err != nil {
		return fmt.Errorf("migration %q failed: %w", command, err)
	}
	logger.Info("migrations finished", slog.String("command", command))
	return nil
}
