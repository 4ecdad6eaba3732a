//go:build integration

package testdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" database/sql driver
	"github.com/phrazzld/contacts-api/internal/redact"
)

// DatabaseURLEnv names the variable holding the test database URL.
const DatabaseURLEnv = "DATABASE_URL"

// ErrNoDatabase is returned by Open when DATABASE_URL is unset.
var ErrNoDatabase = errors.New(DatabaseURLEnv + " not set")

// GetTestDatabaseURL returns the configured test database URL, or "".
func GetTestDatabaseURL() string {
	return os.Getenv(DatabaseURLEnv)
}

// Open connects to the test database and verifies the connection.
func Open(ctx context.Context) (*sql.DB, error) {
	url := GetTestDatabaseURL()
	if url == "" {
		return nil, ErrNoDatabase
	}

	db, err := sql.Open("pgx", url)
	if err != nil {
		return nil, fmt.Errorf("failed to open test database: %s", redact.Error(err))
	}
	db.SetMaxOpenConns(5)
	db.SetConnMaxLifetime(time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping test database %s: %s",
			redact.String(url), redact.Error(err))
	}
	return db, nil
}
