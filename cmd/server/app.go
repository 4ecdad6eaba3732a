package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/phrazzld/contacts-api/internal/config"
	"github.com/phrazzld/contacts-api/internal/platform/postgres"
	"github.com/phrazzld/contacts-api/internal/service"
	"github.com/phrazzld/contacts-api/internal/service/auth"
	"github.com/phrazzld/contacts-api/internal/store"
)

// application holds the shared dependencies of the server so they can be
// wired once and released together on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	userStore    store.UserStore
	contactStore store.ContactStore
	addressStore store.AddressStore

	authenticator  auth.Authenticator
	userService    service.UserService
	contactService service.ContactService
	addressService service.AddressService
}

// newApplication wires stores, auth and services on top of an open
// database connection.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	tokens, err := auth.NewTokenIssuer(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize token issuer: %w", err)
	}
	hasher := auth.NewBcryptHasher(cfg.Auth.BcryptCost)

	app.userStore = postgres.NewPostgresUserStore(db, logger)
	app.contactStore = postgres.NewPostgresContactStore(db, logger)
	app.addressStore = postgres.NewPostgresAddressStore(db, logger)

	tx := store.NewSQLTransactor(db)
	guard := service.NewOwnershipGuard(app.contactStore, app.addressStore)

	app.authenticator = auth.NewTokenAuthenticator(app.userStore, tokens, logger)
	app.userService = service.NewUserService(app.userStore, hasher, hasher, tokens, logger)
	app.contactService = service.NewContactService(app.contactStore, guard, tx, logger)
	app.addressService = service.NewAddressService(app.addressStore, guard, tx, logger)

	logger.Info("application initialized", slog.String("token_mode", cfg.Auth.TokenMode))
	return app, nil
}

// Run serves HTTP until ctx is cancelled and then releases resources.
func (app *application) Run(ctx context.Context) error {
	defer app.cleanup()

	if err := app.startHTTPServer(ctx, app.setupRouter()); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

func (app *application) cleanup() {
	if app.db != nil {
		closeDB(app.db, app.logger)
	}
	app.logger.Info("application shutdown completed")
}
