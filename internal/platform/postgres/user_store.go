package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/contacts-api/internal/domain"
	"github.com/phrazzld/contacts-api/internal/platform/logger"
	"github.com/phrazzld/contacts-api/internal/redact"
	"github.com/phrazzld/contacts-api/internal/store"
)

const userColumns = `id, username, password_hash, name, token, created_at, updated_at`

// PostgresUserStore implements store.UserStore.
type PostgresUserStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresUserStore creates a user store on db. A nil logger falls back
// to slog.Default().
func NewPostgresUserStore(db store.DBTX, logger *slog.Logger) *PostgresUserStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresUserStore{
		db:     db,
		logger: logger.With(slog.String("component", "user_store")),
	}
}

var _ store.UserStore = (*PostgresUserStore)(nil)

// WithTx implements store.UserStore.
func (s *PostgresUserStore) WithTx(tx *sql.Tx) store.UserStore {
	return &PostgresUserStore{db: tx, logger: s.logger}
}

// Create implements store.UserStore.
func (s *PostgresUserStore) Create(ctx context.Context, user *domain.User) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := user.Validate(); err != nil {
		log.Warn("user validation failed during create",
			slog.String("error", redact.Error(err)),
			slog.String("user_id", user.ID.String()))
		return err
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO users (`+userColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		user.ID,
		user.Username,
		user.HashedPassword,
		user.Name,
		user.Token,
		user.CreatedAt,
		user.UpdatedAt,
	)
	if err != nil {
		if IsUniqueViolation(err) {
			log.Debug("username already registered", slog.String("user_id", user.ID.String()))
			return store.ErrUsernameExists
		}
		log.Error("failed to create user",
			slog.String("error", redact.Error(err)),
			slog.String("user_id", user.ID.String()))
		return store.NewStoreError("user", "create", "insert failed", MapError(err))
	}

	log.Info("user created", slog.String("user_id", user.ID.String()))
	return nil
}

// GetByID implements store.UserStore.
func (s *PostgresUserStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return s.getOne(ctx, "id", `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
}

// GetByUsername implements store.UserStore.
func (s *PostgresUserStore) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return s.getOne(ctx, "username", `SELECT `+userColumns+` FROM users WHERE username = $1`, username)
}

// GetByToken implements store.UserStore.
func (s *PostgresUserStore) GetByToken(ctx context.Context, token string) (*domain.User, error) {
	if token == "" {
		return nil, store.ErrUserNotFound
	}
	return s.getOne(ctx, "token", `SELECT `+userColumns+` FROM users WHERE token = $1`, token)
}

func (s *PostgresUserStore) getOne(ctx context.Context, by, query string, arg any) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var user domain.User
	err := s.db.QueryRowContext(ctx, query, arg).Scan(
		&user.ID,
		&user.Username,
		&user.HashedPassword,
		&user.Name,
		&user.Token,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("user not found", slog.String("lookup", by))
			return nil, store.ErrUserNotFound
		}
		log.Error("failed to get user",
			slog.String("lookup", by),
			slog.String("error", redact.Error(err)))
		return nil, store.NewStoreError("user", "get", "query failed", MapError(err))
	}

	return &user, nil
}

// ExistsByUsername implements store.UserStore.
func (s *PostgresUserStore) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	var exists bool
	err := s.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM users WHERE username = $1)`, username,
	).Scan(&exists)
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to check username",
			slog.String("error", redact.Error(err)))
		return false, store.NewStoreError("user", "exists", "query failed", MapError(err))
	}
	return exists, nil
}

// UpdateProfile implements store.UserStore.
func (s *PostgresUserStore) UpdateProfile(ctx context.Context, user *domain.User) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := user.Validate(); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, `
		UPDATE users
		SET name = $1, password_hash = $2, updated_at = $3
		WHERE id = $4`,
		user.Name,
		user.HashedPassword,
		user.UpdatedAt,
		user.ID,
	)
	if err != nil {
		log.Error("failed to update user",
			slog.String("error", redact.Error(err)),
			slog.String("user_id", user.ID.String()))
		return store.NewStoreError("user", "update", "update failed", MapError(err))
	}

	return CheckRowsAffected(result, store.ErrUserNotFound)
}

// SetToken implements store.UserStore.
func (s *PostgresUserStore) SetToken(ctx context.Context, id uuid.UUID, token *string) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx,
		`UPDATE users SET token = $1, updated_at = $2 WHERE id = $3`,
		token, time.Now().UTC(), id,
	)
	if err != nil {
		log.Error("failed to set session token",
			slog.String("error", redact.Error(err)),
			slog.String("user_id", id.String()))
		return store.NewStoreError("user", "set_token", "update failed", MapError(err))
	}

	if err := CheckRowsAffected(result, store.ErrUserNotFound); err != nil {
		return fmt.Errorf("set token for %s: %w", id, err)
	}

	log.Debug("session token updated",
		slog.String("user_id", id.String()),
		slog.Bool("active", token != nil))
	return nil
}
