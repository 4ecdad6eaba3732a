package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/phrazzld/contacts-api/internal/domain"
)

// UserStore persists users and their session tokens.
type UserStore interface {
	// Create inserts a new user. It returns ErrUsernameExists if the
	// username is taken and domain validation errors for invalid users.
	Create(ctx context.Context, user *domain.User) error

	// GetByID returns ErrUserNotFound if no user has the given ID.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)

	// GetByUsername returns ErrUserNotFound if the username is unknown.
	GetByUsername(ctx context.Context, username string) (*domain.User, error)

	// GetByToken returns the user whose active session token equals token,
	// or ErrUserNotFound. An empty token never matches.
	GetByToken(ctx context.Context, token string) (*domain.User, error)

	// ExistsByUsername reports whether a user with the username exists.
	ExistsByUsername(ctx context.Context, username string) (bool, error)

	// UpdateProfile overwrites the user's name and hashed password.
	// It returns ErrUserNotFound if the user does not exist.
	UpdateProfile(ctx context.Context, user *domain.User) error

	// SetToken replaces the session token in a single-row update. A nil
	// token ends the session. It returns ErrUserNotFound if the user does
	// not exist.
	SetToken(ctx context.Context, id uuid.UUID, token *string) error

	// WithTx returns a UserStore that runs its queries on tx.
	WithTx(tx *sql.Tx) UserStore
}
