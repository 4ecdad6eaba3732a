package auth

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/phrazzld/contacts-api/internal/domain"
	"github.com/phrazzld/contacts-api/internal/platform/logger"
	"github.com/phrazzld/contacts-api/internal/store"
)

// Authenticator resolves a bearer token to the user whose session it is.
type Authenticator interface {
	// Authenticate returns ErrUnauthenticated when the token is empty,
	// fails verification or matches no user. Other errors indicate that
	// the lookup itself failed.
	Authenticate(ctx context.Context, token string) (*domain.User, error)
}

// TokenAuthenticator authenticates by equality lookup of the token on the
// user table. It never modifies stored tokens.
type TokenAuthenticator struct {
	users  store.UserStore
	tokens TokenIssuer
	logger *slog.Logger
}

var _ Authenticator = (*TokenAuthenticator)(nil)

// NewTokenAuthenticator creates a TokenAuthenticator.
func NewTokenAuthenticator(users store.UserStore, tokens TokenIssuer, logger *slog.Logger) *TokenAuthenticator {
	if logger == nil {
		logger = slog.Default()
	}
	return &TokenAuthenticator{
		users:  users,
		tokens: tokens,
		logger: logger.With(slog.String("component", "authenticator")),
	}
}

// Authenticate implements Authenticator.
func (a *TokenAuthenticator) Authenticate(ctx context.Context, token string) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, a.logger)

	if token == "" {
		return nil, ErrUnauthenticated
	}

	subject, err := a.tokens.Verify(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnauthenticated, err)
	}

	user, err := a.users.GetByToken(ctx, token)
	if err != nil {
		if store.IsNotFoundError(err) {
			log.Debug("no session matches presented token")
			return nil, ErrUnauthenticated
		}
		return nil, fmt.Errorf("failed to look up session: %w", err)
	}

	if subject != uuid.Nil && subject != user.ID {
		log.Warn("session token subject does not match its owner",
			slog.String("user_id", user.ID.String()))
		return nil, ErrUnauthenticated
	}

	return user, nil
}
