package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/contacts-api/internal/config"
)

// TokenIssuer mints session tokens and checks their intrinsic validity.
// Issued tokens are persisted on the user row; the store lookup performed
// by the Authenticator remains the source of truth for session liveness.
type TokenIssuer interface {
	// Issue returns a new unpredictable token for userID.
	Issue(ctx context.Context, userID uuid.UUID) (string, error)

	// Verify checks the token's own integrity before any store lookup.
	// It returns the subject the token names, or uuid.Nil for tokens that
	// carry no subject.
	Verify(ctx context.Context, token string) (uuid.UUID, error)
}

// NewTokenIssuer returns the issuer selected by cfg.TokenMode.
func NewTokenIssuer(cfg config.AuthConfig) (TokenIssuer, error) {
	switch cfg.TokenMode {
	case config.TokenModeOpaque, "":
		return NewOpaqueTokenIssuer(), nil
	case config.TokenModeJWT:
		return NewJWTTokenIssuer(cfg.JWTSecret, time.Duration(cfg.TokenLifetimeMinutes)*time.Minute)
	default:
		return nil, fmt.Errorf("unknown token mode %q", cfg.TokenMode)
	}
}

// OpaqueTokenIssuer issues random version 4 UUIDs as session tokens.
type OpaqueTokenIssuer struct{}

var _ TokenIssuer = (*OpaqueTokenIssuer)(nil)

// NewOpaqueTokenIssuer creates an OpaqueTokenIssuer.
func NewOpaqueTokenIssuer() *OpaqueTokenIssuer {
	return &OpaqueTokenIssuer{}
}

// Issue implements TokenIssuer.
func (i *OpaqueTokenIssuer) Issue(_ context.Context, _ uuid.UUID) (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", fmt.Errorf("failed to generate session token: %w", err)
	}
	return id.String(), nil
}

// Verify implements TokenIssuer. Opaque tokens have no structure to check
// beyond being non-empty.
func (i *OpaqueTokenIssuer) Verify(_ context.Context, token string) (uuid.UUID, error) {
	if token == "" {
		return uuid.Nil, ErrInvalidToken
	}
	return uuid.Nil, nil
}
