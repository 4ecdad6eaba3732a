package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/phrazzld/contacts-api/internal/platform/logger"
)

const minJWTSecretLength = 32

// JWTTokenIssuer issues HS256-signed session tokens. Each token carries
// a random jti, so two logins never produce the same string.
type JWTTokenIssuer struct {
	signingKey    []byte
	tokenLifetime time.Duration
	timeFunc      func() time.Time
	clockSkew     time.Duration
}

var _ TokenIssuer = (*JWTTokenIssuer)(nil)

// NewJWTTokenIssuer creates a JWTTokenIssuer. The secret must be at least
// 32 characters.
func NewJWTTokenIssuer(secret string, lifetime time.Duration) (*JWTTokenIssuer, error) {
	if len(secret) < minJWTSecretLength {
		return nil, fmt.Errorf("jwt secret must be at least %d characters", minJWTSecretLength)
	}
	if lifetime <= 0 {
		return nil, fmt.Errorf("jwt token lifetime must be positive")
	}

	return &JWTTokenIssuer{
		signingKey:    []byte(secret),
		tokenLifetime: lifetime,
		timeFunc:      time.Now,
		clockSkew:     2 * time.Minute,
	}, nil
}

// Issue implements TokenIssuer.
func (i *JWTTokenIssuer) Issue(ctx context.Context, userID uuid.UUID) (string, error) {
	now := i.timeFunc()

	claims := jwt.RegisteredClaims{
		Subject:   userID.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(i.tokenLifetime)),
		ID:        uuid.NewString(),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.signingKey)
	if err != nil {
		logger.FromContext(ctx).Error("failed to sign session token",
			"error", err,
			"user_id", userID)
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}

	return signed, nil
}

// Verify implements TokenIssuer.
func (i *JWTTokenIssuer) Verify(ctx context.Context, token string) (uuid.UUID, error) {
	log := logger.FromContext(ctx)
	now := i.timeFunc()

	var claims jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(
		token,
		&claims,
		func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return i.signingKey, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
		jwt.WithLeeway(i.clockSkew),
		jwt.WithTimeFunc(func() time.Time { return now }),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			log.Debug("session token expired")
			return uuid.Nil, ErrExpiredToken
		}
		log.Debug("session token failed verification", "error", err)
		return uuid.Nil, ErrInvalidToken
	}

	subject, err := uuid.Parse(claims.Subject)
	if err != nil {
		log.Debug("session token has malformed subject")
		return uuid.Nil, ErrInvalidToken
	}

	return subject, nil
}
