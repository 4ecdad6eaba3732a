package auth

import "errors"

var (
	// ErrUnauthenticated is returned when a presented token does not map to
	// an active session. Callers respond with 401 without further detail.
	ErrUnauthenticated = errors.New("unauthenticated")

	// ErrInvalidToken is returned when a token is malformed or its
	// signature does not verify.
	ErrInvalidToken = errors.New("invalid token")

	// ErrExpiredToken is returned when a signed token is past its expiry.
	ErrExpiredToken = errors.New("token expired")
)
