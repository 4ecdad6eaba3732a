// Package mocks provides hand-written test doubles for the store, auth and
// service interfaces.
//
// Each mock exposes one function field per interface method. A nil field
// falls back to a zero-value success (or to ErrNotConfigured for lookups),
// so a test only needs to set the behaviours it cares about:
//
//	users := &mocks.MockUserStore{
//	    GetByTokenFn: func(ctx context.Context, token string) (*domain.User, error) {
//	        return alice, nil
//	    },
//	}
//
// The service interfaces are mocked with testify's mock.Mock instead, since
// handler tests assert on the arguments the handler passes through.
package mocks

import "errors"

var (
	// ErrNotConfigured is returned by lookup methods whose function field is nil.
	ErrNotConfigured = errors.New("mock method not configured")

	// ErrPasswordMismatch is returned by MockPasswordHasher.Compare.
	ErrPasswordMismatch = errors.New("password mismatch")
)
