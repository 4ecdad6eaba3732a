package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/phrazzld/contacts-api/internal/domain"
	"github.com/phrazzld/contacts-api/internal/service/auth"
)

// MockTokenIssuer implements auth.TokenIssuer.
type MockTokenIssuer struct {
	IssueFn  func(ctx context.Context, userID uuid.UUID) (string, error)
	VerifyFn func(ctx context.Context, token string) (uuid.UUID, error)
}

var _ auth.TokenIssuer = (*MockTokenIssuer)(nil)

func (m *MockTokenIssuer) Issue(ctx context.Context, userID uuid.UUID) (string, error) {
	if m.IssueFn != nil {
		return m.IssueFn(ctx, userID)
	}
	return uuid.NewString(), nil
}

func (m *MockTokenIssuer) Verify(ctx context.Context, token string) (uuid.UUID, error) {
	if m.VerifyFn != nil {
		return m.VerifyFn(ctx, token)
	}
	return uuid.Nil, nil
}

// MockPasswordHasher implements auth.PasswordHasher and
// auth.PasswordVerifier. By default Hash prefixes "hashed:" and Compare
// accepts exactly that form.
type MockPasswordHasher struct {
	HashFn    func(password string) (string, error)
	CompareFn func(hashedPassword, password string) error
}

var (
	_ auth.PasswordHasher   = (*MockPasswordHasher)(nil)
	_ auth.PasswordVerifier = (*MockPasswordHasher)(nil)
)

func (m *MockPasswordHasher) Hash(password string) (string, error) {
	if m.HashFn != nil {
		return m.HashFn(password)
	}
	return "hashed:" + password, nil
}

func (m *MockPasswordHasher) Compare(hashedPassword, password string) error {
	if m.CompareFn != nil {
		return m.CompareFn(hashedPassword, password)
	}
	if hashedPassword != "hashed:"+password {
		return ErrPasswordMismatch
	}
	return nil
}

// MockAuthenticator implements auth.Authenticator.
type MockAuthenticator struct {
	AuthenticateFn func(ctx context.Context, token string) (*domain.User, error)
}

var _ auth.Authenticator = (*MockAuthenticator)(nil)

func (m *MockAuthenticator) Authenticate(ctx context.Context, token string) (*domain.User, error) {
	if m.AuthenticateFn != nil {
		return m.AuthenticateFn(ctx, token)
	}
	return nil, auth.ErrUnauthenticated
}
