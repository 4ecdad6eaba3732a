package mocks

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/phrazzld/contacts-api/internal/domain"
	"github.com/phrazzld/contacts-api/internal/store"
)

// MockUserStore implements store.UserStore.
type MockUserStore struct {
	CreateFn           func(ctx context.Context, user *domain.User) error
	GetByIDFn          func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByUsernameFn    func(ctx context.Context, username string) (*domain.User, error)
	GetByTokenFn       func(ctx context.Context, token string) (*domain.User, error)
	ExistsByUsernameFn func(ctx context.Context, username string) (bool, error)
	UpdateProfileFn    func(ctx context.Context, user *domain.User) error
	SetTokenFn         func(ctx context.Context, id uuid.UUID, token *string) error
}

var _ store.UserStore = (*MockUserStore)(nil)

func (m *MockUserStore) Create(ctx context.Context, user *domain.User) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, user)
	}
	return nil
}

func (m *MockUserStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, ErrNotConfigured
}

func (m *MockUserStore) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	if m.GetByUsernameFn != nil {
		return m.GetByUsernameFn(ctx, username)
	}
	return nil, ErrNotConfigured
}

func (m *MockUserStore) GetByToken(ctx context.Context, token string) (*domain.User, error) {
	if m.GetByTokenFn != nil {
		return m.GetByTokenFn(ctx, token)
	}
	return nil, ErrNotConfigured
}

func (m *MockUserStore) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	if m.ExistsByUsernameFn != nil {
		return m.ExistsByUsernameFn(ctx, username)
	}
	return false, nil
}

func (m *MockUserStore) UpdateProfile(ctx context.Context, user *domain.User) error {
	if m.UpdateProfileFn != nil {
		return m.UpdateProfileFn(ctx, user)
	}
	return nil
}

func (m *MockUserStore) SetToken(ctx context.Context, id uuid.UUID, token *string) error {
	if m.SetTokenFn != nil {
		return m.SetTokenFn(ctx, id, token)
	}
	return nil
}

// WithTx returns the mock itself.
func (m *MockUserStore) WithTx(*sql.Tx) store.UserStore {
	return m
}
