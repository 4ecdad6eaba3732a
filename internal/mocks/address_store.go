package mocks

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/phrazzld/contacts-api/internal/domain"
	"github.com/phrazzld/contacts-api/internal/store"
)

// MockAddressStore implements store.AddressStore.
type MockAddressStore struct {
	CreateFn           func(ctx context.Context, address *domain.Address) error
	GetForContactFn    func(ctx context.Context, contactID, id uuid.UUID) (*domain.Address, error)
	ListForContactFn   func(ctx context.Context, contactID uuid.UUID) ([]*domain.Address, error)
	UpdateFn           func(ctx context.Context, address *domain.Address) error
	DeleteForContactFn func(ctx context.Context, contactID, id uuid.UUID) error
}

var _ store.AddressStore = (*MockAddressStore)(nil)

func (m *MockAddressStore) Create(ctx context.Context, address *domain.Address) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, address)
	}
	return nil
}

func (m *MockAddressStore) GetForContact(ctx context.Context, contactID, id uuid.UUID) (*domain.Address, error) {
	if m.GetForContactFn != nil {
		return m.GetForContactFn(ctx, contactID, id)
	}
	return nil, store.ErrAddressNotFound
}

func (m *MockAddressStore) ListForContact(ctx context.Context, contactID uuid.UUID) ([]*domain.Address, error) {
	if m.ListForContactFn != nil {
		return m.ListForContactFn(ctx, contactID)
	}
	return []*domain.Address{}, nil
}

func (m *MockAddressStore) Update(ctx context.Context, address *domain.Address) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, address)
	}
	return nil
}

func (m *MockAddressStore) DeleteForContact(ctx context.Context, contactID, id uuid.UUID) error {
	if m.DeleteForContactFn != nil {
		return m.DeleteForContactFn(ctx, contactID, id)
	}
	return nil
}

// WithTx returns the mock itself.
func (m *MockAddressStore) WithTx(*sql.Tx) store.AddressStore {
	return m
}
