package mocks

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/phrazzld/contacts-api/internal/domain"
	"github.com/phrazzld/contacts-api/internal/store"
)

// MockContactStore implements store.ContactStore.
type MockContactStore struct {
	CreateFn        func(ctx context.Context, contact *domain.Contact) error
	GetForUserFn    func(ctx context.Context, userID, id uuid.UUID) (*domain.Contact, error)
	UpdateFn        func(ctx context.Context, contact *domain.Contact) error
	DeleteForUserFn func(ctx context.Context, userID, id uuid.UUID) error
	SearchFn        func(ctx context.Context, filter store.ContactFilter) ([]*domain.Contact, int, error)

	// TxCount counts calls to WithTx.
	TxCount int
}

var _ store.ContactStore = (*MockContactStore)(nil)

func (m *MockContactStore) Create(ctx context.Context, contact *domain.Contact) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, contact)
	}
	return nil
}

func (m *MockContactStore) GetForUser(ctx context.Context, userID, id uuid.UUID) (*domain.Contact, error) {
	if m.GetForUserFn != nil {
		return m.GetForUserFn(ctx, userID, id)
	}
	return nil, store.ErrContactNotFound
}

func (m *MockContactStore) Update(ctx context.Context, contact *domain.Contact) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, contact)
	}
	return nil
}

func (m *MockContactStore) DeleteForUser(ctx context.Context, userID, id uuid.UUID) error {
	if m.DeleteForUserFn != nil {
		return m.DeleteForUserFn(ctx, userID, id)
	}
	return nil
}

func (m *MockContactStore) Search(
	ctx context.Context,
	filter store.ContactFilter,
) ([]*domain.Contact, int, error) {
	if m.SearchFn != nil {
		return m.SearchFn(ctx, filter)
	}
	return []*domain.Contact{}, 0, nil
}

// WithTx records the call and returns the mock itself.
func (m *MockContactStore) WithTx(*sql.Tx) store.ContactStore {
	m.TxCount++
	return m
}
