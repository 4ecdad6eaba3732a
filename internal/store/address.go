package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/phrazzld/contacts-api/internal/domain"
)

// AddressStore persists addresses. Every read and write is scoped by the
// parent contact; callers must already have resolved that contact for
// the requesting user.
type AddressStore interface {
	Create(ctx context.Context, address *domain.Address) error

	// GetForContact returns ErrAddressNotFound unless an address with id
	// is attached to contactID.
	GetForContact(ctx context.Context, contactID, id uuid.UUID) (*domain.Address, error)

	// ListForContact returns every address of the contact, oldest first.
	ListForContact(ctx context.Context, contactID uuid.UUID) ([]*domain.Address, error)

	// Update writes the mutable fields where both ID and ContactID match.
	Update(ctx context.Context, address *domain.Address) error

	DeleteForContact(ctx context.Context, contactID, id uuid.UUID) error

	WithTx(tx *sql.Tx) AddressStore
}
