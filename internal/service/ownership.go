package service

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/phrazzld/contacts-api/internal/domain"
	"github.com/phrazzld/contacts-api/internal/store"
)

// OwnershipGuard resolves resources only within the requesting user's
// scope. A resource that does not exist and one owned by someone else
// produce the same not-found error.
type OwnershipGuard struct {
	contacts  store.ContactStore
	addresses store.AddressStore
}

// NewOwnershipGuard creates an OwnershipGuard.
func NewOwnershipGuard(contacts store.ContactStore, addresses store.AddressStore) *OwnershipGuard {
	return &OwnershipGuard{contacts: contacts, addresses: addresses}
}

// WithTx returns a guard whose lookups run on tx.
func (g *OwnershipGuard) WithTx(tx *sql.Tx) *OwnershipGuard {
	return &OwnershipGuard{
		contacts:  g.contacts.WithTx(tx),
		addresses: g.addresses.WithTx(tx),
	}
}

// ResolveContact returns the contact with contactID if userID owns it, and
// store.ErrContactNotFound otherwise.
func (g *OwnershipGuard) ResolveContact(
	ctx context.Context,
	userID, contactID uuid.UUID,
) (*domain.Contact, error) {
	if userID == uuid.Nil || contactID == uuid.Nil {
		return nil, store.ErrContactNotFound
	}

	contact, err := g.contacts.GetForUser(ctx, userID, contactID)
	if err != nil {
		return nil, err
	}
	// the owner predicate must also hold for the returned row
	if contact.UserID != userID {
		return nil, store.ErrContactNotFound
	}
	return contact, nil
}

// ResolveAddress returns the address with addressID if it is attached to
// contact, and store.ErrAddressNotFound otherwise. contact must come from
// ResolveContact in the same request.
func (g *OwnershipGuard) ResolveAddress(
	ctx context.Context,
	contact *domain.Contact,
	addressID uuid.UUID,
) (*domain.Address, error) {
	if contact == nil {
		return nil, store.ErrContactNotFound
	}
	if addressID == uuid.Nil {
		return nil, store.ErrAddressNotFound
	}

	address, err := g.addresses.GetForContact(ctx, contact.ID, addressID)
	if err != nil {
		return nil, err
	}
	if address.ContactID != contact.ID {
		return nil, store.ErrAddressNotFound
	}
	return address, nil
}
