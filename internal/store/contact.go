package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/phrazzld/contacts-api/internal/domain"
)

// ContactFilter scopes a contact search. UserID is mandatory; the other
// filters are optional substring matches and are ignored when empty.
type ContactFilter struct {
	UserID uuid.UUID
	// Name matches first_name or last_name.
	Name  string
	Email string
	Phone string
	// Limit and Offset select the page.
	Limit  int
	Offset int
}

// ContactStore persists contacts. Every read and write is scoped by owner.
type ContactStore interface {
	// Create inserts a contact for contact.UserID.
	Create(ctx context.Context, contact *domain.Contact) error

	// GetForUser returns the contact with id only if it belongs to userID,
	// and ErrContactNotFound otherwise.
	GetForUser(ctx context.Context, userID, id uuid.UUID) (*domain.Contact, error)

	// Update writes contact's mutable fields where both ID and UserID match.
	// It returns ErrContactNotFound when no such row exists.
	Update(ctx context.Context, contact *domain.Contact) error

	// DeleteForUser removes the contact and, through the foreign key, its
	// addresses. It returns ErrContactNotFound when no owned row exists.
	DeleteForUser(ctx context.Context, userID, id uuid.UUID) error

	// Search returns one page of the user's contacts that match filter and
	// the total number of matches across all pages.
	Search(ctx context.Context, filter ContactFilter) ([]*domain.Contact, int, error)

	// WithTx returns a ContactStore that runs its queries on tx.
	WithTx(tx *sql.Tx) ContactStore
}
