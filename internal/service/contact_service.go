package service

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"math"

	"github.com/google/uuid"
	"github.com/phrazzld/contacts-api/internal/domain"
	"github.com/phrazzld/contacts-api/internal/platform/logger"
	"github.com/phrazzld/contacts-api/internal/store"
)

// Pagination defaults for contact search.
const (
	DefaultPage     = 1
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// SearchQuery holds optional contact filters and the requested page.
// Empty filters do not constrain the result.
type SearchQuery struct {
	Name  string
	Email string
	Phone string
	Page  int
	Size  int
}

// SearchResult is one page of contacts plus pagination metadata.
type SearchResult struct {
	Contacts []*domain.Contact
	Page     int
	Size     int
	Total    int
	LastPage int
}

// ContactService manages the contacts of the requesting user.
type ContactService interface {
	Create(ctx context.Context, userID uuid.UUID, fields domain.ContactFields) (*domain.Contact, error)
	Get(ctx context.Context, userID, contactID uuid.UUID) (*domain.Contact, error)
	// Update merges the non-nil fields into the contact.
	Update(ctx context.Context, userID, contactID uuid.UUID, fields domain.ContactFields) (*domain.Contact, error)
	// Delete removes the contact together with its addresses.
	Delete(ctx context.Context, userID, contactID uuid.UUID) error
	Search(ctx context.Context, userID uuid.UUID, q SearchQuery) (*SearchResult, error)
}

type contactServiceImpl struct {
	contacts store.ContactStore
	guard    *OwnershipGuard
	tx       store.Transactor
	logger   *slog.Logger
}

// NewContactService creates a ContactService.
func NewContactService(
	contacts store.ContactStore,
	guard *OwnershipGuard,
	tx store.Transactor,
	logger *slog.Logger,
) ContactService {
	if logger == nil {
		logger = slog.Default()
	}
	return &contactServiceImpl{
		contacts: contacts,
		guard:    guard,
		tx:       tx,
		logger:   logger.With(slog.String("component", "contact_service")),
	}
}

func (s *contactServiceImpl) Create(
	ctx context.Context,
	userID uuid.UUID,
	fields domain.ContactFields,
) (*domain.Contact, error) {
	contact, err := domain.NewContact(userID, fields)
	if err != nil {
		return nil, err
	}

	if err := s.contacts.Create(ctx, contact); err != nil {
		return nil, passThrough("create_contact", "failed to save contact", err)
	}

	return contact, nil
}

func (s *contactServiceImpl) Get(ctx context.Context, userID, contactID uuid.UUID) (*domain.Contact, error) {
	contact, err := s.guard.ResolveContact(ctx, userID, contactID)
	if err != nil {
		return nil, passThrough("get_contact", "failed to load contact", err)
	}
	return contact, nil
}

func (s *contactServiceImpl) Update(
	ctx context.Context,
	userID, contactID uuid.UUID,
	fields domain.ContactFields,
) (*domain.Contact, error) {
	var updated *domain.Contact

	err := s.tx.RunInTx(ctx, func(ctx context.Context, tx *sql.Tx) error {
		contact, err := s.guard.WithTx(tx).ResolveContact(ctx, userID, contactID)
		if err != nil {
			return err
		}
		if err := contact.Apply(fields); err != nil {
			return err
		}
		if err := s.contacts.WithTx(tx).Update(ctx, contact); err != nil {
			return err
		}
		updated = contact
		return nil
	})
	if err != nil {
		return nil, passThrough("update_contact", "failed to update contact", err)
	}

	logger.FromContextOrDefault(ctx, s.logger).Debug("contact updated",
		slog.String("contact_id", contactID.String()))
	return updated, nil
}

func (s *contactServiceImpl) Delete(ctx context.Context, userID, contactID uuid.UUID) error {
	err := s.tx.RunInTx(ctx, func(ctx context.Context, tx *sql.Tx) error {
		contact, err := s.guard.WithTx(tx).ResolveContact(ctx, userID, contactID)
		if err != nil {
			return err
		}
		return s.contacts.WithTx(tx).DeleteForUser(ctx, userID, contact.ID)
	})
	if err != nil {
		return passThrough("delete_contact", "failed to delete contact", err)
	}
	return nil
}

func (s *contactServiceImpl) Search(
	ctx context.Context,
	userID uuid.UUID,
	q SearchQuery,
) (*SearchResult, error) {
	if userID == uuid.Nil {
		return nil, NewServiceError("search_contacts", "missing identity", store.ErrInvalidEntity)
	}

	page, size := normalizePage(q.Page, q.Size)

	contacts, total, err := s.contacts.Search(ctx, store.ContactFilter{
		UserID: userID,
		Name:   q.Name,
		Email:  q.Email,
		Phone:  q.Phone,
		Limit:  size,
		Offset: pageOffset(page, size),
	})
	if err != nil {
		return nil, NewServiceError("search_contacts", "failed to search contacts", err)
	}

	return &SearchResult{
		Contacts: contacts,
		Page:     page,
		Size:     size,
		Total:    total,
		LastPage: lastPage(total, size),
	}, nil
}

func normalizePage(page, size int) (int, int) {
	if page < 1 {
		page = DefaultPage
	}
	if size < 1 {
		size = DefaultPageSize
	}
	if size > MaxPageSize {
		size = MaxPageSize
	}
	return page, size
}

// pageOffset returns the row offset of page, saturating at math.MaxInt so
// pages past any possible result stay empty instead of wrapping negative.
func pageOffset(page, size int) int {
	if page-1 > math.MaxInt/size {
		return math.MaxInt
	}
	return (page - 1) * size
}

func lastPage(total, size int) int {
	if total <= 0 {
		return 1
	}
	return (total + size - 1) / size
}

// passThrough returns not-found and validation errors unchanged so callers
// can map them, and wraps anything else in a ServiceError.
func passThrough(operation, message string, err error) error {
	if store.IsNotFoundError(err) || errors.Is(err, domain.ErrValidation) {
		return err
	}
	return NewServiceError(operation, message, err)
}
