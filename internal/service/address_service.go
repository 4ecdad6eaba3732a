package service

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/google/uuid"
	"github.com/phrazzld/contacts-api/internal/domain"
	"github.com/phrazzld/contacts-api/internal/platform/logger"
	"github.com/phrazzld/contacts-api/internal/store"
)

// AddressService manages addresses of contacts owned by the requesting
// user. Every operation first resolves the parent contact for that user.
type AddressService interface {
	Create(ctx context.Context, userID, contactID uuid.UUID, fields domain.AddressFields) (*domain.Address, error)
	Get(ctx context.Context, userID, contactID, addressID uuid.UUID) (*domain.Address, error)
	List(ctx context.Context, userID, contactID uuid.UUID) ([]*domain.Address, error)
	// Update merges the non-nil fields into the address.
	Update(
		ctx context.Context,
		userID, contactID, addressID uuid.UUID,
		fields domain.AddressFields,
	) (*domain.Address, error)
	Delete(ctx context.Context, userID, contactID, addressID uuid.UUID) error
}

type addressServiceImpl struct {
	addresses store.AddressStore
	guard     *OwnershipGuard
	tx        store.Transactor
	logger    *slog.Logger
}

// NewAddressService creates an AddressService.
func NewAddressService(
	addresses store.AddressStore,
	guard *OwnershipGuard,
	tx store.Transactor,
	logger *slog.Logger,
) AddressService {
	if logger == nil {
		logger = slog.Default()
	}
	return &addressServiceImpl{
		addresses: addresses,
		guard:     guard,
		tx:        tx,
		logger:    logger.With(slog.String("component", "address_service")),
	}
}

func (s *addressServiceImpl) Create(
	ctx context.Context,
	userID, contactID uuid.UUID,
	fields domain.AddressFields,
) (*domain.Address, error) {
	var created *domain.Address

	err := s.tx.RunInTx(ctx, func(ctx context.Context, tx *sql.Tx) error {
		contact, err := s.guard.WithTx(tx).ResolveContact(ctx, userID, contactID)
		if err != nil {
			return err
		}
		address, err := domain.NewAddress(contact.ID, fields)
		if err != nil {
			return err
		}
		if err := s.addresses.WithTx(tx).Create(ctx, address); err != nil {
			return err
		}
		created = address
		return nil
	})
	if err != nil {
		return nil, passThrough("create_address", "failed to create address", err)
	}

	return created, nil
}

func (s *addressServiceImpl) Get(
	ctx context.Context,
	userID, contactID, addressID uuid.UUID,
) (*domain.Address, error) {
	contact, err := s.guard.ResolveContact(ctx, userID, contactID)
	if err != nil {
		return nil, passThrough("get_address", "failed to load contact", err)
	}

	address, err := s.guard.ResolveAddress(ctx, contact, addressID)
	if err != nil {
		return nil, passThrough("get_address", "failed to load address", err)
	}

	return address, nil
}

func (s *addressServiceImpl) List(
	ctx context.Context,
	userID, contactID uuid.UUID,
) ([]*domain.Address, error) {
	contact, err := s.guard.ResolveContact(ctx, userID, contactID)
	if err != nil {
		return nil, passThrough("list_addresses", "failed to load contact", err)
	}

	addresses, err := s.addresses.ListForContact(ctx, contact.ID)
	if err != nil {
		return nil, NewServiceError("list_addresses", "failed to list addresses", err)
	}

	return addresses, nil
}

func (s *addressServiceImpl) Update(
	ctx context.Context,
	userID, contactID, addressID uuid.UUID,
	fields domain.AddressFields,
) (*domain.Address, error) {
	var updated *domain.Address

	err := s.tx.RunInTx(ctx, func(ctx context.Context, tx *sql.Tx) error {
		guard := s.guard.WithTx(tx)
		contact, err := guard.ResolveContact(ctx, userID, contactID)
		if err != nil {
			return err
		}
		address, err := guard.ResolveAddress(ctx, contact, addressID)
		if err != nil {
			return err
		}
		if err := address.Apply(fields); err != nil {
			return err
		}
		if err := s.addresses.WithTx(tx).Update(ctx, address); err != nil {
			return err
		}
		updated = address
		return nil
	})
	if err != nil {
		return nil, passThrough("update_address", "failed to update address", err)
	}

	return updated, nil
}

func (s *addressServiceImpl) Delete(ctx context.Context, userID, contactID, addressID uuid.UUID) error {
	err := s.tx.RunInTx(ctx, func(ctx context.Context, tx *sql.Tx) error {
		guard := s.guard.WithTx(tx)
		contact, err := guard.ResolveContact(ctx, userID, contactID)
		if err != nil {
			return err
		}
		address, err := guard.ResolveAddress(ctx, contact, addressID)
		if err != nil {
			return err
		}
		return s.addresses.WithTx(tx).DeleteForContact(ctx, contact.ID, address.ID)
	})
	if err != nil {
		return passThrough("delete_address", "failed to delete address", err)
	}

	logger.FromContextOrDefault(ctx, s.logger).Debug("address deleted",
		slog.String("address_id", addressID.String()))
	return nil
}
