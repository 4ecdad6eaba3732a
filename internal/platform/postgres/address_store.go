package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/phrazzld/contacts-api/internal/domain"
	"github.com/phrazzld/contacts-api/internal/platform/logger"
	"github.com/phrazzld/contacts-api/internal/redact"
	"github.com/phrazzld/contacts-api/internal/store"
)

const addressColumns = `id, contact_id, street, city, province, country, postal_code, created_at, updated_at`

// PostgresAddressStore implements store.AddressStore.
type PostgresAddressStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresAddressStore creates an address store on db.
func NewPostgresAddressStore(db store.DBTX, logger *slog.Logger) *PostgresAddressStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresAddressStore{
		db:     db,
		logger: logger.With(slog.String("component", "address_store")),
	}
}

var _ store.AddressStore = (*PostgresAddressStore)(nil)

// WithTx implements store.AddressStore.
func (s *PostgresAddressStore) WithTx(tx *sql.Tx) store.AddressStore {
	return &PostgresAddressStore{db: tx, logger: s.logger}
}

func scanAddress(row rowScanner) (*domain.Address, error) {
	var a domain.Address
	err := row.Scan(
		&a.ID,
		&a.ContactID,
		&a.Street,
		&a.City,
		&a.Province,
		&a.Country,
		&a.PostalCode,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// Create implements store.AddressStore.
func (s *PostgresAddressStore) Create(ctx context.Context, address *domain.Address) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := address.Validate(); err != nil {
		log.Warn("address validation failed during create", slog.String("error", redact.Error(err)))
		return err
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO addresses (`+addressColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		address.ID,
		address.ContactID,
		address.Street,
		address.City,
		address.Province,
		address.Country,
		address.PostalCode,
		address.CreatedAt,
		address.UpdatedAt,
	)
	if err != nil {
		if IsForeignKeyViolation(err) {
			log.Warn("address contact does not exist",
				slog.String("contact_id", address.ContactID.String()))
			return fmt.Errorf("%w: contact with ID %s not found", store.ErrInvalidEntity, address.ContactID)
		}
		log.Error("failed to create address",
			slog.String("error", redact.Error(err)),
			slog.String("address_id", address.ID.String()))
		return store.NewStoreError("address", "create", "insert failed", MapError(err))
	}

	log.Info("address created",
		slog.String("address_id", address.ID.String()),
		slog.String("contact_id", address.ContactID.String()))
	return nil
}

// GetForContact implements store.AddressStore.
func (s *PostgresAddressStore) GetForContact(
	ctx context.Context,
	contactID, id uuid.UUID,
) (*domain.Address, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	address, err := scanAddress(s.db.QueryRowContext(ctx, `
		SELECT `+addressColumns+`
		FROM addresses
		WHERE contact_id = $1 AND id = $2`,
		contactID, id,
	))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("address not found for contact",
				slog.String("address_id", id.String()),
				slog.String("contact_id", contactID.String()))
			return nil, store.ErrAddressNotFound
		}
		log.Error("failed to get address",
			slog.String("error", redact.Error(err)),
			slog.String("address_id", id.String()))
		return nil, store.NewStoreError("address", "get", "query failed", MapError(err))
	}

	return address, nil
}

// ListForContact implements store.AddressStore.
func (s *PostgresAddressStore) ListForContact(
	ctx context.Context,
	contactID uuid.UUID,
) ([]*domain.Address, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx, `
		SELECT `+addressColumns+`
		FROM addresses
		WHERE contact_id = $1
		ORDER BY created_at, id`,
		contactID,
	)
	if err != nil {
		log.Error("failed to list addresses", slog.String("error", redact.Error(err)))
		return nil, store.NewStoreError("address", "list", "query failed", MapError(err))
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			log.Error("failed to close rows", slog.String("error", cerr.Error()))
		}
	}()

	addresses := []*domain.Address{}
	for rows.Next() {
		a, err := scanAddress(rows)
		if err != nil {
			return nil, store.NewStoreError("address", "list", "scan failed", err)
		}
		addresses = append(addresses, a)
	}
	if err := rows.Err(); err != nil {
		return nil, store.NewStoreError("address", "list", "iteration failed", err)
	}

	return addresses, nil
}

// Update implements store.AddressStore.
func (s *PostgresAddressStore) Update(ctx context.Context, address *domain.Address) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := address.Validate(); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, `
		UPDATE addresses
		SET street = $1, city = $2, province = $3, country = $4, postal_code = $5, updated_at = $6
		WHERE id = $7 AND contact_id = $8`,
		address.Street,
		address.City,
		address.Province,
		address.Country,
		address.PostalCode,
		address.UpdatedAt,
		address.ID,
		address.ContactID,
	)
	if err != nil {
		log.Error("failed to update address",
			slog.String("error", redact.Error(err)),
			slog.String("address_id", address.ID.String()))
		return store.NewStoreError("address", "update", "update failed", MapError(err))
	}

	return CheckRowsAffected(result, store.ErrAddressNotFound)
}

// DeleteForContact implements store.AddressStore.
func (s *PostgresAddressStore) DeleteForContact(ctx context.Context, contactID, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx,
		`DELETE FROM addresses WHERE id = $1 AND contact_id = $2`, id, contactID)
	if err != nil {
		log.Error("failed to delete address",
			slog.String("error", redact.Error(err)),
			slog.String("address_id", id.String()))
		return store.NewStoreError("address", "delete", "delete failed", MapError(err))
	}

	if err := CheckRowsAffected(result, store.ErrAddressNotFound); err != nil {
		return err
	}

	log.Info("address deleted", slog.String("address_id", id.String()))
	return nil
}
