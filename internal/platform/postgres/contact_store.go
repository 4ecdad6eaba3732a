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

const contactColumns = `id, user_id, first_name, last_name, email, phone, created_at, updated_at`

// PostgresContactStore implements store.ContactStore.
type PostgresContactStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresContactStore creates a contact store on db.
func NewPostgresContactStore(db store.DBTX, logger *slog.Logger) *PostgresContactStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresContactStore{
		db:     db,
		logger: logger.With(slog.String("component", "contact_store")),
	}
}

var _ store.ContactStore = (*PostgresContactStore)(nil)

// WithTx implements store.ContactStore.
func (s *PostgresContactStore) WithTx(tx *sql.Tx) store.ContactStore {
	return &PostgresContactStore{db: tx, logger: s.logger}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanContact(row rowScanner) (*domain.Contact, error) {
	var c domain.Contact
	err := row.Scan(
		&c.ID,
		&c.UserID,
		&c.FirstName,
		&c.LastName,
		&c.Email,
		&c.Phone,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Create implements store.ContactStore.
func (s *PostgresContactStore) Create(ctx context.Context, contact *domain.Contact) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := contact.Validate(); err != nil {
		log.Warn("contact validation failed during create", slog.String("error", redact.Error(err)))
		return err
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO contacts (`+contactColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		contact.ID,
		contact.UserID,
		contact.FirstName,
		contact.LastName,
		contact.Email,
		contact.Phone,
		contact.CreatedAt,
		contact.UpdatedAt,
	)
	if err != nil {
		if IsForeignKeyViolation(err) {
			log.Warn("contact owner does not exist", slog.String("user_id", contact.UserID.String()))
			return fmt.Errorf("%w: user with ID %s not found", store.ErrInvalidEntity, contact.UserID)
		}
		log.Error("failed to create contact",
			slog.String("error", redact.Error(err)),
			slog.String("contact_id", contact.ID.String()))
		return store.NewStoreError("contact", "create", "insert failed", MapError(err))
	}

	log.Info("contact created",
		slog.String("contact_id", contact.ID.String()),
		slog.String("user_id", contact.UserID.String()))
	return nil
}

// GetForUser implements store.ContactStore.
func (s *PostgresContactStore) GetForUser(
	ctx context.Context,
	userID, id uuid.UUID,
) (*domain.Contact, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	contact, err := scanContact(s.db.QueryRowContext(ctx, `
		SELECT `+contactColumns+`
		FROM contacts
		WHERE id = $1 AND user_id = $2`,
		id, userID,
	))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("contact not found for user",
				slog.String("contact_id", id.String()),
				slog.String("user_id", userID.String()))
			return nil, store.ErrContactNotFound
		}
		log.Error("failed to get contact",
			slog.String("error", redact.Error(err)),
			slog.String("contact_id", id.String()))
		return nil, store.NewStoreError("contact", "get", "query failed", MapError(err))
	}

	return contact, nil
}

// Update implements store.ContactStore.
func (s *PostgresContactStore) Update(ctx context.Context, contact *domain.Contact) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := contact.Validate(); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, `
		UPDATE contacts
		SET first_name = $1, last_name = $2, email = $3, phone = $4, updated_at = $5
		WHERE id = $6 AND user_id = $7`,
		contact.FirstName,
		contact.LastName,
		contact.Email,
		contact.Phone,
		contact.UpdatedAt,
		contact.ID,
		contact.UserID,
	)
	if err != nil {
		log.Error("failed to update contact",
			slog.String("error", redact.Error(err)),
			slog.String("contact_id", contact.ID.String()))
		return store.NewStoreError("contact", "update", "update failed", MapError(err))
	}

	return CheckRowsAffected(result, store.ErrContactNotFound)
}

// DeleteForUser implements store.ContactStore.
func (s *PostgresContactStore) DeleteForUser(ctx context.Context, userID, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx,
		`DELETE FROM contacts WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		log.Error("failed to delete contact",
			slog.String("error", redact.Error(err)),
			slog.String("contact_id", id.String()))
		return store.NewStoreError("contact", "delete", "delete failed", MapError(err))
	}

	if err := CheckRowsAffected(result, store.ErrContactNotFound); err != nil {
		return err
	}

	log.Info("contact deleted", slog.String("contact_id", id.String()))
	return nil
}

// Search implements store.ContactStore.
func (s *PostgresContactStore) Search(
	ctx context.Context,
	filter store.ContactFilter,
) ([]*domain.Contact, int, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	where, args := contactSearchWhere(filter)

	var total int
	if err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM contacts WHERE `+where, args...,
	).Scan(&total); err != nil {
		log.Error("failed to count contacts", slog.String("error", redact.Error(err)))
		return nil, 0, store.NewStoreError("contact", "search", "count failed", MapError(err))
	}

	contacts := make([]*domain.Contact, 0, filter.Limit)
	if total == 0 || filter.Offset >= total {
		return contacts, total, nil
	}

	pageArgs := append(args, filter.Limit, filter.Offset)
	query := fmt.Sprintf(`
		SELECT %s
		FROM contacts
		WHERE %s
		ORDER BY created_at, id
		LIMIT $%d OFFSET $%d`,
		contactColumns, where, len(args)+1, len(args)+2)

	rows, err := s.db.QueryContext(ctx, query, pageArgs...)
	if err != nil {
		log.Error("failed to search contacts", slog.String("error", redact.Error(err)))
		return nil, 0, store.NewStoreError("contact", "search", "query failed", MapError(err))
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			log.Error("failed to close rows", slog.String("error", cerr.Error()))
		}
	}()

	for rows.Next() {
		c, err := scanContact(rows)
		if err != nil {
			return nil, 0, store.NewStoreError("contact", "search", "scan failed", err)
		}
		contacts = append(contacts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, store.NewStoreError("contact", "search", "iteration failed", err)
	}

	log.Debug("contacts searched",
		slog.String("user_id", filter.UserID.String()),
		slog.Int("total", total),
		slog.Int("returned", len(contacts)))
	return contacts, total, nil
}
