package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Field limits for addresses.
const (
	MaxStreetLength     = 200
	MaxCityLength       = 100
	MaxProvinceLength   = 100
	MaxCountryLength    = 100
	MaxPostalCodeLength = 10
)

// ErrEmptyAddressID is returned when an address has no identifier.
var ErrEmptyAddressID = errors.New("address ID cannot be empty")

// Address belongs to a contact. It has no direct owner; access is decided
// by the ownership of its contact.
type Address struct {
	ID         uuid.UUID `json:"id"`
	ContactID  uuid.UUID `json:"-"`
	Street     *string   `json:"street"`
	City       *string   `json:"city"`
	Province   *string   `json:"province"`
	Country    string    `json:"country"`
	PostalCode *string   `json:"postal_code"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// AddressFields carries address values for creation and partial updates.
// Nil fields are absent.
type AddressFields struct {
	Street     *string
	City       *string
	Province   *string
	Country    *string
	PostalCode *string
}

// NewAddress creates a validated address attached to contactID.
func NewAddress(contactID uuid.UUID, fields AddressFields) (*Address, error) {
	now := time.Now().UTC()
	address := &Address{
		ID:         uuid.New(),
		ContactID:  contactID,
		Street:     fields.Street,
		City:       fields.City,
		Province:   fields.Province,
		PostalCode: fields.PostalCode,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if fields.Country != nil {
		address.Country = *fields.Country
	}

	if err := address.Validate(); err != nil {
		return nil, err
	}

	return address, nil
}

// Validate checks that the address is fit to be stored.
func (a *Address) Validate() error {
	if a.ID == uuid.Nil {
		return ErrEmptyAddressID
	}
	if a.ContactID == uuid.Nil {
		return ErrEmptyContactID
	}

	return errors.Join(
		optionalMaxLength("street", a.Street, MaxStreetLength),
		optionalMaxLength("city", a.City, MaxCityLength),
		optionalMaxLength("province", a.Province, MaxProvinceLength),
		requireText("country", a.Country, MaxCountryLength),
		optionalMaxLength("postal_code", a.PostalCode, MaxPostalCodeLength),
	)
}

// Apply merges the non-nil fields into the address and revalidates it.
func (a *Address) Apply(fields AddressFields) error {
	if fields.Street != nil {
		a.Street = fields.Street
	}
	if fields.City != nil {
		a.City = fields.City
	}
	if fields.Province != nil {
		a.Province = fields.Province
	}
	if fields.Country != nil {
		a.Country = *fields.Country
	}
	if fields.PostalCode != nil {
		a.PostalCode = fields.PostalCode
	}
	a.UpdatedAt = time.Now().UTC()

	return a.Validate()
}
