package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Field limits for contacts.
const (
	MaxContactNameLength = 100
	MaxEmailLength       = 200
	MaxPhoneLength       = 20
)

// ErrEmptyContactID is returned when a contact has no identifier.
var ErrEmptyContactID = errors.New("contact ID cannot be empty")

// Contact is a person in a user's address book. It is visible only to the
// user identified by UserID.
type Contact struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"-"`
	FirstName string    `json:"first_name"`
	LastName  *string   `json:"last_name"`
	Email     *string   `json:"email"`
	Phone     *string   `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ContactFields carries contact values for creation and partial updates.
// Nil fields are absent.
type ContactFields struct {
	FirstName *string
	LastName  *string
	Email     *string
	Phone     *string
}

// NewContact creates a validated contact owned by userID.
func NewContact(userID uuid.UUID, fields ContactFields) (*Contact, error) {
	now := time.Now().UTC()
	contact := &Contact{
		ID:        uuid.New(),
		UserID:    userID,
		LastName:  fields.LastName,
		Email:     fields.Email,
		Phone:     fields.Phone,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if fields.FirstName != nil {
		contact.FirstName = *fields.FirstName
	}

	if err := contact.Validate(); err != nil {
		return nil, err
	}

	return contact, nil
}

// Validate checks that the contact is fit to be stored.
func (c *Contact) Validate() error {
	if c.ID == uuid.Nil {
		return ErrEmptyContactID
	}
	if c.UserID == uuid.Nil {
		return ErrEmptyUserID
	}

	return errors.Join(
		requireText("first_name", c.FirstName, MaxContactNameLength),
		optionalMaxLength("last_name", c.LastName, MaxContactNameLength),
		optionalMaxLength("email", c.Email, MaxEmailLength),
		optionalMaxLength("phone", c.Phone, MaxPhoneLength),
	)
}

// Apply merges the non-nil fields of u into the contact and revalidates it.
func (c *Contact) Apply(u ContactFields) error {
	if u.FirstName != nil {
		c.FirstName = *u.FirstName
	}
	if u.LastName != nil {
		c.LastName = u.LastName
	}
	if u.Email != nil {
		c.Email = u.Email
	}
	if u.Phone != nil {
		c.Phone = u.Phone
	}
	c.UpdatedAt = time.Now().UTC()

	return c.Validate()
}
