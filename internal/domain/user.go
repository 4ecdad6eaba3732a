package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Field limits for users.
const (
	MaxUsernameLength = 100
	MaxNameLength     = 100
	MaxPasswordLength = 100
	// MaxPasswordBytes is the longest plaintext bcrypt accepts.
	MaxPasswordBytes = 72
)

// ErrEmptyUserID is returned when a user has no identifier.
var ErrEmptyUserID = errors.New("user ID cannot be empty")

// User is an account holder. A user owns contacts and holds at most one
// active session, represented by Token.
type User struct {
	ID             uuid.UUID `json:"id"`
	Username       string    `json:"username"`
	HashedPassword string    `json:"-"`
	Name           string    `json:"name"`
	// Token is the active session token, or nil when logged out.
	Token     *string   `json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewUser creates a validated user with a fresh ID. The password must
// already be hashed.
func NewUser(username, hashedPassword, name string) (*User, error) {
	now := time.Now().UTC()
	user := &User{
		ID:             uuid.New(),
		Username:       username,
		HashedPassword: hashedPassword,
		Name:           name,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks that the user is fit to be stored.
func (u *User) Validate() error {
	if u.ID == uuid.Nil {
		return ErrEmptyUserID
	}

	var errs []error
	if err := requireText("username", u.Username, MaxUsernameLength); err != nil {
		errs = append(errs, err)
	}
	if err := requireText("name", u.Name, MaxNameLength); err != nil {
		errs = append(errs, err)
	}
	if u.HashedPassword == "" {
		errs = append(errs, NewFieldError("password", "password is required"))
	}

	return errors.Join(errs...)
}

// ValidatePassword checks a plaintext password before it is hashed.
func ValidatePassword(password string) error {
	if password == "" {
		return NewFieldError("password", "password is required")
	}
	if len(password) > MaxPasswordBytes {
		return NewFieldError("password", fmt.Sprintf("password must not exceed %d bytes", MaxPasswordBytes))
	}
	return maxLength("password", password, MaxPasswordLength)
}

// HasSession reports whether the user currently holds a session token.
func (u *User) HasSession() bool {
	return u.Token != nil && *u.Token != ""
}
