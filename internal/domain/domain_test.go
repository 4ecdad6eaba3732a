package domain

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(s string) *string { return &s }

func TestNewUser(t *testing.T) {
	user, err := NewUser("alice", "$2a$10$hash", "Alice")
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.False(t, user.HasSession())
	assert.False(t, user.CreatedAt.IsZero())

	_, err = NewUser("", "", strings.Repeat("n", MaxNameLength+1))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrValidation))

	fields := FieldErrors(err)
	assert.Equal(t, []string{"username is required"}, fields["username"])
	assert.Equal(t, []string{"password is required"}, fields["password"])
	assert.Equal(t, []string{"name must not exceed 100 characters"}, fields["name"])
}

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantMsg  string
	}{
		{name: "ok", password: "rahasia"},
		{name: "exactly 72 bytes", password: strings.Repeat("a", MaxPasswordBytes)},
		{name: "empty", password: "", wantMsg: "password is required"},
		{name: "73 ascii bytes", password: strings.Repeat("a", 73), wantMsg: "password must not exceed 72 bytes"},
		{name: "multibyte under rune limit", password: strings.Repeat("é", 40), wantMsg: "password must not exceed 72 bytes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePassword(tt.password)
			if tt.wantMsg == "" {
				assert.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, ErrValidation)
			assert.Equal(t, []string{tt.wantMsg}, FieldErrors(err)["password"])
		})
	}
}

func TestUserHasSession(t *testing.T) {
	u := &User{}
	assert.False(t, u.HasSession())
	u.Token = ptr("")
	assert.False(t, u.HasSession())
	u.Token = ptr("abc")
	assert.True(t, u.HasSession())
}

func TestNewContactRequiresFirstName(t *testing.T) {
	owner := uuid.New()

	_, err := NewContact(owner, ContactFields{Email: ptr("a@b.co")})
	require.Error(t, err)
	assert.Contains(t, FieldErrors(err), "first_name")

	_, err = NewContact(uuid.Nil, ContactFields{FirstName: ptr("Ann")})
	assert.ErrorIs(t, err, ErrEmptyUserID)

	c, err := NewContact(owner, ContactFields{FirstName: ptr("Ann")})
	require.NoError(t, err)
	assert.Equal(t, owner, c.UserID)
	assert.Nil(t, c.LastName)
}

func TestContactApplyIsPartial(t *testing.T) {
	c, err := NewContact(uuid.New(), ContactFields{
		FirstName: ptr("Ann"),
		LastName:  ptr("Lee"),
		Phone:     ptr("0800"),
	})
	require.NoError(t, err)
	before := c.UpdatedAt

	require.NoError(t, c.Apply(ContactFields{Email: ptr("x@y.com")}))

	assert.Equal(t, "Ann", c.FirstName)
	assert.Equal(t, "Lee", *c.LastName)
	assert.Equal(t, "0800", *c.Phone)
	assert.Equal(t, "x@y.com", *c.Email)
	assert.False(t, c.UpdatedAt.Before(before))
}

func TestContactApplyRejectsBlankFirstName(t *testing.T) {
	c, err := NewContact(uuid.New(), ContactFields{FirstName: ptr("Ann")})
	require.NoError(t, err)

	err = c.Apply(ContactFields{FirstName: ptr("")})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestNewAddress(t *testing.T) {
	contactID := uuid.New()

	_, err := NewAddress(contactID, AddressFields{City: ptr("Jakarta")})
	require.Error(t, err)
	assert.Equal(t, []string{"country is required"}, FieldErrors(err)["country"])

	_, err = NewAddress(contactID, AddressFields{
		Country:    ptr("Indonesia"),
		PostalCode: ptr("12345678901"),
	})
	require.Error(t, err)
	assert.Contains(t, FieldErrors(err), "postal_code")

	a, err := NewAddress(contactID, AddressFields{Country: ptr("Indonesia"), City: ptr("Jakarta")})
	require.NoError(t, err)
	assert.Equal(t, contactID, a.ContactID)
	assert.Equal(t, "Indonesia", a.Country)
}

func TestAddressApplyIsPartial(t *testing.T) {
	a, err := NewAddress(uuid.New(), AddressFields{
		Street:  ptr("Jl. Merdeka 1"),
		Country: ptr("Indonesia"),
	})
	require.NoError(t, err)

	require.NoError(t, a.Apply(AddressFields{PostalCode: ptr("10110")}))

	assert.Equal(t, "Jl. Merdeka 1", *a.Street)
	assert.Equal(t, "Indonesia", a.Country)
	assert.Equal(t, "10110", *a.PostalCode)
}

func TestFieldErrorsIgnoresPlainErrors(t *testing.T) {
	assert.Empty(t, FieldErrors(errors.New("boom")))
	assert.Empty(t, FieldErrors(nil))
}
