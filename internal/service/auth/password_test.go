package auth_test

import (
	"testing"

	"github.com/phrazzld/contacts-api/internal/service/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasherRoundTrip(t *testing.T) {
	h := auth.NewBcryptHasher(bcrypt.MinCost)

	hashed, err := h.Hash("rahasia")
	require.NoError(t, err)
	assert.NotEqual(t, "rahasia", hashed)

	assert.NoError(t, h.Compare(hashed, "rahasia"))
	assert.Error(t, h.Compare(hashed, "Rahasia"))
	assert.Error(t, h.Compare("not-a-hash", "rahasia"))
}

func TestBcryptHasherSaltsEachHash(t *testing.T) {
	h := auth.NewBcryptHasher(bcrypt.MinCost)

	first, err := h.Hash("same")
	require.NoError(t, err)
	second, err := h.Hash("same")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestNewBcryptHasherClampsCost(t *testing.T) {
	hashed, err := auth.NewBcryptHasher(1).Hash("pw")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hashed))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)
}
