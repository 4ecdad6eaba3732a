package shared_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/phrazzld/contacts-api/internal/api/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	FirstName string  `json:"first_name" validate:"required,max=5"`
	Email     *string `json:"email"      validate:"omitempty,email"`
	Nickname  *string `json:"nickname"   validate:"omitempty,min=1"`
}

func TestDecodeJSON(t *testing.T) {
	var req sampleRequest
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"first_name":"Eko","unknown":1}`))
	require.NoError(t, shared.DecodeJSON(r, &req))
	assert.Equal(t, "Eko", req.FirstName)

	for _, body := range []string{"", "{", `{"first_name": 5}`} {
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
		assert.ErrorIs(t, shared.DecodeJSON(r, &req), shared.ErrInvalidBody, body)
	}
}

func TestValidationErrorsUseJSONNames(t *testing.T) {
	bad := "nope"
	blank := ""
	err := shared.ValidateRequest(sampleRequest{Email: &bad, Nickname: &blank})
	require.Error(t, err)

	assert.Equal(t, map[string][]string{
		"first_name": {"first_name is required"},
		"email":      {"email must be a valid email address"},
		"nickname":   {"nickname must be at least 1 characters"},
	}, shared.ValidationErrors(err))
}

func TestValidationErrorsOrGroupUsesFirstRule(t *testing.T) {
	type clearable struct {
		Email *string `json:"email" validate:"omitempty,email|len=0"`
	}
	blank, bad := "", "nope"

	assert.NoError(t, shared.ValidateRequest(clearable{Email: &blank}))

	err := shared.ValidateRequest(clearable{Email: &bad})
	require.Error(t, err)
	assert.Equal(t, map[string][]string{
		"email": {"email must be a valid email address"},
	}, shared.ValidationErrors(err))
}

func TestValidationErrorsMax(t *testing.T) {
	err := shared.ValidateRequest(sampleRequest{FirstName: "toolong"})
	assert.Equal(t, map[string][]string{
		"first_name": {"first_name must not exceed 5 characters"},
	}, shared.ValidationErrors(err))
}

func TestValidateRequestPassesAbsentOptionals(t *testing.T) {
	assert.NoError(t, shared.ValidateRequest(sampleRequest{FirstName: "Eko"}))
	assert.Nil(t, shared.ValidationErrors(assert.AnError))
}
