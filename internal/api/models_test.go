package api_test

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/phrazzld/contacts-api/internal/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginResponseFlattensUser(t *testing.T) {
	id := uuid.New()
	raw, err := json.Marshal(api.LoginResponse{
		UserResponse: api.UserResponse{ID: id, Username: "alice", Name: "Alice"},
		Token:        "tok",
	})
	require.NoError(t, err)

	assert.JSONEq(t, `{"id":"`+id.String()+`","username":"alice","name":"Alice","token":"tok"}`, string(raw))
}

func TestUpdateContactRequestDistinguishesAbsentFromEmpty(t *testing.T) {
	var req api.UpdateContactRequest
	require.NoError(t, json.Unmarshal([]byte(`{"phone":""}`), &req))

	assert.Nil(t, req.FirstName)
	assert.Nil(t, req.Email)
	require.NotNil(t, req.Phone)
	assert.Equal(t, "", *req.Phone)
}
