package api_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/phrazzld/contacts-api/internal/api"
	"github.com/phrazzld/contacts-api/internal/domain"
	"github.com/phrazzld/contacts-api/internal/service"
	"github.com/phrazzld/contacts-api/internal/service/auth"
	"github.com/phrazzld/contacts-api/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestMapError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantFields map[string][]string
	}{
		{
			name:       "field validation",
			err:        errors.Join(domain.NewFieldError("first_name", "first_name is required")),
			wantStatus: http.StatusBadRequest,
			wantFields: map[string][]string{"first_name": {"first_name is required"}},
		},
		{
			name:       "bare validation",
			err:        domain.ErrValidation,
			wantStatus: http.StatusBadRequest,
			wantFields: map[string][]string{"message": {"invalid request"}},
		},
		{
			name:       "username taken",
			err:        service.ErrUsernameTaken,
			wantStatus: http.StatusBadRequest,
			wantFields: map[string][]string{"username": {"username already registered"}},
		},
		{
			name:       "bad credentials",
			err:        service.ErrInvalidCredentials,
			wantStatus: http.StatusUnauthorized,
			wantFields: map[string][]string{"message": {"username or password wrong"}},
		},
		{
			name:       "unauthenticated",
			err:        fmt.Errorf("%w: %w", auth.ErrUnauthenticated, auth.ErrExpiredToken),
			wantStatus: http.StatusUnauthorized,
			wantFields: map[string][]string{"message": {"unauthorized"}},
		},
		{
			name:       "contact not found",
			err:        store.ErrContactNotFound,
			wantStatus: http.StatusNotFound,
			wantFields: map[string][]string{"message": {"not found"}},
		},
		{
			name:       "wrapped address not found",
			err:        fmt.Errorf("lookup: %w", store.ErrAddressNotFound),
			wantStatus: http.StatusNotFound,
			wantFields: map[string][]string{"message": {"not found"}},
		},
		{
			name:       "invalid entity",
			err:        store.ErrInvalidEntity,
			wantStatus: http.StatusBadRequest,
			wantFields: map[string][]string{"message": {"invalid request"}},
		},
		{
			name:       "unexpected",
			err:        service.NewServiceError("search_contacts", "failed", errors.New("pq: password=hunter2")),
			wantStatus: http.StatusInternalServerError,
			wantFields: map[string][]string{"message": {"internal server error"}},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			status, fields := api.MapError(tc.err)
			assert.Equal(t, tc.wantStatus, status)
			assert.Equal(t, tc.wantFields, fields)
		})
	}
}
