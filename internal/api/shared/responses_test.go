package shared_test

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/phrazzld/contacts-api/internal/api/shared"
	"github.com/phrazzld/contacts-api/internal/platform/logger"
	"github.com/stretchr/testify/assert"
)

func TestRespondWithData(t *testing.T) {
	rec := httptest.NewRecorder()
	shared.RespondWithData(rec, httptest.NewRequest(http.MethodGet, "/", nil), http.StatusCreated, map[string]int{"n": 1})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"data":{"n":1}}`, rec.Body.String())
}

func TestRespondWithError(t *testing.T) {
	rec := httptest.NewRecorder()
	shared.RespondWithError(rec, httptest.NewRequest(http.MethodGet, "/", nil), http.StatusNotFound, "not found")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"errors":{"message":["not found"]}}`, rec.Body.String())
}

func TestRespondWithErrorAndLog(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		opts      []shared.ResponseOption
		wantLevel string
	}{
		{"server error", http.StatusInternalServerError, nil, `"level":"ERROR"`},
		{"client error", http.StatusBadRequest, nil, `"level":"DEBUG"`},
		{"elevated client error", http.StatusUnauthorized, []shared.ResponseOption{shared.WithElevatedLogLevel()}, `"level":"WARN"`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			req := httptest.NewRequest(http.MethodGet, "/api/contacts", nil)
			req = req.WithContext(logger.WithLogger(req.Context(), logger.New(&buf, "debug")))
			rec := httptest.NewRecorder()

			cause := errors.New("connect postgres://app:hunter2@db:5432/contacts failed")
			shared.RespondWithErrorAndLog(rec, req, tc.status, shared.MessageErrors("oops"), cause, tc.opts...)

			assert.Equal(t, tc.status, rec.Code)
			assert.JSONEq(t, `{"errors":{"message":["oops"]}}`, rec.Body.String())
			assert.NotContains(t, rec.Body.String(), "postgres")

			logged := buf.String()
			assert.Contains(t, logged, tc.wantLevel)
			assert.Contains(t, logged, `"status_code":`)
			assert.NotContains(t, logged, "hunter2")
		})
	}
}
