package api

import (
	"errors"
	"net/http"

	"github.com/phrazzld/contacts-api/internal/api/shared"
	"github.com/phrazzld/contacts-api/internal/domain"
	"github.com/phrazzld/contacts-api/internal/service"
	"github.com/phrazzld/contacts-api/internal/service/auth"
	"github.com/phrazzld/contacts-api/internal/store"
)

// Client-facing messages.
const (
	msgUnauthorized   = "unauthorized"
	msgNotFound       = "not found"
	msgInvalidBody    = "invalid request body"
	msgInvalidRequest = "invalid request"
	msgInternal       = "internal server error"
)

// MapError translates an error into a status code and envelope contents.
// Unknown errors become a 500 with a generic message; their text is never
// returned to the client.
func MapError(err error) (int, map[string][]string) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		fields := domain.FieldErrors(err)
		if len(fields) == 0 {
			fields = shared.MessageErrors(msgInvalidRequest)
		}
		return http.StatusBadRequest, fields

	case errors.Is(err, service.ErrUsernameTaken):
		return http.StatusBadRequest, map[string][]string{
			"username": {service.ErrUsernameTaken.Error()},
		}

	case errors.Is(err, store.ErrInvalidEntity):
		return http.StatusBadRequest, shared.MessageErrors(msgInvalidRequest)

	case errors.Is(err, service.ErrInvalidCredentials):
		return http.StatusUnauthorized, shared.MessageErrors(service.ErrInvalidCredentials.Error())

	case errors.Is(err, auth.ErrUnauthenticated):
		return http.StatusUnauthorized, shared.MessageErrors(msgUnauthorized)

	case store.IsNotFoundError(err):
		return http.StatusNotFound, shared.MessageErrors(msgNotFound)

	default:
		return http.StatusInternalServerError, shared.MessageErrors(msgInternal)
	}
}

// respondWithMappedError maps err and writes it, logging the detail.
func respondWithMappedError(w http.ResponseWriter, r *http.Request, err error) {
	status, fields := MapError(err)
	var opts []shared.ResponseOption
	if status == http.StatusUnauthorized {
		opts = append(opts, shared.WithElevatedLogLevel())
	}
	shared.RespondWithErrorAndLog(w, r, status, fields, err, opts...)
}
