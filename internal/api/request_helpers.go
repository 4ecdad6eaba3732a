package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/phrazzld/contacts-api/internal/api/middleware"
	"github.com/phrazzld/contacts-api/internal/api/shared"
	"github.com/phrazzld/contacts-api/internal/domain"
	"github.com/phrazzld/contacts-api/internal/service"
	"github.com/phrazzld/contacts-api/internal/store"
)

// Path parameter names.
const (
	contactIDParam = "contactId"
	addressIDParam = "addressId"
)

var errMissingUser = errors.New("authenticated user missing from request context")

// currentUser returns the user placed in the context by the auth
// middleware, writing a 401 if there is none.
func currentUser(w http.ResponseWriter, r *http.Request) (*domain.User, bool) {
	user, ok := middleware.GetUser(r)
	if !ok {
		shared.RespondWithErrorAndLog(w, r, http.StatusUnauthorized,
			shared.MessageErrors(msgUnauthorized), errMissingUser)
		return nil, false
	}
	return user, true
}

// pathUUID parses a UUID path parameter. A missing or malformed id is
// answered like an unknown one, with 404.
func pathUUID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	raw := chi.URLParam(r, name)
	id, err := uuid.Parse(raw)
	if err != nil || id == uuid.Nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusNotFound,
			shared.MessageErrors(msgNotFound),
			fmt.Errorf("%w: malformed %s", store.ErrNotFound, name))
		return uuid.Nil, false
	}
	return id, true
}

// decodeAndValidate reads the JSON body into v and checks its validate
// tags, writing a 400 on failure.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := shared.DecodeJSON(r, v); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest,
			shared.MessageErrors(msgInvalidBody), err)
		return false
	}
	if err := shared.ValidateRequest(v); err != nil {
		fields := shared.ValidationErrors(err)
		if fields == nil {
			fields = shared.MessageErrors(msgInvalidRequest)
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, fields, err)
		return false
	}
	return true
}

// parseSearchQuery reads the contact search filters and paging parameters.
// It returns envelope errors for unparseable or out-of-range page and size.
func parseSearchQuery(r *http.Request) (service.SearchQuery, map[string][]string) {
	q := r.URL.Query()
	query := service.SearchQuery{
		Name:  q.Get("name"),
		Email: q.Get("email"),
		Phone: q.Get("phone"),
		Page:  service.DefaultPage,
		Size:  service.DefaultPageSize,
	}

	errs := map[string][]string{}
	if raw := q.Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil || page < 1 {
			errs["page"] = []string{"page must be an integer greater than 0"}
		} else {
			query.Page = page
		}
	}
	if raw := q.Get("size"); raw != "" {
		size, err := strconv.Atoi(raw)
		if err != nil || size < 1 || size > service.MaxPageSize {
			errs["size"] = []string{fmt.Sprintf("size must be an integer between 1 and %d", service.MaxPageSize)}
		} else {
			query.Size = size
		}
	}

	if len(errs) > 0 {
		return query, errs
	}
	return query, nil
}
