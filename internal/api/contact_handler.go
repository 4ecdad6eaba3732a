package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/contacts-api/internal/api/shared"
	"github.com/phrazzld/contacts-api/internal/platform/logger"
	"github.com/phrazzld/contacts-api/internal/service"
)

// ContactHandler serves /contacts. Every route requires an authenticated
// user and only ever sees that user's contacts.
type ContactHandler struct {
	contacts service.ContactService
	logger   *slog.Logger
}

// NewContactHandler creates a ContactHandler.
func NewContactHandler(contacts service.ContactService, logger *slog.Logger) *ContactHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ContactHandler{
		contacts: contacts,
		logger:   logger.With(slog.String("component", "contact_handler")),
	}
}

// Create handles POST /contacts.
func (h *ContactHandler) Create(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req CreateContactRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	contact, err := h.contacts.Create(r.Context(), user.ID, req.fields())
	if err != nil {
		respondWithMappedError(w, r, err)
		return
	}

	logger.FromContextOrDefault(r.Context(), h.logger).Debug("contact created",
		slog.String("user_id", user.ID.String()),
		slog.String("contact_id", contact.ID.String()))
	shared.RespondWithData(w, r, http.StatusCreated, contactToResponse(contact))
}

// Get handles GET /contacts/{contactId}.
func (h *ContactHandler) Get(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	contactID, ok := pathUUID(w, r, contactIDParam)
	if !ok {
		return
	}

	contact, err := h.contacts.Get(r.Context(), user.ID, contactID)
	if err != nil {
		respondWithMappedError(w, r, err)
		return
	}

	shared.RespondWithData(w, r, http.StatusOK, contactToResponse(contact))
}

// Update handles PUT /contacts/{contactId}.
func (h *ContactHandler) Update(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	contactID, ok := pathUUID(w, r, contactIDParam)
	if !ok {
		return
	}

	var req UpdateContactRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	contact, err := h.contacts.Update(r.Context(), user.ID, contactID, req.fields())
	if err != nil {
		respondWithMappedError(w, r, err)
		return
	}

	shared.RespondWithData(w, r, http.StatusOK, contactToResponse(contact))
}

// Delete handles DELETE /contacts/{contactId}.
func (h *ContactHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	contactID, ok := pathUUID(w, r, contactIDParam)
	if !ok {
		return
	}

	if err := h.contacts.Delete(r.Context(), user.ID, contactID); err != nil {
		respondWithMappedError(w, r, err)
		return
	}

	shared.RespondWithData(w, r, http.StatusOK, true)
}

// Search handles GET /contacts?name=&email=&phone=&page=&size=.
func (h *ContactHandler) Search(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	query, errs := parseSearchQuery(r)
	if errs != nil {
		shared.RespondWithErrors(w, r, http.StatusBadRequest, errs)
		return
	}

	result, err := h.contacts.Search(r.Context(), user.ID, query)
	if err != nil {
		respondWithMappedError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, searchToResponse(result))
}
