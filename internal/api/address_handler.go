package api

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/phrazzld/contacts-api/internal/api/shared"
	"github.com/phrazzld/contacts-api/internal/service"
)

// AddressHandler serves /contacts/{contactId}/addresses.
type AddressHandler struct {
	addresses service.AddressService
	logger    *slog.Logger
}

// NewAddressHandler creates an AddressHandler.
func NewAddressHandler(addresses service.AddressService, logger *slog.Logger) *AddressHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &AddressHandler{
		addresses: addresses,
		logger:    logger.With(slog.String("component", "address_handler")),
	}
}

// scope extracts the user and the contact id every address route needs.
func (h *AddressHandler) scope(w http.ResponseWriter, r *http.Request) (uuid.UUID, uuid.UUID, bool) {
	user, ok := currentUser(w, r)
	if !ok {
		return uuid.Nil, uuid.Nil, false
	}
	contactID, ok := pathUUID(w, r, contactIDParam)
	if !ok {
		return uuid.Nil, uuid.Nil, false
	}
	return user.ID, contactID, true
}

// Create handles POST /contacts/{contactId}/addresses.
func (h *AddressHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, contactID, ok := h.scope(w, r)
	if !ok {
		return
	}

	var req CreateAddressRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	address, err := h.addresses.Create(r.Context(), userID, contactID, req.fields())
	if err != nil {
		respondWithMappedError(w, r, err)
		return
	}

	shared.RespondWithData(w, r, http.StatusCreated, addressToResponse(address))
}

// List handles GET /contacts/{contactId}/addresses.
func (h *AddressHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, contactID, ok := h.scope(w, r)
	if !ok {
		return
	}

	addresses, err := h.addresses.List(r.Context(), userID, contactID)
	if err != nil {
		respondWithMappedError(w, r, err)
		return
	}

	shared.RespondWithData(w, r, http.StatusOK, addressesToResponse(addresses))
}

// Get handles GET /contacts/{contactId}/addresses/{addressId}.
func (h *AddressHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, contactID, ok := h.scope(w, r)
	if !ok {
		return
	}
	addressID, ok := pathUUID(w, r, addressIDParam)
	if !ok {
		return
	}

	address, err := h.addresses.Get(r.Context(), userID, contactID, addressID)
	if err != nil {
		respondWithMappedError(w, r, err)
		return
	}

	shared.RespondWithData(w, r, http.StatusOK, addressToResponse(address))
}

// Update handles PUT /contacts/{contactId}/addresses/{addressId}.
func (h *AddressHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, contactID, ok := h.scope(w, r)
	if !ok {
		return
	}
	addressID, ok := pathUUID(w, r, addressIDParam)
	if !ok {
		return
	}

	var req UpdateAddressRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	address, err := h.addresses.Update(r.Context(), userID, contactID, addressID, req.fields())
	if err != nil {
		respondWithMappedError(w, r, err)
		return
	}

	shared.RespondWithData(w, r, http.StatusOK, addressToResponse(address))
}

// Delete handles DELETE /contacts/{contactId}/addresses/{addressId}.
func (h *AddressHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, contactID, ok := h.scope(w, r)
	if !ok {
		return
	}
	addressID, ok := pathUUID(w, r, addressIDParam)
	if !ok {
		return
	}

	if err := h.addresses.Delete(r.Context(), userID, contactID, addressID); err != nil {
		respondWithMappedError(w, r, err)
		return
	}

	shared.RespondWithData(w, r, http.StatusOK, true)
}
