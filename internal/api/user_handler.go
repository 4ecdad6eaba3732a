package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/contacts-api/internal/api/shared"
	"github.com/phrazzld/contacts-api/internal/platform/logger"
	"github.com/phrazzld/contacts-api/internal/service"
)

// UserHandler serves registration, login and the current-user endpoints.
type UserHandler struct {
	users  service.UserService
	logger *slog.Logger
}

// NewUserHandler creates a UserHandler.
func NewUserHandler(users service.UserService, logger *slog.Logger) *UserHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &UserHandler{
		users:  users,
		logger: logger.With(slog.String("component", "user_handler")),
	}
}

// Register handles POST /users.
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	user, err := h.users.Register(r.Context(), service.RegisterInput{
		Username: req.Username,
		Password: req.Password,
		Name:     req.Name,
	})
	if err != nil {
		respondWithMappedError(w, r, err)
		return
	}

	shared.RespondWithData(w, r, http.StatusCreated, userToResponse(user))
}

// Login handles POST /users/login.
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	user, token, err := h.users.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		respondWithMappedError(w, r, err)
		return
	}

	shared.RespondWithData(w, r, http.StatusOK, LoginResponse{
		UserResponse: userToResponse(user),
		Token:        token,
	})
}

// Current handles GET /users/current.
func (h *UserHandler) Current(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	shared.RespondWithData(w, r, http.StatusOK, userToResponse(user))
}

// UpdateProfile handles PATCH /users/current.
func (h *UserHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req UpdateProfileRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	updated, err := h.users.UpdateProfile(r.Context(), user.ID, service.ProfileUpdate{
		Name:     req.Name,
		Password: req.Password,
	})
	if err != nil {
		respondWithMappedError(w, r, err)
		return
	}

	shared.RespondWithData(w, r, http.StatusOK, userToResponse(updated))
}

// Logout handles DELETE /users/logout.
func (h *UserHandler) Logout(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	if err := h.users.Logout(r.Context(), user.ID); err != nil {
		respondWithMappedError(w, r, err)
		return
	}

	logger.FromContextOrDefault(r.Context(), h.logger).Debug("session ended",
		slog.String("user_id", user.ID.String()))
	shared.RespondWithData(w, r, http.StatusOK, true)
}
