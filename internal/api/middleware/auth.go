package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/phrazzld/contacts-api/internal/api/shared"
	"github.com/phrazzld/contacts-api/internal/domain"
	"github.com/phrazzld/contacts-api/internal/service/auth"
)

const bearerPrefix = "Bearer "

// AuthMiddleware resolves the bearer token of each request to a user.
type AuthMiddleware struct {
	authenticator auth.Authenticator
}

// NewAuthMiddleware creates an AuthMiddleware.
func NewAuthMiddleware(authenticator auth.Authenticator) *AuthMiddleware {
	return &AuthMiddleware{authenticator: authenticator}
}

// Authenticate rejects requests without a valid session token with 401 and
// stores the authenticated user in the request context otherwise.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := bearerToken(r.Header.Get("Authorization"))
		if !ok {
			shared.RespondWithErrorAndLog(w, r, http.StatusUnauthorized,
				shared.MessageErrors("unauthorized"), auth.ErrUnauthenticated)
			return
		}

		user, err := m.authenticator.Authenticate(r.Context(), token)
		if err != nil {
			if errors.Is(err, auth.ErrUnauthenticated) {
				shared.RespondWithErrorAndLog(w, r, http.StatusUnauthorized,
					shared.MessageErrors("unauthorized"), err, shared.WithElevatedLogLevel())
				return
			}
			shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
				shared.MessageErrors("internal server error"), err)
			return
		}

		next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), user)))
	})
}

// bearerToken extracts the token from an Authorization header value. The
// scheme is case-sensitive and followed by exactly one space.
func bearerToken(header string) (string, bool) {
	token, found := strings.CutPrefix(header, bearerPrefix)
	if !found || token == "" {
		return "", false
	}
	if strings.ContainsAny(token, " \t\r\n") {
		return "", false
	}
	return token, true
}

// WithUser returns a copy of ctx carrying user.
func WithUser(ctx context.Context, user *domain.User) context.Context {
	return context.WithValue(ctx, shared.UserContextKey, user)
}

// GetUser returns the authenticated user of the request.
func GetUser(r *http.Request) (*domain.User, bool) {
	user, ok := r.Context().Value(shared.UserContextKey).(*domain.User)
	return user, ok && user != nil
}
