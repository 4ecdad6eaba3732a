package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/phrazzld/contacts-api/internal/api"
	"github.com/phrazzld/contacts-api/internal/api/middleware"
	"github.com/phrazzld/contacts-api/internal/domain"
	"github.com/phrazzld/contacts-api/internal/mocks"
	"github.com/stretchr/testify/require"
)

type testServer struct {
	users     *mocks.UserService
	contacts  *mocks.ContactService
	addresses *mocks.AddressService
	user      *domain.User
	router    http.Handler
}

// newTestServer mounts the handlers the way the server does, with the
// bearer check replaced by injecting user. A nil user leaves the request
// unauthenticated.
func newTestServer(t *testing.T, user *domain.User) *testServer {
	t.Helper()
	ts := &testServer{
		users:     &mocks.UserService{},
		contacts:  &mocks.ContactService{},
		addresses: &mocks.AddressService{},
		user:      user,
	}

	userHandler := api.NewUserHandler(ts.users, nil)
	contactHandler := api.NewContactHandler(ts.contacts, nil)
	addressHandler := api.NewAddressHandler(ts.addresses, nil)

	r := chi.NewRouter()
	r.Use(middleware.TraceMiddleware)
	r.Route("/api", func(r chi.Router) {
		r.Post("/users", userHandler.Register)
		r.Post("/users/login", userHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(func(next http.Handler) http.Handler {
				return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
					if ts.user != nil {
						req = req.WithContext(middleware.WithUser(req.Context(), ts.user))
					}
					next.ServeHTTP(w, req)
				})
			})

			r.Get("/users/current", userHandler.Current)
			r.Patch("/users/current", userHandler.UpdateProfile)
			r.Delete("/users/logout", userHandler.Logout)

			r.Post("/contacts", contactHandler.Create)
			r.Get("/contacts", contactHandler.Search)
			r.Get("/contacts/{contactId}", contactHandler.Get)
			r.Put("/contacts/{contactId}", contactHandler.Update)
			r.Delete("/contacts/{contactId}", contactHandler.Delete)

			r.Post("/contacts/{contactId}/addresses", addressHandler.Create)
			r.Get("/contacts/{contactId}/addresses", addressHandler.List)
			r.Get("/contacts/{contactId}/addresses/{addressId}", addressHandler.Get)
			r.Put("/contacts/{contactId}/addresses/{addressId}", addressHandler.Update)
			r.Delete("/contacts/{contactId}/addresses/{addressId}", addressHandler.Delete)
		})
	})
	ts.router = r

	t.Cleanup(func() {
		ts.users.AssertExpectations(t)
		ts.contacts.AssertExpectations(t)
		ts.addresses.AssertExpectations(t)
	})
	return ts
}

func (ts *testServer) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		require.NoError(t, json.NewEncoder(&buf).Encode(b))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	ts.router.ServeHTTP(rec, req)
	return rec
}

func testUser() *domain.User {
	return &domain.User{ID: uuid.New(), Username: "alice", Name: "Alice", HashedPassword: "hashed"}
}

type errorBody struct {
	Errors map[string][]string `json:"errors"`
}

func decodeErrors(t *testing.T, rec *httptest.ResponseRecorder) map[string][]string {
	t.Helper()
	var body errorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())
	return body.Errors
}

func decodeData(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	envelope := struct {
		Data any `json:"data"`
	}{Data: v}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope), rec.Body.String())
}

func strPtr(s string) *string { return &s }

func decodeJSON(rec *httptest.ResponseRecorder, v any) error {
	return json.Unmarshal(rec.Body.Bytes(), v)
}
