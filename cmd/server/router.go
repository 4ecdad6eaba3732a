package main

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/phrazzld/contacts-api/internal/api"
	apiMiddleware "github.com/phrazzld/contacts-api/internal/api/middleware"
	"github.com/phrazzld/contacts-api/internal/platform/logger"
)

const corsMaxAgeSeconds = int(12 * time.Hour / time.Second)

// setupRouter builds the chi router with every route and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			next.ServeHTTP(w, req.WithContext(logger.WithLogger(req.Context(), app.logger)))
		})
	})
	r.Use(apiMiddleware.TraceMiddleware)
	r.Use(apiMiddleware.RequestLogger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: app.config.Server.CORSAllowedOrigins,
		AllowedMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPut,
			http.MethodPatch, http.MethodDelete, http.MethodOptions,
		},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
		ExposedHeaders: []string{"X-Trace-ID"},
		MaxAge:         corsMaxAgeSeconds,
	}))

	userHandler := api.NewUserHandler(app.userService, app.logger)
	contactHandler := api.NewContactHandler(app.contactService, app.logger)
	addressHandler := api.NewAddressHandler(app.addressService, app.logger)
	authMiddleware := apiMiddleware.NewAuthMiddleware(app.authenticator)

	r.Route("/api", func(r chi.Router) {
		r.Post("/users", userHandler.Register)
		r.Post("/users/login", userHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)

			r.Get("/users/current", userHandler.Current)
			r.Patch("/users/current", userHandler.UpdateProfile)
			r.Delete("/users/logout", userHandler.Logout)

			r.Route("/contacts", func(r chi.Router) {
				r.Post("/", contactHandler.Create)
				r.Get("/", contactHandler.Search)

				r.Route("/{contactId}", func(r chi.Router) {
					r.Get("/", contactHandler.Get)
					r.Put("/", contactHandler.Update)
					r.Delete("/", contactHandler.Delete)

					r.Route("/addresses", func(r chi.Router) {
						r.Post("/", addressHandler.Create)
						r.Get("/", addressHandler.List)
						r.Get("/{addressId}", addressHandler.Get)
						r.Put("/{addressId}", addressHandler.Update)
						r.Delete("/{addressId}", addressHandler.Delete)
					})
				})
			})
		})
	})

	r.Method(http.MethodGet, "/health", api.NewHealthHandler(app.db, app.logger))

	return r
}
