package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/marchenry/bookworm-api/internal/api"
	apiMiddleware "github.com/marchenry/bookworm-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes
// and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	authHandler := api.NewAuthHandler(
		app.accountStore,
		app.jwtService,
		app.passwordHasher,
	)
	authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwtService)
	profileHandler := api.NewProfileHandler(app.profileService)

	r.Route("/api", func(r chi.Router) {
		// Authentication endpoints (public)
		r.Post("/auth/register", authHandler.Register)
		r.Post("/auth/login", authHandler.Login)
		r.Post("/auth/refresh", authHandler.RefreshToken)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)

			r.Get("/auth/me", authHandler.Me)

			r.Route("/profiles/{userID}", func(r chi.Router) {
				r.Post("/", profileHandler.Create)
				r.Get("/", profileHandler.Get)
				r.Delete("/", profileHandler.Delete)
				r.Get("/snapshot", profileHandler.Snapshot)
				r.Post("/genres", profileHandler.AddGenre)
				r.Delete("/genres/{name}", profileHandler.RemoveGenre)
				r.Post("/ratings", profileHandler.AddRating)
				r.Post("/blocks", profileHandler.BlockItem)
				r.Delete("/blocks/{bookID}", profileHandler.UnblockItem)
			})
		})
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
