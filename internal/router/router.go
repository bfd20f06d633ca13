package router

import (
	"net/http"

	"product-insights/internal/handler"
	"product-insights/internal/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// New creates a new HTTP router with all routes and middleware configured.
func New(
	authHandler *handler.AuthHandler,
	productHandler *handler.ProductHandler,
	verifier middleware.TokenVerifier,
	logger zerolog.Logger,
) http.Handler {
	r := chi.NewRouter()

	// Applied in order: Recovery -> RequestID -> Logging -> CORS
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.RequestID)
	r.Use(middleware.Logging(logger))
	r.Use(middleware.CORS)

	r.NotFound(handler.NotFound)
	r.MethodNotAllowed(handler.MethodNotAllowed)

	// Public routes
	r.Get("/health", handler.Health)
	r.Post("/signup", authHandler.Signup)
	r.Post("/login", authHandler.Login)

	// Routes behind the bearer token gate
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireToken(verifier, logger))
		r.Post("/load_csv", productHandler.LoadCSV)
		r.Get("/summary", productHandler.Summary)
	})

	return r
}
