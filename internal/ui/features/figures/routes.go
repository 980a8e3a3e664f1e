package figures

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/leapstack-labs/launchdash/internal/dashboard"
)

// SetupRoutes registers the figure routes. The JSON API is open to the given
// CORS origins; an empty list allows any origin.
func SetupRoutes(router chi.Router, shell *dashboard.Shell, corsOrigins []string) error {
	handlers := NewHandlers(shell)

	if len(corsOrigins) == 0 {
		corsOrigins = []string{"*"}
	}

	router.Route("/api", func(r chi.Router) {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: corsOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodOptions},
			AllowedHeaders: []string{"Accept", "Content-Type"},
			MaxAge:         300,
		}))

		r.Get("/dataset", handlers.Dataset)
		r.Get("/figures/{chart}", handlers.Figure)
	})

	router.Get("/charts/{chart}.svg", handlers.SVG)

	return nil
}
