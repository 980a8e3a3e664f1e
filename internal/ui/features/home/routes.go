// Package home provides the dashboard page and its widget event stream.
package home

import (
	"github.com/go-chi/chi/v5"

	"github.com/leapstack-labs/launchdash/internal/dashboard"
)

// SetupRoutes configures routes for the home feature.
func SetupRoutes(router chi.Router, shell *dashboard.Shell) error {
	handlers := NewHandlers(shell)

	router.Get("/", handlers.HomePage)
	router.Get("/events/{widget}", handlers.WidgetEvents)

	return nil
}
