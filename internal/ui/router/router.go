// Package router sets up HTTP routes for the UI server.
package router

import (
	"github.com/go-chi/chi/v5"

	"github.com/leapstack-labs/launchdash/internal/dashboard"
	figuresFeature "github.com/leapstack-labs/launchdash/internal/ui/features/figures"
	homeFeature "github.com/leapstack-labs/launchdash/internal/ui/features/home"
	"github.com/leapstack-labs/launchdash/internal/ui/resources"
)

// Options tunes route setup.
type Options struct {
	// CORSOrigins are the origins allowed on /api. Empty means any origin.
	CORSOrigins []string
}

// SetupRoutes configures all routes for the UI server.
func SetupRoutes(router chi.Router, shell *dashboard.Shell, opts Options) error {
	// Static assets
	router.Handle("/static/*", resources.Handler())

	// Feature routes
	if err := homeFeature.SetupRoutes(router, shell); err != nil {
		return err
	}

	if err := figuresFeature.SetupRoutes(router, shell, opts.CORSOrigins); err != nil {
		return err
	}

	return nil
}
