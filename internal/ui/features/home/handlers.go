package home

import (
	"net/http"
	"slices"

	"github.com/go-chi/chi/v5"
	"github.com/starfederation/datastar-go/datastar"

	"github.com/leapstack-labs/launchdash/internal/dashboard"
	"github.com/leapstack-labs/launchdash/internal/ui/features/common"
	"github.com/leapstack-labs/launchdash/internal/ui/features/home/pages"
)

// Handlers provides HTTP handlers for the dashboard page.
type Handlers struct {
	shell *dashboard.Shell
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(shell *dashboard.Shell) *Handlers {
	return &Handlers{shell: shell}
}

// HomePage renders the dashboard with every chart computed for the default
// selection.
func (h *Handlers) HomePage(w http.ResponseWriter, r *http.Request) {
	if err := pages.DashboardPage(h.shell.Layout(), h.shell.Initial()).Render(r.Context(), w); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// WidgetEvents handles a change of one input widget. Every chart region bound
// to the widget is recomputed and patched in a single stream.
func (h *Handlers) WidgetEvents(w http.ResponseWriter, r *http.Request) {
	widget := chi.URLParam(r, "widget")
	if !slices.Contains(h.shell.Widgets(), widget) {
		http.Error(w, "unknown widget: "+widget, http.StatusNotFound)
		return
	}

	// Read signals BEFORE creating SSE (SSE consumes the request body)
	var signals common.DashboardSignals
	if err := datastar.ReadSignals(r, &signals); err != nil {
		sse := datastar.NewSSE(w, r)
		_ = sse.ConsoleError(err)
		return
	}

	sse := datastar.NewSSE(w, r)

	updates, err := h.shell.Dispatch(widget, signals.Apply(h.shell.DefaultSelection()))
	if err != nil {
		_ = sse.ConsoleError(err)
		return
	}

	for _, u := range updates {
		if err := sse.PatchElementTempl(pages.ChartRegion(u)); err != nil {
			_ = sse.ConsoleError(err)
			return
		}
	}
}
