package figures

import (
	"bytes"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/leapstack-labs/launchdash/internal/chart"
	"github.com/leapstack-labs/launchdash/internal/dashboard"
	"github.com/leapstack-labs/launchdash/internal/ui/features/common"
)

// chartOutputs maps the short chart names used in URLs to output ids.
var chartOutputs = map[string]string{
	"pie":     dashboard.PieChartID,
	"scatter": dashboard.ScatterChartID,
}

// Handlers provides HTTP handlers for the figures feature.
type Handlers struct {
	shell *dashboard.Shell
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(shell *dashboard.Shell) *Handlers {
	return &Handlers{shell: shell}
}

// Figure returns the JSON description of the chart named by the {chart} path
// parameter for the selection given in the query string.
func (h *Handlers) Figure(w http.ResponseWriter, r *http.Request) {
	fig, ok := h.compute(w, r)
	if !ok {
		return
	}
	common.WriteJSON(w, http.StatusOK, fig)
}

// SVG renders the chart named by the {chart} path parameter.
func (h *Handlers) SVG(w http.ResponseWriter, r *http.Request) {
	fig, ok := h.compute(w, r)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := chart.RenderSVG(&buf, fig, chart.DefaultSize); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/svg+xml")
	_, _ = w.Write(buf.Bytes())
}

// Dataset returns metadata about the loaded dataset.
func (h *Handlers) Dataset(w http.ResponseWriter, _ *http.Request) {
	ds := h.shell.Dataset()
	common.WriteJSON(w, http.StatusOK, DatasetInfo{
		Source:     ds.Source(),
		Records:    ds.Len(),
		Successes:  ds.SuccessCount(),
		Sites:      ds.Sites(),
		MinPayload: ds.MinPayload(),
		MaxPayload: ds.MaxPayload(),
	})
}

// compute resolves the chart and selection of a request. On failure it writes
// the error response and returns false.
func (h *Handlers) compute(w http.ResponseWriter, r *http.Request) (chart.Figure, bool) {
	name := chi.URLParam(r, "chart")
	output, ok := chartOutputs[name]
	if !ok {
		http.Error(w, "unknown chart: "+name, http.StatusNotFound)
		return chart.Figure{}, false
	}

	sel, err := common.SelectionFromQuery(r.URL.Query(), h.shell.DefaultSelection())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return chart.Figure{}, false
	}

	fig, err := h.shell.Compute(output, sel)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return chart.Figure{}, false
	}
	return fig, true
}
