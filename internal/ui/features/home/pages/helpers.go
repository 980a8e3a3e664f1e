// Package pages holds the templ components of the dashboard page.
package pages

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/a-h/templ"

	"github.com/leapstack-labs/launchdash/internal/chart"
	"github.com/leapstack-labs/launchdash/internal/dashboard"
)

// DatastarScript is the client bundle matching datastar-go v1.
const DatastarScript = "https://cdn.jsdelivr.net/gh/starfederation/datastar@v1.0.0/bundles/datastar.js"

// ChartSize is the rendered size of both chart regions.
var ChartSize = chart.Size{Width: 720, Height: 440}

// signalsJSON seeds $site, $low and $high with the layout defaults.
func signalsJSON(layout dashboard.Layout) string {
	b, err := json.Marshal(map[string]any{
		"site": layout.Site.Default,
		"low":  layout.Payload.Default.Low,
		"high": layout.Payload.Default.High,
	})
	if err != nil {
		return "{}"
	}
	return string(b)
}

func updatesFor(updates []dashboard.Update, output string) []dashboard.Update {
	var out []dashboard.Update
	for _, u := range updates {
		if u.Output == output {
			out = append(out, u)
		}
	}
	return out
}

// chartSVG inlines the rendered figure. chart.RenderSVG escapes all text.
func chartSVG(fig chart.Figure) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		return chart.RenderSVG(w, fig, ChartSize)
	})
}

func eventAction(widget string) string {
	return fmt.Sprintf("@get('/events/%s')", widget)
}

func formatKg(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
