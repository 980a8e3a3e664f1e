package pages

import (
	"bytes"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/launchdash/internal/analytics"
	"github.com/leapstack-labs/launchdash/internal/chart"
	"github.com/leapstack-labs/launchdash/internal/dashboard"
)

func renderComponent(t *testing.T, c templ.Component) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, c.Render(t.Context(), &buf))
	return buf.String()
}

func TestSiteDropdown(t *testing.T) {
	out := renderComponent(t, SiteDropdown(dashboard.Dropdown{
		ID:          "site-dropdown",
		Placeholder: "Select a Launch Site here",
		Default:     analytics.AllSites,
		Options: []dashboard.Option{
			{Label: "All Sites", Value: analytics.AllSites},
			{Label: "A & <B>", Value: `A "B"`},
		},
	}))

	assert.Contains(t, out, `<select id="site-dropdown" data-bind:site data-on:change="@get(&#39;/events/site-dropdown&#39;)">`)
	assert.Contains(t, out, `<option value="ALL" selected>All Sites</option>`)
	assert.Contains(t, out, `<option value="A &#34;B&#34;">A &amp; &lt;B&gt;</option>`)
	assert.NotContains(t, out, "<B>")
}

func TestPayloadSlider(t *testing.T) {
	out := renderComponent(t, PayloadSlider(dashboard.RangeSlider{
		ID:      "payload-slider",
		Min:     0,
		Max:     9600,
		Step:    500,
		Default: analytics.PayloadRange{Low: 0, High: 9600},
		Marks:   []dashboard.Mark{{Value: 0, Label: "0 kg"}, {Value: 2500, Label: "2500"}},
	}))

	for _, want := range []string{
		`<section class="control" id="payload-slider">`,
		`id="payload-slider-low" min="0" max="9600" step="500" value="0" list="payload-slider-marks" data-bind:low`,
		`id="payload-slider-high" min="0" max="9600" step="500" value="9600" list="payload-slider-marks" data-bind:high`,
		`<datalist id="payload-slider-marks">`,
		`<option value="2500" label="2500"></option>`,
		`<span data-text="$high">9600</span>`,
	} {
		assert.Contains(t, out, want)
	}
}

func TestChartRegion(t *testing.T) {
	fig := chart.ClassPie("A & B", analytics.ClassCountSummary{{Class: 1, Count: 2}})
	out := renderComponent(t, ChartRegion(dashboard.Update{Output: `pie"><script>`, Figure: fig}))

	assert.Contains(t, out, `<div id="pie&#34;&gt;&lt;script&gt;" class="chart" data-kind="pie">`)
	assert.Contains(t, out, "<svg")
	assert.Contains(t, out, "Success vs Failure for site A &amp; B")
	assert.NotContains(t, out, "<script>")
}

func TestDashboardPage(t *testing.T) {
	layout := dashboard.Layout{
		Title:   "Launches <beta>",
		Site:    dashboard.Dropdown{ID: dashboard.SiteDropdownID, Default: analytics.AllSites},
		Payload: dashboard.RangeSlider{ID: dashboard.PayloadSliderID, Max: 100, Default: analytics.PayloadRange{High: 100}},
		Pie:     dashboard.Graph{ID: dashboard.PieChartID},
		Scatter: dashboard.Graph{ID: dashboard.ScatterChartID},
	}
	initial := []dashboard.Update{
		{Output: dashboard.ScatterChartID, Figure: chart.Figure{Kind: chart.KindScatter, Title: "scatter"}},
		{Output: dashboard.PieChartID, Figure: chart.Figure{Kind: chart.KindPie, Title: "pie"}},
	}

	out := renderComponent(t, DashboardPage(layout, initial))

	assert.Contains(t, out, "<!doctype html>")
	assert.Contains(t, out, "<title>Launches &lt;beta&gt;</title>")
	assert.Contains(t, out, `<script type="module" src="`+DatastarScript+`"></script>`)
	assert.Contains(t, out, `data-signals="{&#34;high&#34;:100,&#34;low&#34;:0,&#34;site&#34;:&#34;ALL&#34;}"`)

	// Regions follow the layout, not the update order.
	assert.Less(t, bytes.Index([]byte(out), []byte(`id="success-pie-chart"`)),
		bytes.Index([]byte(out), []byte(`id="success-payload-scatter-chart"`)))
}
