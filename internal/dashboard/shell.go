package dashboard

import (
	"errors"
	"fmt"
	"slices"

	"github.com/leapstack-labs/launchdash/internal/analytics"
	"github.com/leapstack-labs/launchdash/internal/chart"
	"github.com/leapstack-labs/launchdash/internal/dataset"
)

var (
	// ErrUnknownWidget is returned by Dispatch for an undeclared widget id.
	ErrUnknownWidget = errors.New("unknown widget")

	// ErrUnknownOutput is returned by Compute for an undeclared output id.
	ErrUnknownOutput = errors.New("unknown output")
)

// DefaultTitle is the page heading of the original dashboard.
const DefaultTitle = "SpaceX Launch Records Dashboard"

// Selection is the current value of every input widget.
type Selection struct {
	Site    string                 `json:"site"`
	Payload analytics.PayloadRange `json:"payload"`
}

// Rule recomputes one output from a selection whenever one of its inputs
// changes.
type Rule struct {
	Output  string
	Inputs  []string
	Compute func(records []dataset.LaunchRecord, sel Selection) chart.Figure
}

// Update is the result of running a rule: a figure for a named output.
type Update struct {
	Output string       `json:"output"`
	Figure chart.Figure `json:"figure"`
}

// Config customizes the widgets declared by New.
type Config struct {
	Title string
	// Sites lists the dropdown sites. Empty means the sites found in the dataset.
	Sites []string
	// SliderStep is the payload slider step in kg. Zero means continuous.
	SliderStep float64
	// MarkInterval is the distance between slider tick marks in kg.
	MarkInterval float64
}

// Shell owns the layout and the rules that bind widgets to outputs. It holds
// the dataset read-only and no other state.
type Shell struct {
	ds     *dataset.Dataset
	layout Layout
	rules  []Rule
}

// New declares the dashboard over ds.
func New(ds *dataset.Dataset, cfg Config) *Shell {
	title := cfg.Title
	if title == "" {
		title = DefaultTitle
	}
	sites := cfg.Sites
	if len(sites) == 0 {
		sites = ds.Sites()
	}

	return &Shell{
		ds: ds,
		layout: Layout{
			Title:   title,
			Site:    siteDropdown(sites),
			Payload: payloadSlider(ds.MinPayload(), ds.MaxPayload(), cfg.SliderStep, cfg.MarkInterval),
			Pie:     Graph{ID: PieChartID},
			Scatter: Graph{ID: ScatterChartID},
		},
		rules: []Rule{
			{
				Output:  PieChartID,
				Inputs:  []string{SiteDropdownID},
				Compute: successPie,
			},
			{
				Output:  ScatterChartID,
				Inputs:  []string{SiteDropdownID, PayloadSliderID},
				Compute: payloadScatter,
			},
		},
	}
}

func successPie(records []dataset.LaunchRecord, sel Selection) chart.Figure {
	return chart.SuccessPie(analytics.Success(records, sel.Site))
}

func payloadScatter(records []dataset.LaunchRecord, sel Selection) chart.Figure {
	filtered := analytics.FilterPayload(records, sel.Site, sel.Payload)
	return chart.PayloadScatter(sel.Site, filtered, sel.Payload)
}

// Layout returns the widget declarations.
func (s *Shell) Layout() Layout {
	return s.layout
}

// Dataset returns the dataset the shell was declared over.
func (s *Shell) Dataset() *dataset.Dataset {
	return s.ds
}

// DefaultSelection returns every widget's default value.
func (s *Shell) DefaultSelection() Selection {
	return Selection{
		Site:    s.layout.Site.Default,
		Payload: s.layout.Payload.Default,
	}
}

// Widgets returns the ids of all input widgets.
func (s *Shell) Widgets() []string {
	return []string{s.layout.Site.ID, s.layout.Payload.ID}
}

// Outputs returns the ids of all outputs in rule order.
func (s *Shell) Outputs() []string {
	out := make([]string, 0, len(s.rules))
	for _, r := range s.rules {
		out = append(out, r.Output)
	}
	return out
}

// Dispatch handles a change of widget: every rule that lists widget as an
// input runs against sel, in declaration order.
func (s *Shell) Dispatch(widget string, sel Selection) ([]Update, error) {
	if !slices.Contains(s.Widgets(), widget) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownWidget, widget)
	}

	records := s.ds.Records()
	var updates []Update
	for _, r := range s.rules {
		if !slices.Contains(r.Inputs, widget) {
			continue
		}
		updates = append(updates, Update{Output: r.Output, Figure: r.Compute(records, sel)})
	}
	return updates, nil
}

// Initial runs every rule for the default selection.
func (s *Shell) Initial() []Update {
	sel := s.DefaultSelection()
	records := s.ds.Records()

	updates := make([]Update, 0, len(s.rules))
	for _, r := range s.rules {
		updates = append(updates, Update{Output: r.Output, Figure: r.Compute(records, sel)})
	}
	return updates
}

// Compute runs the rule for a single output.
func (s *Shell) Compute(output string, sel Selection) (chart.Figure, error) {
	for _, r := range s.rules {
		if r.Output == output {
			return r.Compute(s.ds.Records(), sel), nil
		}
	}
	return chart.Figure{}, fmt.Errorf("%w: %q", ErrUnknownOutput, output)
}
