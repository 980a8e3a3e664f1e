// Package chart turns analytics summaries into declarative figure
// descriptions and renders those figures to SVG.
package chart

import (
	"strconv"

	"github.com/leapstack-labs/launchdash/internal/analytics"
	"github.com/leapstack-labs/launchdash/internal/dataset"
)

// Kind identifies the chart type of a Figure.
type Kind string

// Supported figure kinds.
const (
	KindPie     Kind = "pie"
	KindScatter Kind = "scatter"
)

// Slice is one wedge of a pie figure.
type Slice struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// Point is one scatter marker.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Series is a group of scatter points sharing a color.
type Series struct {
	Name   string  `json:"name"`
	Points []Point `json:"points"`
}

// Range is a closed axis range.
type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Bindings names the data columns a figure is drawn from.
type Bindings struct {
	Names  string `json:"names,omitempty"`
	Values string `json:"values,omitempty"`
	X      string `json:"x,omitempty"`
	Y      string `json:"y,omitempty"`
	Color  string `json:"color,omitempty"`
}

// Figure is a renderer-independent chart description.
type Figure struct {
	Kind     Kind     `json:"kind"`
	Title    string   `json:"title"`
	Bindings Bindings `json:"bindings"`
	Slices   []Slice  `json:"slices,omitempty"`
	Series   []Series `json:"series,omitempty"`
	XRange   *Range   `json:"x_range,omitempty"`
	YRange   *Range   `json:"y_range,omitempty"`
}

// PointCount returns the number of scatter points across all series.
func (f Figure) PointCount() int {
	n := 0
	for _, s := range f.Series {
		n += len(s.Points)
	}
	return n
}

// Empty reports whether the figure has nothing to draw: no slice with a
// positive value, or no scatter point.
func (f Figure) Empty() bool {
	switch f.Kind {
	case KindPie:
		for _, s := range f.Slices {
			if s.Value > 0 {
				return false
			}
		}
		return true
	case KindScatter:
		return f.PointCount() == 0
	default:
		return true
	}
}

// Titles used by the figure builders.
const (
	TitleSitePie        = "Total Successful Launches by Site"
	titleClassPie       = "Success vs Failure for site "
	TitleScatterAll     = "Payload vs Success for All Sites"
	titleScatterForSite = "Payload vs Success for Site "
)

// SuccessPie builds the pie figure for a success summary.
func SuccessPie(summary analytics.SuccessSummary) Figure {
	if summary.IsAllSites() {
		return SitePie(summary.BySite)
	}
	return ClassPie(summary.Site, summary.ByClass)
}

// SitePie draws one wedge per site sized by its success count.
func SitePie(summary analytics.SiteSuccessSummary) Figure {
	fig := Figure{
		Kind:  KindPie,
		Title: TitleSitePie,
		Bindings: Bindings{
			Names:  dataset.ColumnLaunchSite,
			Values: dataset.ColumnClass,
		},
		Slices: make([]Slice, 0, len(summary)),
	}
	for _, e := range summary {
		fig.Slices = append(fig.Slices, Slice{Label: e.Site, Value: float64(e.Successes)})
	}
	return fig
}

// ClassPie draws the success/failure split for a single site.
func ClassPie(site string, summary analytics.ClassCountSummary) Figure {
	fig := Figure{
		Kind:  KindPie,
		Title: titleClassPie + site,
		Bindings: Bindings{
			Names:  dataset.ColumnClass,
			Values: "count",
		},
		Slices: make([]Slice, 0, len(summary)),
	}
	for _, e := range summary {
		fig.Slices = append(fig.Slices, Slice{Label: strconv.Itoa(e.Class), Value: float64(e.Count)})
	}
	return fig
}

// PayloadScatter plots payload against outcome class, one series per booster
// version category in first-appearance order. The x axis spans rng.
func PayloadScatter(site string, records []dataset.LaunchRecord, rng analytics.PayloadRange) Figure {
	title := TitleScatterAll
	if site != analytics.AllSites {
		title = titleScatterForSite + site
	}

	fig := Figure{
		Kind:  KindScatter,
		Title: title,
		Bindings: Bindings{
			X:     dataset.ColumnPayloadMass,
			Y:     dataset.ColumnClass,
			Color: dataset.ColumnBoosterCategory,
		},
		Series: []Series{},
		XRange: xRange(rng),
		YRange: &Range{Min: -0.25, Max: 1.25},
	}

	index := make(map[string]int)
	for _, r := range records {
		i, ok := index[r.BoosterCategory]
		if !ok {
			i = len(fig.Series)
			index[r.BoosterCategory] = i
			fig.Series = append(fig.Series, Series{Name: r.BoosterCategory})
		}
		fig.Series[i].Points = append(fig.Series[i].Points, Point{X: r.PayloadMassKg, Y: float64(r.Class)})
	}
	return fig
}

func xRange(rng analytics.PayloadRange) *Range {
	if rng.Empty() {
		return &Range{Min: rng.Low, Max: rng.Low + 1}
	}
	return &Range{Min: rng.Low, Max: rng.High}
}
