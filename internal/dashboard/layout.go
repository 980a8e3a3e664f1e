// Package dashboard declares the dashboard's widgets and output regions and
// binds them together with reactive update rules.
package dashboard

import (
	"fmt"
	"math"
	"strconv"

	"github.com/leapstack-labs/launchdash/internal/analytics"
)

// Widget and output identifiers. They double as DOM element ids.
const (
	SiteDropdownID  = "site-dropdown"
	PayloadSliderID = "payload-slider"
	PieChartID      = "success-pie-chart"
	ScatterChartID  = "success-payload-scatter-chart"
)

// AllSitesLabel is the dropdown label for analytics.AllSites.
const AllSitesLabel = "All Sites"

// DefaultSites is the fixed launch site list of the published dataset.
var DefaultSites = []string{"CCAFS LC-40", "CCAFS SLC-40", "KSC LC-39A", "VAFB SLC-4E"}

// Option is one dropdown entry.
type Option struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Dropdown is a single-select input.
type Dropdown struct {
	ID          string   `json:"id"`
	Options     []Option `json:"options"`
	Default     string   `json:"default"`
	Placeholder string   `json:"placeholder"`
}

// Mark is a labelled tick on a range slider.
type Mark struct {
	Value float64 `json:"value"`
	Label string  `json:"label"`
}

// RangeSlider selects a payload interval.
type RangeSlider struct {
	ID      string                 `json:"id"`
	Min     float64                `json:"min"`
	Max     float64                `json:"max"`
	Step    float64                `json:"step"` // 0 means continuous
	Default analytics.PayloadRange `json:"default"`
	Marks   []Mark                 `json:"marks"`
}

// StepAttr renders Step for an HTML range input.
func (s RangeSlider) StepAttr() string {
	if s.Step <= 0 {
		return "any"
	}
	return strconv.FormatFloat(s.Step, 'f', -1, 64)
}

// Graph is a chart output region.
type Graph struct {
	ID string `json:"id"`
}

// Layout is the full widget tree of the dashboard page.
type Layout struct {
	Title   string      `json:"title"`
	Site    Dropdown    `json:"site"`
	Payload RangeSlider `json:"payload"`
	Pie     Graph       `json:"pie"`
	Scatter Graph       `json:"scatter"`
}

func siteDropdown(sites []string) Dropdown {
	opts := make([]Option, 0, len(sites)+1)
	opts = append(opts, Option{Label: AllSitesLabel, Value: analytics.AllSites})
	for _, s := range sites {
		opts = append(opts, Option{Label: s, Value: s})
	}
	return Dropdown{
		ID:          SiteDropdownID,
		Options:     opts,
		Default:     analytics.AllSites,
		Placeholder: "Select Launch Site",
	}
}

func payloadSlider(minKg, maxKg, step, interval float64) RangeSlider {
	return RangeSlider{
		ID:      PayloadSliderID,
		Min:     minKg,
		Max:     maxKg,
		Step:    step,
		Default: analytics.PayloadRange{Low: minKg, High: maxKg},
		Marks:   marks(minKg, maxKg, interval),
	}
}

// MaxMarks bounds the number of slider ticks. Smaller intervals are widened
// to a whole multiple that fits.
const MaxMarks = 100

// marks places ticks on every multiple of interval within [minKg, maxKg].
// The first tick carries the unit.
func marks(minKg, maxKg, interval float64) []Mark {
	if !(interval > 0) || math.IsInf(interval, 0) || maxKg < minKg {
		return nil
	}
	if n := (maxKg - minKg) / interval; n > MaxMarks {
		interval *= math.Ceil(n / MaxMarks)
	}

	first := math.Ceil(minKg/interval) * interval
	var out []Mark
	for i := 0; i <= MaxMarks; i++ {
		v := first + float64(i)*interval
		if v > maxKg {
			break
		}
		label := strconv.FormatFloat(v, 'f', -1, 64)
		if len(out) == 0 {
			label = fmt.Sprintf("%s kg", label)
		}
		out = append(out, Mark{Value: v, Label: label})
	}
	return out
}
