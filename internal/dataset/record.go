// Package dataset loads the launch records table explored by the dashboard.
//
// A Dataset is built once at startup and is read-only afterwards. Every
// accessor returns copies, so callers can filter and sort freely without
// affecting other readers.
package dataset

import (
	"math"
	"slices"
)

// CSV column names understood by the loaders.
const (
	ColumnLaunchSite      = "Launch Site"
	ColumnPayloadMass     = "Payload Mass (kg)"
	ColumnClass           = "class"
	ColumnBoosterCategory = "Booster Version Category"

	// Optional columns, carried when present.
	ColumnFlightNumber   = "Flight Number"
	ColumnBoosterVersion = "Booster Version"
)

// RequiredColumns lists the columns every source must provide.
var RequiredColumns = []string{
	ColumnLaunchSite,
	ColumnPayloadMass,
	ColumnClass,
	ColumnBoosterCategory,
}

// Outcome class values.
const (
	ClassFailure = 0
	ClassSuccess = 1
)

// LaunchRecord is a single row of the launch table.
type LaunchRecord struct {
	FlightNumber    int     `json:"flight_number,omitempty"`
	Site            string  `json:"launch_site"`
	PayloadMassKg   float64 `json:"payload_mass_kg"`
	Class           int     `json:"class"`
	BoosterVersion  string  `json:"booster_version,omitempty"`
	BoosterCategory string  `json:"booster_version_category"`
}

// Succeeded reports whether the launch outcome was a success.
func (r LaunchRecord) Succeeded() bool {
	return r.Class == ClassSuccess
}

// Dataset is the immutable, ordered launch table.
type Dataset struct {
	source     string
	records    []LaunchRecord
	sites      []string
	minPayload float64
	maxPayload float64
}

// New builds a Dataset from already-validated records. The slice is copied.
// It returns ErrEmpty when records is empty, since the payload bounds would be
// undefined.
func New(source string, records []LaunchRecord) (*Dataset, error) {
	if len(records) == 0 {
		return nil, ErrEmpty
	}

	ds := &Dataset{
		source:     source,
		records:    slices.Clone(records),
		minPayload: math.Inf(1),
		maxPayload: math.Inf(-1),
	}

	seen := make(map[string]struct{})
	for _, r := range ds.records {
		ds.minPayload = math.Min(ds.minPayload, r.PayloadMassKg)
		ds.maxPayload = math.Max(ds.maxPayload, r.PayloadMassKg)
		if _, ok := seen[r.Site]; !ok {
			seen[r.Site] = struct{}{}
			ds.sites = append(ds.sites, r.Site)
		}
	}

	return ds, nil
}

// Source returns the URL or path the dataset was loaded from.
func (d *Dataset) Source() string {
	return d.source
}

// Len returns the number of records.
func (d *Dataset) Len() int {
	return len(d.records)
}

// Records returns a copy of all records in load order.
func (d *Dataset) Records() []LaunchRecord {
	return slices.Clone(d.records)
}

// Sites returns the distinct launch sites in first-appearance order.
func (d *Dataset) Sites() []string {
	return slices.Clone(d.sites)
}

// MinPayload returns the smallest payload mass in the table.
func (d *Dataset) MinPayload() float64 {
	return d.minPayload
}

// MaxPayload returns the largest payload mass in the table.
func (d *Dataset) MaxPayload() float64 {
	return d.maxPayload
}

// SuccessCount returns the number of records with a successful outcome.
func (d *Dataset) SuccessCount() int {
	n := 0
	for _, r := range d.records {
		if r.Succeeded() {
			n++
		}
	}
	return n
}
