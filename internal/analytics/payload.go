package analytics

import (
	"fmt"

	"github.com/leapstack-labs/launchdash/internal/dataset"
)

// PayloadRange is a half-open interval [Low, High) of payload mass in kg.
type PayloadRange struct {
	Low  float64 `json:"low"`
	High float64 `json:"high"`
}

// Contains reports whether payload lies in [Low, High).
func (r PayloadRange) Contains(payload float64) bool {
	return payload >= r.Low && payload < r.High
}

// Empty reports whether no payload can satisfy the range.
func (r PayloadRange) Empty() bool {
	return r.High <= r.Low
}

func (r PayloadRange) String() string {
	return fmt.Sprintf("[%g, %g)", r.Low, r.High)
}

// FilterPayload keeps records whose payload lies in rng and, unless site is
// AllSites, that were launched from site. Input order is preserved. The range
// is applied as given; an inverted range yields no records.
func FilterPayload(records []dataset.LaunchRecord, site string, rng PayloadRange) []dataset.LaunchRecord {
	out := make([]dataset.LaunchRecord, 0, len(records))
	for _, r := range records {
		if !rng.Contains(r.PayloadMassKg) {
			continue
		}
		if site != AllSites && r.Site != site {
			continue
		}
		out = append(out, r)
	}
	return out
}
