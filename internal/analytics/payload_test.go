package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/leapstack-labs/launchdash/internal/dataset"
)

func TestPayloadRange_Contains(t *testing.T) {
	rng := PayloadRange{Low: 0, High: 5000}

	assert.True(t, rng.Contains(0), "lower bound is inclusive")
	assert.True(t, rng.Contains(4999.99))
	assert.False(t, rng.Contains(5000), "upper bound is exclusive")
	assert.False(t, rng.Contains(-1))

	assert.False(t, rng.Empty())
	assert.True(t, PayloadRange{Low: 10, High: 10}.Empty())
	assert.Equal(t, "[0, 5000)", rng.String())
}

func TestFilterPayload(t *testing.T) {
	records := []dataset.LaunchRecord{
		{Site: "A", PayloadMassKg: 0, Class: 1},
		{Site: "B", PayloadMassKg: 2500, Class: 0},
		{Site: "A", PayloadMassKg: 5000, Class: 1},
		{Site: "B", PayloadMassKg: 4999, Class: 1},
	}

	tests := []struct {
		name     string
		site     string
		rng      PayloadRange
		wantKg   []float64
		wantSite string
	}{
		{
			name:   "all sites half-open",
			site:   AllSites,
			rng:    PayloadRange{Low: 0, High: 5000},
			wantKg: []float64{0, 2500, 4999},
		},
		{
			name:   "single site",
			site:   "A",
			rng:    PayloadRange{Low: 0, High: 5000},
			wantKg: []float64{0},
		},
		{
			name:   "upper bound widened",
			site:   "A",
			rng:    PayloadRange{Low: 0, High: 5001},
			wantKg: []float64{0, 5000},
		},
		{
			name:   "site with nothing in range",
			site:   "A",
			rng:    PayloadRange{Low: 1000, High: 4000},
			wantKg: []float64{},
		},
		{
			name:   "inverted range",
			site:   AllSites,
			rng:    PayloadRange{Low: 6000, High: 1000},
			wantKg: []float64{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterPayload(records, tt.site, tt.rng)

			kg := make([]float64, 0, len(got))
			for _, r := range got {
				kg = append(kg, r.PayloadMassKg)
			}
			assert.Equal(t, tt.wantKg, kg)
		})
	}
}

func TestFilterPayload_Idempotent(t *testing.T) {
	records := twoSites()
	rng := PayloadRange{Low: 200, High: 800}

	once := FilterPayload(records, AllSites, rng)
	twice := FilterPayload(once, AllSites, rng)
	assert.Equal(t, once, twice)

	onceA := FilterPayload(records, "A", rng)
	assert.Equal(t, onceA, FilterPayload(onceA, "A", rng))
}

func TestFilterPayload_DoesNotMutateInput(t *testing.T) {
	records := twoSites()
	before := append([]dataset.LaunchRecord(nil), records...)

	_ = FilterPayload(records, "B", PayloadRange{Low: 0, High: 10000})
	assert.Equal(t, before, records)
}
