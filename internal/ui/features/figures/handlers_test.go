package figures

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/launchdash/internal/chart"
	"github.com/leapstack-labs/launchdash/internal/ui/features"
)

func setupTestRouter(t *testing.T, origins ...string) chi.Router {
	t.Helper()

	fixture := features.SetupTestFixture(t)
	r := chi.NewRouter()
	require.NoError(t, SetupRoutes(r, fixture.Shell, origins))
	return r
}

func get(t *testing.T, r http.Handler, target string, header ...string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, target, nil)
	for i := 0; i+1 < len(header); i += 2 {
		req.Header.Set(header[i], header[i+1])
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestFigure(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		wantStatus int
		check      func(t *testing.T, fig chart.Figure)
	}{
		{
			name:       "all sites pie",
			target:     "/api/figures/pie",
			wantStatus: http.StatusOK,
			check: func(t *testing.T, fig chart.Figure) {
				assert.Equal(t, chart.KindPie, fig.Kind)
				assert.Equal(t, chart.TitleSitePie, fig.Title)
				assert.Equal(t, []chart.Slice{
					{Label: "CCAFS LC-40", Value: 0},
					{Label: "CCAFS SLC-40", Value: 2},
					{Label: "KSC LC-39A", Value: 2},
					{Label: "VAFB SLC-4E", Value: 1},
				}, fig.Slices)
			},
		},
		{
			name:       "single site pie",
			target:     "/api/figures/pie?site=KSC+LC-39A",
			wantStatus: http.StatusOK,
			check: func(t *testing.T, fig chart.Figure) {
				assert.Equal(t, "Success vs Failure for site KSC LC-39A", fig.Title)
				assert.Equal(t, []chart.Slice{{Label: "1", Value: 2}, {Label: "0", Value: 1}}, fig.Slices)
			},
		},
		{
			name:       "default scatter excludes the heaviest payload",
			target:     "/api/figures/scatter",
			wantStatus: http.StatusOK,
			check: func(t *testing.T, fig chart.Figure) {
				assert.Equal(t, chart.KindScatter, fig.Kind)
				assert.Equal(t, 18, fig.PointCount())
			},
		},
		{
			name:       "scatter with payload range",
			target:     "/api/figures/scatter?site=CCAFS+LC-40&low=500&high=3170",
			wantStatus: http.StatusOK,
			check: func(t *testing.T, fig chart.Figure) {
				assert.Equal(t, "Payload vs Success for Site CCAFS LC-40", fig.Title)
				// 525, 500, 677, 2296 and 1316; 3170 is excluded.
				assert.Equal(t, 5, fig.PointCount())
				assert.Equal(t, &chart.Range{Min: 500, Max: 3170}, fig.XRange)
			},
		},
		{
			name:       "unknown site yields an empty figure",
			target:     "/api/figures/scatter?site=Boca+Chica",
			wantStatus: http.StatusOK,
			check: func(t *testing.T, fig chart.Figure) {
				assert.True(t, fig.Empty())
			},
		},
		{
			name:       "malformed bound",
			target:     "/api/figures/scatter?low=ten",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "unknown chart",
			target:     "/api/figures/bar",
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := get(t, setupTestRouter(t), tt.target)

			require.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
			if tt.check == nil {
				return
			}
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			var fig chart.Figure
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &fig))
			tt.check(t, fig)
		})
	}
}

func TestDataset(t *testing.T) {
	rec := get(t, setupTestRouter(t), "/api/dataset")
	require.Equal(t, http.StatusOK, rec.Code)

	var info DatasetInfo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &info))
	assert.True(t, strings.HasSuffix(info.Source, "launches.csv"))
	assert.Equal(t, 19, info.Records)
	assert.Equal(t, 5, info.Successes)
	assert.Equal(t, []string{"CCAFS LC-40", "VAFB SLC-4E", "KSC LC-39A", "CCAFS SLC-40"}, info.Sites)
	assert.Equal(t, 0.0, info.MinPayload)
	assert.Equal(t, 9600.0, info.MaxPayload)
}

func TestSVG(t *testing.T) {
	r := setupTestRouter(t)

	rec := get(t, r, "/charts/pie.svg?site=ALL")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/svg+xml", rec.Header().Get("Content-Type"))
	assert.True(t, strings.HasPrefix(strings.TrimSpace(rec.Body.String()), "<svg"))
	assert.Contains(t, rec.Body.String(), "KSC LC-39A (2)")

	rec = get(t, r, "/charts/scatter.svg?low=9000&high=9100")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `data-empty="true"`)

	rec = get(t, r, "/charts/scatter.svg?high=x")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = get(t, r, "/charts/line.svg")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCORS(t *testing.T) {
	t.Run("any origin by default", func(t *testing.T) {
		rec := get(t, setupTestRouter(t), "/api/dataset", "Origin", "https://example.com")
		assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("configured origin", func(t *testing.T) {
		r := setupTestRouter(t, "https://dash.example.com")

		rec := get(t, r, "/api/figures/pie", "Origin", "https://dash.example.com")
		assert.Equal(t, "https://dash.example.com", rec.Header().Get("Access-Control-Allow-Origin"))

		rec = get(t, r, "/api/figures/pie", "Origin", "https://other.example.com")
		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("svg charts are same-origin only", func(t *testing.T) {
		rec := get(t, setupTestRouter(t), "/charts/pie.svg", "Origin", "https://example.com")
		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	})
}
