// Package features provides shared test utilities for UI feature tests.
package features

import (
	"context"
	"net/http"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/launchdash/internal/dashboard"
	"github.com/leapstack-labs/launchdash/internal/dataset"
	"github.com/leapstack-labs/launchdash/internal/testutil"
)

// TestFixture holds all dependencies needed for UI handler tests.
type TestFixture struct {
	Dataset *dataset.Dataset
	Shell   *dashboard.Shell
}

// SetupTestFixture loads the sample launch dataset and declares a dashboard
// over it with the default slider marks.
func SetupTestFixture(t *testing.T) *TestFixture {
	t.Helper()

	ds, err := dataset.Load(t.Context(), dataset.Options{
		Source: SampleDatasetPath(t),
		Logger: testutil.NewTestLogger(t),
	})
	require.NoError(t, err)

	return &TestFixture{
		Dataset: ds,
		Shell:   dashboard.New(ds, dashboard.Config{MarkInterval: 2500}),
	}
}

// SetupTestShell declares a dashboard over the given records.
func SetupTestShell(t *testing.T, records ...dataset.LaunchRecord) *dashboard.Shell {
	t.Helper()

	ds, err := dataset.New("test", records)
	require.NoError(t, err)
	return dashboard.New(ds, dashboard.Config{})
}

// SampleDatasetPath returns the path of the dataset package's sample CSV.
func SampleDatasetPath(t *testing.T) string {
	t.Helper()

	_, filename, _, ok := runtime.Caller(0)
	require.True(t, ok)
	return filepath.Join(filepath.Dir(filename), "..", "..", "dataset", "testdata", "launches.csv")
}

// RequestWithPathParam wraps a request with chi URL params.
func RequestWithPathParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}
