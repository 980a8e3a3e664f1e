package resources

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStaticPath(t *testing.T) {
	assert.Equal(t, "/static/dashboard.css", StaticPath("dashboard.css"))
}

func TestHandler_ServesStylesheet(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, StaticPath("dashboard.css"), nil)
	rec := httptest.NewRecorder()

	Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/css")
	assert.Contains(t, rec.Body.String(), ".chart")
}

func TestHandler_MissingAsset(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, StaticPath("missing.js"), nil)
	rec := httptest.NewRecorder()

	Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
