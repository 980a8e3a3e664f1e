package common

import (
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/leapstack-labs/launchdash/internal/dashboard"
)

// Query parameter names shared by the figure endpoints.
const (
	ParamSite = "site"
	ParamLow  = "low"
	ParamHigh = "high"
)

// Apply overlays the sent signals on def.
func (s DashboardSignals) Apply(def dashboard.Selection) dashboard.Selection {
	sel := def
	if s.Site != nil && *s.Site != "" {
		sel.Site = *s.Site
	}
	if s.Low != nil {
		sel.Payload.Low = float64(*s.Low)
	}
	if s.High != nil {
		sel.Payload.High = float64(*s.High)
	}
	return sel
}

// SelectionFromQuery overlays site, low and high query parameters on def.
// Missing or blank parameters keep their default.
func SelectionFromQuery(q url.Values, def dashboard.Selection) (dashboard.Selection, error) {
	sel := def
	if site := strings.TrimSpace(q.Get(ParamSite)); site != "" {
		sel.Site = site
	}

	var err error
	if sel.Payload.Low, err = floatParam(q, ParamLow, sel.Payload.Low); err != nil {
		return def, err
	}
	if sel.Payload.High, err = floatParam(q, ParamHigh, sel.Payload.High); err != nil {
		return def, err
	}
	return sel, nil
}

func floatParam(q url.Values, name string, def float64) (float64, error) {
	raw := strings.TrimSpace(q.Get(name))
	if raw == "" {
		return def, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return def, fmt.Errorf("invalid %s parameter %q", name, raw)
	}
	return v, nil
}

// WriteJSON writes v as an indented JSON response.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}
