// Package common provides shared types and utilities for UI features.
package common

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Number is a signal value that accepts a JSON number or a numeric string.
// Range inputs bound through datastar may report either.
type Number float64

// UnmarshalJSON implements json.Unmarshaler.
func (n *Number) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		return nil
	}

	raw := string(b)
	if strings.HasPrefix(raw, `"`) {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		raw = strings.TrimSpace(s)
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("invalid number %q", raw)
	}
	*n = Number(v)
	return nil
}

// DashboardSignals represents the signals sent from the dashboard page.
// Nil fields were not sent and take their widget default.
type DashboardSignals struct {
	Site *string `json:"site"`
	Low  *Number `json:"low"`
	High *Number `json:"high"`
}
