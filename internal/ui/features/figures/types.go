// Package figures serves chart figures as JSON and SVG.
package figures

// DatasetInfo describes the loaded dataset.
type DatasetInfo struct {
	Source     string   `json:"source"`
	Records    int      `json:"records"`
	Successes  int      `json:"successes"`
	Sites      []string `json:"sites"`
	MinPayload float64  `json:"min_payload_kg"`
	MaxPayload float64  `json:"max_payload_kg"`
}
