package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/leapstack-labs/launchdash/internal/cli/config"
)

// configDescriptions documents each configuration key.
var configDescriptions = map[string]string{
	"dataset.source":          "URL or local path of the launch records CSV",
	"dataset.engine":          "Decoder used for the dataset (csv or duckdb)",
	"dataset.timeout":         "Maximum time to fetch the dataset",
	"ui.host":                 "Interface the dashboard binds to",
	"ui.port":                 "Port the dashboard listens on",
	"ui.auto_open":            "Open a browser once the server is up",
	"ui.cors_origins":         "Origins allowed to call the /api endpoints",
	"dashboard.title":         "Page heading",
	"dashboard.sites":         "Launch sites offered by the dropdown, in order",
	"dashboard.slider_step":   "Payload slider step in kg, 0 for continuous",
	"dashboard.mark_interval": "Spacing of the payload slider marks in kg",
	"verbose":                 "Enable debug logging",
	"output":                  "CLI output format (auto, text, markdown or json)",
}

// generateConfigDocs writes the configuration reference page.
func generateConfigDocs(outDir string) error {
	log.Printf("Generating config docs to %s", outDir)

	if err := os.MkdirAll(outDir, 0750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	w := NewMarkdownWriter()
	w.Frontmatter("Configuration", "Configuration keys for launchdash")
	w.GeneratedMarker()

	w.Header(1, "Configuration")
	w.Paragraph(fmt.Sprintf("launchdash reads %s from the working directory, or the file named by %s. "+
		"Every key can also be set with an environment variable; list values are comma-separated.",
		InlineCode(config.DefaultConfigFile), InlineCode("--config")))
	w.Paragraph("Precedence, from highest to lowest: command-line flags, environment variables, config file, defaults.")

	headers := []string{"Key", "Environment variable", "Default", "Description"}
	var rows [][]string
	for _, key := range config.Keys() {
		rows = append(rows, []string{
			InlineCode(key),
			InlineCode(config.EnvVar(key)),
			formatDefault(config.Default(key)),
			cleanDescription(configDescriptions[key]),
		})
	}
	w.Table(headers, rows)

	w.Header(2, "Example")
	w.CodeBlock("yaml", `dataset:
  source: ./spacex_launch_dash.csv
  engine: duckdb
ui:
  host: 0.0.0.0
  port: 8050
dashboard:
  mark_interval: 1000`)

	return os.WriteFile(filepath.Join(outDir, "configuration.md"), w.Bytes(), 0600)
}

func formatDefault(v any) string {
	switch v := v.(type) {
	case []string:
		if len(v) == 0 {
			return ""
		}
		return cleanDescription(InlineCode(strings.Join(v, ", ")))
	case string:
		if v == "" {
			return ""
		}
		return InlineCode(v)
	default:
		return InlineCode(fmt.Sprint(v))
	}
}
