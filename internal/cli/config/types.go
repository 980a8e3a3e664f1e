// Package config provides configuration management for the launchdash CLI.
//
// Values are layered from built-in defaults, an optional YAML file,
// LAUNCHDASH_ environment variables and explicitly set command-line flags,
// each layer overriding the previous one.
package config

import (
	"fmt"
	"math"
	"slices"
	"time"

	"github.com/leapstack-labs/launchdash/internal/cli/output"
	"github.com/leapstack-labs/launchdash/internal/dashboard"
	"github.com/leapstack-labs/launchdash/internal/dataset"
)

// Default configuration values.
const (
	DefaultConfigFile   = "launchdash.yaml"
	DefaultPort         = 8050
	DefaultHost         = "127.0.0.1"
	DefaultTimeout      = 30 * time.Second
	DefaultMarkInterval = 2500
	DefaultOutput       = string(output.ModeAuto)
	EnvPrefix           = "LAUNCHDASH_"
)

// DatasetConfig selects where the launch records come from.
type DatasetConfig struct {
	Source  string        `koanf:"source"`
	Engine  string        `koanf:"engine"`
	Timeout time.Duration `koanf:"timeout"`
}

// UIConfig holds configuration for the dashboard server.
type UIConfig struct {
	Host        string   `koanf:"host"`
	Port        int      `koanf:"port"`
	AutoOpen    bool     `koanf:"auto_open"`
	CORSOrigins []string `koanf:"cors_origins"`
}

// DashboardConfig customizes the dashboard widgets.
type DashboardConfig struct {
	Title        string   `koanf:"title"`
	Sites        []string `koanf:"sites"`
	SliderStep   float64  `koanf:"slider_step"`
	MarkInterval float64  `koanf:"mark_interval"`
}

// Shell returns the dashboard.Config equivalent.
func (c DashboardConfig) Shell() dashboard.Config {
	return dashboard.Config{
		Title:        c.Title,
		Sites:        c.Sites,
		SliderStep:   c.SliderStep,
		MarkInterval: c.MarkInterval,
	}
}

// Config holds all CLI configuration options.
type Config struct {
	Dataset      DatasetConfig   `koanf:"dataset"`
	UI           UIConfig        `koanf:"ui"`
	Dashboard    DashboardConfig `koanf:"dashboard"`
	Verbose      bool            `koanf:"verbose"`
	OutputFormat string          `koanf:"output"`
}

// Defaults returns the configuration used when nothing else is set.
func Defaults() *Config {
	return &Config{
		Dataset: DatasetConfig{
			Source:  dataset.DefaultSource,
			Engine:  dataset.EngineCSV,
			Timeout: DefaultTimeout,
		},
		UI: UIConfig{
			Host:        DefaultHost,
			Port:        DefaultPort,
			CORSOrigins: []string{"*"},
		},
		Dashboard: DashboardConfig{
			Title:        dashboard.DefaultTitle,
			Sites:        slices.Clone(dashboard.DefaultSites),
			MarkInterval: DefaultMarkInterval,
		},
		OutputFormat: DefaultOutput,
	}
}

// Validate reports the first invalid value.
func (c *Config) Validate() error {
	switch c.Dataset.Engine {
	case dataset.EngineCSV, dataset.EngineDuckDB:
	default:
		return fmt.Errorf("dataset.engine must be %q or %q, got %q", dataset.EngineCSV, dataset.EngineDuckDB, c.Dataset.Engine)
	}
	if c.Dataset.Source == "" {
		return fmt.Errorf("dataset.source is required")
	}
	if c.Dataset.Timeout < 0 {
		return fmt.Errorf("dataset.timeout must not be negative")
	}
	if c.UI.Port < 0 || c.UI.Port > 65535 {
		return fmt.Errorf("ui.port must be between 0 and 65535, got %d", c.UI.Port)
	}
	if !finite(c.Dashboard.SliderStep) || c.Dashboard.SliderStep < 0 {
		return fmt.Errorf("dashboard.slider_step must be a non-negative number")
	}
	if !finite(c.Dashboard.MarkInterval) || c.Dashboard.MarkInterval < 0 {
		return fmt.Errorf("dashboard.mark_interval must be a non-negative number")
	}
	if _, err := output.ParseMode(c.OutputFormat); err != nil {
		return err
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
