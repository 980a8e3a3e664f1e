package config

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/launchdash/internal/dataset"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "launchdash.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func testFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("config", "", "")
	fs.String("source", "", "")
	fs.String("engine", "", "")
	fs.Duration("timeout", 0, "")
	fs.String("host", "", "")
	fs.Int("port", 0, "")
	fs.Bool("open", false, "")
	fs.BoolP("verbose", "v", false, "")
	fs.StringP("output", "o", "", "")
	require.NoError(t, fs.Parse(args))
	return fs
}

func TestLoadConfig_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)

	assert.Empty(t, cfg.FileUsed)
	assert.Equal(t, dataset.DefaultSource, cfg.Dataset.Source)
	assert.Equal(t, dataset.EngineCSV, cfg.Dataset.Engine)
	assert.Equal(t, 30*time.Second, cfg.Dataset.Timeout)
	assert.Equal(t, "127.0.0.1", cfg.UI.Host)
	assert.Equal(t, 8050, cfg.UI.Port)
	assert.False(t, cfg.UI.AutoOpen)
	assert.Equal(t, []string{"*"}, cfg.UI.CORSOrigins)
	assert.Equal(t, "SpaceX Launch Records Dashboard", cfg.Dashboard.Title)
	assert.Len(t, cfg.Dashboard.Sites, 4)
	assert.Equal(t, 0.0, cfg.Dashboard.SliderStep)
	assert.Equal(t, 2500.0, cfg.Dashboard.MarkInterval)
	assert.False(t, cfg.Verbose)
	assert.Equal(t, "auto", cfg.OutputFormat)
}

func TestLoadConfig_Precedence(t *testing.T) {
	path := writeConfig(t, `
dataset:
  source: ./launches.csv
  engine: duckdb
  timeout: 5s
ui:
  port: 9000
  host: 0.0.0.0
dashboard:
  title: Launches
  sites: [KSC LC-39A]
  slider_step: 500
output: json
`)

	t.Run("file over defaults", func(t *testing.T) {
		cfg, err := LoadConfig(path, nil)
		require.NoError(t, err)

		assert.Equal(t, path, cfg.FileUsed)
		assert.Equal(t, "./launches.csv", cfg.Dataset.Source)
		assert.Equal(t, dataset.EngineDuckDB, cfg.Dataset.Engine)
		assert.Equal(t, 5*time.Second, cfg.Dataset.Timeout)
		assert.Equal(t, 9000, cfg.UI.Port)
		assert.Equal(t, "Launches", cfg.Dashboard.Title)
		assert.Equal(t, []string{"KSC LC-39A"}, cfg.Dashboard.Sites)
		assert.Equal(t, 500.0, cfg.Dashboard.SliderStep)
		assert.Equal(t, 2500.0, cfg.Dashboard.MarkInterval, "unset keys keep defaults")
		assert.Equal(t, "json", cfg.OutputFormat)
	})

	t.Run("env over file", func(t *testing.T) {
		t.Setenv("LAUNCHDASH_UI_PORT", "9100")
		t.Setenv("LAUNCHDASH_UI_CORS_ORIGINS", "https://a.example, https://b.example")
		t.Setenv("LAUNCHDASH_DASHBOARD_MARK_INTERVAL", "1000")
		t.Setenv("LAUNCHDASH_VERBOSE", "true")

		cfg, err := LoadConfig(path, nil)
		require.NoError(t, err)

		assert.Equal(t, 9100, cfg.UI.Port)
		assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.UI.CORSOrigins)
		assert.Equal(t, 1000.0, cfg.Dashboard.MarkInterval)
		assert.True(t, cfg.Verbose)
		assert.Equal(t, "0.0.0.0", cfg.UI.Host)
	})

	t.Run("flags over env", func(t *testing.T) {
		t.Setenv("LAUNCHDASH_UI_PORT", "9100")
		t.Setenv("LAUNCHDASH_DATASET_ENGINE", "csv")

		flags := testFlags(t, "--port", "9200", "--source", "https://example.com/launches.csv", "-o", "text")
		cfg, err := LoadConfig(path, flags)
		require.NoError(t, err)

		assert.Equal(t, 9200, cfg.UI.Port)
		assert.Equal(t, "https://example.com/launches.csv", cfg.Dataset.Source)
		assert.Equal(t, dataset.EngineCSV, cfg.Dataset.Engine)
		assert.Equal(t, "text", cfg.OutputFormat)
		assert.Equal(t, 5*time.Second, cfg.Dataset.Timeout, "unchanged flags do not override")
	})
}

func TestLoadConfig_DiscoversFileInWorkingDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "launchdash.yaml"), []byte("ui:\n  port: 8123\n"), 0600))
	t.Chdir(dir)

	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)
	assert.Equal(t, "launchdash.yaml", cfg.FileUsed)
	assert.Equal(t, 8123, cfg.UI.Port)
}

func TestLoadConfig_Errors(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		errSubstr string
	}{
		{"unknown engine", "dataset:\n  engine: sqlite\n", "dataset.engine"},
		{"bad port", "ui:\n  port: 70000\n", "ui.port"},
		{"negative step", "dashboard:\n  slider_step: -5\n", "dashboard.slider_step"},
		{"infinite mark interval", "dashboard:\n  mark_interval: .inf\n", "dashboard.mark_interval"},
		{"bad output", "output: yaml\n", "unknown output format"},
		{"malformed yaml", "ui: [port\n", "error reading config file"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tt.content), nil)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errSubstr)
		})
	}

	t.Run("missing explicit file", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"), nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "nope.yaml")
	})
}

func TestEnvKey(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"LAUNCHDASH_VERBOSE", "verbose"},
		{"LAUNCHDASH_OUTPUT", "output"},
		{"LAUNCHDASH_UI_PORT", "ui.port"},
		{"LAUNCHDASH_UI_AUTO_OPEN", "ui.auto_open"},
		{"LAUNCHDASH_DATASET_SOURCE", "dataset.source"},
		{"LAUNCHDASH_DASHBOARD_SLIDER_STEP", "dashboard.slider_step"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, envKey(tt.input))
		})
	}
}

func TestContextHelpers(t *testing.T) {
	ctx := context.Background()
	assert.Equal(t, Defaults(), FromContext(ctx))
	assert.NotNil(t, GetLogger(ctx))

	cfg := Defaults()
	cfg.UI.Port = 1
	assert.Same(t, cfg, FromContext(WithConfig(ctx, cfg)))

	logger := slog.New(slog.DiscardHandler)
	assert.Same(t, logger, GetLogger(context.WithValue(ctx, LoggerKey(), logger)))
}

func TestDashboardConfig_Shell(t *testing.T) {
	shell := DashboardConfig{Title: "T", Sites: []string{"A"}, SliderStep: 10, MarkInterval: 100}.Shell()
	assert.Equal(t, "T", shell.Title)
	assert.Equal(t, []string{"A"}, shell.Sites)
	assert.Equal(t, 10.0, shell.SliderStep)
	assert.Equal(t, 100.0, shell.MarkInterval)
}

func TestKeys_RoundTripThroughEnv(t *testing.T) {
	keys := Keys()
	require.NotEmpty(t, keys)
	assert.IsIncreasing(t, keys)

	for _, key := range keys {
		assert.Equal(t, key, envKey(EnvVar(key)), key)
		assert.NotNil(t, Default(key), key)
	}
	assert.Equal(t, "LAUNCHDASH_UI_CORS_ORIGINS", EnvVar("ui.cors_origins"))
	assert.Nil(t, Default("nope"))
}

func TestFlagKey(t *testing.T) {
	key, ok := FlagKey("open")
	assert.True(t, ok)
	assert.Equal(t, "ui.auto_open", key)

	for flag := range flagKeys {
		key, _ := FlagKey(flag)
		assert.Contains(t, Keys(), key, flag)
	}

	_, ok = FlagKey("config")
	assert.False(t, ok)
}
