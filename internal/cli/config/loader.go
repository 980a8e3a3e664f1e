package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"slices"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// loggerKey is used to store the logger in context.
type loggerKey struct{}

// configKey is used to store the loaded config in context.
type configKey struct{}

// sections are the top-level config tables. Environment variables address
// their keys with a single underscore, e.g. LAUNCHDASH_UI_PORT.
var sections = []string{"dataset", "ui", "dashboard"}

// listKeys hold comma-separated lists when set from the environment.
var listKeys = map[string]bool{
	"ui.cors_origins": true,
	"dashboard.sites": true,
}

// flagKeys maps persistent flag names to config keys. Flags not listed here
// are not configuration.
var flagKeys = map[string]string{
	"source":  "dataset.source",
	"engine":  "dataset.engine",
	"timeout": "dataset.timeout",
	"host":    "ui.host",
	"port":    "ui.port",
	"open":    "ui.auto_open",
	"verbose": "verbose",
	"output":  "output",
}

// findConfigFile finds the config file to use.
// Priority: explicit path > launchdash.yaml > launchdash.yml
func findConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	for _, name := range []string{DefaultConfigFile, "launchdash.yml"} {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}
	return ""
}

// envKey maps LAUNCHDASH_UI_CORS_ORIGINS to ui.cors_origins.
func envKey(name string) string {
	key := strings.ToLower(strings.TrimPrefix(name, EnvPrefix))
	for _, section := range sections {
		if rest, ok := strings.CutPrefix(key, section+"_"); ok {
			return section + "." + rest
		}
	}
	return key
}

func defaultsMap() map[string]any {
	d := Defaults()
	return map[string]any{
		"dataset.source":          d.Dataset.Source,
		"dataset.engine":          d.Dataset.Engine,
		"dataset.timeout":         d.Dataset.Timeout.String(),
		"ui.host":                 d.UI.Host,
		"ui.port":                 d.UI.Port,
		"ui.auto_open":            d.UI.AutoOpen,
		"ui.cors_origins":         d.UI.CORSOrigins,
		"dashboard.title":         d.Dashboard.Title,
		"dashboard.sites":         d.Dashboard.Sites,
		"dashboard.slider_step":   d.Dashboard.SliderStep,
		"dashboard.mark_interval": d.Dashboard.MarkInterval,
		"verbose":                 d.Verbose,
		"output":                  d.OutputFormat,
	}
}

// Keys returns every configuration key in sorted order.
func Keys() []string {
	keys := make([]string, 0, len(defaultsMap()))
	for k := range defaultsMap() {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Default returns the built-in value of key, or nil if key is unknown.
func Default(key string) any {
	return defaultsMap()[key]
}

// FlagKey returns the configuration key a command-line flag sets.
func FlagKey(flag string) (string, bool) {
	key, ok := flagKeys[flag]
	return key, ok
}

// EnvVar returns the environment variable that sets key.
func EnvVar(key string) string {
	return EnvPrefix + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
}

// Loaded is a resolved configuration and where it came from.
type Loaded struct {
	*Config
	// FileUsed is the config file that was read, if any.
	FileUsed string
}

// LoadConfig loads configuration from file, environment variables, and flags.
// Precedence (highest to lowest): flags > env vars > config file > defaults
func LoadConfig(cfgFile string, flags *pflag.FlagSet) (*Loaded, error) {
	k := koanf.New(".")

	// 1. Load defaults
	if err := k.Load(confmap.Provider(defaultsMap(), "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2. Find and load config file
	fileUsed := findConfigFile(cfgFile)
	if fileUsed != "" {
		if err := k.Load(file.Provider(fileUsed), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", fileUsed, err)
		}
	}

	// 3. Load environment variables (LAUNCHDASH_ prefix)
	if err := k.Load(env.ProviderWithValue(EnvPrefix, ".", func(name, value string) (string, any) {
		key := envKey(name)
		if listKeys[key] {
			parts := strings.Split(value, ",")
			for i := range parts {
				parts[i] = strings.TrimSpace(parts[i])
			}
			return key, parts
		}
		return key, value
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	// 4. Load flags (highest priority - overrides env vars and config file)
	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, any) {
			// Only load flags that were explicitly set
			if !f.Changed {
				return "", nil
			}
			key, ok := flagKeys[f.Name]
			if !ok {
				return "", nil
			}
			return key, posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	// 5. Unmarshal into Config struct
	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	cfg.Dataset.Engine = strings.ToLower(strings.TrimSpace(cfg.Dataset.Engine))

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &Loaded{Config: &cfg, FileUsed: fileUsed}, nil
}

// WithConfig stores cfg in ctx.
func WithConfig(ctx context.Context, cfg *Config) context.Context {
	return context.WithValue(ctx, configKey{}, cfg)
}

// FromContext retrieves the config stored by WithConfig, or the defaults.
func FromContext(ctx context.Context) *Config {
	if c, ok := ctx.Value(configKey{}).(*Config); ok {
		return c
	}
	return Defaults()
}

// LoggerKey returns the context key used for storing the logger.
// This allows the commands package to retrieve the logger from context
// without creating an import cycle with the cli package.
func LoggerKey() any {
	return loggerKey{}
}

// GetLogger retrieves the logger from the command context.
func GetLogger(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
		return l
	}
	// Return discard logger as safe fallback
	return slog.New(slog.DiscardHandler)
}
