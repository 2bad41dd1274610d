package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable the CLI reads,
// e.g. CAREERFIT_LOG_LEVEL.
const EnvPrefix = "CAREERFIT"

// Output formats for the score command.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config holds all CLI configuration.
type Config struct {
	// Catalog is an optional path to a YAML question catalog. Empty means
	// the built-in catalog.
	Catalog string `mapstructure:"catalog"`

	// Format selects the report format: "text" or "json".
	Format string `mapstructure:"format"`

	// NoColor disables ANSI styling in text reports.
	NoColor bool `mapstructure:"no_color"`

	Log LogConfig `mapstructure:"log"`
}

// LogConfig configures the zap logger.
type LogConfig struct {
	Level  string `mapstructure:"level"`  // Default: "warn"
	Format string `mapstructure:"format"` // "console" or "json"
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Format: FormatText,
		Log: LogConfig{
			Level:  "warn",
			Format: "console",
		},
	}
}

// flagKeys maps command-line flag names to config keys.
var flagKeys = map[string]string{
	"catalog":    "catalog",
	"format":     "format",
	"no-color":   "no_color",
	"log-level":  "log.level",
	"log-format": "log.format",
}

// Load resolves configuration from, in decreasing priority, flags that were
// set, CAREERFIT_* environment variables, the config file and defaults.
// When path is empty, careerfit.yaml is looked up in the working directory
// and the user config directory; a missing file is not an error.
func Load(path string, flags *pflag.FlagSet) (Config, error) {
	v := viper.New()

	def := DefaultConfig()
	v.SetDefault("catalog", def.Catalog)
	v.SetDefault("format", def.Format)
	v.SetDefault("no_color", def.NoColor)
	v.SetDefault("log.level", def.Log.Level)
	v.SetDefault("log.format", def.Log.Format)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for name, key := range flagKeys {
			f := flags.Lookup(name)
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return Config{}, fmt.Errorf("bind flag %s: %w", name, err)
			}
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config file %s: %w", path, err)
		}
	} else {
		v.SetConfigName("careerfit")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, "careerfit"))
		}
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Config{}, fmt.Errorf("read config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Validate checks enumerated settings.
func (c Config) Validate() error {
	switch c.Format {
	case FormatText, FormatJSON:
	default:
		return fmt.Errorf("format must be %q or %q, got %q", FormatText, FormatJSON, c.Format)
	}
	switch c.Log.Format {
	case "console", "json":
	default:
		return fmt.Errorf("log.format must be \"console\" or \"json\", got %q", c.Log.Format)
	}
	return nil
}
