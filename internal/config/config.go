package config

import (
	"fmt"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"

	"github.com/papapumpkin/tempo/internal/span"
)

// CheckConfig holds defaults for the check command.
type CheckConfig struct {
	// Keys are the dotted document keys validated when none are given on
	// the command line.
	Keys []string `mapstructure:"keys"`
}

// WatchConfig holds settings for check --watch.
type WatchConfig struct {
	// Debounce is how long a file must stay quiet before it is re-checked.
	// It is written in duration notation, e.g. "250MS".
	Debounce span.Duration `mapstructure:"debounce"`
}

// Config holds all runtime configuration for tempo.
// Values are populated from .tempo.toml, TEMPO_* env vars, and CLI flags.
type Config struct {
	Verbose bool        `mapstructure:"verbose"`
	NoColor bool        `mapstructure:"no_color"`
	Check   CheckConfig `mapstructure:"check"`
	Watch   WatchConfig `mapstructure:"watch"`
}

// Load reads configuration from viper, applying built-in defaults for any
// values not set by config file, environment, or flags. Duration-valued keys
// are decoded from duration notation.
func Load() (Config, error) {
	viper.SetDefault("verbose", false)
	viper.SetDefault("no_color", false)
	viper.SetDefault("check.keys", []string{})
	viper.SetDefault("watch.debounce", "100MS")

	var cfg Config
	hook := mapstructure.ComposeDecodeHookFunc(
		span.DecodeHook(),
		mapstructure.StringToSliceHookFunc(","),
	)
	if err := viper.Unmarshal(&cfg, viper.DecodeHook(hook)); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	return cfg, nil
}
