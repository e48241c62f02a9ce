package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/viper"
)

// Config holds every knob the engine recognizes (spec.md §9). Fields
// left unset by both the config file and environment keep Default's
// values.
type Config struct {
	AlarmIndex string `mapstructure:"alarm-index"`
	LogIndex   string `mapstructure:"log-index"`

	MaxTraversalDepth int `mapstructure:"max-traversal-depth"`
	MaxNodeCount      int `mapstructure:"max-node-count"`
	BatchQuerySize    int `mapstructure:"batch-query-size"`
	MaxQuerySize      int `mapstructure:"max-query-size"`

	// Ambient knobs not named by spec.md §9 but needed to construct the
	// logger and query client the named settings feed into.
	LogDev         bool    `mapstructure:"log-dev"`
	QueryRateLimit float64 `mapstructure:"query-rate-limit"`
	QueryRateBurst int     `mapstructure:"query-rate-burst"`
}

// Default returns the recognized-key defaults from spec.md §9.
func Default() *Config {
	return &Config{
		AlarmIndex:        "alarms",
		LogIndex:          "logs",
		MaxTraversalDepth: 50,
		MaxNodeCount:      400,
		BatchQuerySize:    100,
		MaxQuerySize:      10000,
		LogDev:            false,
		QueryRateLimit:    0,
		QueryRateBurst:    1,
	}
}

// Load reads path (if non-empty) plus CHAINCTL_-prefixed environment
// variables over Default's values. A missing config file is not an
// error; unrecognized keys in the file are ignored (viper unmarshals
// only into Config's tagged fields).
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")

	cfg := Default()
	v.SetDefault("alarm-index", cfg.AlarmIndex)
	v.SetDefault("log-index", cfg.LogIndex)
	v.SetDefault("max-traversal-depth", cfg.MaxTraversalDepth)
	v.SetDefault("max-node-count", cfg.MaxNodeCount)
	v.SetDefault("batch-query-size", cfg.BatchQuerySize)
	v.SetDefault("max-query-size", cfg.MaxQuerySize)
	v.SetDefault("log-dev", cfg.LogDev)
	v.SetDefault("query-rate-limit", cfg.QueryRateLimit)
	v.SetDefault("query-rate-burst", cfg.QueryRateBurst)

	v.SetEnvPrefix("CHAINCTL")
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok && !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("config: read %s: %w", path, err)
			}
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}

	return cfg, nil
}
