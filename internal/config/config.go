// Package config loads diabot settings from the environment.
package config

import (
	"fmt"

	"github.com/jwulff/diabot-go/internal/bloodsugar"
	"github.com/kelseyhightower/envconfig"
)

// Prefix is prepended to every environment variable name.
const Prefix = "diabot"

// Config holds runtime settings.
type Config struct {
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info"`
	DefaultUnit string `envconfig:"DEFAULT_UNIT"`
}

// Load reads DIABOT_* environment variables.
func Load() (Config, error) {
	cfg := Config{}
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return Config{}, err
	}
	if cfg.DefaultUnit != "" {
		if _, err := bloodsugar.ParseUnit(cfg.DefaultUnit); err != nil {
			return Config{}, fmt.Errorf("invalid DIABOT_DEFAULT_UNIT: %w", err)
		}
	}
	return cfg, nil
}
