// Package config provides 12-factor configuration for the classification
// engine. Values come from environment variables with sensible defaults;
// the engine works untuned out of the box.
package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all engine configuration.
type Config struct {
	Logging LogConfig
	Metrics MetricsConfig
	Catalog CatalogConfig
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"PARTCLASS_LOG_LEVEL" default:"info"`
	Development bool   `envconfig:"PARTCLASS_LOG_DEV" default:"false"`
}

// MetricsConfig holds Prometheus metrics configuration.
type MetricsConfig struct {
	Enabled   bool   `envconfig:"PARTCLASS_METRICS_ENABLED" default:"false"`
	Namespace string `envconfig:"PARTCLASS_METRICS_NAMESPACE" default:"partclass"`
}

// CatalogConfig holds catalog assembly configuration.
type CatalogConfig struct {
	// DisabledFamilies lists built-in family names to skip at catalog
	// build time (comma-separated in the environment).
	DisabledFamilies []string `envconfig:"PARTCLASS_DISABLED_FAMILIES"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}

// LoadOrDefault loads configuration from the environment or falls back
// to defaults.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		Logging: LogConfig{Level: "info"},
		Metrics: MetricsConfig{Namespace: "partclass"},
	}
}
