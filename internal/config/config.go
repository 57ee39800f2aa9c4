// Package config loads process configuration from the environment.
package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all demo configuration.
type Config struct {
	Logging  LogConfig
	Template TemplateConfig
	Remote   RemoteConfig
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"LOG_LEVEL" default:"info"`
	Development bool   `envconfig:"LOG_DEV" default:"false"`
}

// TemplateConfig holds the template substitution values applied on load.
type TemplateConfig struct {
	Header string `envconfig:"EDITOR_HEADER" default:""`
	Footer string `envconfig:"EDITOR_FOOTER" default:""`
}

// RemoteConfig points at an out-of-process renderer. Empty URL selects
// the in-process document.
type RemoteConfig struct {
	URL string `envconfig:"RENDERER_URL" default:""`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}

// LoadOrDefault loads configuration from the environment or falls back to
// defaults when the environment is malformed.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		return &Config{
			Logging: LogConfig{Level: "info"},
		}
	}
	return cfg
}
