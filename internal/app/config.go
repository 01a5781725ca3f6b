package app

import (
	"errors"
	"fmt"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	EventsPath string // hcl, yaml or json files
	// Width overrides any width declared in the event files. Zero defers to
	// the files, then to model.DefaultWidth.
	Width        int
	OutputFormat string

	LogFormat string
	LogLevel  string

	PublishURL       string
	PublishNamespace string
}

// NewConfig validates cfg and returns a copy of it.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.EventsPath == "" {
		return nil, errors.New("EventsPath is a required configuration field and cannot be empty")
	}
	if cfg.Width < 0 {
		return nil, fmt.Errorf("width must not be negative, got %d", cfg.Width)
	}
	if cfg.OutputFormat == "" {
		cfg.OutputFormat = "json"
	}
	return &cfg, nil
}
