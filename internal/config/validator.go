package config

import (
	"fmt"
	"time"
)

// Validate checks a loaded configuration for consistency.
func Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("nil config")
	}

	switch cfg.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level: unknown level %q", cfg.Log.Level)
	}
	switch cfg.Log.Format {
	case "auto", "text", "json":
	default:
		return fmt.Errorf("log.format: unknown format %q", cfg.Log.Format)
	}

	if cfg.Model.Model == "" {
		return fmt.Errorf("model.model: required")
	}
	if cfg.Model.Temperature < 0 || cfg.Model.Temperature > 2 {
		return fmt.Errorf("model.temperature: %v out of range [0,2]", cfg.Model.Temperature)
	}

	if cfg.Engine.MaxSteps <= 0 {
		return fmt.Errorf("engine.max_steps: must be positive, got %d", cfg.Engine.MaxSteps)
	}

	if cfg.Research.WebResults <= 0 {
		return fmt.Errorf("research.web_results: must be positive")
	}
	if cfg.Research.PaperResults <= 0 {
		return fmt.Errorf("research.paper_results: must be positive")
	}
	if _, err := cfg.LookupTimeout(); err != nil {
		return fmt.Errorf("research.lookup_timeout: %w", err)
	}

	if cfg.Output.Dir == "" {
		return fmt.Errorf("output.dir: required")
	}
	if cfg.Dataset.Path == "" {
		return fmt.Errorf("dataset.path: required")
	}
	if cfg.Server.Addr == "" {
		return fmt.Errorf("server.addr: required")
	}

	return nil
}

// LookupTimeout parses the configured secondary-lookup timeout.
func (c *Config) LookupTimeout() (time.Duration, error) {
	return time.ParseDuration(c.Research.LookupTimeout)
}
