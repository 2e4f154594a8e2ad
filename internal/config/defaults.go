package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Log: LogConfig{
			Level:  "info",
			Format: "auto",
		},
		Model: ModelConfig{
			Model:       "gemini-2.5-flash",
			Temperature: 0.7,
		},
		Engine: EngineConfig{
			MaxSteps: 50,
		},
		Research: ResearchConfig{
			WebResults:    3,
			PaperResults:  2,
			LookupTimeout: "5s",
			UserAgent:     "draftsmith/1.0 (https://github.com/draftsmith-ai/draftsmith)",
		},
		Output: OutputConfig{
			Dir:         ".",
			SummaryFile: "output.json",
		},
		Dataset: DatasetConfig{
			Path: "students.db",
		},
		Server: ServerConfig{
			Addr:           "127.0.0.1:8820",
			AllowedOrigins: []string{"http://localhost:5173"},
		},
	}
}

// fileConfig mirrors Config with yaml tags for scaffolding.
type fileConfig struct {
	Log      LogConfig      `yaml:"log"`
	Model    ModelConfig    `yaml:"model"`
	Engine   EngineConfig   `yaml:"engine"`
	Research ResearchConfig `yaml:"research"`
	Output   OutputConfig   `yaml:"output"`
	Dataset  DatasetConfig  `yaml:"dataset"`
	Server   ServerConfig   `yaml:"server"`
}

// WriteDefaultFile scaffolds a config file with the built-in defaults.
// Refuses to overwrite an existing file.
func WriteDefaultFile(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists: %s", path)
	}

	cfg := Default()
	data, err := yaml.Marshal(fileConfig{
		Log:      cfg.Log,
		Model:    cfg.Model,
		Engine:   cfg.Engine,
		Research: cfg.Research,
		Output:   cfg.Output,
		Dataset:  cfg.Dataset,
		Server:   cfg.Server,
	})
	if err != nil {
		return fmt.Errorf("marshaling defaults: %w", err)
	}

	header := []byte("# draftsmith configuration. Values here are overridden by\n# DRAFTSMITH_* environment variables and command-line flags.\n")
	return os.WriteFile(path, append(header, data...), 0o644)
}
