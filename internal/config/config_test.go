package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoader_Defaults(t *testing.T) {
	cfg, err := NewLoader().Load()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "gemini-2.5-flash", cfg.Model.Model)
	assert.Equal(t, 50, cfg.Engine.MaxSteps)
	assert.Equal(t, 3, cfg.Research.WebResults)
	assert.Equal(t, 2, cfg.Research.PaperResults)
	assert.Equal(t, "students.db", cfg.Dataset.Path)

	require.NoError(t, Validate(cfg))
}

func TestLoader_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := []byte("engine:\n  max_steps: 12\nmodel:\n  model: gemini-2.5-pro\n")
	require.NoError(t, os.WriteFile(path, content, 0o644))

	cfg, err := NewLoader().WithConfigFile(path).Load()
	require.NoError(t, err)
	assert.Equal(t, 12, cfg.Engine.MaxSteps)
	assert.Equal(t, "gemini-2.5-pro", cfg.Model.Model)
	// Untouched keys keep defaults.
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoader_EnvOverride(t *testing.T) {
	t.Setenv("DRAFTSMITH_ENGINE_MAX_STEPS", "9")
	cfg, err := NewLoader().Load()
	require.NoError(t, err)
	assert.Equal(t, 9, cfg.Engine.MaxSteps)
}

func TestLoader_APIKeyFromEnv(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "test-key")
	cfg, err := NewLoader().Load()
	require.NoError(t, err)
	assert.Equal(t, "test-key", cfg.Model.APIKey)
}

func TestValidate_Rejections(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"bad log level", func(c *Config) { c.Log.Level = "verbose" }},
		{"bad log format", func(c *Config) { c.Log.Format = "xml" }},
		{"empty model", func(c *Config) { c.Model.Model = "" }},
		{"temperature out of range", func(c *Config) { c.Model.Temperature = 3 }},
		{"zero max steps", func(c *Config) { c.Engine.MaxSteps = 0 }},
		{"bad lookup timeout", func(c *Config) { c.Research.LookupTimeout = "soon" }},
		{"empty output dir", func(c *Config) { c.Output.Dir = "" }},
		{"empty dataset path", func(c *Config) { c.Dataset.Path = "" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(cfg)
			assert.Error(t, Validate(cfg))
		})
	}
}

func TestWriteDefaultFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".draftsmith.yaml")
	require.NoError(t, WriteDefaultFile(path))

	cfg, err := NewLoader().WithConfigFile(path).Load()
	require.NoError(t, err)
	require.NoError(t, Validate(cfg))

	// Second write must refuse to clobber.
	assert.Error(t, WriteDefaultFile(path))
}
