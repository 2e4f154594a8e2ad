package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Loader handles configuration loading from multiple sources.
type Loader struct {
	v          *viper.Viper
	configFile string
	envPrefix  string
}

// NewLoader creates a new configuration loader.
func NewLoader() *Loader {
	return &Loader{
		v:         viper.New(),
		envPrefix: "DRAFTSMITH",
	}
}

// NewLoaderWithViper creates a loader using an existing viper instance.
// This allows integration with CLI flag bindings.
func NewLoaderWithViper(v *viper.Viper) *Loader {
	return &Loader{
		v:         v,
		envPrefix: "DRAFTSMITH",
	}
}

// WithConfigFile sets an explicit config file path.
func (l *Loader) WithConfigFile(path string) *Loader {
	l.configFile = path
	return l
}

// Viper returns the underlying viper instance for flag binding.
func (l *Loader) Viper() *viper.Viper {
	return l.v
}

// Load loads configuration from all sources.
// Precedence (highest to lowest):
// 1. CLI flags (set via viper.BindPFlag)
// 2. Environment variables (DRAFTSMITH_*)
// 3. Project config (.draftsmith.yaml in current directory)
// 4. User config (~/.config/draftsmith/config.yaml)
// 5. Defaults
func (l *Loader) Load() (*Config, error) {
	l.setDefaults()

	l.v.SetEnvPrefix(l.envPrefix)
	l.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	l.v.AutomaticEnv()

	if l.configFile != "" {
		l.v.SetConfigFile(l.configFile)
	} else {
		l.v.SetConfigName(".draftsmith")
		l.v.SetConfigType("yaml")
		l.v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			l.v.AddConfigPath(filepath.Join(home, ".config", "draftsmith"))
		}
	}

	if err := l.v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	// The API key never belongs in a config file; the environment
	// variable is the expected source.
	if cfg.Model.APIKey == "" {
		cfg.Model.APIKey = os.Getenv("GEMINI_API_KEY")
	}

	return &cfg, nil
}

// setDefaults configures default values.
func (l *Loader) setDefaults() {
	l.v.SetDefault("log.level", "info")
	l.v.SetDefault("log.format", "auto")

	l.v.SetDefault("model.model", "gemini-2.5-flash")
	l.v.SetDefault("model.temperature", 0.7)

	l.v.SetDefault("engine.max_steps", 50)

	l.v.SetDefault("research.web_results", 3)
	l.v.SetDefault("research.paper_results", 2)
	l.v.SetDefault("research.lookup_timeout", "5s")
	l.v.SetDefault("research.user_agent", "draftsmith/1.0 (https://github.com/draftsmith-ai/draftsmith)")

	l.v.SetDefault("output.dir", ".")
	l.v.SetDefault("output.summary_file", "output.json")

	l.v.SetDefault("dataset.path", "students.db")

	l.v.SetDefault("server.addr", "127.0.0.1:8820")
	l.v.SetDefault("server.allowed_origins", []string{"http://localhost:5173"})
}

// ConfigFile returns the config file path if one was used.
func (l *Loader) ConfigFile() string {
	return l.v.ConfigFileUsed()
}
