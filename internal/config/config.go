// Package config defines draftsmith's configuration model and the
// viper-backed loader that fills it from flags, environment variables,
// config files, and defaults.
package config

// Config holds all application configuration.
type Config struct {
	Log      LogConfig      `mapstructure:"log" yaml:"log"`
	Model    ModelConfig    `mapstructure:"model" yaml:"model"`
	Engine   EngineConfig   `mapstructure:"engine" yaml:"engine"`
	Research ResearchConfig `mapstructure:"research" yaml:"research"`
	Output   OutputConfig   `mapstructure:"output" yaml:"output"`
	Dataset  DatasetConfig  `mapstructure:"dataset" yaml:"dataset"`
	Server   ServerConfig   `mapstructure:"server" yaml:"server"`
}

// LogConfig configures logging behavior.
type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// ModelConfig configures the language-model collaborator.
type ModelConfig struct {
	APIKey      string  `mapstructure:"api_key" yaml:"api_key"`
	Model       string  `mapstructure:"model" yaml:"model"`
	Temperature float64 `mapstructure:"temperature" yaml:"temperature"`
}

// EngineConfig configures the pipeline engine.
type EngineConfig struct {
	MaxSteps int `mapstructure:"max_steps" yaml:"max_steps"`
}

// ResearchConfig configures the research collaborators.
type ResearchConfig struct {
	WebResults    int    `mapstructure:"web_results" yaml:"web_results"`
	PaperResults  int    `mapstructure:"paper_results" yaml:"paper_results"`
	LookupTimeout string `mapstructure:"lookup_timeout" yaml:"lookup_timeout"`
	UserAgent     string `mapstructure:"user_agent" yaml:"user_agent"`
}

// OutputConfig configures where generated artifacts land.
type OutputConfig struct {
	Dir         string `mapstructure:"dir" yaml:"dir"`
	SummaryFile string `mapstructure:"summary_file" yaml:"summary_file"`
}

// DatasetConfig configures the SQL pipeline's dataset.
type DatasetConfig struct {
	Path string `mapstructure:"path" yaml:"path"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Addr           string   `mapstructure:"addr" yaml:"addr"`
	AllowedOrigins []string `mapstructure:"allowed_origins" yaml:"allowed_origins"`
}
