// Package cmd implements the draftsmith command tree.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/draftsmith-ai/draftsmith/internal/config"
	"github.com/draftsmith-ai/draftsmith/internal/logging"
)

var (
	cfgFile   string
	logLevel  string
	logFormat string

	// Version info - set via SetVersion()
	appVersion string
	appCommit  string
	appDate    string

	// Shared viper instance so flag bindings participate in config
	// precedence.
	v = viper.New()
)

var rootCmd = &cobra.Command{
	Use:   "draftsmith",
	Short: "LLM-driven content and SQL pipelines",
	Long: `draftsmith runs two small language-model pipelines: one that turns a
free-text request into a research-backed presentation, document, or
webpage, and one that answers natural-language questions against a
demo SQL dataset.

Running 'draftsmith' without arguments shows help.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintln(rootCmd.ErrOrStderr(), "Error:", err)
	}
	return err
}

// SetVersion injects build-time version information.
func SetVersion(version, commit, date string) {
	appVersion = version
	appCommit = commit
	appDate = date
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default: .draftsmith.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info",
		"log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "auto",
		"log format (auto, text, json)")

	_ = v.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = v.BindPFlag("log.format", rootCmd.PersistentFlags().Lookup("log-format"))
}

// loadConfig loads and validates configuration, then builds the logger
// it prescribes.
func loadConfig() (*config.Config, *logging.Logger, error) {
	loader := config.NewLoaderWithViper(v)
	if cfgFile != "" {
		loader = loader.WithConfigFile(cfgFile)
	}
	cfg, err := loader.Load()
	if err != nil {
		return nil, nil, err
	}
	if err := config.Validate(cfg); err != nil {
		return nil, nil, err
	}
	log := logging.New(logging.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
	})
	return cfg, log, nil
}
