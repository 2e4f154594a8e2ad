package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/draftsmith-ai/draftsmith/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a commented default config file",
	RunE: func(cmd *cobra.Command, _ []string) error {
		path := cfgFile
		if path == "" {
			path = ".draftsmith.yaml"
		}
		if err := config.WriteDefaultFile(path); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
