package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-crossing/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Print the built-in configuration as YAML.

Save it to ~/.crossing/configs/crossing.yaml or ./configs/crossing.yaml
and edit the keys you want to change; missing keys keep their defaults.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		if _, err := cmd.OutOrStdout().Write(config.DefaultYAML()); err != nil {
			fail("%v", err)
		}
	},
}
