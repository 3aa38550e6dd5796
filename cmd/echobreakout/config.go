package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/echo-breakout/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect the configuration",
}

var configDumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Print the default configuration as YAML",
	Long: `Print the embedded default configuration. Save it to
~/.arcade/configs/breakout.yaml or pass it with --config to customize the
game; a file only needs the keys it changes.`,
	Args: cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		os.Stdout.Write(config.DefaultYAML())
	},
}

var configProfilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "List the accessibility profiles",
	Args:  cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		for _, p := range config.Profiles() {
			cfg := config.DefaultBreakoutConfig()
			config.ApplyProfile(&cfg, p)
			fmt.Printf("%-12s audio=%-5t low-vision=%t\n", p, cfg.Accessibility.Audio, cfg.Accessibility.VisuallyImpaired)
		}
	},
}

func init() {
	configCmd.AddCommand(configDumpCmd)
	configCmd.AddCommand(configProfilesCmd)
}
