// Package cmd holds the traxor command line.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"traxor/internal/config"
)

const (
	flagConfig = "config"
	flagURL    = "url"
)

var rootCmd = &cobra.Command{
	Use:           "traxor",
	Short:         "Terminal client for transmission-daemon",
	Long:          "traxor lists the torrents of a transmission daemon and drives it with configurable keybinds.",
	SilenceUsage:  true,
	SilenceErrors: true,
	Args:          cobra.NoArgs,
	RunE:          runTUI,
}

func init() {
	rootCmd.PersistentFlags().String(flagConfig, "", "user config file (default $XDG_CONFIG_HOME/traxor/config.toml)")
	rootCmd.PersistentFlags().String(flagURL, "", "transmission RPC url, overrides the config")
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// loadConfig loads the effective config and the paths it was read from
func loadConfig(cmd *cobra.Command) (*config.Config, []string, error) {
	userPath, _ := cmd.Flags().GetString(flagConfig)
	paths, err := config.Paths(userPath)
	if err != nil {
		return nil, nil, fmt.Errorf("locating config: %w", err)
	}
	cfg, err := config.LoadFiles(paths...)
	if err != nil {
		return nil, nil, err
	}

	if url, _ := cmd.Flags().GetString(flagURL); url != "" {
		cfg.RPC.URL = url
		if err := cfg.Validate(); err != nil {
			return nil, nil, err
		}
	}
	return cfg, paths, nil
}
