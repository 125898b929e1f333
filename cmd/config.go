package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"traxor/internal/config"
)

const flagWrite = "write"

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long:  "Prints the configuration after merging the built-in defaults, the system file and the user file. With --write it is saved to the user file instead.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, paths, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		if write, _ := cmd.Flags().GetBool(flagWrite); write {
			path := paths[len(paths)-1]
			if err := config.Save(path, cfg); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return nil
		}

		data, err := config.Marshal(cfg)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

func init() {
	configCmd.Flags().Bool(flagWrite, false, "write the effective config to the user config file")
	rootCmd.AddCommand(configCmd)
}
