package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"traxor/internal/keybind"
)

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "Check the configured keybinds",
	Long:  "Lists every action with its configured keys and how they parse. Exits with an error when a keybind does not parse.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ACTION\tKEYS\tCHORD")

		bad := 0
		for _, e := range cfg.Keybinds.Entries() {
			if e.Keys == "" {
				fmt.Fprintf(w, "%s\t\t(unbound)\n", e.Name)
				continue
			}
			chord, err := keybind.Parse(e.Keys)
			if err != nil {
				bad++
				fmt.Fprintf(w, "%s\t%q\terror: %v\n", e.Name, e.Keys, err)
				continue
			}
			fmt.Fprintf(w, "%s\t%q\t%s\n", e.Name, e.Keys, chord)
		}
		if err := w.Flush(); err != nil {
			return err
		}

		if bad > 0 {
			return fmt.Errorf("%d keybind(s) do not parse", bad)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(keysCmd)
}
