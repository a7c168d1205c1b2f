package cmd

import (
	"github.com/spf13/cobra"
)

// unitsCmd represents the units command.
var unitsCmd = &cobra.Command{
	Use:   "units",
	Short: "List recognized units and their synonyms",
	Long: `List the canonical units, how many days each one counts for when phrases
mix units, and every word recognized for it, including synonyms added in
the config file.

Examples:
  humanspan units
  humanspan units --format json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return ctx.PrintUnits()
	},
}

func init() {
	rootCmd.AddCommand(unitsCmd)
}
