package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/manav03panchal/humanspan/internal/config"
)

// configCmd represents the config command.
var configCmd = &cobra.Command{
	Use:     "config",
	Aliases: []string{"cfg"},
	Short:   "Show the effective configuration",
	Long: `Print the configuration in effect after applying defaults, the config
file and HUMANSPAN_* environment variables, as YAML.

Examples:
  humanspan config
  humanspan config > ~/.config/humanspan/config.yaml
  humanspan config path`,
	Args: cobra.NoArgs,
	RunE: runConfigShow,
}

// configPathCmd prints where the config file is read from.
var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file location",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		path := ctx.Config.Path()
		if path == "" {
			path = config.DefaultPath()
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
	},
}

func init() {
	configCmd.AddCommand(configPathCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	if ctx.IsJSON() {
		return ctx.Formatter.JSON(ctx.Config)
	}
	data, err := ctx.Config.Marshal()
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
