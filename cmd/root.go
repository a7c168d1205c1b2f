// Package cmd provides the CLI commands for humanspan.
//
// This software is a derivative work based on Zeit (https://github.com/mrusme/zeit)
// Original work copyright (c) マリウス (mrusme)
// Modifications copyright (c) Manav Panchal
//
// Licensed under the SEGV License, Version 1.0
// See LICENSE file for full license text.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/manav03panchal/humanspan/internal/runtime"
)

// Version information (set at build time via ldflags).
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// Global flags.
var (
	flagFormat string
	flagColor  string
	flagDebug  bool
	flagConfig string
)

// ctx is the shared runtime context.
var ctx *runtime.Context

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "humanspan",
	Short: "Normalize free-text durations into a quantity and a unit",
	Long: `Humanspan reads durations the way people write them in free-text fields
and turns them into a number and a canonical unit (hour, day, week, month
or year). Ranges are averaged and mixed units are converted to days.

Examples:
  humanspan parse 2 to 4 days
  humanspan parse "one and a half weeks"
  humanspan parse --explain "1 year 6 months"
  humanspan batch durations.txt --format json
  cat durations.txt | humanspan batch`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for completion and help commands
		if cmd.Name() == "completion" || cmd.Name() == "help" || cmd.Name() == "version" {
			return nil
		}

		opts := runtime.DefaultOptions()
		opts.ConfigPath = flagConfig
		opts.Debug = flagDebug
		opts.Writer = cmd.OutOrStdout()
		opts.LogOutput = cmd.ErrOrStderr()
		if cmd.Flags().Changed("format") {
			opts.Format = flagFormat
		}
		if cmd.Flags().Changed("color") {
			opts.ColorMode = flagColor
		}

		var err error
		ctx, err = runtime.New(opts)
		return err
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		printError(err)
	}
	return err
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVarP(&flagFormat, "format", "f", "cli",
		"Output format: cli, json, plain")
	rootCmd.PersistentFlags().StringVar(&flagColor, "color", "auto",
		"Color output: auto, always, never")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false,
		"Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "",
		"Config file (default $XDG_CONFIG_HOME/humanspan/config.yaml)")

	// Add commands
	rootCmd.AddCommand(versionCmd)
}

// versionCmd shows version information.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "humanspan %s\n", Version)
		fmt.Fprintf(out, "  commit: %s\n", Commit)
		fmt.Fprintf(out, "  built: %s\n", BuildTime)
		fmt.Fprintln(out)
		fmt.Fprintln(out, "humanspan is a free-text duration normalizer.")
		fmt.Fprintln(out, "Portions derive from Zeit (https://github.com/mrusme/zeit),")
		fmt.Fprintln(out, "used under the SEGV License v1.0.")
	},
}

// printError reports err on stderr, or as JSON on stdout when JSON output is
// active. Errors raised before the runtime context exists are plain text.
func printError(err error) {
	if ctx != nil {
		ctx.PrintError(rootCmd.ErrOrStderr(), err)
		return
	}
	fmt.Fprintln(rootCmd.ErrOrStderr(), "Error: "+runtime.FormatError(err))
}
