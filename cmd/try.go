package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/manav03panchal/humanspan/internal/errors"
	"github.com/manav03panchal/humanspan/internal/output"
	"github.com/manav03panchal/humanspan/internal/tui"
)

// tryCmd represents the try command.
var tryCmd = &cobra.Command{
	Use:   "try",
	Short: "Type durations and watch them parse live",
	Long: `Open an interactive prompt that parses the text as you type and shows
the result, the normalized text and the rule that matched.

Press enter to keep a line in the history, ctrl+u to clear it and esc to
quit. Kept lines are printed as a batch when the session ends.`,
	Args: cobra.NoArgs,
	RunE: runTry,
}

func init() {
	rootCmd.AddCommand(tryCmd)
}

func runTry(cmd *cobra.Command, args []string) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return errors.NewUserError("try needs an interactive terminal",
			"Use 'humanspan batch' to parse piped input.")
	}

	history, err := tui.Run(tui.TryConfig{
		Parser:        ctx.Parser,
		MaxInputBytes: ctx.Config.Input.MaxBytes,
	})
	if err != nil {
		return errors.NewSystemErrorWithOp("run try", "terminal UI failed", err)
	}
	if len(history) == 0 {
		return nil
	}

	items := make([]output.BatchItem, len(history))
	for i, h := range history {
		items[i] = output.BatchItem{Line: i + 1, Input: h.Input, Result: h.Result}
	}
	return ctx.PrintBatch("", items)
}
