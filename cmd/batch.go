package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/manav03panchal/humanspan/internal/errors"
	"github.com/manav03panchal/humanspan/internal/logging"
	"github.com/manav03panchal/humanspan/internal/output"
)

// Batch command flags.
var (
	batchFlagStrict bool
)

// batchCmd represents the batch command.
var batchCmd = &cobra.Command{
	Use:     "batch [FILE]",
	Aliases: []string{"b"},
	Short:   "Parse one duration per line from a file or stdin",
	Long: `Parse one duration per line. Lines are read from FILE, or from stdin when
FILE is omitted or "-". Blank lines and lines starting with '#' are skipped.

Output is a table (cli), one JSON document with a summary (json) or
tab-separated "line, input, quantity, unit" rows (plain).

Examples:
  humanspan batch estimates.txt
  humanspan batch estimates.txt --format json
  cut -f3 export.tsv | humanspan batch --format plain`,
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: completeBatchArgs,
	RunE:              runBatch,
}

func init() {
	batchCmd.Flags().BoolVarP(&batchFlagStrict, "strict", "s", false, "Exit non-zero when any line is unidentified or rejected")

	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, args []string) error {
	in, closeFn, err := openBatchInput(cmd, args)
	if err != nil {
		return err
	}
	defer closeFn()

	source := "stdin"
	if len(args) == 1 && args[0] != "-" {
		source = args[0]
	}
	ctx.Debugf("reading batch input from %s", source)

	runCtx := logging.NewRunContext(cmd.Context())
	runID := logging.RunIDFromContext(runCtx)
	logging.InfoContext(runCtx, "batch started", logging.KeyOperation, "batch")

	items, err := ctx.ParseBatch(runCtx, in)
	if err != nil {
		return err
	}

	if err := ctx.PrintBatch(runID, items); err != nil {
		return err
	}

	if batchFlagStrict {
		if s := output.Summarize(items); s.Identified < s.Total {
			return errors.Wrapf(errors.ErrUnidentified, "%d of %d lines", s.Total-s.Identified, s.Total)
		}
	}
	return nil
}

// openBatchInput returns the reader for args and a func that releases it.
func openBatchInput(cmd *cobra.Command, args []string) (io.Reader, func(), error) {
	if len(args) == 1 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			if os.IsNotExist(err) {
				return nil, nil, errors.NewUserErrorWithField("file", args[0], "input file not found",
					"Check the path, or pipe lines on stdin.")
			}
			return nil, nil, errors.NewSystemErrorWithOp("open input", "cannot open "+args[0], err)
		}
		return f, func() { _ = f.Close() }, nil
	}

	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fmt.Fprintln(cmd.ErrOrStderr(), "Reading durations from the terminal, one per line. Press Ctrl+D to finish.")
	}
	return in, func() {}, nil
}

// completeBatchArgs completes the optional FILE argument with paths.
func completeBatchArgs(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return nil, cobra.ShellCompDirectiveDefault
}
