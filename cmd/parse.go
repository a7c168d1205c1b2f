package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/manav03panchal/humanspan/internal/logging"
	"github.com/manav03panchal/humanspan/internal/parser"
	"github.com/manav03panchal/humanspan/internal/validate"
)

// Parse command flags.
var (
	parseFlagStrict  bool
	parseFlagExplain bool
)

// parseCmd represents the parse command.
var parseCmd = &cobra.Command{
	Use:     "parse TEXT...",
	Aliases: []string{"p"},
	Short:   "Parse one free-text duration",
	Long: `Parse one free-text duration. All arguments are joined with spaces, so
quoting is optional.

The result is a quantity and one of hour, day, week, month or year. Ranges
are averaged ("2 to 4 days" is 3 day) and phrases with several units are
converted to days ("1 year 6 months" is 545 day). Text that does not
describe a duration is reported as unidentified.

Examples:
  humanspan parse 2 to 4 days
  humanspan parse one and a half weeks
  humanspan parse --explain 1 day to 2 weeks
  humanspan parse --strict "a few weeks"   # exits 1`,
	Args:              cobra.MinimumNArgs(1),
	ValidArgsFunction: completeUnits,
	RunE:              runParse,
}

func init() {
	parseCmd.Flags().BoolVarP(&parseFlagStrict, "strict", "s", false, "Fail when no duration is recognized")
	parseCmd.Flags().BoolVarP(&parseFlagExplain, "explain", "e", false, "Show how the text was parsed")

	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	text, err := ctx.ValidateInput(strings.Join(args, " "))
	if err != nil {
		return err
	}
	if err := validate.NonEmpty("text", text); err != nil {
		return err
	}

	tr := ctx.Parser.Explain(text)
	ctx.Logger.Info("parsed",
		logging.KeyOperation, "parse",
		logging.KeyInput, logging.Clip(text),
		logging.KeyUnit, tr.Result.UnitLabel(),
	)

	if parseFlagStrict && !tr.Result.Identified() {
		if parseFlagExplain {
			if err := ctx.PrintTrace(tr); err != nil {
				return err
			}
		}
		return parser.NewDurationError(text)
	}

	if parseFlagExplain {
		return ctx.PrintTrace(tr)
	}
	return ctx.PrintResult(text, tr.Result)
}

// completeUnits offers unit words once the user has typed a quantity.
func completeUnits(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) == 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	table := parser.DefaultUnitTable()
	if ctx != nil {
		table = ctx.Parser.Units()
	}

	var completions []string
	for _, u := range parser.Units {
		for _, s := range table.Synonyms(u) {
			if len(s) > 1 && strings.HasPrefix(s, toComplete) {
				completions = append(completions, s+"\t"+u.String())
			}
		}
	}
	return completions, cobra.ShellCompDirectiveNoFileComp
}
