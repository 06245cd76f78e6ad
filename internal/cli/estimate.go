package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/evergrid/quoteflow/internal/contract"
	"github.com/evergrid/quoteflow/internal/quote"
	"github.com/evergrid/quoteflow/internal/registry"
	"github.com/evergrid/quoteflow/internal/templates"
)

// newEstimateCmd builds the Layer A command: answers file in, audited
// load profile out.
func newEstimateCmd() *cobra.Command {
	var (
		industry    string
		answersPath string
		calculator  string
		trace       bool
		summary     bool
	)

	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Compute a load profile from questionnaire answers",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, ok := templates.Resolve(industry); !ok {
				return fmt.Errorf("%w: %q (see 'quoteflow industries')", contract.ErrUnknownIndustry, industry)
			}
			if calculator != "" {
				if _, ok := registry.Get(calculator); !ok {
					return fmt.Errorf("%w: %q", contract.ErrUnknownCalculator, calculator)
				}
			}

			answers := map[string]any{}
			if answersPath != "" {
				loaded, err := loadAnswers(answersPath)
				if err != nil {
					return err
				}
				answers = loaded
			}

			res := quote.RunContractQuote(cmd.Context(), quote.Params{
				Industry:     industry,
				Answers:      answers,
				CalculatorID: calculator,
			})

			logger.Info().
				Str("industry", industry).
				Bool("provisional", res.IsProvisional).
				Msg("estimate complete")

			if summary {
				printEstimateSummary(cmd, res)
				return nil
			}
			if trace {
				return printJSON(cmd.OutOrStdout(), quote.NewTraceBundle(res))
			}
			return printJSON(cmd.OutOrStdout(), res)
		},
	}

	cmd.Flags().StringVar(&industry, "industry", "", "industry slug (see 'quoteflow industries')")
	cmd.Flags().StringVar(&answersPath, "answers", "", "yaml file of questionnaire answers")
	cmd.Flags().StringVar(&calculator, "calculator", "", "pin a specific calculator generation id")
	cmd.Flags().BoolVar(&trace, "trace", false, "emit the audit trace bundle instead of the result")
	cmd.Flags().BoolVar(&summary, "summary", false, "print a short human-readable summary")
	_ = cmd.MarkFlagRequired("industry")

	return cmd
}

func printEstimateSummary(cmd *cobra.Command, res quote.ContractQuoteResult) {
	out := cmd.OutOrStdout()
	lp := res.LoadProfile

	cmd.Println("Industry:   " + res.Industry)
	cmd.Println("Calculator: " + res.Template.Calculator)
	cmd.Println("Base load:  " + formatKW(lp.BaseLoadKW))
	cmd.Println("Peak load:  " + formatKW(lp.PeakLoadKW))
	_, _ = printer.Fprintf(out, "Energy:     %.0f kWh/day\n", lp.EnergyKWhPerDay)

	if len(res.Warnings) > 0 {
		cmd.Println("Warnings:")
		for _, w := range res.Warnings {
			cmd.Println("  - " + w)
		}
	}
	if res.IsProvisional {
		cmd.Println("Result is PROVISIONAL; verify inputs before quoting.")
	}
}
