package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/evergrid/quoteflow/internal/contract"
	"github.com/evergrid/quoteflow/internal/pricing"
	"github.com/evergrid/quoteflow/internal/quote"
	"github.com/evergrid/quoteflow/internal/templates"
)

// newPriceCmd builds the Layer B command: runs the full pipeline and
// prints a priced storage quote.
func newPriceCmd() *cobra.Command {
	var (
		industry    string
		answersPath string
		state       string
		ratesPath   string
		timeout     time.Duration
		summary     bool
	)

	cmd := &cobra.Command{
		Use:   "price",
		Short: "Compute a priced battery storage quote",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, ok := templates.Resolve(industry); !ok {
				return fmt.Errorf("%w: %q (see 'quoteflow industries')", contract.ErrUnknownIndustry, industry)
			}

			answers := map[string]any{}
			if answersPath != "" {
				loaded, err := loadAnswers(answersPath)
				if err != nil {
					return err
				}
				answers = loaded
			}

			rates := pricing.NewRateTable()
			if ratesPath != "" {
				if err := rates.LoadOverrides(ratesPath); err != nil {
					return err
				}
			}

			layerA := quote.RunContractQuote(cmd.Context(), quote.Params{
				Industry:      industry,
				Answers:       answers,
				LocationState: state,
			})

			pricer := quote.NewPricer(pricing.NewInProcess(rates), pricing.NewCache(0), timeout)
			res := pricer.RunPricingQuote(cmd.Context(), state, layerA)

			logger.Info().
				Str("industry", industry).
				Str("quoteId", res.QuoteID).
				Bool("provisional", res.IsProvisional).
				Msg("pricing quote complete")

			if summary {
				printPriceSummary(cmd, res)
				return nil
			}
			return printJSON(cmd.OutOrStdout(), res)
		},
	}

	cmd.Flags().StringVar(&industry, "industry", "", "industry slug (see 'quoteflow industries')")
	cmd.Flags().StringVar(&answersPath, "answers", "", "yaml file of questionnaire answers")
	cmd.Flags().StringVar(&state, "state", "", "two-letter state code for utility rates")
	cmd.Flags().StringVar(&ratesPath, "rates", "", "yaml file of utility rate overrides")
	cmd.Flags().DurationVar(&timeout, "timeout", quote.DefaultPricingTimeout, "pricing estimator timeout")
	cmd.Flags().BoolVar(&summary, "summary", false, "print a short human-readable summary")
	_ = cmd.MarkFlagRequired("industry")

	return cmd
}

func printPriceSummary(cmd *cobra.Command, res quote.PricingQuoteResult) {
	out := cmd.OutOrStdout()

	cmd.Println("Quote:    " + res.QuoteID)
	_, _ = printer.Fprintf(out, "System:   %.2f MW / %.2f MWh (%.1f h)\n", res.StorageMW, res.StorageMWh, res.DurationHours)
	cmd.Println("Capex:    " + formatUSD(res.CapexUSD))
	cmd.Println("Savings:  " + formatUSD(res.AnnualSavingsUSD) + "/yr")
	_, _ = printer.Fprintf(out, "Payback:  %.1f years\n", res.PaybackYears)

	if len(res.Warnings) > 0 {
		cmd.Println("Warnings:")
		for _, w := range res.Warnings {
			cmd.Println("  - " + w)
		}
	}
}
