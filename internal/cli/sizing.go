package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/evergrid/quoteflow/internal/quote"
	"github.com/evergrid/quoteflow/internal/sizing"
)

// newSizingCmd builds the standalone sizing command, useful when the load
// profile is already known and only the banded recommendation is wanted.
func newSizingCmd() *cobra.Command {
	var (
		industry    string
		answersPath string
		peakKW      float64
		annualKWh   float64
		hvacMult    float64
		gridKW      float64
		goals       []string
		clf         float64
		hasGenset   bool
		userKW      float64
		confidence  float64
	)

	cmd := &cobra.Command{
		Use:   "sizing",
		Short: "Compute a confidence-banded storage recommendation",
		RunE: func(cmd *cobra.Command, _ []string) error {
			parsed, err := parseGoals(goals)
			if err != nil {
				return err
			}

			// With an answers file the load profile comes from the
			// estimator; explicit flags still override.
			if answersPath != "" {
				answers, err := loadAnswers(answersPath)
				if err != nil {
					return err
				}
				est := quote.RunContractQuote(cmd.Context(), quote.Params{
					Industry: industry,
					Answers:  answers,
				})
				if peakKW == 0 {
					peakKW = est.LoadProfile.PeakLoadKW
				}
				if gridKW == 0 {
					gridKW = est.SizingHints.GridCapacityKW
				}
			}

			res := sizing.ComputeTrueQuoteSizing(sizing.Inputs{
				Industry:           industry,
				PeakLoadKW:         peakKW,
				AnnualEnergyKWh:    annualKWh,
				HVACMultiplier:     hvacMult,
				GridCapacityKW:     gridKW,
				Goals:              parsed,
				CriticalLoadFactor: clf,
				HasBackupGenerator: hasGenset,
				UserPowerKW:        userKW,
				Confidence:         confidence,
			})

			return printJSON(cmd.OutOrStdout(), res)
		},
	}

	cmd.Flags().StringVar(&industry, "industry", "", "industry slug")
	cmd.Flags().StringVar(&answersPath, "answers", "", "yaml questionnaire answers; estimates peak and grid capacity")
	cmd.Flags().Float64Var(&peakKW, "peak-kw", 0, "facility peak load in kW (0 = estimate from annual energy)")
	cmd.Flags().Float64Var(&annualKWh, "annual-kwh", 0, "annual energy in kWh")
	cmd.Flags().Float64Var(&hvacMult, "hvac-multiplier", 1.0, "climate adjustment multiplier on peak")
	cmd.Flags().Float64Var(&gridKW, "grid-kw", 0, "grid interconnection capacity in kW (0 = no datum)")
	cmd.Flags().StringSliceVar(&goals, "goals", []string{"peak_shaving"}, "storage goals: peak_shaving, backup, arbitrage, grid_independence")
	cmd.Flags().Float64Var(&clf, "critical-load-factor", 0, "backup-carry fraction of peak (0 = industry default)")
	cmd.Flags().BoolVar(&hasGenset, "has-generator", false, "site already has backup generation")
	cmd.Flags().Float64Var(&userKW, "power-kw", 0, "explicit power override in kW")
	cmd.Flags().Float64Var(&confidence, "confidence", 75, "input confidence 0-100")

	return cmd
}

func parseGoals(raw []string) ([]sizing.Goal, error) {
	goals := make([]sizing.Goal, 0, len(raw))
	for _, r := range raw {
		g := sizing.Goal(strings.TrimSpace(strings.ToLower(r)))
		switch g {
		case sizing.GoalPeakShaving, sizing.GoalBackup, sizing.GoalArbitrage, sizing.GoalGridIndependence:
			goals = append(goals, g)
		default:
			return nil, fmt.Errorf("unknown goal %q", r)
		}
	}
	return goals, nil
}
