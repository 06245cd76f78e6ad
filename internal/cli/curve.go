package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/evergrid/quoteflow/internal/loadcurve"
)

// newCurveCmd prints the 24-hour normalized load curve for an industry.
func newCurveCmd() *cobra.Command {
	var (
		industry string
		baseKW   float64
		peakKW   float64
		asJSON   bool
	)

	cmd := &cobra.Command{
		Use:   "curve",
		Short: "Print a 24-hour normalized load curve",
		RunE: func(cmd *cobra.Command, _ []string) error {
			curve := loadcurve.Generate(industry, baseKW, peakKW)

			if asJSON {
				return printJSON(cmd.OutOrStdout(), curve)
			}

			// Simple terminal bar chart, 40 columns at full peak.
			const cols = 40
			for _, pt := range curve {
				bar := strings.Repeat("#", int(pt.Fraction*cols))
				cmd.Printf("%02d:00 %5.1f%% %s\n", pt.Hour, pt.Fraction*100, bar)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&industry, "industry", "", "industry slug")
	cmd.Flags().Float64Var(&baseKW, "base-kw", 0, "base load in kW")
	cmd.Flags().Float64Var(&peakKW, "peak-kw", 0, "peak load in kW")
	cmd.Flags().BoolVar(&asJSON, "json", false, "emit JSON")
	_ = cmd.MarkFlagRequired("industry")

	return cmd
}
