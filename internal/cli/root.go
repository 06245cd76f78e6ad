// Package cli wires the quoteflow commands. The CLI is a thin shell over
// the library packages: commands parse flags and files, call into
// internal/quote and friends, and print JSON or a short human summary.
package cli

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// NewRootCmd creates the root Cobra command for the quoteflow CLI.
func NewRootCmd(ver string) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "quoteflow",
		Short:   "Load-profile and battery storage quote calculator",
		Long:    "QuoteFlow: estimate facility load profiles and size battery storage quotes from questionnaire answers",
		Version: ver,
		Example: rootCmdExample,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return setupLogging(cmd)
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().String("log-format", "", "log format: json or console")

	cmd.AddCommand(
		newEstimateCmd(),
		newPriceCmd(),
		newSizingCmd(),
		newIndustriesCmd(),
		newCurveCmd(),
		newBatchCmd(),
	)

	return cmd
}

const rootCmdExample = `  # Estimate a load profile from questionnaire answers
  quoteflow estimate --industry hotel --answers answers.yaml

  # Full priced quote for a California site
  quoteflow price --industry ev_charging --answers answers.yaml --state CA

  # Confidence-banded storage sizing
  quoteflow sizing --industry hospital --peak-kw 1200 --goals backup,peak_shaving

  # List supported industries and calculator generations
  quoteflow industries

  # 24-hour normalized load curve
  quoteflow curve --industry restaurant --base-kw 40 --peak-kw 160

  # Price many requests concurrently
  quoteflow batch --file requests.yaml --state TX --workers 16`
