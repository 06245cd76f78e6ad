package cli

import (
	"github.com/spf13/cobra"

	"github.com/evergrid/quoteflow/internal/registry"
	"github.com/evergrid/quoteflow/internal/templates"
)

// newIndustriesCmd lists supported industries and the calculator
// generation each one is bound to.
func newIndustriesCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "industries",
		Short: "List supported industries and their calculators",
		RunE: func(cmd *cobra.Command, _ []string) error {
			type row struct {
				Industry   string  `json:"industry"`
				Calculator string  `json:"calculator"`
				Version    string  `json:"version"`
				Ratio      float64 `json:"storageToPeakRatio"`
				Hours      float64 `json:"durationHours"`
			}

			var rows []row
			for _, industry := range registry.Industries() {
				tpl, ok := templates.Resolve(industry)
				if !ok {
					continue
				}
				sz := templates.SizingDefaults(industry)
				rows = append(rows, row{
					Industry:   industry,
					Calculator: tpl.Calculator.ID,
					Version:    tpl.Version,
					Ratio:      sz.Ratio,
					Hours:      sz.Hours,
				})
			}

			if asJSON {
				return printJSON(cmd.OutOrStdout(), rows)
			}
			for _, r := range rows {
				cmd.Printf("%-15s %s (v%s)\n", r.Industry, r.Calculator, r.Version)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "emit JSON")
	return cmd
}
