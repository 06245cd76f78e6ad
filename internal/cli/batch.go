package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/evergrid/quoteflow/internal/pricing"
	"github.com/evergrid/quoteflow/internal/quote"
)

// batchRequest is one entry of the batch input file.
type batchRequest struct {
	Industry string         `yaml:"industry"`
	Answers  map[string]any `yaml:"answers"`
}

// newBatchCmd prices many quote requests concurrently from a yaml file.
func newBatchCmd() *cobra.Command {
	var (
		filePath string
		state    string
		workers  int
		priceRun bool
	)

	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Evaluate many quote requests concurrently",
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := os.ReadFile(filePath)
			if err != nil {
				return fmt.Errorf("reading batch file: %w", err)
			}

			var doc struct {
				Requests []batchRequest `yaml:"requests"`
			}
			if err := yaml.Unmarshal(data, &doc); err != nil {
				return fmt.Errorf("parsing batch file: %w", err)
			}

			reqs := make([]quote.Params, len(doc.Requests))
			for i, r := range doc.Requests {
				reqs[i] = quote.Params{
					Industry:      r.Industry,
					Answers:       r.Answers,
					LocationState: state,
				}
			}

			opts := quote.BatchOptions{Workers: workers, State: state}
			if priceRun {
				opts.Pricer = quote.NewPricer(nil, pricing.NewCache(0), 0)
			}

			items, err := quote.RunBatch(cmd.Context(), reqs, opts)
			if err != nil {
				return err
			}

			logger.Info().Int("requests", len(items)).Msg("batch complete")
			return printJSON(cmd.OutOrStdout(), items)
		},
	}

	cmd.Flags().StringVar(&filePath, "file", "", "yaml file with a 'requests' list")
	cmd.Flags().StringVar(&state, "state", "", "two-letter state code applied to all requests")
	cmd.Flags().IntVar(&workers, "workers", quote.DefaultBatchWorkers, "concurrent workers")
	cmd.Flags().BoolVar(&priceRun, "price", false, "run the pricing layer over each result")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}
