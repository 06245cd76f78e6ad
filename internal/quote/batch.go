package quote

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Batch concurrency bounds. The framework is pure and stateless, so
// workers never contend; the bound exists to keep memory flat on very
// large request files.
const (
	DefaultBatchWorkers = 8
	MaxBatchWorkers     = 64
)

// Batch processing errors.
var (
	ErrEmptyBatch = errors.New("batch request list is empty")
)

// BatchItem pairs a request with its full result.
type BatchItem struct {
	Index    int                 `json:"index"`
	Params   Params              `json:"params"`
	Contract ContractQuoteResult `json:"contract"`
	Pricing  *PricingQuoteResult `json:"pricing,omitempty"`
}

// BatchOptions configures a batch run.
type BatchOptions struct {
	// Workers bounds concurrent evaluations; values outside
	// [1, MaxBatchWorkers] clamp to the defaults.
	Workers int

	// Pricer, when set, runs Layer B over each Layer A result.
	Pricer *Pricer

	// State is the location state applied to every pricing call.
	State string
}

// RunBatch evaluates many quote requests concurrently. Results keep the
// input order. Individual quote failures never abort the batch — the
// framework degrades to provisional results — so the only error paths are
// an empty input and context cancellation.
func RunBatch(ctx context.Context, reqs []Params, opts BatchOptions) ([]BatchItem, error) {
	if len(reqs) == 0 {
		return nil, ErrEmptyBatch
	}

	workers := opts.Workers
	if workers < 1 {
		workers = DefaultBatchWorkers
	}
	if workers > MaxBatchWorkers {
		workers = MaxBatchWorkers
	}

	items := make([]BatchItem, len(reqs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, req := range reqs {
		i, req := i, req
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return fmt.Errorf("batch item %d: %w", i, err)
			}

			item := BatchItem{Index: i, Params: req}
			item.Contract = RunContractQuote(gctx, req)
			if opts.Pricer != nil {
				priced := opts.Pricer.RunPricingQuote(gctx, opts.State, item.Contract)
				item.Pricing = &priced
			}
			items[i] = item
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return items, nil
}
