package quote

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/evergrid/quoteflow/internal/logging"
	"github.com/evergrid/quoteflow/internal/pricing"
)

// DefaultPricingTimeout bounds the estimator call. The in-process
// estimator never approaches it; a remote implementation might.
const DefaultPricingTimeout = 5 * time.Second

// maxReasonablePaybackYears flags economically absurd results.
const maxReasonablePaybackYears = 100

// Pricer runs Layer B against a pluggable estimator with an optional
// result cache.
type Pricer struct {
	estimator pricing.Estimator
	cache     *pricing.Cache
	timeout   time.Duration
}

// NewPricer wires a Layer B orchestrator. A nil estimator gets the
// in-process default; a nil cache disables caching; a zero timeout uses
// DefaultPricingTimeout.
func NewPricer(est pricing.Estimator, cache *pricing.Cache, timeout time.Duration) *Pricer {
	if est == nil {
		est = pricing.NewInProcess(nil)
	}
	if timeout <= 0 {
		timeout = DefaultPricingTimeout
	}
	return &Pricer{estimator: est, cache: cache, timeout: timeout}
}

// RunPricingQuote executes Layer B over a Layer A result: derives the
// storage size from the industry ratio and sizing hints, prices it
// through the estimator under an explicit timeout, and sanity-checks the
// economics. Estimator failure or timeout yields a warning-bearing
// provisional result, never an error.
func (p *Pricer) RunPricingQuote(ctx context.Context, state string, layerA ContractQuoteResult) PricingQuoteResult {
	log := logging.FromContext(ctx).With().Str("component", "quote").Str("industry", layerA.Industry).Logger()

	storageMW := layerA.LoadProfile.PeakLoadKW / 1000 * layerA.SizingHints.StorageToPeakRatio
	duration := layerA.SizingHints.DurationHours
	storageMWh := storageMW * duration

	in := pricing.Inputs{
		Industry:        layerA.Industry,
		State:           state,
		StorageKW:       storageMW * 1000,
		StorageKWh:      storageMWh * 1000,
		DurationHours:   duration,
		PeakLoadKW:      layerA.LoadProfile.PeakLoadKW,
		AnnualEnergyKWh: layerA.LoadProfile.EnergyKWhPerDay * 365,
	}

	out := PricingQuoteResult{
		Industry:      layerA.Industry,
		StorageMW:     storageMW,
		StorageMWh:    storageMWh,
		DurationHours: duration,
		Warnings:      []string{},
		IsProvisional: layerA.IsProvisional,
	}
	if layerA.IsProvisional {
		out.Warnings = append(out.Warnings, "load profile is provisional; pricing inherits its uncertainty")
	}

	hash, err := StableHash(in)
	if err != nil {
		// Inputs are plain floats and strings; marshal failure would be a
		// programming error. Degrade to uncached pricing.
		log.Error().Err(err).Msg("stable hash failed")
		out.Warnings = append(out.Warnings, "could not compute inputs hash; result not cached")
	}
	out.InputsHash = hash

	if p.cache != nil && hash != "" {
		if q, ok := p.cache.Get(hash); ok {
			log.Debug().Str("hash", hash).Msg("pricing cache hit")
			out.CacheHit = true
			return p.fill(out, q)
		}
	}

	callCtx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	q, err := p.estimator.Price(callCtx, in)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			log.Warn().Dur("timeout", p.timeout).Msg("pricing estimator timed out")
			out.Warnings = append(out.Warnings, fmt.Sprintf("pricing estimator timed out after %s; quote is provisional", p.timeout))
		} else {
			log.Warn().Err(err).Msg("pricing estimator failed")
			out.Warnings = append(out.Warnings, fmt.Sprintf("pricing estimator failed: %v", err))
		}
		out.IsProvisional = true
		return out
	}

	if p.cache != nil && hash != "" {
		p.cache.Put(hash, q)
	}
	return p.fill(out, q)
}

// fill copies the estimator quote into the result and applies the sanity
// checks and rate-fallback warnings.
func (p *Pricer) fill(out PricingQuoteResult, q pricing.Quote) PricingQuoteResult {
	out.QuoteID = q.QuoteID
	out.CapexUSD = q.CapexUSD
	out.AnnualSavingsUSD = q.AnnualSaving
	out.PaybackYears = q.PaybackYears
	out.EnergyRateUSDPerKWh = q.EnergyRateUSDPerKWh
	out.DemandChargeUSDPerKW = q.DemandChargeUSDPerKW

	if q.CapexUSD <= 0 {
		out.Warnings = append(out.Warnings, fmt.Sprintf("sanity: capex must be positive, got %.2f", q.CapexUSD))
		out.IsProvisional = true
	}
	if q.AnnualSaving <= 0 {
		out.Warnings = append(out.Warnings, fmt.Sprintf("sanity: annual savings must be positive, got %.2f", q.AnnualSaving))
		out.IsProvisional = true
	}
	if q.PaybackYears <= 0 || q.PaybackYears > maxReasonablePaybackYears {
		out.Warnings = append(out.Warnings, fmt.Sprintf("sanity: payback of %.1f years outside (0, %d]", q.PaybackYears, maxReasonablePaybackYears))
		out.IsProvisional = true
	}
	if q.RateFallback {
		out.Warnings = append(out.Warnings, "electricity rate and demand charge fell back to national defaults")
	}
	return out
}
