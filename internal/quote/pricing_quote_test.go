package quote

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evergrid/quoteflow/internal/pricing"
)

// stubEstimator lets tests script the estimator's behavior.
type stubEstimator struct {
	quote pricing.Quote
	err   error
	delay time.Duration
	calls int
}

func (s *stubEstimator) Price(ctx context.Context, _ pricing.Inputs) (pricing.Quote, error) {
	s.calls++
	if s.delay > 0 {
		select {
		case <-time.After(s.delay):
		case <-ctx.Done():
			return pricing.Quote{}, ctx.Err()
		}
	}
	return s.quote, s.err
}

func layerAFixture() ContractQuoteResult {
	return ContractQuoteResult{
		Industry:    "hotel",
		LoadProfile: LoadProfile{BaseLoadKW: 150, PeakLoadKW: 300, EnergyKWhPerDay: 4800},
		SizingHints: SizingHints{StorageToPeakRatio: 0.25, DurationHours: 4},
	}
}

func goodQuote() pricing.Quote {
	return pricing.Quote{
		QuoteID:      "q-1",
		CapexUSD:     120000,
		AnnualSaving: 18000,
		PaybackYears: 6.7,
	}
}

func TestRunPricingQuoteDerivesStorageSize(t *testing.T) {
	est := &stubEstimator{quote: goodQuote()}
	p := NewPricer(est, nil, 0)

	res := p.RunPricingQuote(context.Background(), "CA", layerAFixture())

	assert.InDelta(t, 0.075, res.StorageMW, 1e-9, "300 kW peak x 0.25 ratio")
	assert.InDelta(t, 0.3, res.StorageMWh, 1e-9)
	assert.Equal(t, "q-1", res.QuoteID)
	assert.NotEmpty(t, res.InputsHash)
	assert.False(t, res.IsProvisional)
	assert.Empty(t, res.Warnings)
}

func TestRunPricingQuoteTimeoutYieldsProvisional(t *testing.T) {
	est := &stubEstimator{quote: goodQuote(), delay: 200 * time.Millisecond}
	p := NewPricer(est, nil, 20*time.Millisecond)

	res := p.RunPricingQuote(context.Background(), "CA", layerAFixture())

	assert.True(t, res.IsProvisional)
	require.NotEmpty(t, res.Warnings)
	assert.Contains(t, res.Warnings[0], "timed out")
	assert.Zero(t, res.CapexUSD)
}

func TestRunPricingQuoteEstimatorErrorYieldsProvisional(t *testing.T) {
	est := &stubEstimator{err: errors.New("tariff service unavailable")}
	p := NewPricer(est, nil, 0)

	res := p.RunPricingQuote(context.Background(), "CA", layerAFixture())

	assert.True(t, res.IsProvisional)
	require.NotEmpty(t, res.Warnings)
	assert.Contains(t, res.Warnings[0], "tariff service unavailable")
}

func TestRunPricingQuoteSanityChecks(t *testing.T) {
	est := &stubEstimator{quote: pricing.Quote{
		QuoteID:      "q-bad",
		CapexUSD:     -5,
		AnnualSaving: 0,
		PaybackYears: 250,
	}}
	p := NewPricer(est, nil, 0)

	res := p.RunPricingQuote(context.Background(), "CA", layerAFixture())

	assert.True(t, res.IsProvisional)
	assert.Len(t, res.Warnings, 3, "capex, savings, and payback checks should all fire: %v", res.Warnings)
}

func TestRunPricingQuoteRateFallbackWarning(t *testing.T) {
	q := goodQuote()
	q.RateFallback = true
	est := &stubEstimator{quote: q}
	p := NewPricer(est, nil, 0)

	res := p.RunPricingQuote(context.Background(), "ZZ", layerAFixture())

	assert.False(t, res.IsProvisional, "rate fallback is informational, not provisional")
	require.NotEmpty(t, res.Warnings)
	assert.Contains(t, res.Warnings[0], "defaults")
}

func TestRunPricingQuoteCaching(t *testing.T) {
	est := &stubEstimator{quote: goodQuote()}
	p := NewPricer(est, pricing.NewCache(time.Hour), 0)

	first := p.RunPricingQuote(context.Background(), "CA", layerAFixture())
	second := p.RunPricingQuote(context.Background(), "CA", layerAFixture())

	assert.Equal(t, 1, est.calls, "second call must be served from cache")
	assert.False(t, first.CacheHit)
	assert.True(t, second.CacheHit)
	assert.Equal(t, first.CapexUSD, second.CapexUSD)

	other := layerAFixture()
	other.LoadProfile.PeakLoadKW = 600
	_ = p.RunPricingQuote(context.Background(), "CA", other)
	assert.Equal(t, 2, est.calls, "different inputs must miss the cache")
}

func TestRunPricingQuoteInheritsProvisional(t *testing.T) {
	est := &stubEstimator{quote: goodQuote()}
	p := NewPricer(est, nil, 0)

	layerA := layerAFixture()
	layerA.IsProvisional = true

	res := p.RunPricingQuote(context.Background(), "CA", layerA)
	assert.True(t, res.IsProvisional)
	require.NotEmpty(t, res.Warnings)
	assert.Contains(t, res.Warnings[0], "provisional")
}
