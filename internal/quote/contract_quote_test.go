package quote

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evergrid/quoteflow/internal/contract"
	"github.com/evergrid/quoteflow/internal/sizing"
)

func TestRunContractQuoteHappyPath(t *testing.T) {
	res := RunContractQuote(context.Background(), Params{
		Industry: "hotel",
		Answers:  map[string]any{"numberOfRooms": 150, "occupancyRate": 0.8},
	})

	assert.Equal(t, "hotel", res.Industry)
	assert.Equal(t, "hotel", res.Template.Industry)
	assert.NotEmpty(t, res.Template.Calculator)
	assert.Greater(t, res.LoadProfile.PeakLoadKW, 0.0)
	assert.Greater(t, res.SizingHints.StorageToPeakRatio, 0.0)
	assert.Greater(t, res.SizingHints.DurationHours, 0.0)

	require.NotNil(t, res.Computed)
	assert.Len(t, res.Computed.KWContributors, 8, "contributor map must have exactly the canonical keys")
	for _, key := range contract.ContributorKeys() {
		_, ok := res.Computed.KWContributors[key]
		assert.True(t, ok, "missing canonical key %s", key)
	}
}

func TestRunContractQuotePinnedCalculator(t *testing.T) {
	res := RunContractQuote(context.Background(), Params{
		Industry:     "ev_charging",
		Answers:      map[string]any{"level2Chargers": 4, "dcfcChargers": 2, "hpcChargers": 6},
		CalculatorID: "ev_charging_load_v1",
	})

	assert.Equal(t, "ev_charging_load_v1", res.Template.Calculator)
	assert.Equal(t, "1.0.0", res.Template.Version)

	unpinned := RunContractQuote(context.Background(), Params{
		Industry: "ev_charging",
		Answers:  map[string]any{"level2Chargers": 4, "dcfcChargers": 2, "hpcChargers": 6},
	})
	assert.Greater(t, unpinned.LoadProfile.PeakLoadKW, res.LoadProfile.PeakLoadKW,
		"v1 ignores high-power chargers")
}

func TestRunContractQuotePinnedUnknownCalculator(t *testing.T) {
	res := RunContractQuote(context.Background(), Params{
		Industry:     "hotel",
		CalculatorID: "hotel_load_v99",
	})

	assert.True(t, res.IsProvisional)
	require.NotEmpty(t, res.Warnings)
	assert.Contains(t, res.Warnings[0], "hotel_load_v99")
}

func TestRunContractQuoteUnknownIndustry(t *testing.T) {
	res := RunContractQuote(context.Background(), Params{Industry: "asteroid_mining"})

	assert.True(t, res.IsProvisional)
	assert.Zero(t, res.LoadProfile.PeakLoadKW)
	require.Len(t, res.Warnings, 1)
	assert.Contains(t, res.Warnings[0], "asteroid_mining")
}

// TestRunContractQuoteIdempotent is the purity guarantee: identical inputs
// produce bit-identical serialized results (trace ids are minted outside
// Layer A).
func TestRunContractQuoteIdempotent(t *testing.T) {
	p := Params{
		Industry: "gas_station",
		Answers:  map[string]any{"fuelPumps": "medium", "convenienceStore": "full"},
	}

	a := RunContractQuote(context.Background(), p)
	b := RunContractQuote(context.Background(), p)

	aJSON, err := json.Marshal(a)
	require.NoError(t, err)
	bJSON, err := json.Marshal(b)
	require.NoError(t, err)
	assert.Equal(t, string(aJSON), string(bJSON))
}

// TestRunContractQuoteReproducibleTotals pins the float accumulation order:
// contributor totals, shares, and the scaled contributors must come back
// bit-identical on every run, not merely within a tolerance. Map iteration
// order varies per run, and float addition is not associative, so an
// unordered sum drifts in the last ULPs.
func TestRunContractQuoteReproducibleTotals(t *testing.T) {
	p := Params{
		Industry: "hotel",
		Answers:  map[string]any{"rooms": 220, "amenityLevel": "resort"},
	}

	first := RunContractQuote(context.Background(), p)
	require.NotNil(t, first.Computed)
	require.Greater(t, first.Computed.KWContributorsTotalKW, 0.0)

	for i := 0; i < 20; i++ {
		again := RunContractQuote(context.Background(), p)
		require.NotNil(t, again.Computed)

		assert.Equal(t, first.Computed.KWContributorsTotalKW, again.Computed.KWContributorsTotalKW)
		assert.Equal(t, first.Computed.KWContributors, again.Computed.KWContributors)
		assert.Equal(t, first.Computed.KWContributorShares, again.Computed.KWContributorShares)
		assert.Equal(t, first.LoadProfile, again.LoadProfile)
	}
}

// TestRunContractQuoteGridCapacityHint checks the universal gridCapacity
// answer (MW) lands on the sizing hints in kW and tightens the downstream
// target peak cap.
func TestRunContractQuoteGridCapacityHint(t *testing.T) {
	base := map[string]any{"rooms": 200, "peakLoad": 0.8}

	noDatum := RunContractQuote(context.Background(), Params{Industry: "hotel", Answers: base})
	assert.Zero(t, noDatum.SizingHints.GridCapacityKW)

	withCap := map[string]any{"rooms": 200, "peakLoad": 0.8, "gridCapacity": 0.3}
	tight := RunContractQuote(context.Background(), Params{Industry: "hotel", Answers: withCap})
	assert.InDelta(t, 300, tight.SizingHints.GridCapacityKW, 1e-9)

	sizeFrom := func(res ContractQuoteResult) sizing.Result {
		return sizing.ComputeTrueQuoteSizing(sizing.Inputs{
			Industry:       res.Industry,
			PeakLoadKW:     res.LoadProfile.PeakLoadKW,
			GridCapacityKW: res.SizingHints.GridCapacityKW,
			Goals:          []sizing.Goal{sizing.GoalPeakShaving},
			Confidence:     75,
		})
	}

	open := sizeFrom(noDatum)
	capped := sizeFrom(tight)
	assert.Greater(t, capped.GoalsBreakdown[string(sizing.GoalPeakShaving)],
		open.GoalsBreakdown[string(sizing.GoalPeakShaving)],
		"a grid cap below headroom must tighten the target peak cap")
	assert.NotEmpty(t, capped.Constraints)
}

func TestRunContractQuoteMissingRequiredInputs(t *testing.T) {
	res := RunContractQuote(context.Background(), Params{Industry: "hospital", Answers: map[string]any{}})

	assert.Contains(t, res.MissingInputs, "beds")
	assert.True(t, res.IsProvisional)
	assert.Greater(t, res.LoadProfile.PeakLoadKW, 0.0, "missing inputs degrade to defaults, never to zero")
}

func TestCheckInvariantsFlagsViolations(t *testing.T) {
	bad := contract.RunResult{
		BaseLoadKW:      500,
		PeakLoadKW:      100,
		EnergyKWhPerDay: 100 * 24 * 2,
		Validation: contract.NewValidation(1.9, map[contract.ContributorKey]float64{
			contract.ContributorProcess: -5,
		}),
	}

	warnings := checkInvariants(bad)
	assert.Len(t, warnings, 4, "peak<base, energy>peak*24*1.05, dutyCycle range, negative contributor: %v", warnings)
}

func TestCheckInvariantsCleanResult(t *testing.T) {
	good := contract.RunResult{
		BaseLoadKW:      60,
		PeakLoadKW:      100,
		EnergyKWhPerDay: 1800,
		Validation: contract.NewValidation(0.6, map[contract.ContributorKey]float64{
			contract.ContributorProcess: 100,
		}),
	}

	assert.Empty(t, checkInvariants(good))
}

func TestNormalizeValidationDropsForeignDetails(t *testing.T) {
	v := contract.NewValidation(0.5, map[contract.ContributorKey]float64{
		contract.ContributorProcess: 80,
		contract.ContributorHVAC:    20,
	})
	v.Details = map[string]map[string]float64{
		"hotel":    {"roomsKW": 80},
		"car_wash": {"baysKW": 40},
	}

	var warnings []string
	out := normalizeValidation("hotel", v, &warnings, zerolog.Nop())

	assert.Contains(t, out.Details, "hotel")
	assert.NotContains(t, out.Details, "car_wash", "foreign details namespace must be dropped")
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "car_wash")

	assert.Len(t, out.KWContributors, 8)
	assert.Zero(t, out.KWContributors[contract.ContributorCharging])
}

func TestTraceBundleSnapshotsResult(t *testing.T) {
	res := RunContractQuote(context.Background(), Params{
		Industry: "office",
		Answers:  map[string]any{"facilitySize": 80000},
	})

	tb := NewTraceBundle(res)
	assert.Equal(t, "A", tb.Layer)
	assert.NotEmpty(t, tb.ID)
	assert.False(t, tb.TS.IsZero())
	assert.Equal(t, res.LoadProfile, tb.LoadProfile)

	other := NewTraceBundle(res)
	assert.NotEqual(t, tb.ID, other.ID, "trace ids must be unique per bundle")
}
