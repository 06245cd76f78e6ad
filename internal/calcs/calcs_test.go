package calcs

import (
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evergrid/quoteflow/internal/contract"
)

// TestContributorConservation runs every registered calculator on empty
// inputs (all defaults) and on a representative populated payload, and
// checks that the contributor decomposition sums back to peak within the
// tolerance, with only canonical keys and finite non-negative values.
func TestContributorConservation(t *testing.T) {
	canonical := map[contract.ContributorKey]bool{}
	for _, k := range contract.ContributorKeys() {
		canonical[k] = true
	}

	payloads := []contract.Inputs{
		{},
		{
			"facilitySize":   45000,
			"operatingHours": 16,
			"rooms":          120,
			"fuelPumps":      12,
			"dcfcChargers":   6,
			"level2Chargers": 10,
			"beds":           200,
			"seats":          90,
			"students":       600,
			"units":          150,
		},
	}

	for _, reg := range Registrations() {
		for i, payload := range payloads {
			t.Run(fmt.Sprintf("%s/payload%d", reg.Contract.ID, i), func(t *testing.T) {
				res := reg.Contract.Compute(payload.Clone())

				require.NotNil(t, res.Validation, "calculators must emit a validation envelope")
				v := res.Validation

				assert.Equal(t, contract.ValidationVersion, v.Version)
				assert.Greater(t, res.PeakLoadKW, 0.0)
				assert.GreaterOrEqual(t, res.BaseLoadKW, 0.0)
				assert.LessOrEqual(t, res.BaseLoadKW, res.PeakLoadKW)
				assert.Greater(t, res.EnergyKWhPerDay, 0.0)
				assert.LessOrEqual(t, res.EnergyKWhPerDay, res.PeakLoadKW*24*1.05)

				sum := 0.0
				for key, kw := range v.KWContributors {
					assert.True(t, canonical[key], "non-canonical contributor key %q", key)
					assert.False(t, math.IsNaN(kw) || math.IsInf(kw, 0), "contributor %s not finite", key)
					assert.GreaterOrEqual(t, kw, 0.0, "contributor %s negative", key)
					sum += kw
				}
				assert.InEpsilon(t, res.PeakLoadKW, sum, contract.ContributorTolerance,
					"contributor sum %.2f diverges from peak %.2f", sum, res.PeakLoadKW)
				assert.InEpsilon(t, sum, v.KWContributorsTotalKW, 1e-9)

				assert.GreaterOrEqual(t, v.DutyCycle, 0.0)
				assert.LessOrEqual(t, v.DutyCycle, contract.DutyCycleMax)
			})
		}
	}
}

// TestMonotonicity checks that growing the dominant driver never shrinks
// the computed peak.
func TestMonotonicity(t *testing.T) {
	tests := []struct {
		calcID string
		field  string
		low    float64
		high   float64
	}{
		{CalcHotelV1, "rooms", 50, 300},
		{CalcEVChargingV2, "dcfcChargers", 2, 12},
		{CalcGasStationV1, "fuelPumps", 4, 20},
		{CalcHospitalV1, "beds", 50, 400},
		{CalcDataCenterV1, "rackCount", 20, 200},
	}

	byID := map[string]contract.Contract{}
	for _, reg := range Registrations() {
		byID[reg.Contract.ID] = reg.Contract
	}

	for _, tt := range tests {
		t.Run(tt.calcID+"/"+tt.field, func(t *testing.T) {
			calc, ok := byID[tt.calcID]
			require.True(t, ok)

			lowRes := calc.Compute(contract.Inputs{tt.field: tt.low})
			highRes := calc.Compute(contract.Inputs{tt.field: tt.high})

			assert.GreaterOrEqual(t, highRes.PeakLoadKW, lowRes.PeakLoadKW,
				"peak decreased when %s grew from %v to %v", tt.field, tt.low, tt.high)
			assert.Greater(t, highRes.PeakLoadKW, lowRes.PeakLoadKW,
				"peak should strictly grow for a dominant driver")
		})
	}
}

// TestDemandCapCurtailment exercises the demand-cap repair path: peak
// clamps to the cap, the decomposition follows, and a curtailment warning
// fires.
func TestDemandCapCurtailment(t *testing.T) {
	res := computeEVCharging(contract.Inputs{
		"level2Chargers":  10,
		"dcfcChargers":    8,
		"siteDemandCapKW": 500,
	})

	assert.InDelta(t, 500, res.PeakLoadKW, 0.5)

	sum := 0.0
	for _, kw := range res.Validation.KWContributors {
		sum += kw
	}
	assert.InEpsilon(t, res.PeakLoadKW, sum, contract.ContributorTolerance)

	found := false
	for _, w := range res.Warnings {
		if strings.Contains(w, "curtailed") {
			found = true
		}
	}
	assert.True(t, found, "expected a curtailment warning, got %v", res.Warnings)
}

// TestPeakOverride verifies the universal peakLoad question (entered in
// MW) replaces the computed peak and the decomposition rescales to it.
func TestPeakOverride(t *testing.T) {
	res := computeHotel(contract.Inputs{
		"rooms":    100,
		"peakLoad": 2.5, // MW
	})

	assert.InDelta(t, 2500, res.PeakLoadKW, 0.5)

	sum := 0.0
	for _, kw := range res.Validation.KWContributors {
		sum += kw
	}
	assert.InEpsilon(t, 2500, sum, contract.ContributorTolerance)
}

// TestGasStationScenarios pins the canonical sizing points: a small site
// lands near 19.5 kW, a medium site near 27 kW, and sizes order correctly.
func TestGasStationScenarios(t *testing.T) {
	small := computeGasStation(contract.Inputs{"fuelPumps": "small", "convenienceStore": "none"})
	medium := computeGasStation(contract.Inputs{"fuelPumps": "medium", "convenienceStore": "none"})

	assert.InDelta(t, 19.5, small.PeakLoadKW, 0.75)
	assert.InDelta(t, 27.0, medium.PeakLoadKW, 0.75)
	assert.Less(t, small.PeakLoadKW, medium.PeakLoadKW)

	// The base estimator floor keeps even a degenerate site viable.
	assert.GreaterOrEqual(t, small.PeakLoadKW, 10.0)
}

// TestEVChargingShareBand checks a well-formed charging hub sits inside
// the expected charging share band, and a lighting-dominated payload
// trips the band warning.
func TestEVChargingShareBand(t *testing.T) {
	res := computeEVCharging(contract.Inputs{
		"level2Chargers": 4,
		"dcfcChargers":   2,
		"hpcChargers":    4,
	})

	share := res.Validation.Details["ev_charging"]["chargingPct"]
	assert.GreaterOrEqual(t, share, evChargingShareMin)
	assert.LessOrEqual(t, share, evChargingShareMax)
	for _, w := range res.Warnings {
		assert.NotContains(t, w, "charging share outside band")
	}

	skewed := computeEVCharging(contract.Inputs{
		"level2Chargers": 1,
		"dcfcChargers":   0,
		"canopyLighting": 200,
	})
	found := false
	for _, w := range skewed.Warnings {
		if strings.Contains(w, "charging share outside band") {
			found = true
		}
	}
	assert.True(t, found, "expected band warning, got %v", skewed.Warnings)
}

// TestEVChargingV1IgnoresHPC verifies the pre-HPC generation keeps its
// exact semantics: high-power chargers do not move its result.
func TestEVChargingV1IgnoresHPC(t *testing.T) {
	byID := map[string]contract.Contract{}
	for _, reg := range Registrations() {
		byID[reg.Contract.ID] = reg.Contract
	}

	v1 := byID[CalcEVChargingV1]
	without := v1.Compute(contract.Inputs{"level2Chargers": 4, "dcfcChargers": 2})
	with := v1.Compute(contract.Inputs{"level2Chargers": 4, "dcfcChargers": 2, "hpcChargers": 6})

	assert.Equal(t, without.PeakLoadKW, with.PeakLoadKW)

	v2 := byID[CalcEVChargingV2]
	v2with := v2.Compute(contract.Inputs{"level2Chargers": 4, "dcfcChargers": 2, "hpcChargers": 6})
	assert.Greater(t, v2with.PeakLoadKW, with.PeakLoadKW)
}

// TestGenericFallbackNeverFails throws junk at the generic calculator and
// expects a usable result every time.
func TestGenericFallbackNeverFails(t *testing.T) {
	payloads := []contract.Inputs{
		nil,
		{},
		{"facilitySize": "not a number", "operatingHours": []string{"weird"}},
		{"facilitySize": -1e12},
	}

	for i, payload := range payloads {
		t.Run(fmt.Sprintf("payload%d", i), func(t *testing.T) {
			res := computeGeneric(payload)
			assert.Greater(t, res.PeakLoadKW, 0.0)
			assert.Greater(t, res.EnergyKWhPerDay, 0.0)
		})
	}
}

// TestInputsNotMutated guards the purity contract: calculators clone
// before bridging legacy field names.
func TestInputsNotMutated(t *testing.T) {
	in := contract.Inputs{"pumps": 12}
	_ = computeGasStation(in)
	assert.Equal(t, contract.Inputs{"pumps": 12}, in)
}

// TestNegativeNumericInputsFallBack guards the envelope against negative
// magnitudes: a negative hours or count answer must fall back to the
// documented default instead of driving the duty cycle below zero.
func TestNegativeNumericInputsFallBack(t *testing.T) {
	res := computeIndoorFarm(contract.Inputs{"photoperiodHours": -100})

	require.NotNil(t, res.Validation)
	assert.GreaterOrEqual(t, res.Validation.DutyCycle, 0.0)
	assert.LessOrEqual(t, res.Validation.DutyCycle, contract.DutyCycleMax)
	assert.GreaterOrEqual(t, res.BaseLoadKW, 0.0)
	assert.Contains(t, res.InputFallbacks, "photoperiodHours")
}

// TestDutyFromHours pins the interpolation endpoints.
func TestDutyFromHours(t *testing.T) {
	assert.InDelta(t, 0.5, dutyFromHours(8, 0.5, 0.9), 1e-9)
	assert.InDelta(t, 0.9, dutyFromHours(24, 0.5, 0.9), 1e-9)
	mid := dutyFromHours(16, 0.5, 0.9)
	assert.Greater(t, mid, 0.5)
	assert.Less(t, mid, 0.9)
}

// TestNormalizeShares checks the pre-normalization repair sums to one and
// preserves relative weights.
func TestNormalizeShares(t *testing.T) {
	shares := normalizeShares(map[contract.ContributorKey]float64{
		contract.ContributorProcess: 0.6,
		contract.ContributorHVAC:    0.6,
	})

	sum := 0.0
	for _, s := range shares {
		sum += s
	}
	assert.InDelta(t, 1.0, sum, 1e-9)
	assert.InDelta(t, shares[contract.ContributorProcess], shares[contract.ContributorHVAC], 1e-9)
}
