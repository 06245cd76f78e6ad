package calcs

import (
	"github.com/evergrid/quoteflow/internal/contract"
	"github.com/evergrid/quoteflow/internal/ssot"
)

// CalcGenericV1 is the stable id of the generic fallback calculator used
// for industries without a dedicated one.
const CalcGenericV1 = "generic_load_v1"

// Safe placeholder returned when the fallback itself fails. The pipeline
// always produces a number rather than failing the request.
const (
	genericSafeBaseKW   = 100
	genericSafePeakKW   = 250
	genericSafeEnergyKW = 5000
)

func genericContract() contract.Contract {
	return contract.Contract{
		ID:             CalcGenericV1,
		RequiredInputs: []string{"facilitySize"},
		OptionalInputs: universalInputs,
		Compute:        computeGeneric,
	}
}

func computeGeneric(in contract.Inputs) (result contract.RunResult) {
	defer func() {
		if r := recover(); r != nil {
			result = contract.RunResult{
				BaseLoadKW:      genericSafeBaseKW,
				PeakLoadKW:      genericSafePeakKW,
				EnergyKWhPerDay: genericSafeEnergyKW,
				Assumptions:     []string{"safe placeholder profile"},
				Warnings:        []string{"generic calculator failed internally; returning safe placeholder"},
			}
		}
	}()

	in = in.Clone()
	t := newTrail()

	bridgeField(in, "facilitySize", "floorAreaSqFt", "facilitySqFt", "squareFootage")

	area := numberField(in, "facilitySize", 10000, t)
	hours := numberField(in, "operatingHours", 12, t)

	est := ssot.CalculatePower("generic", map[string]any{"facilitySize": area})
	t.assumef("base estimate: %s [%s]", est.Description, est.CalculationMethod)
	peakKW := est.PowerMW * 1000

	// No industry knowledge: everything lands in other.
	raw := map[contract.ContributorKey]float64{
		contract.ContributorOther: peakKW,
	}
	duty := dutyFromHours(hours, 0.50, 0.75)

	return finishResult("generic", in, peakKW, duty, hours, raw, nil, t)
}
