package calcs

import "github.com/evergrid/quoteflow/internal/contract"

// CalcRetailV1 is the stable id of the retail calculator.
const CalcRetailV1 = "retail_load_v1"

// retailSizeTokens maps store-format buttons to sales-floor area in sq ft.
//
//nolint:gochecknoglobals // Package-level lookup table, initialized once.
var retailSizeTokens = tokenMap{
	"boutique": 3000,
	"small":    8000,
	"medium":   20000,
	"large":    60000,
	"anchor":   120000,
}

func retailContract() contract.Contract {
	return contract.Contract{
		ID:             CalcRetailV1,
		RequiredInputs: []string{"salesFloorSqFt"},
		OptionalInputs: append([]string{
			"exteriorSignage", "evParkingStalls", "ledLighting", "stockroomShare",
		}, universalInputs...),
		Compute: computeRetail,
	}
}

func computeRetail(in contract.Inputs) contract.RunResult {
	in = in.Clone()
	t := newTrail()

	bridgeField(in, "salesFloorSqFt", "salesArea", "storeSqFt")

	area := numberOrToken(in, "salesFloorSqFt", retailSizeTokens, 20000, t)
	hours := numberField(in, "operatingHours", 12, t)

	storeKW := ssotBase("retail", map[string]any{"salesFloorSqFt": area}, t)

	lightingShare, hvacShare := 0.30, 0.36
	if boolField(in, "ledLighting", false, t) {
		lightingShare, hvacShare = 0.18, 0.48
		t.assumef("LED lighting: lighting share reduced to 18%%, recaptured into HVAC")
	}
	shares := map[contract.ContributorKey]float64{
		contract.ContributorHVAC:     hvacShare,
		contract.ContributorLighting: lightingShare,
		contract.ContributorProcess:  0.08,
		contract.ContributorControls: 0.04,
		contract.ContributorITLoad:   0.07, // point of sale, security
		contract.ContributorOther:    0.15,
	}
	raw := splitPeak(storeKW, shares)

	var supps []supplement
	if boolField(in, "exteriorSignage", true, t) {
		supps = append(supps, supplement{name: "exterior signage", kw: 6, key: contract.ContributorLighting})
	}
	if stalls := numberField(in, "evParkingStalls", 0, t); stalls > 0 {
		supps = append(supps, supplement{name: "EV parking", kw: stalls * evL2PortKW * 0.4, key: contract.ContributorCharging})
	}
	suppKW := addSupplements(raw, supps, t)

	peakKW := storeKW + suppKW
	duty := dutyFromHours(hours, 0.55, 0.70)

	details := map[string]float64{
		"storeKW":         storeKW,
		"salesFloorSqFt":  area,
		"supplementalsKW": suppKW,
	}

	return finishResult("retail", in, peakKW, duty, hours, raw, details, t)
}
