package calcs

import "github.com/evergrid/quoteflow/internal/contract"

// CalcGroceryV1 is the stable id of the grocery calculator.
const CalcGroceryV1 = "grocery_load_v1"

// groceryCaseTokens maps refrigeration-lineup buttons to case counts
// (midpoints of typical format bands).
//
//nolint:gochecknoglobals // Package-level lookup table, initialized once.
var groceryCaseTokens = tokenMap{
	"small":  20,
	"medium": 40,
	"large":  80,
}

func groceryContract() contract.Contract {
	return contract.Contract{
		ID:             CalcGroceryV1,
		RequiredInputs: []string{"salesFloorSqFt"},
		OptionalInputs: append([]string{
			"refrigerationCases", "bakery", "hotFoodService", "ledLighting",
		}, universalInputs...),
		Compute: computeGrocery,
	}
}

func computeGrocery(in contract.Inputs) contract.RunResult {
	in = in.Clone()
	t := newTrail()

	bridgeField(in, "salesFloorSqFt", "salesArea", "storeSqFt")
	bridgeField(in, "refrigerationCases", "caseCount", "coolerCases")

	area := numberField(in, "salesFloorSqFt", 30000, t)
	cases := numberOrToken(in, "refrigerationCases", groceryCaseTokens, 40, t)
	hours := numberField(in, "operatingHours", 16, t)

	storeKW := ssotBase("grocery", map[string]any{
		"salesFloorSqFt":     area,
		"refrigerationCases": cases,
	}, t)

	lightingShare, hvacShare := 0.18, 0.22
	if boolField(in, "ledLighting", false, t) {
		lightingShare, hvacShare = 0.11, 0.29
		t.assumef("LED lighting: lighting share reduced to 11%%, recaptured into HVAC")
	}
	shares := map[contract.ContributorKey]float64{
		contract.ContributorCooling:  0.38, // case refrigeration dominates
		contract.ContributorHVAC:     hvacShare,
		contract.ContributorLighting: lightingShare,
		contract.ContributorProcess:  0.12,
		contract.ContributorControls: 0.03,
		contract.ContributorITLoad:   0.03,
		contract.ContributorOther:    0.04,
	}
	raw := splitPeak(storeKW, shares)

	var supps []supplement
	if boolField(in, "bakery", false, t) {
		supps = append(supps, supplement{name: "in-store bakery", kw: 40, key: contract.ContributorProcess})
	}
	if boolField(in, "hotFoodService", false, t) {
		supps = append(supps, supplement{name: "hot food service", kw: 25, key: contract.ContributorProcess})
	}
	suppKW := addSupplements(raw, supps, t)

	peakKW := storeKW + suppKW
	// Refrigeration never sleeps; sales-floor load follows store hours.
	duty := dutyFromHours(hours, 0.65, 0.80)

	details := map[string]float64{
		"storeKW":         storeKW,
		"caseCount":       cases,
		"supplementalsKW": suppKW,
	}

	return finishResult("grocery", in, peakKW, duty, hours, raw, details, t)
}
