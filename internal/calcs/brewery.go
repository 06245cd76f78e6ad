package calcs

import "github.com/evergrid/quoteflow/internal/contract"

// CalcBreweryV1 is the stable id of the brewery calculator.
const CalcBreweryV1 = "brewery_load_v1"

// breweryVolumeTokens maps production-size buttons to annual barrels
// (midpoints of the Brewers Association size classes).
//
//nolint:gochecknoglobals // Package-level lookup table, initialized once.
var breweryVolumeTokens = tokenMap{
	"nano":     500,
	"micro":    5000,
	"small":    5000,
	"medium":   10000,
	"regional": 50000,
}

func breweryContract() contract.Contract {
	return contract.Contract{
		ID:             CalcBreweryV1,
		RequiredInputs: []string{"annualBarrels"},
		OptionalInputs: append([]string{
			"canningLine", "electricBoiler", "taproom", "coldRoomSqFt",
		}, universalInputs...),
		Compute: computeBrewery,
	}
}

func computeBrewery(in contract.Inputs) contract.RunResult {
	in = in.Clone()
	t := newTrail()

	bridgeField(in, "annualBarrels", "barrelsPerYear", "bblPerYear")

	barrels := numberOrToken(in, "annualBarrels", breweryVolumeTokens, 10000, t)
	hours := numberField(in, "operatingHours", 12, t)

	brewhouseKW := ssotBase("brewery", map[string]any{"annualBarrels": barrels}, t)

	shares := map[contract.ContributorKey]float64{
		contract.ContributorProcess:  0.46, // pumps, mills, CIP
		contract.ContributorCooling:  0.30, // glycol chilling for fermentation
		contract.ContributorHVAC:     0.10,
		contract.ContributorLighting: 0.06,
		contract.ContributorControls: 0.04,
		contract.ContributorOther:    0.04,
	}
	raw := splitPeak(brewhouseKW, shares)

	var supps []supplement
	if boolField(in, "canningLine", false, t) {
		supps = append(supps, supplement{name: "canning line", kw: 35, key: contract.ContributorProcess})
	}
	if boolField(in, "electricBoiler", false, t) {
		supps = append(supps, supplement{name: "electric boiler", kw: 60, key: contract.ContributorProcess})
	}
	if boolField(in, "taproom", true, t) {
		supps = append(supps, supplement{name: "taproom", kw: 18, key: contract.ContributorOther})
	}
	if coldRoom := numberField(in, "coldRoomSqFt", 0, t); coldRoom > 0 {
		supps = append(supps, supplement{name: "cold room", kw: coldRoom * 0.015, key: contract.ContributorCooling})
	}
	suppKW := addSupplements(raw, supps, t)

	peakKW := brewhouseKW + suppKW
	// Fermentation chilling runs continuously; brew days set the peak.
	duty := dutyFromHours(hours, 0.55, 0.70)

	details := map[string]float64{
		"brewhouseKW":     brewhouseKW,
		"annualBarrels":   barrels,
		"supplementalsKW": suppKW,
	}

	return finishResult("brewery", in, peakKW, duty, hours, raw, details, t)
}
