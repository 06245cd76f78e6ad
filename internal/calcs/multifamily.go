package calcs

import "github.com/evergrid/quoteflow/internal/contract"

// CalcMultifamilyV1 is the stable id of the multifamily calculator.
const CalcMultifamilyV1 = "multifamily_load_v1"

// multifamilyUnitTokens maps property-size buttons to dwelling-unit counts.
//
//nolint:gochecknoglobals // Package-level lookup table, initialized once.
var multifamilyUnitTokens = tokenMap{
	"small":  50,
	"medium": 150,
	"large":  350,
	"tower":  600,
}

func multifamilyContract() contract.Contract {
	return contract.Contract{
		ID:             CalcMultifamilyV1,
		RequiredInputs: []string{"units"},
		OptionalInputs: append([]string{
			"evParkingStalls", "amenityCenter", "centralLaundry", "electricHeat",
		}, universalInputs...),
		Compute: computeMultifamily,
	}
}

func computeMultifamily(in contract.Inputs) contract.RunResult {
	in = in.Clone()
	t := newTrail()

	bridgeField(in, "units", "unitCount", "apartments")
	bridgeField(in, "evParkingStalls", "evStalls", "evSpaces")

	units := numberOrToken(in, "units", multifamilyUnitTokens, 150, t)
	stalls := numberField(in, "evParkingStalls", 10, t)

	dwellingKW := ssotBase("multifamily", map[string]any{"units": units}, t)

	hvacShare := 0.34
	if boolField(in, "electricHeat", false, t) {
		hvacShare = 0.48
		t.assumef("electric resistance heat raises the HVAC share to 48%%")
	}
	shares := map[contract.ContributorKey]float64{
		contract.ContributorHVAC:     hvacShare,
		contract.ContributorLighting: 0.12,
		contract.ContributorProcess:  0.26, // in-unit appliances, elevators
		contract.ContributorControls: 0.02,
		contract.ContributorITLoad:   0.03,
		contract.ContributorOther:    0.13,
	}
	raw := splitPeak(dwellingKW, shares)

	var supps []supplement
	if stalls > 0 {
		// Overnight residential charging stacks up; 60% coincidence.
		supps = append(supps, supplement{name: "EV parking", kw: stalls * evL2PortKW * 0.6, key: contract.ContributorCharging})
	}
	if boolField(in, "amenityCenter", true, t) {
		supps = append(supps, supplement{name: "amenity center", kw: 30, key: contract.ContributorProcess})
	}
	if boolField(in, "centralLaundry", false, t) {
		supps = append(supps, supplement{name: "central laundry", kw: 25, key: contract.ContributorProcess})
	}
	suppKW := addSupplements(raw, supps, t)

	peakKW := dwellingKW + suppKW
	// Residential evening peak over a steady daytime base.
	duty := 0.60

	details := map[string]float64{
		"dwellingKW":      dwellingKW,
		"unitCount":       units,
		"evStalls":        stalls,
		"supplementalsKW": suppKW,
	}

	return finishResult("multifamily", in, peakKW, duty, 16, raw, details, t)
}
