package calcs

import "github.com/evergrid/quoteflow/internal/contract"

// CalcOfficeV1 is the stable id of the office calculator.
const CalcOfficeV1 = "office_load_v1"

// officeSizeTokens maps building-size buttons to floor area in sq ft.
//
//nolint:gochecknoglobals // Package-level lookup table, initialized once.
var officeSizeTokens = tokenMap{
	"small":  15000,
	"medium": 50000,
	"large":  150000,
	"tower":  400000,
}

func officeContract() contract.Contract {
	return contract.Contract{
		ID:             CalcOfficeV1,
		RequiredInputs: []string{"facilitySize"},
		OptionalInputs: append([]string{
			"serverRoomKW", "ledLighting", "evParkingStalls", "commercialKitchen",
		}, universalInputs...),
		Compute: computeOffice,
	}
}

func computeOffice(in contract.Inputs) contract.RunResult {
	in = in.Clone()
	t := newTrail()

	bridgeField(in, "facilitySize", "floorAreaSqFt", "buildingSqFt")
	bridgeField(in, "serverRoomKW", "dataClosetKW", "itRoomKW")

	area := numberOrToken(in, "facilitySize", officeSizeTokens, 50000, t)
	serverKW := numberField(in, "serverRoomKW", 15, t)
	hours := numberField(in, "operatingHours", 10, t)

	buildingKW := ssotBase("office", map[string]any{"facilitySize": area}, t)

	lightingShare, hvacShare := 0.22, 0.40
	if boolField(in, "ledLighting", false, t) {
		lightingShare, hvacShare = 0.13, 0.49
		t.assumef("LED lighting: lighting share reduced to 13%%, recaptured into HVAC")
	}
	shares := map[contract.ContributorKey]float64{
		contract.ContributorHVAC:     hvacShare,
		contract.ContributorLighting: lightingShare,
		contract.ContributorProcess:  0.10, // elevators, plug loads beyond IT
		contract.ContributorControls: 0.04,
		contract.ContributorITLoad:   0.15,
		contract.ContributorOther:    0.09,
	}
	raw := splitPeak(buildingKW, shares)

	supps := []supplement{
		{name: "server room", kw: serverKW, key: contract.ContributorITLoad},
	}
	if stalls := numberField(in, "evParkingStalls", 0, t); stalls > 0 {
		// Workplace charging: daytime coincidence near 50%.
		supps = append(supps, supplement{name: "EV parking", kw: stalls * evL2PortKW * 0.5, key: contract.ContributorCharging})
	}
	if boolField(in, "commercialKitchen", false, t) {
		supps = append(supps, supplement{name: "cafeteria kitchen", kw: 50, key: contract.ContributorProcess})
	}
	suppKW := addSupplements(raw, supps, t)

	peakKW := buildingKW + suppKW
	duty := dutyFromHours(hours, 0.55, 0.70)

	details := map[string]float64{
		"buildingKW":      buildingKW,
		"floorAreaSqFt":   area,
		"supplementalsKW": suppKW,
	}

	return finishResult("office", in, peakKW, duty, hours, raw, details, t)
}
