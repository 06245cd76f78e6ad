package calcs

import "github.com/evergrid/quoteflow/internal/contract"

// CalcCasinoV1 is the stable id of the casino calculator.
const CalcCasinoV1 = "casino_load_v1"

// casinoFloorTokens maps property-size buttons to gaming-floor area.
//
//nolint:gochecknoglobals // Package-level lookup table, initialized once.
var casinoFloorTokens = tokenMap{
	"small":  20000,
	"medium": 50000,
	"large":  120000,
}

func casinoContract() contract.Contract {
	return contract.Contract{
		ID:             CalcCasinoV1,
		RequiredInputs: []string{"gamingFloorSqFt"},
		OptionalInputs: append([]string{
			"hotelRooms", "restaurants", "marqueeSignage",
		}, universalInputs...),
		Compute: computeCasino,
	}
}

func computeCasino(in contract.Inputs) contract.RunResult {
	in = in.Clone()
	t := newTrail()

	bridgeField(in, "gamingFloorSqFt", "gamingArea", "casinoSqFt")
	bridgeField(in, "hotelRooms", "rooms", "roomCount")

	gaming := numberOrToken(in, "gamingFloorSqFt", casinoFloorTokens, 50000, t)
	rooms := numberField(in, "hotelRooms", 0, t)
	restaurants := numberField(in, "restaurants", 2, t)

	propertyKW := ssotBase("casino", map[string]any{
		"gamingFloorSqFt": gaming,
		"hotelRooms":      rooms,
	}, t)

	shares := map[contract.ContributorKey]float64{
		contract.ContributorHVAC:     0.36, // smoke-handling air changes
		contract.ContributorLighting: 0.22,
		contract.ContributorProcess:  0.10,
		contract.ContributorControls: 0.03,
		contract.ContributorITLoad:   0.14, // gaming machines and surveillance
		contract.ContributorCooling:  0.08,
		contract.ContributorOther:    0.07,
	}
	raw := splitPeak(propertyKW, shares)

	supps := []supplement{
		{name: "restaurant outlets", kw: restaurants * 45, key: contract.ContributorProcess},
	}
	if boolField(in, "marqueeSignage", true, t) {
		supps = append(supps, supplement{name: "marquee signage", kw: 25, key: contract.ContributorLighting})
	}
	suppKW := addSupplements(raw, supps, t)

	peakKW := propertyKW + suppKW
	// Gaming floors never close.
	duty := 0.88

	details := map[string]float64{
		"propertyKW":      propertyKW,
		"gamingFloorSqFt": gaming,
		"hotelRooms":      rooms,
		"supplementalsKW": suppKW,
	}

	return finishResult("casino", in, peakKW, duty, 0, raw, details, t)
}
