package calcs

import "github.com/evergrid/quoteflow/internal/contract"

// CalcTruckStopV1 is the stable id of the truck-stop calculator.
const CalcTruckStopV1 = "truck_stop_load_v1"

// truckStopLaneTokens maps site-size buttons to diesel lane counts.
//
//nolint:gochecknoglobals // Package-level lookup table, initialized once.
var truckStopLaneTokens = tokenMap{
	"small":  4,
	"medium": 8,
	"large":  14,
}

func truckStopContract() contract.Contract {
	return contract.Contract{
		ID:             CalcTruckStopV1,
		RequiredInputs: []string{"dieselLanes"},
		OptionalInputs: append([]string{
			"parkingSpots", "showers", "restaurant", "mcsChargers",
		}, universalInputs...),
		Compute: computeTruckStop,
	}
}

func computeTruckStop(in contract.Inputs) contract.RunResult {
	in = in.Clone()
	t := newTrail()

	bridgeField(in, "dieselLanes", "dieselLaneCount", "fuelLanes")
	bridgeField(in, "parkingSpots", "truckParking", "truckParkingCount")

	lanes := numberOrToken(in, "dieselLanes", truckStopLaneTokens, 8, t)
	parking := numberField(in, "parkingSpots", 80, t)

	siteKW := ssotBase("truck_stop", map[string]any{
		"dieselLanes":  lanes,
		"parkingSpots": parking,
	}, t)

	// Shore power for parked cabs is a charging-class load; carve it out
	// of the base estimate.
	shoreKW := parking * 0.3
	if shoreKW > siteKW*0.6 {
		shoreKW = siteKW * 0.6
	}
	shellKW := siteKW - shoreKW

	shares := map[contract.ContributorKey]float64{
		contract.ContributorProcess:  0.30, // fueling and store equipment
		contract.ContributorHVAC:     0.24,
		contract.ContributorLighting: 0.26, // lot and canopy lighting
		contract.ContributorControls: 0.05,
		contract.ContributorITLoad:   0.05,
		contract.ContributorOther:    0.10,
	}
	raw := splitPeak(shellKW, shares)
	raw[contract.ContributorCharging] += shoreKW
	t.assumef("truck shore power carved out as %.0f kW charging contributor", shoreKW)

	var supps []supplement
	if showers := numberField(in, "showers", 6, t); showers > 0 {
		supps = append(supps, supplement{name: "shower water heating", kw: showers * 4.5, key: contract.ContributorProcess})
	}
	if boolField(in, "restaurant", true, t) {
		supps = append(supps, supplement{name: "restaurant", kw: 55, key: contract.ContributorProcess})
	}
	if mcs := numberField(in, "mcsChargers", 0, t); mcs > 0 {
		// Megawatt charging for electric freight, nameplate 1 MW each at
		// 50% coincidence.
		supps = append(supps, supplement{name: "megawatt charging system", kw: mcs * 500, key: contract.ContributorCharging})
	}
	suppKW := addSupplements(raw, supps, t)

	peakKW := siteKW + suppKW
	// Interstate travel centers run around the clock.
	duty := 0.75

	details := map[string]float64{
		"siteKW":          siteKW,
		"shorePowerKW":    shoreKW,
		"dieselLanes":     lanes,
		"supplementalsKW": suppKW,
	}

	return finishResult("truck_stop", in, peakKW, duty, 0, raw, details, t)
}
