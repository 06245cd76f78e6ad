package calcs

import "github.com/evergrid/quoteflow/internal/contract"

// CalcGasStationV1 is the stable id of the gas-station calculator.
const CalcGasStationV1 = "gas_station_load_v1"

// gasPumpTokens maps site-size buttons to fueling-position counts
// (midpoints of the NACS site-size bands).
//
//nolint:gochecknoglobals // Package-level lookup table, initialized once.
var gasPumpTokens = tokenMap{
	"small":  3,  // 2-4 positions
	"medium": 8,  // 6-10 positions
	"large":  16, // 12-20 positions
	"mega":   28, // travel-center scale
}

// gasStoreTokens maps convenience-store buttons to the store's electrical
// load in kW (lighting, coolers, food service).
//
//nolint:gochecknoglobals // Package-level lookup table, initialized once.
var gasStoreTokens = tokenMap{
	"none":  0,
	"basic": 15, // kiosk with drink coolers
	"full":  45, // full c-store with foodservice
}

func gasStationContract() contract.Contract {
	return contract.Contract{
		ID:             CalcGasStationV1,
		RequiredInputs: []string{"fuelPumps"},
		OptionalInputs: append([]string{"convenienceStore", "carWash"}, universalInputs...),
		Compute:        computeGasStation,
	}
}

func computeGasStation(in contract.Inputs) contract.RunResult {
	in = in.Clone()
	t := newTrail()

	bridgeField(in, "fuelPumps", "pumps", "fuelingPositions")
	bridgeField(in, "convenienceStore", "cStore", "storeTier")

	pumps := numberOrToken(in, "fuelPumps", gasPumpTokens, 8, t)
	storeKW := numberOrToken(in, "convenienceStore", gasStoreTokens, 15, t)
	hours := numberField(in, "operatingHours", 18, t)

	fuelingKW := ssotBase("gas_station", map[string]any{"fuelPumps": pumps}, t)

	// Fueling splits between dispenser motors (process) and canopy/site
	// electrical.
	shares := map[contract.ContributorKey]float64{
		contract.ContributorProcess:  0.55,
		contract.ContributorLighting: 0.25, // canopy lighting dominates at night
		contract.ContributorControls: 0.10,
		contract.ContributorHVAC:     0.10,
	}
	raw := splitPeak(fuelingKW, shares)

	supps := []supplement{
		{name: "convenience store", kw: storeKW, key: contract.ContributorOther},
	}
	if boolField(in, "carWash", false, t) {
		supps = append(supps, supplement{name: "in-bay car wash", kw: 30, key: contract.ContributorProcess})
	}
	suppKW := addSupplements(raw, supps, t)

	peakKW := fuelingKW + suppKW
	duty := dutyFromHours(hours, 0.50, 0.70)

	details := map[string]float64{
		"fuelingKW":       fuelingKW,
		"storeKW":         storeKW,
		"pumpCount":       pumps,
		"supplementalsKW": suppKW,
	}

	return finishResult("gas_station", in, peakKW, duty, hours, raw, details, t)
}
