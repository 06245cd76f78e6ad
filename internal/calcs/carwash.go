package calcs

import "github.com/evergrid/quoteflow/internal/contract"

// CalcCarWashV1 is the stable id of the car-wash calculator.
const CalcCarWashV1 = "car_wash_load_v1"

// carWashBayTokens maps site-size buttons to in-bay counts. Free-form
// descriptions like "4 bays, 1 tunnel" also work: the leading numeric run
// is coerced directly.
//
//nolint:gochecknoglobals // Package-level lookup table, initialized once.
var carWashBayTokens = tokenMap{
	"small":  2,
	"medium": 4,
	"large":  8,
}

func carWashContract() contract.Contract {
	return contract.Contract{
		ID:             CalcCarWashV1,
		RequiredInputs: []string{"bays"},
		OptionalInputs: append([]string{
			"tunnels", "vacuumStations", "blowerDryers", "waterReclaim", "electricWaterHeat",
		}, universalInputs...),
		Compute: computeCarWash,
	}
}

func computeCarWash(in contract.Inputs) contract.RunResult {
	in = in.Clone()
	t := newTrail()

	bridgeField(in, "bays", "washBays", "bayCount")
	bridgeField(in, "tunnels", "tunnelCount")
	bridgeField(in, "vacuumStations", "vacuums", "vacuumCount")

	bays := numberOrToken(in, "bays", carWashBayTokens, 4, t)
	tunnels := numberField(in, "tunnels", 0, t)
	vacuums := numberField(in, "vacuumStations", 8, t)
	hours := numberField(in, "operatingHours", 12, t)

	washKW := ssotBase("car_wash", map[string]any{
		"bays":           bays,
		"tunnels":        tunnels,
		"vacuumStations": vacuums,
	}, t)

	// Wash equipment is almost entirely motor load.
	shares := map[contract.ContributorKey]float64{
		contract.ContributorProcess:  0.78,
		contract.ContributorLighting: 0.10,
		contract.ContributorControls: 0.05,
		contract.ContributorHVAC:     0.07,
	}
	raw := splitPeak(washKW, shares)

	var supps []supplement
	if boolField(in, "blowerDryers", tunnels > 0, t) {
		// 30 HP blower bank per tunnel, or a smaller in-bay dryer set.
		dryerKW := 25.0
		if tunnels > 0 {
			dryerKW = tunnels * 30
		}
		supps = append(supps, supplement{name: "blower dryers", kw: dryerKW, key: contract.ContributorProcess})
	}
	if boolField(in, "waterReclaim", false, t) {
		supps = append(supps, supplement{name: "water reclaim pumps", kw: 8, key: contract.ContributorProcess})
	}
	if boolField(in, "electricWaterHeat", false, t) {
		supps = append(supps, supplement{name: "electric water heating", kw: 40, key: contract.ContributorProcess})
	}
	suppKW := addSupplements(raw, supps, t)

	peakKW := washKW + suppKW
	// Throughput is bursty; sustained load is a small fraction of peak.
	duty := dutyFromHours(hours, 0.35, 0.50)

	details := map[string]float64{
		"washEquipmentKW": washKW,
		"bays":            bays,
		"tunnels":         tunnels,
		"supplementalsKW": suppKW,
	}

	return finishResult("car_wash", in, peakKW, duty, hours, raw, details, t)
}
