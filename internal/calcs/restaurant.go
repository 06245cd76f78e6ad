package calcs

import "github.com/evergrid/quoteflow/internal/contract"

// CalcRestaurantV1 is the stable id of the restaurant calculator.
const CalcRestaurantV1 = "restaurant_load_v1"

// restaurantSeatTokens maps format buttons to seat counts.
//
//nolint:gochecknoglobals // Package-level lookup table, initialized once.
var restaurantSeatTokens = tokenMap{
	"counter": 25,
	"small":   60,
	"medium":  120,
	"large":   250,
}

// restaurantKitchenTokens maps kitchen-type buttons to the cook-line
// electrical load in kW.
//
//nolint:gochecknoglobals // Package-level lookup table, initialized once.
var restaurantKitchenTokens = tokenMap{
	"none":        0,
	"warming":     15, // reheat and hold only
	"full":        60, // full cook line
	"high_volume": 110,
}

func restaurantContract() contract.Contract {
	return contract.Contract{
		ID:             CalcRestaurantV1,
		RequiredInputs: []string{"seats"},
		OptionalInputs: append([]string{
			"kitchenType", "walkInCoolers", "electricCooking",
		}, universalInputs...),
		Compute: computeRestaurant,
	}
}

func computeRestaurant(in contract.Inputs) contract.RunResult {
	in = in.Clone()
	t := newTrail()

	bridgeField(in, "seats", "seatCount", "seating")
	bridgeField(in, "kitchenType", "kitchenTier")

	seats := numberOrToken(in, "seats", restaurantSeatTokens, 120, t)
	kitchenKW := numberOrToken(in, "kitchenType", restaurantKitchenTokens, 60, t)
	hours := numberField(in, "operatingHours", 14, t)

	diningKW := ssotBase("restaurant", map[string]any{"seats": seats}, t)

	shares := map[contract.ContributorKey]float64{
		contract.ContributorHVAC:     0.40, // makeup air for hood exhaust
		contract.ContributorLighting: 0.14,
		contract.ContributorProcess:  0.18, // dish line, prep equipment
		contract.ContributorControls: 0.03,
		contract.ContributorITLoad:   0.04,
		contract.ContributorCooling:  0.13,
		contract.ContributorOther:    0.08,
	}
	raw := splitPeak(diningKW, shares)

	if !boolField(in, "electricCooking", true, t) {
		// Gas cook line: only controls and ignition stay electrical.
		kitchenKW *= 0.15
		t.assumef("gas cook line: kitchen electrical load reduced to ignition and controls")
	}
	supps := []supplement{
		{name: "cook line", kw: kitchenKW, key: contract.ContributorProcess},
	}
	if coolers := numberField(in, "walkInCoolers", 2, t); coolers > 0 {
		supps = append(supps, supplement{name: "walk-in coolers", kw: coolers * 4, key: contract.ContributorCooling})
	}
	suppKW := addSupplements(raw, supps, t)

	peakKW := diningKW + suppKW
	duty := dutyFromHours(hours, 0.55, 0.68)

	details := map[string]float64{
		"diningRoomKW":    diningKW,
		"cookLineKW":      kitchenKW,
		"seats":           seats,
		"supplementalsKW": suppKW,
	}

	return finishResult("restaurant", in, peakKW, duty, hours, raw, details, t)
}
