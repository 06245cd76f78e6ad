package calcs

import "github.com/evergrid/quoteflow/internal/contract"

// Stable ids of the hotel calculator generations. The simple generation is
// a coarse single-field estimate kept for short flows; the full generation
// models amenities and EV parking.
const (
	CalcHotelV1       = "hotel_load_v1"
	CalcHotelSimpleV1 = "hotel_simple_v1"
)

// hotelRoomTokens maps property-size buttons to room counts (midpoints of
// the STR chain-scale size bands).
//
//nolint:gochecknoglobals // Package-level lookup table, initialized once.
var hotelRoomTokens = tokenMap{
	"small":  60,
	"medium": 120,
	"large":  300,
	"mega":   600,
}

// hotelAmenityTokens maps service-tier buttons to the amenity block load
// in kW (pool, fitness, meeting space, back-of-house kitchen).
//
//nolint:gochecknoglobals // Package-level lookup table, initialized once.
var hotelAmenityTokens = tokenMap{
	"economy":     0,
	"midscale":    15,
	"fullservice": 45,
	"resort":      90,
}

func hotelContract() contract.Contract {
	return contract.Contract{
		ID:             CalcHotelV1,
		RequiredInputs: []string{"rooms"},
		OptionalInputs: append([]string{
			"occupancyPct", "amenityLevel", "ledLighting", "evParkingStalls", "centralLaundry",
		}, universalInputs...),
		Compute: computeHotel,
	}
}

func hotelSimpleContract() contract.Contract {
	return contract.Contract{
		ID:             CalcHotelSimpleV1,
		RequiredInputs: []string{"rooms"},
		OptionalInputs: universalInputs,
		Compute: func(in contract.Inputs) contract.RunResult {
			in = in.Clone()
			t := newTrail()
			bridgeField(in, "rooms", "roomCount", "numRooms", "numberOfRooms")
			rooms := numberOrToken(in, "rooms", hotelRoomTokens, 120, t)
			peakKW := ssotBase("hotel", map[string]any{"rooms": rooms}, t)
			raw := map[contract.ContributorKey]float64{contract.ContributorOther: peakKW}
			return finishResult("hotel", in, peakKW, 0.70, 16, raw, nil, t)
		},
	}
}

func computeHotel(in contract.Inputs) contract.RunResult {
	in = in.Clone()
	t := newTrail()

	bridgeField(in, "rooms", "roomCount", "numRooms", "numberOfRooms")
	bridgeField(in, "occupancyPct", "occupancyRate", "occupancy")

	rooms := numberOrToken(in, "rooms", hotelRoomTokens, 120, t)
	occupancy := numberField(in, "occupancyPct", 70, t)
	amenityKW := numberOrToken(in, "amenityLevel", hotelAmenityTokens, 15, t)
	hours := numberField(in, "operatingHours", 24, t)

	guestKW := ssotBase("hotel", map[string]any{"rooms": rooms, "occupancyPct": occupancy / 100}, t)

	// Guest-wing split. LED retrofits shrink the lighting share; the saved
	// fraction is recaptured by HVAC, which picks up the lost heat gain.
	lightingShare, hvacShare := 0.16, 0.38
	if boolField(in, "ledLighting", false, t) {
		lightingShare, hvacShare = 0.09, 0.45
		t.assumef("LED lighting: lighting share reduced to 9%%, recaptured into HVAC")
	}
	shares := map[contract.ContributorKey]float64{
		contract.ContributorHVAC:     hvacShare,
		contract.ContributorLighting: lightingShare,
		contract.ContributorProcess:  0.20, // kitchen, elevators, pumps
		contract.ContributorControls: 0.03,
		contract.ContributorITLoad:   0.05,
		contract.ContributorCooling:  0.08, // walk-ins and minibars
		contract.ContributorOther:    0.10,
	}
	raw := splitPeak(guestKW, shares)

	supps := []supplement{
		{name: "amenity block", kw: amenityKW, key: contract.ContributorProcess},
	}
	if stalls := numberField(in, "evParkingStalls", 0, t); stalls > 0 {
		// Overnight L2 stalls at 60% coincidence.
		supps = append(supps, supplement{name: "EV parking", kw: stalls * evL2PortKW * 0.6, key: contract.ContributorCharging})
	}
	if boolField(in, "centralLaundry", false, t) {
		supps = append(supps, supplement{name: "central laundry", kw: 35, key: contract.ContributorProcess})
	}
	suppKW := addSupplements(raw, supps, t)

	peakKW := guestKW + suppKW
	duty := dutyFromHours(hours, 0.60, 0.72)

	details := map[string]float64{
		"guestWingKW":     guestKW,
		"roomCount":       rooms,
		"occupancyPct":    occupancy,
		"supplementalsKW": suppKW,
	}

	return finishResult("hotel", in, peakKW, duty, 16, raw, details, t)
}
