package calcs

import "github.com/evergrid/quoteflow/internal/contract"

// CalcIndoorFarmV1 is the stable id of the indoor-farm calculator.
const CalcIndoorFarmV1 = "indoor_farm_load_v1"

// indoorFarmCanopyTokens maps farm-size buttons to canopy area in sq ft.
//
//nolint:gochecknoglobals // Package-level lookup table, initialized once.
var indoorFarmCanopyTokens = tokenMap{
	"small":  5000,
	"medium": 20000,
	"large":  60000,
}

// indoorFarmLampFactor scales the HPS-era canopy benchmark by lighting
// technology.
//
//nolint:gochecknoglobals // Package-level lookup table, initialized once.
var indoorFarmLampFactor = map[string]float64{
	"hps":    1.0,
	"led":    0.62,
	"hybrid": 0.80,
}

func indoorFarmContract() contract.Contract {
	return contract.Contract{
		ID:             CalcIndoorFarmV1,
		RequiredInputs: []string{"canopySqFt"},
		OptionalInputs: append([]string{
			"lightingTech", "dehumidifiers", "photoperiodHours",
		}, universalInputs...),
		Compute: computeIndoorFarm,
	}
}

func computeIndoorFarm(in contract.Inputs) contract.RunResult {
	in = in.Clone()
	t := newTrail()

	bridgeField(in, "canopySqFt", "canopyArea", "growAreaSqFt")

	canopy := numberOrToken(in, "canopySqFt", indoorFarmCanopyTokens, 20000, t)
	lampTech := tokenField(in, "lightingTech", "led", t)
	photoperiod := numberField(in, "photoperiodHours", 16, t)

	benchmarkKW := ssotBase("indoor_farm", map[string]any{"canopySqFt": canopy}, t)

	lampFactor, ok := indoorFarmLampFactor[lampTech]
	if !ok {
		lampFactor = indoorFarmLampFactor["led"]
		t.fallback("lightingTech", "led", "unrecognized token")
	}
	growKW := benchmarkKW * lampFactor
	if lampFactor < 1 {
		t.assumef("%s lighting scales canopy benchmark by %.2f", lampTech, lampFactor)
	}

	// LED fleets shed less heat into the room, but dehumidification demand
	// stays tied to transpiration, so the HVAC fraction grows as the
	// lighting fraction shrinks.
	lightingShare := 0.65 * lampFactor
	hvacShare := 0.25 + 0.65*(1-lampFactor)*0.4
	shares := map[contract.ContributorKey]float64{
		contract.ContributorLighting: lightingShare,
		contract.ContributorHVAC:     hvacShare,
		contract.ContributorProcess:  0.06, // irrigation and nutrient pumps
		contract.ContributorControls: 0.04,
		contract.ContributorOther:    0.03,
	}
	raw := splitPeak(growKW, shares)

	var supps []supplement
	if units := numberField(in, "dehumidifiers", 0, t); units > 0 {
		supps = append(supps, supplement{name: "standalone dehumidifiers", kw: units * 7, key: contract.ContributorHVAC})
	}
	suppKW := addSupplements(raw, supps, t)

	peakKW := growKW + suppKW

	// Load rides the photoperiod: lights-on defines peak, lights-off keeps
	// climate systems running.
	duty := 0.45 + 0.015*photoperiod
	if duty > 0.85 {
		duty = 0.85
	}

	details := map[string]float64{
		"growLightingKW":  growKW,
		"canopySqFt":      canopy,
		"lampFactor":      lampFactor,
		"photoperiodHrs":  photoperiod,
		"supplementalsKW": suppKW,
	}

	return finishResult("indoor_farm", in, peakKW, duty, photoperiod, raw, details, t)
}
