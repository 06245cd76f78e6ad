package calcs

import "github.com/evergrid/quoteflow/internal/contract"

// CalcManufacturingV1 is the stable id of the manufacturing calculator.
const CalcManufacturingV1 = "manufacturing_load_v1"

// manufacturingProcessTokens maps plant-size buttons to process line load
// in kW (midpoints of light / medium / heavy industrial bands).
//
//nolint:gochecknoglobals // Package-level lookup table, initialized once.
var manufacturingProcessTokens = tokenMap{
	"light":  150,
	"medium": 400,
	"heavy":  1200,
}

// Compressed air: shaft HP to electrical kW at typical motor efficiency.
const compressorKWPerHP = 0.746 / 0.92

func manufacturingContract() contract.Contract {
	return contract.Contract{
		ID:             CalcManufacturingV1,
		RequiredInputs: []string{"processLoadKW"},
		OptionalInputs: append([]string{
			"compressedAirHP", "weldingStations", "shifts", "processHeat",
		}, universalInputs...),
		Compute: computeManufacturing,
	}
}

func computeManufacturing(in contract.Inputs) contract.RunResult {
	in = in.Clone()
	t := newTrail()

	bridgeField(in, "processLoadKW", "processKW", "machineLoadKW")
	bridgeField(in, "compressedAirHP", "compressorHP")

	process := numberOrToken(in, "processLoadKW", manufacturingProcessTokens, 400, t)
	airHP := numberField(in, "compressedAirHP", 0, t)
	welders := numberField(in, "weldingStations", 0, t)
	shifts := numberField(in, "shifts", 2, t)

	lineKW := ssotBase("manufacturing", map[string]any{"processLoadKW": process}, t)

	shares := map[contract.ContributorKey]float64{
		contract.ContributorProcess:  0.62,
		contract.ContributorHVAC:     0.14,
		contract.ContributorLighting: 0.08,
		contract.ContributorControls: 0.05,
		contract.ContributorITLoad:   0.03,
		contract.ContributorCooling:  0.04, // process chilling
		contract.ContributorOther:    0.04,
	}
	raw := splitPeak(lineKW, shares)

	supps := []supplement{
		{name: "compressed-air system", kw: airHP * compressorKWPerHP, key: contract.ContributorProcess},
		{name: "welding stations", kw: welders * 12, key: contract.ContributorProcess},
	}
	if boolField(in, "processHeat", false, t) {
		supps = append(supps, supplement{name: "electric process heat", kw: lineKW * 0.15, key: contract.ContributorProcess})
	}
	suppKW := addSupplements(raw, supps, t)

	peakKW := lineKW + suppKW

	// Shift pattern sets the sustained fraction of peak.
	duty := 0.55
	switch {
	case shifts >= 3:
		duty = 0.85
	case shifts >= 2:
		duty = 0.70
	}
	activeHours := shifts * 8
	if activeHours > 24 {
		activeHours = 24
	}

	details := map[string]float64{
		"processLineKW":   lineKW,
		"compressedAirKW": airHP * compressorKWPerHP,
		"shifts":          shifts,
		"supplementalsKW": suppKW,
	}

	return finishResult("manufacturing", in, peakKW, duty, activeHours, raw, details, t)
}
