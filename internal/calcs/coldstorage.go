package calcs

import "github.com/evergrid/quoteflow/internal/contract"

// CalcColdStorageV1 is the stable id of the cold-storage calculator.
const CalcColdStorageV1 = "cold_storage_load_v1"

// coldStorageSizeTokens maps facility-size buttons to floor area in sq ft.
//
//nolint:gochecknoglobals // Package-level lookup table, initialized once.
var coldStorageSizeTokens = tokenMap{
	"small":  25000,
	"medium": 60000,
	"large":  150000,
}

func coldStorageContract() contract.Contract {
	return contract.Contract{
		ID:             CalcColdStorageV1,
		RequiredInputs: []string{"facilitySize"},
		OptionalInputs: append([]string{
			"freezerSharePct", "blastFreezer", "refrigeratedDocks",
		}, universalInputs...),
		Compute: computeColdStorage,
	}
}

func computeColdStorage(in contract.Inputs) contract.RunResult {
	in = in.Clone()
	t := newTrail()

	bridgeField(in, "facilitySize", "floorAreaSqFt", "warehouseSqFt")
	bridgeField(in, "freezerSharePct", "freezerFraction", "freezerPct")

	area := numberOrToken(in, "facilitySize", coldStorageSizeTokens, 60000, t)
	freezerPct := numberField(in, "freezerSharePct", 40, t)

	refrigKW := ssotBase("cold_storage", map[string]any{
		"facilitySize":    area,
		"freezerSharePct": freezerPct / 100,
	}, t)

	shares := map[contract.ContributorKey]float64{
		contract.ContributorCooling:  0.68, // compressor racks and evaporators
		contract.ContributorHVAC:     0.06, // dock and office space only
		contract.ContributorLighting: 0.08,
		contract.ContributorProcess:  0.08, // material handling
		contract.ContributorControls: 0.05,
		contract.ContributorITLoad:   0.02,
		contract.ContributorOther:    0.03,
	}
	raw := splitPeak(refrigKW, shares)

	var supps []supplement
	if boolField(in, "blastFreezer", false, t) {
		supps = append(supps, supplement{name: "blast freezer cell", kw: 80, key: contract.ContributorCooling})
	}
	if docks := numberField(in, "refrigeratedDocks", 0, t); docks > 0 {
		supps = append(supps, supplement{name: "refrigerated docks", kw: docks * 5, key: contract.ContributorCooling})
	}
	suppKW := addSupplements(raw, supps, t)

	peakKW := refrigKW + suppKW
	// Compressors run around the clock; defrost windows barely dent it.
	duty := 0.90

	details := map[string]float64{
		"refrigerationKW": refrigKW,
		"floorAreaSqFt":   area,
		"freezerSharePct": freezerPct,
		"supplementalsKW": suppKW,
	}

	return finishResult("cold_storage", in, peakKW, duty, 0, raw, details, t)
}
