package calcs

import "github.com/evergrid/quoteflow/internal/contract"

// CalcWarehouseV1 is the stable id of the warehouse calculator.
const CalcWarehouseV1 = "warehouse_load_v1"

// warehouseSizeTokens maps facility-size buttons to floor area in sq ft.
//
//nolint:gochecknoglobals // Package-level lookup table, initialized once.
var warehouseSizeTokens = tokenMap{
	"small":  50000,
	"medium": 100000,
	"large":  250000,
	"mega":   600000,
}

// warehouseDockTokens maps dock-door buttons to door counts: "medium" is
// the midpoint of its stated 8-16 band.
//
//nolint:gochecknoglobals // Package-level lookup table, initialized once.
var warehouseDockTokens = tokenMap{
	"few":    6,
	"medium": 12,
	"many":   24,
}

func warehouseContract() contract.Contract {
	return contract.Contract{
		ID:             CalcWarehouseV1,
		RequiredInputs: []string{"facilitySize"},
		OptionalInputs: append([]string{
			"dockDoors", "forkliftChargers", "coldSection", "conveyorSystems",
		}, universalInputs...),
		Compute: computeWarehouse,
	}
}

func computeWarehouse(in contract.Inputs) contract.RunResult {
	in = in.Clone()
	t := newTrail()

	bridgeField(in, "facilitySize", "floorAreaSqFt", "warehouseSqFt")
	bridgeField(in, "dockDoors", "dockDoorCount", "loadingDocks")
	bridgeField(in, "forkliftChargers", "forkliftChargerCount")

	area := numberOrToken(in, "facilitySize", warehouseSizeTokens, 100000, t)
	docks := numberOrToken(in, "dockDoors", warehouseDockTokens, 12, t)
	chargers := numberField(in, "forkliftChargers", 10, t)
	hours := numberField(in, "operatingHours", 16, t)

	buildingKW := ssotBase("warehouse", map[string]any{
		"facilitySize":     area,
		"dockDoors":        docks,
		"forkliftChargers": chargers,
	}, t)

	// Forklift charging is its own contributor; carve it out of the base
	// estimate so the decomposition matches the inputs.
	chargingKW := chargers * 6
	if chargingKW > buildingKW*0.5 {
		chargingKW = buildingKW * 0.5
	}
	shellKW := buildingKW - chargingKW

	shares := map[contract.ContributorKey]float64{
		contract.ContributorLighting: 0.34, // high-bay fixtures dominate the shell
		contract.ContributorHVAC:     0.30,
		contract.ContributorProcess:  0.22, // dock equipment, compactors
		contract.ContributorControls: 0.05,
		contract.ContributorITLoad:   0.04,
		contract.ContributorOther:    0.05,
	}
	raw := splitPeak(shellKW, shares)
	raw[contract.ContributorCharging] += chargingKW
	t.assumef("forklift charging carved out as %.0f kW charging contributor", chargingKW)

	var supps []supplement
	if boolField(in, "coldSection", false, t) {
		supps = append(supps, supplement{name: "refrigerated section", kw: area * 0.002, key: contract.ContributorCooling})
	}
	if boolField(in, "conveyorSystems", false, t) {
		supps = append(supps, supplement{name: "conveyor and sortation", kw: 60, key: contract.ContributorProcess})
	}
	suppKW := addSupplements(raw, supps, t)

	peakKW := buildingKW + suppKW
	duty := dutyFromHours(hours, 0.50, 0.80)

	details := map[string]float64{
		"shellKW":           shellKW,
		"forkliftCharging":  chargingKW,
		"dockDoors":         docks,
		"floorAreaSqFt":     area,
		"supplementalLoads": suppKW,
	}

	return finishResult("warehouse", in, peakKW, duty, hours, raw, details, t)
}
