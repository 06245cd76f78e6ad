package calcs

import "github.com/evergrid/quoteflow/internal/contract"

// Stable ids of the EV-charging calculator generations. v2 adds 350 kW
// high-power charging; v1 remains registered for flows bound to it.
const (
	CalcEVChargingV1 = "ev_charging_load_v1"
	CalcEVChargingV2 = "ev_charging_load_v2"
)

// Nameplate ratings per port class.
const (
	evL2PortKW   = 9.6 // Level 2, 240V/40A continuous
	evDCFCPortKW = 150 // mainstream DC fast charger
	evHPCPortKW  = 350 // high-power corridor charger
)

// evChargingShareBand is the expected charging fraction of peak for a
// dedicated charging hub. Results outside the band get a warning rather
// than an adjustment; the cause is usually an input error.
const (
	evChargingShareMin = 0.80
	evChargingShareMax = 0.99
)

func evChargingContractV2() contract.Contract {
	return contract.Contract{
		ID:             CalcEVChargingV2,
		RequiredInputs: []string{"level2Chargers", "dcfcChargers"},
		OptionalInputs: append([]string{"hpcChargers", "canopyLighting"}, universalInputs...),
		Compute:        computeEVCharging,
	}
}

// evChargingContractV1 is the pre-HPC generation: same model with the
// hpcChargers field ignored. Kept under its own id because flows bound to
// v1 rely on its exact semantics.
func evChargingContractV1() contract.Contract {
	return contract.Contract{
		ID:             CalcEVChargingV1,
		RequiredInputs: []string{"level2Chargers", "dcfcChargers"},
		OptionalInputs: universalInputs,
		Compute: func(in contract.Inputs) contract.RunResult {
			in = in.Clone()
			delete(in, "hpcChargers")
			delete(in, "hpc350Chargers")
			return computeEVCharging(in)
		},
	}
}

func computeEVCharging(in contract.Inputs) contract.RunResult {
	in = in.Clone()
	t := newTrail()

	// Legacy payloads spell the DC fast count two ways.
	bridgeField(in, "dcfcChargers", "dcFastChargers", "dcfc")
	bridgeField(in, "level2Chargers", "l2Chargers", "level2")
	bridgeField(in, "hpcChargers", "hpc350Chargers", "ultraFastChargers")

	l2 := numberField(in, "level2Chargers", 4, t)
	dcfc := numberField(in, "dcfcChargers", 2, t)
	hpc := 0.0
	if in.Has("hpcChargers") {
		hpc = numberField(in, "hpcChargers", 0, t)
	}
	hours := numberField(in, "operatingHours", 24, t)

	chargingKW := ssotBase("ev_charging", map[string]any{
		"level2Chargers": l2,
		"dcfcChargers":   dcfc,
		"hpcChargers":    hpc,
	}, t)

	raw := map[contract.ContributorKey]float64{
		contract.ContributorCharging: chargingKW,
	}

	supps := []supplement{
		{name: "canopy and site lighting", kw: numberField(in, "canopyLighting", 8, t), key: contract.ContributorLighting},
		{name: "site controls and network", kw: 4, key: contract.ContributorControls},
		{name: "driver amenity kiosk", kw: 10, key: contract.ContributorOther},
	}
	suppKW := addSupplements(raw, supps, t)

	peakKW := chargingKW + suppKW

	if peakKW > 0 {
		share := chargingKW / peakKW
		if share < evChargingShareMin || share > evChargingShareMax {
			t.warnf("charging share outside band: %.0f%% of peak (expected %.0f-%.0f%%)",
				share*100, evChargingShareMin*100, evChargingShareMax*100)
		}
	}

	// Charging hubs are peaky: high nameplate, low sustained utilization.
	duty := 0.30
	if hours < 18 {
		duty = 0.25
	}

	details := map[string]float64{
		"chargingKW":   chargingKW,
		"level2Ports":  l2,
		"dcfcPorts":    dcfc,
		"hpcPorts":     hpc,
		"siteAuxKW":    suppKW,
		"chargingPct":  0,
		"portsTotalKW": l2*evL2PortKW + dcfc*evDCFCPortKW + hpc*evHPCPortKW,
	}
	if peakKW > 0 {
		details["chargingPct"] = chargingKW / peakKW
	}

	return finishResult("ev_charging", in, peakKW, duty, hours, raw, details, t)
}
