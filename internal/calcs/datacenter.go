package calcs

import "github.com/evergrid/quoteflow/internal/contract"

// CalcDataCenterV1 is the stable id of the data-center calculator.
const CalcDataCenterV1 = "data_center_load_v1"

// dataCenterRackTokens maps facility-size buttons to rack counts
// (midpoints of edge / enterprise / colo / hyperscale-pod bands).
//
//nolint:gochecknoglobals // Package-level lookup table, initialized once.
var dataCenterRackTokens = tokenMap{
	"edge":   10,
	"small":  10,
	"medium": 40,
	"large":  150,
	"mega":   400,
}

func dataCenterContract() contract.Contract {
	return contract.Contract{
		ID:             CalcDataCenterV1,
		RequiredInputs: []string{"rackCount"},
		OptionalInputs: append([]string{"kwPerRack", "redundancy", "liquidCooling"}, universalInputs...),
		Compute:        computeDataCenter,
	}
}

func computeDataCenter(in contract.Inputs) contract.RunResult {
	in = in.Clone()
	t := newTrail()

	bridgeField(in, "rackCount", "racks", "numRacks")
	bridgeField(in, "kwPerRack", "rackDensity", "rackDensityKW")

	racks := numberOrToken(in, "rackCount", dataCenterRackTokens, 40, t)
	density := numberField(in, "kwPerRack", 8, t)
	redundancy := tokenField(in, "redundancy", "n1", t)

	totalKW := ssotBase("data_center", map[string]any{
		"rackCount":  racks,
		"kwPerRack":  density,
		"redundancy": redundancy,
	}, t)

	// The IT/cooling split follows from the PUE baked into the base
	// estimate; liquid cooling shifts fan energy into pump energy with a
	// smaller cooling fraction overall.
	itShare, coolingShare := 0.58, 0.30
	if boolField(in, "liquidCooling", false, t) {
		itShare, coolingShare = 0.66, 0.22
		t.assumef("liquid cooling: cooling share reduced to 22%%")
	}
	shares := map[contract.ContributorKey]float64{
		contract.ContributorITLoad:   itShare,
		contract.ContributorCooling:  coolingShare,
		contract.ContributorHVAC:     0.04, // office and support space
		contract.ContributorLighting: 0.02,
		contract.ContributorControls: 0.03,
		contract.ContributorOther:    0.03, // conversion and distribution loss
	}
	raw := splitPeak(totalKW, shares)

	// Continuous-duty facility: base load tracks peak closely.
	duty := 0.92

	details := map[string]float64{
		"rackCount":    racks,
		"kwPerRack":    density,
		"criticalITKW": totalKW * itShare,
	}

	return finishResult("data_center", in, totalKW, duty, 0, raw, details, t)
}
