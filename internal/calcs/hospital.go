package calcs

import "github.com/evergrid/quoteflow/internal/contract"

// CalcHospitalV1 is the stable id of the hospital calculator.
const CalcHospitalV1 = "hospital_load_v1"

// hospitalBedTokens maps facility-size buttons to licensed bed counts
// (midpoints of AHA size classes).
//
//nolint:gochecknoglobals // Package-level lookup table, initialized once.
var hospitalBedTokens = tokenMap{
	"clinic":   25,
	"small":    75,
	"medium":   150,
	"large":    350,
	"regional": 600,
}

// Per-unit loads for clinical equipment the base estimator does not model.
// ASHRAE healthcare design guides, rounded.
const (
	hospitalORSuiteKW   = 25 // surgical suite incl. air handling
	hospitalMRIKW       = 70 // MRI incl. cryo-compressor
	hospitalCTScannerKW = 30
)

func hospitalContract() contract.Contract {
	return contract.Contract{
		ID:             CalcHospitalV1,
		RequiredInputs: []string{"beds"},
		OptionalInputs: append([]string{
			"surgicalSuites", "mriUnits", "ctScanners", "dataCenterKW",
		}, universalInputs...),
		Compute: computeHospital,
	}
}

func computeHospital(in contract.Inputs) contract.RunResult {
	in = in.Clone()
	t := newTrail()

	bridgeField(in, "beds", "bedCount", "licensedBeds")
	bridgeField(in, "surgicalSuites", "operatingRooms", "orSuites")

	beds := numberOrToken(in, "beds", hospitalBedTokens, 150, t)
	suites := numberField(in, "surgicalSuites", 4, t)
	mri := numberField(in, "mriUnits", 1, t)
	ct := numberField(in, "ctScanners", 1, t)

	wardKW := ssotBase("hospital", map[string]any{"beds": beds}, t)

	shares := map[contract.ContributorKey]float64{
		contract.ContributorHVAC:     0.42, // pressurization and air-change requirements
		contract.ContributorLighting: 0.12,
		contract.ContributorProcess:  0.14, // sterilization, food service, pumps
		contract.ContributorControls: 0.04,
		contract.ContributorITLoad:   0.08,
		contract.ContributorCooling:  0.12,
		contract.ContributorOther:    0.08,
	}
	raw := splitPeak(wardKW, shares)

	supps := []supplement{
		{name: "surgical suites", kw: suites * hospitalORSuiteKW, key: contract.ContributorProcess},
		{name: "MRI units", kw: mri * hospitalMRIKW, key: contract.ContributorProcess},
		{name: "CT scanners", kw: ct * hospitalCTScannerKW, key: contract.ContributorProcess},
	}
	if dcKW := numberField(in, "dataCenterKW", 0, t); dcKW > 0 {
		supps = append(supps, supplement{name: "on-site data center", kw: dcKW, key: contract.ContributorITLoad})
	}
	suppKW := addSupplements(raw, supps, t)

	peakKW := wardKW + suppKW
	// Round-the-clock clinical operations.
	duty := 0.85

	details := map[string]float64{
		"wardKW":          wardKW,
		"bedCount":        beds,
		"clinicalEquipKW": suppKW,
	}

	return finishResult("hospital", in, peakKW, duty, 0, raw, details, t)
}
