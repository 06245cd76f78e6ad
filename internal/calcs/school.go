package calcs

import "github.com/evergrid/quoteflow/internal/contract"

// CalcSchoolV1 is the stable id of the school calculator.
const CalcSchoolV1 = "school_load_v1"

// schoolEnrollmentTokens maps campus-size buttons to student counts.
//
//nolint:gochecknoglobals // Package-level lookup table, initialized once.
var schoolEnrollmentTokens = tokenMap{
	"elementary": 450,
	"small":      450,
	"medium":     800,
	"large":      1600,
	"campus":     3000,
}

func schoolContract() contract.Contract {
	return contract.Contract{
		ID:             CalcSchoolV1,
		RequiredInputs: []string{"students"},
		OptionalInputs: append([]string{
			"hasPool", "gymnasium", "cafeteriaKitchen", "portableClassrooms",
		}, universalInputs...),
		Compute: computeSchool,
	}
}

func computeSchool(in contract.Inputs) contract.RunResult {
	in = in.Clone()
	t := newTrail()

	bridgeField(in, "students", "studentCount", "enrollment")

	students := numberOrToken(in, "students", schoolEnrollmentTokens, 800, t)
	hours := numberField(in, "operatingHours", 9, t)

	campusKW := ssotBase("school", map[string]any{"students": students}, t)

	shares := map[contract.ContributorKey]float64{
		contract.ContributorHVAC:     0.44,
		contract.ContributorLighting: 0.24,
		contract.ContributorProcess:  0.08,
		contract.ContributorControls: 0.04,
		contract.ContributorITLoad:   0.10, // classroom technology
		contract.ContributorOther:    0.10,
	}
	raw := splitPeak(campusKW, shares)

	var supps []supplement
	if boolField(in, "hasPool", false, t) {
		supps = append(supps, supplement{name: "heated pool", kw: 45, key: contract.ContributorProcess})
	}
	if boolField(in, "gymnasium", true, t) {
		supps = append(supps, supplement{name: "gymnasium", kw: 20, key: contract.ContributorHVAC})
	}
	if boolField(in, "cafeteriaKitchen", true, t) {
		supps = append(supps, supplement{name: "cafeteria kitchen", kw: 35, key: contract.ContributorProcess})
	}
	if portables := numberField(in, "portableClassrooms", 0, t); portables > 0 {
		supps = append(supps, supplement{name: "portable classrooms", kw: portables * 8, key: contract.ContributorHVAC})
	}
	suppKW := addSupplements(raw, supps, t)

	peakKW := campusKW + suppKW
	// School-day occupancy with a deep overnight setback.
	duty := dutyFromHours(hours, 0.50, 0.60)

	details := map[string]float64{
		"campusKW":        campusKW,
		"enrollment":      students,
		"supplementalsKW": suppKW,
	}

	return finishResult("school", in, peakKW, duty, hours, raw, details, t)
}
