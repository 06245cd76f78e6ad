package calcs

import "github.com/evergrid/quoteflow/internal/contract"

// CalcLaundromatV1 is the stable id of the laundromat calculator.
const CalcLaundromatV1 = "laundromat_load_v1"

// laundromatSizeTokens maps store-size buttons to washer counts; dryers
// are assumed 1:1 with washers unless given separately.
//
//nolint:gochecknoglobals // Package-level lookup table, initialized once.
var laundromatSizeTokens = tokenMap{
	"small":  12,
	"medium": 24,
	"large":  48,
}

func laundromatContract() contract.Contract {
	return contract.Contract{
		ID:             CalcLaundromatV1,
		RequiredInputs: []string{"washers"},
		OptionalInputs: append([]string{
			"dryers", "dryerFuel", "electricWaterHeat",
		}, universalInputs...),
		Compute: computeLaundromat,
	}
}

func computeLaundromat(in contract.Inputs) contract.RunResult {
	in = in.Clone()
	t := newTrail()

	bridgeField(in, "washers", "washerCount")
	bridgeField(in, "dryers", "dryerCount")

	washers := numberOrToken(in, "washers", laundromatSizeTokens, 24, t)
	dryers := washers
	if in.Has("dryers") {
		dryers = numberField(in, "dryers", washers, t)
	} else {
		t.assumef("dryer count assumed equal to washer count (%.0f)", washers)
	}
	hours := numberField(in, "operatingHours", 14, t)

	dryerFuel := tokenField(in, "dryerFuel", "electric", t)
	ssotDryers := dryers
	if dryerFuel == "gas" {
		// Gas dryers keep only drum motors and ignition on the panel.
		ssotDryers = dryers * 0.1
		t.assumef("gas dryers: electrical load reduced to drum motors and ignition")
	}

	applianceKW := ssotBase("laundromat", map[string]any{
		"washers": washers,
		"dryers":  ssotDryers,
	}, t)

	shares := map[contract.ContributorKey]float64{
		contract.ContributorProcess:  0.72,
		contract.ContributorHVAC:     0.12,
		contract.ContributorLighting: 0.09,
		contract.ContributorControls: 0.03,
		contract.ContributorOther:    0.04,
	}
	raw := splitPeak(applianceKW, shares)

	var supps []supplement
	if boolField(in, "electricWaterHeat", false, t) {
		supps = append(supps, supplement{name: "electric water heating", kw: 36, key: contract.ContributorProcess})
	}
	suppKW := addSupplements(raw, supps, t)

	peakKW := applianceKW + suppKW
	duty := dutyFromHours(hours, 0.40, 0.55)

	details := map[string]float64{
		"applianceKW":     applianceKW,
		"washers":         washers,
		"dryers":          dryers,
		"supplementalsKW": suppKW,
	}

	return finishResult("laundromat", in, peakKW, duty, hours, raw, details, t)
}
