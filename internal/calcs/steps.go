package calcs

import (
	"math"
	"sort"

	"github.com/evergrid/quoteflow/internal/alias"
	"github.com/evergrid/quoteflow/internal/contract"
	"github.com/evergrid/quoteflow/internal/ssot"
)

// sumContributors totals a contributor map in sorted key order. Float
// addition is not associative, so summing in map iteration order would
// make totals (and everything scaled by them) drift between runs.
func sumContributors(m map[contract.ContributorKey]float64) float64 {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, string(k))
	}
	sort.Strings(keys)

	total := 0.0
	for _, k := range keys {
		total += m[contract.ContributorKey(k)]
	}
	return total
}

// tokenMap translates a categorical button token to its numeric meaning.
// Values are documented midpoints of the range each token covers.
type tokenMap map[string]float64

// numberOrToken resolves a raw questionnaire value: token map first, then
// direct numeric coercion, then the documented default. Every default use
// lands on the trail.
func numberOrToken(in contract.Inputs, field string, tokens tokenMap, def float64, t *trail) float64 {
	v, ok := in[field]
	if !ok || v == nil {
		t.fallback(field, def, "not provided")
		return def
	}

	if s, ok := contract.String(v); ok {
		if n, ok := tokens[s]; ok {
			t.assumef("%s %q mapped to %.0f", field, s, n)
			return n
		}
	}
	if n, ok := contract.Number(v); ok && n >= 0 {
		return n
	}

	t.fallback(field, def, "unrecognized value")
	return def
}

// numberField resolves a plain numeric field with a documented default.
// Negative values are rejected: every field read this way is a count,
// size, or hours figure, and a negative would push duty cycles and
// contributors outside their valid ranges.
func numberField(in contract.Inputs, field string, def float64, t *trail) float64 {
	v, ok := in[field]
	if !ok || v == nil {
		t.fallback(field, def, "not provided")
		return def
	}
	if n, ok := contract.Number(v); ok && n >= 0 {
		return n
	}
	t.fallback(field, def, "unrecognized value")
	return def
}

// boolField resolves a yes/no field with a documented default.
func boolField(in contract.Inputs, field string, def bool, t *trail) bool {
	v, ok := in[field]
	if !ok || v == nil {
		return def
	}
	if b, ok := contract.Bool(v); ok {
		return b
	}
	t.fallback(field, def, "unrecognized value")
	return def
}

// tokenField resolves a categorical field to its token string.
func tokenField(in contract.Inputs, field, def string, t *trail) string {
	v, ok := in[field]
	if !ok || v == nil {
		t.fallback(field, def, "not provided")
		return def
	}
	if s, ok := contract.String(v); ok {
		return s
	}
	t.fallback(field, def, "unrecognized value")
	return def
}

// bridgeField copies the first defined legacy name onto the canonical name
// when the canonical key is absent, so downstream resolution sees one
// spelling only.
func bridgeField(in contract.Inputs, canonical string, legacy ...string) {
	if in.Has(canonical) {
		return
	}
	for _, name := range legacy {
		if in.Has(name) {
			in[canonical] = in[name]
			return
		}
	}
}

// ssotBase runs the alias resolver over the calculator's normalized values
// and invokes the base estimator, returning the core load in kW.
func ssotBase(industry string, adapterValues map[string]any, t *trail) float64 {
	resolved := alias.BuildSSOTInput(industry, adapterValues)
	est := ssot.CalculatePower(industry, resolved)
	t.assumef("base estimate: %s [%s]", est.Description, est.CalculationMethod)
	return est.PowerMW * 1000
}

// supplement is a named additive load the base estimator does not model.
type supplement struct {
	name string
	kw   float64
	key  contract.ContributorKey
}

// addSupplements folds named equipment loads into the raw contributor map
// and returns the total added. Each term is logged on the trail.
func addSupplements(raw map[contract.ContributorKey]float64, supps []supplement, t *trail) float64 {
	total := 0.0
	for _, s := range supps {
		if s.kw <= 0 {
			continue
		}
		raw[s.key] += s.kw
		total += s.kw
		t.assumef("supplemental load: %s +%.1f kW (%s)", s.name, s.kw, s.key)
	}
	return total
}

// normalizeShares rescales an adjustable share map so the values sum to
// exactly 1.0 before peak is split. This is the pre-normalization repair
// strategy: it prevents condition-stacked shares from double-counting
// while preserving their relative weighting. Distinct from the post-scale
// repair in finalizeContributors.
func normalizeShares(shares map[contract.ContributorKey]float64) map[contract.ContributorKey]float64 {
	sum := sumContributors(shares)
	out := make(map[contract.ContributorKey]float64, len(shares))
	if sum <= 0 {
		return out
	}
	for k, s := range shares {
		out[k] = s / sum
	}
	return out
}

// splitPeak decomposes a kW figure across normalized shares.
func splitPeak(kw float64, shares map[contract.ContributorKey]float64) map[contract.ContributorKey]float64 {
	out := make(map[contract.ContributorKey]float64, len(shares))
	for k, s := range normalizeShares(shares) {
		out[k] = kw * s
	}
	return out
}

// demandCapKW reads the optional site demand cap, 0 when absent.
func demandCapKW(in contract.Inputs) float64 {
	for _, field := range []string{"siteDemandCapKW", "demandCapKW"} {
		if v, ok := in[field]; ok {
			if n, ok := contract.Number(v); ok && n > 0 {
				return n
			}
		}
	}
	return 0
}

// peakOverrideKW reads the universal peakLoad question (entered in MW;
// 0 means auto-calculate). A positive value overrides the computed peak.
func peakOverrideKW(in contract.Inputs, t *trail) (float64, bool) {
	v, ok := in["peakLoad"]
	if !ok || v == nil {
		return 0, false
	}
	n, ok := contract.Number(v)
	if !ok || n <= 0 {
		return 0, false
	}
	t.assumef("peak load overridden by utility-bill value: %.2f MW", n)
	return n * 1000, true
}

// noteGridConnection records the universal grid-connection answer on the
// trail; off-grid and unreliable sites get an explicit caveat.
func noteGridConnection(in contract.Inputs, t *trail) {
	v, ok := in["gridConnection"]
	if !ok || v == nil {
		return
	}
	s, ok := contract.String(v)
	if !ok {
		return
	}
	switch s {
	case "off_grid", "microgrid":
		t.warnf("site is %s; estimate assumes storage carries primary load", s)
	case "unreliable", "limited":
		t.assumef("grid connection reported as %s", s)
	}
}

// dutyFromHours maps daily operating hours onto an industry's duty-cycle
// band: continuous sites get the top of the band, single-shift sites the
// bottom, with linear interpolation between.
func dutyFromHours(operatingHours, singleShift, continuous float64) float64 {
	const shiftHours, fullDay = 10.0, 24.0
	if operatingHours >= fullDay-2 {
		return continuous
	}
	if operatingHours <= shiftHours {
		return singleShift
	}
	frac := (operatingHours - shiftHours) / (fullDay - 2 - shiftHours)
	return singleShift + frac*(continuous-singleShift)
}

// finalizeContributors enforces the contributor-sum invariant (step 7).
//
// The default repair is a single uniform scale factor peak/rawSum applied
// to every contributor (sum-then-scale, distinct from the share
// pre-normalization in normalizeShares). When a site demand cap sits below
// the computed peak, the cap's ratio applies instead, peak clamps to
// round(cap), and a curtailment warning fires. Any residual rounding
// remainder beyond the tolerance rolls into "other" rather than being
// dropped.
func finalizeContributors(
	peakKW float64,
	raw map[contract.ContributorKey]float64,
	capKW float64,
	t *trail,
) (float64, map[contract.ContributorKey]float64) {
	rawSum := sumContributors(raw)

	if capKW > 0 && capKW < peakKW {
		t.warnf("site demand cap %.0f kW below computed peak %.0f kW; charging/output will be curtailed", capKW, peakKW)
		peakKW = math.Round(capKW)
	}

	out := make(map[contract.ContributorKey]float64, len(raw))
	if rawSum <= 0 {
		out[contract.ContributorOther] = peakKW
		t.warnf("no contributor estimates; full peak assigned to other")
		return peakKW, out
	}

	scale := peakKW / rawSum
	if math.Abs(scale-1) > contract.ContributorTolerance {
		t.assumef("contributors scaled by %.3f to match peak", scale)
	}
	for k, kw := range raw {
		out[k] = kw * scale
	}

	total := sumContributors(out)
	if diff := peakKW - total; math.Abs(diff) > peakKW*contract.ContributorTolerance {
		out[contract.ContributorOther] += diff
		t.warnf("contributor sum mismatch of %.1f kW rolled into other", diff)
	}

	return peakKW, out
}

// applySchedule derives base load and daily energy from the peak, the duty
// cycle, and an optional occupied-hours window. With a window, energy uses
// the two-level schedule: base load around the clock plus the peak-minus-
// base delta across the active hours.
func applySchedule(peakKW, dutyCycle, activeHours float64) (baseKW, energyKWh float64) {
	baseKW = math.Round(peakKW * dutyCycle)
	if baseKW > peakKW {
		baseKW = math.Floor(peakKW)
	}
	energyKWh = baseKW * 24
	if activeHours > 0 && activeHours < 24 {
		energyKWh += (peakKW - baseKW) * activeHours
	}
	return baseKW, energyKWh
}

// finishResult assembles the normalized result after a calculator has
// computed its peak, duty cycle, and raw contributor estimates.
func finishResult(
	industry string,
	in contract.Inputs,
	peakKW, dutyCycle, activeHours float64,
	raw map[contract.ContributorKey]float64,
	details map[string]float64,
	t *trail,
) contract.RunResult {
	if override, ok := peakOverrideKW(in, t); ok {
		peakKW = override
	}
	noteGridConnection(in, t)

	peakKW, contributors := finalizeContributors(peakKW, raw, demandCapKW(in), t)
	baseKW, energyKWh := applySchedule(peakKW, dutyCycle, activeHours)

	validation := contract.NewValidation(dutyCycle, contributors)
	if len(details) > 0 {
		validation.Details = map[string]map[string]float64{industry: details}
	}

	return contract.RunResult{
		BaseLoadKW:      baseKW,
		PeakLoadKW:      peakKW,
		EnergyKWhPerDay: energyKWh,
		Assumptions:     t.assumptions,
		Warnings:        t.warnings,
		Validation:      validation,
		InputFallbacks:  t.fallbacks,
	}
}
