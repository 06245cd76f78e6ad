// Package contract defines the calculator contract shared by every industry
// load-profile adapter: loosely-typed questionnaire inputs in, a normalized
// load-profile result with a validation envelope out.
//
// Contracts are identified by a stable, versioned id (e.g. "hotel_load_v1").
// Changing a contract's semantics requires registering a new id; ids are
// never mutated in place.
package contract

import "sort"

// ValidationVersion is the current validation envelope version.
const ValidationVersion = "v1"

// DutyCycleMax is the upper bound of the valid duty-cycle range. Values
// slightly above 1.0 are tolerated for industries whose base load exceeds
// the nominal peak during defrost or pre-cool windows.
const DutyCycleMax = 1.25

// ContributorTolerance is the maximum relative divergence allowed between
// the contributor total and the reported peak load.
const ContributorTolerance = 0.01

// Inputs is the raw questionnaire payload handed to a calculator. Values
// are scalars (float64, int, string, bool, nil) or slices of scalars; keys
// may be canonical field names or industry-specific button tokens. No shape
// is guaranteed.
type Inputs map[string]any

// Clone returns a shallow copy of the inputs, so calculators can bridge
// legacy field names without mutating the caller's map.
func (in Inputs) Clone() Inputs {
	out := make(Inputs, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

// Has reports whether the field is present and non-nil.
func (in Inputs) Has(field string) bool {
	v, ok := in[field]
	return ok && v != nil
}

// ContributorKey identifies one of the eight canonical peak-power
// contributor categories used by every calculator regardless of industry.
type ContributorKey string

// The closed contributor set. Downstream consumers rely on exactly these
// eight keys being present in a normalized contributor map.
const (
	ContributorProcess  ContributorKey = "process"
	ContributorHVAC     ContributorKey = "hvac"
	ContributorLighting ContributorKey = "lighting"
	ContributorControls ContributorKey = "controls"
	ContributorITLoad   ContributorKey = "itLoad"
	ContributorCooling  ContributorKey = "cooling"
	ContributorCharging ContributorKey = "charging"
	ContributorOther    ContributorKey = "other"
)

// ContributorKeys returns the canonical contributor keys in stable order.
func ContributorKeys() []ContributorKey {
	return []ContributorKey{
		ContributorProcess,
		ContributorHVAC,
		ContributorLighting,
		ContributorControls,
		ContributorITLoad,
		ContributorCooling,
		ContributorCharging,
		ContributorOther,
	}
}

// Validation is the envelope a calculator attaches to its result so the
// orchestration layer can audit the power breakdown.
type Validation struct {
	// Version is always ValidationVersion for results produced by this
	// package generation.
	Version string `json:"version"`

	// DutyCycle is the fraction of peak sustained as base load, in
	// [0, DutyCycleMax].
	DutyCycle float64 `json:"dutyCycle"`

	// KWContributors decomposes peak load into the canonical categories.
	KWContributors map[ContributorKey]float64 `json:"kWContributors"`

	// KWContributorsTotalKW is the sum of KWContributors. For a conformant
	// result it matches PeakLoadKW within ContributorTolerance.
	KWContributorsTotalKW float64 `json:"kWContributorsTotalKW"`

	// KWContributorShares maps each contributor to its fraction of the
	// total (0 when the total is 0).
	KWContributorShares map[string]float64 `json:"kWContributorShares"`

	// Details carries industry-specific sub-metrics, keyed by the owning
	// industry slug. The orchestrator drops detail namespaces that do not
	// match the industry being computed.
	Details map[string]map[string]float64 `json:"details,omitempty"`

	// Notes records derivation details for the envelope itself.
	Notes []string `json:"notes"`
}

// NewValidation builds an envelope from a contributor map, computing the
// total and per-key shares. Accumulation runs in sorted key order so the
// float total is reproducible between runs.
func NewValidation(dutyCycle float64, contributors map[ContributorKey]float64) *Validation {
	keys := make([]string, 0, len(contributors))
	for key := range contributors {
		keys = append(keys, string(key))
	}
	sort.Strings(keys)

	total := 0.0
	for _, key := range keys {
		total += contributors[ContributorKey(key)]
	}

	shares := make(map[string]float64, len(contributors))
	for _, key := range keys {
		if total > 0 {
			shares[key] = contributors[ContributorKey(key)] / total
		} else {
			shares[key] = 0
		}
	}

	return &Validation{
		Version:               ValidationVersion,
		DutyCycle:             dutyCycle,
		KWContributors:        contributors,
		KWContributorsTotalKW: total,
		KWContributorShares:   shares,
		Notes:                 []string{},
	}
}

// Fallback records how a missing or unusable input was replaced.
type Fallback struct {
	// Value is the value the calculator actually used.
	Value any `json:"value"`

	// Reason explains why the fallback applied (e.g. "not provided",
	// "unrecognized token").
	Reason string `json:"reason"`
}

// RunResult is a calculator's normalized output. BaseLoadKW and PeakLoadKW
// are the minimum contract every consumer may rely on; everything else is
// advisory or an industry-specific escape hatch.
type RunResult struct {
	BaseLoadKW      float64 `json:"baseLoadKW"`
	PeakLoadKW      float64 `json:"peakLoadKW"`
	EnergyKWhPerDay float64 `json:"energyKWhPerDay"`

	// Assumptions is the human-readable derivation trail: every defaulted
	// or token-mapped input appends an entry.
	Assumptions []string `json:"assumptions"`

	// Warnings records anomalies (contributor mismatch, demand-cap
	// curtailment, unrecognized tokens). Calculators never fail a request;
	// they warn and keep going.
	Warnings []string `json:"warnings"`

	// Validation is the audit envelope. Optional but expected; the generic
	// fallback calculator may omit it.
	Validation *Validation `json:"validation,omitempty"`

	// InputFallbacks maps each defaulted field to what was used and why.
	InputFallbacks map[string]Fallback `json:"inputFallbacks,omitempty"`

	// Raw is an industry-specific escape hatch for values that have no
	// place in the normalized shape.
	Raw any `json:"raw,omitempty"`
}

// Contract binds a stable calculator id to its compute function and the
// input fields it understands. Contracts behave as tagged records in a
// registry map, not a type hierarchy: each industry's token mappings and
// percentage tables stay local to its own compute function.
type Contract struct {
	// ID is the stable, versioned calculator identifier.
	ID string `json:"id"`

	// RequiredInputs lists fields the calculator expects. Missing required
	// fields degrade to documented defaults; they never fail the run.
	RequiredInputs []string `json:"requiredInputs"`

	// OptionalInputs lists fields the calculator can use when present.
	OptionalInputs []string `json:"optionalInputs,omitempty"`

	// Compute converts raw inputs into a normalized result. It must be a
	// pure function: no shared state, no panics on malformed input.
	Compute func(Inputs) RunResult `json:"-"`
}

// SortedFields returns the union of required and optional inputs, sorted.
func (c Contract) SortedFields() []string {
	fields := make([]string, 0, len(c.RequiredInputs)+len(c.OptionalInputs))
	fields = append(fields, c.RequiredInputs...)
	fields = append(fields, c.OptionalInputs...)
	sort.Strings(fields)
	return fields
}
