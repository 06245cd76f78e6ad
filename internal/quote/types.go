// Package quote contains the two orchestration layers that sit above the
// calculator framework. Layer A turns questionnaire answers into an
// audited load profile; Layer B turns a load profile into a priced
// storage quote. Both layers warn rather than fail: every run produces a
// result, and callers inspect Warnings/IsProvisional to decide how much
// to trust it.
package quote

import "github.com/evergrid/quoteflow/internal/contract"

// Params is the raw Layer A request.
type Params struct {
	Industry      string         `json:"industry"`
	Answers       map[string]any `json:"answers"`
	LocationZip   string         `json:"locationZip,omitempty"`
	LocationState string         `json:"locationState,omitempty"`

	// CalculatorID pins the run to a specific calculator generation
	// instead of the template's default binding.
	CalculatorID string `json:"calculatorId,omitempty"`
}

// TemplateRef identifies the template and calculator generation a run was
// bound to.
type TemplateRef struct {
	Industry   string `json:"industry"`
	Version    string `json:"version,omitempty"`
	Calculator string `json:"calculator,omitempty"`
}

// LoadProfile is the minimal numeric contract downstream consumers rely on.
type LoadProfile struct {
	BaseLoadKW      float64 `json:"baseLoadKW"`
	PeakLoadKW      float64 `json:"peakLoadKW"`
	EnergyKWhPerDay float64 `json:"energyKWhPerDay"`
}

// SizingHints carries the industry sizing defaults forward to Layer B and
// the sizing engine.
type SizingHints struct {
	StorageToPeakRatio float64 `json:"storageToPeakRatio"`
	DurationHours      float64 `json:"durationHours"`

	// GridCapacityKW is the site interconnection limit from the universal
	// gridCapacity answer, converted to kW. 0 means no datum.
	GridCapacityKW float64 `json:"gridCapacityKW,omitempty"`
}

// ContractQuoteResult is the Layer A output.
type ContractQuoteResult struct {
	Industry       string                       `json:"industry"`
	Template       TemplateRef                  `json:"template"`
	InputsUsed     map[string]any               `json:"inputsUsed"`
	LoadProfile    LoadProfile                  `json:"loadProfile"`
	SizingHints    SizingHints                  `json:"sizingHints"`
	Computed       *contract.Validation         `json:"computed,omitempty"`
	Assumptions    []string                     `json:"assumptions"`
	Warnings       []string                     `json:"warnings"`
	MissingInputs  []string                     `json:"missingInputs,omitempty"`
	InputFallbacks map[string]contract.Fallback `json:"inputFallbacks,omitempty"`
	IsProvisional  bool                         `json:"isProvisional"`
}

// PricingQuoteResult is the Layer B output.
type PricingQuoteResult struct {
	QuoteID       string  `json:"quoteId"`
	Industry      string  `json:"industry"`
	StorageMW     float64 `json:"storageMW"`
	StorageMWh    float64 `json:"storageMWh"`
	DurationHours float64 `json:"durationHours"`

	CapexUSD         float64 `json:"capexUSD"`
	AnnualSavingsUSD float64 `json:"annualSavingsUSD"`
	PaybackYears     float64 `json:"paybackYears"`

	EnergyRateUSDPerKWh  float64 `json:"energyRateUSDPerKWh"`
	DemandChargeUSDPerKW float64 `json:"demandChargeUSDPerKW"`

	// InputsHash is the deterministic hash of the pricing inputs, used as
	// the cache and audit key.
	InputsHash string `json:"inputsHash"`

	// CacheHit reports the quote was served from the result cache.
	CacheHit bool `json:"cacheHit"`

	Warnings      []string `json:"warnings"`
	IsProvisional bool     `json:"isProvisional"`
}
