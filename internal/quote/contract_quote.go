package quote

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/rs/zerolog"

	"github.com/evergrid/quoteflow/internal/contract"
	"github.com/evergrid/quoteflow/internal/logging"
	"github.com/evergrid/quoteflow/internal/registry"
	"github.com/evergrid/quoteflow/internal/templates"
)

// energyslack is the rounding allowance on the energy-vs-peak check.
const energySlack = 1.05

// RunContractQuote executes Layer A: template resolution, input mapping,
// calculator invocation, and the hard invariant checks. It never returns
// an error for bad configuration or bad numbers; those degrade to a
// provisional result with warnings. ctx is used for diagnostic logging
// only.
func RunContractQuote(ctx context.Context, p Params) ContractQuoteResult {
	log := logging.FromContext(ctx).With().Str("component", "quote").Str("industry", p.Industry).Logger()

	tpl, ok := templates.Resolve(p.Industry)
	if !ok {
		log.Warn().Msg("no template for industry")
		return provisionalResult(p.Industry, fmt.Sprintf("unknown industry %q: no template registered", p.Industry))
	}
	if p.CalculatorID != "" {
		// Caller pinned a specific generation; the template keeps its
		// industry but rebinds.
		tpl.Calculator.ID = p.CalculatorID
		tpl.Version, _ = registry.VersionOf(p.CalculatorID)
	}

	calc, ok := registry.Get(tpl.Calculator.ID)
	if !ok {
		log.Warn().Str("calculator", tpl.Calculator.ID).Msg("template bound to unknown calculator")
		return provisionalResult(p.Industry, fmt.Sprintf("template for %q binds unknown calculator %q", p.Industry, tpl.Calculator.ID))
	}

	inputs := templates.ApplyMapping(tpl, p.Answers)

	missing := missingRequired(calc, inputs)

	res := calc.Compute(inputs)

	warnings := append([]string{}, res.Warnings...)
	warnings = append(warnings, checkInvariants(res)...)

	var computed *contract.Validation
	if res.Validation != nil {
		computed = normalizeValidation(p.Industry, res.Validation, &warnings, log)
	}

	sz := templates.SizingDefaults(p.Industry)

	out := ContractQuoteResult{
		Industry: p.Industry,
		Template: TemplateRef{
			Industry:   tpl.Industry,
			Version:    tpl.Version,
			Calculator: tpl.Calculator.ID,
		},
		InputsUsed: inputs,
		LoadProfile: LoadProfile{
			BaseLoadKW:      res.BaseLoadKW,
			PeakLoadKW:      res.PeakLoadKW,
			EnergyKWhPerDay: res.EnergyKWhPerDay,
		},
		SizingHints: SizingHints{
			StorageToPeakRatio: sz.Ratio,
			DurationHours:      sz.Hours,
			GridCapacityKW:     gridCapacityKW(inputs),
		},
		Computed:       computed,
		Assumptions:    res.Assumptions,
		Warnings:       warnings,
		MissingInputs:  missing,
		InputFallbacks: res.InputFallbacks,
	}
	out.IsProvisional = len(missing) > 0 || len(res.InputFallbacks) > 0 || len(warnings) > 0

	log.Debug().
		Float64("peakLoadKW", out.LoadProfile.PeakLoadKW).
		Int("warnings", len(warnings)).
		Bool("provisional", out.IsProvisional).
		Msg("contract quote computed")

	return out
}

// provisionalResult is the zero-valued short circuit for configuration
// failures.
func provisionalResult(industry, warning string) ContractQuoteResult {
	return ContractQuoteResult{
		Industry:      industry,
		Template:      TemplateRef{Industry: industry},
		InputsUsed:    map[string]any{},
		Assumptions:   []string{},
		Warnings:      []string{warning},
		IsProvisional: true,
	}
}

// gridCapacityKW reads the universal gridCapacity answer. It is entered
// in MW; 0, negative, or absent all mean no interconnection datum.
func gridCapacityKW(inputs contract.Inputs) float64 {
	v, ok := inputs["gridCapacity"]
	if !ok || v == nil {
		return 0
	}
	n, ok := contract.Number(v)
	if !ok || n <= 0 {
		return 0
	}
	return n * 1000
}

// missingRequired lists the calculator's required fields absent from the
// mapped inputs, sorted for stable output.
func missingRequired(calc contract.Contract, inputs contract.Inputs) []string {
	var missing []string
	for _, field := range calc.RequiredInputs {
		if !inputs.Has(field) {
			missing = append(missing, field)
		}
	}
	sort.Strings(missing)
	return missing
}

// checkInvariants runs the hard numeric checks over a calculator result.
// Each violation appends a warning; none aborts the run.
func checkInvariants(res contract.RunResult) []string {
	var w []string

	if !(res.PeakLoadKW > 0) {
		w = append(w, fmt.Sprintf("invariant: peakLoadKW must be positive, got %.2f", res.PeakLoadKW))
	}
	if res.BaseLoadKW < 0 {
		w = append(w, fmt.Sprintf("invariant: baseLoadKW must be non-negative, got %.2f", res.BaseLoadKW))
	}
	if res.EnergyKWhPerDay < 0 {
		w = append(w, fmt.Sprintf("invariant: energyKWhPerDay must be non-negative, got %.2f", res.EnergyKWhPerDay))
	}
	if res.PeakLoadKW < res.BaseLoadKW {
		w = append(w, fmt.Sprintf("invariant: peakLoadKW %.2f below baseLoadKW %.2f", res.PeakLoadKW, res.BaseLoadKW))
	}
	if res.EnergyKWhPerDay > res.PeakLoadKW*24*energySlack {
		w = append(w, fmt.Sprintf("invariant: energyKWhPerDay %.2f exceeds peak x 24h with 5%% slack", res.EnergyKWhPerDay))
	}
	if v := res.Validation; v != nil {
		if v.DutyCycle < 0 || v.DutyCycle > contract.DutyCycleMax {
			w = append(w, fmt.Sprintf("invariant: dutyCycle %.3f outside [0, %.2f]", v.DutyCycle, contract.DutyCycleMax))
		}
		for _, key := range sortedContributorKeys(v.KWContributors) {
			kw := v.KWContributors[key]
			if math.IsNaN(kw) || math.IsInf(kw, 0) || kw < 0 {
				w = append(w, fmt.Sprintf("invariant: contributor %s is not finite and non-negative: %v", key, kw))
			}
		}
	}
	return w
}

// normalizeValidation returns a copy of the envelope with the contributor
// map normalized to exactly the eight canonical keys (missing keys filled
// with zero, unknown keys dropped with a warning) and with detail
// namespaces that do not match the industry slug removed.
func normalizeValidation(industry string, v *contract.Validation, warnings *[]string, log zerolog.Logger) *contract.Validation {
	out := *v

	normalized := make(map[contract.ContributorKey]float64, len(contract.ContributorKeys()))
	for _, key := range contract.ContributorKeys() {
		normalized[key] = 0
	}
	for _, key := range sortedContributorKeys(v.KWContributors) {
		if _, ok := normalized[key]; !ok {
			*warnings = append(*warnings, fmt.Sprintf("dropped non-canonical contributor key %q", key))
			continue
		}
		normalized[key] = v.KWContributors[key]
	}
	out.KWContributors = normalized

	if len(v.Details) > 0 {
		details := make(map[string]map[string]float64, len(v.Details))
		for slug, sub := range v.Details {
			if slug != industry {
				log.Warn().Str("namespace", slug).Msg("details namespace does not match industry; dropping")
				*warnings = append(*warnings, fmt.Sprintf("dropped details namespace %q: does not match industry %q", slug, industry))
				continue
			}
			details[slug] = sub
		}
		out.Details = details
	}

	return &out
}

func sortedContributorKeys(m map[contract.ContributorKey]float64) []contract.ContributorKey {
	keys := make([]contract.ContributorKey, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
