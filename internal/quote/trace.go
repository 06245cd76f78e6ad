package quote

import (
	"time"

	"github.com/oklog/ulid/v2"
)

// TraceBundle is a timestamped, serializable snapshot of a Layer A run,
// kept for audit logging and debugging.
type TraceBundle struct {
	ID             string         `json:"id"`
	TS             time.Time      `json:"ts"`
	Layer          string         `json:"layer"`
	Template       TemplateRef    `json:"template"`
	InputsUsed     map[string]any `json:"inputsUsed"`
	LoadProfile    LoadProfile    `json:"loadProfile"`
	Computed       any            `json:"computed,omitempty"`
	SizingHints    SizingHints    `json:"sizingHints"`
	Warnings       []string       `json:"warnings"`
	MissingInputs  []string       `json:"missingInputs,omitempty"`
	InputFallbacks map[string]any `json:"inputFallbacks,omitempty"`
}

// NewTraceBundle snapshots a Layer A result for the audit trail.
func NewTraceBundle(res ContractQuoteResult) TraceBundle {
	now := time.Now().UTC()

	fallbacks := make(map[string]any, len(res.InputFallbacks))
	for k, v := range res.InputFallbacks {
		fallbacks[k] = v
	}

	return TraceBundle{
		ID:             ulid.Make().String(),
		TS:             now,
		Layer:          "A",
		Template:       res.Template,
		InputsUsed:     res.InputsUsed,
		LoadProfile:    res.LoadProfile,
		Computed:       res.Computed,
		SizingHints:    res.SizingHints,
		Warnings:       res.Warnings,
		MissingInputs:  res.MissingInputs,
		InputFallbacks: fallbacks,
	}
}
