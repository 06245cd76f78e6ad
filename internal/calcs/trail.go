package calcs

import (
	"fmt"

	"github.com/evergrid/quoteflow/internal/contract"
)

// trail accumulates the human-readable derivation record of a calculator
// run: assumptions for every defaulted or mapped value, warnings for every
// anomaly, and structured fallbacks keyed by field.
type trail struct {
	assumptions []string
	warnings    []string
	fallbacks   map[string]contract.Fallback
}

func newTrail() *trail {
	return &trail{
		assumptions: []string{},
		warnings:    []string{},
		fallbacks:   map[string]contract.Fallback{},
	}
}

func (t *trail) assumef(format string, args ...any) {
	t.assumptions = append(t.assumptions, fmt.Sprintf(format, args...))
}

func (t *trail) warnf(format string, args ...any) {
	t.warnings = append(t.warnings, fmt.Sprintf(format, args...))
}

// fallback records a defaulted field both as a structured entry and on the
// assumption trail.
func (t *trail) fallback(field string, value any, reason string) {
	t.fallbacks[field] = contract.Fallback{Value: value, Reason: reason}
	t.assumef("%s defaulted to %v (%s)", field, value, reason)
}
