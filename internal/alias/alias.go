// Package alias maps adapter field names to the canonical names the base
// estimator reads. Each row is the single place that translates "what the
// adapter calls this" to "what the estimator expects".
//
// The table exists to close a specific defect class: a user-entered value
// being silently ignored because the estimator looked for a different key
// and fell back to its built-in default. Every row is covered by an
// input-sensitivity test (supplying the adapter field must change the
// resolved payload).
package alias

// FieldAlias is one resolution row for an industry.
type FieldAlias struct {
	// AdapterField is the name the industry adapter produces.
	AdapterField string

	// SSOTField is the primary name the base estimator reads.
	SSOTField string

	// SSOTAlternates are additional names the estimator accepts. They
	// document estimator-side fallback; the resolver never writes them.
	SSOTAlternates []string

	// SSOTDefault is the value the estimator falls back to when the key is
	// omitted. Recorded for documentation and tests; the resolver never
	// writes defaults itself.
	SSOTDefault any
}

// RowsFor returns the alias rows registered for an industry. The returned
// slice is shared read-only data; callers must not mutate it.
func RowsFor(industry string) []FieldAlias {
	return tables[industry]
}

// Industries returns the slugs that have alias rows registered.
func Industries() []string {
	out := make([]string, 0, len(tables))
	for slug := range tables {
		out = append(out, slug)
	}
	return out
}

// BuildSSOTInput resolves adapter values into the canonical payload the
// base estimator expects.
//
// For every alias row, a defined adapter value is written under the row's
// primary SSOT field name. Absent values are omitted entirely so the
// estimator's own default applies — the resolver never invents values.
// Adapter fields with no alias row pass through unchanged.
func BuildSSOTInput(industry string, adapterValues map[string]any) map[string]any {
	rows := tables[industry]
	out := make(map[string]any, len(adapterValues))

	mapped := make(map[string]bool, len(rows))
	for _, row := range rows {
		mapped[row.AdapterField] = true
		if v, ok := adapterValues[row.AdapterField]; ok && v != nil {
			out[row.SSOTField] = v
		}
	}

	for field, v := range adapterValues {
		if mapped[field] || v == nil {
			continue
		}
		out[field] = v
	}

	return out
}
