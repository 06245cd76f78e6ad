package ssot

import "github.com/evergrid/quoteflow/internal/contract"

// fieldNumber reads a canonical numeric field, trying the primary name
// first, then each alternate, then the estimator's own default. The
// alias-resolution layer writes values under primary names only; the
// alternates keep legacy payloads working when the resolver is bypassed.
func fieldNumber(fields map[string]any, primary string, alternates []string, def float64) float64 {
	if v, ok := fields[primary]; ok {
		if n, ok := contract.Number(v); ok {
			return n
		}
	}
	for _, alt := range alternates {
		if v, ok := fields[alt]; ok {
			if n, ok := contract.Number(v); ok {
				return n
			}
		}
	}
	return def
}

// fieldToken reads a canonical token field with the same primary → alternate
// → default precedence as fieldNumber.
func fieldToken(fields map[string]any, primary string, alternates []string, def string) string {
	if v, ok := fields[primary]; ok {
		if s, ok := contract.String(v); ok {
			return s
		}
	}
	for _, alt := range alternates {
		if v, ok := fields[alt]; ok {
			if s, ok := contract.String(v); ok {
				return s
			}
		}
	}
	return def
}
