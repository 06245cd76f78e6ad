package contract

import (
	"math"
	"strconv"
	"strings"
)

// Number coerces a raw questionnaire scalar to a float64. Strings are
// trimmed and parsed; "12 kW"-style suffixed entries parse their leading
// numeric run; booleans map to 1/0. Non-finite values are rejected.
func Number(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return finite(n)
	case float32:
		return finite(float64(n))
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case bool:
		if n {
			return 1, true
		}
		return 0, true
	case string:
		return parseNumericString(n)
	default:
		return 0, false
	}
}

// String coerces a raw scalar to a trimmed, lower-cased token string.
// Numeric values are not stringified; token lookups should try Number
// separately.
func String(v any) (string, bool) {
	s, ok := v.(string)
	if !ok {
		return "", false
	}
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return "", false
	}
	return s, true
}

// Bool coerces a raw scalar to a boolean. Accepts native bools, the usual
// yes/no token spellings, and nonzero numbers.
func Bool(v any) (bool, bool) {
	switch b := v.(type) {
	case bool:
		return b, true
	case string:
		switch strings.ToLower(strings.TrimSpace(b)) {
		case "true", "yes", "y", "1", "on":
			return true, true
		case "false", "no", "n", "0", "off", "none":
			return false, true
		}
		return false, false
	default:
		if n, ok := Number(v); ok {
			return n != 0, true
		}
		return false, false
	}
}

func finite(f float64) (float64, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// parseNumericString parses strings like "12", " 8.5 ", or "4 bays". The
// leading numeric run wins; anything after it is treated as a unit or
// descriptive suffix.
func parseNumericString(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}

	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return finite(f)
	}

	end := 0
	seenDigit := false
	for i, r := range s {
		if r >= '0' && r <= '9' {
			seenDigit = true
			end = i + 1
			continue
		}
		if (r == '.' || r == '-' || r == '+') && !seenDigit {
			end = i + 1
			continue
		}
		if r == '.' && seenDigit {
			end = i + 1
			continue
		}
		break
	}
	if !seenDigit {
		return 0, false
	}

	f, err := strconv.ParseFloat(strings.TrimSpace(s[:end]), 64)
	if err != nil {
		return 0, false
	}
	return finite(f)
}
