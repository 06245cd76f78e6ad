package contract

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// Sentinel errors surfaced by the calculator framework. Calculators
// themselves never return errors; these belong to the surrounding lookup
// and resolution layers and can be compared with errors.Is().
var (
	// ErrUnknownCalculator indicates a calculator id with no registration.
	ErrUnknownCalculator = constError("unknown calculator id")

	// ErrUnknownIndustry indicates an industry slug with no template or
	// estimator coverage.
	ErrUnknownIndustry = constError("unknown industry")
)
