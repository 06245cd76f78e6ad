// Package loadcurve renders a computed load profile as a normalized
// 24-hour curve for visualization. The curve is shape-only: hour values
// are fractions of peak in [0, 1], and the caller multiplies by peak kW
// to recover absolute load.
package loadcurve

import "math"

// Hours in the generated curve, one sample per hour starting at midnight.
const Hours = 24

// Shape names the daily occupancy pattern an industry follows.
type Shape string

// Supported daily shapes.
const (
	// ShapeFlat runs near peak around the clock (data centers, cold storage).
	ShapeFlat Shape = "flat"
	// ShapeDaytime ramps up for business hours and back down (offices, retail).
	ShapeDaytime Shape = "daytime"
	// ShapeEvening peaks in the late afternoon and evening (restaurants,
	// multifamily, EV charging).
	ShapeEvening Shape = "evening"
	// ShapeTwoPeak has morning and evening peaks with a midday dip (hotels,
	// schools).
	ShapeTwoPeak Shape = "two_peak"
)

//nolint:gochecknoglobals // Package-level lookup table, initialized once.
var industryShapes = map[string]Shape{
	"data_center":   ShapeFlat,
	"cold_storage":  ShapeFlat,
	"indoor_farm":   ShapeFlat,
	"casino":        ShapeFlat,
	"hospital":      ShapeFlat,
	"office":        ShapeDaytime,
	"retail":        ShapeDaytime,
	"grocery":       ShapeDaytime,
	"warehouse":     ShapeDaytime,
	"manufacturing": ShapeDaytime,
	"car_wash":      ShapeDaytime,
	"gas_station":   ShapeDaytime,
	"laundromat":    ShapeDaytime,
	"brewery":       ShapeDaytime,
	"restaurant":    ShapeEvening,
	"multifamily":   ShapeEvening,
	"ev_charging":   ShapeEvening,
	"truck_stop":    ShapeEvening,
	"hotel":         ShapeTwoPeak,
	"school":        ShapeTwoPeak,
}

// ShapeFor returns the daily shape for an industry, defaulting to daytime.
func ShapeFor(industry string) Shape {
	if s, ok := industryShapes[industry]; ok {
		return s
	}
	return ShapeDaytime
}

// Point is one hour of the normalized curve.
type Point struct {
	Hour     int     `json:"hour"`
	Fraction float64 `json:"fraction"`
}

// Generate builds the 24-hour normalized curve for an industry given its
// base and peak load. Base sets the overnight floor; the shape decides
// when the curve rides at peak. Fractions are clamped to [baseFrac, 1].
func Generate(industry string, baseLoadKW, peakLoadKW float64) []Point {
	if peakLoadKW <= 0 {
		peakLoadKW = 1
	}
	baseFrac := baseLoadKW / peakLoadKW
	if baseFrac < 0 {
		baseFrac = 0
	}
	if baseFrac > 1 {
		baseFrac = 1
	}

	shape := ShapeFor(industry)
	curve := make([]Point, Hours)
	for h := 0; h < Hours; h++ {
		f := shapeFraction(shape, h)
		// Scale the shape between the base floor and full peak.
		frac := baseFrac + (1-baseFrac)*f
		curve[h] = Point{Hour: h, Fraction: round3(frac)}
	}
	return curve
}

// shapeFraction is the raw shape value in [0, 1] before the base floor is
// applied.
func shapeFraction(shape Shape, hour int) float64 {
	switch shape {
	case ShapeFlat:
		// Small overnight sag from reduced auxiliary load.
		if hour >= 2 && hour <= 5 {
			return 0.92
		}
		return 1.0
	case ShapeEvening:
		return rampValue(hour, []ramp{
			{0, 6, 0.10},
			{6, 11, 0.35},
			{11, 16, 0.55},
			{16, 21, 1.00},
			{21, 24, 0.40},
		})
	case ShapeTwoPeak:
		return rampValue(hour, []ramp{
			{0, 5, 0.15},
			{5, 10, 0.90},
			{10, 16, 0.55},
			{16, 22, 1.00},
			{22, 24, 0.30},
		})
	default: // ShapeDaytime
		return rampValue(hour, []ramp{
			{0, 6, 0.05},
			{6, 9, 0.60},
			{9, 17, 1.00},
			{17, 20, 0.50},
			{20, 24, 0.10},
		})
	}
}

// ramp holds a [from, to) hour window and its plateau value.
type ramp struct {
	from, to int
	value    float64
}

func rampValue(hour int, ramps []ramp) float64 {
	for _, r := range ramps {
		if hour >= r.from && hour < r.to {
			return r.value
		}
	}
	return 0
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
