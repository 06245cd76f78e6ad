package loadcurve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateShape(t *testing.T) {
	curve := Generate("office", 20, 100)
	require.Len(t, curve, Hours)

	for _, pt := range curve {
		assert.GreaterOrEqual(t, pt.Fraction, 0.2-1e-9, "base floor is 20%% of peak at hour %d", pt.Hour)
		assert.LessOrEqual(t, pt.Fraction, 1.0)
	}

	// Daytime shape: midday rides at peak, 3am sits near base.
	assert.InDelta(t, 1.0, curve[12].Fraction, 1e-9)
	assert.Less(t, curve[3].Fraction, 0.3)
}

func TestFlatShapeStaysHigh(t *testing.T) {
	curve := Generate("data_center", 900, 1000)
	for _, pt := range curve {
		assert.GreaterOrEqual(t, pt.Fraction, 0.9, "hour %d", pt.Hour)
	}
}

func TestEveningShapePeaksLate(t *testing.T) {
	curve := Generate("restaurant", 10, 100)
	assert.Greater(t, curve[18].Fraction, curve[9].Fraction)
	assert.InDelta(t, 1.0, curve[18].Fraction, 1e-9)
}

func TestTwoPeakShape(t *testing.T) {
	curve := Generate("hotel", 30, 100)
	// Morning and evening peaks with a midday dip between them.
	assert.Greater(t, curve[7].Fraction, curve[13].Fraction)
	assert.Greater(t, curve[18].Fraction, curve[13].Fraction)
}

func TestGenerateDegenerateInputs(t *testing.T) {
	curve := Generate("office", 0, 0)
	require.Len(t, curve, Hours)
	for _, pt := range curve {
		assert.GreaterOrEqual(t, pt.Fraction, 0.0)
		assert.LessOrEqual(t, pt.Fraction, 1.0)
	}

	// Base above peak clamps to a flat full-load curve.
	curve = Generate("office", 200, 100)
	for _, pt := range curve {
		assert.InDelta(t, 1.0, pt.Fraction, 1e-9)
	}
}

func TestShapeForUnknownIndustry(t *testing.T) {
	assert.Equal(t, ShapeDaytime, ShapeFor("asteroid_mining"))
}
