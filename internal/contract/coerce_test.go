package contract

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNumber(t *testing.T) {
	tests := []struct {
		name   string
		in     any
		want   float64
		wantOK bool
	}{
		{"float64", 42.5, 42.5, true},
		{"int", 7, 7, true},
		{"bool true", true, 1, true},
		{"bool false", false, 0, true},
		{"plain string", "12", 12, true},
		{"padded string", " 8.5 ", 8.5, true},
		{"suffixed string", "4 bays", 4, true},
		{"unit string", "150 kW", 150, true},
		{"negative string", "-3", -3, true},
		{"word", "several", 0, false},
		{"empty string", "", 0, false},
		{"nan", math.NaN(), 0, false},
		{"inf", math.Inf(1), 0, false},
		{"nil", nil, 0, false},
		{"slice", []int{1}, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Number(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.InDelta(t, tt.want, got, 1e-9)
			}
		})
	}
}

func TestString(t *testing.T) {
	got, ok := String("  Medium ")
	assert.True(t, ok)
	assert.Equal(t, "medium", got)

	_, ok = String(12)
	assert.False(t, ok, "numbers are not stringified")

	_, ok = String("   ")
	assert.False(t, ok)
}

func TestBool(t *testing.T) {
	tests := []struct {
		in     any
		want   bool
		wantOK bool
	}{
		{true, true, true},
		{"yes", true, true},
		{"Off", false, true},
		{"none", false, true},
		{1, true, true},
		{0.0, false, true},
		{"maybe", false, false},
	}

	for _, tt := range tests {
		got, ok := Bool(tt.in)
		assert.Equal(t, tt.wantOK, ok, "input %v", tt.in)
		if tt.wantOK {
			assert.Equal(t, tt.want, got, "input %v", tt.in)
		}
	}
}

func TestNewValidationShares(t *testing.T) {
	v := NewValidation(0.6, map[ContributorKey]float64{
		ContributorProcess: 75,
		ContributorHVAC:    25,
	})

	assert.InDelta(t, 100, v.KWContributorsTotalKW, 1e-9)
	assert.InDelta(t, 0.75, v.KWContributorShares["process"], 1e-9)
	assert.InDelta(t, 0.25, v.KWContributorShares["hvac"], 1e-9)
	assert.Equal(t, ValidationVersion, v.Version)
}

func TestNewValidationTotalReproducible(t *testing.T) {
	contributors := map[ContributorKey]float64{
		ContributorProcess:  96.03,
		ContributorHVAC:     84.17,
		ContributorLighting: 30.29,
		ContributorControls: 9.11,
		ContributorITLoad:   15.47,
		ContributorCooling:  41.53,
		ContributorCharging: 12.61,
		ContributorOther:    13.75,
	}

	first := NewValidation(0.6, contributors)
	for i := 0; i < 50; i++ {
		again := NewValidation(0.6, contributors)
		assert.Equal(t, first.KWContributorsTotalKW, again.KWContributorsTotalKW)
		assert.Equal(t, first.KWContributorShares, again.KWContributorShares)
	}
}

func TestInputsClone(t *testing.T) {
	in := Inputs{"a": 1}
	c := in.Clone()
	c["b"] = 2

	assert.False(t, in.Has("b"))
	assert.True(t, c.Has("a"))
}
