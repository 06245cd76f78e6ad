package quote

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStableHashKeyOrderIndependent(t *testing.T) {
	a := map[string]any{"industry": "hotel", "peakKW": 250.0, "state": "CA"}
	b := map[string]any{"state": "CA", "peakKW": 250.0, "industry": "hotel"}

	ha, err := StableHash(a)
	require.NoError(t, err)
	hb, err := StableHash(b)
	require.NoError(t, err)
	assert.Equal(t, ha, hb)
}

func TestStableHashStructVsMap(t *testing.T) {
	type in struct {
		Industry string  `json:"industry"`
		PeakKW   float64 `json:"peakKW"`
	}

	hs, err := StableHash(in{Industry: "hotel", PeakKW: 250})
	require.NoError(t, err)
	hm, err := StableHash(map[string]any{"peakKW": 250.0, "industry": "hotel"})
	require.NoError(t, err)
	assert.Equal(t, hs, hm, "structurally equal values must hash identically")
}

func TestStableHashSensitivity(t *testing.T) {
	h1, err := StableHash(map[string]any{"peakKW": 250.0})
	require.NoError(t, err)
	h2, err := StableHash(map[string]any{"peakKW": 250.1})
	require.NoError(t, err)
	assert.NotEqual(t, h1, h2)
}

func TestStableHashFormat(t *testing.T) {
	h, err := StableHash("x")
	require.NoError(t, err)
	assert.Len(t, h, 16, "fixed-width hex of a 64-bit hash")
}

func TestStableHashUnmarshalableInput(t *testing.T) {
	_, err := StableHash(make(chan int))
	assert.Error(t, err)
}
