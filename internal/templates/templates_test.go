package templates

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evergrid/quoteflow/internal/calcs"
	"github.com/evergrid/quoteflow/internal/registry"
)

func TestResolveExplicitBinding(t *testing.T) {
	tpl, ok := Resolve("ev_charging")
	require.True(t, ok)
	assert.Equal(t, calcs.CalcEVChargingV2, tpl.Calculator.ID)
	assert.Equal(t, "2.0.0", tpl.Version)
}

func TestResolveDefaultsToLatest(t *testing.T) {
	tpl, ok := Resolve("hotel")
	require.True(t, ok)
	assert.Equal(t, calcs.CalcHotelV1, tpl.Calculator.ID)
}

func TestResolveUnknownIndustry(t *testing.T) {
	_, ok := Resolve("moon_base")
	assert.False(t, ok)
}

func TestResolveCoversAllRegisteredIndustries(t *testing.T) {
	for _, industry := range registry.Industries() {
		tpl, ok := Resolve(industry)
		require.True(t, ok, "industry %s", industry)

		_, found := registry.Get(tpl.Calculator.ID)
		assert.True(t, found, "template for %s binds unregistered calculator %s", industry, tpl.Calculator.ID)
	}
}

func TestApplyMappingTranslatesQuestionIDs(t *testing.T) {
	tpl, ok := Resolve("hotel")
	require.True(t, ok)

	in := ApplyMapping(tpl, map[string]any{
		"numberOfRooms": 180,
		"unmappedExtra": "kept",
	})

	assert.Equal(t, 180, in["rooms"])
	assert.Equal(t, "kept", in["unmappedExtra"])
	_, leaked := in["numberOfRooms"]
	assert.False(t, leaked, "wizard question id must not leak through")
}

func TestApplyMappingDropsNilAnswers(t *testing.T) {
	tpl, ok := Resolve("hotel")
	require.True(t, ok)

	in := ApplyMapping(tpl, map[string]any{"numberOfRooms": nil})
	assert.False(t, in.Has("rooms"))
}

func TestSizingDefaults(t *testing.T) {
	sz := SizingDefaults("ev_charging")
	assert.InDelta(t, 0.60, sz.Ratio, 1e-9)
	assert.InDelta(t, 2.0, sz.Hours, 1e-9)

	fallback := SizingDefaults("moon_base")
	assert.Greater(t, fallback.Ratio, 0.0)
	assert.Greater(t, fallback.Hours, 0.0)
}

func TestSizingDefaultsCoverAllIndustries(t *testing.T) {
	for _, industry := range registry.Industries() {
		sz := SizingDefaults(industry)
		assert.Greater(t, sz.Ratio, 0.0, "industry %s", industry)
		assert.Greater(t, sz.Hours, 0.0, "industry %s", industry)
	}
}
