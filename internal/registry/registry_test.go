package registry

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evergrid/quoteflow/internal/calcs"
)

func TestGetKnownCalculator(t *testing.T) {
	c, ok := Get(calcs.CalcHotelV1)
	require.True(t, ok)
	assert.Equal(t, calcs.CalcHotelV1, c.ID)
	assert.NotNil(t, c.Compute)
}

func TestGetUnknownCalculator(t *testing.T) {
	_, ok := Get("no_such_calculator")
	assert.False(t, ok)
}

func TestIDsSortedAndComplete(t *testing.T) {
	ids := IDs()
	assert.True(t, sort.StringsAreSorted(ids))
	assert.Len(t, ids, len(calcs.Registrations()))
	assert.Contains(t, ids, calcs.CalcGenericV1)
}

func TestLatestPrefersHighestGeneration(t *testing.T) {
	c, ok := Latest("ev_charging")
	require.True(t, ok)
	assert.Equal(t, calcs.CalcEVChargingV2, c.ID, "v2 outranks v1 by semver")

	c, ok = Latest("hotel")
	require.True(t, ok)
	assert.Equal(t, calcs.CalcHotelV1, c.ID, "full hotel calculator outranks the simple generation")
}

func TestLatestUnknownIndustry(t *testing.T) {
	_, ok := Latest("submarine_base")
	assert.False(t, ok)
}

func TestVersionOf(t *testing.T) {
	v, ok := VersionOf(calcs.CalcEVChargingV2)
	require.True(t, ok)
	assert.Equal(t, "2.0.0", v)
}

func TestEveryIndustryResolvesLatest(t *testing.T) {
	for _, industry := range Industries() {
		_, ok := Latest(industry)
		assert.True(t, ok, "industry %s has no resolvable latest generation", industry)
	}
}
