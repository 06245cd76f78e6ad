package alias

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evergrid/quoteflow/internal/ssot"
)

// TestAliasRowSensitivity is the guarantee the table exists for: for every
// registered row, supplying the adapter field must change both the
// resolved payload and the estimator's output relative to omitting it.
func TestAliasRowSensitivity(t *testing.T) {
	// A value large enough to move any estimator formula off its default.
	// Token-valued rows need a token probe instead.
	probes := map[string]any{
		"data_center/redundancy": "2n",
	}

	for _, industry := range Industries() {
		for _, row := range RowsFor(industry) {
			t.Run(industry+"/"+row.AdapterField, func(t *testing.T) {
				probe, ok := probes[industry+"/"+row.AdapterField]
				if !ok {
					probe = 100000.0
				}

				without := BuildSSOTInput(industry, map[string]any{})
				with := BuildSSOTInput(industry, map[string]any{row.AdapterField: probe})

				v, ok := with[row.SSOTField]
				require.True(t, ok, "adapter field %s did not resolve to %s", row.AdapterField, row.SSOTField)
				assert.Equal(t, probe, v)
				assert.False(t, reflect.DeepEqual(without, with),
					"payload insensitive to %s", row.AdapterField)

				base := ssot.CalculatePower(industry, without)
				moved := ssot.CalculatePower(industry, with)
				assert.NotEqual(t, base.PowerMW, moved.PowerMW,
					"estimator insensitive to %s -> %s", row.AdapterField, row.SSOTField)
			})
		}
	}
}

func TestBuildSSOTInputOmitsAbsentFields(t *testing.T) {
	out := BuildSSOTInput("hotel", map[string]any{})
	assert.Empty(t, out, "resolver must not invent defaults")
}

func TestBuildSSOTInputOmitsNilValues(t *testing.T) {
	out := BuildSSOTInput("hotel", map[string]any{"rooms": nil})
	_, ok := out["roomCount"]
	assert.False(t, ok)
}

func TestBuildSSOTInputPassesThroughUnmappedFields(t *testing.T) {
	out := BuildSSOTInput("hotel", map[string]any{"somethingCustom": 42})
	assert.Equal(t, 42, out["somethingCustom"])
}

func TestBuildSSOTInputWritesPrimaryNameOnly(t *testing.T) {
	out := BuildSSOTInput("hotel", map[string]any{"rooms": 120})
	assert.Equal(t, 120, out["roomCount"])
	_, ok := out["rooms"]
	assert.False(t, ok, "adapter spelling must not leak through alongside the primary name")
}
