// Package templates binds industries to questionnaire templates: which
// calculator generation a flow uses, how raw question ids map onto
// calculator fields, and the industry's default storage sizing ratio.
package templates

import "github.com/evergrid/quoteflow/internal/registry"

// CalculatorRef names the calculator a template is bound to.
type CalculatorRef struct {
	ID string `json:"id"`
}

// Template describes the questionnaire configuration for one industry.
type Template struct {
	Industry   string        `json:"industry"`
	Version    string        `json:"version"`
	Calculator CalculatorRef `json:"calculator"`
}

// explicitBindings pins industries to a specific calculator generation.
// Industries absent from this map bind to the registry's latest
// generation.
//
//nolint:gochecknoglobals // Package-level lookup table, initialized once.
var explicitBindings = map[string]string{
	// ev_charging stays pinned to v2 explicitly: the v1 generation is
	// still registered for older saved flows.
	"ev_charging": "ev_charging_load_v2",
}

// Resolve returns the template for an industry. Unknown industries return
// ok=false; callers degrade to a provisional result rather than failing.
func Resolve(industry string) (Template, bool) {
	calcID, ok := explicitBindings[industry]
	if !ok {
		c, found := registry.Latest(industry)
		if !found {
			return Template{}, false
		}
		calcID = c.ID
	}

	version, _ := registry.VersionOf(calcID)
	return Template{
		Industry:   industry,
		Version:    version,
		Calculator: CalculatorRef{ID: calcID},
	}, true
}

// SizingDefault carries the industry's default storage sizing parameters.
type SizingDefault struct {
	// Ratio is the storage-power-to-peak-load ratio.
	Ratio float64 `json:"ratio"`

	// Hours is the default storage duration.
	Hours float64 `json:"hours"`
}

// sizingDefaults maps industries to their storage-to-peak ratio and
// duration. Peaky, short-cycle industries size smaller and shorter;
// continuous-duty industries size for longer discharge.
//
//nolint:gochecknoglobals // Package-level lookup table, initialized once.
var sizingDefaults = map[string]SizingDefault{
	"hotel":         {Ratio: 0.30, Hours: 4},
	"car_wash":      {Ratio: 0.45, Hours: 2},
	"data_center":   {Ratio: 0.25, Hours: 6},
	"ev_charging":   {Ratio: 0.60, Hours: 2},
	"gas_station":   {Ratio: 0.40, Hours: 2},
	"hospital":      {Ratio: 0.30, Hours: 8},
	"grocery":       {Ratio: 0.30, Hours: 4},
	"warehouse":     {Ratio: 0.35, Hours: 4},
	"manufacturing": {Ratio: 0.35, Hours: 4},
	"office":        {Ratio: 0.30, Hours: 4},
	"retail":        {Ratio: 0.30, Hours: 4},
	"restaurant":    {Ratio: 0.35, Hours: 3},
	"school":        {Ratio: 0.30, Hours: 4},
	"cold_storage":  {Ratio: 0.25, Hours: 6},
	"indoor_farm":   {Ratio: 0.35, Hours: 6},
	"casino":        {Ratio: 0.25, Hours: 6},
	"multifamily":   {Ratio: 0.30, Hours: 4},
	"laundromat":    {Ratio: 0.40, Hours: 2},
	"brewery":       {Ratio: 0.35, Hours: 4},
	"truck_stop":    {Ratio: 0.40, Hours: 4},
}

// genericSizingDefault applies to industries without a tuned entry.
//
//nolint:gochecknoglobals // Read-only default value.
var genericSizingDefault = SizingDefault{Ratio: 0.30, Hours: 4}

// SizingDefaults returns the storage sizing defaults for an industry.
func SizingDefaults(industry string) SizingDefault {
	if d, ok := sizingDefaults[industry]; ok {
		return d
	}
	return genericSizingDefault
}
