package pricing

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Rate holds the utility tariff figures the savings model needs.
type Rate struct {
	// EnergyUSDPerKWh is the blended commercial energy rate.
	EnergyUSDPerKWh float64 `yaml:"energyUSDPerKWh"`

	// DemandUSDPerKW is the monthly demand charge.
	DemandUSDPerKW float64 `yaml:"demandUSDPerKW"`
}

// Default tariff used when the state is unknown or missing from the table.
//
//nolint:gochecknoglobals // Package-level default, initialized once.
var defaultRate = Rate{EnergyUSDPerKWh: 0.13, DemandUSDPerKW: 15.0}

// stateRates is the built-in per-state commercial tariff table. Values are
// blended statewide averages, refreshed manually from EIA data.
//
//nolint:gochecknoglobals // Package-level lookup table, initialized once.
var stateRates = map[string]Rate{
	"CA": {EnergyUSDPerKWh: 0.22, DemandUSDPerKW: 24.0},
	"NY": {EnergyUSDPerKWh: 0.17, DemandUSDPerKW: 21.0},
	"MA": {EnergyUSDPerKWh: 0.19, DemandUSDPerKW: 22.0},
	"TX": {EnergyUSDPerKWh: 0.09, DemandUSDPerKW: 11.0},
	"FL": {EnergyUSDPerKWh: 0.11, DemandUSDPerKW: 10.5},
	"AZ": {EnergyUSDPerKWh: 0.11, DemandUSDPerKW: 16.0},
	"NV": {EnergyUSDPerKWh: 0.10, DemandUSDPerKW: 12.0},
	"WA": {EnergyUSDPerKWh: 0.09, DemandUSDPerKW: 9.0},
	"OR": {EnergyUSDPerKWh: 0.10, DemandUSDPerKW: 10.0},
	"CO": {EnergyUSDPerKWh: 0.11, DemandUSDPerKW: 14.0},
	"IL": {EnergyUSDPerKWh: 0.10, DemandUSDPerKW: 13.0},
	"GA": {EnergyUSDPerKWh: 0.11, DemandUSDPerKW: 12.0},
	"NJ": {EnergyUSDPerKWh: 0.14, DemandUSDPerKW: 18.0},
	"CT": {EnergyUSDPerKWh: 0.20, DemandUSDPerKW: 20.0},
	"HI": {EnergyUSDPerKWh: 0.35, DemandUSDPerKW: 28.0},
}

// RateTable resolves tariffs by state, with optional yaml overrides layered
// on top of the built-in table.
type RateTable struct {
	rates map[string]Rate
}

// NewRateTable returns a table backed by the built-in tariff data.
func NewRateTable() *RateTable {
	rates := make(map[string]Rate, len(stateRates))
	for k, v := range stateRates {
		rates[k] = v
	}
	return &RateTable{rates: rates}
}

// LoadOverrides merges tariff rows from a yaml file into the table,
// replacing built-in entries for the states it names.
//
// File format:
//
//	rates:
//	  CA:
//	    energyUSDPerKWh: 0.24
//	    demandUSDPerKW: 26.0
func (t *RateTable) LoadOverrides(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading rate overrides: %w", err)
	}

	var doc struct {
		Rates map[string]Rate `yaml:"rates"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parsing rate overrides: %w", err)
	}

	for state, rate := range doc.Rates {
		t.rates[state] = rate
	}
	return nil
}

// Lookup returns the tariff for a two-letter state code. The second return
// reports whether the default was substituted because the state was
// unknown; callers surface that as an informational warning.
func (t *RateTable) Lookup(state string) (Rate, bool) {
	if r, ok := t.rates[state]; ok {
		return r, false
	}
	return defaultRate, true
}
