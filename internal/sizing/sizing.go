// Package sizing produces confidence-banded battery storage
// recommendations from a computed load profile and the user's stated
// goals. Bands are presentation ranges that widen as input confidence
// drops; they are not statistical intervals.
//
// Every decision the engine takes is appended to the result's Notes — the
// notes array is the system's explainability mechanism and downstream
// surfaces render it verbatim.
package sizing

import (
	"fmt"
	"math"
	"sort"
)

// Goal is a storage objective the user selected.
type Goal string

// Supported storage goals.
const (
	GoalPeakShaving      Goal = "peak_shaving"
	GoalBackup           Goal = "backup"
	GoalArbitrage        Goal = "arbitrage"
	GoalGridIndependence Goal = "grid_independence"
)

// Load-factor assumption used when peak must be estimated from annual
// energy alone.
const fallbackLoadFactor = 0.4

// Inputs feeds one sizing computation.
type Inputs struct {
	Industry string

	// PeakLoadKW is the computed facility peak; 0 means unknown.
	PeakLoadKW float64

	// AnnualEnergyKWh backs the peak estimate when PeakLoadKW is unknown.
	AnnualEnergyKWh float64

	// HVACMultiplier scales peak for climate adjustment; 0 means 1.0.
	HVACMultiplier float64

	// GridCapacityKW is the interconnection limit; 0 means no datum.
	GridCapacityKW float64

	// Goals the user selected. Empty defaults to peak shaving.
	Goals []Goal

	// CriticalLoadFactor is the backup-carry fraction of peak; 0 picks the
	// industry default.
	CriticalLoadFactor float64

	// HasBackupGenerator shortens the recommended duration: the battery
	// only bridges to generator start.
	HasBackupGenerator bool

	// UserPowerKW overrides the computed best power when positive.
	UserPowerKW float64

	// Confidence in the inputs, 0-100.
	Confidence float64
}

// Band is a presentation range around a best estimate.
type Band struct {
	Min  float64 `json:"min"`
	Max  float64 `json:"max"`
	Best float64 `json:"best"`
}

// Recommendation is the banded output block.
type Recommendation struct {
	PowerKW       Band `json:"powerKW"`
	EnergyKWh     Band `json:"energyKWh"`
	DurationHours struct {
		Best float64 `json:"best"`
	} `json:"durationHours"`
}

// Result is the full sizing recommendation.
type Result struct {
	Recommended    Recommendation     `json:"recommended"`
	GoalsBreakdown map[string]float64 `json:"goalsBreakdown"`
	Constraints    []string           `json:"constraints"`
	Confidence     float64            `json:"confidence"`
	Notes          []string           `json:"notes"`
}

// industryPowerFloorsKW is the smallest storage system worth quoting per
// industry.
//
//nolint:gochecknoglobals // Package-level lookup table, initialized once.
var industryPowerFloorsKW = map[string]float64{
	"hospital":    100,
	"data_center": 100,
	"ev_charging": 50,
	"casino":      100,
	"truck_stop":  50,
}

// defaultPowerFloorKW applies when the industry has no tuned floor.
const defaultPowerFloorKW = 25

// industryCriticalLoadFactors is the default backup-carry fraction per
// industry when the user did not supply one.
//
//nolint:gochecknoglobals // Package-level lookup table, initialized once.
var industryCriticalLoadFactors = map[string]float64{
	"hospital":     0.50,
	"data_center":  0.60,
	"cold_storage": 0.55,
	"grocery":      0.40,
	"hotel":        0.30,
	"truck_stop":   0.35,
}

// defaultCriticalLoadFactor applies when the industry has no tuned factor.
const defaultCriticalLoadFactor = 0.30

// ComputeTrueQuoteSizing derives a banded storage recommendation. Pure
// function: identical inputs produce identical results.
func ComputeTrueQuoteSizing(in Inputs) Result {
	notes := []string{}
	constraints := []string{}
	breakdown := map[string]float64{}

	goals := in.Goals
	if len(goals) == 0 {
		goals = []Goal{GoalPeakShaving}
		notes = append(notes, "no goals selected; defaulting to peak shaving")
	}

	// Step 1: effective peak.
	peak := in.PeakLoadKW
	hvacMult := in.HVACMultiplier
	if hvacMult <= 0 {
		hvacMult = 1.0
	}
	if peak > 0 {
		peak *= hvacMult
		if hvacMult != 1.0 {
			notes = append(notes, fmt.Sprintf("peak adjusted by HVAC multiplier %.2f to %.0f kW", hvacMult, peak))
		}
	} else if in.AnnualEnergyKWh > 0 {
		peak = in.AnnualEnergyKWh / 8760 / fallbackLoadFactor
		notes = append(notes, fmt.Sprintf("peak unknown; estimated %.0f kW from annual energy at %.0f%% load factor",
			peak, fallbackLoadFactor*100))
	} else {
		peak = defaultPowerFloorKW / 0.25
		notes = append(notes, "no peak or energy data; using minimum placeholder peak")
	}

	// Step 2: target peak cap.
	var targetCap float64
	switch {
	case in.GridCapacityKW > 0 && in.GridCapacityKW < peak*1.2:
		targetCap = peak * 0.75
		constraints = append(constraints, fmt.Sprintf("grid capacity %.0f kW is within 1.2x of peak", in.GridCapacityKW))
		notes = append(notes, fmt.Sprintf("tight grid headroom; target peak cap set to 75%% of peak (%.0f kW)", targetCap))
	case in.GridCapacityKW > 0:
		targetCap = peak * 0.85
		notes = append(notes, fmt.Sprintf("ample grid capacity; target peak cap set to 85%% of peak (%.0f kW)", targetCap))
	default:
		targetCap = peak * 0.80
		notes = append(notes, fmt.Sprintf("no grid capacity datum; target peak cap defaults to 80%% of peak (%.0f kW)", targetCap))
	}

	// Step 3: best power.
	shavingNeed := math.Max(peak-targetCap, 0)
	breakdown[string(GoalPeakShaving)] = shavingNeed

	bestPower := shavingNeed
	if hasGoal(goals, GoalBackup) || hasGoal(goals, GoalGridIndependence) {
		clf := in.CriticalLoadFactor
		if clf <= 0 {
			clf = criticalLoadFactor(in.Industry)
			notes = append(notes, fmt.Sprintf("critical load factor defaulted to %.0f%% for %s", clf*100, in.Industry))
		}
		backupNeed := clf * peak
		breakdown[string(GoalBackup)] = backupNeed
		if backupNeed > bestPower {
			bestPower = backupNeed
			notes = append(notes, fmt.Sprintf("backup goal drives power: %.0f kW critical load", backupNeed))
		}
	}
	if floor := powerFloor(in.Industry); bestPower < floor {
		bestPower = floor
		notes = append(notes, fmt.Sprintf("raised to industry minimum of %.0f kW", floor))
	}
	if in.UserPowerKW > 0 {
		bestPower = in.UserPowerKW
		notes = append(notes, fmt.Sprintf("power overridden by user input: %.0f kW", in.UserPowerKW))
	}

	// Step 4: best duration.
	duration := durationForGoals(goals)
	notes = append(notes, fmt.Sprintf("duration %.1f h from goals %s", duration, goalList(goals)))
	if in.HasBackupGenerator {
		duration = math.Max(duration*0.75, 2)
		notes = append(notes, fmt.Sprintf("existing backup generator; duration reduced 25%% to %.1f h (floor 2 h)", duration))
	}

	// Step 5: best energy.
	bestEnergy := bestPower * duration

	// Step 6: confidence band.
	width := bandWidthPct(in.Confidence)
	notes = append(notes, fmt.Sprintf("confidence %.0f; band width +/-%.0f%%", in.Confidence, width))

	powerBand := band(bestPower, width)
	result := Result{
		Recommended: Recommendation{
			PowerKW:   powerBand,
			EnergyKWh: Band{Min: powerBand.Min * duration, Max: powerBand.Max * duration, Best: bestEnergy},
		},
		GoalsBreakdown: breakdown,
		Constraints:    constraints,
		Confidence:     in.Confidence,
		Notes:          notes,
	}
	result.Recommended.DurationHours.Best = duration
	return result
}

// bandWidthPct widens the recommendation band as confidence drops through
// the 75/60/45 thresholds.
func bandWidthPct(confidence float64) float64 {
	switch {
	case confidence >= 75:
		return 10
	case confidence >= 60:
		return 15
	case confidence >= 45:
		return 20
	default:
		return 25
	}
}

func band(best, widthPct float64) Band {
	return Band{
		Min:  math.Max(best*(1-widthPct/100), 0),
		Max:  best * (1 + widthPct/100),
		Best: best,
	}
}

// durationForGoals looks up the recommended discharge duration for a goal
// combination: shaving-only systems stay short, backup systems go long,
// combined systems sit between.
func durationForGoals(goals []Goal) float64 {
	backup := hasGoal(goals, GoalBackup) || hasGoal(goals, GoalGridIndependence)
	shaving := hasGoal(goals, GoalPeakShaving)
	arbitrage := hasGoal(goals, GoalArbitrage)

	switch {
	case backup && (shaving || arbitrage):
		return 3.5
	case backup:
		return 5
	case arbitrage:
		return 4
	default:
		return 2
	}
}

func hasGoal(goals []Goal, g Goal) bool {
	for _, goal := range goals {
		if goal == g {
			return true
		}
	}
	return false
}

func goalList(goals []Goal) string {
	names := make([]string, len(goals))
	for i, g := range goals {
		names[i] = string(g)
	}
	sort.Strings(names)
	out := ""
	for i, n := range names {
		if i > 0 {
			out += "+"
		}
		out += n
	}
	return out
}

func powerFloor(industry string) float64 {
	if f, ok := industryPowerFloorsKW[industry]; ok {
		return f
	}
	return defaultPowerFloorKW
}

func criticalLoadFactor(industry string) float64 {
	if f, ok := industryCriticalLoadFactors[industry]; ok {
		return f
	}
	return defaultCriticalLoadFactor
}
