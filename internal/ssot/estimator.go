// Package ssot is the single source of truth for coarse facility power
// estimates. Given an industry slug and canonical fields it returns a peak
// power estimate in MW and a typical discharge duration.
//
// The estimator reads canonical field names only (with documented
// alternates); translating adapter field names to these canonical names is
// the alias resolver's job. Every field carries an estimator-side default
// so a sparse payload still produces a number.
package ssot

import (
	"fmt"
	"math"
)

// Estimate is the coarse output of the base estimator.
type Estimate struct {
	// PowerMW is the estimated facility peak in megawatts.
	PowerMW float64 `json:"powerMW"`

	// DurationHrs is the typical storage discharge duration for the
	// industry's load shape.
	DurationHrs float64 `json:"durationHrs"`

	// Description is a one-line derivation summary.
	Description string `json:"description"`

	// CalculationMethod names the benchmark used, for audit trails.
	CalculationMethod string `json:"calculationMethod"`
}

// MinEstimateKW is the floor applied to every estimate. Sites below this
// have no meaningful storage opportunity and the floor keeps downstream
// ratios well-defined.
const MinEstimateKW = 10.0

type estimatorFunc func(fields map[string]any) Estimate

// estimators maps industry slugs to their benchmark formulas. Read-only.
//
//nolint:gochecknoglobals // Package-level lookup table, initialized once.
var estimators = map[string]estimatorFunc{
	"hotel":         estimateHotel,
	"car_wash":      estimateCarWash,
	"data_center":   estimateDataCenter,
	"ev_charging":   estimateEVCharging,
	"gas_station":   estimateGasStation,
	"hospital":      estimateHospital,
	"grocery":       estimateGrocery,
	"warehouse":     estimateWarehouse,
	"manufacturing": estimateManufacturing,
	"office":        estimateOffice,
	"retail":        estimateRetail,
	"restaurant":    estimateRestaurant,
	"school":        estimateSchool,
	"cold_storage":  estimateColdStorage,
	"indoor_farm":   estimateIndoorFarm,
	"casino":        estimateCasino,
	"multifamily":   estimateMultifamily,
	"laundromat":    estimateLaundromat,
	"brewery":       estimateBrewery,
	"truck_stop":    estimateTruckStop,
}

// CalculatePower returns the coarse power estimate for an industry slug.
// Unknown slugs fall back to a square-footage benchmark rather than
// failing, so callers always receive a usable estimate.
func CalculatePower(industry string, fields map[string]any) Estimate {
	if fn, ok := estimators[industry]; ok {
		return clampEstimate(fn(fields))
	}
	return clampEstimate(estimateGenericFacility(fields))
}

// KnownIndustries returns true when the slug has a dedicated benchmark.
func KnownIndustries(industry string) bool {
	_, ok := estimators[industry]
	return ok
}

func clampEstimate(e Estimate) Estimate {
	kw := e.PowerMW * 1000
	if kw < MinEstimateKW {
		e.PowerMW = MinEstimateKW / 1000
	}
	if e.DurationHrs <= 0 {
		e.DurationHrs = 4
	}
	return e
}

func mw(kw float64) float64 { return kw / 1000 }

func estimateHotel(fields map[string]any) Estimate {
	rooms := fieldNumber(fields, "roomCount", []string{"rooms", "numRooms"}, 120)
	occupancy := fieldNumber(fields, "occupancyRate", []string{"occupancyPct"}, 0.70)
	if occupancy > 1 {
		occupancy /= 100 // entered as a percentage
	}
	kw := rooms * 1.1 * (0.6 + 0.4*occupancy)
	return Estimate{
		PowerMW:           mw(kw),
		DurationHrs:       4,
		Description:       fmt.Sprintf("%.0f rooms at 1.1 kW/room, %.0f%% occupancy", rooms, occupancy*100),
		CalculationMethod: "per_room_benchmark",
	}
}

func estimateCarWash(fields map[string]any) Estimate {
	bays := fieldNumber(fields, "washBays", []string{"bays"}, 4)
	tunnels := fieldNumber(fields, "tunnelCount", []string{"tunnels"}, 0)
	vacuums := fieldNumber(fields, "vacuumCount", []string{"vacuumStations"}, 8)
	kw := bays*12 + tunnels*90 + vacuums*1.2
	return Estimate{
		PowerMW:           mw(kw),
		DurationHrs:       2,
		Description:       fmt.Sprintf("%.0f bays, %.0f tunnels, %.0f vacuum stations", bays, tunnels, vacuums),
		CalculationMethod: "per_bay_benchmark",
	}
}

func estimateDataCenter(fields map[string]any) Estimate {
	racks := fieldNumber(fields, "racks", []string{"rackCount"}, 40)
	density := fieldNumber(fields, "rackDensityKW", []string{"kwPerRack"}, 8)
	tier := fieldToken(fields, "redundancyTier", []string{"redundancy"}, "n1")
	overhead := 1.4 // PUE for cooling and distribution
	switch tier {
	case "n":
		overhead = 1.3
	case "2n":
		overhead = 1.55
	}
	kw := racks * density * overhead
	return Estimate{
		PowerMW:           mw(kw),
		DurationHrs:       6,
		Description:       fmt.Sprintf("%.0f racks at %.1f kW/rack, %s redundancy", racks, density, tier),
		CalculationMethod: "rack_density_pue",
	}
}

func estimateEVCharging(fields map[string]any) Estimate {
	l2 := fieldNumber(fields, "l2Count", []string{"level2Count"}, 4)
	dcfc := fieldNumber(fields, "dcfcCount", []string{"dcFastCount"}, 2)
	hpc := fieldNumber(fields, "hpcCount", []string{"hpc350Count"}, 0)
	connected := l2*9.6 + dcfc*150 + hpc*350
	// Concurrency diversity: large plazas rarely see every port at max.
	diversity := 1.0
	if l2+dcfc+hpc > 8 {
		diversity = 0.85
	}
	kw := connected * diversity
	return Estimate{
		PowerMW:           mw(kw),
		DurationHrs:       2,
		Description:       fmt.Sprintf("%.0f L2, %.0f DCFC, %.0f HPC ports (%.0f kW connected)", l2, dcfc, hpc, connected),
		CalculationMethod: "connected_port_diversity",
	}
}

func estimateGasStation(fields map[string]any) Estimate {
	pumps := fieldNumber(fields, "pumpCount", []string{"fuelingPositions"}, 8)
	// Submersible turbine pump bank plus per-position dispenser load.
	kw := 15 + pumps*1.5
	return Estimate{
		PowerMW:           mw(kw),
		DurationHrs:       2,
		Description:       fmt.Sprintf("%.0f fueling positions (15 kW STP bank + 1.5 kW/position)", pumps),
		CalculationMethod: "fueling_position_benchmark",
	}
}

func estimateHospital(fields map[string]any) Estimate {
	beds := fieldNumber(fields, "bedCount", []string{"beds"}, 150)
	kw := beds * 2.5
	return Estimate{
		PowerMW:           mw(kw),
		DurationHrs:       8,
		Description:       fmt.Sprintf("%.0f beds at 2.5 kW/bed", beds),
		CalculationMethod: "per_bed_benchmark",
	}
}

func estimateGrocery(fields map[string]any) Estimate {
	area := fieldNumber(fields, "salesArea", []string{"salesFloorSqFt"}, 30000)
	cases := fieldNumber(fields, "caseCount", []string{"refrigerationCaseCount"}, 40)
	kw := area*0.035 + cases*1.1
	return Estimate{
		PowerMW:           mw(kw),
		DurationHrs:       4,
		Description:       fmt.Sprintf("%.0f sq ft sales floor, %.0f refrigeration cases", area, cases),
		CalculationMethod: "sales_area_refrigeration",
	}
}

func estimateWarehouse(fields map[string]any) Estimate {
	area := fieldNumber(fields, "floorAreaSqFt", []string{"facilitySqFt"}, 100000)
	docks := fieldNumber(fields, "dockDoorCount", []string{"dockDoors"}, 12)
	chargers := fieldNumber(fields, "forkliftChargerCount", []string{"forkliftChargers"}, 10)
	kw := area*0.008 + docks*0.5 + chargers*6
	return Estimate{
		PowerMW:           mw(kw),
		DurationHrs:       4,
		Description:       fmt.Sprintf("%.0f sq ft, %.0f dock doors, %.0f forklift chargers", area, docks, chargers),
		CalculationMethod: "floor_area_benchmark",
	}
}

func estimateManufacturing(fields map[string]any) Estimate {
	process := fieldNumber(fields, "processKW", []string{"processLoadKW"}, 400)
	kw := process * 1.15 // auxiliaries ride on top of the process line
	return Estimate{
		PowerMW:           mw(kw),
		DurationHrs:       8,
		Description:       fmt.Sprintf("%.0f kW process load plus 15%% auxiliaries", process),
		CalculationMethod: "process_load_benchmark",
	}
}

func estimateOffice(fields map[string]any) Estimate {
	area := fieldNumber(fields, "floorAreaSqFt", []string{"facilitySqFt"}, 50000)
	kw := area * 0.0055
	return Estimate{
		PowerMW:           mw(kw),
		DurationHrs:       4,
		Description:       fmt.Sprintf("%.0f sq ft at 5.5 W/sq ft", area),
		CalculationMethod: "watts_per_sqft",
	}
}

func estimateRetail(fields map[string]any) Estimate {
	area := fieldNumber(fields, "salesArea", []string{"salesFloorSqFt"}, 20000)
	kw := area * 0.007
	return Estimate{
		PowerMW:           mw(kw),
		DurationHrs:       4,
		Description:       fmt.Sprintf("%.0f sq ft at 7 W/sq ft", area),
		CalculationMethod: "watts_per_sqft",
	}
}

func estimateRestaurant(fields map[string]any) Estimate {
	seats := fieldNumber(fields, "seatCount", []string{"seats"}, 120)
	kw := seats * 0.45
	return Estimate{
		PowerMW:           mw(kw),
		DurationHrs:       4,
		Description:       fmt.Sprintf("%.0f seats at 0.45 kW/seat", seats),
		CalculationMethod: "per_seat_benchmark",
	}
}

func estimateSchool(fields map[string]any) Estimate {
	students := fieldNumber(fields, "enrollment", []string{"studentCount"}, 800)
	kw := students * 0.11
	return Estimate{
		PowerMW:           mw(kw),
		DurationHrs:       6,
		Description:       fmt.Sprintf("%.0f students at 0.11 kW/student", students),
		CalculationMethod: "per_student_benchmark",
	}
}

func estimateColdStorage(fields map[string]any) Estimate {
	area := fieldNumber(fields, "floorAreaSqFt", []string{"facilitySqFt"}, 60000)
	freezer := fieldNumber(fields, "freezerFraction", []string{"freezerSharePct"}, 0.4)
	if freezer > 1 {
		freezer /= 100
	}
	freezer = math.Min(math.Max(freezer, 0), 1)
	kw := area * 0.012 * (1 + freezer)
	return Estimate{
		PowerMW:           mw(kw),
		DurationHrs:       8,
		Description:       fmt.Sprintf("%.0f sq ft, %.0f%% freezer space", area, freezer*100),
		CalculationMethod: "refrigerated_area_benchmark",
	}
}

func estimateIndoorFarm(fields map[string]any) Estimate {
	canopy := fieldNumber(fields, "canopyArea", []string{"canopySqFt"}, 20000)
	kw := canopy * 0.030 // HPS-era baseline; LED fleets land well under this
	return Estimate{
		PowerMW:           mw(kw),
		DurationHrs:       12,
		Description:       fmt.Sprintf("%.0f sq ft canopy at 30 W/sq ft", canopy),
		CalculationMethod: "canopy_watts_benchmark",
	}
}

func estimateCasino(fields map[string]any) Estimate {
	gaming := fieldNumber(fields, "gamingArea", []string{"gamingFloorSqFt"}, 50000)
	rooms := fieldNumber(fields, "roomCount", []string{"hotelRoomCount"}, 0)
	kw := gaming*0.012 + rooms*1.1
	return Estimate{
		PowerMW:           mw(kw),
		DurationHrs:       8,
		Description:       fmt.Sprintf("%.0f sq ft gaming floor, %.0f hotel rooms", gaming, rooms),
		CalculationMethod: "gaming_floor_benchmark",
	}
}

func estimateMultifamily(fields map[string]any) Estimate {
	units := fieldNumber(fields, "unitCount", []string{"units"}, 150)
	kw := units * 1.3 // coincident demand per dwelling unit
	return Estimate{
		PowerMW:           mw(kw),
		DurationHrs:       4,
		Description:       fmt.Sprintf("%.0f units at 1.3 kW coincident demand", units),
		CalculationMethod: "per_unit_coincident",
	}
}

func estimateLaundromat(fields map[string]any) Estimate {
	washers := fieldNumber(fields, "washerCount", []string{"washers"}, 24)
	dryers := fieldNumber(fields, "dryerCount", []string{"dryers"}, 24)
	kw := washers*1.2 + dryers*6.5
	return Estimate{
		PowerMW:           mw(kw),
		DurationHrs:       3,
		Description:       fmt.Sprintf("%.0f washers, %.0f electric dryers", washers, dryers),
		CalculationMethod: "appliance_count_benchmark",
	}
}

func estimateBrewery(fields map[string]any) Estimate {
	barrels := fieldNumber(fields, "barrelsPerYear", []string{"annualBarrels"}, 10000)
	kw := barrels*0.004 + 30 // brewhouse scales with volume; packaging is a step load
	return Estimate{
		PowerMW:           mw(kw),
		DurationHrs:       6,
		Description:       fmt.Sprintf("%.0f bbl/yr production", barrels),
		CalculationMethod: "annual_volume_benchmark",
	}
}

func estimateTruckStop(fields map[string]any) Estimate {
	lanes := fieldNumber(fields, "dieselLaneCount", []string{"dieselLanes"}, 8)
	parking := fieldNumber(fields, "truckParkingCount", []string{"parkingSpots"}, 80)
	kw := lanes*2 + parking*0.3 + 30 // lanes + shore power + travel store
	return Estimate{
		PowerMW:           mw(kw),
		DurationHrs:       6,
		Description:       fmt.Sprintf("%.0f diesel lanes, %.0f truck parking spots", lanes, parking),
		CalculationMethod: "lane_parking_benchmark",
	}
}

func estimateGenericFacility(fields map[string]any) Estimate {
	area := fieldNumber(fields, "facilitySize", []string{"floorAreaSqFt", "facilitySqFt"}, 10000)
	kw := math.Max(area*0.006, 50)
	return Estimate{
		PowerMW:           mw(kw),
		DurationHrs:       4,
		Description:       fmt.Sprintf("%.0f sq ft at 6 W/sq ft (generic commercial benchmark)", area),
		CalculationMethod: "generic_watts_per_sqft",
	}
}
