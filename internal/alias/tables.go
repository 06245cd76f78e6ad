package alias

// tables holds the per-industry alias rows. Defaults mirror the base
// estimator's built-ins so a reader can audit the whole resolution path in
// one place.
//
//nolint:gochecknoglobals // Package-level lookup table, initialized once.
var tables = map[string][]FieldAlias{
	"hotel": {
		{AdapterField: "rooms", SSOTField: "roomCount", SSOTAlternates: []string{"rooms", "numRooms"}, SSOTDefault: 120},
		{AdapterField: "occupancyPct", SSOTField: "occupancyRate", SSOTAlternates: []string{"occupancyPct"}, SSOTDefault: 0.70},
	},
	"car_wash": {
		{AdapterField: "bays", SSOTField: "washBays", SSOTAlternates: []string{"bays"}, SSOTDefault: 4},
		{AdapterField: "tunnels", SSOTField: "tunnelCount", SSOTAlternates: []string{"tunnels"}, SSOTDefault: 0},
		{AdapterField: "vacuumStations", SSOTField: "vacuumCount", SSOTAlternates: []string{"vacuumStations"}, SSOTDefault: 8},
	},
	"data_center": {
		{AdapterField: "rackCount", SSOTField: "racks", SSOTAlternates: []string{"rackCount"}, SSOTDefault: 40},
		{AdapterField: "kwPerRack", SSOTField: "rackDensityKW", SSOTAlternates: []string{"kwPerRack"}, SSOTDefault: 8},
		{AdapterField: "redundancy", SSOTField: "redundancyTier", SSOTAlternates: []string{"redundancy"}, SSOTDefault: "n1"},
	},
	"ev_charging": {
		{AdapterField: "level2Chargers", SSOTField: "l2Count", SSOTAlternates: []string{"level2Count"}, SSOTDefault: 4},
		{AdapterField: "dcfcChargers", SSOTField: "dcfcCount", SSOTAlternates: []string{"dcFastCount"}, SSOTDefault: 2},
		{AdapterField: "hpcChargers", SSOTField: "hpcCount", SSOTAlternates: []string{"hpc350Count"}, SSOTDefault: 0},
	},
	"gas_station": {
		{AdapterField: "fuelPumps", SSOTField: "pumpCount", SSOTAlternates: []string{"fuelingPositions"}, SSOTDefault: 8},
	},
	"hospital": {
		{AdapterField: "beds", SSOTField: "bedCount", SSOTAlternates: []string{"beds"}, SSOTDefault: 150},
	},
	"grocery": {
		{AdapterField: "salesFloorSqFt", SSOTField: "salesArea", SSOTAlternates: []string{"salesFloorSqFt"}, SSOTDefault: 30000},
		{AdapterField: "refrigerationCases", SSOTField: "caseCount", SSOTAlternates: []string{"refrigerationCaseCount"}, SSOTDefault: 40},
	},
	"warehouse": {
		{AdapterField: "facilitySize", SSOTField: "floorAreaSqFt", SSOTAlternates: []string{"facilitySqFt"}, SSOTDefault: 100000},
		{AdapterField: "dockDoors", SSOTField: "dockDoorCount", SSOTAlternates: []string{"dockDoors"}, SSOTDefault: 12},
		{AdapterField: "forkliftChargers", SSOTField: "forkliftChargerCount", SSOTAlternates: []string{"forkliftChargers"}, SSOTDefault: 10},
	},
	"manufacturing": {
		{AdapterField: "processLoadKW", SSOTField: "processKW", SSOTAlternates: []string{"processLoadKW"}, SSOTDefault: 400},
	},
	"office": {
		{AdapterField: "facilitySize", SSOTField: "floorAreaSqFt", SSOTAlternates: []string{"facilitySqFt"}, SSOTDefault: 50000},
	},
	"retail": {
		{AdapterField: "salesFloorSqFt", SSOTField: "salesArea", SSOTAlternates: []string{"salesFloorSqFt"}, SSOTDefault: 20000},
	},
	"restaurant": {
		{AdapterField: "seats", SSOTField: "seatCount", SSOTAlternates: []string{"seats"}, SSOTDefault: 120},
	},
	"school": {
		{AdapterField: "students", SSOTField: "enrollment", SSOTAlternates: []string{"studentCount"}, SSOTDefault: 800},
	},
	"cold_storage": {
		{AdapterField: "facilitySize", SSOTField: "floorAreaSqFt", SSOTAlternates: []string{"facilitySqFt"}, SSOTDefault: 60000},
		{AdapterField: "freezerSharePct", SSOTField: "freezerFraction", SSOTAlternates: []string{"freezerSharePct"}, SSOTDefault: 0.4},
	},
	"indoor_farm": {
		{AdapterField: "canopySqFt", SSOTField: "canopyArea", SSOTAlternates: []string{"canopySqFt"}, SSOTDefault: 20000},
	},
	"casino": {
		{AdapterField: "gamingFloorSqFt", SSOTField: "gamingArea", SSOTAlternates: []string{"gamingFloorSqFt"}, SSOTDefault: 50000},
		{AdapterField: "hotelRooms", SSOTField: "roomCount", SSOTAlternates: []string{"hotelRoomCount"}, SSOTDefault: 0},
	},
	"multifamily": {
		{AdapterField: "units", SSOTField: "unitCount", SSOTAlternates: []string{"units"}, SSOTDefault: 150},
	},
	"laundromat": {
		{AdapterField: "washers", SSOTField: "washerCount", SSOTAlternates: []string{"washers"}, SSOTDefault: 24},
		{AdapterField: "dryers", SSOTField: "dryerCount", SSOTAlternates: []string{"dryers"}, SSOTDefault: 24},
	},
	"brewery": {
		{AdapterField: "annualBarrels", SSOTField: "barrelsPerYear", SSOTAlternates: []string{"annualBarrels"}, SSOTDefault: 10000},
	},
	"truck_stop": {
		{AdapterField: "dieselLanes", SSOTField: "dieselLaneCount", SSOTAlternates: []string{"dieselLanes"}, SSOTDefault: 8},
		{AdapterField: "parkingSpots", SSOTField: "truckParkingCount", SSOTAlternates: []string{"parkingSpots"}, SSOTDefault: 80},
	},
}
