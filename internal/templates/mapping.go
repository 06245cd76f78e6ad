package templates

import "github.com/evergrid/quoteflow/internal/contract"

// questionFieldMaps renames wizard question ids to the field names the
// bound calculator understands. Only renames are listed; unmapped answer
// keys pass through unchanged so calculators can still bridge legacy
// spellings themselves.
//
//nolint:gochecknoglobals // Package-level lookup table, initialized once.
var questionFieldMaps = map[string]map[string]string{
	"hotel": {
		"numberOfRooms":  "rooms",
		"hotelOccupancy": "occupancyPct",
		"serviceLevel":   "amenityLevel",
	},
	"car_wash": {
		"numberOfBays":    "bays",
		"numberOfTunnels": "tunnels",
	},
	"data_center": {
		"numberOfRacks": "rackCount",
		"rackDensity":   "kwPerRack",
	},
	"ev_charging": {
		"l2ChargerCount":   "level2Chargers",
		"dcFastChargers":   "dcfcChargers",
		"hpc350Chargers":   "hpcChargers",
		"ultraFastCount":   "hpcChargers",
		"numberOfChargers": "dcfcChargers",
	},
	"gas_station": {
		"numberOfPumps": "fuelPumps",
		"storeType":     "convenienceStore",
	},
	"hospital": {
		"numberOfBeds":   "beds",
		"operatingRooms": "surgicalSuites",
	},
	"grocery": {
		"storeSize":  "salesFloorSqFt",
		"caseLineup": "refrigerationCases",
	},
	"warehouse": {
		"warehouseSize":  "facilitySize",
		"loadingDocks":   "dockDoors",
		"forkliftFleet":  "forkliftChargers",
		"hasColdSection": "coldSection",
	},
	"manufacturing": {
		"machineLoad":   "processLoadKW",
		"airCompressor": "compressedAirHP",
		"shiftPattern":  "shifts",
	},
	"office": {
		"buildingSize": "facilitySize",
		"serverRoom":   "serverRoomKW",
	},
	"retail": {
		"storeSize": "salesFloorSqFt",
	},
	"restaurant": {
		"seatingCapacity": "seats",
		"kitchenStyle":    "kitchenType",
	},
	"school": {
		"studentEnrollment": "students",
		"swimmingPool":      "hasPool",
	},
	"cold_storage": {
		"warehouseSize": "facilitySize",
		"freezerShare":  "freezerSharePct",
	},
	"indoor_farm": {
		"canopySize": "canopySqFt",
		"lightType":  "lightingTech",
	},
	"casino": {
		"gamingFloorSize": "gamingFloorSqFt",
		"attachedRooms":   "hotelRooms",
	},
	"multifamily": {
		"numberOfUnits": "units",
		"evSpaces":      "evParkingStalls",
	},
	"laundromat": {
		"washerCount": "washers",
		"dryerCount":  "dryers",
	},
	"brewery": {
		"annualProduction": "annualBarrels",
		"hasCanningLine":   "canningLine",
	},
	"truck_stop": {
		"fuelLanes":    "dieselLanes",
		"truckParking": "parkingSpots",
	},
}

// ApplyMapping converts raw wizard answers into calculator inputs using
// the template's question-to-field map. Unmapped keys pass through; nil
// answers are dropped so omitted questions stay omitted.
func ApplyMapping(tpl Template, answers map[string]any) contract.Inputs {
	fieldMap := questionFieldMaps[tpl.Industry]
	out := make(contract.Inputs, len(answers))
	for key, v := range answers {
		if v == nil {
			continue
		}
		if field, ok := fieldMap[key]; ok {
			out[field] = v
			continue
		}
		out[key] = v
	}
	return out
}
