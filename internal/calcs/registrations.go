package calcs

import "github.com/evergrid/quoteflow/internal/contract"

// universalInputs are the wizard questions every calculator honors
// regardless of industry.
//
//nolint:gochecknoglobals // Package-level lookup table, initialized once.
var universalInputs = []string{
	"facilitySize",    // sq ft
	"operatingHours",  // hours/day
	"peakLoad",        // MW from a utility bill; 0 = auto-calculate
	"gridConnection",  // reliable | unreliable | limited | off_grid | microgrid
	"gridCapacity",    // MW; 0 = unlimited
	"siteDemandCapKW", // interconnection demand cap
}

// Registration binds a calculator contract to its industry and generation
// version. Versions are semver strings compared by the registry when a
// flow asks for the latest generation.
type Registration struct {
	Industry string
	Version  string
	Contract contract.Contract
}

// Registrations returns every calculator this package ships, one entry per
// contract id. The slice is rebuilt per call; callers may reorder it.
func Registrations() []Registration {
	return []Registration{
		{Industry: "hotel", Version: "1.2.0", Contract: hotelContract()},
		{Industry: "hotel", Version: "0.9.0", Contract: hotelSimpleContract()},
		{Industry: "car_wash", Version: "1.0.0", Contract: carWashContract()},
		{Industry: "data_center", Version: "1.0.0", Contract: dataCenterContract()},
		{Industry: "ev_charging", Version: "2.0.0", Contract: evChargingContractV2()},
		{Industry: "ev_charging", Version: "1.0.0", Contract: evChargingContractV1()},
		{Industry: "gas_station", Version: "1.1.0", Contract: gasStationContract()},
		{Industry: "hospital", Version: "1.0.0", Contract: hospitalContract()},
		{Industry: "grocery", Version: "1.0.0", Contract: groceryContract()},
		{Industry: "warehouse", Version: "1.1.0", Contract: warehouseContract()},
		{Industry: "manufacturing", Version: "1.0.0", Contract: manufacturingContract()},
		{Industry: "office", Version: "1.0.0", Contract: officeContract()},
		{Industry: "retail", Version: "1.0.0", Contract: retailContract()},
		{Industry: "restaurant", Version: "1.0.0", Contract: restaurantContract()},
		{Industry: "school", Version: "1.0.0", Contract: schoolContract()},
		{Industry: "cold_storage", Version: "1.0.0", Contract: coldStorageContract()},
		{Industry: "indoor_farm", Version: "1.0.0", Contract: indoorFarmContract()},
		{Industry: "casino", Version: "1.0.0", Contract: casinoContract()},
		{Industry: "multifamily", Version: "1.0.0", Contract: multifamilyContract()},
		{Industry: "laundromat", Version: "1.0.0", Contract: laundromatContract()},
		{Industry: "brewery", Version: "1.0.0", Contract: breweryContract()},
		{Industry: "truck_stop", Version: "1.0.0", Contract: truckStopContract()},
		{Industry: "generic", Version: "1.0.0", Contract: genericContract()},
	}
}
