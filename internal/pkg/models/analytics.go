package models

// MonthlyCost is one month of fuel and maintenance spend. Month is
// formatted "2006-01".
type MonthlyCost struct {
	Month           string  `json:"month"`
	FuelCost        float64 `json:"fuel_cost"`
	MaintenanceCost float64 `json:"maintenance_cost"`
}

// VehicleFinancial is the per-vehicle cost breakdown
type VehicleFinancial struct {
	VehicleID       string  `json:"vehicle_id"`
	Name            string  `json:"name"`
	LicensePlate    string  `json:"license_plate"`
	FuelCost        float64 `json:"fuel_cost"`
	MaintenanceCost float64 `json:"maintenance_cost"`
	TotalCost       float64 `json:"total_cost"`
	AcquisitionCost float64 `json:"acquisition_cost"`
}

// CostSummary aggregates operating cost across the fleet
type CostSummary struct {
	TotalFuelCost        float64            `json:"total_fuel_cost"`
	TotalMaintenanceCost float64            `json:"total_maintenance_cost"`
	TotalOperatingCost   float64            `json:"total_operating_cost"`
	TotalDistanceKm      float64            `json:"total_distance_km"`
	TotalLiters          float64            `json:"total_liters"`
	FuelEfficiencyKmPerL float64            `json:"fuel_efficiency_km_per_l"`
	Monthly              []MonthlyCost      `json:"monthly"`
	Vehicles             []VehicleFinancial `json:"vehicles"`
}

// DashboardSummary is the at-a-glance fleet overview
type DashboardSummary struct {
	TotalVehicles      int     `json:"total_vehicles"`
	AvailableVehicles  int     `json:"available_vehicles"`
	VehiclesOnTrip     int     `json:"vehicles_on_trip"`
	VehiclesInShop     int     `json:"vehicles_in_shop"`
	UtilizationPct     float64 `json:"utilization_pct"`
	TotalDrivers       int     `json:"total_drivers"`
	DriversOnTrip      int     `json:"drivers_on_trip"`
	PendingTrips       int     `json:"pending_trips"`
	DispatchedTrips    int     `json:"dispatched_trips"`
	CompletedTrips     int     `json:"completed_trips"`
	TotalOperatingCost float64 `json:"total_operating_cost"`
}
