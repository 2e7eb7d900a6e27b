package models

import (
	"time"
)

// FleetSnapshot is the full entity set exchanged with a persistence
// collaborator. Slice order is the store's insertion order.
type FleetSnapshot struct {
	Vehicles        []Vehicle        `json:"vehicles"`
	Drivers         []Driver         `json:"drivers"`
	Trips           []Trip           `json:"trips"`
	MaintenanceLogs []MaintenanceLog `json:"maintenance_logs"`
	FuelLogs        []FuelLog        `json:"fuel_logs"`
	TakenAt         time.Time        `json:"taken_at"`
}

// Empty reports whether the snapshot holds no entities at all
func (s *FleetSnapshot) Empty() bool {
	return len(s.Vehicles) == 0 && len(s.Drivers) == 0 && len(s.Trips) == 0 &&
		len(s.MaintenanceLogs) == 0 && len(s.FuelLogs) == 0
}
