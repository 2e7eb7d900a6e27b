package usecase

import (
	"context"
	"sort"

	"github.com/fleetflow/fleetflow/internal/pkg/models"
	"github.com/fleetflow/fleetflow/services/fleet/repository"
)

const monthKeyFormat = "2006-01"

// VehicleTotalCost returns the lifetime operating cost of one vehicle,
// the sum of its fuel and maintenance spend.
func (uc *fleetUC) VehicleTotalCost(ctx context.Context, vehicleID string) (float64, error) {
	var total float64
	var found bool
	uc.store.View(func(tx *repository.Tx) {
		if _, ok := tx.Vehicles.Get(vehicleID); !ok {
			return
		}
		found = true
		for _, f := range tx.Fuel.Query(func(f models.FuelLog) bool { return f.VehicleID == vehicleID }) {
			total += f.Cost
		}
		for _, m := range tx.Maintenance.Query(func(m models.MaintenanceLog) bool { return m.VehicleID == vehicleID }) {
			total += m.Cost
		}
	})
	if !found {
		return 0, models.NewNotFoundError("vehicle", vehicleID)
	}
	return total, nil
}

// FleetCostSummary aggregates fuel and maintenance spend across the fleet:
// totals, a month-by-month series, and a per-vehicle breakdown. Retired
// vehicles keep contributing to the totals and the monthly series but are
// left out of the per-vehicle breakdown. Distance is the sum of odometer
// deltas over completed trips.
func (uc *fleetUC) FleetCostSummary(ctx context.Context) (*models.CostSummary, error) {
	summary := &models.CostSummary{}
	uc.store.View(func(tx *repository.Tx) {
		fuelByVehicle := make(map[string]float64)
		maintByVehicle := make(map[string]float64)
		monthly := make(map[string]*models.MonthlyCost)

		monthOf := func(key string) *models.MonthlyCost {
			m, ok := monthly[key]
			if !ok {
				m = &models.MonthlyCost{Month: key}
				monthly[key] = m
			}
			return m
		}

		for _, f := range tx.Fuel.List() {
			summary.TotalFuelCost += f.Cost
			summary.TotalLiters += f.Liters
			fuelByVehicle[f.VehicleID] += f.Cost
			monthOf(f.Date.Format(monthKeyFormat)).FuelCost += f.Cost
		}
		for _, m := range tx.Maintenance.List() {
			summary.TotalMaintenanceCost += m.Cost
			maintByVehicle[m.VehicleID] += m.Cost
			monthOf(m.Date.Format(monthKeyFormat)).MaintenanceCost += m.Cost
		}
		for _, t := range tx.Trips.List() {
			if t.Status == models.TripStatusCompleted && t.StartOdometer != nil && t.EndOdometer != nil {
				summary.TotalDistanceKm += *t.EndOdometer - *t.StartOdometer
			}
		}

		summary.TotalOperatingCost = summary.TotalFuelCost + summary.TotalMaintenanceCost
		if summary.TotalLiters > 0 {
			summary.FuelEfficiencyKmPerL = summary.TotalDistanceKm / summary.TotalLiters
		}

		summary.Monthly = make([]models.MonthlyCost, 0, len(monthly))
		for _, m := range monthly {
			summary.Monthly = append(summary.Monthly, *m)
		}
		sort.Slice(summary.Monthly, func(i, j int) bool {
			return summary.Monthly[i].Month < summary.Monthly[j].Month
		})

		for _, v := range tx.Vehicles.List() {
			if v.Status == models.VehicleStatusRetired {
				continue
			}
			fuel := fuelByVehicle[v.ID]
			maint := maintByVehicle[v.ID]
			summary.Vehicles = append(summary.Vehicles, models.VehicleFinancial{
				VehicleID:       v.ID,
				Name:            v.Name,
				LicensePlate:    v.LicensePlate,
				FuelCost:        fuel,
				MaintenanceCost: maint,
				TotalCost:       fuel + maint,
				AcquisitionCost: v.AcquisitionCost,
			})
		}
	})
	return summary, nil
}

// DashboardSummary returns the at-a-glance fleet overview. Utilization is
// the share of non-retired vehicles currently on a trip.
func (uc *fleetUC) DashboardSummary(ctx context.Context) (*models.DashboardSummary, error) {
	summary := &models.DashboardSummary{}
	uc.store.View(func(tx *repository.Tx) {
		active := 0
		for _, v := range tx.Vehicles.List() {
			summary.TotalVehicles++
			switch v.Status {
			case models.VehicleStatusAvailable:
				summary.AvailableVehicles++
				active++
			case models.VehicleStatusOnTrip:
				summary.VehiclesOnTrip++
				active++
			case models.VehicleStatusInShop:
				summary.VehiclesInShop++
				active++
			}
		}
		if active > 0 {
			summary.UtilizationPct = float64(summary.VehiclesOnTrip) / float64(active) * 100
		}

		for _, d := range tx.Drivers.List() {
			summary.TotalDrivers++
			if d.Status == models.DriverStatusOnTrip {
				summary.DriversOnTrip++
			}
		}

		for _, t := range tx.Trips.List() {
			switch t.Status {
			case models.TripStatusDraft:
				summary.PendingTrips++
			case models.TripStatusDispatched:
				summary.DispatchedTrips++
			case models.TripStatusCompleted:
				summary.CompletedTrips++
			}
		}

		for _, f := range tx.Fuel.List() {
			summary.TotalOperatingCost += f.Cost
		}
		for _, m := range tx.Maintenance.List() {
			summary.TotalOperatingCost += m.Cost
		}
	})
	return summary, nil
}
