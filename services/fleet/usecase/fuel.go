package usecase

import (
	"context"

	"github.com/fleetflow/fleetflow/internal/pkg/models"
	"github.com/fleetflow/fleetflow/services/fleet/repository"
)

// LogFuel records a refueling for a vehicle, optionally tied to a trip.
// Fuel logs carry cost data only and never change vehicle or trip state.
func (uc *fleetUC) LogFuel(ctx context.Context, entry models.FuelEntry) (*models.FuelLog, error) {
	var created models.FuelLog
	err := uc.store.Execute(func(tx *repository.Tx) error {
		if _, ok := tx.Vehicles.Get(entry.VehicleID); !ok {
			return models.NewNotFoundError("vehicle", entry.VehicleID)
		}
		if entry.TripID != "" {
			if _, ok := tx.Trips.Get(entry.TripID); !ok {
				return models.NewNotFoundError("trip", entry.TripID)
			}
		}
		if entry.Liters <= 0 {
			return models.NewValidationError("liters must be positive")
		}
		if entry.Cost < 0 {
			return models.NewValidationError("fuel cost cannot be negative")
		}

		created = tx.CreateFuelLog(models.FuelLog{
			VehicleID: entry.VehicleID,
			TripID:    entry.TripID,
			Liters:    entry.Liters,
			Cost:      entry.Cost,
			Date:      uc.now(),
		})
		tx.Emit(models.EventFuelLogged, created.ID, created)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// ListFuelLogs returns all fuel logs in creation order
func (uc *fleetUC) ListFuelLogs(ctx context.Context) ([]models.FuelLog, error) {
	var out []models.FuelLog
	uc.store.View(func(tx *repository.Tx) {
		out = tx.Fuel.List()
	})
	return out, nil
}
