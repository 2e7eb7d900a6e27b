package usecase

import (
	"context"
	"strings"

	"github.com/fleetflow/fleetflow/internal/pkg/logger"
	"github.com/fleetflow/fleetflow/internal/pkg/models"
	"github.com/fleetflow/fleetflow/services/fleet/repository"
)

// LogMaintenance records a maintenance event for a vehicle. A log entered
// as InProgress pulls the vehicle into the shop in the same commit; a
// vehicle currently on a dispatched trip cannot be pulled in, so such a
// log is rejected outright.
func (uc *fleetUC) LogMaintenance(ctx context.Context, entry models.MaintenanceEntry) (*models.MaintenanceLog, error) {
	var created models.MaintenanceLog
	err := uc.store.Execute(func(tx *repository.Tx) error {
		vehicle, ok := tx.Vehicles.Get(entry.VehicleID)
		if !ok {
			return models.NewNotFoundError("vehicle", entry.VehicleID)
		}
		if strings.TrimSpace(entry.Type) == "" {
			return models.NewValidationError("maintenance type is required")
		}
		if entry.Cost < 0 {
			return models.NewValidationError("maintenance cost cannot be negative")
		}
		if entry.Status == "" {
			entry.Status = models.MaintenanceStatusScheduled
		}
		if !entry.Status.Valid() {
			return models.NewValidationError("unknown maintenance status %q", entry.Status)
		}
		if entry.Status == models.MaintenanceStatusInProgress && vehicle.Status == models.VehicleStatusOnTrip {
			return models.NewValidationError("vehicle %s is on a trip and cannot enter the shop", vehicle.LicensePlate)
		}

		created = tx.CreateMaintenanceLog(models.MaintenanceLog{
			VehicleID:   entry.VehicleID,
			Type:        entry.Type,
			Description: entry.Description,
			Cost:        entry.Cost,
			Date:        uc.now(),
			Status:      entry.Status,
		})

		if created.Status == models.MaintenanceStatusInProgress {
			vehicle.Status = models.VehicleStatusInShop
			tx.Vehicles.Put(vehicle.ID, vehicle)
		}

		tx.Emit(models.EventMaintenanceLogged, created.ID, created)
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("maintenance logged",
		logger.String("maintenance_id", created.ID),
		logger.String("vehicle_id", created.VehicleID),
		logger.String("status", string(created.Status)))
	return &created, nil
}

// UpdateMaintenanceStatus moves a maintenance log to a new status. Moving
// to InProgress pulls the vehicle into the shop under the same rule as
// LogMaintenance; moving to Scheduled or Completed never touches the
// vehicle, which returns to service through a vehicle status edit.
func (uc *fleetUC) UpdateMaintenanceStatus(ctx context.Context, id string, status models.MaintenanceStatus) (*models.MaintenanceLog, error) {
	var updated models.MaintenanceLog
	err := uc.store.Execute(func(tx *repository.Tx) error {
		mlog, ok := tx.Maintenance.Get(id)
		if !ok {
			return models.NewNotFoundError("maintenance log", id)
		}
		if !status.Valid() {
			return models.NewValidationError("unknown maintenance status %q", status)
		}

		if status == models.MaintenanceStatusInProgress && mlog.Status != models.MaintenanceStatusInProgress {
			vehicle, ok := tx.Vehicles.Get(mlog.VehicleID)
			if !ok {
				return models.NewNotFoundError("vehicle", mlog.VehicleID)
			}
			if vehicle.Status == models.VehicleStatusOnTrip {
				return models.NewValidationError("vehicle %s is on a trip and cannot enter the shop", vehicle.LicensePlate)
			}
			vehicle.Status = models.VehicleStatusInShop
			tx.Vehicles.Put(vehicle.ID, vehicle)
		}

		mlog.Status = status
		tx.Maintenance.Put(id, mlog)
		updated = mlog
		tx.Emit(models.EventMaintenanceUpdated, id, updated)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// ListMaintenanceLogs returns all maintenance logs in creation order
func (uc *fleetUC) ListMaintenanceLogs(ctx context.Context) ([]models.MaintenanceLog, error) {
	var out []models.MaintenanceLog
	uc.store.View(func(tx *repository.Tx) {
		out = tx.Maintenance.List()
	})
	return out, nil
}
