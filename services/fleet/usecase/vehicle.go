package usecase

import (
	"context"
	"strings"

	"github.com/fleetflow/fleetflow/internal/pkg/logger"
	"github.com/fleetflow/fleetflow/internal/pkg/models"
	"github.com/fleetflow/fleetflow/services/fleet/repository"
)

// CreateVehicle registers a new vehicle. New vehicles always start
// Available; OnTrip can only be reached by dispatching a trip.
func (uc *fleetUC) CreateVehicle(ctx context.Context, vehicle models.Vehicle) (*models.Vehicle, error) {
	var created models.Vehicle
	err := uc.store.Execute(func(tx *repository.Tx) error {
		if strings.TrimSpace(vehicle.Name) == "" {
			return models.NewValidationError("vehicle name is required")
		}
		plate := strings.TrimSpace(vehicle.LicensePlate)
		if plate == "" {
			return models.NewValidationError("license plate is required")
		}
		if dup := tx.Vehicles.Query(func(v models.Vehicle) bool {
			return strings.EqualFold(v.LicensePlate, plate)
		}); len(dup) > 0 {
			return models.NewValidationError("license plate %s is already registered", plate)
		}
		if !vehicle.Type.Valid() {
			return models.NewValidationError("unknown vehicle type %q", vehicle.Type)
		}
		if vehicle.MaxCapacity <= 0 {
			return models.NewValidationError("max capacity must be positive")
		}
		if vehicle.Odometer < 0 {
			return models.NewValidationError("odometer cannot be negative")
		}
		if vehicle.AcquisitionCost <= 0 {
			return models.NewValidationError("acquisition cost must be positive")
		}
		if vehicle.Status == "" {
			vehicle.Status = models.VehicleStatusAvailable
		}
		if !vehicle.Status.Valid() {
			return models.NewValidationError("unknown vehicle status %q", vehicle.Status)
		}
		if vehicle.Status == models.VehicleStatusOnTrip {
			return models.NewValidationError("a vehicle cannot be created on trip")
		}

		vehicle.LicensePlate = plate
		vehicle.CreatedAt = uc.now()
		created = tx.CreateVehicle(vehicle)
		tx.Emit(models.EventVehicleCreated, created.ID, created)
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("vehicle created",
		logger.String("vehicle_id", created.ID),
		logger.String("license_plate", created.LicensePlate))
	return &created, nil
}

// UpdateVehicle applies a partial edit. Status edits through this path are
// plain overrides: they never touch trips, so OnTrip may not be entered
// here, and a vehicle bound to a dispatched trip may not leave OnTrip.
func (uc *fleetUC) UpdateVehicle(ctx context.Context, id string, req models.VehicleUpdateRequest) (*models.Vehicle, error) {
	var updated models.Vehicle
	err := uc.store.Execute(func(tx *repository.Tx) error {
		vehicle, ok := tx.Vehicles.Get(id)
		if !ok {
			return models.NewNotFoundError("vehicle", id)
		}

		if req.Name != nil {
			if strings.TrimSpace(*req.Name) == "" {
				return models.NewValidationError("vehicle name is required")
			}
			vehicle.Name = *req.Name
		}
		if req.LicensePlate != nil {
			plate := strings.TrimSpace(*req.LicensePlate)
			if plate == "" {
				return models.NewValidationError("license plate is required")
			}
			if dup := tx.Vehicles.Query(func(v models.Vehicle) bool {
				return v.ID != id && strings.EqualFold(v.LicensePlate, plate)
			}); len(dup) > 0 {
				return models.NewValidationError("license plate %s is already registered", plate)
			}
			vehicle.LicensePlate = plate
		}
		if req.Type != nil {
			if !req.Type.Valid() {
				return models.NewValidationError("unknown vehicle type %q", *req.Type)
			}
			vehicle.Type = *req.Type
		}
		if req.MaxCapacity != nil {
			if *req.MaxCapacity <= 0 {
				return models.NewValidationError("max capacity must be positive")
			}
			vehicle.MaxCapacity = *req.MaxCapacity
		}
		if req.Odometer != nil {
			if *req.Odometer < 0 {
				return models.NewValidationError("odometer cannot be negative")
			}
			vehicle.Odometer = *req.Odometer
		}
		if req.Status != nil {
			if !req.Status.Valid() {
				return models.NewValidationError("unknown vehicle status %q", *req.Status)
			}
			if *req.Status == models.VehicleStatusOnTrip && vehicle.Status != models.VehicleStatusOnTrip {
				return models.NewValidationError("vehicle status OnTrip is set by dispatching a trip")
			}
			if vehicle.Status == models.VehicleStatusOnTrip && *req.Status != models.VehicleStatusOnTrip {
				if active := tx.Trips.Query(func(t models.Trip) bool {
					return t.VehicleID == id && t.Status == models.TripStatusDispatched
				}); len(active) > 0 {
					return models.NewValidationError("vehicle is on dispatched trip %s", active[0].ID)
				}
			}
			vehicle.Status = *req.Status
		}
		if req.Region != nil {
			vehicle.Region = *req.Region
		}
		if req.LastServiceDate != nil {
			d := *req.LastServiceDate
			vehicle.LastServiceDate = &d
		}
		if req.AcquisitionCost != nil {
			if *req.AcquisitionCost <= 0 {
				return models.NewValidationError("acquisition cost must be positive")
			}
			vehicle.AcquisitionCost = *req.AcquisitionCost
		}

		tx.Vehicles.Put(id, vehicle)
		updated = vehicle
		tx.Emit(models.EventVehicleUpdated, id, updated)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// ListVehicles returns all vehicles in registration order
func (uc *fleetUC) ListVehicles(ctx context.Context) ([]models.Vehicle, error) {
	var out []models.Vehicle
	uc.store.View(func(tx *repository.Tx) {
		out = tx.Vehicles.List()
	})
	return out, nil
}

// GetVehicle returns one vehicle by id
func (uc *fleetUC) GetVehicle(ctx context.Context, id string) (*models.Vehicle, error) {
	var vehicle models.Vehicle
	var found bool
	uc.store.View(func(tx *repository.Tx) {
		vehicle, found = tx.Vehicles.Get(id)
	})
	if !found {
		return nil, models.NewNotFoundError("vehicle", id)
	}
	return &vehicle, nil
}
