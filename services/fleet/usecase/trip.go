package usecase

import (
	"context"
	"strings"

	"github.com/fleetflow/fleetflow/internal/pkg/logger"
	"github.com/fleetflow/fleetflow/internal/pkg/models"
	"github.com/fleetflow/fleetflow/internal/utils"
	"github.com/fleetflow/fleetflow/services/fleet/repository"
)

// CreateTrip admits a new trip in Draft status. Admission runs a fixed
// sequence of checks and reports the first failure:
//
//  1. the vehicle exists and is Available
//  2. the driver exists and is OnDuty or OffDuty
//  3. the driver's license has not expired
//  4. the driver is licensed for the vehicle's type
//  5. the cargo weight fits the vehicle's capacity
//
// Admission reserves nothing; the vehicle and driver stay free until the
// trip is dispatched.
func (uc *fleetUC) CreateTrip(ctx context.Context, draft models.TripDraft) (*models.Trip, error) {
	var created models.Trip
	err := uc.store.Execute(func(tx *repository.Tx) error {
		vehicle, ok := tx.Vehicles.Get(draft.VehicleID)
		if !ok {
			return models.NewNotFoundError("vehicle", draft.VehicleID)
		}
		if vehicle.Status != models.VehicleStatusAvailable {
			return models.NewValidationError("vehicle %s is %s, not Available", vehicle.LicensePlate, vehicle.Status)
		}

		driver, ok := tx.Drivers.Get(draft.DriverID)
		if !ok {
			return models.NewNotFoundError("driver", draft.DriverID)
		}
		if driver.Status != models.DriverStatusOnDuty && driver.Status != models.DriverStatusOffDuty {
			return models.NewValidationError("driver %s is %s and cannot take a trip", driver.Name, driver.Status)
		}

		if utils.IsLicenseExpired(driver.LicenseExpiry, uc.now()) {
			return models.NewValidationError("driver %s has an expired license", driver.Name)
		}

		if !driver.HasCategory(vehicle.Type) {
			return models.NewValidationError("driver %s is not licensed for %s vehicles", driver.Name, vehicle.Type)
		}

		if draft.CargoWeight < 0 {
			return models.NewValidationError("cargo weight cannot be negative")
		}
		if draft.CargoWeight > vehicle.MaxCapacity {
			return models.NewValidationError("cargo weight %.0f kg exceeds vehicle capacity %.0f kg",
				draft.CargoWeight, vehicle.MaxCapacity)
		}

		if strings.TrimSpace(draft.Origin) == "" || strings.TrimSpace(draft.Destination) == "" {
			return models.NewValidationError("origin and destination are required")
		}

		trip := models.Trip{
			VehicleID:           draft.VehicleID,
			DriverID:            draft.DriverID,
			Origin:              draft.Origin,
			Destination:         draft.Destination,
			OriginLocation:      draft.OriginLocation,
			DestinationLocation: draft.DestinationLocation,
			CargoWeight:         draft.CargoWeight,
			CargoDescription:    draft.CargoDescription,
			Status:              models.TripStatusDraft,
			CreatedAt:           uc.now(),
		}
		if draft.OriginLocation != nil {
			trip.OriginGeohash = utils.EncodeLocation(*draft.OriginLocation, utils.DefaultGeohashPrecision)
			if draft.DestinationLocation != nil {
				trip.EstimatedDistanceKm = utils.CalculateDistance(*draft.OriginLocation, *draft.DestinationLocation)
			}
		}

		created = tx.CreateTrip(trip)
		tx.Emit(models.EventTripCreated, created.ID, created)
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("trip created",
		logger.String("trip_id", created.ID),
		logger.String("vehicle_id", created.VehicleID),
		logger.String("driver_id", created.DriverID))
	return &created, nil
}

// DispatchTrip starts a Draft trip. It stamps the dispatch time, records
// the vehicle's odometer as the trip's starting reading, and moves both the
// vehicle and the driver to OnTrip in the same commit. The vehicle and
// driver must still be free at dispatch time; admission did not reserve
// them, and another trip may have claimed them since.
func (uc *fleetUC) DispatchTrip(ctx context.Context, tripID string) (*models.Trip, error) {
	var dispatched models.Trip
	err := uc.store.Execute(func(tx *repository.Tx) error {
		trip, ok := tx.Trips.Get(tripID)
		if !ok {
			return models.NewNotFoundError("trip", tripID)
		}
		if trip.Status != models.TripStatusDraft {
			return models.NewStateError(string(models.TripStatusDraft), string(trip.Status))
		}

		vehicle, ok := tx.Vehicles.Get(trip.VehicleID)
		if !ok {
			return models.NewNotFoundError("vehicle", trip.VehicleID)
		}
		if vehicle.Status != models.VehicleStatusAvailable {
			return models.NewStateError(string(models.VehicleStatusAvailable), string(vehicle.Status))
		}
		driver, ok := tx.Drivers.Get(trip.DriverID)
		if !ok {
			return models.NewNotFoundError("driver", trip.DriverID)
		}
		if driver.Status != models.DriverStatusOnDuty && driver.Status != models.DriverStatusOffDuty {
			return models.NewStateError(string(models.DriverStatusOnDuty), string(driver.Status))
		}

		now := uc.now()
		start := vehicle.Odometer
		trip.Status = models.TripStatusDispatched
		trip.DispatchedAt = &now
		trip.StartOdometer = &start
		tx.Trips.Put(trip.ID, trip)

		vehicle.Status = models.VehicleStatusOnTrip
		tx.Vehicles.Put(vehicle.ID, vehicle)

		driver.Status = models.DriverStatusOnTrip
		tx.Drivers.Put(driver.ID, driver)

		dispatched = trip
		tx.Emit(models.EventTripDispatched, trip.ID, trip)
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("trip dispatched", logger.String("trip_id", dispatched.ID))
	return &dispatched, nil
}

// CompleteTrip closes a Dispatched trip with its final odometer reading.
// The vehicle's odometer advances to the reading, the vehicle returns to
// Available, and the driver returns to OnDuty with one more completed trip.
func (uc *fleetUC) CompleteTrip(ctx context.Context, tripID string, endOdometer float64) (*models.Trip, error) {
	var completed models.Trip
	err := uc.store.Execute(func(tx *repository.Tx) error {
		trip, ok := tx.Trips.Get(tripID)
		if !ok {
			return models.NewNotFoundError("trip", tripID)
		}
		if trip.Status != models.TripStatusDispatched {
			return models.NewStateError(string(models.TripStatusDispatched), string(trip.Status))
		}
		if trip.StartOdometer != nil && endOdometer < *trip.StartOdometer {
			return models.NewValidationError("end odometer %.1f is below start odometer %.1f",
				endOdometer, *trip.StartOdometer)
		}

		now := uc.now()
		trip.Status = models.TripStatusCompleted
		trip.CompletedAt = &now
		trip.EndOdometer = &endOdometer
		tx.Trips.Put(trip.ID, trip)

		if vehicle, ok := tx.Vehicles.Get(trip.VehicleID); ok {
			vehicle.Status = models.VehicleStatusAvailable
			vehicle.Odometer = endOdometer
			tx.Vehicles.Put(vehicle.ID, vehicle)
		}
		if driver, ok := tx.Drivers.Get(trip.DriverID); ok {
			driver.Status = models.DriverStatusOnDuty
			driver.TripsCompleted++
			tx.Drivers.Put(driver.ID, driver)
		}

		completed = trip
		tx.Emit(models.EventTripCompleted, trip.ID, trip)
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("trip completed", logger.String("trip_id", completed.ID))
	return &completed, nil
}

// CancelTrip abandons a Draft or Dispatched trip. Cancelling a dispatched
// trip releases its vehicle and driver; a draft holds no resources, so
// nothing else changes.
func (uc *fleetUC) CancelTrip(ctx context.Context, tripID string) (*models.Trip, error) {
	var cancelled models.Trip
	err := uc.store.Execute(func(tx *repository.Tx) error {
		trip, ok := tx.Trips.Get(tripID)
		if !ok {
			return models.NewNotFoundError("trip", tripID)
		}
		if trip.Status != models.TripStatusDraft && trip.Status != models.TripStatusDispatched {
			return models.NewStateError("Draft or Dispatched", string(trip.Status))
		}

		wasDispatched := trip.Status == models.TripStatusDispatched
		trip.Status = models.TripStatusCancelled
		tx.Trips.Put(trip.ID, trip)

		if wasDispatched {
			if vehicle, ok := tx.Vehicles.Get(trip.VehicleID); ok {
				vehicle.Status = models.VehicleStatusAvailable
				tx.Vehicles.Put(vehicle.ID, vehicle)
			}
			if driver, ok := tx.Drivers.Get(trip.DriverID); ok {
				driver.Status = models.DriverStatusOnDuty
				tx.Drivers.Put(driver.ID, driver)
			}
		}

		cancelled = trip
		tx.Emit(models.EventTripCancelled, trip.ID, trip)
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("trip cancelled", logger.String("trip_id", cancelled.ID))
	return &cancelled, nil
}

// ListTrips returns all trips in creation order
func (uc *fleetUC) ListTrips(ctx context.Context) ([]models.Trip, error) {
	var out []models.Trip
	uc.store.View(func(tx *repository.Tx) {
		out = tx.Trips.List()
	})
	return out, nil
}

// GetTrip returns one trip by id
func (uc *fleetUC) GetTrip(ctx context.Context, id string) (*models.Trip, error) {
	var trip models.Trip
	var found bool
	uc.store.View(func(tx *repository.Tx) {
		trip, found = tx.Trips.Get(id)
	})
	if !found {
		return nil, models.NewNotFoundError("trip", id)
	}
	return &trip, nil
}
