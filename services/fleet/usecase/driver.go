package usecase

import (
	"context"
	"strings"

	"github.com/fleetflow/fleetflow/internal/pkg/logger"
	"github.com/fleetflow/fleetflow/internal/pkg/models"
	"github.com/fleetflow/fleetflow/services/fleet/repository"
)

// CreateDriver registers a new driver. New drivers may not start OnTrip;
// that status is reached only by dispatching a trip.
func (uc *fleetUC) CreateDriver(ctx context.Context, driver models.Driver) (*models.Driver, error) {
	var created models.Driver
	err := uc.store.Execute(func(tx *repository.Tx) error {
		if strings.TrimSpace(driver.Name) == "" {
			return models.NewValidationError("driver name is required")
		}
		if strings.TrimSpace(driver.LicenseNumber) == "" {
			return models.NewValidationError("license number is required")
		}
		if driver.LicenseExpiry.IsZero() {
			return models.NewValidationError("license expiry is required")
		}
		for _, c := range driver.LicenseCategories {
			if !c.Valid() {
				return models.NewValidationError("unknown license category %q", c)
			}
		}
		if driver.SafetyScore < 0 || driver.SafetyScore > 100 {
			return models.NewValidationError("safety score must be between 0 and 100")
		}
		if driver.TripsCompleted < 0 {
			return models.NewValidationError("trips completed cannot be negative")
		}
		if driver.Status == "" {
			driver.Status = models.DriverStatusOffDuty
		}
		if !driver.Status.Valid() {
			return models.NewValidationError("unknown driver status %q", driver.Status)
		}
		if driver.Status == models.DriverStatusOnTrip {
			return models.NewValidationError("a driver cannot be created on trip")
		}

		driver.CreatedAt = uc.now()
		if driver.JoinDate.IsZero() {
			driver.JoinDate = driver.CreatedAt
		}
		created = tx.CreateDriver(driver)
		tx.Emit(models.EventDriverCreated, created.ID, created)
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("driver created",
		logger.String("driver_id", created.ID),
		logger.String("name", created.Name))
	return &created, nil
}

// UpdateDriver applies a partial edit. As with vehicles, status edits here
// are plain overrides: OnTrip may not be entered, and a driver bound to a
// dispatched trip may not leave it.
func (uc *fleetUC) UpdateDriver(ctx context.Context, id string, req models.DriverUpdateRequest) (*models.Driver, error) {
	var updated models.Driver
	err := uc.store.Execute(func(tx *repository.Tx) error {
		driver, ok := tx.Drivers.Get(id)
		if !ok {
			return models.NewNotFoundError("driver", id)
		}

		if req.Name != nil {
			if strings.TrimSpace(*req.Name) == "" {
				return models.NewValidationError("driver name is required")
			}
			driver.Name = *req.Name
		}
		if req.Email != nil {
			driver.Email = *req.Email
		}
		if req.Phone != nil {
			driver.Phone = *req.Phone
		}
		if req.LicenseNumber != nil {
			if strings.TrimSpace(*req.LicenseNumber) == "" {
				return models.NewValidationError("license number is required")
			}
			driver.LicenseNumber = *req.LicenseNumber
		}
		if req.LicenseExpiry != nil {
			driver.LicenseExpiry = *req.LicenseExpiry
		}
		if req.LicenseCategories != nil {
			for _, c := range *req.LicenseCategories {
				if !c.Valid() {
					return models.NewValidationError("unknown license category %q", c)
				}
			}
			driver.LicenseCategories = *req.LicenseCategories
		}
		if req.Status != nil {
			if !req.Status.Valid() {
				return models.NewValidationError("unknown driver status %q", *req.Status)
			}
			if *req.Status == models.DriverStatusOnTrip && driver.Status != models.DriverStatusOnTrip {
				return models.NewValidationError("driver status OnTrip is set by dispatching a trip")
			}
			if driver.Status == models.DriverStatusOnTrip && *req.Status != models.DriverStatusOnTrip {
				if active := tx.Trips.Query(func(t models.Trip) bool {
					return t.DriverID == id && t.Status == models.TripStatusDispatched
				}); len(active) > 0 {
					return models.NewValidationError("driver is on dispatched trip %s", active[0].ID)
				}
			}
			driver.Status = *req.Status
		}
		if req.SafetyScore != nil {
			if *req.SafetyScore < 0 || *req.SafetyScore > 100 {
				return models.NewValidationError("safety score must be between 0 and 100")
			}
			driver.SafetyScore = *req.SafetyScore
		}

		tx.Drivers.Put(id, driver)
		updated = driver
		tx.Emit(models.EventDriverUpdated, id, updated)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// ListDrivers returns all drivers in registration order
func (uc *fleetUC) ListDrivers(ctx context.Context) ([]models.Driver, error) {
	var out []models.Driver
	uc.store.View(func(tx *repository.Tx) {
		out = tx.Drivers.List()
	})
	return out, nil
}

// GetDriver returns one driver by id
func (uc *fleetUC) GetDriver(ctx context.Context, id string) (*models.Driver, error) {
	var driver models.Driver
	var found bool
	uc.store.View(func(tx *repository.Tx) {
		driver, found = tx.Drivers.Get(id)
	})
	if !found {
		return nil, models.NewNotFoundError("driver", id)
	}
	return &driver, nil
}
