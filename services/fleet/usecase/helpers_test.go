package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/fleetflow/fleetflow/internal/pkg/models"
	"github.com/fleetflow/fleetflow/services/fleet/repository"
)

var testTime = time.Date(2026, 2, 20, 10, 0, 0, 0, time.UTC)

func newTestUC() (*fleetUC, *repository.Store) {
	store := repository.NewStore()
	uc := &fleetUC{
		cfg:   &models.Config{},
		store: store,
		now:   func() time.Time { return testTime },
	}
	return uc, store
}

func mustCreateVehicle(t *testing.T, uc *fleetUC, v models.Vehicle) *models.Vehicle {
	t.Helper()
	created, err := uc.CreateVehicle(context.Background(), v)
	require.NoError(t, err)
	return created
}

func mustCreateDriver(t *testing.T, uc *fleetUC, d models.Driver) *models.Driver {
	t.Helper()
	created, err := uc.CreateDriver(context.Background(), d)
	require.NoError(t, err)
	return created
}

func testVan(plate string) models.Vehicle {
	return models.Vehicle{
		Name:            "Test Van",
		LicensePlate:    plate,
		Type:            models.VehicleTypeVan,
		MaxCapacity:     1800,
		Odometer:        50000,
		Region:          "East",
		AcquisitionCost: 40000,
	}
}

func testDriver(name string) models.Driver {
	return models.Driver{
		Name:              name,
		Email:             name + "@fleet.io",
		LicenseNumber:     "DL-" + name,
		LicenseExpiry:     testTime.AddDate(1, 0, 0),
		LicenseCategories: []models.VehicleType{models.VehicleTypeVan, models.VehicleTypeTruck},
		Status:            models.DriverStatusOnDuty,
		SafetyScore:       90,
	}
}
