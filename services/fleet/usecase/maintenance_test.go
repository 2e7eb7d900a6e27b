package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fleetflow/fleetflow/internal/pkg/models"
)

func TestLogMaintenance(t *testing.T) {
	uc, _ := newTestUC()
	ctx := context.Background()

	vehicle := mustCreateVehicle(t, uc, testVan("VAN-100"))

	t.Run("scheduled leaves vehicle alone", func(t *testing.T) {
		mlog, err := uc.LogMaintenance(ctx, models.MaintenanceEntry{
			VehicleID: vehicle.ID,
			Type:      "Brake Inspection",
			Cost:      650,
			Status:    models.MaintenanceStatusScheduled,
		})
		require.NoError(t, err)
		assert.Equal(t, models.MaintenanceStatusScheduled, mlog.Status)
		assert.Equal(t, testTime, mlog.Date)

		v, _ := uc.GetVehicle(ctx, vehicle.ID)
		assert.Equal(t, models.VehicleStatusAvailable, v.Status)
	})

	t.Run("in progress pulls vehicle into the shop", func(t *testing.T) {
		_, err := uc.LogMaintenance(ctx, models.MaintenanceEntry{
			VehicleID: vehicle.ID,
			Type:      "Engine Repair",
			Cost:      2800,
			Status:    models.MaintenanceStatusInProgress,
		})
		require.NoError(t, err)

		v, _ := uc.GetVehicle(ctx, vehicle.ID)
		assert.Equal(t, models.VehicleStatusInShop, v.Status)
	})

	t.Run("unknown vehicle", func(t *testing.T) {
		_, err := uc.LogMaintenance(ctx, models.MaintenanceEntry{
			VehicleID: "missing", Type: "Oil Change",
		})
		assert.True(t, models.IsNotFound(err))
	})
}

func TestLogMaintenanceRejectsVehicleOnTrip(t *testing.T) {
	uc, _ := newTestUC()
	ctx := context.Background()

	vehicle := mustCreateVehicle(t, uc, testVan("VAN-110"))
	driver := mustCreateDriver(t, uc, testDriver("shop"))
	trip, err := uc.CreateTrip(ctx, models.TripDraft{
		VehicleID: vehicle.ID, DriverID: driver.ID,
		Origin: "A", Destination: "B", CargoWeight: 10,
	})
	require.NoError(t, err)
	_, err = uc.DispatchTrip(ctx, trip.ID)
	require.NoError(t, err)

	_, err = uc.LogMaintenance(ctx, models.MaintenanceEntry{
		VehicleID: vehicle.ID,
		Type:      "Engine Repair",
		Status:    models.MaintenanceStatusInProgress,
	})
	require.Error(t, err)
	assert.True(t, models.IsValidation(err))

	// nothing was written, vehicle still on its trip
	logs, _ := uc.ListMaintenanceLogs(ctx)
	assert.Empty(t, logs)
	v, _ := uc.GetVehicle(ctx, vehicle.ID)
	assert.Equal(t, models.VehicleStatusOnTrip, v.Status)

	// a Scheduled entry is fine while the trip runs
	_, err = uc.LogMaintenance(ctx, models.MaintenanceEntry{
		VehicleID: vehicle.ID,
		Type:      "Scheduled Service",
		Status:    models.MaintenanceStatusScheduled,
	})
	require.NoError(t, err)
}

func TestUpdateMaintenanceStatus(t *testing.T) {
	uc, _ := newTestUC()
	ctx := context.Background()

	vehicle := mustCreateVehicle(t, uc, testVan("VAN-120"))
	mlog, err := uc.LogMaintenance(ctx, models.MaintenanceEntry{
		VehicleID: vehicle.ID,
		Type:      "Scheduled Service",
		Status:    models.MaintenanceStatusScheduled,
	})
	require.NoError(t, err)

	t.Run("to in progress cascades", func(t *testing.T) {
		updated, err := uc.UpdateMaintenanceStatus(ctx, mlog.ID, models.MaintenanceStatusInProgress)
		require.NoError(t, err)
		assert.Equal(t, models.MaintenanceStatusInProgress, updated.Status)

		v, _ := uc.GetVehicle(ctx, vehicle.ID)
		assert.Equal(t, models.VehicleStatusInShop, v.Status)
	})

	t.Run("to completed does not release the vehicle", func(t *testing.T) {
		_, err := uc.UpdateMaintenanceStatus(ctx, mlog.ID, models.MaintenanceStatusCompleted)
		require.NoError(t, err)

		// returning to service is an explicit vehicle edit
		v, _ := uc.GetVehicle(ctx, vehicle.ID)
		assert.Equal(t, models.VehicleStatusInShop, v.Status)
	})

	t.Run("unknown log", func(t *testing.T) {
		_, err := uc.UpdateMaintenanceStatus(ctx, "missing", models.MaintenanceStatusCompleted)
		assert.True(t, models.IsNotFound(err))
	})
}
