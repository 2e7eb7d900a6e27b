package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fleetflow/fleetflow/internal/pkg/models"
)

func TestTripRoundTrip(t *testing.T) {
	uc, _ := newTestUC()
	ctx := context.Background()

	vehicle := mustCreateVehicle(t, uc, testVan("VAN-001"))
	driver := mustCreateDriver(t, uc, testDriver("chen"))

	trip, err := uc.CreateTrip(ctx, models.TripDraft{
		VehicleID:        vehicle.ID,
		DriverID:         driver.ID,
		Origin:           "Warehouse A",
		Destination:      "Store 12",
		CargoWeight:      1500,
		CargoDescription: "Pallets",
	})
	require.NoError(t, err)
	assert.Equal(t, models.TripStatusDraft, trip.Status)
	assert.Nil(t, trip.DispatchedAt)
	assert.Nil(t, trip.StartOdometer)

	// admission reserves nothing
	v, err := uc.GetVehicle(ctx, vehicle.ID)
	require.NoError(t, err)
	assert.Equal(t, models.VehicleStatusAvailable, v.Status)

	dispatched, err := uc.DispatchTrip(ctx, trip.ID)
	require.NoError(t, err)
	assert.Equal(t, models.TripStatusDispatched, dispatched.Status)
	require.NotNil(t, dispatched.StartOdometer)
	assert.Equal(t, 50000.0, *dispatched.StartOdometer)
	assert.Equal(t, testTime, *dispatched.DispatchedAt)

	v, _ = uc.GetVehicle(ctx, vehicle.ID)
	assert.Equal(t, models.VehicleStatusOnTrip, v.Status)
	d, _ := uc.GetDriver(ctx, driver.ID)
	assert.Equal(t, models.DriverStatusOnTrip, d.Status)

	completed, err := uc.CompleteTrip(ctx, trip.ID, 50250)
	require.NoError(t, err)
	assert.Equal(t, models.TripStatusCompleted, completed.Status)
	require.NotNil(t, completed.EndOdometer)
	assert.Equal(t, 50250.0, *completed.EndOdometer)

	v, _ = uc.GetVehicle(ctx, vehicle.ID)
	assert.Equal(t, models.VehicleStatusAvailable, v.Status)
	assert.Equal(t, 50250.0, v.Odometer)
	d, _ = uc.GetDriver(ctx, driver.ID)
	assert.Equal(t, models.DriverStatusOnDuty, d.Status)
	assert.Equal(t, 1, d.TripsCompleted)
}

func TestCreateTripAdmissionChecks(t *testing.T) {
	uc, _ := newTestUC()
	ctx := context.Background()

	vehicle := mustCreateVehicle(t, uc, testVan("VAN-010"))
	driver := mustCreateDriver(t, uc, testDriver("mercer"))

	draft := func() models.TripDraft {
		return models.TripDraft{
			VehicleID:   vehicle.ID,
			DriverID:    driver.ID,
			Origin:      "A",
			Destination: "B",
			CargoWeight: 100,
		}
	}

	t.Run("unknown vehicle", func(t *testing.T) {
		d := draft()
		d.VehicleID = "missing"
		_, err := uc.CreateTrip(ctx, d)
		assert.True(t, models.IsNotFound(err))
	})

	t.Run("unknown driver", func(t *testing.T) {
		d := draft()
		d.DriverID = "missing"
		_, err := uc.CreateTrip(ctx, d)
		assert.True(t, models.IsNotFound(err))
	})

	t.Run("vehicle not available", func(t *testing.T) {
		shop := mustCreateVehicle(t, uc, func() models.Vehicle {
			v := testVan("VAN-011")
			v.Status = models.VehicleStatusInShop
			return v
		}())
		d := draft()
		d.VehicleID = shop.ID
		_, err := uc.CreateTrip(ctx, d)
		assert.True(t, models.IsValidation(err))
	})

	t.Run("driver suspended", func(t *testing.T) {
		susp := mustCreateDriver(t, uc, func() models.Driver {
			dr := testDriver("vasquez")
			dr.Status = models.DriverStatusSuspended
			return dr
		}())
		d := draft()
		d.DriverID = susp.ID
		_, err := uc.CreateTrip(ctx, d)
		assert.True(t, models.IsValidation(err))
	})

	t.Run("expired license", func(t *testing.T) {
		expired := mustCreateDriver(t, uc, func() models.Driver {
			dr := testDriver("patel")
			dr.LicenseExpiry = testTime.AddDate(0, -1, 0)
			return dr
		}())
		d := draft()
		d.DriverID = expired.ID
		_, err := uc.CreateTrip(ctx, d)
		require.Error(t, err)
		assert.True(t, models.IsValidation(err))
		assert.Contains(t, err.Error(), "expired license")
	})

	t.Run("missing license category", func(t *testing.T) {
		bikeOnly := mustCreateDriver(t, uc, func() models.Driver {
			dr := testDriver("nakamura")
			dr.LicenseCategories = []models.VehicleType{models.VehicleTypeBike}
			return dr
		}())
		d := draft()
		d.DriverID = bikeOnly.ID
		_, err := uc.CreateTrip(ctx, d)
		assert.True(t, models.IsValidation(err))
	})

	t.Run("weight at capacity is accepted", func(t *testing.T) {
		d := draft()
		d.CargoWeight = vehicle.MaxCapacity
		trip, err := uc.CreateTrip(ctx, d)
		require.NoError(t, err)
		assert.Equal(t, models.TripStatusDraft, trip.Status)
	})

	t.Run("weight over capacity is rejected", func(t *testing.T) {
		d := draft()
		d.CargoWeight = vehicle.MaxCapacity + 1
		_, err := uc.CreateTrip(ctx, d)
		require.Error(t, err)
		assert.True(t, models.IsValidation(err))
		assert.Contains(t, err.Error(), "exceeds vehicle capacity")
	})
}

func TestCreateTripGeoEnrichment(t *testing.T) {
	uc, _ := newTestUC()
	ctx := context.Background()

	vehicle := mustCreateVehicle(t, uc, testVan("VAN-020"))
	driver := mustCreateDriver(t, uc, testDriver("geo"))

	trip, err := uc.CreateTrip(ctx, models.TripDraft{
		VehicleID:           vehicle.ID,
		DriverID:            driver.ID,
		Origin:              "Chicago",
		Destination:         "Detroit",
		OriginLocation:      &models.Location{Latitude: 41.8781, Longitude: -87.6298},
		DestinationLocation: &models.Location{Latitude: 42.3314, Longitude: -83.0458},
		CargoWeight:         500,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, trip.OriginGeohash)
	assert.InDelta(t, 382, trip.EstimatedDistanceKm, 5)
}

func TestDispatchRequiresDraft(t *testing.T) {
	uc, _ := newTestUC()
	ctx := context.Background()

	vehicle := mustCreateVehicle(t, uc, testVan("VAN-030"))
	driver := mustCreateDriver(t, uc, testDriver("johnson"))

	trip, err := uc.CreateTrip(ctx, models.TripDraft{
		VehicleID: vehicle.ID, DriverID: driver.ID,
		Origin: "A", Destination: "B", CargoWeight: 10,
	})
	require.NoError(t, err)

	_, err = uc.DispatchTrip(ctx, trip.ID)
	require.NoError(t, err)

	before := uc.store.Export()
	_, err = uc.DispatchTrip(ctx, trip.ID)
	require.Error(t, err)
	assert.True(t, models.IsStateError(err))

	// the failed dispatch must not have changed anything
	after := uc.store.Export()
	assert.Equal(t, before.Vehicles, after.Vehicles)
	assert.Equal(t, before.Drivers, after.Drivers)
	assert.Equal(t, before.Trips, after.Trips)
}

func TestDispatchGuardsBusyVehicle(t *testing.T) {
	uc, _ := newTestUC()
	ctx := context.Background()

	vehicle := mustCreateVehicle(t, uc, testVan("VAN-040"))
	d1 := mustCreateDriver(t, uc, testDriver("first"))
	d2 := mustCreateDriver(t, uc, testDriver("second"))

	// two drafts admitted against the same vehicle
	t1, err := uc.CreateTrip(ctx, models.TripDraft{
		VehicleID: vehicle.ID, DriverID: d1.ID, Origin: "A", Destination: "B", CargoWeight: 10,
	})
	require.NoError(t, err)
	t2, err := uc.CreateTrip(ctx, models.TripDraft{
		VehicleID: vehicle.ID, DriverID: d2.ID, Origin: "A", Destination: "C", CargoWeight: 10,
	})
	require.NoError(t, err)

	_, err = uc.DispatchTrip(ctx, t1.ID)
	require.NoError(t, err)

	// the second draft loses the race at dispatch time
	_, err = uc.DispatchTrip(ctx, t2.ID)
	require.Error(t, err)
	assert.True(t, models.IsStateError(err))
}

func TestCompleteTripOdometerGuard(t *testing.T) {
	uc, _ := newTestUC()
	ctx := context.Background()

	vehicle := mustCreateVehicle(t, uc, testVan("VAN-050"))
	driver := mustCreateDriver(t, uc, testDriver("odo"))

	trip, err := uc.CreateTrip(ctx, models.TripDraft{
		VehicleID: vehicle.ID, DriverID: driver.ID,
		Origin: "A", Destination: "B", CargoWeight: 10,
	})
	require.NoError(t, err)
	_, err = uc.DispatchTrip(ctx, trip.ID)
	require.NoError(t, err)

	_, err = uc.CompleteTrip(ctx, trip.ID, 49000)
	require.Error(t, err)
	assert.True(t, models.IsValidation(err))

	// still dispatched after the rejected completion
	got, err := uc.GetTrip(ctx, trip.ID)
	require.NoError(t, err)
	assert.Equal(t, models.TripStatusDispatched, got.Status)

	// equal reading closes with zero distance
	completed, err := uc.CompleteTrip(ctx, trip.ID, 50000)
	require.NoError(t, err)
	assert.Equal(t, models.TripStatusCompleted, completed.Status)
}

func TestCancelTrip(t *testing.T) {
	uc, _ := newTestUC()
	ctx := context.Background()

	vehicle := mustCreateVehicle(t, uc, testVan("VAN-060"))
	driver := mustCreateDriver(t, uc, testDriver("cancel"))

	t.Run("draft cancels without side effects", func(t *testing.T) {
		trip, err := uc.CreateTrip(ctx, models.TripDraft{
			VehicleID: vehicle.ID, DriverID: driver.ID,
			Origin: "A", Destination: "B", CargoWeight: 10,
		})
		require.NoError(t, err)

		cancelled, err := uc.CancelTrip(ctx, trip.ID)
		require.NoError(t, err)
		assert.Equal(t, models.TripStatusCancelled, cancelled.Status)

		v, _ := uc.GetVehicle(ctx, vehicle.ID)
		assert.Equal(t, models.VehicleStatusAvailable, v.Status)
	})

	t.Run("dispatched cancel releases vehicle and driver", func(t *testing.T) {
		trip, err := uc.CreateTrip(ctx, models.TripDraft{
			VehicleID: vehicle.ID, DriverID: driver.ID,
			Origin: "A", Destination: "B", CargoWeight: 10,
		})
		require.NoError(t, err)
		_, err = uc.DispatchTrip(ctx, trip.ID)
		require.NoError(t, err)

		_, err = uc.CancelTrip(ctx, trip.ID)
		require.NoError(t, err)

		v, _ := uc.GetVehicle(ctx, vehicle.ID)
		assert.Equal(t, models.VehicleStatusAvailable, v.Status)
		d, _ := uc.GetDriver(ctx, driver.ID)
		assert.Equal(t, models.DriverStatusOnDuty, d.Status)
		// a cancelled dispatched trip does not count as completed
		assert.Equal(t, 0, d.TripsCompleted)
	})

	t.Run("terminal trips cannot be cancelled", func(t *testing.T) {
		trip, err := uc.CreateTrip(ctx, models.TripDraft{
			VehicleID: vehicle.ID, DriverID: driver.ID,
			Origin: "A", Destination: "B", CargoWeight: 10,
		})
		require.NoError(t, err)
		_, err = uc.CancelTrip(ctx, trip.ID)
		require.NoError(t, err)

		_, err = uc.CancelTrip(ctx, trip.ID)
		require.Error(t, err)
		assert.True(t, models.IsStateError(err))
	})
}
