package usecase

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fleetflow/fleetflow/internal/pkg/models"
)

// TestInvariantsUnderRandomCommands drives the engine with a seeded stream
// of random commands, valid and invalid alike, and checks the cross-entity
// invariants after every one. Rejected commands must leave them intact too.
func TestInvariantsUnderRandomCommands(t *testing.T) {
	uc, store := newTestUC()
	ctx := context.Background()
	rng := rand.New(rand.NewSource(42))

	var vehicleIDs, driverIDs, tripIDs, maintIDs []string

	randOf := func(ids []string) string {
		if len(ids) == 0 || rng.Intn(10) == 0 {
			return "missing"
		}
		return ids[rng.Intn(len(ids))]
	}

	vehicleStatuses := []models.VehicleStatus{
		models.VehicleStatusAvailable, models.VehicleStatusInShop,
		models.VehicleStatusRetired, models.VehicleStatusOnTrip,
	}
	driverStatuses := []models.DriverStatus{
		models.DriverStatusOnDuty, models.DriverStatusOffDuty,
		models.DriverStatusSuspended, models.DriverStatusOnTrip,
	}
	maintStatuses := []models.MaintenanceStatus{
		models.MaintenanceStatusScheduled, models.MaintenanceStatusInProgress,
		models.MaintenanceStatusCompleted,
	}

	for i := 0; i < 500; i++ {
		switch rng.Intn(10) {
		case 0:
			v, err := uc.CreateVehicle(ctx, testVan(fmt.Sprintf("RND-%03d", i)))
			if err == nil {
				vehicleIDs = append(vehicleIDs, v.ID)
			}
		case 1:
			d, err := uc.CreateDriver(ctx, testDriver(fmt.Sprintf("rnd%03d", i)))
			if err == nil {
				driverIDs = append(driverIDs, d.ID)
			}
		case 2:
			trip, err := uc.CreateTrip(ctx, models.TripDraft{
				VehicleID:   randOf(vehicleIDs),
				DriverID:    randOf(driverIDs),
				Origin:      "A",
				Destination: "B",
				CargoWeight: float64(rng.Intn(2500)),
			})
			if err == nil {
				tripIDs = append(tripIDs, trip.ID)
			}
		case 3:
			uc.DispatchTrip(ctx, randOf(tripIDs)) //nolint:errcheck
		case 4:
			uc.CompleteTrip(ctx, randOf(tripIDs), 50000+float64(rng.Intn(1000))) //nolint:errcheck
		case 5:
			uc.CancelTrip(ctx, randOf(tripIDs)) //nolint:errcheck
		case 6:
			m, err := uc.LogMaintenance(ctx, models.MaintenanceEntry{
				VehicleID: randOf(vehicleIDs),
				Type:      "Inspection",
				Cost:      float64(rng.Intn(1000)),
				Status:    maintStatuses[rng.Intn(len(maintStatuses))],
			})
			if err == nil {
				maintIDs = append(maintIDs, m.ID)
			}
		case 7:
			uc.UpdateMaintenanceStatus(ctx, randOf(maintIDs), maintStatuses[rng.Intn(len(maintStatuses))]) //nolint:errcheck
		case 8:
			status := vehicleStatuses[rng.Intn(len(vehicleStatuses))]
			uc.UpdateVehicle(ctx, randOf(vehicleIDs), models.VehicleUpdateRequest{Status: &status}) //nolint:errcheck
		case 9:
			status := driverStatuses[rng.Intn(len(driverStatuses))]
			uc.UpdateDriver(ctx, randOf(driverIDs), models.DriverUpdateRequest{Status: &status}) //nolint:errcheck
		}

		assertInvariants(t, store.Export())
		if t.Failed() {
			t.Fatalf("invariants broken after command %d", i)
		}
	}
}

func assertInvariants(t *testing.T, snap models.FleetSnapshot) {
	t.Helper()

	dispatchedByVehicle := make(map[string]int)
	dispatchedByDriver := make(map[string]int)
	completedByDriver := make(map[string]int)
	for _, trip := range snap.Trips {
		switch trip.Status {
		case models.TripStatusDispatched:
			dispatchedByVehicle[trip.VehicleID]++
			dispatchedByDriver[trip.DriverID]++
		case models.TripStatusCompleted:
			completedByDriver[trip.DriverID]++
			require.NotNil(t, trip.StartOdometer)
			require.NotNil(t, trip.EndOdometer)
			require.GreaterOrEqual(t, *trip.EndOdometer, *trip.StartOdometer)
		}
	}

	plates := make(map[string]bool)
	for _, v := range snap.Vehicles {
		key := strings.ToLower(v.LicensePlate)
		require.False(t, plates[key], "duplicate plate %s", v.LicensePlate)
		plates[key] = true

		if v.Status == models.VehicleStatusOnTrip {
			require.Equal(t, 1, dispatchedByVehicle[v.ID],
				"vehicle %s on trip without exactly one dispatched trip", v.LicensePlate)
		} else {
			require.Zero(t, dispatchedByVehicle[v.ID],
				"vehicle %s has dispatched trips but status %s", v.LicensePlate, v.Status)
		}
	}

	for _, d := range snap.Drivers {
		if d.Status == models.DriverStatusOnTrip {
			require.Equal(t, 1, dispatchedByDriver[d.ID],
				"driver %s on trip without exactly one dispatched trip", d.Name)
		} else {
			require.Zero(t, dispatchedByDriver[d.ID],
				"driver %s has dispatched trips but status %s", d.Name, d.Status)
		}
		require.Equal(t, completedByDriver[d.ID], d.TripsCompleted,
			"driver %s trip counter out of sync", d.Name)
	}
}
