package repository

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fleetflow/fleetflow/internal/pkg/models"
)

func TestExecuteCommitsAtomically(t *testing.T) {
	store := NewStore()

	var vehicleID string
	err := store.Execute(func(tx *Tx) error {
		v := tx.CreateVehicle(models.Vehicle{Name: "Van A", LicensePlate: "A-1"})
		vehicleID = v.ID
		tx.CreateDriver(models.Driver{Name: "Driver A"})
		return nil
	})
	require.NoError(t, err)

	store.View(func(tx *Tx) {
		_, ok := tx.Vehicles.Get(vehicleID)
		assert.True(t, ok)
		assert.Len(t, tx.Drivers.List(), 1)
	})
}

func TestExecuteRollsBackOnError(t *testing.T) {
	store := NewStore()
	require.NoError(t, store.Execute(func(tx *Tx) error {
		tx.CreateVehicle(models.Vehicle{Name: "Van A", LicensePlate: "A-1"})
		return nil
	}))

	boom := errors.New("boom")
	err := store.Execute(func(tx *Tx) error {
		tx.CreateVehicle(models.Vehicle{Name: "Van B", LicensePlate: "B-1"})
		v := tx.Vehicles.List()
		// the command sees its own staged write before failing
		assert.Len(t, v, 2)
		tx.Emit(models.EventVehicleCreated, "never", nil)
		return boom
	})
	assert.ErrorIs(t, err, boom)

	store.View(func(tx *Tx) {
		assert.Len(t, tx.Vehicles.List(), 1)
	})
}

func TestListKeepsInsertionOrder(t *testing.T) {
	store := NewStore()
	names := []string{"first", "second", "third"}
	require.NoError(t, store.Execute(func(tx *Tx) error {
		for i, n := range names {
			tx.CreateVehicle(models.Vehicle{Name: n, LicensePlate: string(rune('A' + i))})
		}
		return nil
	}))

	// replacing a record must not move it
	require.NoError(t, store.Execute(func(tx *Tx) error {
		vehicles := tx.Vehicles.List()
		v := vehicles[0]
		v.Odometer = 999
		tx.Vehicles.Put(v.ID, v)
		return nil
	}))

	store.View(func(tx *Tx) {
		got := tx.Vehicles.List()
		require.Len(t, got, 3)
		for i, n := range names {
			assert.Equal(t, n, got[i].Name)
		}
		assert.Equal(t, 999.0, got[0].Odometer)
	})
}

func TestEventsDeliveredAfterCommit(t *testing.T) {
	store := NewStore()

	var seen []models.FleetEvent
	store.Subscribe(func(ev models.FleetEvent) {
		// the subscriber must observe the committed write
		store.View(func(tx *Tx) {
			_, ok := tx.Vehicles.Get(ev.EntityID)
			assert.True(t, ok)
		})
		seen = append(seen, ev)
	})

	require.NoError(t, store.Execute(func(tx *Tx) error {
		v := tx.CreateVehicle(models.Vehicle{Name: "Van A", LicensePlate: "A-1"})
		tx.Emit(models.EventVehicleCreated, v.ID, v)
		return nil
	}))

	require.Len(t, seen, 1)
	assert.Equal(t, models.EventVehicleCreated, seen[0].Type)
	assert.False(t, seen[0].OccurredAt.IsZero())
}

func TestNoEventsFromFailedCommand(t *testing.T) {
	store := NewStore()

	calls := 0
	store.Subscribe(func(models.FleetEvent) { calls++ })

	err := store.Execute(func(tx *Tx) error {
		v := tx.CreateVehicle(models.Vehicle{Name: "Van A", LicensePlate: "A-1"})
		tx.Emit(models.EventVehicleCreated, v.ID, v)
		return errors.New("rejected")
	})
	require.Error(t, err)
	assert.Zero(t, calls)
}

func TestSnapshotRoundTrip(t *testing.T) {
	store := NewStore()
	Seed(store)
	require.False(t, store.Empty())

	snap := store.Export()
	assert.False(t, snap.TakenAt.IsZero())

	restored := NewStore()
	assert.True(t, restored.Empty())
	restored.Import(snap)

	got := restored.Export()
	assert.Equal(t, snap.Vehicles, got.Vehicles)
	assert.Equal(t, snap.Drivers, got.Drivers)
	assert.Equal(t, snap.Trips, got.Trips)
	assert.Equal(t, snap.MaintenanceLogs, got.MaintenanceLogs)
	assert.Equal(t, snap.FuelLogs, got.FuelLogs)
}

func TestViewRejectsWrites(t *testing.T) {
	store := NewStore()
	store.View(func(tx *Tx) {
		assert.Panics(t, func() {
			tx.Vehicles.Put("x", models.Vehicle{})
		})
	})
}
