package repository

import (
	"github.com/fleetflow/fleetflow/internal/pkg/models"
)

// Tx gives a command staged access to every collection. Reads see staged
// writes (read-your-writes); nothing reaches the store until the command
// commits.
type Tx struct {
	Vehicles    *TxSet[models.Vehicle]
	Drivers     *TxSet[models.Driver]
	Trips       *TxSet[models.Trip]
	Maintenance *TxSet[models.MaintenanceLog]
	Fuel        *TxSet[models.FuelLog]

	events []models.FleetEvent
}

// Emit queues an event to be delivered to subscribers after commit
func (tx *Tx) Emit(t models.FleetEventType, entityID string, payload interface{}) {
	tx.events = append(tx.events, models.FleetEvent{
		Type:       t,
		EntityID:   entityID,
		Payload:    payload,
		OccurredAt: models.Now(),
	})
}

// CreateVehicle assigns a fresh id and stages the vehicle
func (tx *Tx) CreateVehicle(v models.Vehicle) models.Vehicle {
	v.ID = NewID()
	tx.Vehicles.Put(v.ID, v)
	return v
}

// CreateDriver assigns a fresh id and stages the driver
func (tx *Tx) CreateDriver(d models.Driver) models.Driver {
	d.ID = NewID()
	tx.Drivers.Put(d.ID, d)
	return d
}

// CreateTrip assigns a fresh id and stages the trip
func (tx *Tx) CreateTrip(t models.Trip) models.Trip {
	t.ID = NewID()
	tx.Trips.Put(t.ID, t)
	return t
}

// CreateMaintenanceLog assigns a fresh id and stages the log
func (tx *Tx) CreateMaintenanceLog(m models.MaintenanceLog) models.MaintenanceLog {
	m.ID = NewID()
	tx.Maintenance.Put(m.ID, m)
	return m
}

// CreateFuelLog assigns a fresh id and stages the log
func (tx *Tx) CreateFuelLog(f models.FuelLog) models.FuelLog {
	f.ID = NewID()
	tx.Fuel.Put(f.ID, f)
	return f
}

// TxSet stages writes against one collection
type TxSet[T any] struct {
	base    *Collection[T]
	staged  map[string]T
	order   []string
	mutable bool
}

func newTxSet[T any](base *Collection[T], mutable bool) *TxSet[T] {
	return &TxSet[T]{
		base:    base,
		staged:  make(map[string]T),
		mutable: mutable,
	}
}

// Get returns the staged version of a record if present, the committed one
// otherwise
func (s *TxSet[T]) Get(id string) (T, bool) {
	if v, ok := s.staged[id]; ok {
		return v, true
	}
	return s.base.Get(id)
}

// Put stages an insert or whole-record replacement
func (s *TxSet[T]) Put(id string, v T) {
	if !s.mutable {
		panic("repository: write staged in a read-only transaction")
	}
	if _, exists := s.staged[id]; !exists {
		s.order = append(s.order, id)
	}
	s.staged[id] = v
}

// List returns all records in insertion order, staged writes included
func (s *TxSet[T]) List() []T {
	out := make([]T, 0, s.base.Len())
	for _, id := range s.base.order {
		if v, ok := s.staged[id]; ok {
			out = append(out, v)
			continue
		}
		out = append(out, s.base.items[id])
	}
	for _, id := range s.order {
		if _, exists := s.base.items[id]; !exists {
			out = append(out, s.staged[id])
		}
	}
	return out
}

// Query returns the records matching pred, in insertion order
func (s *TxSet[T]) Query(pred func(T) bool) []T {
	var out []T
	for _, v := range s.List() {
		if pred(v) {
			out = append(out, v)
		}
	}
	return out
}

func (s *TxSet[T]) apply() {
	// order holds every staged id in first-write order; Put both inserts
	// new records and replaces existing ones.
	for _, id := range s.order {
		s.base.Put(id, s.staged[id])
	}
}
