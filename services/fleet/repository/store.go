package repository

import (
	"sync"

	"github.com/google/uuid"

	"github.com/fleetflow/fleetflow/internal/pkg/models"
)

// Store holds every entity collection behind a single writer lock. All
// mutation flows through Execute, which applies a command's writes as one
// atomic unit; readers use View and see a consistent snapshot. The store
// enforces no business invariants itself — that is the use cases' job.
type Store struct {
	mu          sync.RWMutex
	vehicles    *Collection[models.Vehicle]
	drivers     *Collection[models.Driver]
	trips       *Collection[models.Trip]
	maintenance *Collection[models.MaintenanceLog]
	fuel        *Collection[models.FuelLog]

	subMu       sync.RWMutex
	subscribers []func(models.FleetEvent)
}

// NewStore creates an empty store. Construct one per process (or per test)
// and pass it by reference into the use cases.
func NewStore() *Store {
	return &Store{
		vehicles:    NewCollection[models.Vehicle](),
		drivers:     NewCollection[models.Driver](),
		trips:       NewCollection[models.Trip](),
		maintenance: NewCollection[models.MaintenanceLog](),
		fuel:        NewCollection[models.FuelLog](),
	}
}

// NewID returns a fresh process-unique id
func NewID() string {
	return uuid.NewString()
}

// Subscribe registers a callback invoked once per event after the emitting
// command has committed. Callbacks run outside the store lock.
func (s *Store) Subscribe(fn func(models.FleetEvent)) {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}

// Execute runs fn as a command. Writes staged through the transaction are
// applied only when fn returns nil; on error nothing changes. Commands are
// serialized by the write lock, so at most one mutates at a time.
func (s *Store) Execute(fn func(tx *Tx) error) error {
	s.mu.Lock()
	tx := s.newTx(true)

	if err := fn(tx); err != nil {
		s.mu.Unlock()
		return err
	}

	tx.Vehicles.apply()
	tx.Drivers.apply()
	tx.Trips.apply()
	tx.Maintenance.apply()
	tx.Fuel.apply()
	events := tx.events
	s.mu.Unlock()

	s.notify(events)
	return nil
}

// View runs fn with read access to a consistent snapshot. Concurrent views
// may run in parallel; a view never observes a partially applied command.
func (s *Store) View(fn func(tx *Tx)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(s.newTx(false))
}

// Export returns the full entity set, for a persistence collaborator
func (s *Store) Export() models.FleetSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return models.FleetSnapshot{
		Vehicles:        s.vehicles.List(),
		Drivers:         s.drivers.List(),
		Trips:           s.trips.List(),
		MaintenanceLogs: s.maintenance.List(),
		FuelLogs:        s.fuel.List(),
		TakenAt:         models.Now(),
	}
}

// Import replaces the full entity set from a snapshot
func (s *Store) Import(snap models.FleetSnapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.vehicles = NewCollection[models.Vehicle]()
	for _, v := range snap.Vehicles {
		s.vehicles.Put(v.ID, v)
	}
	s.drivers = NewCollection[models.Driver]()
	for _, d := range snap.Drivers {
		s.drivers.Put(d.ID, d)
	}
	s.trips = NewCollection[models.Trip]()
	for _, t := range snap.Trips {
		s.trips.Put(t.ID, t)
	}
	s.maintenance = NewCollection[models.MaintenanceLog]()
	for _, m := range snap.MaintenanceLogs {
		s.maintenance.Put(m.ID, m)
	}
	s.fuel = NewCollection[models.FuelLog]()
	for _, f := range snap.FuelLogs {
		s.fuel.Put(f.ID, f)
	}
}

// Empty reports whether the store holds no entities
func (s *Store) Empty() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.vehicles.Len() == 0 && s.drivers.Len() == 0 && s.trips.Len() == 0 &&
		s.maintenance.Len() == 0 && s.fuel.Len() == 0
}

func (s *Store) notify(events []models.FleetEvent) {
	if len(events) == 0 {
		return
	}
	s.subMu.RLock()
	subscribers := s.subscribers
	s.subMu.RUnlock()
	for _, ev := range events {
		for _, fn := range subscribers {
			fn(ev)
		}
	}
}

func (s *Store) newTx(mutable bool) *Tx {
	return &Tx{
		Vehicles:    newTxSet(s.vehicles, mutable),
		Drivers:     newTxSet(s.drivers, mutable),
		Trips:       newTxSet(s.trips, mutable),
		Maintenance: newTxSet(s.maintenance, mutable),
		Fuel:        newTxSet(s.fuel, mutable),
	}
}
