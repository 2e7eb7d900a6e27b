package models

import (
	"time"
)

// FleetEventType identifies the committed command that produced an event
type FleetEventType string

const (
	EventVehicleCreated     FleetEventType = "vehicle.created"
	EventVehicleUpdated     FleetEventType = "vehicle.updated"
	EventDriverCreated      FleetEventType = "driver.created"
	EventDriverUpdated      FleetEventType = "driver.updated"
	EventTripCreated        FleetEventType = "trip.created"
	EventTripDispatched     FleetEventType = "trip.dispatched"
	EventTripCompleted      FleetEventType = "trip.completed"
	EventTripCancelled      FleetEventType = "trip.cancelled"
	EventMaintenanceLogged  FleetEventType = "maintenance.logged"
	EventMaintenanceUpdated FleetEventType = "maintenance.updated"
	EventFuelLogged         FleetEventType = "fuel.logged"
)

// FleetEvent is emitted by the store once per committed command. Subscribers
// observe it strictly after the command's writes are visible.
type FleetEvent struct {
	Type       FleetEventType `json:"type"`
	EntityID   string         `json:"entity_id"`
	Payload    interface{}    `json:"payload,omitempty"`
	OccurredAt time.Time      `json:"occurred_at"`
}
