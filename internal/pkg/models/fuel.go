package models

import (
	"time"
)

// FuelLog represents a refueling record, optionally tied to a trip
type FuelLog struct {
	ID        string    `json:"id" db:"id"`
	VehicleID string    `json:"vehicle_id" db:"vehicle_id"`
	TripID    string    `json:"trip_id,omitempty" db:"trip_id"`
	Liters    float64   `json:"liters" db:"liters"`
	Cost      float64   `json:"cost" db:"cost"`
	Date      time.Time `json:"date" db:"date"`
}

// FuelEntry is the request to record a refueling
type FuelEntry struct {
	VehicleID string  `json:"vehicle_id"`
	TripID    string  `json:"trip_id,omitempty"`
	Liters    float64 `json:"liters"`
	Cost      float64 `json:"cost"`
}
