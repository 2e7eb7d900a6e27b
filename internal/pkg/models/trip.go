package models

import (
	"time"
)

// TripStatus represents the current status of a trip
type TripStatus string

const (
	TripStatusDraft      TripStatus = "Draft"
	TripStatusDispatched TripStatus = "Dispatched"
	TripStatusCompleted  TripStatus = "Completed"
	TripStatusCancelled  TripStatus = "Cancelled"
)

// Trip represents a cargo trip. Vehicle and driver references are fixed at
// creation and never reassigned.
type Trip struct {
	ID                  string     `json:"id" db:"id"`
	VehicleID           string     `json:"vehicle_id" db:"vehicle_id"`
	DriverID            string     `json:"driver_id" db:"driver_id"`
	Origin              string     `json:"origin" db:"origin"`
	Destination         string     `json:"destination" db:"destination"`
	OriginLocation      *Location  `json:"origin_location,omitempty"`
	DestinationLocation *Location  `json:"destination_location,omitempty"`
	OriginGeohash       string     `json:"origin_geohash,omitempty" db:"origin_geohash"`
	EstimatedDistanceKm float64    `json:"estimated_distance_km,omitempty" db:"estimated_distance_km"`
	CargoWeight         float64    `json:"cargo_weight" db:"cargo_weight"` // in kg
	CargoDescription    string     `json:"cargo_description" db:"cargo_description"`
	Status              TripStatus `json:"status" db:"status"`
	CreatedAt           time.Time  `json:"created_at" db:"created_at"`
	DispatchedAt        *time.Time `json:"dispatched_at,omitempty" db:"dispatched_at"`
	CompletedAt         *time.Time `json:"completed_at,omitempty" db:"completed_at"`
	StartOdometer       *float64   `json:"start_odometer,omitempty" db:"start_odometer"`
	EndOdometer         *float64   `json:"end_odometer,omitempty" db:"end_odometer"`
}

// TripDraft is the admission request for a new trip
type TripDraft struct {
	VehicleID           string    `json:"vehicle_id"`
	DriverID            string    `json:"driver_id"`
	Origin              string    `json:"origin"`
	Destination         string    `json:"destination"`
	OriginLocation      *Location `json:"origin_location,omitempty"`
	DestinationLocation *Location `json:"destination_location,omitempty"`
	CargoWeight         float64   `json:"cargo_weight"`
	CargoDescription    string    `json:"cargo_description"`
}

// TripCompleteRequest carries the closing odometer reading for a trip
type TripCompleteRequest struct {
	EndOdometer float64 `json:"end_odometer"`
}

// Terminal reports whether no further transition may leave this status
func (s TripStatus) Terminal() bool {
	return s == TripStatusCompleted || s == TripStatusCancelled
}

// StatusMeta returns the display metadata for a trip status
func (s TripStatus) StatusMeta() StatusMeta {
	switch s {
	case TripStatusDraft:
		return StatusMeta{Label: "Draft", Tone: ToneMuted}
	case TripStatusDispatched:
		return StatusMeta{Label: "Dispatched", Tone: ToneInfo}
	case TripStatusCompleted:
		return StatusMeta{Label: "Completed", Tone: ToneSuccess}
	case TripStatusCancelled:
		return StatusMeta{Label: "Cancelled", Tone: ToneDanger}
	}
	return StatusMeta{Label: "Unknown", Tone: ToneMuted}
}
