package models

import (
	"time"
)

// VehicleType represents the class of a vehicle
type VehicleType string

const (
	VehicleTypeTruck VehicleType = "Truck"
	VehicleTypeVan   VehicleType = "Van"
	VehicleTypeBike  VehicleType = "Bike"
)

// VehicleStatus represents the operational status of a vehicle
type VehicleStatus string

const (
	VehicleStatusAvailable VehicleStatus = "Available"
	VehicleStatusOnTrip    VehicleStatus = "OnTrip"
	VehicleStatusInShop    VehicleStatus = "InShop"
	VehicleStatusRetired   VehicleStatus = "Retired"
)

// Vehicle represents a fleet vehicle
type Vehicle struct {
	ID              string        `json:"id" db:"id"`
	Name            string        `json:"name" db:"name"`
	LicensePlate    string        `json:"license_plate" db:"license_plate"`
	Type            VehicleType   `json:"type" db:"type"`
	MaxCapacity     float64       `json:"max_capacity" db:"max_capacity"` // in kg
	Odometer        float64       `json:"odometer" db:"odometer"`         // in km
	Status          VehicleStatus `json:"status" db:"status"`
	Region          string        `json:"region" db:"region"`
	LastServiceDate *time.Time    `json:"last_service_date,omitempty" db:"last_service_date"`
	AcquisitionCost float64       `json:"acquisition_cost" db:"acquisition_cost"`
	CreatedAt       time.Time     `json:"created_at" db:"created_at"`
}

// VehicleUpdateRequest carries a partial edit of a vehicle. Nil fields
// are left untouched.
type VehicleUpdateRequest struct {
	Name            *string        `json:"name,omitempty"`
	LicensePlate    *string        `json:"license_plate,omitempty"`
	Type            *VehicleType   `json:"type,omitempty"`
	MaxCapacity     *float64       `json:"max_capacity,omitempty"`
	Odometer        *float64       `json:"odometer,omitempty"`
	Status          *VehicleStatus `json:"status,omitempty"`
	Region          *string        `json:"region,omitempty"`
	LastServiceDate *time.Time     `json:"last_service_date,omitempty"`
	AcquisitionCost *float64       `json:"acquisition_cost,omitempty"`
}

// Valid reports whether the type is a member of the closed set
func (t VehicleType) Valid() bool {
	switch t {
	case VehicleTypeTruck, VehicleTypeVan, VehicleTypeBike:
		return true
	}
	return false
}

// Valid reports whether the status is a member of the closed set
func (s VehicleStatus) Valid() bool {
	switch s {
	case VehicleStatusAvailable, VehicleStatusOnTrip, VehicleStatusInShop, VehicleStatusRetired:
		return true
	}
	return false
}

// StatusMeta returns the display metadata for a vehicle status
func (s VehicleStatus) StatusMeta() StatusMeta {
	switch s {
	case VehicleStatusAvailable:
		return StatusMeta{Label: "Available", Tone: ToneSuccess}
	case VehicleStatusOnTrip:
		return StatusMeta{Label: "On Trip", Tone: ToneInfo}
	case VehicleStatusInShop:
		return StatusMeta{Label: "In Shop", Tone: ToneWarning}
	case VehicleStatusRetired:
		return StatusMeta{Label: "Retired", Tone: ToneMuted}
	}
	return StatusMeta{Label: "Unknown", Tone: ToneMuted}
}
