package models

import (
	"time"
)

// DriverStatus represents the duty status of a driver
type DriverStatus string

const (
	DriverStatusOnDuty    DriverStatus = "OnDuty"
	DriverStatusOffDuty   DriverStatus = "OffDuty"
	DriverStatusOnTrip    DriverStatus = "OnTrip"
	DriverStatusSuspended DriverStatus = "Suspended"
)

// Driver represents a fleet driver
type Driver struct {
	ID                string        `json:"id" db:"id"`
	Name              string        `json:"name" db:"name"`
	Email             string        `json:"email" db:"email"`
	Phone             string        `json:"phone" db:"phone"`
	LicenseNumber     string        `json:"license_number" db:"license_number"`
	LicenseExpiry     time.Time     `json:"license_expiry" db:"license_expiry"`
	LicenseCategories []VehicleType `json:"license_categories"`
	Status            DriverStatus  `json:"status" db:"status"`
	SafetyScore       int           `json:"safety_score" db:"safety_score"` // 0..100
	TripsCompleted    int           `json:"trips_completed" db:"trips_completed"`
	JoinDate          time.Time     `json:"join_date" db:"join_date"`
	CreatedAt         time.Time     `json:"created_at" db:"created_at"`
}

// DriverUpdateRequest carries a partial edit of a driver. Nil fields
// are left untouched.
type DriverUpdateRequest struct {
	Name              *string        `json:"name,omitempty"`
	Email             *string        `json:"email,omitempty"`
	Phone             *string        `json:"phone,omitempty"`
	LicenseNumber     *string        `json:"license_number,omitempty"`
	LicenseExpiry     *time.Time     `json:"license_expiry,omitempty"`
	LicenseCategories *[]VehicleType `json:"license_categories,omitempty"`
	Status            *DriverStatus  `json:"status,omitempty"`
	SafetyScore       *int           `json:"safety_score,omitempty"`
}

// HasCategory reports whether the driver is licensed for the vehicle type
func (d *Driver) HasCategory(t VehicleType) bool {
	for _, c := range d.LicenseCategories {
		if c == t {
			return true
		}
	}
	return false
}

// Valid reports whether the status is a member of the closed set
func (s DriverStatus) Valid() bool {
	switch s {
	case DriverStatusOnDuty, DriverStatusOffDuty, DriverStatusOnTrip, DriverStatusSuspended:
		return true
	}
	return false
}

// StatusMeta returns the display metadata for a driver status
func (s DriverStatus) StatusMeta() StatusMeta {
	switch s {
	case DriverStatusOnDuty:
		return StatusMeta{Label: "On Duty", Tone: ToneSuccess}
	case DriverStatusOffDuty:
		return StatusMeta{Label: "Off Duty", Tone: ToneMuted}
	case DriverStatusOnTrip:
		return StatusMeta{Label: "On Trip", Tone: ToneInfo}
	case DriverStatusSuspended:
		return StatusMeta{Label: "Suspended", Tone: ToneDanger}
	}
	return StatusMeta{Label: "Unknown", Tone: ToneMuted}
}
