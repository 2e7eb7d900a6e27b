package models

import (
	"time"
)

// MaintenanceStatus represents the state of a maintenance event
type MaintenanceStatus string

const (
	MaintenanceStatusScheduled  MaintenanceStatus = "Scheduled"
	MaintenanceStatusInProgress MaintenanceStatus = "InProgress"
	MaintenanceStatusCompleted  MaintenanceStatus = "Completed"
)

// MaintenanceLog represents a maintenance event for a vehicle
type MaintenanceLog struct {
	ID          string            `json:"id" db:"id"`
	VehicleID   string            `json:"vehicle_id" db:"vehicle_id"`
	Type        string            `json:"type" db:"type"`
	Description string            `json:"description" db:"description"`
	Cost        float64           `json:"cost" db:"cost"`
	Date        time.Time         `json:"date" db:"date"`
	Status      MaintenanceStatus `json:"status" db:"status"`
}

// MaintenanceEntry is the request to record a maintenance event
type MaintenanceEntry struct {
	VehicleID   string            `json:"vehicle_id"`
	Type        string            `json:"type"`
	Description string            `json:"description"`
	Cost        float64           `json:"cost"`
	Status      MaintenanceStatus `json:"status"`
}

// MaintenanceStatusRequest carries a status change for an existing log
type MaintenanceStatusRequest struct {
	Status MaintenanceStatus `json:"status"`
}

// StatusMeta returns the display metadata for a maintenance status
func (s MaintenanceStatus) StatusMeta() StatusMeta {
	switch s {
	case MaintenanceStatusScheduled:
		return StatusMeta{Label: "Scheduled", Tone: ToneMuted}
	case MaintenanceStatusInProgress:
		return StatusMeta{Label: "In Progress", Tone: ToneWarning}
	case MaintenanceStatusCompleted:
		return StatusMeta{Label: "Completed", Tone: ToneSuccess}
	}
	return StatusMeta{Label: "Unknown", Tone: ToneMuted}
}

// Valid reports whether the status is a member of the closed set
func (s MaintenanceStatus) Valid() bool {
	switch s {
	case MaintenanceStatusScheduled, MaintenanceStatusInProgress, MaintenanceStatusCompleted:
		return true
	}
	return false
}
