package fleet

import (
	"context"

	"github.com/fleetflow/fleetflow/internal/pkg/models"
)

// FleetUC defines the command/query surface of the fleet engine.
// Every command is atomic across the records it touches.
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/fleetflow/fleetflow/services/fleet FleetUC
type FleetUC interface {
	CreateVehicle(ctx context.Context, vehicle models.Vehicle) (*models.Vehicle, error)
	UpdateVehicle(ctx context.Context, id string, req models.VehicleUpdateRequest) (*models.Vehicle, error)
	CreateDriver(ctx context.Context, driver models.Driver) (*models.Driver, error)
	UpdateDriver(ctx context.Context, id string, req models.DriverUpdateRequest) (*models.Driver, error)
	CreateTrip(ctx context.Context, draft models.TripDraft) (*models.Trip, error)
	DispatchTrip(ctx context.Context, tripID string) (*models.Trip, error)
	CompleteTrip(ctx context.Context, tripID string, endOdometer float64) (*models.Trip, error)
	CancelTrip(ctx context.Context, tripID string) (*models.Trip, error)
	LogMaintenance(ctx context.Context, entry models.MaintenanceEntry) (*models.MaintenanceLog, error)
	UpdateMaintenanceStatus(ctx context.Context, id string, status models.MaintenanceStatus) (*models.MaintenanceLog, error)
	LogFuel(ctx context.Context, entry models.FuelEntry) (*models.FuelLog, error)

	ListVehicles(ctx context.Context) ([]models.Vehicle, error)
	GetVehicle(ctx context.Context, id string) (*models.Vehicle, error)
	ListDrivers(ctx context.Context) ([]models.Driver, error)
	GetDriver(ctx context.Context, id string) (*models.Driver, error)
	ListTrips(ctx context.Context) ([]models.Trip, error)
	GetTrip(ctx context.Context, id string) (*models.Trip, error)
	ListMaintenanceLogs(ctx context.Context) ([]models.MaintenanceLog, error)
	ListFuelLogs(ctx context.Context) ([]models.FuelLog, error)
	VehicleTotalCost(ctx context.Context, vehicleID string) (float64, error)
	FleetCostSummary(ctx context.Context) (*models.CostSummary, error)
	DashboardSummary(ctx context.Context) (*models.DashboardSummary, error)
}

// AuthUC defines operator authentication
//go:generate mockgen -destination=mocks/mock_auth.go -package=mocks github.com/fleetflow/fleetflow/services/fleet AuthUC
type AuthUC interface {
	Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error)
}
