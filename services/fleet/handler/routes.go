package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/fleetflow/fleetflow/internal/pkg/middleware"
	"github.com/fleetflow/fleetflow/internal/pkg/models"
	"github.com/fleetflow/fleetflow/services/fleet"
	httpHandler "github.com/fleetflow/fleetflow/services/fleet/handler/http"
	"github.com/fleetflow/fleetflow/services/fleet/repository"
)

// Handler combines all handlers for the fleet service
type Handler struct {
	fleetHTTP    *httpHandler.FleetHandler
	authHTTP     *httpHandler.AuthHandler
	snapshotHTTP *httpHandler.SnapshotHandler
	cfg          *models.Config
}

// NewHandler creates a new combined handler
func NewHandler(
	fleetUC fleet.FleetUC,
	authUC fleet.AuthUC,
	store *repository.Store,
	snapshotStore fleet.SnapshotStore,
	cfg *models.Config,
) *Handler {
	return &Handler{
		fleetHTTP:    httpHandler.NewFleetHandler(fleetUC),
		authHTTP:     httpHandler.NewAuthHandler(authUC),
		snapshotHTTP: httpHandler.NewSnapshotHandler(store, snapshotStore),
		cfg:          cfg,
	}
}

// RegisterRoutes registers all HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	// Public routes
	e.POST("/auth/login", h.authHTTP.Login)

	// Operator routes (JWT required)
	api := e.Group("/api", middleware.JWTAuthMiddleware(h.cfg.JWT))

	api.GET("/vehicles", h.fleetHTTP.ListVehicles)
	api.POST("/vehicles", h.fleetHTTP.CreateVehicle)
	api.GET("/vehicles/:id", h.fleetHTTP.GetVehicle)
	api.PATCH("/vehicles/:id", h.fleetHTTP.UpdateVehicle)
	api.GET("/vehicles/:id/cost", h.fleetHTTP.GetVehicleCost)

	api.GET("/drivers", h.fleetHTTP.ListDrivers)
	api.POST("/drivers", h.fleetHTTP.CreateDriver)
	api.GET("/drivers/:id", h.fleetHTTP.GetDriver)
	api.PATCH("/drivers/:id", h.fleetHTTP.UpdateDriver)

	api.GET("/trips", h.fleetHTTP.ListTrips)
	api.POST("/trips", h.fleetHTTP.CreateTrip)
	api.GET("/trips/:id", h.fleetHTTP.GetTrip)
	api.POST("/trips/:id/dispatch", h.fleetHTTP.DispatchTrip)
	api.POST("/trips/:id/complete", h.fleetHTTP.CompleteTrip)
	api.POST("/trips/:id/cancel", h.fleetHTTP.CancelTrip)

	api.GET("/maintenance", h.fleetHTTP.ListMaintenanceLogs)
	api.POST("/maintenance", h.fleetHTTP.LogMaintenance)
	api.PATCH("/maintenance/:id/status", h.fleetHTTP.UpdateMaintenanceStatus)

	api.GET("/fuel", h.fleetHTTP.ListFuelLogs)
	api.POST("/fuel", h.fleetHTTP.LogFuel)

	api.GET("/analytics/costs", h.fleetHTTP.GetCostSummary)
	api.GET("/analytics/dashboard", h.fleetHTTP.GetDashboardSummary)

	// Internal routes for operational tooling (API key required)
	apiKey := middleware.NewAPIKeyMiddleware(&h.cfg.APIKey)
	internal := e.Group("/internal", apiKey.Handler("fleet-ops"))
	internal.POST("/snapshot", h.snapshotHTTP.SaveSnapshot)
}
