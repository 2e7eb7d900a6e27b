package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fleetflow/fleetflow/internal/pkg/models"
	"github.com/fleetflow/fleetflow/internal/utils"
	"github.com/fleetflow/fleetflow/services/fleet"
)

// FleetHandler handles HTTP requests for fleet operations
type FleetHandler struct {
	fleetUC fleet.FleetUC
}

// NewFleetHandler creates a new fleet HTTP handler
func NewFleetHandler(fleetUC fleet.FleetUC) *FleetHandler {
	return &FleetHandler{fleetUC: fleetUC}
}

// CreateVehicle handles vehicle registration
func (h *FleetHandler) CreateVehicle(c echo.Context) error {
	var vehicle models.Vehicle
	if err := c.Bind(&vehicle); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	created, err := h.fleetUC.CreateVehicle(c.Request().Context(), vehicle)
	if err != nil {
		return writeError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Vehicle created", created)
}

// UpdateVehicle handles a partial vehicle edit
func (h *FleetHandler) UpdateVehicle(c echo.Context) error {
	id := c.Param("id")
	var req models.VehicleUpdateRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	updated, err := h.fleetUC.UpdateVehicle(c.Request().Context(), id, req)
	if err != nil {
		return writeError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Vehicle updated", updated)
}

// ListVehicles returns all vehicles
func (h *FleetHandler) ListVehicles(c echo.Context) error {
	vehicles, err := h.fleetUC.ListVehicles(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", vehicles)
}

// GetVehicle returns one vehicle
func (h *FleetHandler) GetVehicle(c echo.Context) error {
	vehicle, err := h.fleetUC.GetVehicle(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", vehicle)
}

// GetVehicleCost returns a vehicle's lifetime operating cost
func (h *FleetHandler) GetVehicleCost(c echo.Context) error {
	id := c.Param("id")
	total, err := h.fleetUC.VehicleTotalCost(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", map[string]interface{}{
		"vehicle_id": id,
		"total_cost": total,
	})
}
