package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fleetflow/fleetflow/internal/pkg/models"
	"github.com/fleetflow/fleetflow/internal/utils"
)

// LogMaintenance records a maintenance event
func (h *FleetHandler) LogMaintenance(c echo.Context) error {
	var entry models.MaintenanceEntry
	if err := c.Bind(&entry); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	mlog, err := h.fleetUC.LogMaintenance(c.Request().Context(), entry)
	if err != nil {
		return writeError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Maintenance logged", mlog)
}

// UpdateMaintenanceStatus moves a maintenance log to a new status
func (h *FleetHandler) UpdateMaintenanceStatus(c echo.Context) error {
	var req models.MaintenanceStatusRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	mlog, err := h.fleetUC.UpdateMaintenanceStatus(c.Request().Context(), c.Param("id"), req.Status)
	if err != nil {
		return writeError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Maintenance updated", mlog)
}

// ListMaintenanceLogs returns all maintenance logs
func (h *FleetHandler) ListMaintenanceLogs(c echo.Context) error {
	logs, err := h.fleetUC.ListMaintenanceLogs(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", logs)
}

// LogFuel records a refueling
func (h *FleetHandler) LogFuel(c echo.Context) error {
	var entry models.FuelEntry
	if err := c.Bind(&entry); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	flog, err := h.fleetUC.LogFuel(c.Request().Context(), entry)
	if err != nil {
		return writeError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Fuel logged", flog)
}

// ListFuelLogs returns all fuel logs
func (h *FleetHandler) ListFuelLogs(c echo.Context) error {
	logs, err := h.fleetUC.ListFuelLogs(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", logs)
}
