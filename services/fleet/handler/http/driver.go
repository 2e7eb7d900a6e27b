package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fleetflow/fleetflow/internal/pkg/models"
	"github.com/fleetflow/fleetflow/internal/utils"
)

// CreateDriver handles driver registration
func (h *FleetHandler) CreateDriver(c echo.Context) error {
	var driver models.Driver
	if err := c.Bind(&driver); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	created, err := h.fleetUC.CreateDriver(c.Request().Context(), driver)
	if err != nil {
		return writeError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Driver created", created)
}

// UpdateDriver handles a partial driver edit
func (h *FleetHandler) UpdateDriver(c echo.Context) error {
	id := c.Param("id")
	var req models.DriverUpdateRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	updated, err := h.fleetUC.UpdateDriver(c.Request().Context(), id, req)
	if err != nil {
		return writeError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Driver updated", updated)
}

// ListDrivers returns all drivers
func (h *FleetHandler) ListDrivers(c echo.Context) error {
	drivers, err := h.fleetUC.ListDrivers(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", drivers)
}

// GetDriver returns one driver
func (h *FleetHandler) GetDriver(c echo.Context) error {
	driver, err := h.fleetUC.GetDriver(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", driver)
}
