package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fleetflow/fleetflow/internal/utils"
)

// GetCostSummary returns the fleet-wide cost aggregation
func (h *FleetHandler) GetCostSummary(c echo.Context) error {
	summary, err := h.fleetUC.FleetCostSummary(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", summary)
}

// GetDashboardSummary returns the at-a-glance fleet overview
func (h *FleetHandler) GetDashboardSummary(c echo.Context) error {
	summary, err := h.fleetUC.DashboardSummary(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", summary)
}
