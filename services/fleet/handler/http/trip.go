package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fleetflow/fleetflow/internal/pkg/models"
	"github.com/fleetflow/fleetflow/internal/utils"
)

// CreateTrip admits a new draft trip
func (h *FleetHandler) CreateTrip(c echo.Context) error {
	var draft models.TripDraft
	if err := c.Bind(&draft); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	trip, err := h.fleetUC.CreateTrip(c.Request().Context(), draft)
	if err != nil {
		return writeError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Trip created", trip)
}

// DispatchTrip starts a draft trip
func (h *FleetHandler) DispatchTrip(c echo.Context) error {
	trip, err := h.fleetUC.DispatchTrip(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Trip dispatched", trip)
}

// CompleteTrip closes a dispatched trip with its final odometer reading
func (h *FleetHandler) CompleteTrip(c echo.Context) error {
	var req models.TripCompleteRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	trip, err := h.fleetUC.CompleteTrip(c.Request().Context(), c.Param("id"), req.EndOdometer)
	if err != nil {
		return writeError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Trip completed", trip)
}

// CancelTrip abandons a draft or dispatched trip
func (h *FleetHandler) CancelTrip(c echo.Context) error {
	trip, err := h.fleetUC.CancelTrip(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Trip cancelled", trip)
}

// ListTrips returns all trips
func (h *FleetHandler) ListTrips(c echo.Context) error {
	trips, err := h.fleetUC.ListTrips(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", trips)
}

// GetTrip returns one trip
func (h *FleetHandler) GetTrip(c echo.Context) error {
	trip, err := h.fleetUC.GetTrip(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", trip)
}
