package http

import (
	"github.com/labstack/echo/v4"

	"github.com/fleetflow/fleetflow/internal/pkg/models"
	"github.com/fleetflow/fleetflow/internal/utils"
)

// writeError maps engine errors onto HTTP statuses: unknown ids are 404,
// rejected input is 400, transitions from a stale state are 409. Anything
// else is a 500.
func writeError(c echo.Context, err error) error {
	switch {
	case models.IsNotFound(err):
		return utils.NotFoundResponse(c, err.Error())
	case models.IsValidation(err):
		return utils.BadRequestResponse(c, err.Error())
	case models.IsStateError(err):
		return utils.ConflictResponse(c, err.Error())
	default:
		return utils.InternalServerErrorResponse(c, err.Error())
	}
}
