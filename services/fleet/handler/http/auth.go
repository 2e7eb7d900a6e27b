package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fleetflow/fleetflow/internal/pkg/models"
	"github.com/fleetflow/fleetflow/internal/utils"
	"github.com/fleetflow/fleetflow/services/fleet"
)

// AuthHandler handles operator authentication requests
type AuthHandler struct {
	authUC fleet.AuthUC
}

// NewAuthHandler creates a new auth HTTP handler
func NewAuthHandler(authUC fleet.AuthUC) *AuthHandler {
	return &AuthHandler{authUC: authUC}
}

// Login verifies operator credentials and returns a token
func (h *AuthHandler) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}
	if req.Email == "" || req.Password == "" {
		return utils.BadRequestResponse(c, "Email and password are required")
	}

	resp, err := h.authUC.Login(c.Request().Context(), req)
	if err != nil {
		return utils.UnauthorizedResponse(c, "Invalid email or password")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Login successful", resp)
}
