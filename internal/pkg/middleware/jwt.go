package middleware

import (
	"fmt"
	"strings"

	"github.com/labstack/echo/v4"

	jwtpkg "github.com/fleetflow/fleetflow/internal/pkg/jwt"
	"github.com/fleetflow/fleetflow/internal/pkg/models"
	"github.com/fleetflow/fleetflow/internal/utils"
)

// JWTAuthMiddleware creates a middleware for operator authentication
func JWTAuthMiddleware(cfg models.JWTConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return utils.UnauthorizedResponse(c, "Authorization header is required")
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				return utils.UnauthorizedResponse(c, "Invalid authorization format")
			}

			claims, err := jwtpkg.ValidateToken(parts[1], cfg.Secret)
			if err != nil {
				return utils.UnauthorizedResponse(c, "Invalid token")
			}

			email, ok := (*claims)["email"]
			if !ok {
				return utils.UnauthorizedResponse(c, "Invalid token: missing email claim")
			}

			role, ok := (*claims)["role"]
			if !ok {
				return utils.UnauthorizedResponse(c, "Invalid token: missing role claim")
			}

			c.Set("operator_email", fmt.Sprintf("%v", email))
			c.Set("operator_role", fmt.Sprintf("%v", role))

			return next(c)
		}
	}
}
