package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/fleetflow/fleetflow/internal/pkg/models"
	"github.com/fleetflow/fleetflow/internal/utils"
)

const (
	// APIKeyHeader is the header carrying the caller's key
	APIKeyHeader = "X-API-Key"
)

// APIKeyMiddleware validates keys for internal endpoints. Keys are taken
// from configuration at construction time rather than ambient package state,
// so tests can build isolated instances.
type APIKeyMiddleware struct {
	keys map[string]string // caller name -> key
}

// NewAPIKeyMiddleware creates the middleware from config
func NewAPIKeyMiddleware(cfg *models.APIKeyConfig) *APIKeyMiddleware {
	keys := make(map[string]string, len(cfg.Keys))
	for caller, key := range cfg.Keys {
		keys[caller] = key
	}
	return &APIKeyMiddleware{keys: keys}
}

// Handler returns an echo middleware that accepts any of the allowed callers
func (m *APIKeyMiddleware) Handler(allowedCallers ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			apiKey := c.Request().Header.Get(APIKeyHeader)
			if apiKey == "" {
				return utils.UnauthorizedResponse(c, "API key is required")
			}

			for _, caller := range allowedCallers {
				if key, ok := m.keys[caller]; ok && key != "" && strings.EqualFold(apiKey, key) {
					return next(c)
				}
			}

			return utils.UnauthorizedResponse(c, "Invalid API key")
		}
	}
}
