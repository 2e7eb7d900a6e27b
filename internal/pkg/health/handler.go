package health

import (
	"context"
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/labstack/echo/v4"
)

// BuildInfo contains information about the build
type BuildInfo struct {
	Version     string    `json:"version"`
	ServiceName string    `json:"service_name"`
	GoVersion   string    `json:"go_version"`
	Hostname    string    `json:"hostname"`
	ServerTime  time.Time `json:"server_time"`
}

// Checker reports the health of one component
type Checker func(ctx context.Context) error

// Service aggregates component health checks
type Service struct {
	checkers map[string]Checker
}

// NewService creates an empty health service
func NewService() *Service {
	return &Service{checkers: make(map[string]Checker)}
}

// AddChecker registers a named component check
func (s *Service) AddChecker(name string, c Checker) {
	s.checkers[name] = c
}

type componentStatus struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// RegisterEndpoints wires /ping and /health onto the echo instance
func RegisterEndpoints(e *echo.Echo, serviceName, version string, s *Service) {
	hostname, err := os.Hostname()
	if err != nil {
		hostname = "unknown"
	}

	e.GET("/ping", func(c echo.Context) error {
		return c.JSON(http.StatusOK, BuildInfo{
			Version:     version,
			ServiceName: serviceName,
			GoVersion:   runtime.Version(),
			Hostname:    hostname,
			ServerTime:  time.Now(),
		})
	})

	e.GET("/health", func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
		defer cancel()

		status := http.StatusOK
		components := make(map[string]componentStatus, len(s.checkers))
		for name, check := range s.checkers {
			if err := check(ctx); err != nil {
				components[name] = componentStatus{Status: "down", Error: err.Error()}
				status = http.StatusServiceUnavailable
				continue
			}
			components[name] = componentStatus{Status: "up"}
		}

		return c.JSON(status, map[string]interface{}{
			"service":    serviceName,
			"status":     http.StatusText(status),
			"components": components,
		})
	})
}
