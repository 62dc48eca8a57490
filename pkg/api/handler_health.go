package api

import (
	"context"
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/streamgate/streamgate/pkg/database"
	"github.com/streamgate/streamgate/pkg/version"
)

const (
	healthStatusHealthy   = "healthy"
	healthStatusUnhealthy = "unhealthy"
)

// healthHandler handles GET /health.
// Only the bridge's own components are checked; upstream Twitch health is
// deliberately excluded so an orchestrator never restarts the bridge over a
// Twitch outage.
func (s *Server) healthHandler(c *echo.Context) error {
	reqCtx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	checks := make(map[string]HealthCheck)
	status := healthStatusHealthy

	if _, err := database.Health(reqCtx, s.dbClient.DB()); err != nil {
		status = healthStatusUnhealthy
		checks["database"] = HealthCheck{Status: healthStatusUnhealthy, Message: err.Error()}
	} else {
		checks["database"] = HealthCheck{Status: healthStatusHealthy}
	}

	checks["fanout_hub"] = HealthCheck{
		Status:            healthStatusHealthy,
		ActiveConnections: s.hub.ActiveConnections(),
	}

	code := http.StatusOK
	if status == healthStatusUnhealthy {
		code = http.StatusServiceUnavailable
	}
	return c.JSON(code, &HealthResponse{
		Status:  status,
		Version: version.Full(),
		Checks:  checks,
	})
}
