package httpapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"gitlab.com/timkado/api/daisi-supportdesk/internal/observer"
	"gitlab.com/timkado/api/daisi-supportdesk/pkg/logger"
)

// HealthResponse is the composite health check body. Status is ok only when
// every dependency check passed.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

// handleHealthz probes every dependency and reports each individually.
// Any failing check turns the overall status to error and the response
// into a 503.
func (s *Server) handleHealthz(c echo.Context) error {
	ctx := c.Request().Context()
	resp := HealthResponse{
		Status: "ok",
		Checks: map[string]string{
			"database": "ok",
			"redis":    "ok",
		},
	}

	if err := s.deps.Database.Ping(ctx); err != nil {
		logger.FromContext(ctx).Error("Database health check failed", zap.Error(err))
		observer.IncHealthCheckFailure("database")
		resp.Checks["database"] = "error"
		resp.Status = "error"
	}

	if err := s.deps.Redis.Ping(ctx); err != nil {
		logger.FromContext(ctx).Error("Redis health check failed", zap.Error(err))
		observer.IncHealthCheckFailure("redis")
		resp.Checks["redis"] = "error"
		resp.Status = "error"
	}

	if resp.Status == "error" {
		return c.JSON(http.StatusServiceUnavailable, resp)
	}
	return c.JSON(http.StatusOK, resp)
}
