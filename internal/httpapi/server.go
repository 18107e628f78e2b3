package httpapi

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"gitlab.com/timkado/api/daisi-supportdesk/internal/storage"
)

// ServiceVersion is reported by the identity payload.
const ServiceVersion = "0.1.0"

// HealthChecker probes one dependency's reachability.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// Dependencies holds everything the API server needs, injected explicitly.
type Dependencies struct {
	Repo           storage.Reader
	Database       HealthChecker
	Redis          HealthChecker
	MetricsEnabled bool
}

// Server is the HTTP API server.
type Server struct {
	echo   *echo.Echo
	deps   Dependencies
	logger *zap.Logger
	addr   string
}

// NewServer builds the Echo server with all routes and middleware wired.
func NewServer(addr string, deps Dependencies, logger *zap.Logger) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	s := &Server{
		echo:   e,
		deps:   deps,
		logger: logger,
		addr:   addr,
	}

	e.Use(requestIDMiddleware())
	e.Use(metricsMiddleware())

	e.GET("/", s.handleRoot)
	e.GET("/healthz", s.handleHealthz)
	if deps.MetricsEnabled {
		e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	}

	e.GET("/tenants", s.listTenants)
	e.GET("/tenants/:id", s.getTenant)
	e.GET("/customers", s.listCustomers)
	e.GET("/customers/:id", s.getCustomer)
	e.GET("/threads", s.listThreads)
	e.GET("/threads/:id", s.getThread)
	e.GET("/messages", s.listMessages)
	e.GET("/messages/:id", s.getMessage)
	e.GET("/events", s.listEvents)
	e.GET("/events/:id", s.getEvent)
	e.GET("/labels", s.listLabels)
	e.GET("/labels/:id", s.getLabel)

	return s
}

// Echo exposes the underlying router for tests.
func (s *Server) Echo() *echo.Echo {
	return s.echo
}

// Start begins serving in a background goroutine.
func (s *Server) Start() {
	go func() {
		s.logger.Info("Starting API server", zap.String("addr", s.addr))
		if err := s.echo.Start(s.addr); err != nil && err != http.ErrServerClosed {
			s.logger.Error("API server error", zap.Error(err))
		}
	}()
}

// Stop gracefully shuts the server down.
func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Stopping API server")
	return s.echo.Shutdown(ctx)
}

// handleRoot serves the liveness/identity payload.
func (s *Server) handleRoot(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"service": "supportdesk",
		"status":  "ok",
		"version": ServiceVersion,
	})
}
