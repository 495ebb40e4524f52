// Package api exposes the master's REST surface: starting, inspecting and
// cancelling operations, viewing the agent fleet, and health. The agent
// websocket endpoint is mounted here too but lives in pkg/hub.
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/sitekeeper/sitekeeper/pkg/config"
	"github.com/sitekeeper/sitekeeper/pkg/database"
	"github.com/sitekeeper/sitekeeper/pkg/hub"
	"github.com/sitekeeper/sitekeeper/pkg/registry"
	"github.com/sitekeeper/sitekeeper/pkg/workflow"
)

// Server is the HTTP server for the master API.
type Server struct {
	cfg      *config.Config
	db       *database.Client
	runtime  *workflow.Runtime
	handlers *workflow.HandlerRegistry
	registry *registry.Registry
	agentHub *hub.Hub

	e       *echo.Echo
	httpSrv *http.Server
}

// NewServer creates the API server and registers all routes.
func NewServer(
	cfg *config.Config,
	db *database.Client,
	runtime *workflow.Runtime,
	handlers *workflow.HandlerRegistry,
	reg *registry.Registry,
	agentHub *hub.Hub,
) *Server {
	s := &Server{
		cfg:      cfg,
		db:       db,
		runtime:  runtime,
		handlers: handlers,
		registry: reg,
		agentHub: agentHub,
		e:        echo.New(),
	}
	s.e.Use(securityHeaders(), requestLogger())
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.e.GET("/health", s.healthHandler)

	v1 := s.e.Group("/api/v1")
	v1.POST("/operations", s.startOperationHandler)
	v1.GET("/operations", s.listOperationsHandler)
	v1.GET("/operations/types", s.operationTypesHandler)
	v1.GET("/operations/:id", s.getOperationHandler)
	v1.POST("/operations/:id/cancel", s.cancelOperationHandler)
	v1.GET("/agents", s.listAgentsHandler)
	v1.POST("/agents/:node/adjust-time", s.adjustTimeHandler)
	v1.POST("/agents/:node/command", s.generalCommandHandler)

	if s.agentHub != nil {
		s.agentHub.RegisterRoutes(s.e)
	}
}

// Handler returns the root HTTP handler. Used by tests.
func (s *Server) Handler() http.Handler {
	return s.e
}

// Start begins listening on addr and blocks until the server stops.
func (s *Server) Start(addr string) error {
	s.httpSrv = &http.Server{
		Addr:              addr,
		Handler:           s.e,
		ReadHeaderTimeout: 10 * time.Second,
	}
	slog.Info("HTTP server listening", "addr", addr)
	return s.httpSrv.ListenAndServe()
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpSrv == nil {
		return nil
	}
	return s.httpSrv.Shutdown(ctx)
}
