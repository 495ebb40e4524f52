package api

import (
	"net/http"
	"sort"

	echo "github.com/labstack/echo/v5"
)

// listAgentsHandler handles GET /api/v1/agents.
func (s *Server) listAgentsHandler(c *echo.Context) error {
	agents := s.registry.Snapshot()
	sort.Slice(agents, func(i, j int) bool {
		return agents[i].Node < agents[j].Node
	})

	return c.JSON(http.StatusOK, map[string]any{
		"agents": agents,
		"total":  len(agents),
	})
}

type adjustTimeRequest struct {
	Force bool `json:"force"`
}

// adjustTimeHandler handles POST /api/v1/agents/:node/adjust-time. It pushes
// the master's clock to the agent so that journal timestamps line up.
func (s *Server) adjustTimeHandler(c *echo.Context) error {
	node := c.Param("node")
	if node == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "node is required")
	}

	var req adjustTimeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := s.agentHub.AdjustSystemTime(node, req.Force); err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusAccepted, map[string]string{
		"node":   node,
		"status": "time adjustment sent",
	})
}

type generalCommandRequest struct {
	CommandType string `json:"command_type"`
	Payload     string `json:"payload"`
	TimeoutSec  int    `json:"timeout_sec"`
}

// generalCommandHandler handles POST /api/v1/agents/:node/command, an
// out-of-band operation outside the task protocol.
func (s *Server) generalCommandHandler(c *echo.Context) error {
	node := c.Param("node")
	if node == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "node is required")
	}

	var req generalCommandRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.CommandType == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "command_type is required")
	}

	if err := s.agentHub.SendGeneralCommand(node, req.CommandType, req.Payload, req.TimeoutSec); err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusAccepted, map[string]string{
		"node":   node,
		"status": "command sent",
	})
}
