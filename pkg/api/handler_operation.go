package api

import (
	"context"
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/sitekeeper/sitekeeper/pkg/models"
)

type startOperationRequest struct {
	OperationType string            `json:"operation_type"`
	Parameters    map[string]string `json:"parameters"`
}

// operationDetail is the full view of one operation, including the retained
// master-side log lines.
type operationDetail struct {
	models.MasterActionSnapshot
	Parameters map[string]string `json:"parameters,omitempty"`
	RecentLogs []string          `json:"recent_logs,omitempty"`
}

// startOperationHandler handles POST /api/v1/operations.
func (s *Server) startOperationHandler(c *echo.Context) error {
	var req startOperationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.OperationType == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "operation_type is required")
	}

	// The run outlives the HTTP request, so it is not tied to the request
	// context. Cancellation goes through the cancel endpoint.
	action, err := s.runtime.Start(context.Background(), models.OperationType(req.OperationType), req.Parameters)
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusAccepted, action.Snapshot())
}

// listOperationsHandler handles GET /api/v1/operations.
func (s *Server) listOperationsHandler(c *echo.Context) error {
	snapshots := s.runtime.List()

	// Optional status filter.
	if v := c.QueryParam("status"); v != "" {
		filtered := snapshots[:0]
		for _, snap := range snapshots {
			if string(snap.Status) == v {
				filtered = append(filtered, snap)
			}
		}
		snapshots = filtered
	}

	return c.JSON(http.StatusOK, map[string]any{
		"operations": snapshots,
		"total":      len(snapshots),
	})
}

// operationTypesHandler handles GET /api/v1/operations/types.
func (s *Server) operationTypesHandler(c *echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"operation_types": s.handlers.Types(),
	})
}

// getOperationHandler handles GET /api/v1/operations/:id.
func (s *Server) getOperationHandler(c *echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "operation id is required")
	}

	action, err := s.runtime.Get(id)
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusOK, operationDetail{
		MasterActionSnapshot: action.Snapshot(),
		Parameters:           action.Parameters,
		RecentLogs:           action.RecentLogs(),
	})
}

// cancelOperationHandler handles POST /api/v1/operations/:id/cancel.
func (s *Server) cancelOperationHandler(c *echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "operation id is required")
	}

	if err := s.runtime.Cancel(id); err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusAccepted, map[string]string{
		"id":     id,
		"status": "cancellation requested",
	})
}
