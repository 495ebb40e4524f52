package api

import (
	"errors"
	"log/slog"
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/sitekeeper/sitekeeper/pkg/registry"
	"github.com/sitekeeper/sitekeeper/pkg/workflow"
)

// mapServiceError maps runtime and registry errors to HTTP error responses.
func mapServiceError(err error) *echo.HTTPError {
	if errors.Is(err, workflow.ErrNoHandler) {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if errors.Is(err, workflow.ErrActionNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "operation not found")
	}
	if errors.Is(err, registry.ErrNotRegistered) {
		return echo.NewHTTPError(http.StatusNotFound, "agent not registered")
	}
	if errors.Is(err, registry.ErrNotConnected) {
		return echo.NewHTTPError(http.StatusConflict, "agent is not connected")
	}

	// Unexpected error
	slog.Error("Unexpected service error", "error", err)
	return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
}
