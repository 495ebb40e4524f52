package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/sitekeeper/sitekeeper/pkg/database"
	"github.com/sitekeeper/sitekeeper/pkg/version"
)

// healthHandler handles GET /health. It reports overall service health and,
// when the journal database is configured, its connectivity and pool stats.
func (s *Server) healthHandler(c *echo.Context) error {
	resp := map[string]any{
		"service":       version.AppName,
		"version":       version.Full(),
		"status":        "healthy",
		"agents_online": len(s.registry.OnlineNodes()),
	}

	if s.db != nil {
		dbHealth, err := database.Health(c.Request().Context(), s.db.DB())
		resp["database"] = dbHealth
		if err != nil {
			resp["status"] = "unhealthy"
			return c.JSON(http.StatusServiceUnavailable, resp)
		}
	}

	return c.JSON(http.StatusOK, resp)
}
