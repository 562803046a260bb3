package router

import (
	"net/http"

	"github.com/deppfellow/personnel-api/internal/handler"
	"github.com/deppfellow/personnel-api/internal/server"
	"github.com/labstack/echo/v4"
)

// registerSystemRoutes registers endpoints that are not part of the API
// itself. Documentation is only exposed outside production.
func registerSystemRoutes(r *echo.Echo, s *server.Server, h *handler.Handlers) {
	r.GET("/status", h.Health.CheckHealth)

	if s.Config.IsProduction() {
		return
	}

	r.StaticFS("/static", h.OpenAPI.Assets())
	r.GET("/docs", h.OpenAPI.ServeOpenAPIUI)
	r.GET("/", func(c echo.Context) error {
		return c.Redirect(http.StatusTemporaryRedirect, "/docs")
	})
}
