package handler

import (
	"fmt"
	"io/fs"
	"net/http"

	"github.com/deppfellow/personnel-api/internal/server"
	"github.com/deppfellow/personnel-api/static"
	"github.com/labstack/echo/v4"
)

// OpenAPIHandler serves the interactive API documentation UI. The page
// loads its script from a CDN and reads /static/openapi.json.
type OpenAPIHandler struct {
	Handler
	assets fs.FS
}

func NewOpenAPIHandler(s *server.Server) *OpenAPIHandler {
	return &OpenAPIHandler{
		Handler: NewHandler(s),
		assets:  static.Files,
	}
}

// Assets returns the filesystem the docs page and openapi.json are served from.
func (h *OpenAPIHandler) Assets() fs.FS {
	return h.assets
}

// ServeOpenAPIUI serves openapi.html uncached.
func (h *OpenAPIHandler) ServeOpenAPIUI(c echo.Context) error {
	c.Response().Header().Set("Cache-Control", "no-cache")

	page, err := fs.ReadFile(h.assets, static.UIFile)
	if err != nil {
		return fmt.Errorf("failed to read OpenAPI UI template: %w", err)
	}

	if err := c.HTMLBlob(http.StatusOK, page); err != nil {
		return fmt.Errorf("failed to write HTML response: %w", err)
	}

	return nil
}
