package router

import (
	"github.com/deppfellow/personnel-api/internal/handler"
	"github.com/labstack/echo/v4"
)

func registerPersonnelRoutes(r *echo.Echo, h *handler.Handlers) {
	personnel := r.Group("/personnel")

	personnel.GET("", h.Person.ListPersonnel)
	personnel.POST("", h.Person.CreatePerson)
	personnel.GET("/:id", h.Person.GetPerson)
	personnel.PUT("/:id", h.Person.UpdatePerson)
	personnel.DELETE("/:id", h.Person.DeletePerson)
}
