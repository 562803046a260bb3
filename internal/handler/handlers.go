// Package handler is the first entry point for business logic after
// the router.
//
// It binds requests, validates them through the validation package
// and calls the appropriate service.
package handler

import (
	"github.com/deppfellow/personnel-api/internal/server"
	"github.com/deppfellow/personnel-api/internal/service"
)

// Handlers groups all HTTP handlers.
type Handlers struct {
	Health  *HealthHandler
	OpenAPI *OpenAPIHandler
	Person  *PersonHandler
}

func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health:  NewHealthHandler(s),
		OpenAPI: NewOpenAPIHandler(s),
		Person:  NewPersonHandler(s, services.Person),
	}
}
