package handler

import (
	"net/http"

	"github.com/deppfellow/personnel-api/internal/model/person"
	"github.com/deppfellow/personnel-api/internal/server"
	"github.com/deppfellow/personnel-api/internal/service"
	"github.com/labstack/echo/v4"
)

// PersonHandler exposes CRUD over personnel records under /personnel.
//
// Path ids that are not integers, undecodable bodies and validation
// failures are answered with 400 by the pipeline before the service runs.
type PersonHandler struct {
	Handler
	personService *service.PersonService
}

func NewPersonHandler(s *server.Server, personService *service.PersonService) *PersonHandler {
	return &PersonHandler{
		Handler:       NewHandler(s),
		personService: personService,
	}
}

// ListPersonnel answers 200 with every stored person, [] when empty.
func (h *PersonHandler) ListPersonnel(c echo.Context) error {
	return Handle(
		h.Handler,
		func(c echo.Context, req *person.ListPersonnelRequest) ([]person.PersonView, error) {
			return h.personService.GetPersonnel(c)
		},
		http.StatusOK,
		newRequest[person.ListPersonnelRequest],
	)(c)
}

func (h *PersonHandler) GetPerson(c echo.Context) error {
	return Handle(
		h.Handler,
		func(c echo.Context, req *person.GetPersonRequest) (*person.PersonView, error) {
			return h.personService.GetPerson(c, req.ID)
		},
		http.StatusOK,
		newRequest[person.GetPersonRequest],
	)(c)
}

// CreatePerson decodes the body onto the creation defaults, so absent fields
// are stored as person.Unspecified and an absent age as 0.
func (h *PersonHandler) CreatePerson(c echo.Context) error {
	return Handle(
		h.Handler,
		func(c echo.Context, req *person.CreatePersonRequest) (*person.PersonView, error) {
			return h.personService.CreatePerson(c, &req.PersonView)
		},
		http.StatusOK,
		person.NewCreatePersonRequest,
	)(c)
}

// UpdatePerson replaces the fields supplied in the body. The body id must
// equal the path id.
func (h *PersonHandler) UpdatePerson(c echo.Context) error {
	return Handle(
		h.Handler,
		func(c echo.Context, req *person.UpdatePersonRequest) (*person.PersonView, error) {
			return h.personService.UpdatePerson(c, &req.PersonView)
		},
		http.StatusOK,
		newRequest[person.UpdatePersonRequest],
	)(c)
}

func (h *PersonHandler) DeletePerson(c echo.Context) error {
	return HandleNoContent(
		h.Handler,
		func(c echo.Context, req *person.DeletePersonRequest) error {
			return h.personService.DeletePerson(c, req.ID)
		},
		http.StatusNoContent,
		newRequest[person.DeletePersonRequest],
	)(c)
}
