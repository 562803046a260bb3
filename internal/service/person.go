package service

import (
	"context"

	"github.com/deppfellow/personnel-api/internal/errs"
	"github.com/deppfellow/personnel-api/internal/middleware"
	"github.com/deppfellow/personnel-api/internal/model/person"
	"github.com/deppfellow/personnel-api/internal/server"
	"github.com/labstack/echo/v4"
)

// PersonnelStore is the data-access contract PersonService depends on.
// Absent rows are reported as nil results or false, never as errors.
type PersonnelStore interface {
	ListAll(ctx context.Context) ([]person.PersonView, error)
	FindByID(ctx context.Context, id int64) (*person.PersonView, error)
	Create(ctx context.Context, view *person.PersonView) (*person.PersonView, error)
	Update(ctx context.Context, view *person.PersonView) (*person.PersonView, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

var (
	codePersonNotFound = "PERSON_NOT_FOUND"
	codePersonRejected = "PERSON_REJECTED"
)

type PersonService struct {
	server *server.Server
	store  PersonnelStore
}

func NewPersonService(s *server.Server, store PersonnelStore) *PersonService {
	return &PersonService{
		server: s,
		store:  store,
	}
}

func notFound() error {
	return errs.NewNotFoundError("Person not found", true, &codePersonNotFound)
}

func (s *PersonService) GetPersonnel(c echo.Context) ([]person.PersonView, error) {
	logger := middleware.GetLogger(c)

	personnel, err := s.store.ListAll(c.Request().Context())
	if err != nil {
		logger.Error().Err(err).Msg("failed to list personnel")
		return nil, err
	}

	logger.Debug().Int("count", len(personnel)).Msg("listed personnel")
	return personnel, nil
}

func (s *PersonService) GetPerson(c echo.Context, id int64) (*person.PersonView, error) {
	logger := middleware.GetLogger(c).With().Int64("person_id", id).Logger()

	found, err := s.store.FindByID(c.Request().Context(), id)
	if err != nil {
		logger.Error().Err(err).Msg("failed to fetch person")
		return nil, err
	}
	if found == nil {
		logger.Debug().Msg("person not found")
		return nil, notFound()
	}

	return found, nil
}

// CreatePerson stores view as a new person. Blank strings become
// person.Unspecified; a nil view or a negative age is rejected.
func (s *PersonService) CreatePerson(c echo.Context, view *person.PersonView) (*person.PersonView, error) {
	logger := middleware.GetLogger(c)

	if view == nil {
		logger.Warn().Msg("person rejected: no payload")
		return nil, errs.NewBadRequestError("Person could not be created", true, &codePersonRejected, nil, nil)
	}

	created, err := s.store.Create(c.Request().Context(), view.WithDefaults())
	if err != nil {
		logger.Error().Err(err).Msg("failed to create person")
		return nil, err
	}
	if created == nil {
		logger.Warn().Int("age", view.Age).Msg("person rejected")
		return nil, errs.NewBadRequestError("Person could not be created", true, &codePersonRejected, nil, nil)
	}

	logger.Info().Int64("person_id", created.ID).Msg("person created")
	return created, nil
}

// UpdatePerson applies view as a sparse patch onto the stored person with view.ID.
func (s *PersonService) UpdatePerson(c echo.Context, view *person.PersonView) (*person.PersonView, error) {
	logger := middleware.GetLogger(c).With().Int64("person_id", view.ID).Logger()

	updated, err := s.store.Update(c.Request().Context(), view)
	if err != nil {
		logger.Error().Err(err).Msg("failed to update person")
		return nil, err
	}
	if updated == nil {
		logger.Debug().Msg("person not found")
		return nil, notFound()
	}

	logger.Info().Msg("person updated")
	return updated, nil
}

func (s *PersonService) DeletePerson(c echo.Context, id int64) error {
	logger := middleware.GetLogger(c).With().Int64("person_id", id).Logger()

	deleted, err := s.store.Delete(c.Request().Context(), id)
	if err != nil {
		logger.Error().Err(err).Msg("failed to delete person")
		return err
	}
	if !deleted {
		logger.Debug().Msg("person not found")
		return notFound()
	}

	logger.Info().Msg("person deleted")
	return nil
}
