package person

import (
	"strings"

	"github.com/deppfellow/personnel-api/internal/validation"
	"github.com/go-playground/validator/v10"
)

// validate is safe for concurrent use and caches struct metadata.
var validate = validator.New()

// PersonView is the transport record exchanged with API callers.
type PersonView struct {
	ID      int64  `json:"id"`
	Name    string `json:"name" validate:"max=80"`
	Surname string `json:"surname" validate:"max=255"`
	Job     string `json:"job"`
	Age     int    `json:"age"`
}

// NewView returns a view holding the creation defaults: every string field
// set to Unspecified and age 0.
func NewView() *PersonView {
	return &PersonView{
		Name:    Unspecified,
		Surname: Unspecified,
		Job:     Unspecified,
	}
}

// WithDefaults replaces blank string fields with Unspecified.
func (v *PersonView) WithDefaults() *PersonView {
	if IsBlank(v.Name) {
		v.Name = Unspecified
	}
	if IsBlank(v.Surname) {
		v.Surname = Unspecified
	}
	if IsBlank(v.Job) {
		v.Job = Unspecified
	}
	return v
}

// IsBlank reports whether s is empty or only whitespace.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// ------------------------------------------------------------
// Request payloads

// ListPersonnelRequest carries no input.
type ListPersonnelRequest struct{}

func (r *ListPersonnelRequest) Validate() error {
	return nil
}

// GetPersonRequest binds the person id from the path.
type GetPersonRequest struct {
	ID int64 `param:"id"`
}

func (r *GetPersonRequest) Validate() error {
	return nil
}

// CreatePersonRequest is the body of a create call. Any id in the body is ignored.
type CreatePersonRequest struct {
	PersonView
}

// NewCreatePersonRequest starts from the creation defaults so absent JSON
// fields keep the sentinel values.
func NewCreatePersonRequest() *CreatePersonRequest {
	return &CreatePersonRequest{PersonView: *NewView()}
}

func (r *CreatePersonRequest) RequiresBody() bool {
	return true
}

func (r *CreatePersonRequest) Validate() error {
	return validate.Struct(r)
}

// UpdatePersonRequest combines the path id with the replacement body.
type UpdatePersonRequest struct {
	PathID int64 `param:"id" json:"-"`
	PersonView
}

func (r *UpdatePersonRequest) RequiresBody() bool {
	return true
}

// Validate rejects a body whose id differs from the path id before any
// field-level checks run.
func (r *UpdatePersonRequest) Validate() error {
	if r.PathID != r.ID {
		return validation.CustomValidationErrors{
			{Field: "id", Message: "must match the id in the path"},
		}
	}
	return validate.Struct(r)
}

// DeletePersonRequest binds the person id from the path.
type DeletePersonRequest struct {
	ID int64 `param:"id"`
}

func (r *DeletePersonRequest) Validate() error {
	return nil
}
