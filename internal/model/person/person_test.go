package person

import (
	"strings"
	"testing"

	"github.com/deppfellow/personnel-api/internal/validation"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapperRoundTrip(t *testing.T) {
	views := []PersonView{
		{ID: 1, Name: "Alex", Surname: "Green", Job: "Mechanical Engineer", Age: 32},
		{ID: 0, Name: Unspecified, Surname: Unspecified, Job: Unspecified, Age: 0},
		{ID: 42, Name: "", Surname: " ", Job: "Nurse", Age: -1},
	}

	for _, v := range views {
		record := ToPersistence(&v)
		require.NotNil(t, record)
		assert.Equal(t, v.ID, record.ID)

		assert.Equal(t, v, *ToView(record))
	}
}

func TestMapperNilPropagation(t *testing.T) {
	assert.Nil(t, ToPersistence(nil))
	assert.Nil(t, ToView(nil))
}

func TestToViews(t *testing.T) {
	views := ToViews(nil)
	require.NotNil(t, views)
	assert.Empty(t, views)

	views = ToViews([]Person{
		{ID: 1, Name: "Alex", Surname: "Green", Job: "Engineer", Age: 32},
		{ID: 2, Name: "Maria", Surname: "Silva", Job: "Doctor", Age: 40},
	})
	require.Len(t, views, 2)
	assert.Equal(t, int64(2), views[1].ID)
	assert.Equal(t, "Silva", views[1].Surname)
}

func TestNewViewDefaults(t *testing.T) {
	v := NewView()
	assert.Equal(t, Unspecified, v.Name)
	assert.Equal(t, Unspecified, v.Surname)
	assert.Equal(t, Unspecified, v.Job)
	assert.Equal(t, 0, v.Age)
}

func TestWithDefaults(t *testing.T) {
	v := (&PersonView{Name: "  ", Surname: "Green", Job: ""}).WithDefaults()
	assert.Equal(t, Unspecified, v.Name)
	assert.Equal(t, "Green", v.Surname)
	assert.Equal(t, Unspecified, v.Job)
}

func TestCreatePersonRequestValidate(t *testing.T) {
	req := NewCreatePersonRequest()
	require.NoError(t, req.Validate())

	req.Name = strings.Repeat("a", NameMaxLength)
	require.NoError(t, req.Validate())

	req.Name = strings.Repeat("a", NameMaxLength+1)
	err := req.Validate()
	require.Error(t, err)

	var validationErrors validator.ValidationErrors
	require.ErrorAs(t, err, &validationErrors)
	assert.Equal(t, "Name", validationErrors[0].Field())
	assert.Equal(t, "max", validationErrors[0].Tag())

	req.Name = "Alex"
	req.Surname = strings.Repeat("b", SurnameMaxLength+1)
	assert.Error(t, req.Validate())
}

func TestUpdatePersonRequestValidate(t *testing.T) {
	req := &UpdatePersonRequest{PathID: 1, PersonView: PersonView{ID: 1, Name: "Alex"}}
	require.NoError(t, req.Validate())

	req.ID = 2
	err := req.Validate()
	require.Error(t, err)

	var custom validation.CustomValidationErrors
	require.ErrorAs(t, err, &custom)
	assert.Equal(t, "id", custom[0].Field)

	// Blank fields are allowed on update; they are simply not applied.
	req = &UpdatePersonRequest{PathID: 3, PersonView: PersonView{ID: 3, Age: -1}}
	assert.NoError(t, req.Validate())
}

func TestPersonPatch(t *testing.T) {
	stored := Person{ID: 1, Name: "Alex", Surname: "Green", Job: "Mechanical Engineer", Age: 32}

	assert.Equal(t, stored, stored.Patch(&PersonView{ID: 1, Name: "", Surname: " ", Job: "", Age: -1}))
	assert.Equal(t, stored, stored.Patch(nil))

	patched := stored.Patch(&PersonView{ID: 9, Surname: "Marshall Green", Age: 34})
	assert.Equal(t, Person{ID: 1, Name: "Alex", Surname: "Marshall Green", Job: "Mechanical Engineer", Age: 34}, patched)

	// An omitted age decodes to 0, which is a meaningful value.
	assert.Equal(t, 0, stored.Patch(&PersonView{}).Age)
}

func TestRequestsRequireBody(t *testing.T) {
	assert.True(t, NewCreatePersonRequest().RequiresBody())
	assert.True(t, (&UpdatePersonRequest{}).RequiresBody())
}
