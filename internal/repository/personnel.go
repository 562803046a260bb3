package repository

import (
	"context"

	"github.com/deppfellow/personnel-api/internal/database"
	"github.com/deppfellow/personnel-api/internal/model/person"
	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"
)

const personColumns = `id, name, surname, job, age`

// PersonnelRepository reads and writes rows of the personnel table.
//
// Every method performs at most one round trip per statement and maps
// between the transport and persistence records at its boundary. Absent
// rows are reported as nil results, not errors.
type PersonnelRepository struct {
	db database.Querier
}

func NewPersonnelRepository(db database.Querier) *PersonnelRepository {
	return &PersonnelRepository{db: db}
}

func scanPerson(row pgx.Row) (*person.Person, error) {
	var p person.Person
	if err := row.Scan(&p.ID, &p.Name, &p.Surname, &p.Job, &p.Age); err != nil {
		return nil, err
	}
	return &p, nil
}

// ListAll returns every stored person in store order.
func (r *PersonnelRepository) ListAll(ctx context.Context) ([]person.PersonView, error) {
	rows, err := r.db.Query(ctx, `SELECT `+personColumns+` FROM `+person.Table)
	if err != nil {
		return nil, errors.Wrap(err, "list personnel")
	}

	records, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (person.Person, error) {
		p, err := scanPerson(row)
		if err != nil {
			return person.Person{}, err
		}
		return *p, nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "scan personnel")
	}

	return person.ToViews(records), nil
}

// FindByID returns the person with id, or nil when no such row exists.
func (r *PersonnelRepository) FindByID(ctx context.Context, id int64) (*person.PersonView, error) {
	record, err := r.findRecord(ctx, id)
	if err != nil || record == nil {
		return nil, err
	}
	return person.ToView(record), nil
}

func (r *PersonnelRepository) findRecord(ctx context.Context, id int64) (*person.Person, error) {
	row := r.db.QueryRow(ctx, `SELECT `+personColumns+` FROM `+person.Table+` WHERE id = $1`, id)

	record, err := scanPerson(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "find person %d", id)
	}
	return record, nil
}

// Create inserts view and returns the stored row with its assigned id.
//
// It returns nil without touching the store when view is nil or carries a
// negative age. Any id on view is ignored.
func (r *PersonnelRepository) Create(ctx context.Context, view *person.PersonView) (*person.PersonView, error) {
	record := person.ToPersistence(view)
	if record == nil || record.Age < 0 {
		return nil, nil
	}

	row := r.db.QueryRow(ctx,
		`INSERT INTO `+person.Table+` (name, surname, job, age) VALUES ($1, $2, $3, $4) RETURNING `+personColumns,
		record.Name, record.Surname, record.Job, record.Age,
	)

	created, err := scanPerson(row)
	if err != nil {
		return nil, errors.Wrap(err, "insert person")
	}
	return person.ToView(created), nil
}

// Update applies view onto the row identified by view.ID as a sparse patch:
// blank strings and negative ages leave the stored value in place.
//
// It returns nil when no such row exists. When the patch leaves the stored
// row unchanged (including an all-blank body), the stored row is returned
// without a write.
func (r *PersonnelRepository) Update(ctx context.Context, view *person.PersonView) (*person.PersonView, error) {
	if view == nil {
		return nil, nil
	}

	current, err := r.findRecord(ctx, view.ID)
	if err != nil || current == nil {
		return nil, err
	}

	merged := current.Patch(view)
	if merged == *current {
		return person.ToView(current), nil
	}

	row := r.db.QueryRow(ctx,
		`UPDATE `+person.Table+` SET name = $2, surname = $3, job = $4, age = $5 WHERE id = $1 RETURNING `+personColumns,
		merged.ID, merged.Name, merged.Surname, merged.Job, merged.Age,
	)

	updated, err := scanPerson(row)
	if errors.Is(err, pgx.ErrNoRows) {
		// Deleted between the read and the write.
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "update person %d", merged.ID)
	}
	return person.ToView(updated), nil
}

// Delete removes the row with id. It reports false when no row was removed.
func (r *PersonnelRepository) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM `+person.Table+` WHERE id = $1`, id)
	if err != nil {
		return false, errors.Wrapf(err, "delete person %d", id)
	}
	return tag.RowsAffected() > 0, nil
}
