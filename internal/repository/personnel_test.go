package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/deppfellow/personnel-api/internal/model/person"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	selectAllSQL  = `SELECT id, name, surname, job, age FROM personnel$`
	selectByIDSQL = `SELECT id, name, surname, job, age FROM personnel WHERE id = \$1`
	insertSQL     = `INSERT INTO personnel \(name, surname, job, age\) VALUES .+ RETURNING id, name, surname, job, age`
	updateSQL     = `UPDATE personnel SET name = \$2, surname = \$3, job = \$4, age = \$5 WHERE id = \$1 RETURNING id, name, surname, job, age`
	deleteSQL     = `DELETE FROM personnel WHERE id = \$1`
)

var columns = []string{"id", "name", "surname", "job", "age"}

func newMockRepository(t *testing.T) (*PersonnelRepository, pgxmock.PgxPoolIface) {
	t.Helper()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)

	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		mock.Close()
	})

	return NewPersonnelRepository(mock), mock
}

func TestListAll(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(selectAllSQL).WillReturnRows(
		mock.NewRows(columns).
			AddRow(int64(1), "Ada", "Lovelace", "Engineer", 36).
			AddRow(int64(2), "Alan", "Turing", "n/a", 0),
	)

	got, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []person.PersonView{
		{ID: 1, Name: "Ada", Surname: "Lovelace", Job: "Engineer", Age: 36},
		{ID: 2, Name: "Alan", Surname: "Turing", Job: "n/a", Age: 0},
	}, got)
}

func TestListAll_Empty(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(selectAllSQL).WillReturnRows(mock.NewRows(columns))

	got, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestListAll_StoreFailure(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(selectAllSQL).WillReturnError(errors.New("connection refused"))

	_, err := repo.ListAll(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "list personnel")
}

func TestFindByID(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(selectByIDSQL).WithArgs(int64(7)).WillReturnRows(
		mock.NewRows(columns).AddRow(int64(7), "Grace", "Hopper", "Admiral", 85),
	)

	got, err := repo.FindByID(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, &person.PersonView{ID: 7, Name: "Grace", Surname: "Hopper", Job: "Admiral", Age: 85}, got)
}

func TestFindByID_Absent(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(selectByIDSQL).WithArgs(int64(999)).WillReturnRows(mock.NewRows(columns))

	got, err := repo.FindByID(context.Background(), 999)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestCreate(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(insertSQL).WithArgs("Ada", "Lovelace", "n/a", 36).WillReturnRows(
		mock.NewRows(columns).AddRow(int64(1), "Ada", "Lovelace", "n/a", 36),
	)

	got, err := repo.Create(context.Background(), &person.PersonView{ID: 42, Name: "Ada", Surname: "Lovelace", Job: "n/a", Age: 36})
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.ID)
	assert.Equal(t, "Ada", got.Name)
}

func TestCreate_Rejected(t *testing.T) {
	repo, _ := newMockRepository(t)

	got, err := repo.Create(context.Background(), &person.PersonView{Name: "Ada", Age: -1})
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = repo.Create(context.Background(), nil)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestCreate_StoreFailure(t *testing.T) {
	repo, mock := newMockRepository(t)

	pgErr := &pgconn.PgError{Code: "22001", TableName: "personnel"}
	mock.ExpectQuery(insertSQL).WithArgs("Ada", "n/a", "n/a", 0).WillReturnError(pgErr)

	_, err := repo.Create(context.Background(), &person.PersonView{Name: "Ada", Surname: "n/a", Job: "n/a"})

	var got *pgconn.PgError
	require.ErrorAs(t, err, &got)
	assert.Equal(t, "22001", got.Code)
}

func TestUpdate_SparsePatch(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(selectByIDSQL).WithArgs(int64(1)).WillReturnRows(
		mock.NewRows(columns).AddRow(int64(1), "Ada", "Lovelace", "Engineer", 36),
	)
	mock.ExpectQuery(updateSQL).WithArgs(int64(1), "Ada", "Byron", "Engineer", 36).WillReturnRows(
		mock.NewRows(columns).AddRow(int64(1), "Ada", "Byron", "Engineer", 36),
	)

	got, err := repo.Update(context.Background(), &person.PersonView{ID: 1, Name: "  ", Surname: "Byron", Job: "", Age: -5})
	require.NoError(t, err)
	assert.Equal(t, &person.PersonView{ID: 1, Name: "Ada", Surname: "Byron", Job: "Engineer", Age: 36}, got)
}

func TestUpdate_Unchanged(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(selectByIDSQL).WithArgs(int64(1)).WillReturnRows(
		mock.NewRows(columns).AddRow(int64(1), "Ada", "Lovelace", "Engineer", 36),
	)

	got, err := repo.Update(context.Background(), &person.PersonView{ID: 1, Name: "Ada", Surname: "Lovelace", Job: "Engineer", Age: 36})
	require.NoError(t, err)
	assert.Equal(t, "Lovelace", got.Surname)
}

func TestUpdate_AllBlankIsNoOp(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(selectByIDSQL).WithArgs(int64(1)).WillReturnRows(
		mock.NewRows(columns).AddRow(int64(1), "Ada", "Lovelace", "Engineer", 36),
	)

	// Only the read is expected; ExpectationsWereMet fails on an extra write.
	got, err := repo.Update(context.Background(), &person.PersonView{ID: 1, Name: "", Surname: " ", Job: "", Age: -1})
	require.NoError(t, err)
	assert.Equal(t, &person.PersonView{ID: 1, Name: "Ada", Surname: "Lovelace", Job: "Engineer", Age: 36}, got)
}

func TestUpdate_DeletedBeforeWrite(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(selectByIDSQL).WithArgs(int64(1)).WillReturnRows(
		mock.NewRows(columns).AddRow(int64(1), "Ada", "Lovelace", "Engineer", 36),
	)
	mock.ExpectQuery(updateSQL).WithArgs(int64(1), "Ada", "Lovelace", "Engineer", 37).WillReturnRows(mock.NewRows(columns))

	got, err := repo.Update(context.Background(), &person.PersonView{ID: 1, Age: 37})
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestUpdate_Absent(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(selectByIDSQL).WithArgs(int64(999)).WillReturnRows(mock.NewRows(columns))

	got, err := repo.Update(context.Background(), &person.PersonView{ID: 999, Name: "Ghost"})
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestUpdate_ZeroAgeIsApplied(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(selectByIDSQL).WithArgs(int64(3)).WillReturnRows(
		mock.NewRows(columns).AddRow(int64(3), "Alan", "Turing", "n/a", 41),
	)
	mock.ExpectQuery(updateSQL).WithArgs(int64(3), "Alan", "Turing", "n/a", 0).WillReturnRows(
		mock.NewRows(columns).AddRow(int64(3), "Alan", "Turing", "n/a", 0),
	)

	got, err := repo.Update(context.Background(), &person.PersonView{ID: 3, Age: 0})
	require.NoError(t, err)
	assert.Equal(t, 0, got.Age)
}

func TestDelete(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectExec(deleteSQL).WithArgs(int64(1)).WillReturnResult(pgxmock.NewResult("DELETE", 1))
	mock.ExpectExec(deleteSQL).WithArgs(int64(1)).WillReturnResult(pgxmock.NewResult("DELETE", 0))

	deleted, err := repo.Delete(context.Background(), 1)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.Delete(context.Background(), 1)
	require.NoError(t, err)
	assert.False(t, deleted)
}
