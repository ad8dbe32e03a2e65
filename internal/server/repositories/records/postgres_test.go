package records

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"github.com/jfrjs/publicada/internal/common"
	"github.com/jfrjs/publicada/internal/server/models"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewPostgresRepository(db), mock
}

func TestPostgresGet_Found(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	updated := time.Now()
	rows := sqlmock.NewRows([]string{"id", "name", "email", "updated_at"}).
		AddRow("u-1", "Alice", "alice@example.com", updated)
	mock.ExpectQuery(`SELECT\s+id,\s*name,\s*email,\s*updated_at\s+FROM\s+records`).
		WithArgs("u-1").
		WillReturnRows(rows)

	got, err := repo.Get(context.Background(), "u-1")
	require.NoError(t, err)
	require.Equal(t, "u-1", got.ID)
	require.Equal(t, "Alice", got.Name)
	require.Equal(t, "alice@example.com", got.Email)
}

func TestPostgresGet_NotFound(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(`SELECT\s+id,\s*name,\s*email`).
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.Get(context.Background(), "missing")
	require.ErrorIs(t, err, common.ErrorNotFound)
}

func TestPostgresPut_Upserts(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectExec(`INSERT\s+INTO\s+records.*ON\s+CONFLICT`).
		WithArgs("u-1", "Alice", "alice@example.com").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Put(context.Background(), &models.Record{ID: "u-1", Name: "Alice", Email: "alice@example.com"})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresDelete_Success(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectExec(`DELETE\s+FROM\s+records`).
		WithArgs("u-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Delete(context.Background(), "u-1"))
}

func TestPostgresDelete_NotFound(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectExec(`DELETE\s+FROM\s+records`).
		WithArgs("missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), "missing")
	require.ErrorIs(t, err, common.ErrorNotFound)
}

func TestPostgresDelete_DBError(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectExec(`DELETE\s+FROM\s+records`).
		WithArgs("u-1").
		WillReturnError(errors.New("db down"))

	require.Error(t, repo.Delete(context.Background(), "u-1"))
}
