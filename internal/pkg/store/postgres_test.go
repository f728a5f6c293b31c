package store

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupPostgresStoreTest(t *testing.T) (*PostgresStore, sqlmock.Sqlmock, func()) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")
	s := &PostgresStore{db: sqlxDB}

	cleanup := func() {
		sqlxDB.Close()
	}
	return s, mock, cleanup
}

func TestPostgresStore_Get(t *testing.T) {
	s, mock, cleanup := setupPostgresStoreTest(t)
	defer cleanup()

	rows := sqlmock.NewRows([]string{"value"}).AddRow([]byte(`{"email":"a@b.com"}`))
	mock.ExpectQuery("^SELECT value FROM kv_entries WHERE key").
		WithArgs(KeyRiderSession).
		WillReturnRows(rows)

	value, err := s.Get(context.Background(), KeyRiderSession)
	assert.NoError(t, err)
	assert.Equal(t, []byte(`{"email":"a@b.com"}`), value)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_GetNotFound(t *testing.T) {
	s, mock, cleanup := setupPostgresStoreTest(t)
	defer cleanup()

	mock.ExpectQuery("^SELECT value FROM kv_entries WHERE key").
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"value"}))

	_, err := s.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPostgresStore_Set(t *testing.T) {
	s, mock, cleanup := setupPostgresStoreTest(t)
	defer cleanup()

	mock.ExpectExec("^INSERT INTO kv_entries").
		WithArgs(KeyReportsLog, []byte(`[]`)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := s.Set(context.Background(), KeyReportsLog, []byte(`[]`))
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_Delete(t *testing.T) {
	s, mock, cleanup := setupPostgresStoreTest(t)
	defer cleanup()

	mock.ExpectExec("^DELETE FROM kv_entries WHERE key").
		WithArgs(KeyDriverSession).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := s.Delete(context.Background(), KeyDriverSession)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
