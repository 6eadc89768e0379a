package postgres

import (
	"context"
	"errors"
	"testing"
	"testing/fstest"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testMigrations() fstest.MapFS {
	return fstest.MapFS{
		"migrations/002_second.up.sql":  {Data: []byte("CREATE TABLE second (id INT)")},
		"migrations/001_first.up.sql":   {Data: []byte("CREATE TABLE first (id INT)")},
		"migrations/001_first.down.sql": {Data: []byte("DROP TABLE first")},
	}
}

func TestUpMigrations(t *testing.T) {
	names, err := upMigrations(testMigrations())
	require.NoError(t, err)
	assert.Equal(t, []string{"001_first.up.sql", "002_second.up.sql"}, names)
}

func TestUpMigrations_Embedded(t *testing.T) {
	names, err := upMigrations(migrationsFS)
	require.NoError(t, err)
	require.NotEmpty(t, names)
	assert.Equal(t, "001_catalog.up.sql", names[0])
	assert.Equal(t, "004_change_feed.up.sql", names[len(names)-1])
}

func TestRunMigrations(t *testing.T) {
	ctx := context.Background()
	logger := zap.NewNop()

	t.Run("Applies only pending migrations", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectExec(`CREATE TABLE IF NOT EXISTS schema_migrations`).
			WillReturnResult(pgxmock.NewResult("CREATE", 0))

		mock.ExpectQuery(`FROM schema_migrations WHERE name`).
			WithArgs("001_first.up.sql").
			WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

		mock.ExpectQuery(`FROM schema_migrations WHERE name`).
			WithArgs("002_second.up.sql").
			WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))
		mock.ExpectBegin()
		mock.ExpectExec(`CREATE TABLE second`).
			WillReturnResult(pgxmock.NewResult("CREATE", 0))
		mock.ExpectExec(`INSERT INTO schema_migrations`).
			WithArgs("002_second.up.sql").
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		mock.ExpectCommit()

		err = runMigrations(ctx, mock, testMigrations(), logger)
		require.NoError(t, err)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failed migration rolls back", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectExec(`CREATE TABLE IF NOT EXISTS schema_migrations`).
			WillReturnResult(pgxmock.NewResult("CREATE", 0))
		mock.ExpectQuery(`FROM schema_migrations WHERE name`).
			WithArgs("001_first.up.sql").
			WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))
		mock.ExpectBegin()
		mock.ExpectExec(`CREATE TABLE first`).
			WillReturnError(errors.New("syntax error"))
		mock.ExpectRollback()

		err = runMigrations(ctx, mock, testMigrations(), logger)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "001_first.up.sql")

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
