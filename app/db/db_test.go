package database

import (
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FACorreiaa/go-starwars-favorites/app/observability/metrics"
	"github.com/FACorreiaa/go-starwars-favorites/config"
)

func TestNewDatabaseConfig(t *testing.T) {
	logger := slog.Default()

	t.Run("From discrete fields", func(t *testing.T) {
		var cfg config.Config
		cfg.Repositories.Postgres.Host = "db"
		cfg.Repositories.Postgres.Port = "5432"
		cfg.Repositories.Postgres.Username = "postgres"
		cfg.Repositories.Postgres.Password = "secret"
		cfg.Repositories.Postgres.DB = "starwars"

		dbCfg, err := NewDatabaseConfig(&cfg, logger)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(dbCfg.ConnectionURL, "postgresql://postgres:secret@db:5432/starwars?"))
		assert.Contains(t, dbCfg.ConnectionURL, "sslmode=disable")
	})

	t.Run("URL rewrites postgres scheme", func(t *testing.T) {
		var cfg config.Config
		cfg.Repositories.Postgres.URL = "postgres://u:p@host:5432/sw"

		dbCfg, err := NewDatabaseConfig(&cfg, logger)
		require.NoError(t, err)
		assert.Equal(t, "postgresql://u:p@host:5432/sw", dbCfg.ConnectionURL)
	})

	t.Run("Missing host", func(t *testing.T) {
		_, err := NewDatabaseConfig(&config.Config{}, logger)
		assert.Error(t, err)
	})

	t.Run("Nil config", func(t *testing.T) {
		_, err := NewDatabaseConfig(nil, logger)
		assert.Error(t, err)
	})
}

func TestRunMigrations_RejectsUnknownScheme(t *testing.T) {
	err := RunMigrations("mysql://localhost/starwars", slog.Default())
	assert.Error(t, err)
}

func TestRollbackMigrations_RejectsNonPositiveSteps(t *testing.T) {
	err := RollbackMigrations("postgresql://localhost/starwars", 0, slog.Default())
	assert.Error(t, err)
}

func TestInstrumentedDB_PassesThrough(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	metrics.InitAppMetrics()
	db := NewInstrumentedDB(mock, metrics.Get())
	ctx := context.Background()

	mock.ExpectExec("DELETE FROM planets").WithArgs(int64(1)).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	mock.ExpectQuery("SELECT id FROM planets").WithArgs(int64(2)).
		WillReturnError(pgx.ErrNoRows)

	tag, err := db.Exec(ctx, "DELETE FROM planets WHERE id = $1", int64(1))
	require.NoError(t, err)
	assert.Equal(t, int64(1), tag.RowsAffected())

	var id int64
	err = db.QueryRow(ctx, "SELECT id FROM planets WHERE id = $1", int64(2)).Scan(&id)
	assert.ErrorIs(t, err, pgx.ErrNoRows)

	assert.NoError(t, mock.ExpectationsWereMet())
}
