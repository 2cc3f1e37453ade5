package character

import (
	"context"
	"log/slog"
	"regexp"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FACorreiaa/go-starwars-favorites/internal/types"
)

var characterColumns = []string{"id", "name", "height", "gender"}

func TestPostgresCharacterRepo(t *testing.T) {
	ctx := context.Background()

	t.Run("Get", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()
		repo := NewPostgresCharacterRepo(mock, slog.Default())

		mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, name, height, gender FROM characters WHERE id = $1`)).
			WithArgs(int64(1)).
			WillReturnRows(pgxmock.NewRows(characterColumns).AddRow(int64(1), "Luke Skywalker", 172, "male"))

		c, err := repo.Get(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, &types.Character{ID: 1, Name: "Luke Skywalker", Height: 172, Gender: "male"}, c)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Get missing", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()
		repo := NewPostgresCharacterRepo(mock, slog.Default())

		mock.ExpectQuery("SELECT id, name, height, gender FROM characters").
			WithArgs(int64(2)).
			WillReturnError(pgx.ErrNoRows)

		_, err = repo.Get(ctx, 2)
		assert.ErrorIs(t, err, types.ErrNotFound)
	})

	t.Run("Create duplicate", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()
		repo := NewPostgresCharacterRepo(mock, slog.Default())

		mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO characters (name, height, gender) VALUES ($1, $2, $3)`)).
			WithArgs("Yoda", 66, "male").
			WillReturnError(&pgconn.PgError{Code: "23505"})

		_, err = repo.Create(ctx, "Yoda", 66, "male")
		assert.ErrorIs(t, err, types.ErrConflict)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Update keeps absent fields", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()
		repo := NewPostgresCharacterRepo(mock, slog.Default())
		height := 175

		mock.ExpectQuery("UPDATE characters").
			WithArgs(int64(1), (*string)(nil), &height, (*string)(nil)).
			WillReturnRows(pgxmock.NewRows(characterColumns).AddRow(int64(1), "Luke Skywalker", 175, "male"))

		c, err := repo.Update(ctx, 1, types.UpdateCharacterRequest{Height: &height})
		require.NoError(t, err)
		assert.Equal(t, 175, c.Height)
		assert.Equal(t, "male", c.Gender)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Delete cascades in schema, reports missing rows", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()
		repo := NewPostgresCharacterRepo(mock, slog.Default())

		mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM characters WHERE id = $1`)).
			WithArgs(int64(3)).
			WillReturnResult(pgxmock.NewResult("DELETE", 0))

		assert.ErrorIs(t, repo.Delete(ctx, 3), types.ErrNotFound)
	})
}
