package starship

import (
	"context"
	"log/slog"
	"regexp"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FACorreiaa/go-starwars-favorites/internal/types"
)

func newMockRepo(t *testing.T) (*PostgresStarshipRepo, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return NewPostgresStarshipRepo(mock, slog.Default()), mock
}

func TestStarshipRepo_List(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, model, passengers FROM starships ORDER BY id`)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "model", "passengers"}).
			AddRow(int64(1), "T-65 X-wing", 0).
			AddRow(int64(2), "YT-1300", 6))

	ships, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, ships, 2)
	assert.Equal(t, "YT-1300", ships[1].Model)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStarshipRepo_Create(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO starships (model, passengers)`)).
		WithArgs("Lambda-class", 20).
		WillReturnRows(pgxmock.NewRows([]string{"id", "model", "passengers"}).AddRow(int64(3), "Lambda-class", 20))

	ship, err := repo.Create(context.Background(), "Lambda-class", 20)
	require.NoError(t, err)
	assert.Equal(t, &types.Starship{ID: 3, Model: "Lambda-class", Passengers: 20}, ship)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStarshipRepo_UpdateMissing(t *testing.T) {
	repo, mock := newMockRepo(t)
	model := "TIE/LN"

	mock.ExpectQuery("UPDATE starships").
		WithArgs(int64(40), &model, (*int)(nil)).
		WillReturnError(pgx.ErrNoRows)

	_, err := repo.Update(context.Background(), 40, types.UpdateStarshipRequest{Model: &model})
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestStarshipRepo_Delete(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM starships WHERE id = $1`)).
		WithArgs(int64(2)).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	require.NoError(t, repo.Delete(context.Background(), 2))
	assert.NoError(t, mock.ExpectationsWereMet())
}
