package favorites

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"

	database "github.com/FACorreiaa/go-starwars-favorites/app/db"
	"github.com/FACorreiaa/go-starwars-favorites/internal/types"
)

var _ Repository = (*PostgresFavoritesRepo)(nil)

// Repository defines the contract for the three user favorite join tables.
type Repository interface {
	UserExists(ctx context.Context, userID int64) (bool, error)
	TargetExists(ctx context.Context, kind types.FavoriteKind, targetID int64) (bool, error)
	// AddFavorite always inserts a new row; duplicates are allowed.
	AddFavorite(ctx context.Context, kind types.FavoriteKind, userID, targetID int64) (*types.Favorite, error)
	// RemoveFavorite deletes a single matching row, the oldest one.
	RemoveFavorite(ctx context.Context, kind types.FavoriteKind, userID, targetID int64) error
	ListFavoritePlanets(ctx context.Context, userID int64) ([]types.FavoritePlanetEntry, error)
	ListFavoriteCharacters(ctx context.Context, userID int64) ([]types.FavoriteCharacterEntry, error)
	ListFavoriteStarships(ctx context.Context, userID int64) ([]types.FavoriteStarshipEntry, error)
}

// joinTable returns the favorite table and the target table for kind.
func joinTable(kind types.FavoriteKind) (favTable, targetTable string, err error) {
	switch kind {
	case types.FavoritePlanet:
		return "favorite_planets", "planets", nil
	case types.FavoriteCharacter:
		return "favorite_characters", "characters", nil
	case types.FavoriteStarship:
		return "favorite_starships", "starships", nil
	}
	return "", "", fmt.Errorf("unknown favorite kind %q", kind)
}

type PostgresFavoritesRepo struct {
	logger *slog.Logger
	db     database.DB
}

func NewPostgresFavoritesRepo(db database.DB, logger *slog.Logger) *PostgresFavoritesRepo {
	return &PostgresFavoritesRepo{
		logger: logger,
		db:     db,
	}
}

func (r *PostgresFavoritesRepo) UserExists(ctx context.Context, userID int64) (bool, error) {
	ctx, span := otel.Tracer("FavoritesRepo").Start(ctx, "UserExists", trace.WithAttributes(
		semconv.DBSystemPostgreSQL,
		attribute.String("db.sql.table", "users"),
		attribute.Int64("db.user.id", userID),
	))
	defer span.End()

	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE id = $1)`, userID).Scan(&exists)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "DB query failed")
		return false, fmt.Errorf("database error checking user: %w", err)
	}
	return exists, nil
}

func (r *PostgresFavoritesRepo) TargetExists(ctx context.Context, kind types.FavoriteKind, targetID int64) (bool, error) {
	_, targetTable, err := joinTable(kind)
	if err != nil {
		return false, err
	}

	ctx, span := otel.Tracer("FavoritesRepo").Start(ctx, "TargetExists", trace.WithAttributes(
		semconv.DBSystemPostgreSQL,
		attribute.String("db.sql.table", targetTable),
		attribute.Int64("target.id", targetID),
	))
	defer span.End()

	var exists bool
	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE id = $1)`, targetTable)
	if err := r.db.QueryRow(ctx, query, targetID).Scan(&exists); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "DB query failed")
		return false, fmt.Errorf("database error checking %s: %w", kind, err)
	}
	return exists, nil
}

func (r *PostgresFavoritesRepo) AddFavorite(ctx context.Context, kind types.FavoriteKind, userID, targetID int64) (*types.Favorite, error) {
	favTable, _, err := joinTable(kind)
	if err != nil {
		return nil, err
	}

	ctx, span := otel.Tracer("FavoritesRepo").Start(ctx, "AddFavorite", trace.WithAttributes(
		semconv.DBSystemPostgreSQL,
		attribute.String("db.operation", "INSERT"),
		attribute.String("db.sql.table", favTable),
		attribute.Int64("db.user.id", userID),
		attribute.Int64("target.id", targetID),
	))
	defer span.End()

	l := r.logger.With(slog.String("method", "AddFavorite"), slog.String("kind", string(kind)),
		slog.Int64("userID", userID), slog.Int64("targetID", targetID))

	fav := types.Favorite{Kind: kind}
	query := fmt.Sprintf(`INSERT INTO %s (user_id, %s) VALUES ($1, $2) RETURNING id, user_id, %s`,
		favTable, kind.TargetColumn(), kind.TargetColumn())
	err = r.db.QueryRow(ctx, query, userID, targetID).Scan(&fav.ID, &fav.UserID, &fav.TargetID)
	if err != nil {
		span.RecordError(err)
		// The user or target vanished between the existence check and the insert.
		if database.IsForeignKeyViolation(err) {
			span.SetStatus(codes.Error, "Foreign key violation")
			return nil, fmt.Errorf("favorite %s references a missing row: %w", kind, types.ErrNotFound)
		}
		l.ErrorContext(ctx, "Failed to insert favorite", slog.Any("error", err))
		span.SetStatus(codes.Error, "DB INSERT failed")
		return nil, fmt.Errorf("database error adding favorite %s: %w", kind, err)
	}

	l.InfoContext(ctx, "Favorite added", slog.Int64("favoriteID", fav.ID))
	span.SetStatus(codes.Ok, "Favorite added")
	return &fav, nil
}

func (r *PostgresFavoritesRepo) RemoveFavorite(ctx context.Context, kind types.FavoriteKind, userID, targetID int64) error {
	favTable, _, err := joinTable(kind)
	if err != nil {
		return err
	}

	ctx, span := otel.Tracer("FavoritesRepo").Start(ctx, "RemoveFavorite", trace.WithAttributes(
		semconv.DBSystemPostgreSQL,
		attribute.String("db.operation", "DELETE"),
		attribute.String("db.sql.table", favTable),
		attribute.Int64("db.user.id", userID),
		attribute.Int64("target.id", targetID),
	))
	defer span.End()

	l := r.logger.With(slog.String("method", "RemoveFavorite"), slog.String("kind", string(kind)),
		slog.Int64("userID", userID), slog.Int64("targetID", targetID))

	query := fmt.Sprintf(`
        DELETE FROM %[1]s
        WHERE id = (
            SELECT id FROM %[1]s
            WHERE user_id = $1 AND %[2]s = $2
            ORDER BY id
            LIMIT 1
        )`, favTable, kind.TargetColumn())

	tag, err := r.db.Exec(ctx, query, userID, targetID)
	if err != nil {
		l.ErrorContext(ctx, "Failed to delete favorite", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "DB DELETE failed")
		return fmt.Errorf("database error removing favorite %s: %w", kind, err)
	}
	if tag.RowsAffected() == 0 {
		span.SetStatus(codes.Error, "Favorite not found")
		return fmt.Errorf("favorite %s %d for user %d: %w", kind, targetID, userID, types.ErrNotFound)
	}

	l.InfoContext(ctx, "Favorite removed")
	span.SetStatus(codes.Ok, "Favorite removed")
	return nil
}

// listFavorites runs a join query for one favorite table and scans every row
// with scan. The result is never nil.
func listFavorites[T any](ctx context.Context, r *PostgresFavoritesRepo, spanName, query string, userID int64,
	scan func(pgx.Rows) (T, error)) ([]T, error) {
	ctx, span := otel.Tracer("FavoritesRepo").Start(ctx, spanName, trace.WithAttributes(
		semconv.DBSystemPostgreSQL,
		attribute.Int64("db.user.id", userID),
	))
	defer span.End()

	l := r.logger.With(slog.String("method", spanName), slog.Int64("userID", userID))

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		l.ErrorContext(ctx, "Failed to query favorites", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "DB query failed")
		return nil, fmt.Errorf("database error fetching favorites: %w", err)
	}
	defer rows.Close()

	entries := make([]T, 0)
	for rows.Next() {
		e, err := scan(rows)
		if err != nil {
			l.ErrorContext(ctx, "Failed to scan favorite row", slog.Any("error", err))
			span.RecordError(err)
			return nil, fmt.Errorf("database error scanning favorite: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("database error reading favorites: %w", err)
	}

	span.SetStatus(codes.Ok, "Favorites fetched")
	return entries, nil
}

func (r *PostgresFavoritesRepo) ListFavoritePlanets(ctx context.Context, userID int64) ([]types.FavoritePlanetEntry, error) {
	query := `
        SELECT f.id, p.id, p.name, p.population
        FROM favorite_planets f
        JOIN planets p ON p.id = f.planet_id
        WHERE f.user_id = $1
        ORDER BY f.id`
	return listFavorites(ctx, r, "ListFavoritePlanets", query, userID, func(rows pgx.Rows) (types.FavoritePlanetEntry, error) {
		var e types.FavoritePlanetEntry
		err := rows.Scan(&e.FavoritePlanetID, &e.Planet.ID, &e.Planet.Name, &e.Planet.Population)
		return e, err
	})
}

func (r *PostgresFavoritesRepo) ListFavoriteCharacters(ctx context.Context, userID int64) ([]types.FavoriteCharacterEntry, error) {
	query := `
        SELECT f.id, c.id, c.name, c.height, c.gender
        FROM favorite_characters f
        JOIN characters c ON c.id = f.character_id
        WHERE f.user_id = $1
        ORDER BY f.id`
	return listFavorites(ctx, r, "ListFavoriteCharacters", query, userID, func(rows pgx.Rows) (types.FavoriteCharacterEntry, error) {
		var e types.FavoriteCharacterEntry
		err := rows.Scan(&e.FavoriteCharacterID, &e.Character.ID, &e.Character.Name, &e.Character.Height, &e.Character.Gender)
		return e, err
	})
}

func (r *PostgresFavoritesRepo) ListFavoriteStarships(ctx context.Context, userID int64) ([]types.FavoriteStarshipEntry, error) {
	query := `
        SELECT f.id, s.id, s.model, s.passengers
        FROM favorite_starships f
        JOIN starships s ON s.id = f.starship_id
        WHERE f.user_id = $1
        ORDER BY f.id`
	return listFavorites(ctx, r, "ListFavoriteStarships", query, userID, func(rows pgx.Rows) (types.FavoriteStarshipEntry, error) {
		var e types.FavoriteStarshipEntry
		err := rows.Scan(&e.FavoriteStarshipID, &e.Starship.ID, &e.Starship.Model, &e.Starship.Passengers)
		return e, err
	})
}
