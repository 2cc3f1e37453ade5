package starship

import (
	"context"
	"errors"
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

var _ Repository = (*PostgresStarshipRepo)(nil)

// Repository defines the contract for starship persistence.
type Repository interface {
	List(ctx context.Context) ([]types.Starship, error)
	Get(ctx context.Context, id int64) (*types.Starship, error)
	Create(ctx context.Context, model string, passengers int) (*types.Starship, error)
	// Update applies only the non-nil fields of params.
	Update(ctx context.Context, id int64, params types.UpdateStarshipRequest) (*types.Starship, error)
	// Delete removes the starship; favorite_starships rows go with it (ON DELETE CASCADE).
	Delete(ctx context.Context, id int64) error
}

type PostgresStarshipRepo struct {
	logger *slog.Logger
	db     database.DB
}

func NewPostgresStarshipRepo(db database.DB, logger *slog.Logger) *PostgresStarshipRepo {
	return &PostgresStarshipRepo{
		logger: logger,
		db:     db,
	}
}

func (r *PostgresStarshipRepo) List(ctx context.Context) ([]types.Starship, error) {
	ctx, span := otel.Tracer("StarshipRepo").Start(ctx, "List", trace.WithAttributes(
		semconv.DBSystemPostgreSQL,
		attribute.String("db.sql.table", "starships"),
	))
	defer span.End()

	l := r.logger.With(slog.String("method", "List"))

	rows, err := r.db.Query(ctx, `SELECT id, model, passengers FROM starships ORDER BY id`)
	if err != nil {
		l.ErrorContext(ctx, "Failed to query starships", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "DB query failed")
		return nil, fmt.Errorf("database error fetching starships: %w", err)
	}
	defer rows.Close()

	starships := make([]types.Starship, 0)
	for rows.Next() {
		var ship types.Starship
		if err := rows.Scan(&ship.ID, &ship.Model, &ship.Passengers); err != nil {
			l.ErrorContext(ctx, "Failed to scan starship row", slog.Any("error", err))
			span.RecordError(err)
			return nil, fmt.Errorf("database error scanning starship: %w", err)
		}
		starships = append(starships, ship)
	}
	if err := rows.Err(); err != nil {
		l.ErrorContext(ctx, "Error iterating starship rows", slog.Any("error", err))
		span.RecordError(err)
		return nil, fmt.Errorf("database error reading starships: %w", err)
	}

	l.DebugContext(ctx, "Fetched starships", slog.Int("count", len(starships)))
	span.SetStatus(codes.Ok, "Starships fetched")
	return starships, nil
}

func (r *PostgresStarshipRepo) Get(ctx context.Context, id int64) (*types.Starship, error) {
	ctx, span := otel.Tracer("StarshipRepo").Start(ctx, "Get", trace.WithAttributes(
		semconv.DBSystemPostgreSQL,
		attribute.String("db.sql.table", "starships"),
		attribute.Int64("starship.id", id),
	))
	defer span.End()

	var ship types.Starship
	err := r.db.QueryRow(ctx, `SELECT id, model, passengers FROM starships WHERE id = $1`, id).
		Scan(&ship.ID, &ship.Model, &ship.Passengers)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			span.SetStatus(codes.Error, "Starship not found")
			return nil, fmt.Errorf("starship %d: %w", id, types.ErrNotFound)
		}
		r.logger.ErrorContext(ctx, "Failed to fetch starship", slog.Int64("starshipID", id), slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "DB query failed")
		return nil, fmt.Errorf("database error fetching starship: %w", err)
	}

	span.SetStatus(codes.Ok, "Starship fetched")
	return &ship, nil
}

func (r *PostgresStarshipRepo) Create(ctx context.Context, model string, passengers int) (*types.Starship, error) {
	ctx, span := otel.Tracer("StarshipRepo").Start(ctx, "Create", trace.WithAttributes(
		semconv.DBSystemPostgreSQL,
		attribute.String("db.operation", "INSERT"),
		attribute.String("db.sql.table", "starships"),
	))
	defer span.End()

	l := r.logger.With(slog.String("method", "Create"), slog.String("model", model))

	var ship types.Starship
	err := r.db.QueryRow(ctx,
		`INSERT INTO starships (model, passengers) VALUES ($1, $2) RETURNING id, model, passengers`,
		model, passengers,
	).Scan(&ship.ID, &ship.Model, &ship.Passengers)
	if err != nil {
		span.RecordError(err)
		if database.IsUniqueViolation(err) {
			l.WarnContext(ctx, "Starship model already taken")
			span.SetStatus(codes.Error, "Unique violation")
			return nil, fmt.Errorf("starship %q already exists: %w", model, types.ErrConflict)
		}
		l.ErrorContext(ctx, "Failed to insert starship", slog.Any("error", err))
		span.SetStatus(codes.Error, "DB INSERT failed")
		return nil, fmt.Errorf("database error creating starship: %w", err)
	}

	l.InfoContext(ctx, "Starship created", slog.Int64("starshipID", ship.ID))
	span.SetStatus(codes.Ok, "Starship created")
	return &ship, nil
}

func (r *PostgresStarshipRepo) Update(ctx context.Context, id int64, params types.UpdateStarshipRequest) (*types.Starship, error) {
	ctx, span := otel.Tracer("StarshipRepo").Start(ctx, "Update", trace.WithAttributes(
		semconv.DBSystemPostgreSQL,
		attribute.String("db.operation", "UPDATE"),
		attribute.String("db.sql.table", "starships"),
		attribute.Int64("starship.id", id),
	))
	defer span.End()

	l := r.logger.With(slog.String("method", "Update"), slog.Int64("starshipID", id))

	query := `
        UPDATE starships
        SET model = COALESCE($2, model),
            passengers = COALESCE($3, passengers)
        WHERE id = $1
        RETURNING id, model, passengers`

	var ship types.Starship
	err := r.db.QueryRow(ctx, query, id, params.Model, params.Passengers).
		Scan(&ship.ID, &ship.Model, &ship.Passengers)
	if err != nil {
		span.RecordError(err)
		switch {
		case errors.Is(err, pgx.ErrNoRows):
			span.SetStatus(codes.Error, "Starship not found")
			return nil, fmt.Errorf("starship %d: %w", id, types.ErrNotFound)
		case database.IsUniqueViolation(err):
			l.WarnContext(ctx, "Starship model already taken")
			span.SetStatus(codes.Error, "Unique violation")
			return nil, fmt.Errorf("starship model already exists: %w", types.ErrConflict)
		}
		l.ErrorContext(ctx, "Failed to update starship", slog.Any("error", err))
		span.SetStatus(codes.Error, "DB UPDATE failed")
		return nil, fmt.Errorf("database error updating starship: %w", err)
	}

	l.InfoContext(ctx, "Starship updated")
	span.SetStatus(codes.Ok, "Starship updated")
	return &ship, nil
}

func (r *PostgresStarshipRepo) Delete(ctx context.Context, id int64) error {
	ctx, span := otel.Tracer("StarshipRepo").Start(ctx, "Delete", trace.WithAttributes(
		semconv.DBSystemPostgreSQL,
		attribute.String("db.operation", "DELETE"),
		attribute.String("db.sql.table", "starships"),
		attribute.Int64("starship.id", id),
	))
	defer span.End()

	l := r.logger.With(slog.String("method", "Delete"), slog.Int64("starshipID", id))

	tag, err := r.db.Exec(ctx, `DELETE FROM starships WHERE id = $1`, id)
	if err != nil {
		l.ErrorContext(ctx, "Failed to delete starship", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "DB DELETE failed")
		return fmt.Errorf("database error deleting starship: %w", err)
	}
	if tag.RowsAffected() == 0 {
		span.SetStatus(codes.Error, "Starship not found")
		return fmt.Errorf("starship %d: %w", id, types.ErrNotFound)
	}

	l.InfoContext(ctx, "Starship deleted")
	span.SetStatus(codes.Ok, "Starship deleted")
	return nil
}
