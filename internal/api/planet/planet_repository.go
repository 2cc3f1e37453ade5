package planet

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

var _ Repository = (*PostgresPlanetRepo)(nil)

// Repository defines the contract for planet persistence.
type Repository interface {
	List(ctx context.Context) ([]types.Planet, error)
	Get(ctx context.Context, id int64) (*types.Planet, error)
	Create(ctx context.Context, name string, population int64) (*types.Planet, error)
	// Update applies only the non-nil fields of params.
	Update(ctx context.Context, id int64, params types.UpdatePlanetRequest) (*types.Planet, error)
	// Delete removes the planet; favorite_planets rows go with it (ON DELETE CASCADE).
	Delete(ctx context.Context, id int64) error
}

type PostgresPlanetRepo struct {
	logger *slog.Logger
	db     database.DB
}

func NewPostgresPlanetRepo(db database.DB, logger *slog.Logger) *PostgresPlanetRepo {
	return &PostgresPlanetRepo{
		logger: logger,
		db:     db,
	}
}

func (r *PostgresPlanetRepo) List(ctx context.Context) ([]types.Planet, error) {
	ctx, span := otel.Tracer("PlanetRepo").Start(ctx, "List", trace.WithAttributes(
		semconv.DBSystemPostgreSQL,
		attribute.String("db.sql.table", "planets"),
	))
	defer span.End()

	l := r.logger.With(slog.String("method", "List"))

	rows, err := r.db.Query(ctx, `SELECT id, name, population FROM planets ORDER BY id`)
	if err != nil {
		l.ErrorContext(ctx, "Failed to query planets", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "DB query failed")
		return nil, fmt.Errorf("database error fetching planets: %w", err)
	}
	defer rows.Close()

	planets := make([]types.Planet, 0)
	for rows.Next() {
		var p types.Planet
		if err := rows.Scan(&p.ID, &p.Name, &p.Population); err != nil {
			l.ErrorContext(ctx, "Failed to scan planet row", slog.Any("error", err))
			span.RecordError(err)
			return nil, fmt.Errorf("database error scanning planet: %w", err)
		}
		planets = append(planets, p)
	}
	if err := rows.Err(); err != nil {
		l.ErrorContext(ctx, "Error iterating planet rows", slog.Any("error", err))
		span.RecordError(err)
		return nil, fmt.Errorf("database error reading planets: %w", err)
	}

	l.DebugContext(ctx, "Fetched planets", slog.Int("count", len(planets)))
	span.SetStatus(codes.Ok, "Planets fetched")
	return planets, nil
}

func (r *PostgresPlanetRepo) Get(ctx context.Context, id int64) (*types.Planet, error) {
	ctx, span := otel.Tracer("PlanetRepo").Start(ctx, "Get", trace.WithAttributes(
		semconv.DBSystemPostgreSQL,
		attribute.String("db.sql.table", "planets"),
		attribute.Int64("planet.id", id),
	))
	defer span.End()

	var p types.Planet
	err := r.db.QueryRow(ctx, `SELECT id, name, population FROM planets WHERE id = $1`, id).
		Scan(&p.ID, &p.Name, &p.Population)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			span.SetStatus(codes.Error, "Planet not found")
			return nil, fmt.Errorf("planet %d: %w", id, types.ErrNotFound)
		}
		r.logger.ErrorContext(ctx, "Failed to fetch planet", slog.Int64("planetID", id), slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "DB query failed")
		return nil, fmt.Errorf("database error fetching planet: %w", err)
	}

	span.SetStatus(codes.Ok, "Planet fetched")
	return &p, nil
}

func (r *PostgresPlanetRepo) Create(ctx context.Context, name string, population int64) (*types.Planet, error) {
	ctx, span := otel.Tracer("PlanetRepo").Start(ctx, "Create", trace.WithAttributes(
		semconv.DBSystemPostgreSQL,
		attribute.String("db.operation", "INSERT"),
		attribute.String("db.sql.table", "planets"),
	))
	defer span.End()

	l := r.logger.With(slog.String("method", "Create"), slog.String("name", name))

	var p types.Planet
	err := r.db.QueryRow(ctx,
		`INSERT INTO planets (name, population) VALUES ($1, $2) RETURNING id, name, population`,
		name, population,
	).Scan(&p.ID, &p.Name, &p.Population)
	if err != nil {
		span.RecordError(err)
		if database.IsUniqueViolation(err) {
			l.WarnContext(ctx, "Planet name already taken")
			span.SetStatus(codes.Error, "Unique violation")
			return nil, fmt.Errorf("planet %q already exists: %w", name, types.ErrConflict)
		}
		l.ErrorContext(ctx, "Failed to insert planet", slog.Any("error", err))
		span.SetStatus(codes.Error, "DB INSERT failed")
		return nil, fmt.Errorf("database error creating planet: %w", err)
	}

	l.InfoContext(ctx, "Planet created", slog.Int64("planetID", p.ID))
	span.SetStatus(codes.Ok, "Planet created")
	return &p, nil
}

func (r *PostgresPlanetRepo) Update(ctx context.Context, id int64, params types.UpdatePlanetRequest) (*types.Planet, error) {
	ctx, span := otel.Tracer("PlanetRepo").Start(ctx, "Update", trace.WithAttributes(
		semconv.DBSystemPostgreSQL,
		attribute.String("db.operation", "UPDATE"),
		attribute.String("db.sql.table", "planets"),
		attribute.Int64("planet.id", id),
	))
	defer span.End()

	l := r.logger.With(slog.String("method", "Update"), slog.Int64("planetID", id))

	query := `
        UPDATE planets
        SET name = COALESCE($2, name),
            population = COALESCE($3, population)
        WHERE id = $1
        RETURNING id, name, population`

	var p types.Planet
	err := r.db.QueryRow(ctx, query, id, params.Name, params.Population).
		Scan(&p.ID, &p.Name, &p.Population)
	if err != nil {
		span.RecordError(err)
		switch {
		case errors.Is(err, pgx.ErrNoRows):
			span.SetStatus(codes.Error, "Planet not found")
			return nil, fmt.Errorf("planet %d: %w", id, types.ErrNotFound)
		case database.IsUniqueViolation(err):
			l.WarnContext(ctx, "Planet name already taken")
			span.SetStatus(codes.Error, "Unique violation")
			return nil, fmt.Errorf("planet name already exists: %w", types.ErrConflict)
		}
		l.ErrorContext(ctx, "Failed to update planet", slog.Any("error", err))
		span.SetStatus(codes.Error, "DB UPDATE failed")
		return nil, fmt.Errorf("database error updating planet: %w", err)
	}

	l.InfoContext(ctx, "Planet updated")
	span.SetStatus(codes.Ok, "Planet updated")
	return &p, nil
}

func (r *PostgresPlanetRepo) Delete(ctx context.Context, id int64) error {
	ctx, span := otel.Tracer("PlanetRepo").Start(ctx, "Delete", trace.WithAttributes(
		semconv.DBSystemPostgreSQL,
		attribute.String("db.operation", "DELETE"),
		attribute.String("db.sql.table", "planets"),
		attribute.Int64("planet.id", id),
	))
	defer span.End()

	l := r.logger.With(slog.String("method", "Delete"), slog.Int64("planetID", id))

	tag, err := r.db.Exec(ctx, `DELETE FROM planets WHERE id = $1`, id)
	if err != nil {
		l.ErrorContext(ctx, "Failed to delete planet", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "DB DELETE failed")
		return fmt.Errorf("database error deleting planet: %w", err)
	}
	if tag.RowsAffected() == 0 {
		span.SetStatus(codes.Error, "Planet not found")
		return fmt.Errorf("planet %d: %w", id, types.ErrNotFound)
	}

	l.InfoContext(ctx, "Planet deleted")
	span.SetStatus(codes.Ok, "Planet deleted")
	return nil
}
