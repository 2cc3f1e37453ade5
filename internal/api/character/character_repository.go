package character

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

var _ Repository = (*PostgresCharacterRepo)(nil)

// Repository defines the contract for character persistence.
type Repository interface {
	List(ctx context.Context) ([]types.Character, error)
	Get(ctx context.Context, id int64) (*types.Character, error)
	Create(ctx context.Context, name string, height int, gender string) (*types.Character, error)
	// Update applies only the non-nil fields of params.
	Update(ctx context.Context, id int64, params types.UpdateCharacterRequest) (*types.Character, error)
	// Delete removes the character; favorite_characters rows go with it (ON DELETE CASCADE).
	Delete(ctx context.Context, id int64) error
}

type PostgresCharacterRepo struct {
	logger *slog.Logger
	db     database.DB
}

func NewPostgresCharacterRepo(db database.DB, logger *slog.Logger) *PostgresCharacterRepo {
	return &PostgresCharacterRepo{
		logger: logger,
		db:     db,
	}
}

func (r *PostgresCharacterRepo) List(ctx context.Context) ([]types.Character, error) {
	ctx, span := otel.Tracer("CharacterRepo").Start(ctx, "List", trace.WithAttributes(
		semconv.DBSystemPostgreSQL,
		attribute.String("db.sql.table", "characters"),
	))
	defer span.End()

	l := r.logger.With(slog.String("method", "List"))

	rows, err := r.db.Query(ctx, `SELECT id, name, height, gender FROM characters ORDER BY id`)
	if err != nil {
		l.ErrorContext(ctx, "Failed to query characters", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "DB query failed")
		return nil, fmt.Errorf("database error fetching characters: %w", err)
	}
	defer rows.Close()

	characters := make([]types.Character, 0)
	for rows.Next() {
		var c types.Character
		if err := rows.Scan(&c.ID, &c.Name, &c.Height, &c.Gender); err != nil {
			l.ErrorContext(ctx, "Failed to scan character row", slog.Any("error", err))
			span.RecordError(err)
			return nil, fmt.Errorf("database error scanning character: %w", err)
		}
		characters = append(characters, c)
	}
	if err := rows.Err(); err != nil {
		l.ErrorContext(ctx, "Error iterating character rows", slog.Any("error", err))
		span.RecordError(err)
		return nil, fmt.Errorf("database error reading characters: %w", err)
	}

	l.DebugContext(ctx, "Fetched characters", slog.Int("count", len(characters)))
	span.SetStatus(codes.Ok, "Characters fetched")
	return characters, nil
}

func (r *PostgresCharacterRepo) Get(ctx context.Context, id int64) (*types.Character, error) {
	ctx, span := otel.Tracer("CharacterRepo").Start(ctx, "Get", trace.WithAttributes(
		semconv.DBSystemPostgreSQL,
		attribute.String("db.sql.table", "characters"),
		attribute.Int64("character.id", id),
	))
	defer span.End()

	var c types.Character
	err := r.db.QueryRow(ctx, `SELECT id, name, height, gender FROM characters WHERE id = $1`, id).
		Scan(&c.ID, &c.Name, &c.Height, &c.Gender)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			span.SetStatus(codes.Error, "Character not found")
			return nil, fmt.Errorf("character %d: %w", id, types.ErrNotFound)
		}
		r.logger.ErrorContext(ctx, "Failed to fetch character", slog.Int64("characterID", id), slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "DB query failed")
		return nil, fmt.Errorf("database error fetching character: %w", err)
	}

	span.SetStatus(codes.Ok, "Character fetched")
	return &c, nil
}

func (r *PostgresCharacterRepo) Create(ctx context.Context, name string, height int, gender string) (*types.Character, error) {
	ctx, span := otel.Tracer("CharacterRepo").Start(ctx, "Create", trace.WithAttributes(
		semconv.DBSystemPostgreSQL,
		attribute.String("db.operation", "INSERT"),
		attribute.String("db.sql.table", "characters"),
	))
	defer span.End()

	l := r.logger.With(slog.String("method", "Create"), slog.String("name", name))

	var c types.Character
	err := r.db.QueryRow(ctx,
		`INSERT INTO characters (name, height, gender) VALUES ($1, $2, $3) RETURNING id, name, height, gender`,
		name, height, gender,
	).Scan(&c.ID, &c.Name, &c.Height, &c.Gender)
	if err != nil {
		span.RecordError(err)
		if database.IsUniqueViolation(err) {
			l.WarnContext(ctx, "Character name already taken")
			span.SetStatus(codes.Error, "Unique violation")
			return nil, fmt.Errorf("character %q already exists: %w", name, types.ErrConflict)
		}
		l.ErrorContext(ctx, "Failed to insert character", slog.Any("error", err))
		span.SetStatus(codes.Error, "DB INSERT failed")
		return nil, fmt.Errorf("database error creating character: %w", err)
	}

	l.InfoContext(ctx, "Character created", slog.Int64("characterID", c.ID))
	span.SetStatus(codes.Ok, "Character created")
	return &c, nil
}

func (r *PostgresCharacterRepo) Update(ctx context.Context, id int64, params types.UpdateCharacterRequest) (*types.Character, error) {
	ctx, span := otel.Tracer("CharacterRepo").Start(ctx, "Update", trace.WithAttributes(
		semconv.DBSystemPostgreSQL,
		attribute.String("db.operation", "UPDATE"),
		attribute.String("db.sql.table", "characters"),
		attribute.Int64("character.id", id),
	))
	defer span.End()

	l := r.logger.With(slog.String("method", "Update"), slog.Int64("characterID", id))

	query := `
        UPDATE characters
        SET name = COALESCE($2, name),
            height = COALESCE($3, height),
            gender = COALESCE($4, gender)
        WHERE id = $1
        RETURNING id, name, height, gender`

	var c types.Character
	err := r.db.QueryRow(ctx, query, id, params.Name, params.Height, params.Gender).
		Scan(&c.ID, &c.Name, &c.Height, &c.Gender)
	if err != nil {
		span.RecordError(err)
		switch {
		case errors.Is(err, pgx.ErrNoRows):
			span.SetStatus(codes.Error, "Character not found")
			return nil, fmt.Errorf("character %d: %w", id, types.ErrNotFound)
		case database.IsUniqueViolation(err):
			l.WarnContext(ctx, "Character name already taken")
			span.SetStatus(codes.Error, "Unique violation")
			return nil, fmt.Errorf("character name already exists: %w", types.ErrConflict)
		}
		l.ErrorContext(ctx, "Failed to update character", slog.Any("error", err))
		span.SetStatus(codes.Error, "DB UPDATE failed")
		return nil, fmt.Errorf("database error updating character: %w", err)
	}

	l.InfoContext(ctx, "Character updated")
	span.SetStatus(codes.Ok, "Character updated")
	return &c, nil
}

func (r *PostgresCharacterRepo) Delete(ctx context.Context, id int64) error {
	ctx, span := otel.Tracer("CharacterRepo").Start(ctx, "Delete", trace.WithAttributes(
		semconv.DBSystemPostgreSQL,
		attribute.String("db.operation", "DELETE"),
		attribute.String("db.sql.table", "characters"),
		attribute.Int64("character.id", id),
	))
	defer span.End()

	l := r.logger.With(slog.String("method", "Delete"), slog.Int64("characterID", id))

	tag, err := r.db.Exec(ctx, `DELETE FROM characters WHERE id = $1`, id)
	if err != nil {
		l.ErrorContext(ctx, "Failed to delete character", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "DB DELETE failed")
		return fmt.Errorf("database error deleting character: %w", err)
	}
	if tag.RowsAffected() == 0 {
		span.SetStatus(codes.Error, "Character not found")
		return fmt.Errorf("character %d: %w", id, types.ErrNotFound)
	}

	l.InfoContext(ctx, "Character deleted")
	span.SetStatus(codes.Ok, "Character deleted")
	return nil
}
