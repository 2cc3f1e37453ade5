package user

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

var _ UserRepo = (*PostgresUserRepo)(nil)

// UpdateParams holds the already-hashed user columns to change. Nil means keep.
type UpdateParams struct {
	Email        *string
	PasswordHash *string
	IsActive     *bool
}

// UserRepo defines the contract for user persistence.
type UserRepo interface {
	ListUsers(ctx context.Context) ([]types.User, error)
	GetUserByID(ctx context.Context, id int64) (*types.User, error)
	CreateUser(ctx context.Context, email, passwordHash string, isActive bool) (*types.User, error)
	UpdateUser(ctx context.Context, id int64, params UpdateParams) (*types.User, error)
	// DeleteUser fails with types.ErrConflict while favorites still reference the user.
	DeleteUser(ctx context.Context, id int64) error
}

type PostgresUserRepo struct {
	logger *slog.Logger
	db     database.DB
}

func NewPostgresUserRepo(db database.DB, logger *slog.Logger) *PostgresUserRepo {
	return &PostgresUserRepo{
		logger: logger,
		db:     db,
	}
}

func (r *PostgresUserRepo) ListUsers(ctx context.Context) ([]types.User, error) {
	ctx, span := otel.Tracer("UserRepo").Start(ctx, "ListUsers", trace.WithAttributes(
		semconv.DBSystemPostgreSQL,
		attribute.String("db.sql.table", "users"),
	))
	defer span.End()

	l := r.logger.With(slog.String("method", "ListUsers"))

	rows, err := r.db.Query(ctx, `SELECT id, email, password_hash, is_active FROM users ORDER BY id`)
	if err != nil {
		l.ErrorContext(ctx, "Failed to query users", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "DB query failed")
		return nil, fmt.Errorf("database error fetching users: %w", err)
	}
	defer rows.Close()

	users := make([]types.User, 0)
	for rows.Next() {
		var u types.User
		if err := rows.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.IsActive); err != nil {
			l.ErrorContext(ctx, "Failed to scan user row", slog.Any("error", err))
			span.RecordError(err)
			return nil, fmt.Errorf("database error scanning user: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("database error reading users: %w", err)
	}

	span.SetStatus(codes.Ok, "Users fetched")
	return users, nil
}

func (r *PostgresUserRepo) GetUserByID(ctx context.Context, id int64) (*types.User, error) {
	ctx, span := otel.Tracer("UserRepo").Start(ctx, "GetUserByID", trace.WithAttributes(
		semconv.DBSystemPostgreSQL,
		attribute.String("db.sql.table", "users"),
		attribute.Int64("db.user.id", id),
	))
	defer span.End()

	var u types.User
	err := r.db.QueryRow(ctx,
		`SELECT id, email, password_hash, is_active FROM users WHERE id = $1`, id).
		Scan(&u.ID, &u.Email, &u.PasswordHash, &u.IsActive)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			span.SetStatus(codes.Error, "User not found")
			return nil, fmt.Errorf("user %d: %w", id, types.ErrNotFound)
		}
		r.logger.ErrorContext(ctx, "Failed to fetch user", slog.Int64("userID", id), slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "DB query failed")
		return nil, fmt.Errorf("database error fetching user: %w", err)
	}

	span.SetStatus(codes.Ok, "User fetched")
	return &u, nil
}

func (r *PostgresUserRepo) CreateUser(ctx context.Context, email, passwordHash string, isActive bool) (*types.User, error) {
	ctx, span := otel.Tracer("UserRepo").Start(ctx, "CreateUser", trace.WithAttributes(
		semconv.DBSystemPostgreSQL,
		attribute.String("db.operation", "INSERT"),
		attribute.String("db.sql.table", "users"),
	))
	defer span.End()

	l := r.logger.With(slog.String("method", "CreateUser"), slog.String("email", email))

	var u types.User
	err := r.db.QueryRow(ctx,
		`INSERT INTO users (email, password_hash, is_active) VALUES ($1, $2, $3)
         RETURNING id, email, password_hash, is_active`,
		email, passwordHash, isActive,
	).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.IsActive)
	if err != nil {
		span.RecordError(err)
		if database.IsUniqueViolation(err) {
			l.WarnContext(ctx, "Email already registered")
			span.SetStatus(codes.Error, "Unique violation")
			return nil, fmt.Errorf("email %q already registered: %w", email, types.ErrConflict)
		}
		l.ErrorContext(ctx, "Failed to insert user", slog.Any("error", err))
		span.SetStatus(codes.Error, "DB INSERT failed")
		return nil, fmt.Errorf("database error creating user: %w", err)
	}

	l.InfoContext(ctx, "User created", slog.Int64("userID", u.ID))
	span.SetStatus(codes.Ok, "User created")
	return &u, nil
}

func (r *PostgresUserRepo) UpdateUser(ctx context.Context, id int64, params UpdateParams) (*types.User, error) {
	ctx, span := otel.Tracer("UserRepo").Start(ctx, "UpdateUser", trace.WithAttributes(
		semconv.DBSystemPostgreSQL,
		attribute.String("db.operation", "UPDATE"),
		attribute.String("db.sql.table", "users"),
		attribute.Int64("db.user.id", id),
	))
	defer span.End()

	l := r.logger.With(slog.String("method", "UpdateUser"), slog.Int64("userID", id))

	query := `
        UPDATE users
        SET email = COALESCE($2, email),
            password_hash = COALESCE($3, password_hash),
            is_active = COALESCE($4, is_active)
        WHERE id = $1
        RETURNING id, email, password_hash, is_active`

	var u types.User
	err := r.db.QueryRow(ctx, query, id, params.Email, params.PasswordHash, params.IsActive).
		Scan(&u.ID, &u.Email, &u.PasswordHash, &u.IsActive)
	if err != nil {
		span.RecordError(err)
		switch {
		case errors.Is(err, pgx.ErrNoRows):
			span.SetStatus(codes.Error, "User not found")
			return nil, fmt.Errorf("user %d: %w", id, types.ErrNotFound)
		case database.IsUniqueViolation(err):
			l.WarnContext(ctx, "Email already registered")
			span.SetStatus(codes.Error, "Unique violation")
			return nil, fmt.Errorf("email already registered: %w", types.ErrConflict)
		}
		l.ErrorContext(ctx, "Failed to update user", slog.Any("error", err))
		span.SetStatus(codes.Error, "DB UPDATE failed")
		return nil, fmt.Errorf("database error updating user: %w", err)
	}

	l.InfoContext(ctx, "User updated")
	span.SetStatus(codes.Ok, "User updated")
	return &u, nil
}

func (r *PostgresUserRepo) DeleteUser(ctx context.Context, id int64) error {
	ctx, span := otel.Tracer("UserRepo").Start(ctx, "DeleteUser", trace.WithAttributes(
		semconv.DBSystemPostgreSQL,
		attribute.String("db.operation", "DELETE"),
		attribute.String("db.sql.table", "users"),
		attribute.Int64("db.user.id", id),
	))
	defer span.End()

	l := r.logger.With(slog.String("method", "DeleteUser"), slog.Int64("userID", id))

	tag, err := r.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		span.RecordError(err)
		if database.IsForeignKeyViolation(err) {
			l.WarnContext(ctx, "User still has favorites")
			span.SetStatus(codes.Error, "Foreign key violation")
			return fmt.Errorf("user %d still referenced by favorites: %w", id, types.ErrConflict)
		}
		l.ErrorContext(ctx, "Failed to delete user", slog.Any("error", err))
		span.SetStatus(codes.Error, "DB DELETE failed")
		return fmt.Errorf("database error deleting user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		span.SetStatus(codes.Error, "User not found")
		return fmt.Errorf("user %d: %w", id, types.ErrNotFound)
	}

	l.InfoContext(ctx, "User deleted")
	span.SetStatus(codes.Ok, "User deleted")
	return nil
}
