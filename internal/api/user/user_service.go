package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/crypto/bcrypt"

	"github.com/FACorreiaa/go-starwars-favorites/app/cache"
	"github.com/FACorreiaa/go-starwars-favorites/internal/api"
	"github.com/FACorreiaa/go-starwars-favorites/internal/types"
)

var _ UserService = (*UserServiceImpl)(nil)

// UserService defines the business logic contract for users.
type UserService interface {
	ListUsers(ctx context.Context) ([]types.User, error)
	GetUser(ctx context.Context, id int64) (*types.User, error)
	CreateUser(ctx context.Context, req types.CreateUserRequest) (*types.User, error)
	UpdateUser(ctx context.Context, id int64, req types.UpdateUserRequest) (*types.User, error)
	DeleteUser(ctx context.Context, id int64) error
}

type UserServiceImpl struct {
	logger *slog.Logger
	repo   UserRepo
	cache  *cache.Store
	cost   int
}

func NewUserService(repo UserRepo, store *cache.Store, logger *slog.Logger) *UserServiceImpl {
	return &UserServiceImpl{
		logger: logger,
		repo:   repo,
		cache:  store,
		cost:   bcrypt.DefaultCost,
	}
}

// bcrypt only accepts passwords up to 72 bytes; the validator counts runes.
const maxPasswordBytes = 72

func (s *UserServiceImpl) hashPassword(password string) (string, error) {
	if len(password) > maxPasswordBytes {
		return "", types.NewValidationError(fmt.Sprintf("field password must be at most %d bytes long", maxPasswordBytes))
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", types.NewValidationError(fmt.Sprintf("field password must be at most %d bytes long", maxPasswordBytes))
		}
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}

func (s *UserServiceImpl) ListUsers(ctx context.Context) ([]types.User, error) {
	ctx, span := otel.Tracer("UserService").Start(ctx, "ListUsers")
	defer span.End()

	users, err := cache.Remember(s.cache, cache.KeyUsers, func() ([]types.User, error) {
		return s.repo.ListUsers(ctx)
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to list users", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to list users")
		return nil, fmt.Errorf("error listing users: %w", err)
	}

	span.SetStatus(codes.Ok, "Users listed")
	return users, nil
}

func (s *UserServiceImpl) GetUser(ctx context.Context, id int64) (*types.User, error) {
	ctx, span := otel.Tracer("UserService").Start(ctx, "GetUser", trace.WithAttributes(
		attribute.Int64("user.id", id),
	))
	defer span.End()

	u, err := s.repo.GetUserByID(ctx, id)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to fetch user")
		return nil, fmt.Errorf("error fetching user: %w", err)
	}

	span.SetStatus(codes.Ok, "User fetched")
	return u, nil
}

// CreateUser requires email, password and is_active. The password is stored
// as a bcrypt hash.
func (s *UserServiceImpl) CreateUser(ctx context.Context, req types.CreateUserRequest) (*types.User, error) {
	ctx, span := otel.Tracer("UserService").Start(ctx, "CreateUser")
	defer span.End()

	l := s.logger.With(slog.String("method", "CreateUser"))

	if err := api.ValidateStruct(req); err != nil {
		l.WarnContext(ctx, "Invalid user payload", slog.Any("error", err))
		span.SetStatus(codes.Error, "Validation failed")
		return nil, err
	}

	hashed, err := s.hashPassword(*req.Password)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Password hashing failed")
		return nil, err
	}

	u, err := s.repo.CreateUser(ctx, *req.Email, hashed, *req.IsActive)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to create user")
		return nil, fmt.Errorf("error creating user: %w", err)
	}
	s.cache.Flush()

	l.InfoContext(ctx, "User created", slog.Int64("userID", u.ID))
	span.SetStatus(codes.Ok, "User created")
	return u, nil
}

func (s *UserServiceImpl) UpdateUser(ctx context.Context, id int64, req types.UpdateUserRequest) (*types.User, error) {
	ctx, span := otel.Tracer("UserService").Start(ctx, "UpdateUser", trace.WithAttributes(
		attribute.Int64("user.id", id),
	))
	defer span.End()

	if err := api.ValidateStruct(req); err != nil {
		span.SetStatus(codes.Error, "Validation failed")
		return nil, err
	}

	params := UpdateParams{Email: req.Email, IsActive: req.IsActive}
	if req.Password != nil {
		hashed, err := s.hashPassword(*req.Password)
		if err != nil {
			span.RecordError(err)
			return nil, err
		}
		params.PasswordHash = &hashed
	}

	u, err := s.repo.UpdateUser(ctx, id, params)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to update user")
		return nil, fmt.Errorf("error updating user: %w", err)
	}
	s.cache.Flush()

	span.SetStatus(codes.Ok, "User updated")
	return u, nil
}

func (s *UserServiceImpl) DeleteUser(ctx context.Context, id int64) error {
	ctx, span := otel.Tracer("UserService").Start(ctx, "DeleteUser", trace.WithAttributes(
		attribute.Int64("user.id", id),
	))
	defer span.End()

	if err := s.repo.DeleteUser(ctx, id); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to delete user")
		return fmt.Errorf("error deleting user: %w", err)
	}
	s.cache.Flush()

	span.SetStatus(codes.Ok, "User deleted")
	return nil
}
