package starship

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/FACorreiaa/go-starwars-favorites/app/cache"
	"github.com/FACorreiaa/go-starwars-favorites/internal/api"
	"github.com/FACorreiaa/go-starwars-favorites/internal/types"
)

var _ Service = (*ServiceImpl)(nil)

// Service defines the business logic contract for starships.
type Service interface {
	ListStarships(ctx context.Context) ([]types.Starship, error)
	GetStarship(ctx context.Context, id int64) (*types.Starship, error)
	CreateStarship(ctx context.Context, req types.CreateStarshipRequest) (*types.Starship, error)
	UpdateStarship(ctx context.Context, id int64, req types.UpdateStarshipRequest) (*types.Starship, error)
	DeleteStarship(ctx context.Context, id int64) error
}

type ServiceImpl struct {
	logger *slog.Logger
	repo   Repository
	cache  *cache.Store
}

func NewStarshipService(repo Repository, store *cache.Store, logger *slog.Logger) *ServiceImpl {
	return &ServiceImpl{
		logger: logger,
		repo:   repo,
		cache:  store,
	}
}

// ListStarships returns every starship, served from the read cache when warm.
func (s *ServiceImpl) ListStarships(ctx context.Context) ([]types.Starship, error) {
	ctx, span := otel.Tracer("StarshipService").Start(ctx, "ListStarships")
	defer span.End()

	starships, err := cache.Remember(s.cache, cache.KeyStarships, func() ([]types.Starship, error) {
		return s.repo.List(ctx)
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to list starships", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to list starships")
		return nil, fmt.Errorf("error listing starships: %w", err)
	}

	span.SetStatus(codes.Ok, "Starships listed")
	return starships, nil
}

func (s *ServiceImpl) GetStarship(ctx context.Context, id int64) (*types.Starship, error) {
	ctx, span := otel.Tracer("StarshipService").Start(ctx, "GetStarship", trace.WithAttributes(
		attribute.Int64("starship.id", id),
	))
	defer span.End()

	ship, err := s.repo.Get(ctx, id)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to fetch starship")
		return nil, fmt.Errorf("error fetching starship: %w", err)
	}

	span.SetStatus(codes.Ok, "Starship fetched")
	return ship, nil
}

// CreateStarship requires model and passengers.
func (s *ServiceImpl) CreateStarship(ctx context.Context, req types.CreateStarshipRequest) (*types.Starship, error) {
	ctx, span := otel.Tracer("StarshipService").Start(ctx, "CreateStarship")
	defer span.End()

	l := s.logger.With(slog.String("method", "CreateStarship"))

	if err := api.ValidateStruct(req); err != nil {
		l.WarnContext(ctx, "Invalid starship payload", slog.Any("error", err))
		span.SetStatus(codes.Error, "Validation failed")
		return nil, err
	}

	ship, err := s.repo.Create(ctx, *req.Model, *req.Passengers)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to create starship")
		return nil, fmt.Errorf("error creating starship: %w", err)
	}
	s.cache.Flush()

	l.InfoContext(ctx, "Starship created", slog.Int64("starshipID", ship.ID))
	span.SetStatus(codes.Ok, "Starship created")
	return ship, nil
}

func (s *ServiceImpl) UpdateStarship(ctx context.Context, id int64, req types.UpdateStarshipRequest) (*types.Starship, error) {
	ctx, span := otel.Tracer("StarshipService").Start(ctx, "UpdateStarship", trace.WithAttributes(
		attribute.Int64("starship.id", id),
	))
	defer span.End()

	if err := api.ValidateStruct(req); err != nil {
		span.SetStatus(codes.Error, "Validation failed")
		return nil, err
	}

	ship, err := s.repo.Update(ctx, id, req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to update starship")
		return nil, fmt.Errorf("error updating starship: %w", err)
	}
	s.cache.Flush()

	span.SetStatus(codes.Ok, "Starship updated")
	return ship, nil
}

func (s *ServiceImpl) DeleteStarship(ctx context.Context, id int64) error {
	ctx, span := otel.Tracer("StarshipService").Start(ctx, "DeleteStarship", trace.WithAttributes(
		attribute.Int64("starship.id", id),
	))
	defer span.End()

	if err := s.repo.Delete(ctx, id); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to delete starship")
		return fmt.Errorf("error deleting starship: %w", err)
	}
	s.cache.Flush()

	s.logger.InfoContext(ctx, "Starship deleted", slog.Int64("starshipID", id))
	span.SetStatus(codes.Ok, "Starship deleted")
	return nil
}
