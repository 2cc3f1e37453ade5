package planet

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

// Service defines the business logic contract for planets.
type Service interface {
	ListPlanets(ctx context.Context) ([]types.Planet, error)
	GetPlanet(ctx context.Context, id int64) (*types.Planet, error)
	CreatePlanet(ctx context.Context, req types.CreatePlanetRequest) (*types.Planet, error)
	UpdatePlanet(ctx context.Context, id int64, req types.UpdatePlanetRequest) (*types.Planet, error)
	DeletePlanet(ctx context.Context, id int64) error
}

type ServiceImpl struct {
	logger *slog.Logger
	repo   Repository
	cache  *cache.Store
}

func NewPlanetService(repo Repository, store *cache.Store, logger *slog.Logger) *ServiceImpl {
	return &ServiceImpl{
		logger: logger,
		repo:   repo,
		cache:  store,
	}
}

// ListPlanets returns every planet, served from the read cache when warm.
func (s *ServiceImpl) ListPlanets(ctx context.Context) ([]types.Planet, error) {
	ctx, span := otel.Tracer("PlanetService").Start(ctx, "ListPlanets")
	defer span.End()

	planets, err := cache.Remember(s.cache, cache.KeyPlanets, func() ([]types.Planet, error) {
		return s.repo.List(ctx)
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to list planets", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to list planets")
		return nil, fmt.Errorf("error listing planets: %w", err)
	}

	span.SetStatus(codes.Ok, "Planets listed")
	return planets, nil
}

func (s *ServiceImpl) GetPlanet(ctx context.Context, id int64) (*types.Planet, error) {
	ctx, span := otel.Tracer("PlanetService").Start(ctx, "GetPlanet", trace.WithAttributes(
		attribute.Int64("planet.id", id),
	))
	defer span.End()

	p, err := s.repo.Get(ctx, id)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to fetch planet")
		return nil, fmt.Errorf("error fetching planet: %w", err)
	}

	span.SetStatus(codes.Ok, "Planet fetched")
	return p, nil
}

// CreatePlanet requires name and population.
func (s *ServiceImpl) CreatePlanet(ctx context.Context, req types.CreatePlanetRequest) (*types.Planet, error) {
	ctx, span := otel.Tracer("PlanetService").Start(ctx, "CreatePlanet")
	defer span.End()

	l := s.logger.With(slog.String("method", "CreatePlanet"))

	if err := api.ValidateStruct(req); err != nil {
		l.WarnContext(ctx, "Invalid planet payload", slog.Any("error", err))
		span.SetStatus(codes.Error, "Validation failed")
		return nil, err
	}

	p, err := s.repo.Create(ctx, *req.Name, *req.Population)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to create planet")
		return nil, fmt.Errorf("error creating planet: %w", err)
	}
	s.cache.Flush()

	l.InfoContext(ctx, "Planet created", slog.Int64("planetID", p.ID))
	span.SetStatus(codes.Ok, "Planet created")
	return p, nil
}

func (s *ServiceImpl) UpdatePlanet(ctx context.Context, id int64, req types.UpdatePlanetRequest) (*types.Planet, error) {
	ctx, span := otel.Tracer("PlanetService").Start(ctx, "UpdatePlanet", trace.WithAttributes(
		attribute.Int64("planet.id", id),
	))
	defer span.End()

	if err := api.ValidateStruct(req); err != nil {
		span.SetStatus(codes.Error, "Validation failed")
		return nil, err
	}

	p, err := s.repo.Update(ctx, id, req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to update planet")
		return nil, fmt.Errorf("error updating planet: %w", err)
	}
	s.cache.Flush()

	span.SetStatus(codes.Ok, "Planet updated")
	return p, nil
}

func (s *ServiceImpl) DeletePlanet(ctx context.Context, id int64) error {
	ctx, span := otel.Tracer("PlanetService").Start(ctx, "DeletePlanet", trace.WithAttributes(
		attribute.Int64("planet.id", id),
	))
	defer span.End()

	if err := s.repo.Delete(ctx, id); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to delete planet")
		return fmt.Errorf("error deleting planet: %w", err)
	}
	s.cache.Flush()

	s.logger.InfoContext(ctx, "Planet deleted", slog.Int64("planetID", id))
	span.SetStatus(codes.Ok, "Planet deleted")
	return nil
}
