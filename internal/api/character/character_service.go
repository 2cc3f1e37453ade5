package character

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

// Service defines the business logic contract for characters.
type Service interface {
	ListCharacters(ctx context.Context) ([]types.Character, error)
	GetCharacter(ctx context.Context, id int64) (*types.Character, error)
	CreateCharacter(ctx context.Context, req types.CreateCharacterRequest) (*types.Character, error)
	UpdateCharacter(ctx context.Context, id int64, req types.UpdateCharacterRequest) (*types.Character, error)
	DeleteCharacter(ctx context.Context, id int64) error
}

type ServiceImpl struct {
	logger *slog.Logger
	repo   Repository
	cache  *cache.Store
}

func NewCharacterService(repo Repository, store *cache.Store, logger *slog.Logger) *ServiceImpl {
	return &ServiceImpl{
		logger: logger,
		repo:   repo,
		cache:  store,
	}
}

// ListCharacters returns every character, served from the read cache when warm.
func (s *ServiceImpl) ListCharacters(ctx context.Context) ([]types.Character, error) {
	ctx, span := otel.Tracer("CharacterService").Start(ctx, "ListCharacters")
	defer span.End()

	characters, err := cache.Remember(s.cache, cache.KeyCharacters, func() ([]types.Character, error) {
		return s.repo.List(ctx)
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to list characters", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to list characters")
		return nil, fmt.Errorf("error listing characters: %w", err)
	}

	span.SetStatus(codes.Ok, "Characters listed")
	return characters, nil
}

func (s *ServiceImpl) GetCharacter(ctx context.Context, id int64) (*types.Character, error) {
	ctx, span := otel.Tracer("CharacterService").Start(ctx, "GetCharacter", trace.WithAttributes(
		attribute.Int64("character.id", id),
	))
	defer span.End()

	c, err := s.repo.Get(ctx, id)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to fetch character")
		return nil, fmt.Errorf("error fetching character: %w", err)
	}

	span.SetStatus(codes.Ok, "Character fetched")
	return c, nil
}

// CreateCharacter requires name, height and gender.
func (s *ServiceImpl) CreateCharacter(ctx context.Context, req types.CreateCharacterRequest) (*types.Character, error) {
	ctx, span := otel.Tracer("CharacterService").Start(ctx, "CreateCharacter")
	defer span.End()

	l := s.logger.With(slog.String("method", "CreateCharacter"))

	if err := api.ValidateStruct(req); err != nil {
		l.WarnContext(ctx, "Invalid character payload", slog.Any("error", err))
		span.SetStatus(codes.Error, "Validation failed")
		return nil, err
	}

	c, err := s.repo.Create(ctx, *req.Name, *req.Height, *req.Gender)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to create character")
		return nil, fmt.Errorf("error creating character: %w", err)
	}
	s.cache.Flush()

	l.InfoContext(ctx, "Character created", slog.Int64("characterID", c.ID))
	span.SetStatus(codes.Ok, "Character created")
	return c, nil
}

func (s *ServiceImpl) UpdateCharacter(ctx context.Context, id int64, req types.UpdateCharacterRequest) (*types.Character, error) {
	ctx, span := otel.Tracer("CharacterService").Start(ctx, "UpdateCharacter", trace.WithAttributes(
		attribute.Int64("character.id", id),
	))
	defer span.End()

	if err := api.ValidateStruct(req); err != nil {
		span.SetStatus(codes.Error, "Validation failed")
		return nil, err
	}

	c, err := s.repo.Update(ctx, id, req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to update character")
		return nil, fmt.Errorf("error updating character: %w", err)
	}
	s.cache.Flush()

	span.SetStatus(codes.Ok, "Character updated")
	return c, nil
}

func (s *ServiceImpl) DeleteCharacter(ctx context.Context, id int64) error {
	ctx, span := otel.Tracer("CharacterService").Start(ctx, "DeleteCharacter", trace.WithAttributes(
		attribute.Int64("character.id", id),
	))
	defer span.End()

	if err := s.repo.Delete(ctx, id); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to delete character")
		return fmt.Errorf("error deleting character: %w", err)
	}
	s.cache.Flush()

	s.logger.InfoContext(ctx, "Character deleted", slog.Int64("characterID", id))
	span.SetStatus(codes.Ok, "Character deleted")
	return nil
}
