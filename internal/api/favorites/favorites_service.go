package favorites

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/FACorreiaa/go-starwars-favorites/internal/types"
)

var _ Service = (*ServiceImpl)(nil)

// Service defines the business logic contract for user favorites.
type Service interface {
	ListFavorites(ctx context.Context, userID int64) (*types.UserFavorites, error)
	AddFavorite(ctx context.Context, kind types.FavoriteKind, userID, targetID int64) (*types.Favorite, error)
	RemoveFavorite(ctx context.Context, kind types.FavoriteKind, userID, targetID int64) error
}

type ServiceImpl struct {
	logger *slog.Logger
	repo   Repository
}

func NewFavoritesService(repo Repository, logger *slog.Logger) *ServiceImpl {
	return &ServiceImpl{
		logger: logger,
		repo:   repo,
	}
}

// NotFoundError reports which side of a favorite is missing.
type NotFoundError struct {
	Kind string
	ID   int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with id %d does not exist", e.Kind, e.ID)
}

func (e *NotFoundError) Unwrap() error { return types.ErrNotFound }

func (s *ServiceImpl) requireUser(ctx context.Context, userID int64) error {
	ok, err := s.repo.UserExists(ctx, userID)
	if err != nil {
		return err
	}
	if !ok {
		return &NotFoundError{Kind: "user", ID: userID}
	}
	return nil
}

// ListFavorites loads the three favorite lists of a user concurrently.
func (s *ServiceImpl) ListFavorites(ctx context.Context, userID int64) (*types.UserFavorites, error) {
	ctx, span := otel.Tracer("FavoritesService").Start(ctx, "ListFavorites", trace.WithAttributes(
		attribute.Int64("user.id", userID),
	))
	defer span.End()

	if err := s.requireUser(ctx, userID); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "User lookup failed")
		return nil, fmt.Errorf("error listing favorites: %w", err)
	}

	var favs types.UserFavorites
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		favs.Planets, err = s.repo.ListFavoritePlanets(gctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		favs.Characters, err = s.repo.ListFavoriteCharacters(gctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		favs.Starships, err = s.repo.ListFavoriteStarships(gctx, userID)
		return err
	})
	if err := g.Wait(); err != nil {
		s.logger.ErrorContext(ctx, "Failed to list favorites", slog.Int64("userID", userID), slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to list favorites")
		return nil, fmt.Errorf("error listing favorites: %w", err)
	}

	span.SetStatus(codes.Ok, "Favorites listed")
	return &favs, nil
}

// AddFavorite checks the user first, then the target.
func (s *ServiceImpl) AddFavorite(ctx context.Context, kind types.FavoriteKind, userID, targetID int64) (*types.Favorite, error) {
	ctx, span := otel.Tracer("FavoritesService").Start(ctx, "AddFavorite", trace.WithAttributes(
		attribute.String("favorite.kind", string(kind)),
		attribute.Int64("user.id", userID),
		attribute.Int64("target.id", targetID),
	))
	defer span.End()

	if err := s.requireUser(ctx, userID); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "User lookup failed")
		return nil, fmt.Errorf("error adding favorite: %w", err)
	}

	ok, err := s.repo.TargetExists(ctx, kind, targetID)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("error adding favorite: %w", err)
	}
	if !ok {
		span.SetStatus(codes.Error, "Target not found")
		return nil, fmt.Errorf("error adding favorite: %w", &NotFoundError{Kind: string(kind), ID: targetID})
	}

	fav, err := s.repo.AddFavorite(ctx, kind, userID, targetID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to add favorite")
		return nil, fmt.Errorf("error adding favorite: %w", err)
	}

	span.SetStatus(codes.Ok, "Favorite added")
	return fav, nil
}

func (s *ServiceImpl) RemoveFavorite(ctx context.Context, kind types.FavoriteKind, userID, targetID int64) error {
	ctx, span := otel.Tracer("FavoritesService").Start(ctx, "RemoveFavorite", trace.WithAttributes(
		attribute.String("favorite.kind", string(kind)),
		attribute.Int64("user.id", userID),
		attribute.Int64("target.id", targetID),
	))
	defer span.End()

	if err := s.repo.RemoveFavorite(ctx, kind, userID, targetID); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to remove favorite")
		return fmt.Errorf("error removing favorite: %w", err)
	}

	span.SetStatus(codes.Ok, "Favorite removed")
	return nil
}
