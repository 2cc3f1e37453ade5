package container

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/FACorreiaa/go-starwars-favorites/app/cache"
	database "github.com/FACorreiaa/go-starwars-favorites/app/db"
	"github.com/FACorreiaa/go-starwars-favorites/app/observability/metrics"
	"github.com/FACorreiaa/go-starwars-favorites/config"
	"github.com/FACorreiaa/go-starwars-favorites/internal/api/character"
	"github.com/FACorreiaa/go-starwars-favorites/internal/api/favorites"
	"github.com/FACorreiaa/go-starwars-favorites/internal/api/planet"
	"github.com/FACorreiaa/go-starwars-favorites/internal/api/starship"
	"github.com/FACorreiaa/go-starwars-favorites/internal/api/user"
	"github.com/FACorreiaa/go-starwars-favorites/internal/router"
)

// Container holds all application dependencies
type Container struct {
	Config           *config.Config
	Logger           *slog.Logger
	Pool             *pgxpool.Pool
	Cache            *cache.Store
	UserHandler      *user.HandlerImpl
	PlanetHandler    *planet.HandlerImpl
	CharacterHandler *character.HandlerImpl
	StarshipHandler  *starship.HandlerImpl
	FavoritesHandler *favorites.HandlerImpl
}

// NewContainer opens the pool and wires every repository, service and handler.
// metrics.InitAppMetrics must have run before this is called.
func NewContainer(cfg *config.Config, logger *slog.Logger) (*Container, error) {
	dbConfig, err := database.NewDatabaseConfig(cfg, logger)
	if err != nil {
		logger.Error("Failed to generate database config", slog.Any("error", err))
		return nil, err
	}

	pool, err := database.Init(dbConfig, logger)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.Any("error", err))
		return nil, err
	}

	c := New(cfg, database.NewInstrumentedDB(pool, metrics.Get()), logger)
	c.Pool = pool
	return c, nil
}

// New wires the application on top of an existing database handle.
func New(cfg *config.Config, db database.DB, logger *slog.Logger) *Container {
	store := cache.New(cfg.Cache.TTL, cfg.Cache.Cleanup)

	userRepo := user.NewPostgresUserRepo(db, logger)
	userService := user.NewUserService(userRepo, store, logger)
	userHandler := user.NewHandlerImpl(userService, logger)

	planetRepo := planet.NewPostgresPlanetRepo(db, logger)
	planetService := planet.NewPlanetService(planetRepo, store, logger)
	planetHandler := planet.NewHandlerImpl(planetService, logger)

	characterRepo := character.NewPostgresCharacterRepo(db, logger)
	characterService := character.NewCharacterService(characterRepo, store, logger)
	characterHandler := character.NewHandlerImpl(characterService, logger)

	starshipRepo := starship.NewPostgresStarshipRepo(db, logger)
	starshipService := starship.NewStarshipService(starshipRepo, store, logger)
	starshipHandler := starship.NewHandlerImpl(starshipService, logger)

	favoritesRepo := favorites.NewPostgresFavoritesRepo(db, logger)
	favoritesService := favorites.NewFavoritesService(favoritesRepo, logger)
	favoritesHandler := favorites.NewHandlerImpl(favoritesService, logger)

	return &Container{
		Config:           cfg,
		Logger:           logger,
		Cache:            store,
		UserHandler:      userHandler,
		PlanetHandler:    planetHandler,
		CharacterHandler: characterHandler,
		StarshipHandler:  starshipHandler,
		FavoritesHandler: favoritesHandler,
	}
}

// RouterConfig exposes the handlers in the shape the router expects.
func (c *Container) RouterConfig() *router.Config {
	return &router.Config{
		UserHandler:      c.UserHandler,
		PlanetHandler:    c.PlanetHandler,
		CharacterHandler: c.CharacterHandler,
		StarshipHandler:  c.StarshipHandler,
		FavoritesHandler: c.FavoritesHandler,
		AllowedOrigins:   c.Config.CORS.AllowedOrigins,
	}
}

// Close releases all resources held by the container
func (c *Container) Close() {
	if c.Pool != nil {
		c.Pool.Close()
	}
}

// WaitForDB waits for the database to be ready
func (c *Container) WaitForDB(ctx context.Context) bool {
	if c.Pool == nil {
		return true
	}
	return database.WaitForDB(ctx, c.Pool, c.Logger)
}
