package router

import (
	"net/http"
	"sort"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/FACorreiaa/go-starwars-favorites/docs"
	"github.com/FACorreiaa/go-starwars-favorites/internal/api"
	"github.com/FACorreiaa/go-starwars-favorites/internal/api/character"
	"github.com/FACorreiaa/go-starwars-favorites/internal/api/favorites"
	"github.com/FACorreiaa/go-starwars-favorites/internal/api/planet"
	"github.com/FACorreiaa/go-starwars-favorites/internal/api/starship"
	"github.com/FACorreiaa/go-starwars-favorites/internal/api/user"
)

// Config contains dependencies needed for the router setup
type Config struct {
	UserHandler      user.Handler
	PlanetHandler    planet.Handler
	CharacterHandler character.Handler
	StarshipHandler  starship.Handler
	FavoritesHandler favorites.Handler
	AllowedOrigins   []string
}

// SetupRouter initializes and configures the application routes.
// Server-wide middleware (logger, requestID, recoverer) is applied by the
// caller before mounting this router.
func SetupRouter(cfg *Config) chi.Router {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-Id"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/ping", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("pong"))
	})

	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	r.Route("/user", func(r chi.Router) {
		r.Get("/", cfg.UserHandler.ListUsers)
		r.Post("/", cfg.UserHandler.CreateUser)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", cfg.UserHandler.GetUser)
			r.Put("/", cfg.UserHandler.UpdateUser)
			r.Delete("/", cfg.UserHandler.DeleteUser)

			r.Route("/favorites", func(r chi.Router) {
				r.Get("/", cfg.FavoritesHandler.ListFavorites)
				r.Post("/planet/{target_id}", cfg.FavoritesHandler.AddFavoritePlanet)
				r.Delete("/planet/{target_id}", cfg.FavoritesHandler.RemoveFavoritePlanet)
				r.Post("/character/{target_id}", cfg.FavoritesHandler.AddFavoriteCharacter)
				r.Delete("/character/{target_id}", cfg.FavoritesHandler.RemoveFavoriteCharacter)
				r.Post("/starship/{target_id}", cfg.FavoritesHandler.AddFavoriteStarship)
				r.Delete("/starship/{target_id}", cfg.FavoritesHandler.RemoveFavoriteStarship)
			})
		})
	})

	r.Route("/planet", func(r chi.Router) {
		r.Get("/", cfg.PlanetHandler.ListPlanets)
		r.Post("/", cfg.PlanetHandler.CreatePlanet)
		r.Get("/{id}", cfg.PlanetHandler.GetPlanet)
		r.Put("/{id}", cfg.PlanetHandler.UpdatePlanet)
		r.Delete("/{id}", cfg.PlanetHandler.DeletePlanet)
	})

	r.Route("/character", func(r chi.Router) {
		r.Get("/", cfg.CharacterHandler.ListCharacters)
		r.Post("/", cfg.CharacterHandler.CreateCharacter)
		r.Get("/{id}", cfg.CharacterHandler.GetCharacter)
		r.Put("/{id}", cfg.CharacterHandler.UpdateCharacter)
		r.Delete("/{id}", cfg.CharacterHandler.DeleteCharacter)
	})

	r.Route("/starship", func(r chi.Router) {
		r.Get("/", cfg.StarshipHandler.ListStarships)
		r.Post("/", cfg.StarshipHandler.CreateStarship)
		r.Get("/{id}", cfg.StarshipHandler.GetStarship)
		r.Put("/{id}", cfg.StarshipHandler.UpdateStarship)
		r.Delete("/{id}", cfg.StarshipHandler.DeleteStarship)
	})

	r.Get("/", sitemap(r))

	return r
}

// sitemap lists every registered route as "METHOD /path".
func sitemap(routes chi.Routes) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entries := make([]string, 0)
		err := chi.Walk(routes, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
			route = strings.TrimSuffix(strings.ReplaceAll(route, "/*/", "/"), "/")
			if route == "" {
				route = "/"
			}
			entries = append(entries, method+" "+route)
			return nil
		})
		if err != nil {
			api.ErrorResponse(w, r, http.StatusInternalServerError, "failed to build sitemap")
			return
		}
		sort.Strings(entries)
		api.DataResponse(w, r, http.StatusOK, entries)
	}
}
