package favorites

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/FACorreiaa/go-starwars-favorites/internal/api"
	"github.com/FACorreiaa/go-starwars-favorites/internal/types"
)

var _ Handler = (*HandlerImpl)(nil)

type Handler interface {
	ListFavorites(w http.ResponseWriter, r *http.Request)
	AddFavoritePlanet(w http.ResponseWriter, r *http.Request)
	RemoveFavoritePlanet(w http.ResponseWriter, r *http.Request)
	AddFavoriteCharacter(w http.ResponseWriter, r *http.Request)
	RemoveFavoriteCharacter(w http.ResponseWriter, r *http.Request)
	AddFavoriteStarship(w http.ResponseWriter, r *http.Request)
	RemoveFavoriteStarship(w http.ResponseWriter, r *http.Request)
}

type HandlerImpl struct {
	favoritesService Service
	logger           *slog.Logger
}

// NewHandlerImpl creates a new favorites HandlerImpl instance.
func NewHandlerImpl(favoritesService Service, logger *slog.Logger) *HandlerImpl {
	if logger == nil {
		panic("PANIC: Attempting to create favorites HandlerImpl with nil logger!")
	}
	return &HandlerImpl{
		favoritesService: favoritesService,
		logger:           logger,
	}
}

// notFoundMessage prefers the missing side named by the service.
func notFoundMessage(err error, fallback string) string {
	var nf *NotFoundError
	if errors.As(err, &nf) {
		return nf.Error()
	}
	return fallback
}

// ListFavorites godoc
// @Summary      List a user's favorites
// @Description  Planets, characters and starships, each paired with the favorite row id.
// @Tags         Favorites
// @Produce      json
// @Param        id path int true "User ID"
// @Success      200 {object} types.DataResponse{data=types.UserFavorites}
// @Failure      400 {object} types.MessageResponse
// @Router       /user/{id}/favorites [get]
func (h *HandlerImpl) ListFavorites(w http.ResponseWriter, r *http.Request) {
	userID, err := api.ParseIDParam(r, "id")
	if err != nil {
		api.ServiceErrorResponse(w, r, err, "", "")
		return
	}

	favs, err := h.favoritesService.ListFavorites(r.Context(), userID)
	if err != nil {
		h.logger.WarnContext(r.Context(), "Failed to list favorites", slog.Int64("userID", userID), slog.Any("error", err))
		api.ServiceErrorResponse(w, r, err, notFoundMessage(err, fmt.Sprintf("user with id %d does not exist", userID)), "")
		return
	}
	api.DataResponse(w, r, http.StatusOK, favs)
}

func (h *HandlerImpl) add(w http.ResponseWriter, r *http.Request, kind types.FavoriteKind) {
	l := h.logger.With(slog.String("HandlerImpl", "AddFavorite"), slog.String("kind", string(kind)))

	userID, err := api.ParseIDParam(r, "id")
	if err != nil {
		api.ServiceErrorResponse(w, r, err, "", "")
		return
	}
	targetID, err := api.ParseIDParam(r, "target_id")
	if err != nil {
		api.ServiceErrorResponse(w, r, err, "", "")
		return
	}

	fav, err := h.favoritesService.AddFavorite(r.Context(), kind, userID, targetID)
	if err != nil {
		l.WarnContext(r.Context(), "Failed to add favorite", slog.Any("error", err))
		api.ServiceErrorResponse(w, r, err, notFoundMessage(err, "user or "+string(kind)+" does not exist"), "")
		return
	}
	api.DataResponse(w, r, http.StatusCreated, fav)
}

func (h *HandlerImpl) remove(w http.ResponseWriter, r *http.Request, kind types.FavoriteKind) {
	l := h.logger.With(slog.String("HandlerImpl", "RemoveFavorite"), slog.String("kind", string(kind)))

	userID, err := api.ParseIDParam(r, "id")
	if err != nil {
		api.ServiceErrorResponse(w, r, err, "", "")
		return
	}
	targetID, err := api.ParseIDParam(r, "target_id")
	if err != nil {
		api.ServiceErrorResponse(w, r, err, "", "")
		return
	}

	if err := h.favoritesService.RemoveFavorite(r.Context(), kind, userID, targetID); err != nil {
		l.WarnContext(r.Context(), "Failed to remove favorite", slog.Any("error", err))
		api.ServiceErrorResponse(w, r, err,
			fmt.Sprintf("user %d has no favorite %s with id %d", userID, kind, targetID), "")
		return
	}
	api.MessageResponse(w, r, http.StatusOK,
		fmt.Sprintf("favorite %s %d removed for user %d", kind, targetID, userID))
}

// AddFavoritePlanet godoc
// @Summary      Add a favorite planet
// @Description  Adding the same planet twice creates two favorite rows.
// @Tags         Favorites
// @Produce      json
// @Param        id path int true "User ID"
// @Param        target_id path int true "Planet ID"
// @Success      201 {object} types.DataResponse{data=object}
// @Failure      400 {object} types.MessageResponse
// @Router       /user/{id}/favorites/planet/{target_id} [post]
func (h *HandlerImpl) AddFavoritePlanet(w http.ResponseWriter, r *http.Request) {
	h.add(w, r, types.FavoritePlanet)
}

// RemoveFavoritePlanet godoc
// @Summary      Remove a favorite planet
// @Tags         Favorites
// @Produce      json
// @Param        id path int true "User ID"
// @Param        target_id path int true "Planet ID"
// @Success      200 {object} types.MessageResponse
// @Failure      400 {object} types.MessageResponse
// @Router       /user/{id}/favorites/planet/{target_id} [delete]
func (h *HandlerImpl) RemoveFavoritePlanet(w http.ResponseWriter, r *http.Request) {
	h.remove(w, r, types.FavoritePlanet)
}

// AddFavoriteCharacter godoc
// @Summary      Add a favorite character
// @Tags         Favorites
// @Produce      json
// @Param        id path int true "User ID"
// @Param        target_id path int true "Character ID"
// @Success      201 {object} types.DataResponse{data=object}
// @Failure      400 {object} types.MessageResponse
// @Router       /user/{id}/favorites/character/{target_id} [post]
func (h *HandlerImpl) AddFavoriteCharacter(w http.ResponseWriter, r *http.Request) {
	h.add(w, r, types.FavoriteCharacter)
}

// RemoveFavoriteCharacter godoc
// @Summary      Remove a favorite character
// @Tags         Favorites
// @Produce      json
// @Param        id path int true "User ID"
// @Param        target_id path int true "Character ID"
// @Success      200 {object} types.MessageResponse
// @Failure      400 {object} types.MessageResponse
// @Router       /user/{id}/favorites/character/{target_id} [delete]
func (h *HandlerImpl) RemoveFavoriteCharacter(w http.ResponseWriter, r *http.Request) {
	h.remove(w, r, types.FavoriteCharacter)
}

// AddFavoriteStarship godoc
// @Summary      Add a favorite starship
// @Tags         Favorites
// @Produce      json
// @Param        id path int true "User ID"
// @Param        target_id path int true "Starship ID"
// @Success      201 {object} types.DataResponse{data=object}
// @Failure      400 {object} types.MessageResponse
// @Router       /user/{id}/favorites/starship/{target_id} [post]
func (h *HandlerImpl) AddFavoriteStarship(w http.ResponseWriter, r *http.Request) {
	h.add(w, r, types.FavoriteStarship)
}

// RemoveFavoriteStarship godoc
// @Summary      Remove a favorite starship
// @Tags         Favorites
// @Produce      json
// @Param        id path int true "User ID"
// @Param        target_id path int true "Starship ID"
// @Success      200 {object} types.MessageResponse
// @Failure      400 {object} types.MessageResponse
// @Router       /user/{id}/favorites/starship/{target_id} [delete]
func (h *HandlerImpl) RemoveFavoriteStarship(w http.ResponseWriter, r *http.Request) {
	h.remove(w, r, types.FavoriteStarship)
}
