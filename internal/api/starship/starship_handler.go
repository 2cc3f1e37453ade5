package starship

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/FACorreiaa/go-starwars-favorites/internal/api"
	"github.com/FACorreiaa/go-starwars-favorites/internal/types"
)

var _ Handler = (*HandlerImpl)(nil)

type Handler interface {
	ListStarships(w http.ResponseWriter, r *http.Request)
	GetStarship(w http.ResponseWriter, r *http.Request)
	CreateStarship(w http.ResponseWriter, r *http.Request)
	UpdateStarship(w http.ResponseWriter, r *http.Request)
	DeleteStarship(w http.ResponseWriter, r *http.Request)
}

type HandlerImpl struct {
	starshipService Service
	logger        *slog.Logger
}

const conflictMsg = "a starship with that model already exists"

func notFoundMsg(id int64) string {
	return fmt.Sprintf("starship with id %d does not exist", id)
}

// NewHandlerImpl creates a new starship HandlerImpl instance.
func NewHandlerImpl(starshipService Service, logger *slog.Logger) *HandlerImpl {
	if logger == nil {
		panic("PANIC: Attempting to create starship HandlerImpl with nil logger!")
	}
	return &HandlerImpl{
		starshipService: starshipService,
		logger:        logger,
	}
}

// ListStarships godoc
// @Summary      List starships
// @Tags         Starship
// @Produce      json
// @Success      200 {object} types.DataResponse{data=[]types.Starship}
// @Failure      500 {object} types.MessageResponse
// @Router       /starship [get]
func (h *HandlerImpl) ListStarships(w http.ResponseWriter, r *http.Request) {
	starships, err := h.starshipService.ListStarships(r.Context())
	if err != nil {
		h.logger.ErrorContext(r.Context(), "Failed to list starships", slog.Any("error", err))
		api.ServiceErrorResponse(w, r, err, "", "")
		return
	}
	api.DataResponse(w, r, http.StatusOK, starships)
}

// GetStarship godoc
// @Summary      Get a starship
// @Tags         Starship
// @Produce      json
// @Param        id path int true "Starship ID"
// @Success      200 {object} types.DataResponse{data=types.Starship}
// @Failure      400 {object} types.MessageResponse
// @Router       /starship/{id} [get]
func (h *HandlerImpl) GetStarship(w http.ResponseWriter, r *http.Request) {
	id, err := api.ParseIDParam(r, "id")
	if err != nil {
		api.ServiceErrorResponse(w, r, err, "", "")
		return
	}

	ship, err := h.starshipService.GetStarship(r.Context(), id)
	if err != nil {
		api.ServiceErrorResponse(w, r, err, notFoundMsg(id), conflictMsg)
		return
	}
	api.DataResponse(w, r, http.StatusOK, ship)
}

// CreateStarship godoc
// @Summary      Create a starship
// @Tags         Starship
// @Accept       json
// @Produce      json
// @Param        starship body types.CreateStarshipRequest true "Starship"
// @Success      201 {object} types.DataResponse{data=types.Starship}
// @Failure      400 {object} types.MessageResponse
// @Router       /starship [post]
func (h *HandlerImpl) CreateStarship(w http.ResponseWriter, r *http.Request) {
	l := h.logger.With(slog.String("HandlerImpl", "CreateStarship"))

	var req types.CreateStarshipRequest
	if err := api.DecodeJSONBody(w, r, &req); err != nil {
		l.WarnContext(r.Context(), "Failed to decode request", slog.Any("error", err))
		api.ServiceErrorResponse(w, r, err, "", "")
		return
	}

	ship, err := h.starshipService.CreateStarship(r.Context(), req)
	if err != nil {
		l.WarnContext(r.Context(), "Failed to create starship", slog.Any("error", err))
		api.ServiceErrorResponse(w, r, err, "", conflictMsg)
		return
	}
	api.DataResponse(w, r, http.StatusCreated, ship)
}

// UpdateStarship godoc
// @Summary      Update a starship
// @Description  Only the fields present in the body are changed.
// @Tags         Starship
// @Accept       json
// @Produce      json
// @Param        id path int true "Starship ID"
// @Param        starship body types.UpdateStarshipRequest true "Fields to change"
// @Success      200 {object} types.DataResponse{data=types.Starship}
// @Failure      400 {object} types.MessageResponse
// @Router       /starship/{id} [put]
func (h *HandlerImpl) UpdateStarship(w http.ResponseWriter, r *http.Request) {
	l := h.logger.With(slog.String("HandlerImpl", "UpdateStarship"))

	id, err := api.ParseIDParam(r, "id")
	if err != nil {
		api.ServiceErrorResponse(w, r, err, "", "")
		return
	}

	var req types.UpdateStarshipRequest
	if err := api.DecodeJSONBody(w, r, &req); err != nil {
		l.WarnContext(r.Context(), "Failed to decode request", slog.Any("error", err))
		api.ServiceErrorResponse(w, r, err, "", "")
		return
	}

	ship, err := h.starshipService.UpdateStarship(r.Context(), id, req)
	if err != nil {
		l.WarnContext(r.Context(), "Failed to update starship", slog.Any("error", err))
		api.ServiceErrorResponse(w, r, err, notFoundMsg(id), conflictMsg)
		return
	}
	api.DataResponse(w, r, http.StatusOK, ship)
}

// DeleteStarship godoc
// @Summary      Delete a starship
// @Description  Also removes every favorite pointing at the starship.
// @Tags         Starship
// @Produce      json
// @Param        id path int true "Starship ID"
// @Success      200 {object} types.MessageResponse
// @Failure      400 {object} types.MessageResponse
// @Router       /starship/{id} [delete]
func (h *HandlerImpl) DeleteStarship(w http.ResponseWriter, r *http.Request) {
	id, err := api.ParseIDParam(r, "id")
	if err != nil {
		api.ServiceErrorResponse(w, r, err, "", "")
		return
	}

	if err := h.starshipService.DeleteStarship(r.Context(), id); err != nil {
		h.logger.WarnContext(r.Context(), "Failed to delete starship", slog.Int64("starshipID", id), slog.Any("error", err))
		api.ServiceErrorResponse(w, r, err, notFoundMsg(id), conflictMsg)
		return
	}
	api.MessageResponse(w, r, http.StatusOK, fmt.Sprintf("starship %d deleted", id))
}
