package planet

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/FACorreiaa/go-starwars-favorites/internal/api"
	"github.com/FACorreiaa/go-starwars-favorites/internal/types"
)

var _ Handler = (*HandlerImpl)(nil)

type Handler interface {
	ListPlanets(w http.ResponseWriter, r *http.Request)
	GetPlanet(w http.ResponseWriter, r *http.Request)
	CreatePlanet(w http.ResponseWriter, r *http.Request)
	UpdatePlanet(w http.ResponseWriter, r *http.Request)
	DeletePlanet(w http.ResponseWriter, r *http.Request)
}

type HandlerImpl struct {
	planetService Service
	logger        *slog.Logger
}

const conflictMsg = "a planet with that name already exists"

func notFoundMsg(id int64) string {
	return fmt.Sprintf("planet with id %d does not exist", id)
}

// NewHandlerImpl creates a new planet HandlerImpl instance.
func NewHandlerImpl(planetService Service, logger *slog.Logger) *HandlerImpl {
	if logger == nil {
		panic("PANIC: Attempting to create planet HandlerImpl with nil logger!")
	}
	return &HandlerImpl{
		planetService: planetService,
		logger:        logger,
	}
}

// ListPlanets godoc
// @Summary      List planets
// @Tags         Planet
// @Produce      json
// @Success      200 {object} types.DataResponse{data=[]types.Planet}
// @Failure      500 {object} types.MessageResponse
// @Router       /planet [get]
func (h *HandlerImpl) ListPlanets(w http.ResponseWriter, r *http.Request) {
	planets, err := h.planetService.ListPlanets(r.Context())
	if err != nil {
		h.logger.ErrorContext(r.Context(), "Failed to list planets", slog.Any("error", err))
		api.ServiceErrorResponse(w, r, err, "", "")
		return
	}
	api.DataResponse(w, r, http.StatusOK, planets)
}

// GetPlanet godoc
// @Summary      Get a planet
// @Tags         Planet
// @Produce      json
// @Param        id path int true "Planet ID"
// @Success      200 {object} types.DataResponse{data=types.Planet}
// @Failure      400 {object} types.MessageResponse
// @Router       /planet/{id} [get]
func (h *HandlerImpl) GetPlanet(w http.ResponseWriter, r *http.Request) {
	id, err := api.ParseIDParam(r, "id")
	if err != nil {
		api.ServiceErrorResponse(w, r, err, "", "")
		return
	}

	p, err := h.planetService.GetPlanet(r.Context(), id)
	if err != nil {
		api.ServiceErrorResponse(w, r, err, notFoundMsg(id), conflictMsg)
		return
	}
	api.DataResponse(w, r, http.StatusOK, p)
}

// CreatePlanet godoc
// @Summary      Create a planet
// @Tags         Planet
// @Accept       json
// @Produce      json
// @Param        planet body types.CreatePlanetRequest true "Planet"
// @Success      201 {object} types.DataResponse{data=types.Planet}
// @Failure      400 {object} types.MessageResponse
// @Router       /planet [post]
func (h *HandlerImpl) CreatePlanet(w http.ResponseWriter, r *http.Request) {
	l := h.logger.With(slog.String("HandlerImpl", "CreatePlanet"))

	var req types.CreatePlanetRequest
	if err := api.DecodeJSONBody(w, r, &req); err != nil {
		l.WarnContext(r.Context(), "Failed to decode request", slog.Any("error", err))
		api.ServiceErrorResponse(w, r, err, "", "")
		return
	}

	p, err := h.planetService.CreatePlanet(r.Context(), req)
	if err != nil {
		l.WarnContext(r.Context(), "Failed to create planet", slog.Any("error", err))
		api.ServiceErrorResponse(w, r, err, "", conflictMsg)
		return
	}
	api.DataResponse(w, r, http.StatusCreated, p)
}

// UpdatePlanet godoc
// @Summary      Update a planet
// @Description  Only the fields present in the body are changed.
// @Tags         Planet
// @Accept       json
// @Produce      json
// @Param        id path int true "Planet ID"
// @Param        planet body types.UpdatePlanetRequest true "Fields to change"
// @Success      200 {object} types.DataResponse{data=types.Planet}
// @Failure      400 {object} types.MessageResponse
// @Router       /planet/{id} [put]
func (h *HandlerImpl) UpdatePlanet(w http.ResponseWriter, r *http.Request) {
	l := h.logger.With(slog.String("HandlerImpl", "UpdatePlanet"))

	id, err := api.ParseIDParam(r, "id")
	if err != nil {
		api.ServiceErrorResponse(w, r, err, "", "")
		return
	}

	var req types.UpdatePlanetRequest
	if err := api.DecodeJSONBody(w, r, &req); err != nil {
		l.WarnContext(r.Context(), "Failed to decode request", slog.Any("error", err))
		api.ServiceErrorResponse(w, r, err, "", "")
		return
	}

	p, err := h.planetService.UpdatePlanet(r.Context(), id, req)
	if err != nil {
		l.WarnContext(r.Context(), "Failed to update planet", slog.Any("error", err))
		api.ServiceErrorResponse(w, r, err, notFoundMsg(id), conflictMsg)
		return
	}
	api.DataResponse(w, r, http.StatusOK, p)
}

// DeletePlanet godoc
// @Summary      Delete a planet
// @Description  Also removes every favorite pointing at the planet.
// @Tags         Planet
// @Produce      json
// @Param        id path int true "Planet ID"
// @Success      200 {object} types.MessageResponse
// @Failure      400 {object} types.MessageResponse
// @Router       /planet/{id} [delete]
func (h *HandlerImpl) DeletePlanet(w http.ResponseWriter, r *http.Request) {
	id, err := api.ParseIDParam(r, "id")
	if err != nil {
		api.ServiceErrorResponse(w, r, err, "", "")
		return
	}

	if err := h.planetService.DeletePlanet(r.Context(), id); err != nil {
		h.logger.WarnContext(r.Context(), "Failed to delete planet", slog.Int64("planetID", id), slog.Any("error", err))
		api.ServiceErrorResponse(w, r, err, notFoundMsg(id), conflictMsg)
		return
	}
	api.MessageResponse(w, r, http.StatusOK, fmt.Sprintf("planet %d deleted", id))
}
