package character

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/FACorreiaa/go-starwars-favorites/internal/api"
	"github.com/FACorreiaa/go-starwars-favorites/internal/types"
)

var _ Handler = (*HandlerImpl)(nil)

type Handler interface {
	ListCharacters(w http.ResponseWriter, r *http.Request)
	GetCharacter(w http.ResponseWriter, r *http.Request)
	CreateCharacter(w http.ResponseWriter, r *http.Request)
	UpdateCharacter(w http.ResponseWriter, r *http.Request)
	DeleteCharacter(w http.ResponseWriter, r *http.Request)
}

type HandlerImpl struct {
	characterService Service
	logger        *slog.Logger
}

const conflictMsg = "a character with that name already exists"

func notFoundMsg(id int64) string {
	return fmt.Sprintf("character with id %d does not exist", id)
}

// NewHandlerImpl creates a new character HandlerImpl instance.
func NewHandlerImpl(characterService Service, logger *slog.Logger) *HandlerImpl {
	if logger == nil {
		panic("PANIC: Attempting to create character HandlerImpl with nil logger!")
	}
	return &HandlerImpl{
		characterService: characterService,
		logger:        logger,
	}
}

// ListCharacters godoc
// @Summary      List characters
// @Tags         Character
// @Produce      json
// @Success      200 {object} types.DataResponse{data=[]types.Character}
// @Failure      500 {object} types.MessageResponse
// @Router       /character [get]
func (h *HandlerImpl) ListCharacters(w http.ResponseWriter, r *http.Request) {
	characters, err := h.characterService.ListCharacters(r.Context())
	if err != nil {
		h.logger.ErrorContext(r.Context(), "Failed to list characters", slog.Any("error", err))
		api.ServiceErrorResponse(w, r, err, "", "")
		return
	}
	api.DataResponse(w, r, http.StatusOK, characters)
}

// GetCharacter godoc
// @Summary      Get a character
// @Tags         Character
// @Produce      json
// @Param        id path int true "Character ID"
// @Success      200 {object} types.DataResponse{data=types.Character}
// @Failure      400 {object} types.MessageResponse
// @Router       /character/{id} [get]
func (h *HandlerImpl) GetCharacter(w http.ResponseWriter, r *http.Request) {
	id, err := api.ParseIDParam(r, "id")
	if err != nil {
		api.ServiceErrorResponse(w, r, err, "", "")
		return
	}

	c, err := h.characterService.GetCharacter(r.Context(), id)
	if err != nil {
		api.ServiceErrorResponse(w, r, err, notFoundMsg(id), conflictMsg)
		return
	}
	api.DataResponse(w, r, http.StatusOK, c)
}

// CreateCharacter godoc
// @Summary      Create a character
// @Tags         Character
// @Accept       json
// @Produce      json
// @Param        character body types.CreateCharacterRequest true "Character"
// @Success      201 {object} types.DataResponse{data=types.Character}
// @Failure      400 {object} types.MessageResponse
// @Router       /character [post]
func (h *HandlerImpl) CreateCharacter(w http.ResponseWriter, r *http.Request) {
	l := h.logger.With(slog.String("HandlerImpl", "CreateCharacter"))

	var req types.CreateCharacterRequest
	if err := api.DecodeJSONBody(w, r, &req); err != nil {
		l.WarnContext(r.Context(), "Failed to decode request", slog.Any("error", err))
		api.ServiceErrorResponse(w, r, err, "", "")
		return
	}

	c, err := h.characterService.CreateCharacter(r.Context(), req)
	if err != nil {
		l.WarnContext(r.Context(), "Failed to create character", slog.Any("error", err))
		api.ServiceErrorResponse(w, r, err, "", conflictMsg)
		return
	}
	api.DataResponse(w, r, http.StatusCreated, c)
}

// UpdateCharacter godoc
// @Summary      Update a character
// @Description  Only the fields present in the body are changed.
// @Tags         Character
// @Accept       json
// @Produce      json
// @Param        id path int true "Character ID"
// @Param        character body types.UpdateCharacterRequest true "Fields to change"
// @Success      200 {object} types.DataResponse{data=types.Character}
// @Failure      400 {object} types.MessageResponse
// @Router       /character/{id} [put]
func (h *HandlerImpl) UpdateCharacter(w http.ResponseWriter, r *http.Request) {
	l := h.logger.With(slog.String("HandlerImpl", "UpdateCharacter"))

	id, err := api.ParseIDParam(r, "id")
	if err != nil {
		api.ServiceErrorResponse(w, r, err, "", "")
		return
	}

	var req types.UpdateCharacterRequest
	if err := api.DecodeJSONBody(w, r, &req); err != nil {
		l.WarnContext(r.Context(), "Failed to decode request", slog.Any("error", err))
		api.ServiceErrorResponse(w, r, err, "", "")
		return
	}

	c, err := h.characterService.UpdateCharacter(r.Context(), id, req)
	if err != nil {
		l.WarnContext(r.Context(), "Failed to update character", slog.Any("error", err))
		api.ServiceErrorResponse(w, r, err, notFoundMsg(id), conflictMsg)
		return
	}
	api.DataResponse(w, r, http.StatusOK, c)
}

// DeleteCharacter godoc
// @Summary      Delete a character
// @Description  Also removes every favorite pointing at the character.
// @Tags         Character
// @Produce      json
// @Param        id path int true "Character ID"
// @Success      200 {object} types.MessageResponse
// @Failure      400 {object} types.MessageResponse
// @Router       /character/{id} [delete]
func (h *HandlerImpl) DeleteCharacter(w http.ResponseWriter, r *http.Request) {
	id, err := api.ParseIDParam(r, "id")
	if err != nil {
		api.ServiceErrorResponse(w, r, err, "", "")
		return
	}

	if err := h.characterService.DeleteCharacter(r.Context(), id); err != nil {
		h.logger.WarnContext(r.Context(), "Failed to delete character", slog.Int64("characterID", id), slog.Any("error", err))
		api.ServiceErrorResponse(w, r, err, notFoundMsg(id), conflictMsg)
		return
	}
	api.MessageResponse(w, r, http.StatusOK, fmt.Sprintf("character %d deleted", id))
}
