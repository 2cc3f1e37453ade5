package user

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
	ListUsers(w http.ResponseWriter, r *http.Request)
	GetUser(w http.ResponseWriter, r *http.Request)
	CreateUser(w http.ResponseWriter, r *http.Request)
	UpdateUser(w http.ResponseWriter, r *http.Request)
	DeleteUser(w http.ResponseWriter, r *http.Request)
}

type HandlerImpl struct {
	userService UserService
	logger      *slog.Logger
}

const emailTakenMsg = "a user with that email already exists"

func notFoundMsg(id int64) string {
	return fmt.Sprintf("user with id %d does not exist", id)
}

// NewHandlerImpl creates a new user HandlerImpl instance.
func NewHandlerImpl(userService UserService, logger *slog.Logger) *HandlerImpl {
	if logger == nil {
		panic("PANIC: Attempting to create user HandlerImpl with nil logger!")
	}
	return &HandlerImpl{
		userService: userService,
		logger:      logger,
	}
}

// ListUsers godoc
// @Summary      List users
// @Tags         User
// @Produce      json
// @Success      200 {object} types.DataResponse{data=[]types.User}
// @Failure      500 {object} types.MessageResponse
// @Router       /user [get]
func (h *HandlerImpl) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.ListUsers(r.Context())
	if err != nil {
		h.logger.ErrorContext(r.Context(), "Failed to list users", slog.Any("error", err))
		api.ServiceErrorResponse(w, r, err, "", "")
		return
	}
	api.DataResponse(w, r, http.StatusOK, users)
}

// GetUser godoc
// @Summary      Get a user
// @Tags         User
// @Produce      json
// @Param        id path int true "User ID"
// @Success      200 {object} types.DataResponse{data=types.User}
// @Failure      400 {object} types.MessageResponse "Malformed id or user not found"
// @Router       /user/{id} [get]
func (h *HandlerImpl) GetUser(w http.ResponseWriter, r *http.Request) {
	id, err := api.ParseIDParam(r, "id")
	if err != nil {
		api.ServiceErrorResponse(w, r, err, "", "")
		return
	}

	u, err := h.userService.GetUser(r.Context(), id)
	if err != nil {
		if !errors.Is(err, types.ErrNotFound) {
			h.logger.ErrorContext(r.Context(), "Failed to get user", slog.Int64("userID", id), slog.Any("error", err))
		}
		api.ServiceErrorResponse(w, r, err, notFoundMsg(id), "")
		return
	}
	api.DataResponse(w, r, http.StatusOK, u)
}

// CreateUser godoc
// @Summary      Create a user
// @Description  The password is stored hashed and never returned.
// @Tags         User
// @Accept       json
// @Produce      json
// @Param        user body types.CreateUserRequest true "User"
// @Success      201 {object} types.DataResponse{data=types.User}
// @Failure      400 {object} types.MessageResponse
// @Router       /user [post]
func (h *HandlerImpl) CreateUser(w http.ResponseWriter, r *http.Request) {
	l := h.logger.With(slog.String("HandlerImpl", "CreateUser"))

	var req types.CreateUserRequest
	if err := api.DecodeJSONBody(w, r, &req); err != nil {
		l.WarnContext(r.Context(), "Failed to decode request", slog.Any("error", err))
		api.ServiceErrorResponse(w, r, err, "", "")
		return
	}

	u, err := h.userService.CreateUser(r.Context(), req)
	if err != nil {
		l.WarnContext(r.Context(), "Failed to create user", slog.Any("error", err))
		api.ServiceErrorResponse(w, r, err, "", emailTakenMsg)
		return
	}
	api.DataResponse(w, r, http.StatusCreated, u)
}

// UpdateUser godoc
// @Summary      Update a user
// @Description  Email, password and is_active may each be changed independently.
// @Tags         User
// @Accept       json
// @Produce      json
// @Param        id path int true "User ID"
// @Param        user body types.UpdateUserRequest true "Fields to change"
// @Success      200 {object} types.DataResponse{data=types.User}
// @Failure      400 {object} types.MessageResponse
// @Router       /user/{id} [put]
func (h *HandlerImpl) UpdateUser(w http.ResponseWriter, r *http.Request) {
	l := h.logger.With(slog.String("HandlerImpl", "UpdateUser"))

	id, err := api.ParseIDParam(r, "id")
	if err != nil {
		api.ServiceErrorResponse(w, r, err, "", "")
		return
	}

	var req types.UpdateUserRequest
	if err := api.DecodeJSONBody(w, r, &req); err != nil {
		l.WarnContext(r.Context(), "Failed to decode request", slog.Any("error", err))
		api.ServiceErrorResponse(w, r, err, "", "")
		return
	}

	u, err := h.userService.UpdateUser(r.Context(), id, req)
	if err != nil {
		l.WarnContext(r.Context(), "Failed to update user", slog.Any("error", err))
		api.ServiceErrorResponse(w, r, err, notFoundMsg(id), emailTakenMsg)
		return
	}
	api.DataResponse(w, r, http.StatusOK, u)
}

// DeleteUser godoc
// @Summary      Delete a user
// @Description  Refused while the user still has favorites.
// @Tags         User
// @Produce      json
// @Param        id path int true "User ID"
// @Success      200 {object} types.MessageResponse
// @Failure      400 {object} types.MessageResponse
// @Router       /user/{id} [delete]
func (h *HandlerImpl) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := api.ParseIDParam(r, "id")
	if err != nil {
		api.ServiceErrorResponse(w, r, err, "", "")
		return
	}

	if err := h.userService.DeleteUser(r.Context(), id); err != nil {
		h.logger.WarnContext(r.Context(), "Failed to delete user", slog.Int64("userID", id), slog.Any("error", err))
		api.ServiceErrorResponse(w, r, err, notFoundMsg(id),
			fmt.Sprintf("user %d still has favorites; remove them first", id))
		return
	}
	api.MessageResponse(w, r, http.StatusOK, fmt.Sprintf("user %d deleted", id))
}
