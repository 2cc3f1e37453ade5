package favorites

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/FACorreiaa/go-starwars-favorites/internal/types"
)

type MockFavoritesService struct {
	mock.Mock
}

func (m *MockFavoritesService) ListFavorites(ctx context.Context, userID int64) (*types.UserFavorites, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.UserFavorites), args.Error(1)
}

func (m *MockFavoritesService) AddFavorite(ctx context.Context, kind types.FavoriteKind, userID, targetID int64) (*types.Favorite, error) {
	args := m.Called(ctx, kind, userID, targetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.Favorite), args.Error(1)
}

func (m *MockFavoritesService) RemoveFavorite(ctx context.Context, kind types.FavoriteKind, userID, targetID int64) error {
	return m.Called(ctx, kind, userID, targetID).Error(0)
}

func newRequest(method, target string, params map[string]string) *http.Request {
	req := httptest.NewRequest(method, target, nil)
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestAddFavoritePlanetHandler(t *testing.T) {
	mockService := new(MockFavoritesService)
	handler := NewHandlerImpl(mockService, slog.Default())
	mockService.On("AddFavorite", mock.Anything, types.FavoritePlanet, int64(1), int64(2)).
		Return(&types.Favorite{ID: 5, UserID: 1, TargetID: 2, Kind: types.FavoritePlanet}, nil).Once()

	w := httptest.NewRecorder()
	handler.AddFavoritePlanet(w, newRequest(http.MethodPost, "/user/1/favorites/planet/2",
		map[string]string{"id": "1", "target_id": "2"}))

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"data":{"id":5,"user_id":1,"planet_id":2}}`, w.Body.String())
}

func TestAddFavoriteCharacterHandler_MissingTarget(t *testing.T) {
	mockService := new(MockFavoritesService)
	handler := NewHandlerImpl(mockService, slog.Default())
	mockService.On("AddFavorite", mock.Anything, types.FavoriteCharacter, int64(1), int64(77)).
		Return(nil, fmt.Errorf("error adding favorite: %w", &NotFoundError{Kind: "character", ID: 77})).Once()

	w := httptest.NewRecorder()
	handler.AddFavoriteCharacter(w, newRequest(http.MethodPost, "/user/1/favorites/character/77",
		map[string]string{"id": "1", "target_id": "77"}))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"msg":"character with id 77 does not exist"}`, w.Body.String())
}

func TestRemoveFavoriteStarshipHandler(t *testing.T) {
	t.Run("Removed", func(t *testing.T) {
		mockService := new(MockFavoritesService)
		handler := NewHandlerImpl(mockService, slog.Default())
		mockService.On("RemoveFavorite", mock.Anything, types.FavoriteStarship, int64(1), int64(3)).Return(nil).Once()

		w := httptest.NewRecorder()
		handler.RemoveFavoriteStarship(w, newRequest(http.MethodDelete, "/user/1/favorites/starship/3",
			map[string]string{"id": "1", "target_id": "3"}))

		assert.Equal(t, http.StatusOK, w.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("Not a favorite", func(t *testing.T) {
		mockService := new(MockFavoritesService)
		handler := NewHandlerImpl(mockService, slog.Default())
		mockService.On("RemoveFavorite", mock.Anything, types.FavoriteStarship, int64(1), int64(3)).Return(types.ErrNotFound).Once()

		w := httptest.NewRecorder()
		handler.RemoveFavoriteStarship(w, newRequest(http.MethodDelete, "/user/1/favorites/starship/3",
			map[string]string{"id": "1", "target_id": "3"}))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"msg":"user 1 has no favorite starship with id 3"}`, w.Body.String())
	})

	t.Run("Malformed target id", func(t *testing.T) {
		mockService := new(MockFavoritesService)
		handler := NewHandlerImpl(mockService, slog.Default())

		w := httptest.NewRecorder()
		handler.RemoveFavoriteStarship(w, newRequest(http.MethodDelete, "/user/1/favorites/starship/x",
			map[string]string{"id": "1", "target_id": "x"}))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockService.AssertNotCalled(t, "RemoveFavorite", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestListFavoritesHandler_EmptyShape(t *testing.T) {
	mockService := new(MockFavoritesService)
	handler := NewHandlerImpl(mockService, slog.Default())
	mockService.On("ListFavorites", mock.Anything, int64(1)).Return(&types.UserFavorites{
		Planets:    []types.FavoritePlanetEntry{},
		Characters: []types.FavoriteCharacterEntry{},
		Starships:  []types.FavoriteStarshipEntry{},
	}, nil).Once()

	w := httptest.NewRecorder()
	handler.ListFavorites(w, newRequest(http.MethodGet, "/user/1/favorites", map[string]string{"id": "1"}))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"data":{"planets":[],"characters":[],"starships":[]}}`, w.Body.String())
}
