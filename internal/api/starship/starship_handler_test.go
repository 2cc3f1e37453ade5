package starship

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/FACorreiaa/go-starwars-favorites/internal/types"
)

type MockStarshipService struct {
	mock.Mock
}

func (m *MockStarshipService) ListStarships(ctx context.Context) ([]types.Starship, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]types.Starship), args.Error(1)
}

func (m *MockStarshipService) GetStarship(ctx context.Context, id int64) (*types.Starship, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.Starship), args.Error(1)
}

func (m *MockStarshipService) CreateStarship(ctx context.Context, req types.CreateStarshipRequest) (*types.Starship, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.Starship), args.Error(1)
}

func (m *MockStarshipService) UpdateStarship(ctx context.Context, id int64, req types.UpdateStarshipRequest) (*types.Starship, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.Starship), args.Error(1)
}

func (m *MockStarshipService) DeleteStarship(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func withURLParam(req *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestListStarshipsHandler(t *testing.T) {
	t.Run("Empty list is an empty array", func(t *testing.T) {
		mockService := new(MockStarshipService)
		handler := NewHandlerImpl(mockService, slog.Default())
		mockService.On("ListStarships", mock.Anything).Return([]types.Starship{}, nil).Once()

		w := httptest.NewRecorder()
		handler.ListStarships(w, httptest.NewRequest(http.MethodGet, "/starship", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"data":[]}`, w.Body.String())
	})

	t.Run("Unexpected error", func(t *testing.T) {
		mockService := new(MockStarshipService)
		handler := NewHandlerImpl(mockService, slog.Default())
		mockService.On("ListStarships", mock.Anything).Return(nil, errors.New("boom")).Once()

		w := httptest.NewRecorder()
		handler.ListStarships(w, httptest.NewRequest(http.MethodGet, "/starship", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestCreateStarshipHandler_Duplicate(t *testing.T) {
	mockService := new(MockStarshipService)
	handler := NewHandlerImpl(mockService, slog.Default())
	mockService.On("CreateStarship", mock.Anything, mock.Anything).Return(nil, types.ErrConflict).Once()

	req := httptest.NewRequest(http.MethodPost, "/starship", bytes.NewBufferString(`{"model":"YT-1300","passengers":6}`))
	w := httptest.NewRecorder()
	handler.CreateStarship(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var resp types.MessageResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, conflictMsg, resp.Msg)
}

func TestGetStarshipHandler_BadID(t *testing.T) {
	mockService := new(MockStarshipService)
	handler := NewHandlerImpl(mockService, slog.Default())

	req := withURLParam(httptest.NewRequest(http.MethodGet, "/starship/abc", nil), "id", "abc")
	w := httptest.NewRecorder()
	handler.GetStarship(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "GetStarship", mock.Anything, mock.Anything)
}
