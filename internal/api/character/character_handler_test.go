package character

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
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

// MockCharacterService is a mock implementation of the Service interface
type MockCharacterService struct {
	mock.Mock
}

func (m *MockCharacterService) ListCharacters(ctx context.Context) ([]types.Character, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]types.Character), args.Error(1)
}

func (m *MockCharacterService) GetCharacter(ctx context.Context, id int64) (*types.Character, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.Character), args.Error(1)
}

func (m *MockCharacterService) CreateCharacter(ctx context.Context, req types.CreateCharacterRequest) (*types.Character, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.Character), args.Error(1)
}

func (m *MockCharacterService) UpdateCharacter(ctx context.Context, id int64, req types.UpdateCharacterRequest) (*types.Character, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.Character), args.Error(1)
}

func (m *MockCharacterService) DeleteCharacter(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func withURLParam(req *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestCreateCharacterHandler(t *testing.T) {
	mockService := new(MockCharacterService)
	handler := NewHandlerImpl(mockService, slog.Default())

	mockService.On("CreateCharacter", mock.Anything, types.CreateCharacterRequest{
		Name: ptr("Leia Organa"), Height: ptr(150), Gender: ptr("female"),
	}).Return(&types.Character{ID: 5, Name: "Leia Organa", Height: 150, Gender: "female"}, nil).Once()

	body, _ := json.Marshal(map[string]any{"name": "Leia Organa", "height": 150, "gender": "female"})
	req := httptest.NewRequest(http.MethodPost, "/character", bytes.NewBuffer(body))
	w := httptest.NewRecorder()

	handler.CreateCharacter(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"data":{"id":5,"name":"Leia Organa","height":150,"gender":"female"}}`, w.Body.String())
	mockService.AssertExpectations(t)
}

func TestUpdateCharacterHandler_NotFound(t *testing.T) {
	mockService := new(MockCharacterService)
	handler := NewHandlerImpl(mockService, slog.Default())

	mockService.On("UpdateCharacter", mock.Anything, int64(12), types.UpdateCharacterRequest{Gender: ptr("n/a")}).
		Return(nil, fmt.Errorf("error updating character: %w", types.ErrNotFound)).Once()

	req := withURLParam(httptest.NewRequest(http.MethodPut, "/character/12", bytes.NewBufferString(`{"gender":"n/a"}`)), "id", "12")
	w := httptest.NewRecorder()
	handler.UpdateCharacter(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var resp types.MessageResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "character with id 12 does not exist", resp.Msg)
}

func TestDeleteCharacterHandler(t *testing.T) {
	mockService := new(MockCharacterService)
	handler := NewHandlerImpl(mockService, slog.Default())
	mockService.On("DeleteCharacter", mock.Anything, int64(4)).Return(nil).Once()

	req := withURLParam(httptest.NewRequest(http.MethodDelete, "/character/4", nil), "id", "4")
	w := httptest.NewRecorder()
	handler.DeleteCharacter(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"msg":"character 4 deleted"}`, w.Body.String())
}
