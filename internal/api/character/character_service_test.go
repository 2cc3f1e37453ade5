package character

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/FACorreiaa/go-starwars-favorites/app/cache"
	"github.com/FACorreiaa/go-starwars-favorites/internal/types"
)

// MockCharacterRepo is a mock implementation of the Repository interface
type MockCharacterRepo struct {
	mock.Mock
}

func (m *MockCharacterRepo) List(ctx context.Context) ([]types.Character, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]types.Character), args.Error(1)
}

func (m *MockCharacterRepo) Get(ctx context.Context, id int64) (*types.Character, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.Character), args.Error(1)
}

func (m *MockCharacterRepo) Create(ctx context.Context, name string, height int, gender string) (*types.Character, error) {
	args := m.Called(ctx, name, height, gender)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.Character), args.Error(1)
}

func (m *MockCharacterRepo) Update(ctx context.Context, id int64, params types.UpdateCharacterRequest) (*types.Character, error) {
	args := m.Called(ctx, id, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.Character), args.Error(1)
}

func (m *MockCharacterRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func newTestService(repo Repository) *ServiceImpl {
	return NewCharacterService(repo, cache.New(time.Minute, time.Minute), slog.Default())
}

func ptr[T any](v T) *T { return &v }

func TestCreateCharacter(t *testing.T) {
	tests := []struct {
		name      string
		req       types.CreateCharacterRequest
		wantField string
	}{
		{"Missing name", types.CreateCharacterRequest{Height: ptr(172), Gender: ptr("male")}, "name"},
		{"Missing height", types.CreateCharacterRequest{Name: ptr("Luke Skywalker"), Gender: ptr("male")}, "height"},
		{"Missing gender", types.CreateCharacterRequest{Name: ptr("Luke Skywalker"), Height: ptr(172)}, "gender"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockCharacterRepo)
			service := newTestService(mockRepo)

			_, err := service.CreateCharacter(context.Background(), tt.req)
			require.Error(t, err)
			assert.ErrorIs(t, err, types.ErrValidation)
			assert.Equal(t, fmt.Sprintf("field %s is required", tt.wantField), err.Error())
			mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})
	}

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(MockCharacterRepo)
		service := newTestService(mockRepo)
		expected := &types.Character{ID: 1, Name: "Luke Skywalker", Height: 172, Gender: "male"}

		mockRepo.On("Create", mock.Anything, "Luke Skywalker", 172, "male").Return(expected, nil).Once()

		c, err := service.CreateCharacter(context.Background(), types.CreateCharacterRequest{
			Name: ptr("Luke Skywalker"), Height: ptr(172), Gender: ptr("male"),
		})
		require.NoError(t, err)
		assert.Equal(t, expected, c)
		mockRepo.AssertExpectations(t)
	})
}

func TestListCharacters_Error(t *testing.T) {
	mockRepo := new(MockCharacterRepo)
	service := newTestService(mockRepo)
	expectedError := errors.New("database error")

	mockRepo.On("List", mock.Anything).Return(nil, expectedError).Once()

	characters, err := service.ListCharacters(context.Background())
	assert.Nil(t, characters)
	assert.ErrorIs(t, err, expectedError)
}

func TestUpdateCharacter_InvalidPayload(t *testing.T) {
	mockRepo := new(MockCharacterRepo)
	service := newTestService(mockRepo)

	_, err := service.UpdateCharacter(context.Background(), 1, types.UpdateCharacterRequest{Height: ptr(-1)})
	assert.ErrorIs(t, err, types.ErrValidation)
	mockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateCharacter_HeightBeyondIntegerColumn(t *testing.T) {
	mockRepo := new(MockCharacterRepo)
	service := newTestService(mockRepo)

	_, err := service.CreateCharacter(context.Background(), types.CreateCharacterRequest{
		Name: ptr("Chewbacca"), Height: ptr(3_000_000_000), Gender: ptr("male"),
	})
	assert.ErrorIs(t, err, types.ErrValidation)
	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything, mock.Anything)

	_, err = service.UpdateCharacter(context.Background(), 1, types.UpdateCharacterRequest{Height: ptr(3_000_000_000)})
	assert.ErrorIs(t, err, types.ErrValidation)
	mockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestDeleteCharacter_FlushesCache(t *testing.T) {
	mockRepo := new(MockCharacterRepo)
	service := newTestService(mockRepo)
	ctx := context.Background()

	mockRepo.On("List", mock.Anything).Return([]types.Character{{ID: 1, Name: "Yoda", Height: 66, Gender: "male"}}, nil)
	mockRepo.On("Delete", mock.Anything, int64(1)).Return(nil).Once()

	_, err := service.ListCharacters(ctx)
	require.NoError(t, err)
	require.NoError(t, service.DeleteCharacter(ctx, 1))
	_, err = service.ListCharacters(ctx)
	require.NoError(t, err)

	mockRepo.AssertNumberOfCalls(t, "List", 2)
}
