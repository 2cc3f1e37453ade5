package types

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFavorite_MarshalJSONUsesKindColumn(t *testing.T) {
	body, err := json.Marshal(Favorite{ID: 7, UserID: 1, TargetID: 3, Kind: FavoriteStarship})
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":7,"user_id":1,"starship_id":3}`, string(body))

	_, err = json.Marshal(Favorite{ID: 1, Kind: "droid"})
	assert.Error(t, err)
}

func TestUser_PasswordNeverSerialized(t *testing.T) {
	body, err := json.Marshal(User{ID: 1, Email: "luke@rebellion.org", PasswordHash: "secret-hash", IsActive: true})
	require.NoError(t, err)
	assert.NotContains(t, string(body), "secret-hash")
	assert.NotContains(t, string(body), "password")
}

func TestValidationError_IsErrValidation(t *testing.T) {
	err := NewValidationError("field name is required")
	assert.True(t, errors.Is(err, ErrValidation))
	assert.Equal(t, "field name is required", err.Error())
}
