package types

import (
	"encoding/json"
	"fmt"
)

// FavoriteKind names the entity a favorite row points at.
type FavoriteKind string

const (
	FavoritePlanet    FavoriteKind = "planet"
	FavoriteCharacter FavoriteKind = "character"
	FavoriteStarship  FavoriteKind = "starship"
)

// TargetColumn is the foreign key column of the join table, e.g. planet_id.
func (k FavoriteKind) TargetColumn() string {
	return string(k) + "_id"
}

func (k FavoriteKind) Valid() bool {
	switch k {
	case FavoritePlanet, FavoriteCharacter, FavoriteStarship:
		return true
	}
	return false
}

// Favorite is one join row between a user and a planet, character or starship.
type Favorite struct {
	ID       int64
	UserID   int64
	TargetID int64
	Kind     FavoriteKind
}

// MarshalJSON names the target column after the kind: {"id","user_id","planet_id"}.
func (f Favorite) MarshalJSON() ([]byte, error) {
	if !f.Kind.Valid() {
		return nil, fmt.Errorf("favorite %d has unknown kind %q", f.ID, f.Kind)
	}
	return json.Marshal(map[string]int64{
		"id":                  f.ID,
		"user_id":             f.UserID,
		f.Kind.TargetColumn(): f.TargetID,
	})
}

type FavoritePlanetEntry struct {
	FavoritePlanetID int64  `json:"favorite_planet_id"`
	Planet           Planet `json:"planet"`
}

type FavoriteCharacterEntry struct {
	FavoriteCharacterID int64     `json:"favorite_character_id"`
	Character           Character `json:"character"`
}

type FavoriteStarshipEntry struct {
	FavoriteStarshipID int64    `json:"favorite_starship_id"`
	Starship           Starship `json:"starship"`
}

// UserFavorites groups every favorite of one user. The slices are never nil
// so that an empty result serializes as [] rather than null.
type UserFavorites struct {
	Planets    []FavoritePlanetEntry    `json:"planets"`
	Characters []FavoriteCharacterEntry `json:"characters"`
	Starships  []FavoriteStarshipEntry  `json:"starships"`
}
