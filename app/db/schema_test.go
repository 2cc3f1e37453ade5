package database

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Deleting a target must take its favorites with it, while a user with
// favorites cannot be deleted. Both rules live in the schema only.
func TestInitSchema_Constraints(t *testing.T) {
	raw, err := migrationFS.ReadFile("migrations/000001_init_schema.up.sql")
	require.NoError(t, err)
	schema := strings.Join(strings.Fields(string(raw)), " ")

	for _, fk := range []string{
		"planet_id BIGINT NOT NULL REFERENCES planets (id) ON DELETE CASCADE",
		"character_id BIGINT NOT NULL REFERENCES characters (id) ON DELETE CASCADE",
		"starship_id BIGINT NOT NULL REFERENCES starships (id) ON DELETE CASCADE",
	} {
		assert.Contains(t, schema, fk)
	}
	assert.Equal(t, 3, strings.Count(schema, "ON DELETE CASCADE"))
	assert.Equal(t, 3, strings.Count(schema,
		"user_id BIGINT NOT NULL REFERENCES users (id) ON DELETE RESTRICT"))

	for _, col := range []string{
		"email VARCHAR(120) NOT NULL UNIQUE",
		"model VARCHAR(50) NOT NULL UNIQUE",
	} {
		assert.Contains(t, schema, col)
	}
	// planets and characters
	assert.Equal(t, 2, strings.Count(schema, "name VARCHAR(50) NOT NULL UNIQUE"))
}

func TestInitSchema_DownDropsEveryTable(t *testing.T) {
	raw, err := migrationFS.ReadFile("migrations/000001_init_schema.down.sql")
	require.NoError(t, err)
	down := string(raw)

	for _, table := range []string{
		"users", "planets", "characters", "starships",
		"favorite_planets", "favorite_characters", "favorite_starships",
	} {
		assert.Contains(t, down, "DROP TABLE IF EXISTS "+table+";")
	}
}
