package db

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestMigrate_Idempotent(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, Migrate(db))
	require.NoError(t, Migrate(db))
}

func TestMigrate_CreatesAllTables(t *testing.T) {
	db := openTestDB(t)

	expected := []string{
		"content_items",
		"fitness_goals",
		"measurement_goals",
		"workout_completions",
		"suggestion_interactions",
	}
	for _, table := range expected {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name=?`, table).Scan(&name)
		require.NoError(t, err, "table %s should exist", table)
		assert.Equal(t, table, name)
	}
}

func TestMigrate_CreatesIndexes(t *testing.T) {
	db := openTestDB(t)

	expected := []string{
		"idx_content_items_type",
		"idx_fitness_goals_user",
		"idx_measurement_goals_user",
		"idx_workout_completions_user",
		"idx_suggestion_interactions_user",
	}
	for _, idx := range expected {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='index' AND name=?`, idx).Scan(&name)
		require.NoError(t, err, "index %s should exist", idx)
	}
}

func TestMigrate_RejectsUnknownEnumValues(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Exec(`INSERT INTO fitness_goals (id, user_id, goal, created_at) VALUES ('g1', 'u1', 'bulk', '2025-01-01T00:00:00Z')`)
	assert.Error(t, err)

	_, err = db.Exec(`INSERT INTO suggestion_interactions (id, content_type, content_id, confidence_level, action_taken, created_at)
		VALUES ('i1', 'workout', 'w1', 'low', 'skipped', '2025-01-01T00:00:00Z')`)
	assert.Error(t, err)
}

func TestMigrate_InteractionUserIDNullable(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Exec(`INSERT INTO suggestion_interactions (id, user_id, content_type, content_id, confidence_level, action_taken, created_at)
		VALUES ('i1', NULL, 'workout', 'w1', 'low', 'dismissed', '2025-01-01T00:00:00Z')`)
	require.NoError(t, err)

	var questions, responses string
	require.NoError(t, db.QueryRow(`SELECT questions_asked, user_responses FROM suggestion_interactions WHERE id = 'i1'`).Scan(&questions, &responses))
	assert.Equal(t, "[]", questions)
	assert.Equal(t, "{}", responses)
}
