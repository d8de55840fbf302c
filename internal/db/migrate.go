package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations. Every statement is idempotent so the
// full list is replayed on each open.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS content_items (
		id           TEXT PRIMARY KEY,
		content_type TEXT NOT NULL CHECK(content_type IN ('workout','program')),
		name         TEXT NOT NULL,
		category     TEXT NOT NULL DEFAULT '',
		difficulty   TEXT NOT NULL DEFAULT 'intermediate'
		             CHECK(difficulty IN ('beginner','intermediate','advanced')),
		duration_min INTEGER NOT NULL DEFAULT 0,
		equipment    TEXT NOT NULL DEFAULT 'bodyweight'
		             CHECK(equipment IN ('bodyweight','equipment')),
		format       TEXT NOT NULL DEFAULT '',
		image_url    TEXT NOT NULL DEFAULT '',
		description  TEXT NOT NULL DEFAULT '',
		is_premium   INTEGER NOT NULL DEFAULT 0,
		is_visible   INTEGER NOT NULL DEFAULT 1,
		created_at   TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_content_items_type ON content_items(content_type, is_visible)`,

	`CREATE TABLE IF NOT EXISTS fitness_goals (
		id         TEXT PRIMARY KEY,
		user_id    TEXT NOT NULL,
		goal       TEXT NOT NULL
		           CHECK(goal IN ('fat_loss','muscle_gain','strength','flexibility','general_fitness')),
		created_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_fitness_goals_user ON fitness_goals(user_id, created_at)`,

	`CREATE TABLE IF NOT EXISTS measurement_goals (
		id                    TEXT PRIMARY KEY,
		user_id               TEXT NOT NULL,
		target_weight_kg      REAL,
		target_body_fat_pct   REAL,
		target_muscle_mass_kg REAL,
		created_at            TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_measurement_goals_user ON measurement_goals(user_id, created_at)`,

	`CREATE TABLE IF NOT EXISTS workout_completions (
		id           TEXT PRIMARY KEY,
		user_id      TEXT NOT NULL,
		content_id   TEXT NOT NULL,
		content_type TEXT NOT NULL DEFAULT 'workout',
		category     TEXT NOT NULL DEFAULT '',
		difficulty   TEXT NOT NULL DEFAULT '',
		duration_min INTEGER NOT NULL DEFAULT 0,
		completed_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_workout_completions_user ON workout_completions(user_id, completed_at)`,

	`CREATE TABLE IF NOT EXISTS suggestion_interactions (
		id               TEXT PRIMARY KEY,
		user_id          TEXT,
		content_type     TEXT NOT NULL,
		content_id       TEXT NOT NULL,
		confidence_level TEXT NOT NULL CHECK(confidence_level IN ('low','medium','high')),
		questions_asked  TEXT NOT NULL DEFAULT '[]',
		user_responses   TEXT NOT NULL DEFAULT '{}',
		action_taken     TEXT NOT NULL
		                 CHECK(action_taken IN ('accepted','alternative_1','alternative_2','dismissed')),
		created_at       TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_suggestion_interactions_user ON suggestion_interactions(user_id, created_at)`,
}
