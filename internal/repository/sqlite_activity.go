package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/smartly/internal/db"
	"github.com/alexanderramin/smartly/internal/domain"
)

type SQLiteActivityRepo struct {
	db db.DBTX
}

func NewSQLiteActivityRepo(conn db.DBTX) *SQLiteActivityRepo {
	return &SQLiteActivityRepo{db: conn}
}

func (r *SQLiteActivityRepo) Create(ctx context.Context, c *domain.WorkoutCompletion) error {
	query := `INSERT INTO workout_completions
		(id, user_id, content_id, content_type, category, difficulty, duration_min, completed_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		c.ID,
		c.UserID,
		c.ContentID,
		string(c.ContentType),
		c.Category,
		string(c.Difficulty),
		c.DurationMin,
		formatTime(c.CompletedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting workout completion: %w", err)
	}
	return nil
}

// ListSince returns completions at or after since, most recent first.
func (r *SQLiteActivityRepo) ListSince(ctx context.Context, userID string, since time.Time) ([]domain.WorkoutCompletion, error) {
	query := `SELECT id, user_id, content_id, content_type, category, difficulty, duration_min, completed_at
		FROM workout_completions
		WHERE user_id = ? AND completed_at >= ?
		ORDER BY completed_at DESC`
	rows, err := r.db.QueryContext(ctx, query, userID, formatTime(since))
	if err != nil {
		return nil, fmt.Errorf("listing completions: %w", err)
	}
	defer rows.Close()

	var out []domain.WorkoutCompletion
	for rows.Next() {
		var c domain.WorkoutCompletion
		var contentType, difficulty, completedAt string
		if err := rows.Scan(&c.ID, &c.UserID, &c.ContentID, &contentType, &c.Category,
			&difficulty, &c.DurationMin, &completedAt); err != nil {
			return nil, fmt.Errorf("scanning completion: %w", err)
		}
		c.ContentType = domain.ContentType(contentType)
		c.Difficulty = domain.Difficulty(difficulty)
		if c.CompletedAt, err = parseTime(completedAt); err != nil {
			return nil, fmt.Errorf("parsing completed_at: %w", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating completions: %w", err)
	}
	return out, nil
}
