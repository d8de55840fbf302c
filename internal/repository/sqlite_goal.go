package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/alexanderramin/smartly/internal/db"
	"github.com/alexanderramin/smartly/internal/domain"
)

type SQLiteFitnessGoalRepo struct {
	db db.DBTX
}

func NewSQLiteFitnessGoalRepo(conn db.DBTX) *SQLiteFitnessGoalRepo {
	return &SQLiteFitnessGoalRepo{db: conn}
}

func (r *SQLiteFitnessGoalRepo) Create(ctx context.Context, g *domain.FitnessGoal) error {
	query := `INSERT INTO fitness_goals (id, user_id, goal, created_at) VALUES (?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query, g.ID, g.UserID, string(g.Goal), formatTime(g.CreatedAt))
	if err != nil {
		return fmt.Errorf("inserting fitness goal: %w", err)
	}
	return nil
}

func (r *SQLiteFitnessGoalRepo) Latest(ctx context.Context, userID string) (*domain.FitnessGoal, error) {
	query := `SELECT id, user_id, goal, created_at FROM fitness_goals
		WHERE user_id = ?
		ORDER BY created_at DESC, rowid DESC
		LIMIT 1`
	row := r.db.QueryRowContext(ctx, query, userID)

	var g domain.FitnessGoal
	var goal, createdAt string
	if err := row.Scan(&g.ID, &g.UserID, &goal, &createdAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("scanning fitness goal: %w", err)
	}

	g.Goal = domain.Goal(goal)
	t, err := parseTime(createdAt)
	if err != nil {
		return nil, fmt.Errorf("parsing fitness goal created_at: %w", err)
	}
	g.CreatedAt = t
	return &g, nil
}
