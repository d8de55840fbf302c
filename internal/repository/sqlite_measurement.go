package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/alexanderramin/smartly/internal/db"
	"github.com/alexanderramin/smartly/internal/domain"
)

type SQLiteMeasurementGoalRepo struct {
	db db.DBTX
}

func NewSQLiteMeasurementGoalRepo(conn db.DBTX) *SQLiteMeasurementGoalRepo {
	return &SQLiteMeasurementGoalRepo{db: conn}
}

func (r *SQLiteMeasurementGoalRepo) Create(ctx context.Context, m *domain.MeasurementGoal) error {
	query := `INSERT INTO measurement_goals
		(id, user_id, target_weight_kg, target_body_fat_pct, target_muscle_mass_kg, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		m.ID,
		m.UserID,
		nullableFloatToValue(m.TargetWeightKg),
		nullableFloatToValue(m.TargetBodyFatPct),
		nullableFloatToValue(m.TargetMuscleMassKg),
		formatTime(m.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting measurement goal: %w", err)
	}
	return nil
}

func (r *SQLiteMeasurementGoalRepo) Latest(ctx context.Context, userID string) (*domain.MeasurementGoal, error) {
	query := `SELECT id, user_id, target_weight_kg, target_body_fat_pct, target_muscle_mass_kg, created_at
		FROM measurement_goals
		WHERE user_id = ?
		ORDER BY created_at DESC, rowid DESC
		LIMIT 1`
	row := r.db.QueryRowContext(ctx, query, userID)

	var m domain.MeasurementGoal
	var weight, bodyFat, muscle sql.NullFloat64
	var createdAt string
	if err := row.Scan(&m.ID, &m.UserID, &weight, &bodyFat, &muscle, &createdAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("scanning measurement goal: %w", err)
	}

	m.TargetWeightKg = parseNullableFloat(weight)
	m.TargetBodyFatPct = parseNullableFloat(bodyFat)
	m.TargetMuscleMassKg = parseNullableFloat(muscle)
	t, err := parseTime(createdAt)
	if err != nil {
		return nil, fmt.Errorf("parsing measurement goal created_at: %w", err)
	}
	m.CreatedAt = t
	return &m, nil
}
