package domain

import "time"

type FitnessGoal struct {
	ID        string
	UserID    string
	Goal      Goal
	CreatedAt time.Time
}

type MeasurementGoal struct {
	ID                 string
	UserID             string
	TargetWeightKg     *float64
	TargetBodyFatPct   *float64
	TargetMuscleMassKg *float64
	CreatedAt          time.Time
}

// InferGoal derives a goal from measurement targets. Weight or body-fat
// targets imply fat loss; otherwise a muscle-mass target implies muscle gain.
func InferGoal(m *MeasurementGoal) (Goal, bool) {
	if m == nil {
		return "", false
	}
	if m.TargetWeightKg != nil || m.TargetBodyFatPct != nil {
		return GoalFatLoss, true
	}
	if m.TargetMuscleMassKg != nil {
		return GoalMuscleGain, true
	}
	return "", false
}
