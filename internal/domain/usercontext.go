package domain

import "time"

// UserContext is the per-session snapshot of a user's fitness state.
// Goal is nil unless it came from an explicit goal record or was inferred
// from measurement targets; GoalSource says which.
type UserContext struct {
	UserID      string
	Goal        *Goal
	GoalSource  GoalSource
	GoalSetAt   *time.Time
	Activity    RecentActivity
	Measurement *MeasurementGoal
	HasAnyGoals bool
	IsLoading   bool
	LoadedAt    time.Time
}

// Loading returns the unsettled snapshot handed out before reads complete.
func Loading(userID string) UserContext {
	return UserContext{
		UserID:     userID,
		GoalSource: SourceManual,
		Activity:   RecentActivity{CompletedIDs: map[string]bool{}},
		IsLoading:  true,
	}
}

// ResolveGoal applies the goal priority cascade: an explicit goal wins,
// measurement inference is the fallback, otherwise the goal stays unset.
func ResolveGoal(explicit *FitnessGoal, measurement *MeasurementGoal) (*Goal, GoalSource, *time.Time) {
	if explicit != nil && explicit.Goal.Valid() {
		g := explicit.Goal
		setAt := explicit.CreatedAt
		return &g, SourceFitnessGoals, &setAt
	}
	if g, ok := InferGoal(measurement); ok {
		setAt := measurement.CreatedAt
		return &g, SourceMeasurementGoals, &setAt
	}
	return nil, SourceManual, nil
}

func (u UserContext) GoalValue() Goal {
	if u.Goal == nil {
		return ""
	}
	return *u.Goal
}
