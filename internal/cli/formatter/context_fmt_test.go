package formatter

import (
	"testing"
	"time"

	"github.com/alexanderramin/smartly/internal/domain"
	"github.com/alexanderramin/smartly/internal/suggest"
	"github.com/stretchr/testify/assert"
)

func TestFormatContext_WithGoalAndActivity(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	goal := domain.GoalStrength
	setAt := now.AddDate(0, 0, -3)
	last := now.Add(-26 * time.Hour)
	uc := domain.UserContext{
		UserID:     "u1",
		Goal:       &goal,
		GoalSource: domain.SourceFitnessGoals,
		GoalSetAt:  &setAt,
		Activity: domain.RecentActivity{
			Completions:     4,
			LastCompletedAt: &last,
			ConsecutiveDays: 2,
			Categories:      []string{"strength", "mobility"},
			AvgDurationMin:  40,
		},
		HasAnyGoals: true,
	}
	conf := suggest.ConfidenceResult{
		Level:   suggest.ConfidenceHigh,
		Signals: []suggest.ConfidenceSignal{suggest.SignalExplicitGoal, suggest.SignalRecentActivity},
	}
	questions := suggest.SelectQuestions(conf, uc)

	out := FormatContext(uc, conf, questions, now)
	assert.Contains(t, out, "CONTEXT FOR U1")
	assert.Contains(t, out, "HIGH")
	assert.Contains(t, out, "set by you")
	assert.Contains(t, out, "3d ago")
	assert.Contains(t, out, "4 workouts, avg 40m")
	assert.Contains(t, out, "Yesterday")
	assert.Contains(t, out, "2 days")
	assert.Contains(t, out, "explicit_goal, recent_activity")
	assert.Contains(t, out, "3 (mood, energy, equipment)")
	assert.NotContains(t, out, "Set your goals")
}

func TestFormatContext_AnonymousWithoutGoals(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	uc := domain.UserContext{}
	conf := suggest.ConfidenceResult{
		Level:   suggest.ConfidenceLow,
		Signals: []suggest.ConfidenceSignal{suggest.SignalNoGoal, suggest.SignalNoActivity},
	}

	out := FormatContext(uc, conf, suggest.SelectQuestions(conf, uc), now)
	assert.Contains(t, out, "ANONYMOUS")
	assert.Contains(t, out, "LOW")
	assert.Contains(t, out, "not set")
	assert.Contains(t, out, "no recent workouts")
	assert.Contains(t, out, "5 (mood, energy, goal, duration, equipment)")
	assert.Contains(t, out, "Set your goals")
}

func TestFormatContext_InferredGoalSource(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	goal := domain.GoalFatLoss
	uc := domain.UserContext{UserID: "u2", Goal: &goal, GoalSource: domain.SourceMeasurementGoals, HasAnyGoals: true}
	conf := suggest.ConfidenceResult{Level: suggest.ConfidenceMedium}

	out := FormatContext(uc, conf, nil, now)
	assert.Contains(t, out, "inferred from measurement targets")
	assert.Contains(t, out, "MEDIUM")
}
