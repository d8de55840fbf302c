package suggest

import (
	"testing"

	"github.com/alexanderramin/smartly/internal/domain"
	"github.com/alexanderramin/smartly/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func questionIDs(qs []Question) []QuestionID {
	ids := make([]QuestionID, len(qs))
	for i, q := range qs {
		ids[i] = q.ID
	}
	return ids
}

func TestSelectQuestions_CountByConfidence(t *testing.T) {
	uc := testutil.NewTestUserContext("u1")

	low := SelectQuestions(ConfidenceResult{Level: ConfidenceLow}, uc)
	medium := SelectQuestions(ConfidenceResult{Level: ConfidenceMedium}, uc)
	high := SelectQuestions(ConfidenceResult{Level: ConfidenceHigh}, uc)

	assert.Equal(t, []QuestionID{QuestionMood, QuestionEnergy, QuestionGoal, QuestionDuration, QuestionEquipment}, questionIDs(low))
	assert.Equal(t, []QuestionID{QuestionEnergy, QuestionGoal, QuestionDuration, QuestionEquipment}, questionIDs(medium))
	assert.Equal(t, []QuestionID{QuestionEnergy, QuestionGoal, QuestionDuration}, questionIDs(high))
}

func TestSelectQuestions_NeverExceedsCeilingOrDuplicates(t *testing.T) {
	for _, level := range []ConfidenceLevel{ConfidenceLow, ConfidenceMedium, ConfidenceHigh, "unknown"} {
		qs := SelectQuestions(ConfidenceResult{Level: level}, testutil.NewTestUserContext(""))
		assert.LessOrEqual(t, len(qs), MaxQuestions)
		seen := map[QuestionID]bool{}
		for _, q := range qs {
			assert.False(t, seen[q.ID], "duplicate %s at level %s", q.ID, level)
			seen[q.ID] = true
		}
		assert.True(t, seen[QuestionGoal], "goal question is always asked")
	}
}

func TestSelectQuestions_GoalDefaultFromContext(t *testing.T) {
	uc := testutil.NewTestUserContext("u1",
		testutil.WithGoal(domain.GoalMuscleGain, domain.SourceMeasurementGoals, testNow))

	qs := SelectQuestions(ConfidenceResult{Level: ConfidenceLow}, uc)
	var goalQ *Question
	for i := range qs {
		if qs[i].ID == QuestionGoal {
			goalQ = &qs[i]
		}
	}
	require.NotNil(t, goalQ)
	assert.Equal(t, string(domain.GoalMuscleGain), goalQ.Default)
}

func TestSelectQuestions_NoGoalHasNoDefault(t *testing.T) {
	uc := testutil.NewTestUserContext("u1")
	assert.False(t, uc.HasAnyGoals)

	qs := SelectQuestions(EvaluateConfidence(uc, DefaultConfidenceOptions(testNow)), uc)
	require.Len(t, qs, MaxQuestions)
	for _, q := range qs {
		if q.ID == QuestionGoal {
			assert.Empty(t, q.Default)
		}
	}
}

func TestSelectQuestions_DurationDefaultFromHabit(t *testing.T) {
	c := testutil.NewTestCompletion("u1", "w1", testNow, testutil.WithCompletionDuration(50))
	uc := testutil.NewTestUserContext("u1", testutil.WithActivity([]domain.WorkoutCompletion{*c}, testNow))

	qs := SelectQuestions(ConfidenceResult{Level: ConfidenceLow}, uc)
	var found bool
	for _, q := range qs {
		if q.ID == QuestionDuration {
			found = true
			assert.Equal(t, "45", q.Default)
		}
	}
	assert.True(t, found)
}

func TestSelectQuestions_ContextResolvedRankLast(t *testing.T) {
	c := testutil.NewTestCompletion("u1", "w1", testNow, testutil.WithCompletionDuration(30))
	uc := testutil.NewTestUserContext("u1",
		testutil.WithGoal(domain.GoalMuscleGain, domain.SourceFitnessGoals, testNow),
		testutil.WithActivity([]domain.WorkoutCompletion{*c}, testNow))

	high := SelectQuestions(ConfidenceResult{Level: ConfidenceHigh}, uc)
	assert.Equal(t, []QuestionID{QuestionMood, QuestionEnergy, QuestionEquipment}, questionIDs(high))

	medium := SelectQuestions(ConfidenceResult{Level: ConfidenceMedium}, uc)
	assert.Equal(t, []QuestionID{QuestionMood, QuestionEnergy, QuestionGoal, QuestionEquipment}, questionIDs(medium))
	for _, q := range medium {
		if q.ID == QuestionGoal {
			assert.Equal(t, string(domain.GoalMuscleGain), q.Default)
		}
	}
}

func TestSelectQuestions_DoesNotMutateCatalog(t *testing.T) {
	uc := testutil.NewTestUserContext("u1",
		testutil.WithGoal(domain.GoalStrength, domain.SourceFitnessGoals, testNow))
	_ = SelectQuestions(ConfidenceResult{Level: ConfidenceLow}, uc)

	q, ok := LookupQuestion(QuestionGoal)
	require.True(t, ok)
	assert.Empty(t, q.Default)
}

func TestQuestion_Accepts(t *testing.T) {
	energy, _ := LookupQuestion(QuestionEnergy)
	assert.True(t, energy.Accepts("2"))
	assert.True(t, energy.Accepts("1"))
	assert.False(t, energy.Accepts("11"))
	assert.False(t, energy.Accepts("high"))

	equipment, _ := LookupQuestion(QuestionEquipment)
	assert.True(t, equipment.Accepts("bodyweight"))
	assert.True(t, equipment.Accepts(EquipmentAny))
	assert.False(t, equipment.Accepts("kettlebell"))

	goal, _ := LookupQuestion(QuestionGoal)
	assert.True(t, goal.Accepts("fat_loss"))
	assert.False(t, goal.Accepts("3"))
}

func TestAnswers_SetReplaces(t *testing.T) {
	a := Answers{}
	a.Set(QuestionDuration, "30")
	a.Set(QuestionDuration, "45")
	n, ok := a.Number(QuestionDuration)
	require.True(t, ok)
	assert.Equal(t, 45.0, n)
	assert.Len(t, a, 1)
}
