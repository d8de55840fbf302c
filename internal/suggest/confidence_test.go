package suggest

import (
	"testing"
	"time"

	"github.com/alexanderramin/smartly/internal/domain"
	"github.com/alexanderramin/smartly/internal/testutil"
	"github.com/stretchr/testify/assert"
)

var testNow = time.Date(2025, 6, 15, 18, 0, 0, 0, time.UTC)

func recentCompletions(days ...int) []domain.WorkoutCompletion {
	var out []domain.WorkoutCompletion
	for i, d := range days {
		c := testutil.NewTestCompletion("u1", "done-"+string(rune('a'+i)), testNow.AddDate(0, 0, -d))
		out = append(out, *c)
	}
	return out
}

func TestEvaluateConfidence_Tiers(t *testing.T) {
	fresh := testNow.AddDate(0, 0, -10)
	stale := testNow.AddDate(0, -6, 0)

	cases := []struct {
		name string
		uc   domain.UserContext
		want ConfidenceLevel
	}{
		{
			name: "cold start",
			uc:   testutil.NewTestUserContext("u1"),
			want: ConfidenceLow,
		},
		{
			name: "explicit goal and activity",
			uc: testutil.NewTestUserContext("u1",
				testutil.WithGoal(domain.GoalStrength, domain.SourceFitnessGoals, fresh),
				testutil.WithActivity(recentCompletions(1, 2), testNow)),
			want: ConfidenceHigh,
		},
		{
			name: "goal only",
			uc: testutil.NewTestUserContext("u1",
				testutil.WithGoal(domain.GoalStrength, domain.SourceFitnessGoals, fresh)),
			want: ConfidenceMedium,
		},
		{
			name: "activity only",
			uc: testutil.NewTestUserContext("u1",
				testutil.WithActivity(recentCompletions(0), testNow)),
			want: ConfidenceMedium,
		},
		{
			name: "stale goal with activity",
			uc: testutil.NewTestUserContext("u1",
				testutil.WithGoal(domain.GoalFatLoss, domain.SourceFitnessGoals, stale),
				testutil.WithActivity(recentCompletions(1), testNow)),
			want: ConfidenceMedium,
		},
		{
			name: "inferred goal with activity",
			uc: testutil.NewTestUserContext("u1",
				testutil.WithGoal(domain.GoalFatLoss, domain.SourceMeasurementGoals, fresh),
				testutil.WithActivity(recentCompletions(1), testNow)),
			want: ConfidenceMedium,
		},
		{
			name: "old activity only counts as none",
			uc: testutil.NewTestUserContext("u1",
				testutil.WithActivity(recentCompletions(30), testNow)),
			want: ConfidenceLow,
		},
		{
			name: "still loading",
			uc:   domain.Loading("u1"),
			want: ConfidenceLow,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := EvaluateConfidence(tc.uc, DefaultConfidenceOptions(testNow))
			assert.Equal(t, tc.want, got.Level)
		})
	}
}

func TestEvaluateConfidence_Signals(t *testing.T) {
	uc := testutil.NewTestUserContext("u1",
		testutil.WithGoal(domain.GoalFatLoss, domain.SourceFitnessGoals, testNow.AddDate(-1, 0, 0)))
	got := EvaluateConfidence(uc, DefaultConfidenceOptions(testNow))

	assert.True(t, got.Has(SignalExplicitGoal))
	assert.True(t, got.Has(SignalStaleGoal))
	assert.True(t, got.Has(SignalNoActivity))
	assert.False(t, got.Has(SignalRecentActivity))
}

func TestEvaluateConfidence_Deterministic(t *testing.T) {
	uc := testutil.NewTestUserContext("u1",
		testutil.WithGoal(domain.GoalStrength, domain.SourceFitnessGoals, testNow),
		testutil.WithActivity(recentCompletions(0, 1), testNow))
	first := EvaluateConfidence(uc, DefaultConfidenceOptions(testNow))
	for i := 0; i < 3; i++ {
		assert.Equal(t, first, EvaluateConfidence(uc, DefaultConfidenceOptions(testNow)))
	}
}
