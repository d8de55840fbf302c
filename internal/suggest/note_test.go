package suggest

import (
	"testing"

	"github.com/alexanderramin/smartly/internal/domain"
	"github.com/alexanderramin/smartly/internal/testutil"
	"github.com/stretchr/testify/assert"
)

func streakContext(days int, opts ...testutil.ContextOption) domain.UserContext {
	var cs []domain.WorkoutCompletion
	for d := 0; d < days; d++ {
		cs = append(cs, *testutil.NewTestCompletion("u1", "w", testNow.AddDate(0, 0, -d)))
	}
	opts = append(opts, testutil.WithActivity(cs, testNow))
	return testutil.NewTestUserContext("u1", opts...)
}

func TestGenerateNote_CautionOnOvertraining(t *testing.T) {
	hiit := testutil.NewTestContentItem("Tabata", testutil.WithCategory("hiit"))
	note := GenerateNote(streakContext(6), *hiit)
	assert.Equal(t, NoteCaution, note.Type)
	assert.Contains(t, note.Message, "6 days in a row")
}

func TestGenerateNote_CautionBeatsEncouragement(t *testing.T) {
	heavy := testutil.NewTestContentItem("Heavy day",
		testutil.WithCategory("strength"),
		testutil.WithDifficulty(domain.DifficultyAdvanced))
	uc := streakContext(5, testutil.WithGoal(domain.GoalStrength, domain.SourceFitnessGoals, testNow))

	assert.Equal(t, NoteCaution, GenerateNote(uc, *heavy).Type)
}

func TestGenerateNote_LongStreakEasyItemEncourages(t *testing.T) {
	easy := testutil.NewTestContentItem("Stretch", testutil.WithDifficulty(domain.DifficultyBeginner))
	note := GenerateNote(streakContext(7), *easy)
	assert.Equal(t, NoteEncouragement, note.Type)
	assert.Contains(t, note.Message, "7-day streak")
}

func TestGenerateNote_GoalAlignedEncourages(t *testing.T) {
	run := testutil.NewTestContentItem("Intervals", testutil.WithCategory("cardio"))
	uc := testutil.NewTestUserContext("u1",
		testutil.WithGoal(domain.GoalFatLoss, domain.SourceMeasurementGoals, testNow))
	note := GenerateNote(uc, *run)
	assert.Equal(t, NoteEncouragement, note.Type)
	assert.Contains(t, note.Message, "fat loss")
}

func TestGenerateNote_InfoFallbacks(t *testing.T) {
	item := testutil.NewTestContentItem("Circuit", testutil.WithCategory("full_body"), testutil.WithDuration(25))

	cold := GenerateNote(testutil.NewTestUserContext("u1"), *item)
	assert.Equal(t, NoteInfo, cold.Type)
	assert.Contains(t, cold.Message, "25-minute full body session")

	c := testutil.NewTestCompletion("u1", "old", testNow.AddDate(0, 0, -4))
	returning := testutil.NewTestUserContext("u1", testutil.WithActivity([]domain.WorkoutCompletion{*c}, testNow))
	note := GenerateNote(returning, *item)
	assert.Equal(t, NoteInfo, note.Type)
	assert.Contains(t, note.Message, "4 days since your last workout")
}
