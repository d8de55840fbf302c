package formatter

import (
	"testing"

	"github.com/alexanderramin/smartly/internal/domain"
	"github.com/alexanderramin/smartly/internal/suggest"
	"github.com/stretchr/testify/assert"
)

func scored(name string, reasons ...string) suggest.ScoredContent {
	sc := suggest.ScoredContent{Item: domain.ContentItem{
		ID:          name + "-id",
		ContentType: domain.ContentWorkout,
		Name:        name,
		Category:    "hiit",
		Difficulty:  domain.DifficultyIntermediate,
		DurationMin: 30,
		Equipment:   domain.EquipmentBodyweight,
		IsVisible:   true,
	}}
	for _, r := range reasons {
		sc.Reasons = append(sc.Reasons, suggest.Reason{Message: r})
	}
	return sc
}

func TestFormatSuggestion_MainReasonsNoteAndAlternatives(t *testing.T) {
	s := &suggest.Suggestion{
		ContentType:  domain.ContentWorkout,
		Main:         scored("Tabata Blast", "Matches your fat loss goal", "Fits your 30 min"),
		Alternatives: []suggest.ScoredContent{scored("Core Burner", "Something new"), scored("Jump Rope Intervals")},
	}
	note := suggest.SmartNote{Type: suggest.NoteCaution, Message: "You trained hard yesterday."}

	out := FormatSuggestion(s, note)
	assert.Contains(t, out, "YOUR WORKOUT")
	assert.Contains(t, out, "Tabata Blast")
	assert.Contains(t, out, "Matches your fat loss goal")
	assert.Contains(t, out, "Fits your 30 min")
	assert.Contains(t, out, "You trained hard yesterday.")
	assert.Contains(t, out, "Heads up")
	assert.Contains(t, out, "ALTERNATIVES")
	assert.Contains(t, out, "1. Core Burner")
	assert.Contains(t, out, "2. Jump Rope Intervals")
	assert.Contains(t, out, "Something new")
}

func TestFormatSuggestion_NoAlternatives(t *testing.T) {
	s := &suggest.Suggestion{ContentType: domain.ContentProgram, Main: scored("12 Week Strength")}
	out := FormatSuggestion(s, suggest.SmartNote{})
	assert.Contains(t, out, "YOUR PROGRAM")
	assert.NotContains(t, out, "ALTERNATIVES")
	assert.NotContains(t, out, "Why this one")
}

func TestFormatQuestionTitle(t *testing.T) {
	q, ok := suggest.LookupQuestion(suggest.QuestionMood)
	assert.True(t, ok)
	out := FormatQuestionTitle(q, 0, 3)
	assert.Contains(t, out, "[1/3]")
	assert.Contains(t, out, q.Prompt)
}

func TestFormatOutcome(t *testing.T) {
	assert.Contains(t, FormatOutcome("accepted", "Tabata"), "Tabata")
	assert.Contains(t, FormatOutcome("alternative_2", "Core"), "Switched to")
	assert.Contains(t, FormatOutcome("dismissed", ""), "dismissed")
	assert.Contains(t, FormatNoContent("workout"), "No workouts available")
}
