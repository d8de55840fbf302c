package suggest

import (
	"sort"
	"strconv"
	"strings"

	"github.com/alexanderramin/smartly/internal/domain"
)

type QuestionID string

const (
	QuestionMood      QuestionID = "mood"
	QuestionEnergy    QuestionID = "energy"
	QuestionGoal      QuestionID = "goal"
	QuestionDuration  QuestionID = "duration"
	QuestionEquipment QuestionID = "equipment"
)

// MaxQuestions is the size of the fixed question catalog.
const MaxQuestions = 5

// EquipmentAny is the equipment answer that disables equipment scoring.
const EquipmentAny = "any"

// DurationBrackets are the selectable session lengths in minutes.
var DurationBrackets = []int{15, 30, 45, 60}

type Option struct {
	Label string
	Value string
}

type Question struct {
	ID      QuestionID
	Prompt  string
	Options []Option
	// Default is the pre-selected option value, empty when none.
	Default string
}

// Accepts reports whether value is a legal answer. Energy and duration also
// accept free numeric values inside their range.
func (q Question) Accepts(value string) bool {
	for _, o := range q.Options {
		if o.Value == value {
			return true
		}
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return false
	}
	switch q.ID {
	case QuestionEnergy:
		return n >= 1 && n <= 10
	case QuestionDuration:
		return n > 0 && n <= 240
	}
	return false
}

func (q Question) OptionLabel(value string) string {
	for _, o := range q.Options {
		if o.Value == value {
			return o.Label
		}
	}
	return value
}

var questionCatalog = []Question{
	{
		ID:     QuestionMood,
		Prompt: "How are you feeling today?",
		Options: []Option{
			{Label: "Motivated", Value: "motivated"},
			{Label: "Neutral", Value: "neutral"},
			{Label: "Tired", Value: "tired"},
			{Label: "Stressed", Value: "stressed"},
		},
	},
	{
		ID:     QuestionEnergy,
		Prompt: "How much energy do you have?",
		Options: []Option{
			{Label: "Running on empty (1-3)", Value: "2"},
			{Label: "Steady (4-6)", Value: "5"},
			{Label: "Fired up (7-10)", Value: "8"},
		},
	},
	{
		ID:      QuestionGoal,
		Prompt:  "What's your main goal right now?",
		Options: goalOptions(),
	},
	{
		ID:     QuestionDuration,
		Prompt: "How much time do you have?",
		Options: []Option{
			{Label: "15 min", Value: "15"},
			{Label: "30 min", Value: "30"},
			{Label: "45 min", Value: "45"},
			{Label: "60 min", Value: "60"},
		},
	},
	{
		ID:     QuestionEquipment,
		Prompt: "What equipment do you have?",
		Options: []Option{
			{Label: "Bodyweight only", Value: string(domain.EquipmentBodyweight)},
			{Label: "Gym or home equipment", Value: string(domain.EquipmentRequired)},
			{Label: "Either works", Value: EquipmentAny},
		},
	},
}

// questionPriority decides which questions survive when fewer are asked.
var questionPriority = map[QuestionID]int{
	QuestionGoal:      0,
	QuestionDuration:  1,
	QuestionEnergy:    2,
	QuestionEquipment: 3,
	QuestionMood:      4,
}

func goalOptions() []Option {
	opts := make([]Option, 0, len(domain.AllGoals))
	for _, g := range domain.AllGoals {
		label := g.Label()
		opts = append(opts, Option{Label: strings.ToUpper(label[:1]) + label[1:], Value: string(g)})
	}
	return opts
}

// Catalog returns a copy of the full question catalog in display order.
func Catalog() []Question {
	out := make([]Question, len(questionCatalog))
	for i, q := range questionCatalog {
		out[i] = cloneQuestion(q)
	}
	return out
}

// LookupQuestion returns the catalog question with the given id.
func LookupQuestion(id QuestionID) (Question, bool) {
	for _, q := range questionCatalog {
		if q.ID == id {
			return cloneQuestion(q), true
		}
	}
	return Question{}, false
}

func questionCount(level ConfidenceLevel) int {
	switch level {
	case ConfidenceHigh:
		return 3
	case ConfidenceMedium:
		return 4
	default:
		return MaxQuestions
	}
}

// SelectQuestions picks the questions to ask for a session. Lower confidence
// asks more; the set is chosen by priority but always returned in catalog
// order. Questions the context already answers rank below the rest, and keep
// their answer as a pre-selected default when they still make the cut.
func SelectQuestions(conf ConfidenceResult, uc domain.UserContext) []Question {
	n := questionCount(conf.Level)

	ranked := Catalog()
	for i := range ranked {
		ranked[i].Default = contextDefault(ranked[i].ID, uc)
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		ri, rj := ranked[i].Default != "", ranked[j].Default != ""
		if ri != rj {
			return rj
		}
		return questionPriority[ranked[i].ID] < questionPriority[ranked[j].ID]
	})
	keep := make(map[QuestionID]string, n)
	for _, q := range ranked[:n] {
		keep[q.ID] = q.Default
	}

	selected := make([]Question, 0, n)
	for _, q := range Catalog() {
		def, ok := keep[q.ID]
		if !ok {
			continue
		}
		q.Default = def
		selected = append(selected, q)
	}
	return selected
}

// contextDefault is the answer the context already implies for id, or "".
func contextDefault(id QuestionID, uc domain.UserContext) string {
	switch id {
	case QuestionGoal:
		if uc.Goal != nil && uc.GoalSource != domain.SourceManual {
			return string(*uc.Goal)
		}
	case QuestionDuration:
		if uc.Activity.AvgDurationMin > 0 {
			return strconv.Itoa(DurationBrackets[bracketIndex(uc.Activity.AvgDurationMin)])
		}
	}
	return ""
}
