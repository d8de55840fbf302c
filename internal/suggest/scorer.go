package suggest

import (
	"fmt"

	"github.com/alexanderramin/smartly/internal/domain"
)

type ReasonCode string

const (
	ReasonGoalMatch         ReasonCode = "GOAL_MATCH"
	ReasonDurationExact     ReasonCode = "DURATION_EXACT"
	ReasonDurationNear      ReasonCode = "DURATION_NEAR"
	ReasonEquipmentMatch    ReasonCode = "EQUIPMENT_MATCH"
	ReasonEquipmentMismatch ReasonCode = "EQUIPMENT_MISMATCH"
	ReasonEnergyLow         ReasonCode = "ENERGY_LOW"
	ReasonEnergyHigh        ReasonCode = "ENERGY_HIGH"
	ReasonMoodLow           ReasonCode = "MOOD_LOW"
	ReasonMoodHigh          ReasonCode = "MOOD_HIGH"
	ReasonNovelty           ReasonCode = "NOVELTY"
)

type Reason struct {
	Code    ReasonCode
	Message string
	Weight  float64
}

// ScoredContent is one catalog item with its total score and the criteria
// that fired for it.
type ScoredContent struct {
	Item    domain.ContentItem
	Score   float64
	Reasons []Reason
}

const (
	lowEnergyMax  = 3
	highEnergyMin = 7
	shortMaxMin   = 20
	longMinMin    = 45
)

// GoalCategories returns the content categories that serve a goal.
func GoalCategories(g domain.Goal) []string {
	switch g {
	case domain.GoalFatLoss:
		return []string{"cardio", "hiit", "conditioning"}
	case domain.GoalMuscleGain:
		return []string{"strength", "hypertrophy"}
	case domain.GoalStrength:
		return []string{"strength", "powerlifting"}
	case domain.GoalFlexibility:
		return []string{"mobility", "yoga", "stretching"}
	case domain.GoalGeneralFitness:
		return []string{"full_body", "conditioning", "cardio", "strength"}
	default:
		return nil
	}
}

// MatchesGoal reports whether category serves goal.
func MatchesGoal(g domain.Goal, category string) bool {
	for _, c := range GoalCategories(g) {
		if c == category {
			return true
		}
	}
	return false
}

type ScoringInput struct {
	Item         domain.ContentItem
	Goal         domain.Goal
	Answers      Answers
	CompletedIDs map[string]bool
	Weights      Weights
}

// ScoreItem sums every weighted criterion for one item. Reasons keep every
// criterion that fired, including negative ones.
func ScoreItem(input ScoringInput) ScoredContent {
	result := ScoredContent{Item: input.Item}

	factors := []func(ScoringInput) (float64, *Reason){
		scoreGoal,
		scoreDuration,
		scoreEquipment,
		scoreEnergy,
		scoreMood,
		scoreNovelty,
	}
	var score float64
	for _, f := range factors {
		delta, reason := f(input)
		score += delta
		if reason != nil {
			result.Reasons = append(result.Reasons, *reason)
		}
	}
	result.Score = score
	return result
}

func scoreGoal(input ScoringInput) (float64, *Reason) {
	if input.Goal == "" || !MatchesGoal(input.Goal, input.Item.Category) {
		return 0, nil
	}
	delta := input.Weights.GoalMatch
	return delta, &Reason{
		Code:    ReasonGoalMatch,
		Message: fmt.Sprintf("Matches your %s goal", input.Goal.Label()),
		Weight:  delta,
	}
}

func scoreDuration(input ScoringInput) (float64, *Reason) {
	want, ok := input.Answers.Number(QuestionDuration)
	if !ok || input.Item.DurationMin <= 0 {
		return 0, nil
	}
	wantIdx := bracketIndex(int(want))
	gotIdx := bracketIndex(input.Item.DurationMin)
	minutes := DurationBrackets[wantIdx]

	switch gotIdx - wantIdx {
	case 0:
		delta := input.Weights.DurationExact
		return delta, &Reason{
			Code:    ReasonDurationExact,
			Message: fmt.Sprintf("Fits your %d-minute window", minutes),
			Weight:  delta,
		}
	case -1, 1:
		delta := input.Weights.DurationNear
		return delta, &Reason{
			Code:    ReasonDurationNear,
			Message: fmt.Sprintf("Close to your %d-minute window", minutes),
			Weight:  delta,
		}
	}
	return 0, nil
}

func scoreEquipment(input ScoringInput) (float64, *Reason) {
	v, ok := input.Answers.Get(QuestionEquipment)
	if !ok || v == EquipmentAny {
		return 0, nil
	}
	want := domain.Equipment(v)
	if !want.Valid() || !input.Item.Equipment.Valid() {
		return 0, nil
	}
	if want == input.Item.Equipment {
		delta := input.Weights.EquipmentMatch
		msg := "Uses the equipment you have"
		if want == domain.EquipmentBodyweight {
			msg = "No equipment needed"
		}
		return delta, &Reason{Code: ReasonEquipmentMatch, Message: msg, Weight: delta}
	}
	delta := input.Weights.EquipmentMismatch
	msg := "Needs equipment you may not have"
	if want == domain.EquipmentRequired {
		msg = "Bodyweight only, your equipment stays unused"
	}
	return delta, &Reason{Code: ReasonEquipmentMismatch, Message: msg, Weight: delta}
}

func scoreEnergy(input ScoringInput) (float64, *Reason) {
	energy, ok := input.Answers.Number(QuestionEnergy)
	if !ok {
		return 0, nil
	}
	item := input.Item
	w := input.Weights

	switch {
	case energy <= lowEnergyMax:
		var delta float64
		if item.Difficulty == domain.DifficultyBeginner {
			delta += w.EnergyLowEasy
		}
		if item.DurationMin > 0 && item.DurationMin <= shortMaxMin {
			delta += w.EnergyLowShort
		}
		if item.Difficulty == domain.DifficultyAdvanced {
			delta += w.EnergyLowHard
		}
		if delta == 0 {
			return 0, nil
		}
		msg := "Gentle pick for a low-energy day"
		if delta < 0 {
			msg = "Demanding session for a low-energy day"
		}
		return delta, &Reason{Code: ReasonEnergyLow, Message: msg, Weight: delta}

	case energy >= highEnergyMin:
		var delta float64
		if item.Difficulty == domain.DifficultyAdvanced {
			delta += w.EnergyHighHard
		}
		if item.DurationMin >= longMinMin {
			delta += w.EnergyHighLong
		}
		if delta == 0 {
			return 0, nil
		}
		return delta, &Reason{
			Code:    ReasonEnergyHigh,
			Message: "Challenging enough for your energy level",
			Weight:  delta,
		}
	}
	return 0, nil
}

func scoreMood(input ScoringInput) (float64, *Reason) {
	mood, ok := input.Answers.Get(QuestionMood)
	if !ok {
		return 0, nil
	}
	switch mood {
	case "tired", "stressed":
		if input.Item.Difficulty != domain.DifficultyBeginner {
			return 0, nil
		}
		delta := input.Weights.MoodLow
		return delta, &Reason{Code: ReasonMoodLow, Message: "Easygoing session to suit your mood", Weight: delta}
	case "motivated":
		if input.Item.Difficulty == domain.DifficultyBeginner {
			return 0, nil
		}
		delta := input.Weights.MoodHigh
		return delta, &Reason{Code: ReasonMoodHigh, Message: "Makes the most of your motivation", Weight: delta}
	}
	return 0, nil
}

func scoreNovelty(input ScoringInput) (float64, *Reason) {
	if input.CompletedIDs[input.Item.ID] {
		return 0, nil
	}
	delta := input.Weights.Novelty
	return delta, &Reason{Code: ReasonNovelty, Message: "Something you haven't done recently", Weight: delta}
}
