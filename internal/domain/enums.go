package domain

type Goal string

const (
	GoalFatLoss        Goal = "fat_loss"
	GoalMuscleGain     Goal = "muscle_gain"
	GoalStrength       Goal = "strength"
	GoalFlexibility    Goal = "flexibility"
	GoalGeneralFitness Goal = "general_fitness"
)

// AllGoals lists every goal in display order.
var AllGoals = []Goal{
	GoalFatLoss,
	GoalMuscleGain,
	GoalStrength,
	GoalFlexibility,
	GoalGeneralFitness,
}

func (g Goal) Valid() bool {
	switch g {
	case GoalFatLoss, GoalMuscleGain, GoalStrength, GoalFlexibility, GoalGeneralFitness:
		return true
	}
	return false
}

// Label returns the human-readable goal name, e.g. "muscle gain".
func (g Goal) Label() string {
	switch g {
	case GoalFatLoss:
		return "fat loss"
	case GoalMuscleGain:
		return "muscle gain"
	case GoalStrength:
		return "strength"
	case GoalFlexibility:
		return "flexibility"
	case GoalGeneralFitness:
		return "general fitness"
	default:
		return string(g)
	}
}

// GoalSource records where the context goal came from.
type GoalSource string

const (
	SourceFitnessGoals     GoalSource = "fitness_goals"
	SourceMeasurementGoals GoalSource = "measurement_goals"
	SourceManual           GoalSource = "manual"
)

type Equipment string

const (
	EquipmentBodyweight Equipment = "bodyweight"
	EquipmentRequired   Equipment = "equipment"
)

func (e Equipment) Valid() bool {
	return e == EquipmentBodyweight || e == EquipmentRequired
}

type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced:
		return true
	}
	return false
}

type ContentType string

const (
	ContentWorkout ContentType = "workout"
	ContentProgram ContentType = "program"
)

func (c ContentType) Valid() bool {
	return c == ContentWorkout || c == ContentProgram
}

// InteractionAction is the terminal action a user took on a suggestion.
type InteractionAction string

const (
	ActionAccepted     InteractionAction = "accepted"
	ActionAlternative1 InteractionAction = "alternative_1"
	ActionAlternative2 InteractionAction = "alternative_2"
	ActionDismissed    InteractionAction = "dismissed"
)

// ValidCategories is the canonical set of accepted content category strings.
var ValidCategories = map[string]bool{
	"strength": true, "hypertrophy": true, "powerlifting": true,
	"cardio": true, "hiit": true, "conditioning": true,
	"mobility": true, "yoga": true, "stretching": true,
	"full_body": true, "recovery": true,
}
