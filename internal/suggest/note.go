package suggest

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/smartly/internal/domain"
)

type NoteType string

const (
	NoteInfo          NoteType = "info"
	NoteCaution       NoteType = "caution"
	NoteEncouragement NoteType = "encouragement"
)

type SmartNote struct {
	Type    NoteType
	Message string
}

const (
	overtrainingStreakDays = 5
	positiveStreakDays     = 3
)

// GenerateNote derives one advisory sentence for the chosen item. Rules are
// checked in order (caution, encouragement, info) and the first match wins.
func GenerateNote(uc domain.UserContext, item domain.ContentItem) SmartNote {
	streak := uc.Activity.ConsecutiveDays

	if streak >= overtrainingStreakDays && item.IsHighIntensity() {
		return SmartNote{
			Type: NoteCaution,
			Message: fmt.Sprintf(
				"You've trained %d days in a row. Consider dialing this one back or taking a rest day.", streak),
		}
	}

	if streak >= positiveStreakDays {
		return SmartNote{
			Type:    NoteEncouragement,
			Message: fmt.Sprintf("%d-day streak! This session keeps your momentum going.", streak),
		}
	}
	if uc.Goal != nil && MatchesGoal(*uc.Goal, item.Category) {
		return SmartNote{
			Type:    NoteEncouragement,
			Message: fmt.Sprintf("Nice pick. %s lines up with your %s goal.", item.Name, uc.Goal.Label()),
		}
	}

	if d := uc.Activity.DaysSinceLast; d != nil && *d >= 2 {
		return SmartNote{
			Type:    NoteInfo,
			Message: fmt.Sprintf("It's been %d days since your last workout. A %d-minute session is a good way back in.", *d, item.DurationMin),
		}
	}
	return SmartNote{
		Type:    NoteInfo,
		Message: fmt.Sprintf("A %d-minute %s session, %s level.", item.DurationMin, categoryLabel(item.Category), item.Difficulty),
	}
}

func categoryLabel(category string) string {
	if category == "" {
		return "general"
	}
	return strings.ReplaceAll(category, "_", " ")
}
