package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/smartly/internal/domain"
	"github.com/alexanderramin/smartly/internal/suggest"
)

// FormatContext renders what the engine knows about a user.
func FormatContext(uc domain.UserContext, conf suggest.ConfidenceResult, questions []suggest.Question, now time.Time) string {
	var b strings.Builder

	user := uc.UserID
	if user == "" {
		user = "anonymous"
	}
	b.WriteString(Header("Context for " + user))
	b.WriteString("\n\n")

	b.WriteString(fmt.Sprintf("%-12s %s\n", Dim("Confidence"), ConfidenceIndicator(conf.Level)))

	switch {
	case uc.Goal != nil:
		source := "set by you"
		if uc.GoalSource == domain.SourceMeasurementGoals {
			source = "inferred from measurement targets"
		}
		line := fmt.Sprintf("%s %s", StyleFg.Render(uc.Goal.Label()), Dim("("+source+")"))
		if uc.GoalSetAt != nil {
			line += Dim(", " + AgoFrom(*uc.GoalSetAt, now))
		}
		b.WriteString(fmt.Sprintf("%-12s %s\n", Dim("Goal"), line))
	default:
		b.WriteString(fmt.Sprintf("%-12s %s\n", Dim("Goal"), StyleYellow.Render("not set")))
	}

	a := uc.Activity
	if a.IsEmpty() {
		b.WriteString(fmt.Sprintf("%-12s %s\n", Dim("Activity"), Dim("no recent workouts")))
	} else {
		b.WriteString(fmt.Sprintf("%-12s %d workouts, avg %s\n", Dim("Activity"), a.Completions, FormatMinutes(a.AvgDurationMin)))
		if a.LastCompletedAt != nil {
			b.WriteString(fmt.Sprintf("%-12s %s\n", Dim("Last"), AgoFrom(*a.LastCompletedAt, now)))
		}
		if a.ConsecutiveDays > 0 {
			b.WriteString(fmt.Sprintf("%-12s %d days\n", Dim("Streak"), a.ConsecutiveDays))
		}
		if len(a.Categories) > 0 {
			labels := make([]string, len(a.Categories))
			for i, c := range a.Categories {
				labels[i] = CategoryBadge(c)
			}
			b.WriteString(fmt.Sprintf("%-12s %s\n", Dim("Categories"), strings.Join(labels, ", ")))
		}
	}

	if len(conf.Signals) > 0 {
		sigs := make([]string, len(conf.Signals))
		for i, s := range conf.Signals {
			sigs[i] = string(s)
		}
		b.WriteString(fmt.Sprintf("%-12s %s\n", Dim("Signals"), Dim(strings.Join(sigs, ", "))))
	}

	ids := make([]string, len(questions))
	for i, q := range questions {
		ids[i] = string(q.ID)
	}
	b.WriteString(fmt.Sprintf("%-12s %d (%s)\n", Dim("Questions"), len(questions), strings.Join(ids, ", ")))

	if !uc.HasAnyGoals {
		b.WriteString("\n")
		b.WriteString(StyleYellow.Render("Set your goals for better suggestions: "))
		b.WriteString(Dim("smartly goal set <goal>"))
		b.WriteString("\n")
	}
	return b.String()
}
