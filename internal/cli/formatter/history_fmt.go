package formatter

import (
	"fmt"
	"time"

	"github.com/alexanderramin/smartly/internal/domain"
)

func actionLabel(a domain.InteractionAction) string {
	switch a {
	case domain.ActionAccepted:
		return StyleGreen.Render("accepted")
	case domain.ActionAlternative1:
		return StyleBlue.Render("alt #1")
	case domain.ActionAlternative2:
		return StyleBlue.Render("alt #2")
	case domain.ActionDismissed:
		return StyleDim.Render("dismissed")
	default:
		return string(a)
	}
}

// FormatHistory lists past suggestion outcomes, newest first.
func FormatHistory(logs []*domain.InteractionLog, now time.Time) string {
	if len(logs) == 0 {
		return Dim("No suggestions yet.") + "\n"
	}
	rows := make([][]string, 0, len(logs))
	for _, l := range logs {
		rows = append(rows, []string{
			AgoFrom(l.CreatedAt, now),
			string(l.ContentType),
			TruncID(l.ContentID),
			actionLabel(l.ActionTaken),
			l.ConfidenceLevel,
			fmt.Sprintf("%d", len(l.QuestionsAsked)),
		})
	}
	return RenderTable([]string{"WHEN", "TYPE", "CONTENT", "ACTION", "CONFIDENCE", "ASKED"}, rows)
}
