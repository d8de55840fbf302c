package domain

import "time"

// WorkoutCompletion is one row of the user's activity log.
type WorkoutCompletion struct {
	ID          string
	UserID      string
	ContentID   string
	ContentType ContentType
	Category    string
	Difficulty  Difficulty
	DurationMin int
	CompletedAt time.Time
}

// RecentActivity summarizes completions inside the activity window.
type RecentActivity struct {
	Completions     int
	LastCompletedAt *time.Time
	DaysSinceLast   *int
	// ConsecutiveDays counts calendar days in a row with at least one
	// completion, ending today or yesterday.
	ConsecutiveDays int
	Categories      []string
	CompletedIDs    map[string]bool
	AvgDurationMin  int
}

func (a RecentActivity) IsEmpty() bool {
	return a.Completions == 0
}

// SummarizeActivity folds completions into a RecentActivity relative to now.
// Input order does not matter.
func SummarizeActivity(completions []WorkoutCompletion, now time.Time) RecentActivity {
	summary := RecentActivity{CompletedIDs: make(map[string]bool)}
	if len(completions) == 0 {
		return summary
	}

	days := make(map[string]bool)
	seenCategory := make(map[string]bool)
	totalMin := 0
	for i := range completions {
		c := completions[i]
		summary.Completions++
		totalMin += c.DurationMin
		if c.ContentID != "" {
			summary.CompletedIDs[c.ContentID] = true
		}
		if c.Category != "" && !seenCategory[c.Category] {
			seenCategory[c.Category] = true
			summary.Categories = append(summary.Categories, c.Category)
		}
		if summary.LastCompletedAt == nil || c.CompletedAt.After(*summary.LastCompletedAt) {
			last := c.CompletedAt
			summary.LastCompletedAt = &last
		}
		days[dayKey(c.CompletedAt.In(now.Location()))] = true
	}

	summary.AvgDurationMin = totalMin / summary.Completions

	daysAgo := int(now.Sub(*summary.LastCompletedAt).Hours() / 24)
	if daysAgo < 0 {
		daysAgo = 0
	}
	summary.DaysSinceLast = &daysAgo

	cursor := now
	if !days[dayKey(cursor)] {
		cursor = cursor.AddDate(0, 0, -1)
	}
	for days[dayKey(cursor)] {
		summary.ConsecutiveDays++
		cursor = cursor.AddDate(0, 0, -1)
	}

	return summary
}

func dayKey(t time.Time) string {
	return t.Format("2006-01-02")
}
