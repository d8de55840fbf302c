package formatter

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/alexanderramin/smartly/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		Padding(1, 2)

	if title == "" {
		return box.Render(content)
	}
	return box.Render(StyleHeader.Render(strings.ToUpper(title)) + "\n\n" + content)
}

// AgoFrom renders how long before now t happened, in whole days.
func AgoFrom(t, now time.Time) string {
	days := int(math.Floor(now.Sub(t).Hours() / 24))
	switch {
	case days <= 0:
		return "Today"
	case days == 1:
		return "Yesterday"
	case days < 14:
		return fmt.Sprintf("%dd ago", days)
	case days < 60:
		return fmt.Sprintf("%dw ago", days/7)
	default:
		return fmt.Sprintf("%dmo ago", days/30)
	}
}

// TruncID returns the first 8 characters of an ID, dimmed.
func TruncID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return StyleDim.Render(id)
}

// FormatMinutes converts raw minutes into "1h 15m" style text.
func FormatMinutes(min int) string {
	if min <= 0 {
		return "0m"
	}
	h, m := min/60, min%60
	switch {
	case h > 0 && m > 0:
		return fmt.Sprintf("%dh %dm", h, m)
	case h > 0:
		return fmt.Sprintf("%dh", h)
	default:
		return fmt.Sprintf("%dm", m)
	}
}

// CategoryBadge returns a title-cased, purple category label.
func CategoryBadge(category string) string {
	if category == "" {
		return StyleDim.Render("--")
	}
	label := strings.ReplaceAll(category, "_", " ")
	return StylePurple.Render(strings.ToUpper(label[:1]) + label[1:])
}

func DifficultyPill(d domain.Difficulty) string {
	switch d {
	case domain.DifficultyBeginner:
		return StyleGreen.Render("○ Beginner")
	case domain.DifficultyIntermediate:
		return StyleYellow.Render("◐ Intermediate")
	case domain.DifficultyAdvanced:
		return StyleRed.Render("● Advanced")
	default:
		return StyleDim.Render(string(d))
	}
}

func EquipmentLabel(e domain.Equipment) string {
	if e == domain.EquipmentRequired {
		return "Equipment"
	}
	return "Bodyweight"
}
