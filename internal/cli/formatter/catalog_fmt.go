package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/smartly/internal/domain"
)

// FormatCatalog lists catalog items as a table.
func FormatCatalog(items []domain.ContentItem) string {
	if len(items) == 0 {
		return Dim("The catalog is empty.") + "\n"
	}

	rows := make([][]string, 0, len(items))
	for _, it := range items {
		name := it.Name
		if !it.IsVisible {
			name += Dim(" (hidden)")
		}
		rows = append(rows, []string{
			TruncID(it.ID),
			string(it.ContentType),
			name,
			CategoryBadge(it.Category),
			DifficultyPill(it.Difficulty),
			FormatMinutes(it.DurationMin),
			EquipmentLabel(it.Equipment),
		})
	}
	return RenderTable([]string{"ID", "TYPE", "NAME", "CATEGORY", "LEVEL", "TIME", "GEAR"}, rows)
}

// FormatImportResult summarizes a catalog import.
func FormatImportResult(workouts, programs, hidden int) string {
	var b strings.Builder
	b.WriteString(StyleGreen.Render("✔ Catalog imported"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  %s %d\n", Dim("Workouts:"), workouts))
	b.WriteString(fmt.Sprintf("  %s %d\n", Dim("Programs:"), programs))
	if hidden > 0 {
		b.WriteString(fmt.Sprintf("  %s %d\n", Dim("Hidden:"), hidden))
	}
	return b.String()
}
