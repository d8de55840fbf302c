package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/smartly/internal/suggest"
)

// FormatSuggestion renders the result card: the main pick with its reasons,
// the smart note, then any alternatives.
func FormatSuggestion(s *suggest.Suggestion, note suggest.SmartNote) string {
	var b strings.Builder

	main := s.Main
	b.WriteString(Bold(main.Item.Name))
	b.WriteString("\n")
	b.WriteString(itemMeta(main))
	b.WriteString("\n")
	if main.Item.Description != "" {
		b.WriteString(Dim(main.Item.Description))
		b.WriteString("\n")
	}

	if len(main.Reasons) > 0 {
		b.WriteString("\n")
		b.WriteString(StyleHeader.Render("Why this one"))
		b.WriteString("\n")
		for _, r := range main.Reasons {
			b.WriteString(fmt.Sprintf("  %s %s\n", StyleGreen.Render("✓"), StyleFg.Render(r.Message)))
		}
	}

	if note.Message != "" {
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("%s %s\n", NoteBadge(note.Type), note.Message))
	}

	card := RenderBox(fmt.Sprintf("Your %s", s.ContentType), strings.TrimRight(b.String(), "\n"))
	if len(s.Alternatives) == 0 {
		return card + "\n"
	}

	var alts strings.Builder
	alts.WriteString("\n")
	alts.WriteString(Header("Alternatives"))
	alts.WriteString("\n")
	for i, alt := range s.Alternatives {
		alts.WriteString(fmt.Sprintf("%s %s  %s\n", Bold(fmt.Sprintf("%d.", i+1)), StyleFg.Render(alt.Item.Name), itemMeta(alt)))
		if len(alt.Reasons) > 0 {
			alts.WriteString(fmt.Sprintf("   %s\n", Dim(alt.Reasons[0].Message)))
		}
	}
	return card + "\n" + alts.String()
}

func itemMeta(sc suggest.ScoredContent) string {
	parts := []string{
		StyleBlue.Render(FormatMinutes(sc.Item.DurationMin)),
		CategoryBadge(sc.Item.Category),
		DifficultyPill(sc.Item.Difficulty),
		Dim(EquipmentLabel(sc.Item.Equipment)),
	}
	if sc.Item.IsPremium {
		parts = append(parts, StyleYellow.Render("Premium"))
	}
	return strings.Join(parts, Dim(" · "))
}

// FormatQuestionTitle prefixes a question prompt with its position.
func FormatQuestionTitle(q suggest.Question, index, total int) string {
	return fmt.Sprintf("%s %s", Dim(fmt.Sprintf("[%d/%d]", index+1, total)), q.Prompt)
}

// FormatNoContent is shown when nothing in the catalog matches the request.
func FormatNoContent(contentType string) string {
	return RenderBox("", fmt.Sprintf("%s\n%s",
		StyleYellow.Render(fmt.Sprintf("No %ss available right now.", contentType)),
		Dim("Import a catalog with 'smartly catalog import <file>' and try again.")))
}

// FormatOutcome confirms the action the user took.
func FormatOutcome(action string, name string) string {
	switch action {
	case "accepted":
		return StyleGreen.Render("✔ Let's go: ") + Bold(name)
	case "alternative_1", "alternative_2":
		return StyleGreen.Render("✔ Switched to: ") + Bold(name)
	default:
		return Dim("Suggestion dismissed. Come back any time.")
	}
}
