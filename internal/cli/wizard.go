package cli

import (
	"github.com/alexanderramin/smartly/internal/cli/formatter"
	"github.com/alexanderramin/smartly/internal/domain"
	"github.com/alexanderramin/smartly/internal/suggest"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// smartlyHuhTheme returns a huh theme using the Gruvbox palette.
func smartlyHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// questionForm builds a single-select form for q. result carries the
// pre-selected value in and the chosen value out.
func questionForm(q suggest.Question, index, total int, result *string) *huh.Form {
	options := make([]huh.Option[string], 0, len(q.Options))
	for _, o := range q.Options {
		options = append(options, huh.NewOption(o.Label, o.Value))
	}
	if *result == "" {
		*result = q.Default
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title(formatter.FormatQuestionTitle(q, index, total)).
				Options(options...).
				Value(result),
		),
	).WithTheme(smartlyHuhTheme()).WithShowHelp(false)
}

// goalForm asks for a fitness goal when none was passed on the command line.
func goalForm(result *string) *huh.Form {
	q, _ := suggest.LookupQuestion(suggest.QuestionGoal)
	options := make([]huh.Option[string], 0, len(q.Options))
	for _, o := range q.Options {
		options = append(options, huh.NewOption(o.Label, o.Value))
	}
	if *result == "" {
		*result = string(domain.GoalGeneralFitness)
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("What are you training for?").
				Options(options...).
				Value(result),
		),
	).WithTheme(smartlyHuhTheme()).WithShowHelp(false)
}

// suggestKeyMap holds the wizard bindings outside of the select fields.
type suggestKeyMap struct {
	Back    key.Binding
	Accept  key.Binding
	Alt1    key.Binding
	Alt2    key.Binding
	Dismiss key.Binding
	Quit    key.Binding
}

func defaultSuggestKeys() suggestKeyMap {
	return suggestKeyMap{
		Back:    key.NewBinding(key.WithKeys("esc", "left"), key.WithHelp("esc", "back")),
		Accept:  key.NewBinding(key.WithKeys("enter", "a"), key.WithHelp("enter", "let's go")),
		Alt1:    key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "alternative 1")),
		Alt2:    key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "alternative 2")),
		Dismiss: key.NewBinding(key.WithKeys("esc", "d"), key.WithHelp("esc", "dismiss")),
		Quit:    key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

func (k suggestKeyMap) askingHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		k.Back,
		k.Quit,
	}
}

func (k suggestKeyMap) resultHelp(alternatives int) []key.Binding {
	bindings := []key.Binding{k.Accept}
	if alternatives >= 1 {
		bindings = append(bindings, k.Alt1)
	}
	if alternatives >= 2 {
		bindings = append(bindings, k.Alt2)
	}
	return append(bindings, k.Dismiss)
}
