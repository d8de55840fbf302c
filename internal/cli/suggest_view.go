package cli

import (
	"context"
	"errors"
	"strings"

	"github.com/alexanderramin/smartly/internal/cli/formatter"
	"github.com/alexanderramin/smartly/internal/service"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// startComputeMsg asks Update to score the session. The session is only
// touched from Update, never from a tea.Cmd goroutine.
type startComputeMsg struct{}

// suggestModel drives a suggestion session: one select form per question,
// then the result card with accept, alternative and dismiss keys.
type suggestModel struct {
	ctx    context.Context
	sess   *service.Session
	keys   suggestKeyMap
	help   help.Model
	form   *huh.Form
	answer string
	notice string
	err    error
}

func newSuggestModel(ctx context.Context, sess *service.Session) *suggestModel {
	return &suggestModel{
		ctx:  ctx,
		sess: sess,
		keys: defaultSuggestKeys(),
		help: help.New(),
	}
}

func (m *suggestModel) Init() tea.Cmd {
	return m.nextQuestion()
}

// nextQuestion builds the form for the current question, or starts the
// computation once every question has an answer.
func (m *suggestModel) nextQuestion() tea.Cmd {
	q, ok := m.sess.CurrentQuestion()
	if !ok {
		m.form = nil
		return m.compute()
	}
	idx, total := m.sess.Progress()
	m.answer = m.sess.Answers()[q.ID]
	m.form = questionForm(q, idx, total, &m.answer)
	return m.form.Init()
}

func (m *suggestModel) compute() tea.Cmd {
	return func() tea.Msg { return startComputeMsg{} }
}

func (m *suggestModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case startComputeMsg:
		// stale after a dismiss or back
		if m.sess.State() != service.StateComputing {
			return m, nil
		}
		if _, err := m.sess.Compute(m.ctx); err != nil {
			m.err = err
			return m, tea.Quit
		}
		if m.sess.State() == service.StateNoContent {
			return m, tea.Quit
		}
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			if !m.sess.State().Terminal() {
				m.finish(m.sess.Dismiss(m.ctx))
			}
			return m, tea.Quit
		}
		switch m.sess.State() {
		case service.StateAskingQuestions:
			if key.Matches(msg, m.keys.Back) {
				return m.back()
			}
		case service.StateShowingResult:
			return m.handleResultKey(msg)
		case service.StateComputing:
			return m, nil
		}
	}

	if m.form == nil || m.sess.State() != service.StateAskingQuestions {
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}
	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	q, _ := m.sess.CurrentQuestion()
	if err := m.sess.Answer(q.ID, m.answer); err != nil {
		m.notice = err.Error()
		return m, m.nextQuestion()
	}
	m.notice = ""
	return m, m.nextQuestion()
}

func (m *suggestModel) back() (tea.Model, tea.Cmd) {
	if err := m.sess.Back(); err != nil {
		var se *service.SessionError
		if errors.As(err, &se) && se.Code == service.ErrInvalidState {
			m.finish(m.sess.Dismiss(m.ctx))
			return m, tea.Quit
		}
		m.err = err
		return m, tea.Quit
	}
	return m, m.nextQuestion()
}

func (m *suggestModel) handleResultKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Accept):
		m.finish(m.sess.Accept(m.ctx))
	case key.Matches(msg, m.keys.Alt1):
		return m.selectAlternative(1)
	case key.Matches(msg, m.keys.Alt2):
		return m.selectAlternative(2)
	case key.Matches(msg, m.keys.Dismiss):
		m.finish(m.sess.Dismiss(m.ctx))
	default:
		return m, nil
	}
	return m, tea.Quit
}

func (m *suggestModel) selectAlternative(n int) (tea.Model, tea.Cmd) {
	if err := m.sess.SelectAlternative(m.ctx, n); err != nil {
		var se *service.SessionError
		if errors.As(err, &se) && se.Code == service.ErrNoAlternative {
			m.notice = se.Message
			return m, nil
		}
		m.err = err
	}
	return m, tea.Quit
}

func (m *suggestModel) finish(err error) {
	if err != nil && m.err == nil {
		m.err = err
	}
}

func (m *suggestModel) View() string {
	var b strings.Builder
	switch m.sess.State() {
	case service.StateAskingQuestions:
		if m.form == nil {
			return ""
		}
		b.WriteString(m.form.View())
		b.WriteString("\n")
		b.WriteString(m.help.ShortHelpView(m.keys.askingHelp()))
	case service.StateComputing:
		b.WriteString(formatter.Dim("Finding something for you..."))
	case service.StateShowingResult:
		sugg := m.sess.Suggestion()
		b.WriteString(formatter.FormatSuggestion(sugg, m.sess.Note()))
		b.WriteString("\n")
		b.WriteString(m.help.ShortHelpView(m.keys.resultHelp(len(sugg.Alternatives))))
	default:
		return ""
	}
	if m.notice != "" {
		b.WriteString("\n")
		b.WriteString(formatter.StyleYellow.Render(m.notice))
	}
	return b.String() + "\n"
}
