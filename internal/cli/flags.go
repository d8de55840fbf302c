package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/alexanderramin/smartly/internal/domain"
	"github.com/alexanderramin/smartly/internal/suggest"
	"github.com/spf13/pflag"
)

var (
	_ pflag.Value = (*contentTypeValue)(nil)
	_ pflag.Value = (*goalValue)(nil)
	_ pflag.Value = (*actionValue)(nil)
)

// contentTypeValue restricts --type to workout or program.
type contentTypeValue domain.ContentType

func (v *contentTypeValue) String() string { return string(*v) }
func (v *contentTypeValue) Type() string   { return "workout|program" }

func (v *contentTypeValue) Set(s string) error {
	ct := domain.ContentType(strings.ToLower(strings.TrimSpace(s)))
	if !ct.Valid() {
		return fmt.Errorf("must be %q or %q", domain.ContentWorkout, domain.ContentProgram)
	}
	*v = contentTypeValue(ct)
	return nil
}

type goalValue domain.Goal

func (v *goalValue) String() string { return string(*v) }
func (v *goalValue) Type() string   { return "goal" }

func (v *goalValue) Set(s string) error {
	g := domain.Goal(strings.ToLower(strings.TrimSpace(s)))
	if !g.Valid() {
		names := make([]string, len(domain.AllGoals))
		for i, ag := range domain.AllGoals {
			names[i] = string(ag)
		}
		return fmt.Errorf("must be one of %s", strings.Join(names, ", "))
	}
	*v = goalValue(g)
	return nil
}

// suggestAction is what to do with a computed suggestion in one-shot mode.
type suggestAction string

const (
	actionNone    suggestAction = ""
	actionAccept  suggestAction = "accept"
	actionAlt1    suggestAction = "alt1"
	actionAlt2    suggestAction = "alt2"
	actionDismiss suggestAction = "dismiss"
)

type actionValue suggestAction

func (v *actionValue) String() string { return string(*v) }
func (v *actionValue) Type() string   { return "accept|alt1|alt2|dismiss" }

func (v *actionValue) Set(s string) error {
	switch a := suggestAction(strings.ToLower(strings.TrimSpace(s))); a {
	case actionAccept, actionAlt1, actionAlt2, actionDismiss:
		*v = actionValue(a)
		return nil
	}
	return fmt.Errorf("must be accept, alt1, alt2 or dismiss")
}

type answerPair struct {
	ID    suggest.QuestionID
	Value string
}

// parseAnswers turns repeated id=value flags into answers in question
// catalog order so that replay is deterministic.
func parseAnswers(raw []string) ([]answerPair, error) {
	pairs := make([]answerPair, 0, len(raw))
	for _, r := range raw {
		id, value, ok := strings.Cut(r, "=")
		id, value = strings.TrimSpace(id), strings.TrimSpace(value)
		if !ok || id == "" || value == "" {
			return nil, fmt.Errorf("invalid --answer %q: expected id=value", r)
		}
		pairs = append(pairs, answerPair{ID: suggest.QuestionID(id), Value: value})
	}

	order := make(map[suggest.QuestionID]int)
	for i, q := range suggest.Catalog() {
		order[q.ID] = i
	}
	sort.SliceStable(pairs, func(i, j int) bool {
		oi, iok := order[pairs[i].ID]
		oj, jok := order[pairs[j].ID]
		if !iok || !jok {
			return iok && !jok
		}
		return oi < oj
	})
	return pairs, nil
}
