package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/alexanderramin/smartly/internal/cli/formatter"
	"github.com/alexanderramin/smartly/internal/domain"
	"github.com/alexanderramin/smartly/internal/service"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newSuggestCmd(app *App, userID *string) *cobra.Command {
	contentType := contentTypeValue(domain.ContentWorkout)
	var action actionValue
	var rawAnswers []string

	cmd := &cobra.Command{
		Use:   "suggest",
		Short: "Get a workout or program suggestion",
		Long: "Asks a few questions, then suggests one workout or program with up to two alternatives.\n" +
			"Pass --answer and --action to run without prompts.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			answers, err := parseAnswers(rawAnswers)
			if err != nil {
				return err
			}

			sess, err := app.Suggest.Start(ctx, service.StartRequest{
				UserID:      *userID,
				ContentType: domain.ContentType(contentType),
			})
			if err != nil {
				return err
			}
			for _, a := range answers {
				if err := sess.Answer(a.ID, a.Value); err != nil {
					return err
				}
			}

			if app.Interactive && suggestAction(action) == actionNone {
				return runSuggestWizard(ctx, cmd, sess)
			}
			return runSuggestOnce(ctx, cmd.OutOrStdout(), sess, suggestAction(action))
		},
	}

	cmd.Flags().Var(&contentType, "type", "Content type to suggest (workout or program)")
	cmd.Flags().StringArrayVar(&rawAnswers, "answer", nil, "Pre-answer a question as id=value (repeatable)")
	cmd.Flags().Var(&action, "action", "Act on the result without prompting (accept, alt1, alt2, dismiss)")

	return cmd
}

// runSuggestOnce computes with whatever answers were given, prints the
// result and applies action. Without an action nothing is logged.
func runSuggestOnce(ctx context.Context, out io.Writer, sess *service.Session, action suggestAction) error {
	sugg, err := sess.Compute(ctx)
	if err != nil {
		return err
	}
	if sess.State() == service.StateNoContent {
		fmt.Fprintln(out, formatter.FormatNoContent(string(sess.ContentType())))
		return nil
	}
	fmt.Fprint(out, formatter.FormatSuggestion(sugg, sess.Note()))

	switch action {
	case actionNone:
		return nil
	case actionAccept:
		err = sess.Accept(ctx)
	case actionAlt1:
		err = sess.SelectAlternative(ctx, 1)
	case actionAlt2:
		err = sess.SelectAlternative(ctx, 2)
	case actionDismiss:
		err = sess.Dismiss(ctx)
	}
	if err != nil {
		return err
	}
	fmt.Fprintln(out, printOutcome(sess))
	return nil
}

func runSuggestWizard(ctx context.Context, cmd *cobra.Command, sess *service.Session) error {
	model := newSuggestModel(ctx, sess)
	p := tea.NewProgram(model, tea.WithInput(cmd.InOrStdin()), tea.WithOutput(cmd.OutOrStdout()))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running suggestion wizard: %w", err)
	}
	if model.err != nil {
		return model.err
	}

	out := cmd.OutOrStdout()
	switch sess.State() {
	case service.StateNoContent:
		fmt.Fprintln(out, formatter.FormatNoContent(string(sess.ContentType())))
	case service.StateAccepted, service.StateAlternativeSelected, service.StateDismissed:
		fmt.Fprintln(out, printOutcome(sess))
	}
	return nil
}

func printOutcome(sess *service.Session) string {
	name := ""
	if chosen := sess.Chosen(); chosen != nil {
		name = chosen.Item.Name
	}
	switch sess.State() {
	case service.StateAccepted:
		return formatter.FormatOutcome(string(domain.ActionAccepted), name)
	case service.StateAlternativeSelected:
		return formatter.FormatOutcome(string(domain.ActionAlternative1), name)
	default:
		return formatter.FormatOutcome(string(domain.ActionDismissed), name)
	}
}
