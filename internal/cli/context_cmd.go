package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/smartly/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newContextCmd(app *App, userID *string) *cobra.Command {
	return &cobra.Command{
		Use:   "context",
		Short: "Show what the suggestion engine knows about you",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := app.Suggest.Inspect(context.Background(), *userID)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatContext(report.Context, report.Confidence, report.Questions, app.now()))
			return nil
		},
	}
}
