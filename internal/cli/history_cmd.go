package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/smartly/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newHistoryCmd(app *App, userID *string) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List past suggestions and what you did with them",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logs, err := app.Profile.History(context.Background(), *userID, limit)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatHistory(logs, app.now()))
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum entries to show")

	return cmd
}
