package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/smartly/internal/cli/formatter"
	"github.com/alexanderramin/smartly/internal/service"
	"github.com/spf13/cobra"
)

func newActivityCmd(app *App, userID *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "activity",
		Short: "Record finished workouts",
	}
	cmd.AddCommand(newActivityLogCmd(app, userID))
	return cmd
}

func newActivityLogCmd(app *App, userID *string) *cobra.Command {
	var contentID, at string
	var minutes int

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Log a completed workout or program session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req := service.CompletionRequest{
				UserID:      *userID,
				ContentID:   contentID,
				DurationMin: minutes,
			}
			if at != "" {
				t, err := time.Parse(time.RFC3339, at)
				if err != nil {
					return fmt.Errorf("invalid --at %q: expected RFC3339", at)
				}
				req.CompletedAt = t.UTC()
			}

			c, err := app.Profile.LogCompletion(context.Background(), req)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n",
				formatter.StyleGreen.Render("✔ Logged"),
				formatter.FormatMinutes(c.DurationMin),
				formatter.Dim(fmt.Sprintf("(%s, %s)", c.ContentID, formatter.AgoFrom(c.CompletedAt, app.now()))))
			return nil
		},
	}

	cmd.Flags().StringVar(&contentID, "content", "", "Catalog item ID")
	cmd.Flags().IntVar(&minutes, "minutes", 0, "Actual duration; defaults to the item's duration")
	cmd.Flags().StringVar(&at, "at", "", "Completion time in RFC3339; defaults to now")
	_ = cmd.MarkFlagRequired("content")

	return cmd
}
