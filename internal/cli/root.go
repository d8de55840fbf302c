package cli

import (
	"time"

	"github.com/alexanderramin/smartly/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Suggest service.SuggestService
	Profile service.ProfileService
	Catalog service.CatalogService

	// Interactive enables the question wizard when stdin is a terminal.
	Interactive bool
	Now         func() time.Time
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now().UTC()
}

// NewRootCmd creates the top-level "smartly" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	var userID string

	root := &cobra.Command{
		Use:           "smartly",
		Short:         "Context-aware workout and program suggestions",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&userID, "user", "", "User ID (empty for anonymous)")

	root.AddCommand(
		newSuggestCmd(app, &userID),
		newContextCmd(app, &userID),
		newGoalCmd(app, &userID),
		newActivityCmd(app, &userID),
		newHistoryCmd(app, &userID),
		newCatalogCmd(app),
	)

	return root
}
