package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/smartly/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newCatalogCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Manage the workout and program catalog",
	}

	cmd.AddCommand(
		newCatalogListCmd(app),
		newCatalogImportCmd(app),
	)

	return cmd
}

func newCatalogListCmd(app *App) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List catalog items",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := app.Catalog.List(context.Background(), all)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatCatalog(items))
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Include hidden items")

	return cmd
}

func newCatalogImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Import catalog items from a YAML or JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.Catalog.ImportFile(context.Background(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatImportResult(result.Workouts, result.Programs, result.Hidden))
			return nil
		},
	}
}
