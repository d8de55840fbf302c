package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/smartly/internal/cli/formatter"
	"github.com/alexanderramin/smartly/internal/domain"
	"github.com/alexanderramin/smartly/internal/service"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newGoalCmd(app *App, userID *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "goal",
		Short: "Manage fitness and measurement goals",
	}

	cmd.AddCommand(
		newGoalSetCmd(app, userID),
		newGoalMeasureCmd(app, userID),
	)

	return cmd
}

func newGoalSetCmd(app *App, userID *string) *cobra.Command {
	var goal goalValue

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Set your current fitness goal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if goal == "" {
				if !app.Interactive {
					return fmt.Errorf("--goal is required")
				}
				var picked string
				form := goalForm(&picked).WithProgramOptions(
					tea.WithInput(cmd.InOrStdin()),
					tea.WithOutput(cmd.OutOrStdout()),
				)
				if err := form.Run(); err != nil {
					return err
				}
				if err := goal.Set(picked); err != nil {
					return err
				}
			}

			g, err := app.Profile.SetGoal(context.Background(), *userID, domain.Goal(goal))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n",
				formatter.StyleGreen.Render("✔ Goal set:"), formatter.Bold(g.Goal.Label()))
			return nil
		},
	}

	cmd.Flags().Var(&goal, "goal", "fat_loss, muscle_gain, strength, flexibility or general_fitness")

	return cmd
}

func newGoalMeasureCmd(app *App, userID *string) *cobra.Command {
	var weight, bodyFat, muscle float64

	cmd := &cobra.Command{
		Use:   "measure",
		Short: "Set body measurement targets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var targets service.MeasurementTargets
			if cmd.Flags().Changed("weight") {
				targets.WeightKg = &weight
			}
			if cmd.Flags().Changed("body-fat") {
				targets.BodyFatPct = &bodyFat
			}
			if cmd.Flags().Changed("muscle") {
				targets.MuscleMassKg = &muscle
			}

			m, err := app.Profile.SetMeasurementGoal(context.Background(), *userID, targets)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, formatter.StyleGreen.Render("✔ Measurement targets saved"))
			if inferred, ok := domain.InferGoal(m); ok {
				fmt.Fprintf(out, "  %s %s\n", formatter.Dim("Suggestions will lean toward"), formatter.Bold(inferred.Label()))
			}
			return nil
		},
	}

	cmd.Flags().Float64Var(&weight, "weight", 0, "Target body weight in kg")
	cmd.Flags().Float64Var(&bodyFat, "body-fat", 0, "Target body fat percentage")
	cmd.Flags().Float64Var(&muscle, "muscle", 0, "Target muscle mass in kg")

	return cmd
}
