package cli

import (
	"context"
	"fmt"

	"github.com/evanmoss/outlay/internal/cli/formatter"
	"github.com/evanmoss/outlay/internal/domain"
	"github.com/spf13/cobra"
)

func newBudgetCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "budget",
		Short: "Manage budget lines",
	}

	cmd.AddCommand(
		newBudgetAddCmd(app),
		newBudgetListCmd(app),
		newBudgetRemoveCmd(app),
	)

	return cmd
}

func newBudgetAddCmd(app *App) *cobra.Command {
	var project, description string
	var quantity, unitPrice float64

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a budget line to a project",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			p, err := app.Projects.Resolve(ctx, project)
			if err != nil {
				return err
			}

			line := &domain.BudgetLine{
				ProjectID:   p.ID,
				Description: description,
				Quantity:    quantity,
				UnitPrice:   unitPrice,
			}
			if err := app.Budget.Create(ctx, line); err != nil {
				return err
			}

			fmt.Printf("Added budget line %q (%s) to %s\n",
				line.Description, formatter.Money(line.BudgetedValue()), p.DisplayID())
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "Project short ID or UUID")
	cmd.Flags().StringVar(&description, "desc", "", "Line description")
	cmd.Flags().Float64Var(&quantity, "qty", 1, "Quantity")
	cmd.Flags().Float64Var(&unitPrice, "price", 0, "Unit price")
	_ = cmd.MarkFlagRequired("project")
	_ = cmd.MarkFlagRequired("desc")
	_ = cmd.MarkFlagRequired("price")

	return cmd
}

func newBudgetListCmd(app *App) *cobra.Command {
	var project string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List a project's budget lines",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			p, err := app.Projects.Resolve(ctx, project)
			if err != nil {
				return err
			}
			lines, err := app.Budget.ListByProject(ctx, p.ID)
			if err != nil {
				return err
			}

			if len(lines) == 0 {
				fmt.Println("No budget lines found.")
				return nil
			}

			fmt.Printf("%s\n", formatter.FormatBudgetLineList(lines))
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "Project short ID or UUID")
	_ = cmd.MarkFlagRequired("project")

	return cmd
}

func newBudgetRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm ID",
		Short: "Remove a budget line (tasks keep running, unlinked)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Budget.Delete(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Removed budget line %s\n", args[0])
			return nil
		},
	}
}
