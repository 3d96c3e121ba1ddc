package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/evanmoss/outlay/internal/cli/formatter"
	"github.com/evanmoss/outlay/internal/domain"
	"github.com/spf13/cobra"
)

func newCostCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cost",
		Short: "Record and inspect actual costs",
	}

	cmd.AddCommand(
		newCostLogCmd(app),
		newCostListCmd(app),
	)

	return cmd
}

func newCostLogCmd(app *App) *cobra.Command {
	var task, date, note string
	var amount float64

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Record a cost entry against a task",
		RunE: func(cmd *cobra.Command, args []string) error {
			entry := &domain.CostEntry{
				TaskID: task,
				Amount: amount,
				Note:   note,
			}
			if date != "" {
				recorded, err := time.Parse(dateLayout, date)
				if err != nil {
					return fmt.Errorf("invalid date %q: %w", date, err)
				}
				entry.RecordedAt = recorded
			}

			if err := app.Costs.Log(context.Background(), entry); err != nil {
				return err
			}

			fmt.Printf("Logged %s against task %s\n", formatter.Money(entry.Amount), task)
			return nil
		},
	}

	cmd.Flags().StringVar(&task, "task", "", "Task ID")
	cmd.Flags().Float64Var(&amount, "amount", 0, "Amount spent")
	cmd.Flags().StringVar(&date, "date", "", "Recording date (YYYY-MM-DD), defaults to today")
	cmd.Flags().StringVar(&note, "note", "", "Optional note")
	_ = cmd.MarkFlagRequired("task")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func newCostListCmd(app *App) *cobra.Command {
	var project, task string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List cost entries for a task or a whole project",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			var entries []domain.CostEntry
			switch {
			case task != "":
				var err error
				entries, err = app.Costs.ListByTask(ctx, task)
				if err != nil {
					return err
				}
			case project != "":
				p, err := app.Projects.Resolve(ctx, project)
				if err != nil {
					return err
				}
				entries, err = app.Costs.ListByProject(ctx, p.ID)
				if err != nil {
					return err
				}
			default:
				return fmt.Errorf("either --task or --project is required")
			}

			if len(entries) == 0 {
				fmt.Println("No cost entries found.")
				return nil
			}

			fmt.Printf("%s\n", formatter.FormatCostEntryList(entries))
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "Project short ID or UUID")
	cmd.Flags().StringVar(&task, "task", "", "Task ID")

	return cmd
}
