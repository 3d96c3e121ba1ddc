package cli

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/evanmoss/outlay/internal/cli/formatter"
	"github.com/evanmoss/outlay/internal/domain"
	"github.com/spf13/cobra"
)

func newTaskCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage schedule tasks",
	}

	cmd.AddCommand(
		newTaskAddCmd(app),
		newTaskListCmd(app),
		newTaskProgressCmd(app),
		newTaskDoneCmd(app),
		newTaskRemoveCmd(app),
	)

	return cmd
}

func newTaskAddCmd(app *App) *cobra.Command {
	var project, name, start, end, priority, budgetLine string
	var interactive bool

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a schedule task to a project",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			p, err := app.Projects.Resolve(ctx, project)
			if err != nil {
				return err
			}

			if interactive {
				if err := runTaskForm(ctx, app, p.ID, &name, &start, &end, &priority, &budgetLine); err != nil {
					return err
				}
			}

			startDate, err := time.Parse(dateLayout, start)
			if err != nil {
				return fmt.Errorf("invalid start date %q: %w", start, err)
			}
			endDate, err := time.Parse(dateLayout, end)
			if err != nil {
				return fmt.Errorf("invalid end date %q: %w", end, err)
			}

			task := &domain.ScheduleTask{
				ProjectID: p.ID,
				Name:      name,
				StartDate: startDate,
				EndDate:   endDate,
				Priority:  domain.TaskPriority(priority),
			}
			if budgetLine != "" {
				task.BudgetLineID = &budgetLine
			}

			if err := app.Tasks.Create(ctx, task); err != nil {
				return err
			}

			fmt.Printf("Added task %q to %s\n", task.Name, p.DisplayID())
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "Project short ID or UUID")
	cmd.Flags().StringVar(&name, "name", "", "Task name")
	cmd.Flags().StringVar(&start, "start", "", "Start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&end, "end", "", "End date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&priority, "priority", "medium", "Priority (low|medium|high)")
	cmd.Flags().StringVar(&budgetLine, "budget-line", "", "Budget line ID to earn value against")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Fill in task details with a form")
	_ = cmd.MarkFlagRequired("project")

	return cmd
}

// runTaskForm collects task fields with a huh form, offering the project's
// budget lines as select options.
func runTaskForm(ctx context.Context, app *App, projectID string, name, start, end, priority, budgetLine *string) error {
	lines, err := app.Budget.ListByProject(ctx, projectID)
	if err != nil {
		return err
	}

	lineOptions := []huh.Option[string]{huh.NewOption("(none)", "")}
	for _, l := range lines {
		label := fmt.Sprintf("%s · %s", l.Description, formatter.Money(l.BudgetedValue()))
		lineOptions = append(lineOptions, huh.NewOption(label, l.ID))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Task Name").
				Value(name).
				Validate(validateRequired),
			dateInput("Start Date (YYYY-MM-DD)", "", start),
			dateInput("End Date (YYYY-MM-DD)", "", end),
			huh.NewSelect[string]().
				Title("Priority").
				Options(
					huh.NewOption("Low", "low"),
					huh.NewOption("Medium", "medium"),
					huh.NewOption("High", "high"),
				).
				Value(priority),
			huh.NewSelect[string]().
				Title("Budget Line").
				Options(lineOptions...).
				Value(budgetLine),
		),
	).WithTheme(outlayHuhTheme()).WithShowHelp(false)

	return form.Run()
}

func newTaskListCmd(app *App) *cobra.Command {
	var project string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List a project's schedule tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			p, err := app.Projects.Resolve(ctx, project)
			if err != nil {
				return err
			}
			tasks, err := app.Tasks.ListByProject(ctx, p.ID)
			if err != nil {
				return err
			}

			if len(tasks) == 0 {
				fmt.Println("No tasks found.")
				return nil
			}

			fmt.Printf("%s\n", formatter.FormatTaskList(tasks))
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "Project short ID or UUID")
	_ = cmd.MarkFlagRequired("project")

	return cmd
}

func newTaskProgressCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "progress ID PERCENT",
		Short: "Record task completion percentage",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			pct, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("invalid percentage %q: %w", args[1], err)
			}
			if err := app.Tasks.SetProgress(context.Background(), args[0], pct); err != nil {
				return err
			}
			fmt.Printf("Task %s at %.0f%%\n", args[0], pct)
			return nil
		},
	}
}

func newTaskDoneCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "done ID",
		Short: "Mark a task completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Tasks.MarkDone(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Completed task %s\n", args[0])
			return nil
		},
	}
}

func newTaskRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm ID",
		Short: "Remove a task and its cost entries",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Tasks.Delete(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Removed task %s\n", args[0])
			return nil
		},
	}
}
