package cli

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/evanmoss/outlay/internal/cli/formatter"
	"github.com/evanmoss/outlay/internal/contract"
	"github.com/evanmoss/outlay/internal/tui"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

func newDashboardCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Interactive project dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Without a terminal, print plain reports instead of the TUI.
			if !isatty.IsTerminal(os.Stdout.Fd()) {
				return printAllReports(app)
			}

			model := tui.NewModel(tui.Services{
				Projects:  app.Projects,
				Tasks:     app.Tasks,
				Analytics: app.Analytics,
			})
			_, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
			return err
		},
	}
}

func printAllReports(app *App) error {
	ctx := context.Background()
	projects, err := app.Projects.List(ctx, false)
	if err != nil {
		return err
	}
	if len(projects) == 0 {
		fmt.Println("No projects found.")
		return nil
	}

	for _, p := range projects {
		resp, err := app.Analytics.Report(ctx, contract.NewReportRequest(p.ID))
		if err != nil {
			return err
		}
		fmt.Printf("%s\n\n", formatter.FormatReport(resp))
	}
	return nil
}
