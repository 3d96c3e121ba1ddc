// Package cli wires the cobra command tree over the outlay services.
package cli

import (
	"github.com/evanmoss/outlay/internal/config"
	"github.com/evanmoss/outlay/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Projects  service.ProjectService
	Tasks     service.TaskService
	Budget    service.BudgetService
	Costs     service.CostService
	Analytics service.AnalyticsService
	Config    config.Config
}

// NewRootCmd creates the top-level "outlay" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "outlay",
		Short: "Project cost and schedule tracker with earned value analytics",
	}

	root.AddCommand(
		newProjectCmd(app),
		newTaskCmd(app),
		newBudgetCmd(app),
		newCostCmd(app),
		newReportCmd(app),
		newTrendCmd(app),
		newDashboardCmd(app),
	)

	return root
}
