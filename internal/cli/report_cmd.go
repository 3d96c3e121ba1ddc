package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/evanmoss/outlay/internal/cli/formatter"
	"github.com/evanmoss/outlay/internal/contract"
	"github.com/spf13/cobra"
)

func newReportCmd(app *App) *cobra.Command {
	var project, date string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Show the EVM report for a project",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := contract.NewReportRequest(project)
			if date != "" {
				asOf, err := time.Parse(dateLayout, date)
				if err != nil {
					return fmt.Errorf("invalid report date %q: %w", date, err)
				}
				req.AsOf = &asOf
			}

			resp, err := app.Analytics.Report(context.Background(), req)
			if err != nil {
				return err
			}

			fmt.Printf("%s\n", formatter.FormatReport(resp))
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "Project short ID or UUID")
	cmd.Flags().StringVar(&date, "date", "", "Report date (YYYY-MM-DD), defaults to today")
	_ = cmd.MarkFlagRequired("project")

	return cmd
}

func newTrendCmd(app *App) *cobra.Command {
	var project string
	var last int

	cmd := &cobra.Command{
		Use:   "trend",
		Short: "Show the historical PV/EV/AC series for a project",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := contract.NewTrendRequest(project)
			req.LastN = last
			if last == 0 {
				req.LastN = app.Config.Report.TrendWindow
			}

			resp, err := app.Analytics.Trend(context.Background(), req)
			if err != nil {
				return err
			}

			fmt.Printf("%s\n", formatter.FormatTrend(resp))
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "Project short ID or UUID")
	cmd.Flags().IntVar(&last, "last", 0, "Show only the most recent N points (0 = config default)")
	_ = cmd.MarkFlagRequired("project")

	return cmd
}
