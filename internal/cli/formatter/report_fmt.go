package formatter

import (
	"fmt"
	"strings"

	"github.com/evanmoss/outlay/internal/contract"
	"github.com/evanmoss/outlay/internal/evm"
)

// FormatReport renders a full EVM report: headline metrics in a box, the
// critical-path assessment, and the three-scenario forecast.
func FormatReport(resp *contract.ReportResponse) string {
	var b strings.Builder

	b.WriteString(formatMetricsBox(resp))
	b.WriteString("\n\n")
	b.WriteString(formatCriticalPath(resp.CriticalPath, resp.TaskCount))
	b.WriteString("\n\n")
	b.WriteString(formatForecast(resp.Forecast))

	return b.String()
}

func formatMetricsBox(resp *contract.ReportResponse) string {
	m := resp.Metrics
	p := resp.Project

	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s %s  %s\n", Bold(p.Name), Dim("["+p.DisplayID()+"]"), PerformanceIndicator(m.PerformanceStatus)))
	b.WriteString(Dim(fmt.Sprintf("Report date %s · %d tasks (%d open)\n\n",
		m.ReportDate.Format("2006-01-02"), resp.TaskCount, resp.OpenTasks)))

	earnedShare := 0.0
	if m.BudgetAtCompletion > 0 {
		earnedShare = m.EarnedValue / m.BudgetAtCompletion
	}
	b.WriteString(fmt.Sprintf("Earned    %s of %s  %s\n",
		Money(m.EarnedValue), Money(m.BudgetAtCompletion), RenderProgress(earnedShare, 20)))
	b.WriteString(fmt.Sprintf("Planned   %s\n", Money(m.PlannedValue)))
	b.WriteString(fmt.Sprintf("Spent     %s\n\n", Money(m.ActualCost)))

	b.WriteString(fmt.Sprintf("CPI %s   SPI %s   Health %s\n",
		IndexStyled(m.CostPerformanceIndex),
		IndexStyled(m.SchedulePerformanceIndex),
		healthStyled(m.HealthScore)))
	b.WriteString(fmt.Sprintf("Cost variance %s   Schedule variance %s\n\n",
		MoneyStyled(m.CostVariance), MoneyStyled(m.ScheduleVariance)))

	b.WriteString(fmt.Sprintf("EAC %s   ETC %s   VAC %s\n",
		Money(m.EstimateAtCompletion), Money(m.EstimateToComplete), MoneyStyled(m.VarianceAtCompletion)))
	b.WriteString(fmt.Sprintf("Time variance %+.1fd   Est. remaining %.0fd",
		m.TimeVarianceDays, m.EstimatedDaysToComplete))

	return RenderBox("EVM Report", b.String())
}

func healthStyled(score float64) string {
	text := fmt.Sprintf("%.0f/100", score)
	switch {
	case score >= 80:
		return StyleGreen.Render(text)
	case score >= 50:
		return StyleYellow.Render(text)
	default:
		return StyleRed.Render(text)
	}
}

func formatCriticalPath(impact evm.CriticalPathImpact, taskCount int) string {
	var b strings.Builder
	b.WriteString(Header("Critical Path"))
	b.WriteString("\n")

	b.WriteString(fmt.Sprintf("%d of %d tasks critical   Schedule risk %s\n",
		len(impact.CriticalTaskIDs), taskCount, riskStyled(impact.ScheduleRiskScore)))

	if len(impact.Recommendations) == 0 {
		b.WriteString(Dim("No recommendations."))
		return b.String()
	}
	for _, rec := range impact.Recommendations {
		b.WriteString(fmt.Sprintf("%s %s\n", StyleYellow.Render("▸"), rec))
	}
	return strings.TrimRight(b.String(), "\n")
}

func riskStyled(score float64) string {
	text := fmt.Sprintf("%.0f%%", score*100)
	switch {
	case score >= 0.5:
		return StyleRed.Render(text)
	case score >= 0.2:
		return StyleYellow.Render(text)
	default:
		return StyleGreen.Render(text)
	}
}

func formatForecast(f evm.CompletionForecast) string {
	var b strings.Builder
	b.WriteString(Header("Completion Forecast"))
	b.WriteString("\n")

	rows := [][]string{
		{StyleGreen.Render("Optimistic"), f.Optimistic.CompletionDate.Format("2006-01-02"), Money(f.Optimistic.Cost)},
		{Bold("Most likely"), f.MostLikely.CompletionDate.Format("2006-01-02"), Money(f.MostLikely.Cost)},
		{StyleRed.Render("Pessimistic"), f.Pessimistic.CompletionDate.Format("2006-01-02"), Money(f.Pessimistic.Cost)},
	}
	b.WriteString(RenderTable([]string{"Scenario", "Date", "Cost"}, rows))
	b.WriteString(fmt.Sprintf("\nConfidence %s", RenderProgress(f.ConfidenceLevel, 20)))

	return b.String()
}
