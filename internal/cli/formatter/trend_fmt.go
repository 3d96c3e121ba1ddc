package formatter

import (
	"fmt"
	"strings"

	"github.com/evanmoss/outlay/internal/contract"
)

// FormatTrend renders the historical PV/EV/AC series as a table.
func FormatTrend(resp *contract.TrendResponse) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s %s\n\n", Bold(resp.Project.Name), Dim("["+resp.Project.DisplayID()+"]")))

	if len(resp.Points) == 0 {
		b.WriteString(Dim("No cost entries recorded yet."))
		return b.String()
	}

	rows := make([][]string, 0, len(resp.Points))
	for _, pt := range resp.Points {
		rows = append(rows, []string{
			pt.Date.Format("2006-01-02"),
			Money(pt.PlannedValue),
			Money(pt.EarnedValue),
			Money(pt.ActualCost),
			IndexStyled(pt.CostPerformanceIndex),
			IndexStyled(pt.SchedulePerformanceIndex),
		})
	}
	b.WriteString(RenderTable([]string{"Date", "PV", "EV", "AC", "CPI", "SPI"}, rows))
	return strings.TrimRight(b.String(), "\n")
}
