package formatter

import (
	"fmt"
	"strings"

	"github.com/evanmoss/outlay/internal/domain"
)

// FormatProjectList renders the project list table.
func FormatProjectList(projects []*domain.Project) string {
	rows := make([][]string, 0, len(projects))
	for _, p := range projects {
		rows = append(rows, []string{
			Bold(p.DisplayID()),
			p.Name,
			StatusPill(p.Status),
			p.StartDate.Format("2006-01-02"),
			p.EndDate.Format("2006-01-02"),
			Money(p.BudgetAtCompletion),
		})
	}
	return RenderTable([]string{"ID", "Name", "Status", "Start", "End", "Budget"}, rows)
}

// FormatTaskList renders the schedule task table for one project.
func FormatTaskList(tasks []domain.ScheduleTask) string {
	rows := make([][]string, 0, len(tasks))
	for _, t := range tasks {
		rows = append(rows, []string{
			TruncID(t.ID),
			t.Name,
			TaskStatusPill(t.Status),
			PriorityBadge(t.Priority),
			t.StartDate.Format("2006-01-02"),
			t.EndDate.Format("2006-01-02"),
			RenderProgress(t.CompletionPct/100, 10),
		})
	}
	return RenderTable([]string{"ID", "Name", "Status", "Pri", "Start", "End", "Progress"}, rows)
}

// FormatBudgetLineList renders the budget catalogue table for one project.
func FormatBudgetLineList(lines []domain.BudgetLine) string {
	var total float64
	rows := make([][]string, 0, len(lines))
	for _, l := range lines {
		total += l.BudgetedValue()
		rows = append(rows, []string{
			TruncID(l.ID),
			l.Description,
			fmt.Sprintf("%.2f", l.Quantity),
			Money(l.UnitPrice),
			Money(l.BudgetedValue()),
		})
	}
	table := RenderTable([]string{"ID", "Description", "Qty", "Unit Price", "Budgeted"}, rows)
	return table + "\n" + Dim("Total budgeted: ") + Bold(Money(total))
}

// FormatCostEntryList renders the cost ledger table.
func FormatCostEntryList(entries []domain.CostEntry) string {
	var total float64
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		total += e.Amount
		note := e.Note
		if note == "" {
			note = Dim("--")
		}
		rows = append(rows, []string{
			TruncID(e.ID),
			e.RecordedAt.Format("2006-01-02"),
			Money(e.Amount),
			note,
		})
	}
	table := RenderTable([]string{"ID", "Date", "Amount", "Note"}, rows)
	return table + "\n" + Dim("Total spent: ") + Bold(Money(total))
}

// FormatProjectInspect renders a single project's detail view.
func FormatProjectInspect(p *domain.Project, tasks []domain.ScheduleTask, lines []domain.BudgetLine) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s %s  %s\n", Bold(p.Name), Dim("["+p.DisplayID()+"]"), StatusPill(p.Status)))
	b.WriteString(fmt.Sprintf("%s → %s   Budget %s\n",
		p.StartDate.Format("2006-01-02"), p.EndDate.Format("2006-01-02"), Money(p.BudgetAtCompletion)))

	if len(lines) > 0 {
		b.WriteString("\n" + Header("Budget Lines") + "\n")
		b.WriteString(FormatBudgetLineList(lines))
		b.WriteString("\n")
	}
	if len(tasks) > 0 {
		b.WriteString("\n" + Header("Schedule") + "\n")
		b.WriteString(FormatTaskList(tasks))
	}
	return strings.TrimRight(b.String(), "\n")
}
