// Package tui implements the interactive outlay dashboard: a selectable
// project list on the left, the selected project's EVM picture on the right.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/evanmoss/outlay/internal/cli/formatter"
	"github.com/evanmoss/outlay/internal/contract"
	"github.com/evanmoss/outlay/internal/domain"
	"github.com/evanmoss/outlay/internal/service"
)

// Services are the backend dependencies the dashboard reads from.
type Services struct {
	Projects  service.ProjectService
	Tasks     service.TaskService
	Analytics service.AnalyticsService
}

type projectsLoadedMsg struct {
	projects []*domain.Project
	err      error
}

type reportLoadedMsg struct {
	report *contract.ReportResponse
	trend  *contract.TrendResponse
	tasks  []domain.ScheduleTask
	err    error
}

// Model is the bubbletea model for the dashboard.
type Model struct {
	svc Services

	projects []*domain.Project
	cursor   int

	report    *contract.ReportResponse
	trend     *contract.TrendResponse
	riskTable table.Model

	width   int
	height  int
	loading bool
	err     error
}

func NewModel(svc Services) Model {
	columns := []table.Column{
		{Title: "Task", Width: 24},
		{Title: "Status", Width: 12},
		{Title: "Pri", Width: 4},
		{Title: "Done", Width: 5},
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithHeight(6),
	)
	styles := table.DefaultStyles()
	styles.Header = styles.Header.Foreground(formatter.ColorHeader).Bold(true)
	styles.Selected = styles.Selected.Foreground(formatter.ColorFg).Background(lipgloss.Color("#3c3836"))
	t.SetStyles(styles)

	return Model{svc: svc, riskTable: t, loading: true}
}

func (m Model) Init() tea.Cmd {
	return m.loadProjects()
}

func (m Model) loadProjects() tea.Cmd {
	return func() tea.Msg {
		projects, err := m.svc.Projects.List(context.Background(), false)
		return projectsLoadedMsg{projects: projects, err: err}
	}
}

func (m Model) loadReport() tea.Cmd {
	if m.cursor >= len(m.projects) {
		return nil
	}
	projectID := m.projects[m.cursor].ID
	return func() tea.Msg {
		ctx := context.Background()
		report, err := m.svc.Analytics.Report(ctx, contract.NewReportRequest(projectID))
		if err != nil {
			return reportLoadedMsg{err: err}
		}
		trend, err := m.svc.Analytics.Trend(ctx, contract.NewTrendRequest(projectID))
		if err != nil {
			return reportLoadedMsg{err: err}
		}
		tasks, err := m.svc.Tasks.ListByProject(ctx, projectID)
		if err != nil {
			return reportLoadedMsg{err: err}
		}
		return reportLoadedMsg{report: report, trend: trend, tasks: tasks}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case projectsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.projects = msg.projects
		if m.cursor >= len(m.projects) {
			m.cursor = 0
		}
		if len(m.projects) > 0 {
			return m, m.loadReport()
		}
		return m, nil

	case reportLoadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.report = msg.report
		m.trend = msg.trend
		m.riskTable.SetRows(riskRows(msg.tasks, msg.report.CriticalPath.CriticalTaskIDs))
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
				return m, m.loadReport()
			}
		case "down", "j":
			if m.cursor < len(m.projects)-1 {
				m.cursor++
				return m, m.loadReport()
			}
		case "r":
			m.loading = true
			return m, m.loadProjects()
		}
	}

	var cmd tea.Cmd
	m.riskTable, cmd = m.riskTable.Update(msg)
	return m, cmd
}

// riskRows keeps only tasks flagged by the critical-path assessment.
func riskRows(tasks []domain.ScheduleTask, criticalIDs []string) []table.Row {
	critical := make(map[string]bool, len(criticalIDs))
	for _, id := range criticalIDs {
		critical[id] = true
	}

	var rows []table.Row
	for _, t := range tasks {
		if !critical[t.ID] {
			continue
		}
		rows = append(rows, table.Row{
			t.Name,
			string(t.Status),
			string(t.Priority),
			fmt.Sprintf("%.0f%%", t.CompletionPct),
		})
	}
	return rows
}

const leftPaneWidth = 30

func (m Model) View() string {
	if m.loading {
		return "\n  " + formatter.Dim("Loading...")
	}
	if m.err != nil {
		return "\n  " + formatter.StyleRed.Render("Error: "+m.err.Error()) + "\n\n  " + formatter.Dim("q to quit")
	}
	if len(m.projects) == 0 {
		return "\n  " + formatter.Dim("No projects yet. Create one with `outlay project add`.") + "\n"
	}

	left := m.renderProjectList()
	right := m.renderDetail()

	if m.width < 80 {
		return left + "\n" + right + "\n" + m.helpLine()
	}

	rightWidth := m.width - leftPaneWidth - 3
	leftCol := lipgloss.NewStyle().Width(leftPaneWidth).Render(left)
	divider := formatter.StyleDim.Render("│")
	rightCol := lipgloss.NewStyle().Width(rightWidth).Render(right)

	return lipgloss.JoinHorizontal(lipgloss.Top, leftCol, " "+divider+" ", rightCol) + "\n" + m.helpLine()
}

func (m Model) renderProjectList() string {
	var b strings.Builder
	b.WriteString("\n " + formatter.StyleHeader.Render("PROJECTS") + "\n\n")

	for i, p := range m.projects {
		cursor := "  "
		nameStyle := formatter.StyleFg
		if i == m.cursor {
			cursor = formatter.StyleGreen.Render("▸ ")
			nameStyle = formatter.StyleBold
		}

		name := p.Name
		if len(name) > 18 {
			name = name[:17] + "…"
		}
		b.WriteString(fmt.Sprintf(" %s%-7s %s\n",
			cursor,
			formatter.StyleGreen.Render(p.DisplayID()),
			nameStyle.Render(name),
		))
	}
	return b.String()
}

func (m Model) renderDetail() string {
	if m.report == nil {
		return "\n " + formatter.Dim("Select a project.")
	}

	r := m.report
	metrics := r.Metrics
	var b strings.Builder

	b.WriteString("\n " + formatter.StyleBold.Render(r.Project.Name) + "  " +
		formatter.PerformanceIndicator(metrics.PerformanceStatus) + "\n\n")

	earnedShare := 0.0
	if metrics.BudgetAtCompletion > 0 {
		earnedShare = metrics.EarnedValue / metrics.BudgetAtCompletion
	}
	b.WriteString(" " + formatter.Dim("Earned   ") + formatter.RenderProgress(earnedShare, 16) + "\n")
	b.WriteString(fmt.Sprintf(" %s %s spent of %s budget\n\n",
		formatter.Dim("Spent   "),
		formatter.Bold(formatter.Money(metrics.ActualCost)),
		formatter.Money(metrics.BudgetAtCompletion)))

	b.WriteString(fmt.Sprintf(" CPI %s   SPI %s   Health %.0f/100\n",
		formatter.IndexStyled(metrics.CostPerformanceIndex),
		formatter.IndexStyled(metrics.SchedulePerformanceIndex),
		metrics.HealthScore))
	b.WriteString(fmt.Sprintf(" %s %s   %s %s\n",
		formatter.Dim("EAC"), formatter.Money(metrics.EstimateAtCompletion),
		formatter.Dim("Forecast"), r.Forecast.CompletionDate.Format("2006-01-02")))

	if m.trend != nil && len(m.trend.Points) > 1 {
		spend := make([]float64, len(m.trend.Points))
		for i, pt := range m.trend.Points {
			spend[i] = pt.ActualCost
		}
		b.WriteString(" " + formatter.Dim("Spend   ") + formatter.StyleGreen.Render(formatter.RenderSparkline(spend)) + "\n")
	}
	b.WriteString("\n")

	if len(r.CriticalPath.CriticalTaskIDs) > 0 {
		b.WriteString(" " + formatter.StyleHeader.Render("AT RISK") + "\n")
		b.WriteString(m.riskTable.View() + "\n")
	}
	for _, rec := range r.CriticalPath.Recommendations {
		b.WriteString(" " + formatter.StyleYellow.Render("▸") + " " + rec + "\n")
	}

	return b.String()
}

func (m Model) helpLine() string {
	return "\n " + formatter.Dim("↑/↓ select · r refresh · q quit")
}
