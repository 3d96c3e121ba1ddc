package evm

import (
	"testing"
	"time"

	"github.com/evanmoss/outlay/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func task(id string, start, end time.Time, pct float64, status domain.TaskStatus, priority domain.TaskPriority, budgetLineID string) domain.ScheduleTask {
	t := domain.ScheduleTask{
		ID:            id,
		ProjectID:     "p1",
		Name:          id,
		StartDate:     start,
		EndDate:       end,
		CompletionPct: pct,
		Status:        status,
		Priority:      priority,
	}
	if budgetLineID != "" {
		t.BudgetLineID = &budgetLineID
	}
	return t
}

func line(id string, qty, unitPrice float64) domain.BudgetLine {
	return domain.BudgetLine{ID: id, ProjectID: "p1", Quantity: qty, UnitPrice: unitPrice}
}

// constructionInput is the reference scenario: a 9-month build reported on
// 5 months in. Foundation done ($210k spent vs $200k budget), structure 60%
// done at exactly half its window ($350k spent vs $600k budget), finishing
// not started. BAC $1M.
func constructionInput() MetricsInput {
	return MetricsInput{
		ProjectID: "p1",
		Tasks: []domain.ScheduleTask{
			task("foundation", date(2025, 1, 1), date(2025, 3, 1), 100, domain.TaskCompleted, domain.PriorityHigh, "bl-foundation"),
			task("structure", date(2025, 4, 1), date(2025, 8, 1), 60, domain.TaskInProgress, domain.PriorityHigh, "bl-structure"),
			task("finishing", date(2025, 8, 1), date(2025, 9, 30), 0, domain.TaskTodo, domain.PriorityMedium, "bl-finishing"),
		},
		BudgetLines: []domain.BudgetLine{
			line("bl-foundation", 1, 200000),
			line("bl-structure", 1, 600000),
			line("bl-finishing", 1, 200000),
		},
		ActualCosts: CostSnapshot{
			"foundation": 210000,
			"structure":  350000,
		},
		ReportDate:         date(2025, 6, 1),
		ProjectStartDate:   date(2025, 1, 1),
		BudgetAtCompletion: 1000000,
	}
}

func TestCalculateMetrics_ConstructionScenario(t *testing.T) {
	snap := CalculateMetrics(constructionInput())

	// EV = 200k + 600k*0.6 = 560k; AC = 210k + 350k = 560k; CPI = 1.
	assert.InDelta(t, 560000, snap.ActualCost, 0.01)
	assert.InDelta(t, 560000, snap.EarnedValue, 1000)
	assert.InDelta(t, 1.0, snap.CostPerformanceIndex, 0.01)

	// PV: foundation fully past (200k) + structure at exactly half its
	// Apr 1 - Aug 1 window (300k) + finishing in the future (0).
	assert.InDelta(t, 500000, snap.PlannedValue, 0.01)
	assert.InDelta(t, 1.12, snap.SchedulePerformanceIndex, 0.001)

	assert.Greater(t, snap.HealthScore, 50.0)
	assert.Contains(t,
		[]domain.PerformanceStatus{domain.PerformanceOnTrack, domain.PerformanceAtRisk},
		snap.PerformanceStatus)
}

func TestCalculateMetrics_HalvedCompletionLowersSPI(t *testing.T) {
	in := constructionInput()
	baseline := CalculateMetrics(in)

	for i := range in.Tasks {
		in.Tasks[i].CompletionPct /= 2
	}
	halved := CalculateMetrics(in)

	// EV drops to 280k; SPI = 280k/500k = 0.56.
	assert.Less(t, halved.SchedulePerformanceIndex, baseline.SchedulePerformanceIndex)
	assert.InDelta(t, 0.56, halved.SchedulePerformanceIndex, 0.001)
}

func TestCalculateMetrics_EmptyTaskList(t *testing.T) {
	snap := CalculateMetrics(MetricsInput{
		ProjectID:          "p1",
		ReportDate:         date(2025, 6, 1),
		ProjectStartDate:   date(2025, 1, 1),
		BudgetAtCompletion: 100000,
	})

	assert.Zero(t, snap.PlannedValue)
	assert.Zero(t, snap.EarnedValue)
	assert.Zero(t, snap.ActualCost)
	assert.Equal(t, 1.0, snap.CostPerformanceIndex)
	assert.Equal(t, 1.0, snap.SchedulePerformanceIndex)
}

func TestCalculateMetrics_IndexDefaultsOnZeroDenominator(t *testing.T) {
	// Costs recorded but nothing earned or planned yet.
	snap := CalculateMetrics(MetricsInput{
		Tasks: []domain.ScheduleTask{
			task("t1", date(2025, 7, 1), date(2025, 8, 1), 0, domain.TaskTodo, domain.PriorityLow, "bl1"),
		},
		BudgetLines:        []domain.BudgetLine{line("bl1", 10, 500)},
		ActualCosts:        CostSnapshot{},
		ReportDate:         date(2025, 6, 1),
		ProjectStartDate:   date(2025, 1, 1),
		BudgetAtCompletion: 5000,
	})

	assert.Equal(t, 1.0, snap.CostPerformanceIndex, "AC = 0 must default CPI to exactly 1")
	assert.Equal(t, 1.0, snap.SchedulePerformanceIndex, "PV = 0 must default SPI to exactly 1")
}

func TestCalculateMetrics_UnlinkedTaskContributesZero(t *testing.T) {
	snap := CalculateMetrics(MetricsInput{
		Tasks: []domain.ScheduleTask{
			// No budget line reference at all.
			task("orphan", date(2025, 1, 1), date(2025, 2, 1), 80, domain.TaskInProgress, domain.PriorityHigh, ""),
			// Reference that does not resolve.
			task("dangling", date(2025, 1, 1), date(2025, 2, 1), 80, domain.TaskInProgress, domain.PriorityHigh, "bl-missing"),
		},
		BudgetLines:        []domain.BudgetLine{line("bl-other", 1, 1000)},
		ReportDate:         date(2025, 6, 1),
		ProjectStartDate:   date(2025, 1, 1),
		BudgetAtCompletion: 1000,
	})

	assert.Zero(t, snap.PlannedValue)
	assert.Zero(t, snap.EarnedValue)
}

func TestCalculateMetrics_UnmatchedCostIDsStillCount(t *testing.T) {
	// AC sums the whole ledger snapshot, task linkage or not.
	snap := CalculateMetrics(MetricsInput{
		ActualCosts:        CostSnapshot{"ghost-task": 1234, "another": 766},
		ReportDate:         date(2025, 6, 1),
		ProjectStartDate:   date(2025, 1, 1),
		BudgetAtCompletion: 10000,
	})

	assert.InDelta(t, 2000, snap.ActualCost, 0.01)
}

func TestCalculateMetrics_TimePhasing(t *testing.T) {
	report := date(2025, 6, 1)
	in := MetricsInput{
		Tasks: []domain.ScheduleTask{
			// Entirely in the future: zero planned value.
			task("future", date(2025, 7, 1), date(2025, 8, 1), 0, domain.TaskTodo, domain.PriorityLow, "bl1"),
			// Entirely in the past with 0% completion: full planned value anyway.
			task("past", date(2025, 2, 1), date(2025, 3, 1), 0, domain.TaskTodo, domain.PriorityLow, "bl1"),
			// Zero-length milestone already reached: fully planned.
			task("milestone", date(2025, 5, 1), date(2025, 5, 1), 0, domain.TaskTodo, domain.PriorityLow, "bl1"),
		},
		BudgetLines:        []domain.BudgetLine{line("bl1", 1, 1000)},
		ReportDate:         report,
		ProjectStartDate:   date(2025, 1, 1),
		BudgetAtCompletion: 3000,
	}

	snap := CalculateMetrics(in)
	assert.InDelta(t, 2000, snap.PlannedValue, 0.01, "past task and milestone count fully, future task not at all")
	assert.Zero(t, snap.EarnedValue)
}

func TestCalculateMetrics_ForecastIdentities(t *testing.T) {
	in := constructionInput()
	// Make the project over budget so CPI != 1.
	in.ActualCosts["structure"] = 450000
	snap := CalculateMetrics(in)

	require.Greater(t, snap.CostPerformanceIndex, 0.0)
	expectedEAC := snap.ActualCost + (snap.BudgetAtCompletion-snap.EarnedValue)/snap.CostPerformanceIndex
	assert.InDelta(t, expectedEAC, snap.EstimateAtCompletion, 0.01)
	assert.InDelta(t, snap.EstimateAtCompletion-snap.ActualCost, snap.EstimateToComplete, 0.01)
	assert.InDelta(t, snap.BudgetAtCompletion-snap.EstimateAtCompletion, snap.VarianceAtCompletion, 0.01)
}

func TestCalculateMetrics_PerformanceStatusBands(t *testing.T) {
	in := constructionInput()

	// Both indices healthy.
	assert.Equal(t, domain.PerformanceOnTrack, CalculateMetrics(in).PerformanceStatus)

	// Overspend drags CPI below 1 but not critically.
	in.ActualCosts["structure"] = 450000
	snap := CalculateMetrics(in)
	assert.Less(t, snap.CostPerformanceIndex, 1.0)
	assert.Equal(t, domain.PerformanceAtRisk, snap.PerformanceStatus)

	// Both indices below 0.8.
	for i := range in.Tasks {
		in.Tasks[i].CompletionPct /= 2
	}
	in.ActualCosts["structure"] = 500000
	snap = CalculateMetrics(in)
	assert.Less(t, snap.CostPerformanceIndex, 0.8)
	assert.Less(t, snap.SchedulePerformanceIndex, 0.8)
	assert.Equal(t, domain.PerformanceCritical, snap.PerformanceStatus)
}

func TestCalculateMetrics_EstimatedDaysAlwaysPositive(t *testing.T) {
	// Finished project, report date past every end date.
	snap := CalculateMetrics(MetricsInput{
		Tasks: []domain.ScheduleTask{
			task("done", date(2025, 1, 1), date(2025, 2, 1), 100, domain.TaskCompleted, domain.PriorityLow, "bl1"),
		},
		BudgetLines:        []domain.BudgetLine{line("bl1", 1, 1000)},
		ActualCosts:        CostSnapshot{"done": 1000},
		ReportDate:         date(2025, 6, 1),
		ProjectStartDate:   date(2025, 1, 1),
		BudgetAtCompletion: 1000,
	})

	assert.Greater(t, snap.EstimatedDaysToComplete, 0.0)
}

func TestCalculateMetrics_DoesNotMutateInputs(t *testing.T) {
	in := constructionInput()
	originalPct := in.Tasks[1].CompletionPct
	originalCost := in.ActualCosts["structure"]

	_ = CalculateMetrics(in)

	assert.Equal(t, originalPct, in.Tasks[1].CompletionPct)
	assert.Equal(t, originalCost, in.ActualCosts["structure"])
}
