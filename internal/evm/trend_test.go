package evm

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func trendInputFromScenario() TrendInput {
	base := constructionInput()
	return TrendInput{
		Tasks:              base.Tasks,
		BudgetLines:        base.BudgetLines,
		ProjectStartDate:   base.ProjectStartDate,
		BudgetAtCompletion: base.BudgetAtCompletion,
	}
}

func TestGenerateTrend_SortsUnorderedSnapshots(t *testing.T) {
	in := trendInputFromScenario()
	in.DatedCosts = []DatedCosts{
		{Date: date(2025, 5, 1), Costs: CostSnapshot{"foundation": 210000, "structure": 150000}},
		{Date: date(2025, 3, 1), Costs: CostSnapshot{"foundation": 210000}},
		{Date: date(2025, 6, 1), Costs: CostSnapshot{"foundation": 210000, "structure": 350000}},
	}

	points := GenerateTrend(in)
	require.Len(t, points, 3)

	assert.Equal(t, date(2025, 3, 1), points[0].Date)
	assert.Equal(t, date(2025, 5, 1), points[1].Date)
	assert.Equal(t, date(2025, 6, 1), points[2].Date)
	for i := 1; i < len(points); i++ {
		assert.True(t, points[i-1].Date.Before(points[i].Date))
	}
}

func TestGenerateTrend_PointsMatchCalculator(t *testing.T) {
	in := trendInputFromScenario()
	in.DatedCosts = []DatedCosts{
		{Date: date(2025, 6, 1), Costs: CostSnapshot{"foundation": 210000, "structure": 350000}},
	}

	points := GenerateTrend(in)
	require.Len(t, points, 1)

	snap := CalculateMetrics(constructionInput())
	assert.InDelta(t, snap.PlannedValue, points[0].PlannedValue, 0.01)
	assert.InDelta(t, snap.EarnedValue, points[0].EarnedValue, 0.01)
	assert.InDelta(t, snap.ActualCost, points[0].ActualCost, 0.01)
	assert.InDelta(t, snap.CostPerformanceIndex, points[0].CostPerformanceIndex, 0.0001)
	assert.InDelta(t, snap.SchedulePerformanceIndex, points[0].SchedulePerformanceIndex, 0.0001)
}

func TestGenerateTrend_DegenerateInputs(t *testing.T) {
	in := trendInputFromScenario()

	assert.Empty(t, GenerateTrend(in))

	in.DatedCosts = []DatedCosts{{Date: date(2025, 2, 1), Costs: CostSnapshot{}}}
	assert.Len(t, GenerateTrend(in), 1)
}

func TestGenerateTrend_DoesNotReorderInput(t *testing.T) {
	in := trendInputFromScenario()
	in.DatedCosts = []DatedCosts{
		{Date: date(2025, 6, 1), Costs: CostSnapshot{}},
		{Date: date(2025, 3, 1), Costs: CostSnapshot{}},
	}

	_ = GenerateTrend(in)

	// The caller's slice keeps its original order.
	assert.Equal(t, date(2025, 6, 1), in.DatedCosts[0].Date)
	assert.Equal(t, date(2025, 3, 1), in.DatedCosts[1].Date)
}

func TestGenerateTrend_RisingActualCost(t *testing.T) {
	in := trendInputFromScenario()
	var dated []DatedCosts
	for m := 2; m <= 6; m++ {
		dated = append(dated, DatedCosts{
			Date:  date(2025, time.Month(m), 1),
			Costs: CostSnapshot{"foundation": float64(m) * 40000},
		})
	}
	in.DatedCosts = dated

	points := GenerateTrend(in)
	require.Len(t, points, 5)
	for i := 1; i < len(points); i++ {
		assert.Greater(t, points[i].ActualCost, points[i-1].ActualCost)
	}
}
