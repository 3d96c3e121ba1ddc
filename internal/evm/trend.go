package evm

import (
	"sort"
	"time"

	"github.com/evanmoss/outlay/internal/domain"
)

type TrendInput struct {
	Tasks              []domain.ScheduleTask
	BudgetLines        []domain.BudgetLine
	DatedCosts         []DatedCosts
	ProjectStartDate   time.Time
	BudgetAtCompletion float64
}

// TrendPoint carries the headline numbers of one historical report date.
type TrendPoint struct {
	Date                     time.Time
	PlannedValue             float64
	EarnedValue              float64
	ActualCost               float64
	CostPerformanceIndex     float64
	SchedulePerformanceIndex float64
}

// GenerateTrend computes one trend point per dated ledger snapshot, each as
// if CalculateMetrics had been invoked with that date as the report date.
// Output is sorted ascending by date; input order is not assumed. No point is
// dropped or merged, so the result length always equals len(in.DatedCosts).
func GenerateTrend(in TrendInput) []TrendPoint {
	dated := make([]DatedCosts, len(in.DatedCosts))
	copy(dated, in.DatedCosts)
	sort.SliceStable(dated, func(i, j int) bool {
		return dated[i].Date.Before(dated[j].Date)
	})

	points := make([]TrendPoint, 0, len(dated))
	for _, dc := range dated {
		snap := CalculateMetrics(MetricsInput{
			Tasks:              in.Tasks,
			BudgetLines:        in.BudgetLines,
			ActualCosts:        dc.Costs,
			ReportDate:         dc.Date,
			ProjectStartDate:   in.ProjectStartDate,
			BudgetAtCompletion: in.BudgetAtCompletion,
		})
		points = append(points, TrendPoint{
			Date:                     dc.Date,
			PlannedValue:             snap.PlannedValue,
			EarnedValue:              snap.EarnedValue,
			ActualCost:               snap.ActualCost,
			CostPerformanceIndex:     snap.CostPerformanceIndex,
			SchedulePerformanceIndex: snap.SchedulePerformanceIndex,
		})
	}
	return points
}
