package formatter

import (
	"testing"
	"time"

	"github.com/evanmoss/outlay/internal/contract"
	"github.com/evanmoss/outlay/internal/domain"
	"github.com/evanmoss/outlay/internal/evm"
	"github.com/stretchr/testify/assert"
)

func sampleReport() *contract.ReportResponse {
	date := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	return &contract.ReportResponse{
		Project: &domain.Project{
			Name:    "Headquarters Build",
			ShortID: "HQ01",
			Status:  domain.ProjectActive,
		},
		GeneratedAt: date,
		Metrics: evm.Snapshot{
			ReportDate:               date,
			BudgetAtCompletion:       1000000,
			PlannedValue:             500000,
			EarnedValue:              560000,
			ActualCost:               560000,
			CostPerformanceIndex:     1.0,
			SchedulePerformanceIndex: 1.12,
			PerformanceStatus:        domain.PerformanceOnTrack,
			HealthScore:              100,
		},
		CriticalPath: evm.CriticalPathImpact{
			CriticalTaskIDs:   []string{"task-1"},
			ScheduleRiskScore: 0,
		},
		Forecast: evm.CompletionForecast{
			CompletionDate:  date.AddDate(0, 3, 0),
			Cost:            1000000,
			ConfidenceLevel: 0.95,
			Optimistic:      evm.ForecastScenario{CompletionDate: date.AddDate(0, 2, 15), Cost: 980000},
			MostLikely:      evm.ForecastScenario{CompletionDate: date.AddDate(0, 3, 0), Cost: 1000000},
			Pessimistic:     evm.ForecastScenario{CompletionDate: date.AddDate(0, 4, 0), Cost: 1050000},
		},
		TaskCount: 3,
		OpenTasks: 2,
	}
}

func TestFormatReport_ContainsHeadlineSections(t *testing.T) {
	out := FormatReport(sampleReport())

	assert.Contains(t, out, "Headquarters Build")
	assert.Contains(t, out, "HQ01")
	assert.Contains(t, out, "ON TRACK")
	assert.Contains(t, out, "$560,000.00")
	assert.Contains(t, out, "CRITICAL PATH")
	assert.Contains(t, out, "COMPLETION FORECAST")
	assert.Contains(t, out, "Most likely")
}

func TestFormatReport_NoRecommendations(t *testing.T) {
	out := FormatReport(sampleReport())
	assert.Contains(t, out, "No recommendations.")
}

func TestFormatTrend_EmptySeries(t *testing.T) {
	out := FormatTrend(&contract.TrendResponse{
		Project: &domain.Project{Name: "Fresh", ShortID: "FR01"},
	})
	assert.Contains(t, out, "No cost entries recorded yet.")
}

func TestFormatTrend_RendersPoints(t *testing.T) {
	out := FormatTrend(&contract.TrendResponse{
		Project: &domain.Project{Name: "Plant", ShortID: "PL01"},
		Points: []evm.TrendPoint{
			{
				Date:                     time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC),
				PlannedValue:             100000,
				EarnedValue:              90000,
				ActualCost:               95000,
				CostPerformanceIndex:     0.947,
				SchedulePerformanceIndex: 0.9,
			},
		},
	})
	assert.Contains(t, out, "2025-02-01")
	assert.Contains(t, out, "$90,000.00")
	assert.Contains(t, out, "CPI")
}
