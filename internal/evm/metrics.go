// Package evm implements the earned value management analytics engine:
// snapshot metrics, historical trends, critical-path impact, and completion
// forecasts. Every function is pure and side-effect free; inputs are never
// mutated and results carry no references back to them.
package evm

import (
	"math"
	"time"

	"github.com/evanmoss/outlay/internal/domain"
)

const (
	// criticalIndexThreshold marks the point below which an index is
	// considered critically poor.
	criticalIndexThreshold = 0.8

	// minEstimateDays keeps the time-to-complete estimate positive even for
	// projects that are effectively finished, so it stays meaningful for
	// display.
	minEstimateDays = 1.0

	hoursPerDay = 24.0
)

// CostSnapshot maps task ID to cumulative actual cost as of a report date.
type CostSnapshot map[string]float64

// DatedCosts is one historical ledger snapshot, used for trend generation.
type DatedCosts struct {
	Date  time.Time
	Costs CostSnapshot
}

type MetricsInput struct {
	ProjectID          string
	Tasks              []domain.ScheduleTask
	BudgetLines        []domain.BudgetLine
	ActualCosts        CostSnapshot
	ReportDate         time.Time
	ProjectStartDate   time.Time
	BudgetAtCompletion float64
}

// Snapshot is the canonical EVM picture of a project at one report date.
type Snapshot struct {
	ProjectID          string
	ReportDate         time.Time
	BudgetAtCompletion float64

	PlannedValue float64
	EarnedValue  float64
	ActualCost   float64

	CostPerformanceIndex     float64
	SchedulePerformanceIndex float64
	CostVariance             float64
	ScheduleVariance         float64

	EstimateAtCompletion float64
	EstimateToComplete   float64
	VarianceAtCompletion float64

	// TimeVarianceDays is schedule-equivalent days gained (positive) or lost
	// (negative) relative to the plan as of the report date.
	TimeVarianceDays        float64
	EstimatedDaysToComplete float64

	PerformanceStatus domain.PerformanceStatus
	HealthScore       float64
}

// CalculateMetrics computes the EVM snapshot for one reporting date.
// Irregular data degrades to defined fallbacks rather than erroring: tasks
// with no matching budget line contribute zero value, and zero denominators
// resolve to an index of exactly 1 (a deliberate "no data yet" signal for
// dashboards, expressed as a guarded branch rather than a NaN coercion).
func CalculateMetrics(in MetricsInput) Snapshot {
	budgetByID := make(map[string]float64, len(in.BudgetLines))
	for _, line := range in.BudgetLines {
		budgetByID[line.ID] = line.BudgetedValue()
	}

	var pv, ev float64
	for _, task := range in.Tasks {
		var budgeted float64
		if task.BudgetLineID != nil {
			budgeted = budgetByID[*task.BudgetLineID]
		}
		pv += budgeted * plannedFraction(task, in.ReportDate)
		ev += budgeted * task.CompletionPct / 100
	}

	// AC counts every ledger entry, matched to a task or not.
	var ac float64
	for _, amount := range in.ActualCosts {
		ac += amount
	}

	cpi := performanceIndex(ev, ac)
	spi := performanceIndex(ev, pv)

	bac := in.BudgetAtCompletion
	eac := estimateAtCompletion(ac, bac, ev, cpi)

	snap := Snapshot{
		ProjectID:          in.ProjectID,
		ReportDate:         in.ReportDate,
		BudgetAtCompletion: bac,

		PlannedValue: pv,
		EarnedValue:  ev,
		ActualCost:   ac,

		CostPerformanceIndex:     cpi,
		SchedulePerformanceIndex: spi,
		CostVariance:             ev - ac,
		ScheduleVariance:         ev - pv,

		EstimateAtCompletion: eac,
		EstimateToComplete:   eac - ac,
		VarianceAtCompletion: bac - eac,
	}

	elapsed := daysBetween(in.ProjectStartDate, in.ReportDate)
	planned := plannedScheduleDays(in.Tasks, in.ProjectStartDate)
	snap.TimeVarianceDays = elapsed*spi - elapsed
	snap.EstimatedDaysToComplete = estimatedDaysToComplete(planned, elapsed, spi)

	snap.PerformanceStatus = performanceStatus(cpi, spi)
	snap.HealthScore = healthScore(cpi, spi, snap.CostVariance, snap.ScheduleVariance, bac)

	return snap
}

// plannedFraction is the linear time-phased share of a task's budget that
// should be earned by the report date. Zero-length tasks count as fully
// planned once their date is reached.
func plannedFraction(task domain.ScheduleTask, reportDate time.Time) float64 {
	if reportDate.Before(task.StartDate) {
		return 0
	}
	if !reportDate.Before(task.EndDate) {
		return 1
	}
	total := task.EndDate.Sub(task.StartDate)
	if total <= 0 {
		return 1
	}
	return clamp01(float64(reportDate.Sub(task.StartDate)) / float64(total))
}

// performanceIndex returns earned/denominator, defaulting to exactly 1 when
// the denominator is zero.
func performanceIndex(earned, denominator float64) float64 {
	if denominator == 0 {
		return 1
	}
	return earned / denominator
}

// estimateAtCompletion applies the standard "remaining work continues at
// current cost efficiency" formula. A zero or negative CPI (money spent with
// nothing earned) falls back to budget-rate for the remainder.
func estimateAtCompletion(ac, bac, ev, cpi float64) float64 {
	if cpi <= 0 {
		return ac + (bac - ev)
	}
	return ac + (bac-ev)/cpi
}

// plannedScheduleDays is the planned project span in days: start to the
// latest task end date.
func plannedScheduleDays(tasks []domain.ScheduleTask, start time.Time) float64 {
	var latest time.Time
	for _, task := range tasks {
		if task.EndDate.After(latest) {
			latest = task.EndDate
		}
	}
	if latest.IsZero() {
		return 0
	}
	return daysBetween(start, latest)
}

// estimatedDaysToComplete projects remaining duration at the current schedule
// pace: below-1 SPI stretches the remaining planned duration proportionally.
func estimatedDaysToComplete(plannedDays, elapsedDays, spi float64) float64 {
	earnedDays := elapsedDays * spi
	remaining := plannedDays - earnedDays
	if remaining < 0 {
		remaining = 0
	}
	if spi > 0 {
		remaining /= spi
	}
	return math.Max(remaining, minEstimateDays)
}

func performanceStatus(cpi, spi float64) domain.PerformanceStatus {
	switch {
	case cpi < criticalIndexThreshold && spi < criticalIndexThreshold:
		return domain.PerformanceCritical
	case cpi < 1 || spi < 1:
		return domain.PerformanceAtRisk
	default:
		return domain.PerformanceOnTrack
	}
}

// healthScore composes a 0-100 display score: the indices carry most of the
// weight, with the variances (scaled against BAC) penalizing large overruns.
func healthScore(cpi, spi, cv, sv, bac float64) float64 {
	score := 35*clamp01(cpi) + 35*clamp01(spi) +
		15*varianceScore(cv, bac) + 15*varianceScore(sv, bac)
	return clamp(score, 0, 100)
}

// varianceScore maps a variance to [0,1]: non-negative variance is perfect,
// a negative variance the size of the whole budget is zero.
func varianceScore(variance, bac float64) float64 {
	if variance >= 0 {
		return 1
	}
	if bac <= 0 {
		return 0
	}
	return clamp01(1 + variance/bac)
}

func daysBetween(from, to time.Time) float64 {
	days := to.Sub(from).Hours() / hoursPerDay
	if days < 0 {
		return 0
	}
	return days
}

func clamp01(v float64) float64 {
	return clamp(v, 0, 1)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
