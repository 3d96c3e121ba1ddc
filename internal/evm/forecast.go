package evm

import (
	"math"
	"time"

	"github.com/evanmoss/outlay/internal/domain"
)

const (
	// confidenceFloor is the minimum confidence regardless of performance.
	confidenceFloor = 0.5

	// pessimisticCostDrift inflates the remaining spend in the pessimistic
	// scenario.
	pessimisticCostDrift = 0.15

	// pessimisticScheduleDrift stretches the remaining duration in the
	// pessimistic scenario.
	pessimisticScheduleDrift = 0.25
)

// ForecastScenario is one named completion outcome.
type ForecastScenario struct {
	CompletionDate time.Time
	Cost           float64
}

type CompletionForecast struct {
	CompletionDate time.Time
	Cost           float64

	// ConfidenceLevel is in [0.5, 1.0], rising as CPI and SPI approach 1.
	ConfidenceLevel float64

	Optimistic  ForecastScenario
	MostLikely  ForecastScenario
	Pessimistic ForecastScenario
}

// ForecastCompletion projects the completion date and cost under three
// scenarios. MostLikely extends the snapshot's EAC and estimated time to
// complete and is identical to the top-level fields. Optimistic assumes
// remaining work returns to plan (CPI/SPI = 1); Pessimistic assumes the
// current trend worsens. The ordering optimistic <= mostLikely <= pessimistic
// holds on both cost and date for every input.
func ForecastCompletion(snap Snapshot, tasks []domain.ScheduleTask, projectStart time.Time) CompletionForecast {
	elapsed := daysBetween(projectStart, snap.ReportDate)

	mostLikely := ForecastScenario{
		CompletionDate: addDays(projectStart, elapsed+snap.EstimatedDaysToComplete),
		Cost:           snap.EstimateAtCompletion,
	}

	optimistic := optimisticScenario(snap, projectStart, elapsed, mostLikely)
	pessimistic := pessimisticScenario(snap, tasks, mostLikely)

	return CompletionForecast{
		CompletionDate:  mostLikely.CompletionDate,
		Cost:            mostLikely.Cost,
		ConfidenceLevel: confidenceLevel(snap.CostPerformanceIndex, snap.SchedulePerformanceIndex),
		Optimistic:      optimistic,
		MostLikely:      mostLikely,
		Pessimistic:     pessimistic,
	}
}

// optimisticScenario prices the remaining work at budget rate and schedules
// it at plan pace. When the project is already beating its indices the
// improvement would land past mostLikely, so both axes are capped there to
// preserve scenario ordering.
func optimisticScenario(snap Snapshot, projectStart time.Time, elapsed float64, mostLikely ForecastScenario) ForecastScenario {
	cost := snap.ActualCost + (snap.BudgetAtCompletion - snap.EarnedValue)
	if cost > mostLikely.Cost {
		cost = mostLikely.Cost
	}

	// Remaining planned duration, undone from the SPI stretch applied in the
	// snapshot's estimate.
	remainingAtPlan := snap.EstimatedDaysToComplete * snap.SchedulePerformanceIndex
	date := addDays(projectStart, elapsed+remainingAtPlan)
	if date.After(mostLikely.CompletionDate) {
		date = mostLikely.CompletionDate
	}

	return ForecastScenario{CompletionDate: date, Cost: cost}
}

// pessimisticScenario drifts cost and schedule further off plan. Both drifts
// apply to the remaining (not sunk) portion so a nearly-finished project
// degrades less, and the schedule drift scales with the share of still-open
// tasks: the more unfinished work, the wider the downside.
func pessimisticScenario(snap Snapshot, tasks []domain.ScheduleTask, mostLikely ForecastScenario) ForecastScenario {
	cost := mostLikely.Cost + pessimisticCostDrift*math.Max(snap.EstimateToComplete, 0)

	drift := pessimisticScheduleDrift * (0.5 + 0.5*openTaskShare(tasks))
	date := addDays(mostLikely.CompletionDate, drift*snap.EstimatedDaysToComplete)
	return ForecastScenario{CompletionDate: date, Cost: cost}
}

func openTaskShare(tasks []domain.ScheduleTask) float64 {
	if len(tasks) == 0 {
		return 0
	}
	open := 0
	for _, task := range tasks {
		if task.Status != domain.TaskCompleted {
			open++
		}
	}
	return float64(open) / float64(len(tasks))
}

// confidenceLevel starts at the floor and ramps each index's contribution in
// over [0.75, 0.95], with a stability bonus when both indices are at or above
// 1. Stable on-budget, on-schedule performance yields > 0.8.
func confidenceLevel(cpi, spi float64) float64 {
	conf := confidenceFloor + 0.2*confidenceRamp(cpi) + 0.2*confidenceRamp(spi)
	if cpi >= 1 && spi >= 1 {
		conf += 0.1
	}
	return clamp(conf, confidenceFloor, 1)
}

func confidenceRamp(index float64) float64 {
	return clamp01((index - 0.75) / 0.2)
}

func addDays(t time.Time, days float64) time.Time {
	return t.Add(time.Duration(days * hoursPerDay * float64(time.Hour)))
}
