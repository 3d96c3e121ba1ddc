package evm

import (
	"fmt"

	"github.com/evanmoss/outlay/internal/domain"
)

const (
	// slippingSPIThreshold is the SPI below which schedule recommendations fire.
	slippingSPIThreshold = 0.9

	// costOverrunCPIThreshold is the CPI below which cost recommendations fire.
	costOverrunCPIThreshold = 0.9

	// largeCriticalBacklog is the open critical-task count that triggers a
	// capacity recommendation.
	largeCriticalBacklog = 5
)

// CriticalPathImpact flags schedule risk concentrated in high-priority work.
type CriticalPathImpact struct {
	// CriticalTaskIDs lists tasks on the "critical path".
	CriticalTaskIDs []string

	// ScheduleRiskScore is in [0,1]: near 0 when SPI >= 1, approaching 1 as
	// the schedule slips badly.
	ScheduleRiskScore float64

	Recommendations []string
}

// AssessCriticalPathImpact selects at-risk tasks and scores overall schedule
// risk from the snapshot's SPI.
//
// "Critical path" here is a priority/status heuristic inherited from the
// reporting layer, not a critical-path-method computation: a task qualifies
// when its priority is high and it is not yet completed. No activity network
// is built and no float/slack is derived. Callers relying on these semantics
// should not expect CPM behavior.
func AssessCriticalPathImpact(tasks []domain.ScheduleTask, snap Snapshot) CriticalPathImpact {
	var criticalIDs []string
	for _, task := range tasks {
		if task.Priority == domain.PriorityHigh && task.Status != domain.TaskCompleted {
			criticalIDs = append(criticalIDs, task.ID)
		}
	}

	spi := snap.SchedulePerformanceIndex
	impact := CriticalPathImpact{
		CriticalTaskIDs:   criticalIDs,
		ScheduleRiskScore: clamp01((1 - spi) * 2),
	}

	if spi < slippingSPIThreshold {
		impact.Recommendations = append(impact.Recommendations,
			"Schedule is slipping: focus effort on critical path tasks before starting new work")
	}
	if snap.CostPerformanceIndex < costOverrunCPIThreshold {
		impact.Recommendations = append(impact.Recommendations,
			"Cost efficiency is below plan: review spend on in-progress tasks and re-baseline estimates")
	}
	if len(criticalIDs) >= largeCriticalBacklog {
		impact.Recommendations = append(impact.Recommendations,
			fmt.Sprintf("%d critical path tasks remain open: consider adding capacity or re-sequencing", len(criticalIDs)))
	}

	return impact
}
