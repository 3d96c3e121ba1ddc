package domain

import "time"

// ScheduleTask is one row of a project schedule. The analytics engine treats
// tasks as read-only input; CompletionPct and Status are maintained by the
// task service as work is logged.
type ScheduleTask struct {
	ID        string
	ProjectID string
	Name      string

	StartDate time.Time
	EndDate   time.Time

	// CompletionPct is physical percent complete, 0-100.
	CompletionPct float64
	Status        TaskStatus
	Priority      TaskPriority

	// BudgetLineID links the task to its share of the budget catalogue.
	// Nil means the task carries no budgeted value.
	BudgetLineID *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsComplete reports whether the task has been marked completed.
func (t *ScheduleTask) IsComplete() bool {
	return t.Status == TaskCompleted
}

// PlannedDuration returns the scheduled duration of the task.
// Zero-length tasks (milestones) return 0.
func (t *ScheduleTask) PlannedDuration() time.Duration {
	return t.EndDate.Sub(t.StartDate)
}
