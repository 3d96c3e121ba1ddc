package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/evanmoss/outlay/internal/app"
	"github.com/evanmoss/outlay/internal/domain"
	"github.com/evanmoss/outlay/internal/repository"
	"github.com/google/uuid"
)

type taskService struct {
	tasks repository.TaskRepo
	lines repository.BudgetLineRepo
}

func NewTaskService(tasks repository.TaskRepo, lines repository.BudgetLineRepo) TaskService {
	return &taskService{tasks: tasks, lines: lines}
}

func (s *taskService) Create(ctx context.Context, t *domain.ScheduleTask) error {
	if err := s.validate(ctx, t); err != nil {
		return err
	}

	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	t.CreatedAt = now
	t.UpdatedAt = now
	if t.Status == "" {
		t.Status = domain.TaskTodo
	}
	if t.Priority == "" {
		t.Priority = domain.PriorityMedium
	}
	return s.tasks.Create(ctx, t)
}

func (s *taskService) GetByID(ctx context.Context, id string) (*domain.ScheduleTask, error) {
	return s.tasks.GetByID(ctx, id)
}

func (s *taskService) ListByProject(ctx context.Context, projectID string) ([]domain.ScheduleTask, error) {
	return s.tasks.ListByProject(ctx, projectID)
}

func (s *taskService) Update(ctx context.Context, t *domain.ScheduleTask) error {
	if err := s.validate(ctx, t); err != nil {
		return err
	}
	t.UpdatedAt = time.Now().UTC()
	return s.tasks.Update(ctx, t)
}

// SetProgress records completion and derives the matching status: 100 marks
// the task completed, anything above zero marks it in progress.
func (s *taskService) SetProgress(ctx context.Context, id string, completionPct float64) error {
	if completionPct < 0 || completionPct > 100 {
		return app.NewValidationError("completion", "must be between 0 and 100, got %.1f", completionPct)
	}

	task, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		return err
	}

	status := task.Status
	switch {
	case completionPct >= 100:
		status = domain.TaskCompleted
	case completionPct > 0 && status == domain.TaskTodo:
		status = domain.TaskInProgress
	}
	return s.tasks.UpdateProgress(ctx, id, completionPct, status)
}

func (s *taskService) MarkDone(ctx context.Context, id string) error {
	return s.SetProgress(ctx, id, 100)
}

func (s *taskService) Delete(ctx context.Context, id string) error {
	return s.tasks.Delete(ctx, id)
}

func (s *taskService) validate(ctx context.Context, t *domain.ScheduleTask) error {
	if strings.TrimSpace(t.Name) == "" {
		return app.NewValidationError("name", "must not be empty")
	}
	if t.EndDate.Before(t.StartDate) {
		return app.NewValidationError("end date", "must not precede start date")
	}
	if t.CompletionPct < 0 || t.CompletionPct > 100 {
		return app.NewValidationError("completion", "must be between 0 and 100, got %.1f", t.CompletionPct)
	}
	if t.Status != "" && !domain.ValidTaskStatuses[string(t.Status)] {
		return app.NewValidationError("status", "unknown status %q", t.Status)
	}
	if t.Priority != "" && !domain.ValidTaskPriorities[string(t.Priority)] {
		return app.NewValidationError("priority", "unknown priority %q", t.Priority)
	}
	if t.BudgetLineID != nil {
		if _, err := s.lines.GetByID(ctx, *t.BudgetLineID); err != nil {
			return fmt.Errorf("resolving budget line %s: %w", *t.BudgetLineID, err)
		}
	}
	return nil
}
