package service

import (
	"context"
	"fmt"
	"time"

	"github.com/evanmoss/outlay/internal/app"
	"github.com/evanmoss/outlay/internal/domain"
	"github.com/evanmoss/outlay/internal/repository"
	"github.com/google/uuid"
)

type costService struct {
	costs repository.CostRepo
	tasks repository.TaskRepo
}

func NewCostService(costs repository.CostRepo, tasks repository.TaskRepo) CostService {
	return &costService{costs: costs, tasks: tasks}
}

func (s *costService) Log(ctx context.Context, e *domain.CostEntry) error {
	if e.Amount <= 0 {
		return app.NewValidationError("amount", "must be positive, got %.2f", e.Amount)
	}
	if _, err := s.tasks.GetByID(ctx, e.TaskID); err != nil {
		return fmt.Errorf("resolving task %s: %w", e.TaskID, err)
	}

	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	if e.RecordedAt.IsZero() {
		e.RecordedAt = now.Truncate(24 * time.Hour)
	}
	e.CreatedAt = now
	return s.costs.Record(ctx, e)
}

func (s *costService) ListByTask(ctx context.Context, taskID string) ([]domain.CostEntry, error) {
	return s.costs.ListByTask(ctx, taskID)
}

func (s *costService) ListByProject(ctx context.Context, projectID string) ([]domain.CostEntry, error) {
	return s.costs.ListByProject(ctx, projectID)
}
