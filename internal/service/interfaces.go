// Package service holds the application services: CRUD over the stores with
// input validation, and the analytics service that feeds the EVM engine.
package service

import (
	"context"

	"github.com/evanmoss/outlay/internal/contract"
	"github.com/evanmoss/outlay/internal/domain"
)

type ProjectService interface {
	Create(ctx context.Context, p *domain.Project) error
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	Resolve(ctx context.Context, ref string) (*domain.Project, error)
	List(ctx context.Context, includeArchived bool) ([]*domain.Project, error)
	Update(ctx context.Context, p *domain.Project) error
	Archive(ctx context.Context, id string) error
	Delete(ctx context.Context, id string, force bool) error
}

type TaskService interface {
	Create(ctx context.Context, t *domain.ScheduleTask) error
	GetByID(ctx context.Context, id string) (*domain.ScheduleTask, error)
	ListByProject(ctx context.Context, projectID string) ([]domain.ScheduleTask, error)
	Update(ctx context.Context, t *domain.ScheduleTask) error
	SetProgress(ctx context.Context, id string, completionPct float64) error
	MarkDone(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

type BudgetService interface {
	Create(ctx context.Context, b *domain.BudgetLine) error
	GetByID(ctx context.Context, id string) (*domain.BudgetLine, error)
	ListByProject(ctx context.Context, projectID string) ([]domain.BudgetLine, error)
	Update(ctx context.Context, b *domain.BudgetLine) error
	Delete(ctx context.Context, id string) error
}

type CostService interface {
	Log(ctx context.Context, e *domain.CostEntry) error
	ListByTask(ctx context.Context, taskID string) ([]domain.CostEntry, error)
	ListByProject(ctx context.Context, projectID string) ([]domain.CostEntry, error)
}

type AnalyticsService interface {
	Report(ctx context.Context, req contract.ReportRequest) (*contract.ReportResponse, error)
	Trend(ctx context.Context, req contract.TrendRequest) (*contract.TrendResponse, error)
}
