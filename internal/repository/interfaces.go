// Package repository provides SQLite-backed stores for projects, schedule
// tasks, budget lines, and the cost ledger.
package repository

import (
	"context"
	"errors"
	"time"

	"github.com/evanmoss/outlay/internal/domain"
	"github.com/evanmoss/outlay/internal/evm"
)

// ErrNotFound is returned when a requested entity does not exist.
var ErrNotFound = errors.New("not found")

type ProjectRepo interface {
	Create(ctx context.Context, p *domain.Project) error
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	GetByShortID(ctx context.Context, shortID string) (*domain.Project, error)
	List(ctx context.Context, includeArchived bool) ([]*domain.Project, error)
	Update(ctx context.Context, p *domain.Project) error
	Archive(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

type TaskRepo interface {
	Create(ctx context.Context, t *domain.ScheduleTask) error
	GetByID(ctx context.Context, id string) (*domain.ScheduleTask, error)
	ListByProject(ctx context.Context, projectID string) ([]domain.ScheduleTask, error)
	Update(ctx context.Context, t *domain.ScheduleTask) error
	UpdateProgress(ctx context.Context, id string, completionPct float64, status domain.TaskStatus) error
	Delete(ctx context.Context, id string) error
}

type BudgetLineRepo interface {
	Create(ctx context.Context, b *domain.BudgetLine) error
	GetByID(ctx context.Context, id string) (*domain.BudgetLine, error)
	ListByProject(ctx context.Context, projectID string) ([]domain.BudgetLine, error)
	Update(ctx context.Context, b *domain.BudgetLine) error
	Delete(ctx context.Context, id string) error
}

// CostRepo is the cost ledger. SnapshotAt and SnapshotSeries produce the
// cumulative per-task views the analytics engine consumes.
type CostRepo interface {
	Record(ctx context.Context, e *domain.CostEntry) error
	ListByTask(ctx context.Context, taskID string) ([]domain.CostEntry, error)
	ListByProject(ctx context.Context, projectID string) ([]domain.CostEntry, error)
	SnapshotAt(ctx context.Context, projectID string, asOf time.Time) (evm.CostSnapshot, error)
	SnapshotSeries(ctx context.Context, projectID string) ([]evm.DatedCosts, error)
}
