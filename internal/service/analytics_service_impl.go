package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/evanmoss/outlay/internal/app"
	"github.com/evanmoss/outlay/internal/contract"
	"github.com/evanmoss/outlay/internal/domain"
	"github.com/evanmoss/outlay/internal/evm"
	"github.com/evanmoss/outlay/internal/repository"
)

type analyticsService struct {
	projects ProjectService
	tasks    repository.TaskRepo
	lines    repository.BudgetLineRepo
	costs    repository.CostRepo
}

func NewAnalyticsService(
	projects ProjectService,
	tasks repository.TaskRepo,
	lines repository.BudgetLineRepo,
	costs repository.CostRepo,
) AnalyticsService {
	return &analyticsService{projects: projects, tasks: tasks, lines: lines, costs: costs}
}

// Report computes the full EVM picture of one project as of the request date:
// the metrics snapshot, the critical-path assessment derived from it, and the
// three-scenario completion forecast.
func (s *analyticsService) Report(ctx context.Context, req contract.ReportRequest) (*contract.ReportResponse, error) {
	project, tasks, lines, err := s.loadProject(ctx, req.ProjectRef)
	if err != nil {
		return nil, err
	}

	asOf := time.Now().UTC()
	if req.AsOf != nil {
		asOf = *req.AsOf
	}

	costs, err := s.costs.SnapshotAt(ctx, project.ID, asOf)
	if err != nil {
		return nil, fmt.Errorf("loading cost snapshot: %w", err)
	}

	snap := evm.CalculateMetrics(evm.MetricsInput{
		ProjectID:          project.ID,
		Tasks:              tasks,
		BudgetLines:        lines,
		ActualCosts:        costs,
		ReportDate:         asOf,
		ProjectStartDate:   project.StartDate,
		BudgetAtCompletion: project.BudgetAtCompletion,
	})

	open := 0
	for _, t := range tasks {
		if !t.IsComplete() {
			open++
		}
	}

	return &contract.ReportResponse{
		Project:      project,
		GeneratedAt:  asOf,
		Metrics:      snap,
		CriticalPath: evm.AssessCriticalPathImpact(tasks, snap),
		Forecast:     evm.ForecastCompletion(snap, tasks, project.StartDate),
		TaskCount:    len(tasks),
		OpenTasks:    open,
	}, nil
}

// Trend computes the historical metric series from the ledger's dated
// snapshots. LastN > 0 keeps only the most recent points.
func (s *analyticsService) Trend(ctx context.Context, req contract.TrendRequest) (*contract.TrendResponse, error) {
	project, tasks, lines, err := s.loadProject(ctx, req.ProjectRef)
	if err != nil {
		return nil, err
	}

	series, err := s.costs.SnapshotSeries(ctx, project.ID)
	if err != nil {
		return nil, fmt.Errorf("loading cost series: %w", err)
	}

	points := evm.GenerateTrend(evm.TrendInput{
		Tasks:              tasks,
		BudgetLines:        lines,
		DatedCosts:         series,
		ProjectStartDate:   project.StartDate,
		BudgetAtCompletion: project.BudgetAtCompletion,
	})
	if req.LastN > 0 && len(points) > req.LastN {
		points = points[len(points)-req.LastN:]
	}

	return &contract.TrendResponse{Project: project, Points: points}, nil
}

func (s *analyticsService) loadProject(ctx context.Context, ref string) (*domain.Project, []domain.ScheduleTask, []domain.BudgetLine, error) {
	project, err := s.projects.Resolve(ctx, ref)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil, nil, &app.ReportError{
				Code:    app.ReportErrUnknownProject,
				Message: fmt.Sprintf("no project matches %q", ref),
			}
		}
		return nil, nil, nil, err
	}

	tasks, err := s.tasks.ListByProject(ctx, project.ID)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("loading tasks: %w", err)
	}
	lines, err := s.lines.ListByProject(ctx, project.ID)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("loading budget lines: %w", err)
	}
	return project, tasks, lines, nil
}
