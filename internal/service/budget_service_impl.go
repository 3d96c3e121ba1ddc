package service

import (
	"context"
	"strings"
	"time"

	"github.com/evanmoss/outlay/internal/app"
	"github.com/evanmoss/outlay/internal/domain"
	"github.com/evanmoss/outlay/internal/repository"
	"github.com/google/uuid"
)

type budgetService struct {
	lines repository.BudgetLineRepo
}

func NewBudgetService(lines repository.BudgetLineRepo) BudgetService {
	return &budgetService{lines: lines}
}

func (s *budgetService) Create(ctx context.Context, b *domain.BudgetLine) error {
	if err := validateBudgetLine(b); err != nil {
		return err
	}
	if b.ID == "" {
		b.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	b.CreatedAt = now
	b.UpdatedAt = now
	return s.lines.Create(ctx, b)
}

func (s *budgetService) GetByID(ctx context.Context, id string) (*domain.BudgetLine, error) {
	return s.lines.GetByID(ctx, id)
}

func (s *budgetService) ListByProject(ctx context.Context, projectID string) ([]domain.BudgetLine, error) {
	return s.lines.ListByProject(ctx, projectID)
}

func (s *budgetService) Update(ctx context.Context, b *domain.BudgetLine) error {
	if err := validateBudgetLine(b); err != nil {
		return err
	}
	b.UpdatedAt = time.Now().UTC()
	return s.lines.Update(ctx, b)
}

func (s *budgetService) Delete(ctx context.Context, id string) error {
	return s.lines.Delete(ctx, id)
}

func validateBudgetLine(b *domain.BudgetLine) error {
	if strings.TrimSpace(b.Description) == "" {
		return app.NewValidationError("description", "must not be empty")
	}
	if b.Quantity <= 0 {
		return app.NewValidationError("quantity", "must be positive, got %.2f", b.Quantity)
	}
	if b.UnitPrice < 0 {
		return app.NewValidationError("unit price", "must not be negative, got %.2f", b.UnitPrice)
	}
	return nil
}
