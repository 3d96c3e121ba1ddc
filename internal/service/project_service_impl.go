package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/evanmoss/outlay/internal/app"
	"github.com/evanmoss/outlay/internal/domain"
	"github.com/evanmoss/outlay/internal/repository"
	"github.com/google/uuid"
)

type projectService struct {
	projects repository.ProjectRepo
}

func NewProjectService(projects repository.ProjectRepo) ProjectService {
	return &projectService{projects: projects}
}

func (s *projectService) Create(ctx context.Context, p *domain.Project) error {
	if strings.TrimSpace(p.Name) == "" {
		return app.NewValidationError("name", "must not be empty")
	}
	if p.BudgetAtCompletion <= 0 {
		return app.NewValidationError("budget", "budget at completion must be positive, got %.2f", p.BudgetAtCompletion)
	}
	if p.EndDate.Before(p.StartDate) {
		return app.NewValidationError("end date", "must not precede start date")
	}

	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	if p.ShortID == "" {
		generated, err := s.nextShortID(ctx, p.Name)
		if err != nil {
			return err
		}
		p.ShortID = generated
	}
	p.ShortID = strings.ToUpper(p.ShortID)
	if err := p.ValidateShortID(); err != nil {
		return app.NewValidationError("short ID", "%v", err)
	}

	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now
	if p.Status == "" {
		p.Status = domain.ProjectActive
	}
	return s.projects.Create(ctx, p)
}

func (s *projectService) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	return s.projects.GetByID(ctx, id)
}

// Resolve accepts either a short ID or a full UUID.
func (s *projectService) Resolve(ctx context.Context, ref string) (*domain.Project, error) {
	p, err := s.projects.GetByShortID(ctx, ref)
	if err == nil {
		return p, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	return s.projects.GetByID(ctx, ref)
}

func (s *projectService) List(ctx context.Context, includeArchived bool) ([]*domain.Project, error) {
	return s.projects.List(ctx, includeArchived)
}

func (s *projectService) Update(ctx context.Context, p *domain.Project) error {
	if p.BudgetAtCompletion <= 0 {
		return app.NewValidationError("budget", "budget at completion must be positive, got %.2f", p.BudgetAtCompletion)
	}
	if p.EndDate.Before(p.StartDate) {
		return app.NewValidationError("end date", "must not precede start date")
	}
	p.UpdatedAt = time.Now().UTC()
	return s.projects.Update(ctx, p)
}

func (s *projectService) Archive(ctx context.Context, id string) error {
	return s.projects.Archive(ctx, id)
}

func (s *projectService) Delete(ctx context.Context, id string, force bool) error {
	if !force {
		p, err := s.projects.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if p.Status != domain.ProjectArchived {
			return fmt.Errorf("project must be archived before deletion (use --force to override)")
		}
	}
	return s.projects.Delete(ctx, id)
}

// nextShortID derives a short ID from the project name's initials plus a
// sequence number based on how many projects exist.
func (s *projectService) nextShortID(ctx context.Context, name string) (string, error) {
	upper := strings.ToUpper(name)
	var letters []byte
	for i := 0; i < len(upper) && len(letters) < 3; i++ {
		if upper[i] >= 'A' && upper[i] <= 'Z' {
			letters = append(letters, upper[i])
		}
	}
	for len(letters) < 2 {
		letters = append(letters, 'X')
	}

	existing, err := s.projects.List(ctx, true)
	if err != nil {
		return "", fmt.Errorf("generating short ID: %w", err)
	}
	return fmt.Sprintf("%s%02d", string(letters), len(existing)+1), nil
}
