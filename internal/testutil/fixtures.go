package testutil

import (
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/evanmoss/outlay/internal/domain"
	"github.com/google/uuid"
)

var testShortIDCounter atomic.Int64

// Project options
type ProjectOption func(*domain.Project)

func WithProjectStatus(s domain.ProjectStatus) ProjectOption {
	return func(p *domain.Project) {
		p.Status = s
	}
}

func WithShortID(id string) ProjectOption {
	return func(p *domain.Project) {
		p.ShortID = id
	}
}

func WithBudget(bac float64) ProjectOption {
	return func(p *domain.Project) {
		p.BudgetAtCompletion = bac
	}
}

func WithProjectDates(start, end time.Time) ProjectOption {
	return func(p *domain.Project) {
		p.StartDate = start
		p.EndDate = end
	}
}

func defaultShortID(name string) string {
	upper := strings.ToUpper(name)
	var letters []byte
	for i := 0; i < len(upper) && len(letters) < 3; i++ {
		if upper[i] >= 'A' && upper[i] <= 'Z' {
			letters = append(letters, upper[i])
		}
	}
	for len(letters) < 3 {
		letters = append(letters, 'X')
	}
	n := testShortIDCounter.Add(1)
	return fmt.Sprintf("%s%02d", string(letters), n)
}

func NewTestProject(name string, opts ...ProjectOption) *domain.Project {
	now := time.Now().UTC()
	p := &domain.Project{
		ID:                 uuid.New().String(),
		ShortID:            defaultShortID(name),
		Name:               name,
		StartDate:          now.AddDate(0, -1, 0),
		EndDate:            now.AddDate(0, 5, 0),
		BudgetAtCompletion: 100000,
		Status:             domain.ProjectActive,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ScheduleTask options
type TaskOption func(*domain.ScheduleTask)

func WithTaskDates(start, end time.Time) TaskOption {
	return func(t *domain.ScheduleTask) {
		t.StartDate = start
		t.EndDate = end
	}
}

func WithCompletion(pct float64) TaskOption {
	return func(t *domain.ScheduleTask) {
		t.CompletionPct = pct
	}
}

func WithTaskStatus(s domain.TaskStatus) TaskOption {
	return func(t *domain.ScheduleTask) {
		t.Status = s
	}
}

func WithPriority(p domain.TaskPriority) TaskOption {
	return func(t *domain.ScheduleTask) {
		t.Priority = p
	}
}

func WithBudgetLine(id string) TaskOption {
	return func(t *domain.ScheduleTask) {
		t.BudgetLineID = &id
	}
}

func NewTestTask(projectID, name string, opts ...TaskOption) *domain.ScheduleTask {
	now := time.Now().UTC()
	t := &domain.ScheduleTask{
		ID:            uuid.New().String(),
		ProjectID:     projectID,
		Name:          name,
		StartDate:     now.AddDate(0, -1, 0),
		EndDate:       now.AddDate(0, 1, 0),
		CompletionPct: 0,
		Status:        domain.TaskTodo,
		Priority:      domain.PriorityMedium,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// BudgetLine options
type BudgetLineOption func(*domain.BudgetLine)

func WithQuantity(q float64) BudgetLineOption {
	return func(b *domain.BudgetLine) {
		b.Quantity = q
	}
}

func WithUnitPrice(p float64) BudgetLineOption {
	return func(b *domain.BudgetLine) {
		b.UnitPrice = p
	}
}

func NewTestBudgetLine(projectID, description string, opts ...BudgetLineOption) *domain.BudgetLine {
	now := time.Now().UTC()
	b := &domain.BudgetLine{
		ID:          uuid.New().String(),
		ProjectID:   projectID,
		Description: description,
		Quantity:    1,
		UnitPrice:   10000,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// CostEntry options
type CostOption func(*domain.CostEntry)

func WithRecordedAt(d time.Time) CostOption {
	return func(e *domain.CostEntry) {
		e.RecordedAt = d
	}
}

func WithNote(n string) CostOption {
	return func(e *domain.CostEntry) {
		e.Note = n
	}
}

func NewTestCostEntry(taskID string, amount float64, opts ...CostOption) *domain.CostEntry {
	now := time.Now().UTC()
	e := &domain.CostEntry{
		ID:         uuid.New().String(),
		TaskID:     taskID,
		Amount:     amount,
		RecordedAt: now.Truncate(24 * time.Hour),
		CreatedAt:  now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}
