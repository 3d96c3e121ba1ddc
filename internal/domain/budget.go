package domain

import "time"

// BudgetLine is one item of the budget catalogue: a quantity priced per unit.
type BudgetLine struct {
	ID          string
	ProjectID   string
	Description string
	Quantity    float64
	UnitPrice   float64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// BudgetedValue returns the monetary value of the line.
func (b *BudgetLine) BudgetedValue() float64 {
	return b.Quantity * b.UnitPrice
}
