package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/evanmoss/outlay/internal/domain"
)

const budgetLineColumns = `id, project_id, description, quantity, unit_price, created_at, updated_at`

// SQLiteBudgetLineRepo implements BudgetLineRepo using a SQLite database.
type SQLiteBudgetLineRepo struct {
	db *sql.DB
}

// NewSQLiteBudgetLineRepo creates a new SQLiteBudgetLineRepo.
func NewSQLiteBudgetLineRepo(db *sql.DB) *SQLiteBudgetLineRepo {
	return &SQLiteBudgetLineRepo{db: db}
}

func (r *SQLiteBudgetLineRepo) Create(ctx context.Context, b *domain.BudgetLine) error {
	query := `INSERT INTO budget_lines (` + budgetLineColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		b.ID,
		b.ProjectID,
		b.Description,
		b.Quantity,
		b.UnitPrice,
		b.CreatedAt.Format(time.RFC3339),
		b.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting budget line: %w", err)
	}
	return nil
}

func (r *SQLiteBudgetLineRepo) GetByID(ctx context.Context, id string) (*domain.BudgetLine, error) {
	query := `SELECT ` + budgetLineColumns + ` FROM budget_lines WHERE id = ?`
	b, err := scanBudgetLineRow(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("budget line: %w", ErrNotFound)
	}
	return b, err
}

func (r *SQLiteBudgetLineRepo) ListByProject(ctx context.Context, projectID string) ([]domain.BudgetLine, error) {
	query := `SELECT ` + budgetLineColumns + ` FROM budget_lines WHERE project_id = ? ORDER BY created_at`
	rows, err := r.db.QueryContext(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("listing budget lines: %w", err)
	}
	defer rows.Close()

	var lines []domain.BudgetLine
	for rows.Next() {
		b, err := scanBudgetLineRow(rows)
		if err != nil {
			return nil, err
		}
		lines = append(lines, *b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating budget lines: %w", err)
	}
	return lines, nil
}

func (r *SQLiteBudgetLineRepo) Update(ctx context.Context, b *domain.BudgetLine) error {
	query := `UPDATE budget_lines SET description = ?, quantity = ?, unit_price = ?, updated_at = ? WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query,
		b.Description,
		b.Quantity,
		b.UnitPrice,
		b.UpdatedAt.Format(time.RFC3339),
		b.ID,
	)
	if err != nil {
		return fmt.Errorf("updating budget line: %w", err)
	}
	return nil
}

func (r *SQLiteBudgetLineRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM budget_lines WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting budget line: %w", err)
	}
	return nil
}

func scanBudgetLineRow(row rowScanner) (*domain.BudgetLine, error) {
	var b domain.BudgetLine
	var createdAtStr, updatedAtStr string

	err := row.Scan(&b.ID, &b.ProjectID, &b.Description, &b.Quantity, &b.UnitPrice, &createdAtStr, &updatedAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning budget line: %w", err)
	}

	var parseErr error
	if b.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr); parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	if b.UpdatedAt, parseErr = time.Parse(time.RFC3339, updatedAtStr); parseErr != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", parseErr)
	}
	return &b, nil
}
