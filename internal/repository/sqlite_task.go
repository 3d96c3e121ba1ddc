package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/evanmoss/outlay/internal/domain"
)

const taskColumns = `id, project_id, name, start_date, end_date, completion_pct,
		status, priority, budget_line_id, created_at, updated_at`

// SQLiteTaskRepo implements TaskRepo using a SQLite database.
type SQLiteTaskRepo struct {
	db *sql.DB
}

// NewSQLiteTaskRepo creates a new SQLiteTaskRepo.
func NewSQLiteTaskRepo(db *sql.DB) *SQLiteTaskRepo {
	return &SQLiteTaskRepo{db: db}
}

func (r *SQLiteTaskRepo) Create(ctx context.Context, t *domain.ScheduleTask) error {
	query := `INSERT INTO schedule_tasks (` + taskColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		t.ID,
		t.ProjectID,
		t.Name,
		t.StartDate.Format(dateLayout),
		t.EndDate.Format(dateLayout),
		t.CompletionPct,
		string(t.Status),
		string(t.Priority),
		nullableString(t.BudgetLineID),
		t.CreatedAt.Format(time.RFC3339),
		t.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting schedule task: %w", err)
	}
	return nil
}

func (r *SQLiteTaskRepo) GetByID(ctx context.Context, id string) (*domain.ScheduleTask, error) {
	query := `SELECT ` + taskColumns + ` FROM schedule_tasks WHERE id = ?`
	t, err := scanTaskRow(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("schedule task: %w", ErrNotFound)
	}
	return t, err
}

func (r *SQLiteTaskRepo) ListByProject(ctx context.Context, projectID string) ([]domain.ScheduleTask, error) {
	query := `SELECT ` + taskColumns + ` FROM schedule_tasks WHERE project_id = ? ORDER BY start_date, created_at`
	rows, err := r.db.QueryContext(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("listing schedule tasks: %w", err)
	}
	defer rows.Close()

	var tasks []domain.ScheduleTask
	for rows.Next() {
		t, err := scanTaskRow(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating schedule tasks: %w", err)
	}
	return tasks, nil
}

func (r *SQLiteTaskRepo) Update(ctx context.Context, t *domain.ScheduleTask) error {
	query := `UPDATE schedule_tasks SET name = ?, start_date = ?, end_date = ?, completion_pct = ?,
		status = ?, priority = ?, budget_line_id = ?, updated_at = ? WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query,
		t.Name,
		t.StartDate.Format(dateLayout),
		t.EndDate.Format(dateLayout),
		t.CompletionPct,
		string(t.Status),
		string(t.Priority),
		nullableString(t.BudgetLineID),
		t.UpdatedAt.Format(time.RFC3339),
		t.ID,
	)
	if err != nil {
		return fmt.Errorf("updating schedule task: %w", err)
	}
	return nil
}

func (r *SQLiteTaskRepo) UpdateProgress(ctx context.Context, id string, completionPct float64, status domain.TaskStatus) error {
	query := `UPDATE schedule_tasks SET completion_pct = ?, status = ?, updated_at = ? WHERE id = ?`
	if _, err := r.db.ExecContext(ctx, query, completionPct, string(status), nowUTC(), id); err != nil {
		return fmt.Errorf("updating task progress: %w", err)
	}
	return nil
}

func (r *SQLiteTaskRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM schedule_tasks WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting schedule task: %w", err)
	}
	return nil
}

func scanTaskRow(row rowScanner) (*domain.ScheduleTask, error) {
	var t domain.ScheduleTask
	var startDateStr, endDateStr, statusStr, priorityStr string
	var budgetLineIDStr sql.NullString
	var createdAtStr, updatedAtStr string

	err := row.Scan(
		&t.ID, &t.ProjectID, &t.Name,
		&startDateStr, &endDateStr, &t.CompletionPct,
		&statusStr, &priorityStr, &budgetLineIDStr,
		&createdAtStr, &updatedAtStr,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning schedule task: %w", err)
	}

	t.Status = domain.TaskStatus(statusStr)
	t.Priority = domain.TaskPriority(priorityStr)
	if budgetLineIDStr.Valid && budgetLineIDStr.String != "" {
		id := budgetLineIDStr.String
		t.BudgetLineID = &id
	}

	var parseErr error
	if t.StartDate, parseErr = time.Parse(dateLayout, startDateStr); parseErr != nil {
		return nil, fmt.Errorf("parsing start_date: %w", parseErr)
	}
	if t.EndDate, parseErr = time.Parse(dateLayout, endDateStr); parseErr != nil {
		return nil, fmt.Errorf("parsing end_date: %w", parseErr)
	}
	if t.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr); parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	if t.UpdatedAt, parseErr = time.Parse(time.RFC3339, updatedAtStr); parseErr != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", parseErr)
	}
	return &t, nil
}
