package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/evanmoss/outlay/internal/domain"
	"github.com/evanmoss/outlay/internal/evm"
)

const costColumns = `id, task_id, amount, recorded_at, note, created_at`

// SQLiteCostRepo implements CostRepo using a SQLite database.
type SQLiteCostRepo struct {
	db *sql.DB
}

// NewSQLiteCostRepo creates a new SQLiteCostRepo.
func NewSQLiteCostRepo(db *sql.DB) *SQLiteCostRepo {
	return &SQLiteCostRepo{db: db}
}

func (r *SQLiteCostRepo) Record(ctx context.Context, e *domain.CostEntry) error {
	query := `INSERT INTO cost_entries (` + costColumns + `) VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		e.ID,
		e.TaskID,
		e.Amount,
		e.RecordedAt.Format(dateLayout),
		e.Note,
		e.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting cost entry: %w", err)
	}
	return nil
}

func (r *SQLiteCostRepo) ListByTask(ctx context.Context, taskID string) ([]domain.CostEntry, error) {
	query := `SELECT ` + costColumns + ` FROM cost_entries WHERE task_id = ? ORDER BY recorded_at, created_at`
	return r.listEntries(ctx, query, taskID)
}

func (r *SQLiteCostRepo) ListByProject(ctx context.Context, projectID string) ([]domain.CostEntry, error) {
	query := `SELECT c.id, c.task_id, c.amount, c.recorded_at, c.note, c.created_at
		FROM cost_entries c
		JOIN schedule_tasks t ON t.id = c.task_id
		WHERE t.project_id = ?
		ORDER BY c.recorded_at, c.created_at`
	return r.listEntries(ctx, query, projectID)
}

// SnapshotAt returns the cumulative spend per task for a project, counting
// entries recorded on or before asOf.
func (r *SQLiteCostRepo) SnapshotAt(ctx context.Context, projectID string, asOf time.Time) (evm.CostSnapshot, error) {
	query := `SELECT c.task_id, SUM(c.amount)
		FROM cost_entries c
		JOIN schedule_tasks t ON t.id = c.task_id
		WHERE t.project_id = ? AND c.recorded_at <= ?
		GROUP BY c.task_id`
	rows, err := r.db.QueryContext(ctx, query, projectID, asOf.Format(dateLayout))
	if err != nil {
		return nil, fmt.Errorf("querying cost snapshot: %w", err)
	}
	defer rows.Close()

	snapshot := make(evm.CostSnapshot)
	for rows.Next() {
		var taskID string
		var total float64
		if err := rows.Scan(&taskID, &total); err != nil {
			return nil, fmt.Errorf("scanning cost snapshot: %w", err)
		}
		snapshot[taskID] = total
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating cost snapshot: %w", err)
	}
	return snapshot, nil
}

// SnapshotSeries returns one cumulative snapshot per distinct recording date,
// in ascending date order. Each snapshot includes all entries recorded on or
// before its date.
func (r *SQLiteCostRepo) SnapshotSeries(ctx context.Context, projectID string) ([]evm.DatedCosts, error) {
	entries, err := r.ListByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}

	running := make(evm.CostSnapshot)
	var series []evm.DatedCosts
	for _, e := range entries {
		running[e.TaskID] += e.Amount
		date := e.RecordedAt
		if n := len(series); n > 0 && series[n-1].Date.Equal(date) {
			series[n-1].Costs = cloneSnapshot(running)
			continue
		}
		series = append(series, evm.DatedCosts{Date: date, Costs: cloneSnapshot(running)})
	}
	return series, nil
}

func (r *SQLiteCostRepo) listEntries(ctx context.Context, query string, arg string) ([]domain.CostEntry, error) {
	rows, err := r.db.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("listing cost entries: %w", err)
	}
	defer rows.Close()

	var entries []domain.CostEntry
	for rows.Next() {
		e, err := scanCostRow(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating cost entries: %w", err)
	}
	return entries, nil
}

func scanCostRow(row rowScanner) (*domain.CostEntry, error) {
	var e domain.CostEntry
	var recordedAtStr, createdAtStr string

	err := row.Scan(&e.ID, &e.TaskID, &e.Amount, &recordedAtStr, &e.Note, &createdAtStr)
	if err != nil {
		return nil, fmt.Errorf("scanning cost entry: %w", err)
	}

	var parseErr error
	if e.RecordedAt, parseErr = time.Parse(dateLayout, recordedAtStr); parseErr != nil {
		return nil, fmt.Errorf("parsing recorded_at: %w", parseErr)
	}
	if e.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr); parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	return &e, nil
}

func cloneSnapshot(s evm.CostSnapshot) evm.CostSnapshot {
	out := make(evm.CostSnapshot, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}
