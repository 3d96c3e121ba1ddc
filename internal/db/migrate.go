package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS projects (
		id                   TEXT PRIMARY KEY,
		short_id             TEXT NOT NULL DEFAULT '',
		name                 TEXT NOT NULL,
		start_date           TEXT NOT NULL,
		end_date             TEXT NOT NULL,
		budget_at_completion REAL NOT NULL DEFAULT 0,
		status               TEXT NOT NULL DEFAULT 'active'
		                     CHECK(status IN ('active','paused','done','archived')),
		archived_at          TEXT,
		created_at           TEXT NOT NULL,
		updated_at           TEXT NOT NULL
	)`,

	`CREATE UNIQUE INDEX IF NOT EXISTS idx_projects_short_id ON projects(short_id) WHERE short_id != ''`,

	`CREATE TABLE IF NOT EXISTS budget_lines (
		id          TEXT PRIMARY KEY,
		project_id  TEXT NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		description TEXT NOT NULL,
		quantity    REAL NOT NULL DEFAULT 0,
		unit_price  REAL NOT NULL DEFAULT 0,
		created_at  TEXT NOT NULL,
		updated_at  TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_budget_lines_project ON budget_lines(project_id)`,

	`CREATE TABLE IF NOT EXISTS schedule_tasks (
		id             TEXT PRIMARY KEY,
		project_id     TEXT NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		name           TEXT NOT NULL,
		start_date     TEXT NOT NULL,
		end_date       TEXT NOT NULL,
		completion_pct REAL NOT NULL DEFAULT 0,
		status         TEXT NOT NULL DEFAULT 'todo'
		               CHECK(status IN ('todo','in_progress','completed','blocked')),
		priority       TEXT NOT NULL DEFAULT 'medium'
		               CHECK(priority IN ('low','medium','high')),
		budget_line_id TEXT REFERENCES budget_lines(id) ON DELETE SET NULL,
		created_at     TEXT NOT NULL,
		updated_at     TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_schedule_tasks_project ON schedule_tasks(project_id)`,
	`CREATE INDEX IF NOT EXISTS idx_schedule_tasks_status ON schedule_tasks(status)`,

	`CREATE TABLE IF NOT EXISTS cost_entries (
		id          TEXT PRIMARY KEY,
		task_id     TEXT NOT NULL REFERENCES schedule_tasks(id) ON DELETE CASCADE,
		amount      REAL NOT NULL,
		recorded_at TEXT NOT NULL,
		note        TEXT NOT NULL DEFAULT '',
		created_at  TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_cost_entries_task ON cost_entries(task_id)`,
	`CREATE INDEX IF NOT EXISTS idx_cost_entries_recorded ON cost_entries(recorded_at)`,
}
