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
	`CREATE TABLE IF NOT EXISTS tasks (
		id             TEXT PRIMARY KEY,
		user_id        TEXT NOT NULL,
		title          TEXT NOT NULL,
		description    TEXT NOT NULL DEFAULT '',
		status         TEXT NOT NULL DEFAULT 'pending'
		               CHECK(status IN ('pending','in_progress','completed','cancelled')),
		priority       TEXT NOT NULL DEFAULT 'medium'
		               CHECK(priority IN ('low','medium','high','critical')),
		estimated_min  INTEGER NOT NULL DEFAULT 25,
		due_date       TEXT,
		auto_generated INTEGER NOT NULL DEFAULT 0,
		created_at     TEXT NOT NULL,
		updated_at     TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_tasks_user ON tasks(user_id)`,
	`CREATE INDEX IF NOT EXISTS idx_tasks_user_created ON tasks(user_id, created_at)`,

	`CREATE TABLE IF NOT EXISTS focus_sessions (
		id           TEXT PRIMARY KEY,
		user_id      TEXT NOT NULL,
		started_at   TEXT NOT NULL,
		completed_at TEXT NOT NULL,
		minutes      INTEGER NOT NULL DEFAULT 25,
		focus_score  REAL NOT NULL DEFAULT 0.8,
		interrupted  INTEGER NOT NULL DEFAULT 0,
		created_at   TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_focus_sessions_user_completed
		ON focus_sessions(user_id, completed_at)`,

	`CREATE TABLE IF NOT EXISTS calendar_events (
		id                 TEXT PRIMARY KEY,
		user_id            TEXT NOT NULL,
		title              TEXT NOT NULL,
		kind               TEXT NOT NULL DEFAULT 'meeting'
		                   CHECK(kind IN ('meeting','task','focus_time','break','buffer')),
		start_time         TEXT NOT NULL,
		end_time           TEXT NOT NULL,
		moveable           INTEGER NOT NULL DEFAULT 1,
		recurring          INTEGER NOT NULL DEFAULT 0,
		importance         REAL NOT NULL DEFAULT 0.5,
		energy_requirement REAL NOT NULL DEFAULT 0.5,
		created_at         TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_calendar_events_user_start
		ON calendar_events(user_id, start_time)`,

	`CREATE TABLE IF NOT EXISTS goals (
		id          TEXT PRIMARY KEY,
		user_id     TEXT NOT NULL,
		title       TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		kind        TEXT NOT NULL DEFAULT '',
		deadline    TEXT,
		created_at  TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_goals_user ON goals(user_id)`,

	`CREATE TABLE IF NOT EXISTS deadlines (
		id         TEXT PRIMARY KEY,
		user_id    TEXT NOT NULL,
		title      TEXT NOT NULL,
		date       TEXT NOT NULL,
		complexity REAL NOT NULL DEFAULT 0.5,
		created_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_deadlines_user_date ON deadlines(user_id, date)`,

	`CREATE TABLE IF NOT EXISTS projects (
		id                 TEXT PRIMARY KEY,
		user_id            TEXT NOT NULL,
		name               TEXT NOT NULL,
		next_milestone_due TEXT,
		completion_pct     REAL NOT NULL DEFAULT 0,
		created_at         TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_projects_user ON projects(user_id)`,

	`CREATE TABLE IF NOT EXISTS run_cache (
		cache_key  TEXT PRIMARY KEY,
		payload    TEXT NOT NULL,
		expires_at TEXT NOT NULL
	)`,
}
