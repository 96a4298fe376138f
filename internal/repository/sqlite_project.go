package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/dmarchetti/tempo/internal/domain"
)

// SQLiteProjectRepo implements ProjectRepo using a SQLite database.
type SQLiteProjectRepo struct {
	db *sql.DB
}

// NewSQLiteProjectRepo creates a new SQLiteProjectRepo.
func NewSQLiteProjectRepo(db *sql.DB) *SQLiteProjectRepo {
	return &SQLiteProjectRepo{db: db}
}

func (r *SQLiteProjectRepo) Create(ctx context.Context, p *domain.Project) error {
	query := `INSERT INTO projects (id, user_id, name, next_milestone_due, completion_pct, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		p.ID,
		p.UserID,
		p.Name,
		nullableTimeToString(p.NextMilestoneDue),
		p.CompletionPct,
		p.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting project: %w", err)
	}
	return nil
}

func (r *SQLiteProjectRepo) ListActive(ctx context.Context, userID string) ([]domain.Project, error) {
	query := `SELECT id, user_id, name, next_milestone_due, completion_pct, created_at
		FROM projects WHERE user_id = ? ORDER BY created_at`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}
	defer rows.Close()

	var projects []domain.Project
	for rows.Next() {
		var p domain.Project
		var milestone sql.NullString
		var createdStr string

		if err := rows.Scan(&p.ID, &p.UserID, &p.Name, &milestone, &p.CompletionPct, &createdStr); err != nil {
			return nil, fmt.Errorf("scanning project row: %w", err)
		}
		p.NextMilestoneDue = parseNullableTime(milestone)
		if p.CreatedAt, err = time.Parse(time.RFC3339, createdStr); err != nil {
			return nil, fmt.Errorf("parsing created_at: %w", err)
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating projects: %w", err)
	}
	return projects, nil
}
