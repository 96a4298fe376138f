package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/dmarchetti/tempo/internal/domain"
)

// SQLiteGoalRepo implements GoalRepo using a SQLite database.
type SQLiteGoalRepo struct {
	db *sql.DB
}

// NewSQLiteGoalRepo creates a new SQLiteGoalRepo.
func NewSQLiteGoalRepo(db *sql.DB) *SQLiteGoalRepo {
	return &SQLiteGoalRepo{db: db}
}

func (r *SQLiteGoalRepo) Create(ctx context.Context, g *domain.Goal) error {
	query := `INSERT INTO goals (id, user_id, title, description, kind, deadline, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		g.ID,
		g.UserID,
		g.Title,
		g.Description,
		g.Kind,
		nullableTimeToString(g.Deadline),
		g.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting goal: %w", err)
	}
	return nil
}

func (r *SQLiteGoalRepo) ListActive(ctx context.Context, userID string) ([]domain.Goal, error) {
	query := `SELECT id, user_id, title, description, kind, deadline, created_at
		FROM goals WHERE user_id = ? ORDER BY created_at`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("listing goals: %w", err)
	}
	defer rows.Close()

	var goals []domain.Goal
	for rows.Next() {
		var g domain.Goal
		var deadline sql.NullString
		var createdStr string

		if err := rows.Scan(&g.ID, &g.UserID, &g.Title, &g.Description, &g.Kind, &deadline, &createdStr); err != nil {
			return nil, fmt.Errorf("scanning goal row: %w", err)
		}
		g.Deadline = parseNullableTime(deadline)
		if g.CreatedAt, err = time.Parse(time.RFC3339, createdStr); err != nil {
			return nil, fmt.Errorf("parsing created_at: %w", err)
		}
		goals = append(goals, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating goals: %w", err)
	}
	return goals, nil
}
