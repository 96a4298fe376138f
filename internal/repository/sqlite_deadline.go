package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/dmarchetti/tempo/internal/domain"
)

// SQLiteDeadlineRepo implements DeadlineRepo using a SQLite database.
type SQLiteDeadlineRepo struct {
	db *sql.DB
}

// NewSQLiteDeadlineRepo creates a new SQLiteDeadlineRepo.
func NewSQLiteDeadlineRepo(db *sql.DB) *SQLiteDeadlineRepo {
	return &SQLiteDeadlineRepo{db: db}
}

func (r *SQLiteDeadlineRepo) Create(ctx context.Context, d *domain.Deadline) error {
	query := `INSERT INTO deadlines (id, user_id, title, date, complexity, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		d.ID,
		d.UserID,
		d.Title,
		d.Date.Format(time.RFC3339),
		d.Complexity,
		d.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting deadline: %w", err)
	}
	return nil
}

func (r *SQLiteDeadlineRepo) ListUpcoming(ctx context.Context, userID string, until time.Time) ([]domain.Deadline, error) {
	query := `SELECT id, user_id, title, date, complexity, created_at
		FROM deadlines
		WHERE user_id = ? AND date <= ?
		ORDER BY date`
	rows, err := r.db.QueryContext(ctx, query, userID, until.Format(time.RFC3339))
	if err != nil {
		return nil, fmt.Errorf("listing upcoming deadlines: %w", err)
	}
	defer rows.Close()

	var deadlines []domain.Deadline
	for rows.Next() {
		var d domain.Deadline
		var dateStr, createdStr string

		if err := rows.Scan(&d.ID, &d.UserID, &d.Title, &dateStr, &d.Complexity, &createdStr); err != nil {
			return nil, fmt.Errorf("scanning deadline row: %w", err)
		}
		if d.Date, err = time.Parse(time.RFC3339, dateStr); err != nil {
			return nil, fmt.Errorf("parsing date: %w", err)
		}
		if d.CreatedAt, err = time.Parse(time.RFC3339, createdStr); err != nil {
			return nil, fmt.Errorf("parsing created_at: %w", err)
		}
		deadlines = append(deadlines, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating deadlines: %w", err)
	}
	return deadlines, nil
}
