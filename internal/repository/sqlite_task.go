package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/dmarchetti/tempo/internal/domain"
)

// SQLiteTaskRepo implements TaskRepo using a SQLite database.
type SQLiteTaskRepo struct {
	db *sql.DB
}

// NewSQLiteTaskRepo creates a new SQLiteTaskRepo.
func NewSQLiteTaskRepo(db *sql.DB) *SQLiteTaskRepo {
	return &SQLiteTaskRepo{db: db}
}

func (r *SQLiteTaskRepo) Create(ctx context.Context, t *domain.Task) error {
	query := `INSERT INTO tasks (id, user_id, title, description, status, priority, estimated_min, due_date, auto_generated, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		t.ID,
		t.UserID,
		t.Title,
		t.Description,
		string(t.Status),
		string(t.Priority),
		t.EstimatedMin,
		nullableTimeToString(t.DueDate),
		boolToInt(t.AutoGenerated),
		t.CreatedAt.Format(time.RFC3339),
		t.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting task: %w", err)
	}
	return nil
}

func (r *SQLiteTaskRepo) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	query := `SELECT id, user_id, title, description, status, priority, estimated_min, due_date, auto_generated, created_at, updated_at
		FROM tasks WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	t, err := scanTask(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("task: %w", ErrNotFound)
		}
		return nil, err
	}
	return t, nil
}

func (r *SQLiteTaskRepo) ListRecent(ctx context.Context, userID string, days int) ([]domain.Task, error) {
	query := `SELECT id, user_id, title, description, status, priority, estimated_min, due_date, auto_generated, created_at, updated_at
		FROM tasks
		WHERE user_id = ? AND created_at >= date('now', ? || ' days')
		ORDER BY created_at`
	rows, err := r.db.QueryContext(ctx, query, userID, fmt.Sprintf("-%d", days))
	if err != nil {
		return nil, fmt.Errorf("listing recent tasks: %w", err)
	}
	defer rows.Close()

	var tasks []domain.Task
	for rows.Next() {
		t, err := scanTask(rows.Scan)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating tasks: %w", err)
	}
	return tasks, nil
}

// scanTask scans one task row given a Scan func from *sql.Row or *sql.Rows.
func scanTask(scan func(dest ...any) error) (*domain.Task, error) {
	var t domain.Task
	var status, priority string
	var dueDate sql.NullString
	var autoGenerated int
	var createdAtStr, updatedAtStr string

	err := scan(
		&t.ID, &t.UserID, &t.Title, &t.Description, &status, &priority,
		&t.EstimatedMin, &dueDate, &autoGenerated, &createdAtStr, &updatedAtStr,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning task: %w", err)
	}

	t.Status = domain.TaskStatus(status)
	t.Priority = domain.Priority(priority)
	t.DueDate = parseNullableTime(dueDate)
	t.AutoGenerated = intToBool(autoGenerated)

	if t.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	if t.UpdatedAt, err = time.Parse(time.RFC3339, updatedAtStr); err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	return &t, nil
}
