package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/dmarchetti/tempo/internal/domain"
)

// SQLiteSessionRepo implements SessionRepo using a SQLite database.
type SQLiteSessionRepo struct {
	db *sql.DB
}

// NewSQLiteSessionRepo creates a new SQLiteSessionRepo.
func NewSQLiteSessionRepo(db *sql.DB) *SQLiteSessionRepo {
	return &SQLiteSessionRepo{db: db}
}

func (r *SQLiteSessionRepo) Create(ctx context.Context, s *domain.FocusSession) error {
	query := `INSERT INTO focus_sessions (id, user_id, started_at, completed_at, minutes, focus_score, interrupted, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		s.ID,
		s.UserID,
		s.StartedAt.Format(time.RFC3339),
		s.CompletedAt.Format(time.RFC3339),
		s.Minutes,
		s.FocusScore,
		boolToInt(s.Interrupted),
		s.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting focus session: %w", err)
	}
	return nil
}

func (r *SQLiteSessionRepo) ListCompletedSince(ctx context.Context, userID string, since time.Time) ([]*domain.FocusSession, error) {
	query := `SELECT id, user_id, started_at, completed_at, minutes, focus_score, interrupted, created_at
		FROM focus_sessions
		WHERE user_id = ? AND completed_at >= ?
		ORDER BY completed_at`
	rows, err := r.db.QueryContext(ctx, query, userID, since.Format(time.RFC3339))
	if err != nil {
		return nil, fmt.Errorf("listing completed focus sessions: %w", err)
	}
	defer rows.Close()

	var sessions []*domain.FocusSession
	for rows.Next() {
		var s domain.FocusSession
		var startedAtStr, completedAtStr, createdAtStr string
		var interrupted int

		if err := rows.Scan(
			&s.ID, &s.UserID, &startedAtStr, &completedAtStr,
			&s.Minutes, &s.FocusScore, &interrupted, &createdAtStr,
		); err != nil {
			return nil, fmt.Errorf("scanning focus session row: %w", err)
		}
		s.Interrupted = intToBool(interrupted)

		if s.StartedAt, err = time.Parse(time.RFC3339, startedAtStr); err != nil {
			return nil, fmt.Errorf("parsing started_at: %w", err)
		}
		if s.CompletedAt, err = time.Parse(time.RFC3339, completedAtStr); err != nil {
			return nil, fmt.Errorf("parsing completed_at: %w", err)
		}
		if s.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr); err != nil {
			return nil, fmt.Errorf("parsing created_at: %w", err)
		}

		sessions = append(sessions, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating focus sessions: %w", err)
	}
	return sessions, nil
}
