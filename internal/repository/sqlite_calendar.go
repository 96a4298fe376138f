package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/dmarchetti/tempo/internal/domain"
)

// SQLiteCalendarRepo implements CalendarRepo using a SQLite database.
type SQLiteCalendarRepo struct {
	db *sql.DB
}

// NewSQLiteCalendarRepo creates a new SQLiteCalendarRepo.
func NewSQLiteCalendarRepo(db *sql.DB) *SQLiteCalendarRepo {
	return &SQLiteCalendarRepo{db: db}
}

func (r *SQLiteCalendarRepo) Create(ctx context.Context, e *domain.CalendarEvent) error {
	query := `INSERT INTO calendar_events (id, user_id, title, kind, start_time, end_time, moveable, recurring, importance, energy_requirement, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		e.ID,
		e.UserID,
		e.Title,
		string(e.Kind),
		e.StartTime.Format(time.RFC3339),
		e.EndTime.Format(time.RFC3339),
		boolToInt(e.Moveable),
		boolToInt(e.Recurring),
		e.Importance,
		e.EnergyRequirement,
		e.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting calendar event: %w", err)
	}
	return nil
}

func (r *SQLiteCalendarRepo) ListEvents(ctx context.Context, userID string, from, to time.Time) ([]domain.CalendarEvent, error) {
	query := `SELECT id, user_id, title, kind, start_time, end_time, moveable, recurring, importance, energy_requirement, created_at
		FROM calendar_events
		WHERE user_id = ? AND start_time >= ? AND start_time < ?
		ORDER BY start_time`
	rows, err := r.db.QueryContext(ctx, query, userID, from.Format(time.RFC3339), to.Format(time.RFC3339))
	if err != nil {
		return nil, fmt.Errorf("listing calendar events: %w", err)
	}
	defer rows.Close()

	var events []domain.CalendarEvent
	for rows.Next() {
		var e domain.CalendarEvent
		var kind, startStr, endStr, createdStr string
		var moveable, recurring int

		if err := rows.Scan(
			&e.ID, &e.UserID, &e.Title, &kind, &startStr, &endStr,
			&moveable, &recurring, &e.Importance, &e.EnergyRequirement, &createdStr,
		); err != nil {
			return nil, fmt.Errorf("scanning calendar event row: %w", err)
		}

		e.Kind = domain.BlockKind(kind)
		e.Moveable = intToBool(moveable)
		e.Recurring = intToBool(recurring)

		if e.StartTime, err = time.Parse(time.RFC3339, startStr); err != nil {
			return nil, fmt.Errorf("parsing start_time: %w", err)
		}
		if e.EndTime, err = time.Parse(time.RFC3339, endStr); err != nil {
			return nil, fmt.Errorf("parsing end_time: %w", err)
		}
		if e.CreatedAt, err = time.Parse(time.RFC3339, createdStr); err != nil {
			return nil, fmt.Errorf("parsing created_at: %w", err)
		}

		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating calendar events: %w", err)
	}
	return events, nil
}

// RequestReschedule moves an event to newStart, shifting its end time by the
// same offset so the duration is preserved.
func (r *SQLiteCalendarRepo) RequestReschedule(ctx context.Context, eventID string, newStart time.Time) error {
	var startStr, endStr string
	row := r.db.QueryRowContext(ctx,
		`SELECT start_time, end_time FROM calendar_events WHERE id = ?`, eventID)
	if err := row.Scan(&startStr, &endStr); err != nil {
		if err == sql.ErrNoRows {
			return fmt.Errorf("calendar event: %w", ErrNotFound)
		}
		return fmt.Errorf("loading calendar event: %w", err)
	}

	start, err := time.Parse(time.RFC3339, startStr)
	if err != nil {
		return fmt.Errorf("parsing start_time: %w", err)
	}
	end, err := time.Parse(time.RFC3339, endStr)
	if err != nil {
		return fmt.Errorf("parsing end_time: %w", err)
	}

	newEnd := newStart.Add(end.Sub(start))
	_, err = r.db.ExecContext(ctx,
		`UPDATE calendar_events SET start_time = ?, end_time = ? WHERE id = ?`,
		newStart.Format(time.RFC3339), newEnd.Format(time.RFC3339), eventID)
	if err != nil {
		return fmt.Errorf("rescheduling calendar event: %w", err)
	}
	return nil
}
