package repository

import (
	"context"
	"errors"
	"time"

	"github.com/dmarchetti/tempo/internal/domain"
)

// ErrNotFound is returned when a queried entity does not exist.
var ErrNotFound = errors.New("not found")

// SessionRepo reads the historical focus session record.
type SessionRepo interface {
	Create(ctx context.Context, s *domain.FocusSession) error
	ListCompletedSince(ctx context.Context, userID string, since time.Time) ([]*domain.FocusSession, error)
}

// TaskRepo is the persistent task store. The executor writes auto-created
// tasks through it; generators read recent tasks for recurrence analysis.
type TaskRepo interface {
	Create(ctx context.Context, t *domain.Task) error
	GetByID(ctx context.Context, id string) (*domain.Task, error)
	ListRecent(ctx context.Context, userID string, days int) ([]domain.Task, error)
}

// CalendarRepo fronts the user's calendar. RequestReschedule moves an event
// to a new start time, preserving its duration.
type CalendarRepo interface {
	Create(ctx context.Context, e *domain.CalendarEvent) error
	ListEvents(ctx context.Context, userID string, from, to time.Time) ([]domain.CalendarEvent, error)
	RequestReschedule(ctx context.Context, eventID string, newStart time.Time) error
}

type GoalRepo interface {
	Create(ctx context.Context, g *domain.Goal) error
	ListActive(ctx context.Context, userID string) ([]domain.Goal, error)
}

type DeadlineRepo interface {
	Create(ctx context.Context, d *domain.Deadline) error
	ListUpcoming(ctx context.Context, userID string, until time.Time) ([]domain.Deadline, error)
}

type ProjectRepo interface {
	Create(ctx context.Context, p *domain.Project) error
	ListActive(ctx context.Context, userID string) ([]domain.Project, error)
}

// RunCacheRepo is a key-value store with per-entry TTL for run results.
type RunCacheRepo interface {
	Set(ctx context.Context, key string, payload []byte, ttl time.Duration) error
	// Get returns ErrNotFound for missing or expired entries.
	Get(ctx context.Context, key string) ([]byte, error)
}
