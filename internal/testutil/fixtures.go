package testutil

import (
	"time"

	"github.com/google/uuid"

	"github.com/dmarchetti/tempo/internal/domain"
)

// FocusSession options
type SessionOption func(*domain.FocusSession)

func WithMinutes(m int) SessionOption {
	return func(s *domain.FocusSession) {
		s.Minutes = m
		s.CompletedAt = s.StartedAt.Add(time.Duration(m) * time.Minute)
	}
}

func WithInterrupted() SessionOption {
	return func(s *domain.FocusSession) {
		s.Interrupted = true
	}
}

func NewTestSession(userID string, startedAt time.Time, focusScore float64, opts ...SessionOption) *domain.FocusSession {
	s := &domain.FocusSession{
		ID:          uuid.New().String(),
		UserID:      userID,
		StartedAt:   startedAt,
		CompletedAt: startedAt.Add(50 * time.Minute),
		Minutes:     50,
		FocusScore:  focusScore,
		CreatedAt:   time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CalendarEvent options
type EventOption func(*domain.CalendarEvent)

func WithKind(k domain.BlockKind) EventOption {
	return func(e *domain.CalendarEvent) {
		e.Kind = k
	}
}

func WithImportance(v float64) EventOption {
	return func(e *domain.CalendarEvent) {
		e.Importance = v
	}
}

func WithEnergyRequirement(v float64) EventOption {
	return func(e *domain.CalendarEvent) {
		e.EnergyRequirement = v
	}
}

func WithImmovable() EventOption {
	return func(e *domain.CalendarEvent) {
		e.Moveable = false
	}
}

func WithRecurring() EventOption {
	return func(e *domain.CalendarEvent) {
		e.Recurring = true
	}
}

func WithEnd(t time.Time) EventOption {
	return func(e *domain.CalendarEvent) {
		e.EndTime = t
	}
}

func NewTestEvent(userID, title string, start time.Time, opts ...EventOption) *domain.CalendarEvent {
	e := &domain.CalendarEvent{
		ID:                uuid.New().String(),
		UserID:            userID,
		Title:             title,
		Kind:              domain.BlockMeeting,
		StartTime:         start,
		EndTime:           start.Add(time.Hour),
		Moveable:          true,
		Importance:        0.5,
		EnergyRequirement: 0.5,
		CreatedAt:         time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Task options
type TaskOption func(*domain.Task)

func WithTaskStatus(s domain.TaskStatus) TaskOption {
	return func(t *domain.Task) {
		t.Status = s
	}
}

func WithTaskPriority(p domain.Priority) TaskOption {
	return func(t *domain.Task) {
		t.Priority = p
	}
}

func WithTaskCreatedAt(at time.Time) TaskOption {
	return func(t *domain.Task) {
		t.CreatedAt = at
		t.UpdatedAt = at
	}
}

func WithTaskDueDate(d time.Time) TaskOption {
	return func(t *domain.Task) {
		t.DueDate = &d
	}
}

func NewTestTask(userID, title string, opts ...TaskOption) *domain.Task {
	now := time.Now().UTC()
	t := &domain.Task{
		ID:           uuid.New().String(),
		UserID:       userID,
		Title:        title,
		Status:       domain.TaskPending,
		Priority:     domain.PriorityMedium,
		EstimatedMin: 25,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Goal options
type GoalOption func(*domain.Goal)

func WithGoalDeadline(d time.Time) GoalOption {
	return func(g *domain.Goal) {
		g.Deadline = &d
	}
}

func NewTestGoal(userID, title, kind string, opts ...GoalOption) *domain.Goal {
	g := &domain.Goal{
		ID:        uuid.New().String(),
		UserID:    userID,
		Title:     title,
		Kind:      kind,
		CreatedAt: time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Deadline options
type DeadlineOption func(*domain.Deadline)

func WithComplexity(v float64) DeadlineOption {
	return func(d *domain.Deadline) {
		d.Complexity = v
	}
}

func NewTestDeadline(userID, title string, date time.Time, opts ...DeadlineOption) *domain.Deadline {
	d := &domain.Deadline{
		ID:        uuid.New().String(),
		UserID:    userID,
		Title:     title,
		Date:      date,
		CreatedAt: time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Project options
type ProjectOption func(*domain.Project)

func WithMilestoneDue(d time.Time) ProjectOption {
	return func(p *domain.Project) {
		p.NextMilestoneDue = &d
	}
}

func WithCompletionPct(v float64) ProjectOption {
	return func(p *domain.Project) {
		p.CompletionPct = v
	}
}

func NewTestProject(userID, name string, opts ...ProjectOption) *domain.Project {
	p := &domain.Project{
		ID:        uuid.New().String(),
		UserID:    userID,
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}
