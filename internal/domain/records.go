package domain

import "time"

// FocusSession is one completed timed work session with a self- or
// tracker-reported focus score.
type FocusSession struct {
	ID          string
	UserID      string
	StartedAt   time.Time
	CompletedAt time.Time
	Minutes     int
	FocusScore  float64
	Interrupted bool
	CreatedAt   time.Time
}

// CalendarEvent is a scheduled block on the user's calendar.
type CalendarEvent struct {
	ID                string
	UserID            string
	Title             string
	Kind              BlockKind
	StartTime         time.Time
	EndTime           time.Time
	Moveable          bool
	Recurring         bool
	Importance        float64 // 0..1
	EnergyRequirement float64 // 0 = low energy, 1 = high energy
	CreatedAt         time.Time
}

// DurationMin returns the event length in whole minutes.
func (e CalendarEvent) DurationMin() int {
	return int(e.EndTime.Sub(e.StartTime).Minutes())
}

type Task struct {
	ID            string
	UserID        string
	Title         string
	Description   string
	Status        TaskStatus
	Priority      Priority
	EstimatedMin  int
	DueDate       *time.Time
	AutoGenerated bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type Goal struct {
	ID          string
	UserID      string
	Title       string
	Description string
	Kind        string // learning, project, habit, ...
	Deadline    *time.Time
	CreatedAt   time.Time
}

type Deadline struct {
	ID         string
	UserID     string
	Title      string
	Date       time.Time
	Complexity float64 // 0..1
	CreatedAt  time.Time
}

type Project struct {
	ID               string
	UserID           string
	Name             string
	NextMilestoneDue *time.Time
	CompletionPct    float64
	CreatedAt        time.Time
}

// RunContext is the immutable snapshot every generator reads. It is assembled
// once at the start of a run and shared read-only across the generator fan-out.
type RunContext struct {
	UserID    string
	Now       time.Time
	Hour      int
	Weekday   string
	Pattern   ProductivityPattern
	Schedule  []CalendarEvent
	Projects  []Project
	Goals     []Goal
	Recent    []Task
	Deadlines []Deadline
}
