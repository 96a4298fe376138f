package contract

import (
	"time"

	"github.com/dmarchetti/tempo/internal/domain"
)

// MeetingSuggestion is the engine's proposed slot for a new meeting.
type MeetingSuggestion struct {
	SuggestedTime    time.Time
	AlternativeTimes []time.Time
	Confidence       float64
	Reasoning        string
}

// ScheduledActivity describes what occupies an hour, with an optimality
// verdict relative to the user's pattern.
type ScheduledActivity struct {
	Title   string
	Kind    domain.BlockKind
	Optimal bool
}

// HourView is one row of the productivity calendar.
type HourView struct {
	Hour              int
	ProductivityScore float64
	EnergyLevel       string // high, medium, low
	Scheduled         *ScheduledActivity
	Recommendation    string
}

// ProductivityCalendar is the pattern-annotated view of one day.
type ProductivityCalendar struct {
	Date                time.Time
	Hours               []HourView
	OptimalFocusWindows []domain.FocusWindow
	DailyProductivity   float64
}
