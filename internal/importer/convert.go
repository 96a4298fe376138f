package importer

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dmarchetti/tempo/internal/domain"
)

// SignalBatch holds converted domain records ready for persistence.
type SignalBatch struct {
	Sessions  []*domain.FocusSession
	Events    []*domain.CalendarEvent
	Tasks     []*domain.Task
	Goals     []*domain.Goal
	Deadlines []*domain.Deadline
	Projects  []*domain.Project
}

// Count returns the total number of records in the batch.
func (b *SignalBatch) Count() int {
	return len(b.Sessions) + len(b.Events) + len(b.Tasks) +
		len(b.Goals) + len(b.Deadlines) + len(b.Projects)
}

// Convert transforms a validated ImportSchema into domain records for userID.
// Call ValidateImportSchema first; Convert assumes the schema is valid.
func Convert(schema *ImportSchema, userID string) (*SignalBatch, error) {
	if userID == "" {
		return nil, fmt.Errorf("import requires a user id")
	}
	now := time.Now().UTC()
	batch := &SignalBatch{}

	for i, s := range schema.Sessions {
		startedAt, err := time.Parse(timestampLayout, s.StartedAt)
		if err != nil {
			return nil, fmt.Errorf("sessions[%d].started_at: %w", i, err)
		}
		batch.Sessions = append(batch.Sessions, &domain.FocusSession{
			ID:          uuid.New().String(),
			UserID:      userID,
			StartedAt:   startedAt,
			CompletedAt: startedAt.Add(time.Duration(s.Minutes) * time.Minute),
			Minutes:     s.Minutes,
			FocusScore:  s.FocusScore,
			Interrupted: s.Interrupted,
			CreatedAt:   now,
		})
	}

	for i, e := range schema.Events {
		start, err := time.Parse(timestampLayout, e.StartTime)
		if err != nil {
			return nil, fmt.Errorf("events[%d].start_time: %w", i, err)
		}
		end, err := time.Parse(timestampLayout, e.EndTime)
		if err != nil {
			return nil, fmt.Errorf("events[%d].end_time: %w", i, err)
		}

		kind := domain.BlockKind(e.Kind)
		if e.Kind == "" {
			kind = domain.BlockMeeting
		}
		batch.Events = append(batch.Events, &domain.CalendarEvent{
			ID:                uuid.New().String(),
			UserID:            userID,
			Title:             e.Title,
			Kind:              kind,
			StartTime:         start,
			EndTime:           end,
			Moveable:          boolOr(e.Moveable, true),
			Recurring:         e.Recurring,
			Importance:        floatOr(e.Importance, 0.5),
			EnergyRequirement: floatOr(e.EnergyRequirement, 0.5),
			CreatedAt:         now,
		})
	}

	for _, t := range schema.Tasks {
		status := domain.TaskStatus(t.Status)
		if t.Status == "" {
			status = domain.TaskPending
		}
		priority := domain.Priority(t.Priority)
		if t.Priority == "" {
			priority = domain.PriorityMedium
		}
		batch.Tasks = append(batch.Tasks, &domain.Task{
			ID:           uuid.New().String(),
			UserID:       userID,
			Title:        t.Title,
			Description:  t.Description,
			Status:       status,
			Priority:     priority,
			EstimatedMin: t.EstimatedMin,
			DueDate:      parseOptionalDate(t.DueDate),
			CreatedAt:    now,
			UpdatedAt:    now,
		})
	}

	for _, g := range schema.Goals {
		batch.Goals = append(batch.Goals, &domain.Goal{
			ID:          uuid.New().String(),
			UserID:      userID,
			Title:       g.Title,
			Description: g.Description,
			Kind:        g.Kind,
			Deadline:    parseOptionalDate(g.Deadline),
			CreatedAt:   now,
		})
	}

	for i, d := range schema.Deadlines {
		date, err := time.Parse(dateLayout, d.Date)
		if err != nil {
			return nil, fmt.Errorf("deadlines[%d].date: %w", i, err)
		}
		batch.Deadlines = append(batch.Deadlines, &domain.Deadline{
			ID:         uuid.New().String(),
			UserID:     userID,
			Title:      d.Title,
			Date:       date,
			Complexity: d.Complexity,
			CreatedAt:  now,
		})
	}

	for _, p := range schema.Projects {
		batch.Projects = append(batch.Projects, &domain.Project{
			ID:               uuid.New().String(),
			UserID:           userID,
			Name:             p.Name,
			NextMilestoneDue: parseOptionalDate(p.NextMilestoneDue),
			CompletionPct:    p.CompletionPct,
			CreatedAt:        now,
		})
	}

	return batch, nil
}

func parseOptionalDate(s *string) *time.Time {
	if s == nil || *s == "" {
		return nil
	}
	t, err := time.Parse(dateLayout, *s)
	if err != nil {
		return nil
	}
	return &t
}

func boolOr(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}

func floatOr(v *float64, def float64) float64 {
	if v == nil {
		return def
	}
	return *v
}
