package engine

import (
	"fmt"
	"strings"
	"time"

	"github.com/dmarchetti/tempo/internal/domain"
)

// daysUntil truncates toward zero, matching how due-date proximity has
// always been bucketed: "due in 1 day" covers anything under 48 hours.
func daysUntil(t, now time.Time) int {
	return int(t.Sub(now).Hours() / 24)
}

// patternTasks predicts tasks from the user's own recurrence history:
// titles completed repeatedly on this weekday or around this hour, upcoming
// project milestones, and stale incomplete tasks.
type patternTasks struct{}

func (patternTasks) Name() string { return "pattern_tasks" }

func (patternTasks) Generate(rctx *domain.RunContext) ([]domain.Candidate, error) {
	var out []domain.Candidate

	out = append(out, recurringTaskCandidates(rctx)...)

	for _, project := range rctx.Projects {
		if project.NextMilestoneDue == nil {
			continue
		}
		days := daysUntil(*project.NextMilestoneDue, rctx.Now)
		if days < 0 || days > 3 {
			continue
		}
		due := project.NextMilestoneDue.Add(-4 * time.Hour)
		out = append(out, domain.Candidate{
			Action:      domain.ActionPatternTask,
			Title:       "Prepare for " + project.Name + " milestone",
			Description: "Predicted from the project timeline and your preparation history",
			Confidence:  0.75,
			Priority:    domain.PriorityMedium,
			Source:      domain.SourcePattern,
			Reasoning:   fmt.Sprintf("Milestone due in %d days", days),
			DueDate:     &due,
			DurationMin: 60,
		})
	}

	for _, task := range rctx.Recent {
		if task.Status == domain.TaskCompleted || task.Status == domain.TaskCancelled {
			continue
		}
		age := daysUntil(rctx.Now, task.CreatedAt)
		if age <= 3 {
			continue
		}
		duration := task.EstimatedMin
		if duration <= 0 {
			duration = 25
		}
		out = append(out, domain.Candidate{
			Action:      domain.ActionPatternTask,
			Title:       "Follow up: " + task.Title,
			Description: "Old incomplete task that might need attention",
			Confidence:  0.6,
			Priority:    domain.PriorityMedium,
			Source:      domain.SourcePattern,
			Reasoning:   fmt.Sprintf("Task has been incomplete for %d days", age),
			DurationMin: duration,
		})
	}

	return out, nil
}

// recurrenceThreshold is the minimum completions before a title counts as a
// recurring habit within the 30-day task window.
const recurrenceThreshold = 2

func recurringTaskCandidates(rctx *domain.RunContext) []domain.Candidate {
	type recurrence struct {
		title       string
		count       int
		durationSum int
	}
	var weeklyOrder, hourlyOrder []string
	weekly := make(map[string]*recurrence)
	hourly := make(map[string]*recurrence)

	record := func(m map[string]*recurrence, order *[]string, task domain.Task) {
		key := strings.ToLower(strings.TrimSpace(task.Title))
		r, ok := m[key]
		if !ok {
			r = &recurrence{title: task.Title}
			m[key] = r
			*order = append(*order, key)
		}
		r.count++
		r.durationSum += task.EstimatedMin
	}

	for _, task := range rctx.Recent {
		if task.Status != domain.TaskCompleted {
			continue
		}
		if task.UpdatedAt.Weekday().String() == rctx.Weekday {
			record(weekly, &weeklyOrder, task)
		}
		if task.UpdatedAt.Hour() == rctx.Hour {
			record(hourly, &hourlyOrder, task)
		}
	}

	// Roughly four of each weekday fit in the 30-day window, so the
	// occurrence rate is completions out of four, capped below certainty.
	rate := func(count int, cap float64) float64 {
		r := float64(count) / 4
		if r > cap {
			return cap
		}
		return r
	}

	var out []domain.Candidate
	for _, key := range weeklyOrder {
		r := weekly[key]
		if r.count < recurrenceThreshold {
			continue
		}
		out = append(out, domain.Candidate{
			Action:      domain.ActionPatternTask,
			Title:       r.title,
			Description: fmt.Sprintf("Recurring %s task based on your history", rctx.Weekday),
			Confidence:  rate(r.count, 0.95),
			Priority:    domain.PriorityMedium,
			Source:      domain.SourcePattern,
			Reasoning:   fmt.Sprintf("You completed this on %d recent %ss", r.count, rctx.Weekday),
			DurationMin: avgOrDefault(r.durationSum, r.count, 25),
		})
	}
	for _, key := range hourlyOrder {
		r := hourly[key]
		if r.count < recurrenceThreshold {
			continue
		}
		out = append(out, domain.Candidate{
			Action:      domain.ActionPatternTask,
			Title:       r.title,
			Description: fmt.Sprintf("Typical task around %02d:00", rctx.Hour),
			Confidence:  rate(r.count, 0.9),
			Priority:    domain.PriorityMedium,
			Source:      domain.SourcePattern,
			Reasoning:   fmt.Sprintf("You often work on this around %02d:00", rctx.Hour),
			DurationMin: avgOrDefault(r.durationSum, r.count, 30),
		})
	}
	return out
}

func avgOrDefault(sum, count, fallback int) int {
	if count == 0 || sum <= 0 {
		return fallback
	}
	return sum / count
}

// calendarTasks predicts preparation, follow-up, and review work around
// upcoming meetings.
type calendarTasks struct{}

func (calendarTasks) Name() string { return "calendar_tasks" }

func (calendarTasks) Generate(rctx *domain.RunContext) ([]domain.Candidate, error) {
	var out []domain.Candidate
	for _, event := range rctx.Schedule {
		if event.Kind != domain.BlockMeeting {
			continue
		}

		if event.Importance > 0.7 {
			due := event.StartTime.Add(-2 * time.Hour)
			out = append(out, domain.Candidate{
				Action:      domain.ActionCalendarTask,
				Title:       "Prepare for " + event.Title,
				Description: "Meeting preparation: agenda review, materials gathering",
				Confidence:  0.8,
				Priority:    domain.PriorityMedium,
				Source:      domain.SourceCalendar,
				Reasoning:   "Important meeting requires preparation",
				DueDate:     &due,
				DurationMin: 30,
			})
		}

		// External-facing meetings (very high importance, one-off) reliably
		// need a summary sent afterwards.
		if !event.Recurring && event.Importance > 0.85 {
			due := event.EndTime.Add(4 * time.Hour)
			out = append(out, domain.Candidate{
				Action:      domain.ActionCalendarTask,
				Title:       "Follow up on " + event.Title,
				Description: "Send summary and action items to participants",
				Confidence:  0.9,
				Priority:    domain.PriorityMedium,
				Source:      domain.SourceCalendar,
				Reasoning:   "High-stakes meetings typically require follow-up",
				DueDate:     &due,
				DurationMin: 20,
			})
		}

		if event.Recurring {
			due := event.EndTime.Add(24 * time.Hour)
			out = append(out, domain.Candidate{
				Action:      domain.ActionCalendarTask,
				Title:       "Review outcomes from " + event.Title,
				Description: "Review meeting outcomes and plan next steps",
				Confidence:  0.7,
				Priority:    domain.PriorityMedium,
				Source:      domain.SourceCalendar,
				Reasoning:   "Recurring meetings benefit from outcome reviews",
				DueDate:     &due,
				DurationMin: 15,
			})
		}
	}
	return out, nil
}

// goalTasks predicts progress and work sessions from active goals, with an
// urgency tier for approaching deadlines.
type goalTasks struct{}

func (goalTasks) Name() string { return "goal_tasks" }

func (goalTasks) Generate(rctx *domain.RunContext) ([]domain.Candidate, error) {
	var out []domain.Candidate
	for _, goal := range rctx.Goals {
		if goal.Deadline == nil {
			continue
		}
		days := daysUntil(*goal.Deadline, rctx.Now)
		if days <= 0 {
			continue
		}

		out = append(out, domain.Candidate{
			Action:      domain.ActionGoalTask,
			Title:       "Review progress on: " + goal.Title,
			Description: "Check progress and adjust approach for goal: " + goal.Description,
			Confidence:  0.8,
			Priority:    domain.PriorityMedium,
			Source:      domain.SourceGoal,
			Reasoning:   fmt.Sprintf("Goal deadline in %d days", days),
			DurationMin: 25,
		})

		switch goal.Kind {
		case "learning":
			out = append(out, domain.Candidate{
				Action:      domain.ActionGoalTask,
				Title:       "Study session: " + goal.Title,
				Description: "Dedicated learning session for goal achievement",
				Confidence:  0.75,
				Priority:    domain.PriorityMedium,
				Source:      domain.SourceGoal,
				Reasoning:   "Learning goals require regular study sessions",
				DurationMin: 50,
			})
		case "project":
			out = append(out, domain.Candidate{
				Action:      domain.ActionGoalTask,
				Title:       "Work on: " + goal.Title,
				Description: "Project work session for goal achievement",
				Confidence:  0.8,
				Priority:    domain.PriorityMedium,
				Source:      domain.SourceGoal,
				Reasoning:   "Project goals require dedicated work sessions",
				DurationMin: 75,
			})
		}

		if days <= 7 {
			confidence, priority := 0.8, domain.PriorityHigh
			switch {
			case days <= 1:
				confidence, priority = 0.95, domain.PriorityCritical
			case days <= 3:
				confidence = 0.9
			}
			out = append(out, domain.Candidate{
				Action:      domain.ActionGoalTask,
				Title:       "URGENT: Final push for " + goal.Title,
				Description: "Intensive work session to meet upcoming deadline",
				Confidence:  confidence,
				Priority:    priority,
				Source:      domain.SourceGoal,
				Reasoning:   fmt.Sprintf("Goal deadline in only %d days", days),
				DurationMin: 90,
			})
		}
	}
	return out, nil
}

// deadlineTasks predicts preparation work scaled by deadline urgency, plus a
// buffer task ahead of complex deadlines.
type deadlineTasks struct{}

func (deadlineTasks) Name() string { return "deadline_tasks" }

func (deadlineTasks) Generate(rctx *domain.RunContext) ([]domain.Candidate, error) {
	var out []domain.Candidate
	for _, deadline := range rctx.Deadlines {
		days := daysUntil(deadline.Date, rctx.Now)
		if days <= 0 {
			continue
		}

		switch {
		case days <= 1:
			due := deadline.Date.Add(-2 * time.Hour)
			out = append(out, domain.Candidate{
				Action:      domain.ActionDeadlineTask,
				Title:       "URGENT PREP: " + deadline.Title,
				Description: "Last-minute preparation for imminent deadline",
				Confidence:  0.95,
				Priority:    domain.PriorityCritical,
				Source:      domain.SourceDeadline,
				Reasoning:   "Deadline is within 24 hours",
				DueDate:     &due,
				DurationMin: 60,
			})
		case days <= 3:
			out = append(out, domain.Candidate{
				Action:      domain.ActionDeadlineTask,
				Title:       "Prepare for: " + deadline.Title,
				Description: "Preparation work for upcoming deadline",
				Confidence:  0.85,
				Priority:    domain.PriorityHigh,
				Source:      domain.SourceDeadline,
				Reasoning:   fmt.Sprintf("Deadline in %d days", days),
				DurationMin: 45,
			})
		case days <= 7:
			out = append(out, domain.Candidate{
				Action:      domain.ActionDeadlineTask,
				Title:       "Plan approach for: " + deadline.Title,
				Description: "Strategic planning for upcoming deadline",
				Confidence:  0.7,
				Priority:    domain.PriorityMedium,
				Source:      domain.SourceDeadline,
				Reasoning:   fmt.Sprintf("Deadline in %d days - good time to plan", days),
				DurationMin: 30,
			})
		}

		if deadline.Complexity > 0.7 {
			due := deadline.Date.AddDate(0, 0, -1)
			out = append(out, domain.Candidate{
				Action:      domain.ActionDeadlineTask,
				Title:       "Buffer time: " + deadline.Title,
				Description: "Additional time buffer for complex deadline",
				Confidence:  0.6,
				Priority:    domain.PriorityMedium,
				Source:      domain.SourceDeadline,
				Reasoning:   "Complex deadline may need extra time",
				DueDate:     &due,
				DurationMin: 30,
			})
		}
	}
	return out, nil
}
