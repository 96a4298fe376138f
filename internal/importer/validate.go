package importer

import (
	"fmt"
	"time"
)

// Timestamp layouts accepted in import files.
const (
	timestampLayout = "2006-01-02T15:04"
	dateLayout      = "2006-01-02"
)

var (
	validBlockKinds = map[string]bool{
		"meeting": true, "task": true, "focus_time": true, "break": true, "buffer": true,
	}
	validTaskStatuses = map[string]bool{
		"pending": true, "in_progress": true, "completed": true, "cancelled": true,
	}
	validPriorities = map[string]bool{
		"low": true, "medium": true, "high": true, "critical": true,
	}
)

// ValidateImportSchema checks the import schema before conversion.
// Returns a slice of all validation errors found.
func ValidateImportSchema(schema *ImportSchema) []error {
	var errs []error
	errs = append(errs, validateSessions(schema.Sessions)...)
	errs = append(errs, validateEvents(schema.Events)...)
	errs = append(errs, validateTasks(schema.Tasks)...)
	errs = append(errs, validateGoals(schema.Goals)...)
	errs = append(errs, validateDeadlines(schema.Deadlines)...)
	errs = append(errs, validateProjects(schema.Projects)...)
	return errs
}

func validateSessions(sessions []SessionImport) []error {
	var errs []error
	for i, s := range sessions {
		prefix := fmt.Sprintf("sessions[%d]", i)

		errs = append(errs, validateTimestamp(prefix+".started_at", s.StartedAt, true)...)
		if s.Minutes <= 0 {
			errs = append(errs, fmt.Errorf("%s.minutes must be positive", prefix))
		}
		if s.FocusScore < 0 || s.FocusScore > 1 {
			errs = append(errs, fmt.Errorf("%s.focus_score %.2f outside [0,1]", prefix, s.FocusScore))
		}
	}
	return errs
}

func validateEvents(events []EventImport) []error {
	var errs []error
	for i, e := range events {
		prefix := fmt.Sprintf("events[%d]", i)

		if e.Title == "" {
			errs = append(errs, fmt.Errorf("%s.title is required", prefix))
		}
		if e.Kind != "" && !validBlockKinds[e.Kind] {
			errs = append(errs, fmt.Errorf("%s.kind: invalid value %q", prefix, e.Kind))
		}
		errs = append(errs, validateTimestamp(prefix+".start_time", e.StartTime, true)...)
		errs = append(errs, validateTimestamp(prefix+".end_time", e.EndTime, true)...)

		start, startErr := time.Parse(timestampLayout, e.StartTime)
		end, endErr := time.Parse(timestampLayout, e.EndTime)
		if startErr == nil && endErr == nil && !end.After(start) {
			errs = append(errs, fmt.Errorf("%s: end_time %q must be after start_time %q", prefix, e.EndTime, e.StartTime))
		}

		errs = append(errs, validateFraction(prefix+".importance", e.Importance)...)
		errs = append(errs, validateFraction(prefix+".energy_requirement", e.EnergyRequirement)...)
	}
	return errs
}

func validateTasks(tasks []TaskImport) []error {
	var errs []error
	for i, t := range tasks {
		prefix := fmt.Sprintf("tasks[%d]", i)

		if t.Title == "" {
			errs = append(errs, fmt.Errorf("%s.title is required", prefix))
		}
		if t.Status != "" && !validTaskStatuses[t.Status] {
			errs = append(errs, fmt.Errorf("%s.status: invalid value %q", prefix, t.Status))
		}
		if t.Priority != "" && !validPriorities[t.Priority] {
			errs = append(errs, fmt.Errorf("%s.priority: invalid value %q", prefix, t.Priority))
		}
		if t.EstimatedMin < 0 {
			errs = append(errs, fmt.Errorf("%s.estimated_min must not be negative", prefix))
		}
		errs = append(errs, validateOptionalDate(prefix+".due_date", t.DueDate)...)
	}
	return errs
}

func validateGoals(goals []GoalImport) []error {
	var errs []error
	for i, g := range goals {
		prefix := fmt.Sprintf("goals[%d]", i)

		if g.Title == "" {
			errs = append(errs, fmt.Errorf("%s.title is required", prefix))
		}
		errs = append(errs, validateOptionalDate(prefix+".deadline", g.Deadline)...)
	}
	return errs
}

func validateDeadlines(deadlines []DeadlineImport) []error {
	var errs []error
	for i, d := range deadlines {
		prefix := fmt.Sprintf("deadlines[%d]", i)

		if d.Title == "" {
			errs = append(errs, fmt.Errorf("%s.title is required", prefix))
		}
		if d.Date == "" {
			errs = append(errs, fmt.Errorf("%s.date is required", prefix))
		} else if _, err := time.Parse(dateLayout, d.Date); err != nil {
			errs = append(errs, fmt.Errorf("%s.date: invalid date format %q (expected YYYY-MM-DD)", prefix, d.Date))
		}
		if d.Complexity < 0 || d.Complexity > 1 {
			errs = append(errs, fmt.Errorf("%s.complexity %.2f outside [0,1]", prefix, d.Complexity))
		}
	}
	return errs
}

func validateProjects(projects []ProjectImport) []error {
	var errs []error
	for i, p := range projects {
		prefix := fmt.Sprintf("projects[%d]", i)

		if p.Name == "" {
			errs = append(errs, fmt.Errorf("%s.name is required", prefix))
		}
		if p.CompletionPct < 0 || p.CompletionPct > 1 {
			errs = append(errs, fmt.Errorf("%s.completion_pct %.2f outside [0,1]", prefix, p.CompletionPct))
		}
		errs = append(errs, validateOptionalDate(prefix+".next_milestone_due", p.NextMilestoneDue)...)
	}
	return errs
}

func validateTimestamp(field, value string, required bool) []error {
	if value == "" {
		if required {
			return []error{fmt.Errorf("%s is required", field)}
		}
		return nil
	}
	if _, err := time.Parse(timestampLayout, value); err != nil {
		return []error{fmt.Errorf("%s: invalid timestamp %q (expected YYYY-MM-DDTHH:MM)", field, value)}
	}
	return nil
}

func validateOptionalDate(field string, dateStr *string) []error {
	if dateStr == nil || *dateStr == "" {
		return nil
	}
	if _, err := time.Parse(dateLayout, *dateStr); err != nil {
		return []error{fmt.Errorf("%s: invalid date format %q (expected YYYY-MM-DD)", field, *dateStr)}
	}
	return nil
}

func validateFraction(field string, v *float64) []error {
	if v == nil {
		return nil
	}
	if *v < 0 || *v > 1 {
		return []error{fmt.Errorf("%s %.2f outside [0,1]", field, *v)}
	}
	return nil
}
