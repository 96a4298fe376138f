package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptrStr(s string) *string     { return &s }
func ptrFloat(f float64) *float64 { return &f }
func ptrBool(b bool) *bool        { return &b }

func validSchema() *ImportSchema {
	return &ImportSchema{
		Sessions: []SessionImport{
			{StartedAt: "2026-03-02T09:00", Minutes: 50, FocusScore: 0.9},
			{StartedAt: "2026-03-02T13:00", Minutes: 25, FocusScore: 0.3, Interrupted: true},
		},
		Events: []EventImport{
			{Title: "Sync", StartTime: "2026-03-03T09:00", EndTime: "2026-03-03T09:30"},
			{
				Title:             "Deep work",
				Kind:              "task",
				StartTime:         "2026-03-03T13:00",
				EndTime:           "2026-03-03T15:00",
				Moveable:          ptrBool(false),
				Importance:        ptrFloat(0.9),
				EnergyRequirement: ptrFloat(0.8),
			},
		},
		Tasks: []TaskImport{
			{Title: "Write report", Priority: "high", EstimatedMin: 60, DueDate: ptrStr("2026-03-10")},
		},
		Goals: []GoalImport{
			{Title: "Thesis", Kind: "project", Deadline: ptrStr("2026-06-01")},
		},
		Deadlines: []DeadlineImport{
			{Title: "Tax filing", Date: "2026-03-15", Complexity: 0.8},
		},
		Projects: []ProjectImport{
			{Name: "Atlas", NextMilestoneDue: ptrStr("2026-03-20"), CompletionPct: 0.4},
		},
	}
}

func TestValidateImportSchema_Valid(t *testing.T) {
	assert.Empty(t, ValidateImportSchema(validSchema()))
}

func TestValidateImportSchema_EmptyFileIsValid(t *testing.T) {
	assert.Empty(t, ValidateImportSchema(&ImportSchema{}))
}

func TestValidateImportSchema_CollectsAllErrors(t *testing.T) {
	schema := &ImportSchema{
		Sessions: []SessionImport{
			{StartedAt: "yesterday", Minutes: 0, FocusScore: 1.5},
		},
		Events: []EventImport{
			{Title: "", Kind: "party", StartTime: "2026-03-03T10:00", EndTime: "2026-03-03T09:00"},
		},
		Tasks: []TaskImport{
			{Title: "T", Status: "paused", Priority: "urgent", EstimatedMin: -5},
		},
		Deadlines: []DeadlineImport{
			{Title: "", Date: "03/15/2026", Complexity: 2},
		},
		Projects: []ProjectImport{
			{Name: "", CompletionPct: -0.1},
		},
	}

	errs := ValidateImportSchema(schema)
	require.NotEmpty(t, errs)

	joined := ""
	for _, err := range errs {
		joined += err.Error() + "\n"
	}
	assert.Contains(t, joined, "sessions[0].started_at")
	assert.Contains(t, joined, "sessions[0].minutes")
	assert.Contains(t, joined, "sessions[0].focus_score")
	assert.Contains(t, joined, "events[0].title")
	assert.Contains(t, joined, `events[0].kind: invalid value "party"`)
	assert.Contains(t, joined, "must be after start_time")
	assert.Contains(t, joined, `tasks[0].status: invalid value "paused"`)
	assert.Contains(t, joined, `tasks[0].priority: invalid value "urgent"`)
	assert.Contains(t, joined, "tasks[0].estimated_min")
	assert.Contains(t, joined, "deadlines[0].title")
	assert.Contains(t, joined, "deadlines[0].date")
	assert.Contains(t, joined, "deadlines[0].complexity")
	assert.Contains(t, joined, "projects[0].name")
	assert.Contains(t, joined, "projects[0].completion_pct")
}

func TestValidateImportSchema_OptionalDates(t *testing.T) {
	schema := &ImportSchema{
		Tasks: []TaskImport{{Title: "T", DueDate: ptrStr("next week")}},
		Goals: []GoalImport{{Title: "G", Deadline: ptrStr("2026-13-40")}},
	}

	errs := ValidateImportSchema(schema)
	require.Len(t, errs, 2)
	assert.Contains(t, errs[0].Error(), "tasks[0].due_date")
	assert.Contains(t, errs[1].Error(), "goals[0].deadline")
}
