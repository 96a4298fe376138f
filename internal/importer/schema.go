package importer

import (
	"encoding/json"
	"fmt"
	"os"
)

// ImportSchema is the top-level JSON structure for a signal import file. Every
// section is optional; an empty file is valid and imports nothing.
type ImportSchema struct {
	Sessions  []SessionImport  `json:"sessions,omitempty"`
	Events    []EventImport    `json:"events,omitempty"`
	Tasks     []TaskImport     `json:"tasks,omitempty"`
	Goals     []GoalImport     `json:"goals,omitempty"`
	Deadlines []DeadlineImport `json:"deadlines,omitempty"`
	Projects  []ProjectImport  `json:"projects,omitempty"`
}

// SessionImport defines one historical focus session.
type SessionImport struct {
	StartedAt   string  `json:"started_at"`
	Minutes     int     `json:"minutes"`
	FocusScore  float64 `json:"focus_score"`
	Interrupted bool    `json:"interrupted,omitempty"`
}

// EventImport defines one calendar event.
type EventImport struct {
	Title             string   `json:"title"`
	Kind              string   `json:"kind,omitempty"`
	StartTime         string   `json:"start_time"`
	EndTime           string   `json:"end_time"`
	Moveable          *bool    `json:"moveable,omitempty"`
	Recurring         bool     `json:"recurring,omitempty"`
	Importance        *float64 `json:"importance,omitempty"`
	EnergyRequirement *float64 `json:"energy_requirement,omitempty"`
}

// TaskImport defines one task.
type TaskImport struct {
	Title        string  `json:"title"`
	Description  string  `json:"description,omitempty"`
	Status       string  `json:"status,omitempty"`
	Priority     string  `json:"priority,omitempty"`
	EstimatedMin int     `json:"estimated_min,omitempty"`
	DueDate      *string `json:"due_date,omitempty"`
}

// GoalImport defines one active goal.
type GoalImport struct {
	Title       string  `json:"title"`
	Description string  `json:"description,omitempty"`
	Kind        string  `json:"kind,omitempty"`
	Deadline    *string `json:"deadline,omitempty"`
}

// DeadlineImport defines one hard deadline.
type DeadlineImport struct {
	Title      string  `json:"title"`
	Date       string  `json:"date"`
	Complexity float64 `json:"complexity,omitempty"`
}

// ProjectImport defines one active project.
type ProjectImport struct {
	Name             string  `json:"name"`
	NextMilestoneDue *string `json:"next_milestone_due,omitempty"`
	CompletionPct    float64 `json:"completion_pct,omitempty"`
}

// LoadImportSchema reads and parses a signal import JSON file.
func LoadImportSchema(path string) (*ImportSchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var schema ImportSchema
	if err := json.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("parsing import file: %w", err)
	}
	return &schema, nil
}
