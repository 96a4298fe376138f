package contract

import (
	"time"

	"github.com/dmarchetti/tempo/internal/domain"
)

// RunRequest asks the engine to execute one recommendation run for a user.
// From/To bound the schedule window and are only used by schedule optimization.
type RunRequest struct {
	UserID  string
	Feature domain.Feature
	From    time.Time
	To      time.Time
	Now     *time.Time // test override; defaults to time.Now().UTC()
}

// NewOptimizeRequest builds a schedule optimization request covering the
// given date window.
func NewOptimizeRequest(userID string, from, to time.Time) RunRequest {
	return RunRequest{
		UserID:  userID,
		Feature: domain.FeatureScheduleOptimization,
		From:    from,
		To:      to,
	}
}

// NewPredictRequest builds a task prediction request.
func NewPredictRequest(userID string) RunRequest {
	return RunRequest{
		UserID:  userID,
		Feature: domain.FeatureTaskPrediction,
	}
}

// ExecutionResult records the outcome of executing one selected candidate.
type ExecutionResult struct {
	Action                   domain.ActionType      `json:"action"`
	Title                    string                 `json:"title"`
	Status                   domain.ExecutionStatus `json:"status"`
	Message                  string                 `json:"message"`
	ProductivityGainEstimate float64                `json:"productivity_gain_estimate"`
	Confidence               float64                `json:"confidence"`
	CreatedTaskID            string                 `json:"created_task_id,omitempty"`
	DurationMin              int                    `json:"duration_min,omitempty"`
	Error                    string                 `json:"error,omitempty"`
}

// ImpactSummary aggregates executed results into run-level statistics.
type ImpactSummary struct {
	TotalProductivityGain float64 `json:"total_productivity_gain"`
	ExecutedCount         int     `json:"executed_count"`
	SuccessfulCount       int     `json:"successful_count"`
	AverageConfidence     float64 `json:"average_confidence"`
	FocusTimeGainedMin    int     `json:"focus_time_gained_min"`
}

// SuggestedCandidate is a ranked candidate left for human review.
type SuggestedCandidate struct {
	Action          domain.ActionType `json:"action"`
	Title           string            `json:"title"`
	Description     string            `json:"description"`
	Confidence      float64           `json:"confidence"`
	Impact          float64           `json:"impact"`
	ImportanceScore float64           `json:"importance_score"`
	Priority        domain.Priority   `json:"priority"`
	Source          domain.Source     `json:"source"`
	Reasoning       string            `json:"reasoning"`
	DueDate         *time.Time        `json:"due_date,omitempty"`
	SuggestedTime   *time.Time        `json:"suggested_time,omitempty"`
	DurationMin     int               `json:"duration_min,omitempty"`
}

// RunResult is the full outcome of one recommendation run. It is both the
// direct return value of Run and the payload cached for later review.
type RunResult struct {
	UserID      string               `json:"user_id"`
	Feature     domain.Feature       `json:"feature"`
	GeneratedAt time.Time            `json:"generated_at"`
	Executed    []ExecutionResult    `json:"executed"`
	Suggested   []SuggestedCandidate `json:"suggested"`
	Impact      ImpactSummary        `json:"impact_summary"`
	Warnings    []string             `json:"warnings,omitempty"`
}

type RunErrorCode string

const (
	ErrInvalidFeature RunErrorCode = "INVALID_FEATURE"
	ErrInvalidWindow  RunErrorCode = "INVALID_WINDOW"
	ErrMissingUser    RunErrorCode = "MISSING_USER"
)

// RunError is a request validation failure. Degraded data conditions never
// surface as a RunError; they downgrade the run instead.
type RunError struct {
	Code    RunErrorCode
	Message string
}

func (e *RunError) Error() string {
	return string(e.Code) + ": " + e.Message
}
