package domain

// Feature identifies which recommendation pipeline a run executes.
type Feature string

const (
	FeatureScheduleOptimization Feature = "schedule_optimization"
	FeatureTaskPrediction       Feature = "task_prediction"
)

// ValidFeatures is the canonical set of accepted feature strings.
var ValidFeatures = map[string]bool{
	"schedule_optimization": true,
	"task_prediction":       true,
}

// ActionType tags a candidate with the concrete action it proposes.
type ActionType string

const (
	ActionRescheduleLowEnergyTask ActionType = "reschedule_low_energy_task"
	ActionMoveMeetingFromPeak     ActionType = "move_meeting_from_peak"
	ActionBlockFocusTime          ActionType = "block_focus_time"
	ActionConsolidateMeetings     ActionType = "consolidate_meetings"
	ActionPatternTask             ActionType = "pattern_task"
	ActionCalendarTask            ActionType = "calendar_task"
	ActionGoalTask                ActionType = "goal_task"
	ActionDeadlineTask            ActionType = "deadline_task"
)

// IsOptimization reports whether the action belongs to the schedule
// optimization pipeline (as opposed to task prediction).
func (a ActionType) IsOptimization() bool {
	switch a {
	case ActionRescheduleLowEnergyTask, ActionMoveMeetingFromPeak,
		ActionBlockFocusTime, ActionConsolidateMeetings:
		return true
	}
	return false
}

type Priority string

const (
	PriorityLow      Priority = "low"
	PriorityMedium   Priority = "medium"
	PriorityHigh     Priority = "high"
	PriorityCritical Priority = "critical"
)

// Weight returns the ranking weight for the priority tier.
// Unknown values fall back to the medium weight.
func (p Priority) Weight() float64 {
	switch p {
	case PriorityLow:
		return 0.2
	case PriorityHigh:
		return 0.8
	case PriorityCritical:
		return 1.0
	default:
		return 0.5
	}
}

// Source identifies which generator family produced a candidate.
type Source string

const (
	SourceDeadline    Source = "deadline_based"
	SourceCalendar    Source = "calendar_based"
	SourcePattern     Source = "pattern_based"
	SourceGoal        Source = "goal_based"
	SourceSchedule    Source = "schedule_based"
	SourceAIGenerated Source = "ai_generated"
)

// Weight returns the reliability weight used when ranking predicted tasks.
// Sources without an established track record score 0.5.
func (s Source) Weight() float64 {
	switch s {
	case SourceDeadline:
		return 0.9
	case SourceCalendar:
		return 0.8
	case SourcePattern:
		return 0.7
	case SourceGoal:
		return 0.6
	default:
		return 0.5
	}
}

// ExecutionStatus is the terminal status of an executed candidate.
type ExecutionStatus string

const (
	StatusSuccess     ExecutionStatus = "success"
	StatusCreated     ExecutionStatus = "created"
	StatusRescheduled ExecutionStatus = "rescheduled"
	StatusSuggested   ExecutionStatus = "suggested"
	StatusFailed      ExecutionStatus = "failed"
)

// Succeeded reports whether the status counts toward successful executions.
func (s ExecutionStatus) Succeeded() bool {
	switch s {
	case StatusSuccess, StatusCreated, StatusRescheduled:
		return true
	}
	return false
}

// BlockKind classifies a calendar block.
type BlockKind string

const (
	BlockMeeting   BlockKind = "meeting"
	BlockTask      BlockKind = "task"
	BlockFocusTime BlockKind = "focus_time"
	BlockBreak     BlockKind = "break"
	BlockBuffer    BlockKind = "buffer"
)

type TaskStatus string

const (
	TaskPending    TaskStatus = "pending"
	TaskInProgress TaskStatus = "in_progress"
	TaskCompleted  TaskStatus = "completed"
	TaskCancelled  TaskStatus = "cancelled"
)

// FocusQuality labels an optimal focus window.
type FocusQuality string

const (
	FocusHigh   FocusQuality = "high"
	FocusMedium FocusQuality = "medium"
)
