package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dmarchetti/tempo/internal/contract"
	"github.com/dmarchetti/tempo/internal/domain"
	"github.com/dmarchetti/tempo/internal/repository"
)

// Executor applies selected candidates one at a time. Each side-effecting
// call goes through a repository; a failure or panic in one step records a
// failed result and the loop continues.
type Executor struct {
	calendar repository.CalendarRepo
	tasks    repository.TaskRepo
}

// Execute runs the selected candidates sequentially in rank order.
func (e *Executor) Execute(ctx context.Context, userID string, selected []domain.ScoredCandidate) []contract.ExecutionResult {
	results := make([]contract.ExecutionResult, 0, len(selected))
	for _, sc := range selected {
		results = append(results, e.executeOne(ctx, userID, sc))
	}
	return results
}

func (e *Executor) executeOne(ctx context.Context, userID string, sc domain.ScoredCandidate) (result contract.ExecutionResult) {
	result = contract.ExecutionResult{
		Action:                   sc.Action,
		Title:                    sc.Title,
		ProductivityGainEstimate: sc.Impact,
		Confidence:               sc.Confidence,
	}
	defer func() {
		if r := recover(); r != nil {
			result.Status = domain.StatusFailed
			result.Error = fmt.Sprintf("panic: %v", r)
			result.ProductivityGainEstimate = 0
			result.DurationMin = 0
		}
	}()

	var err error
	switch sc.Action {
	case domain.ActionMoveMeetingFromPeak:
		err = e.calendar.RequestReschedule(ctx, sc.EventID, *sc.SuggestedTime)
		if err == nil {
			result.Status = domain.StatusSuggested
			result.Message = "Reschedule suggestion sent to meeting organizer"
		}

	case domain.ActionRescheduleLowEnergyTask:
		err = e.calendar.RequestReschedule(ctx, sc.EventID, *sc.SuggestedTime)
		if err == nil {
			result.Status = domain.StatusRescheduled
			result.Message = "Task rescheduled to optimal productivity time"
		}

	case domain.ActionBlockFocusTime:
		var taskID string
		taskID, err = e.createFocusBlock(ctx, userID, sc)
		if err == nil {
			result.Status = domain.StatusCreated
			result.Message = "Focus block created successfully"
			result.CreatedTaskID = taskID
			result.DurationMin = sc.DurationMin
		}

	case domain.ActionConsolidateMeetings:
		result.Status = domain.StatusSuggested
		result.Message = "Meeting consolidation suggestions sent"

	default:
		// Prediction actions all auto-create a task.
		var taskID string
		taskID, err = e.createPredictedTask(ctx, userID, sc)
		if err == nil {
			result.Status = domain.StatusCreated
			result.Message = "Task auto-created from prediction"
			result.CreatedTaskID = taskID
			result.DurationMin = sc.DurationMin
		}
	}

	if err != nil {
		result.Status = domain.StatusFailed
		result.Error = err.Error()
		result.ProductivityGainEstimate = 0
		result.DurationMin = 0
	}
	return result
}

func (e *Executor) createFocusBlock(ctx context.Context, userID string, sc domain.ScoredCandidate) (string, error) {
	now := time.Now().UTC()
	task := &domain.Task{
		ID:            uuid.New().String(),
		UserID:        userID,
		Title:         "Focus Block",
		Description:   "Dedicated focus time - " + sc.Description,
		Status:        domain.TaskPending,
		Priority:      domain.PriorityHigh,
		EstimatedMin:  sc.DurationMin,
		DueDate:       sc.SuggestedTime,
		AutoGenerated: true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := e.tasks.Create(ctx, task); err != nil {
		return "", fmt.Errorf("creating focus block: %w", err)
	}
	return task.ID, nil
}

func (e *Executor) createPredictedTask(ctx context.Context, userID string, sc domain.ScoredCandidate) (string, error) {
	now := time.Now().UTC()
	task := &domain.Task{
		ID:            uuid.New().String(),
		UserID:        userID,
		Title:         sc.Title,
		Description:   sc.Description + "\n\nReasoning: " + sc.Reasoning,
		Status:        domain.TaskPending,
		Priority:      sc.Priority,
		EstimatedMin:  sc.DurationMin,
		DueDate:       sc.DueDate,
		AutoGenerated: true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := e.tasks.Create(ctx, task); err != nil {
		return "", fmt.Errorf("creating predicted task: %w", err)
	}
	return task.ID, nil
}
