package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dmarchetti/tempo/internal/domain"
	"github.com/dmarchetti/tempo/internal/repository"
)

// ingestService records raw productivity signals. The engine only reads what
// came in through here (or through an upstream sync), so validation is strict
// where the pipeline depends on a field.
type ingestService struct {
	sessions  repository.SessionRepo
	calendar  repository.CalendarRepo
	tasks     repository.TaskRepo
	goals     repository.GoalRepo
	deadlines repository.DeadlineRepo
	projects  repository.ProjectRepo
}

func NewIngestService(
	sessions repository.SessionRepo,
	calendar repository.CalendarRepo,
	tasks repository.TaskRepo,
	goals repository.GoalRepo,
	deadlines repository.DeadlineRepo,
	projects repository.ProjectRepo,
) IngestService {
	return &ingestService{
		sessions:  sessions,
		calendar:  calendar,
		tasks:     tasks,
		goals:     goals,
		deadlines: deadlines,
		projects:  projects,
	}
}

func (s *ingestService) LogSession(ctx context.Context, session *domain.FocusSession) error {
	if session.UserID == "" {
		return fmt.Errorf("session requires a user id")
	}
	if session.FocusScore < 0 || session.FocusScore > 1 {
		return fmt.Errorf("focus score %.2f outside [0,1]", session.FocusScore)
	}
	if !session.CompletedAt.After(session.StartedAt) {
		return fmt.Errorf("session must complete after it starts")
	}
	if session.ID == "" {
		session.ID = uuid.New().String()
	}
	if session.Minutes <= 0 {
		session.Minutes = int(session.CompletedAt.Sub(session.StartedAt).Minutes())
	}
	session.CreatedAt = time.Now().UTC()
	return s.sessions.Create(ctx, session)
}

func (s *ingestService) AddEvent(ctx context.Context, event *domain.CalendarEvent) error {
	if event.UserID == "" || event.Title == "" {
		return fmt.Errorf("event requires a user id and title")
	}
	if !event.EndTime.After(event.StartTime) {
		return fmt.Errorf("event must end after it starts")
	}
	if event.Kind == "" {
		event.Kind = domain.BlockMeeting
	}
	if event.ID == "" {
		event.ID = uuid.New().String()
	}
	event.CreatedAt = time.Now().UTC()
	return s.calendar.Create(ctx, event)
}

func (s *ingestService) AddTask(ctx context.Context, task *domain.Task) error {
	if task.UserID == "" || task.Title == "" {
		return fmt.Errorf("task requires a user id and title")
	}
	if task.Status == "" {
		task.Status = domain.TaskPending
	}
	if task.Priority == "" {
		task.Priority = domain.PriorityMedium
	}
	if task.ID == "" {
		task.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	task.CreatedAt = now
	task.UpdatedAt = now
	return s.tasks.Create(ctx, task)
}

func (s *ingestService) AddGoal(ctx context.Context, goal *domain.Goal) error {
	if goal.UserID == "" || goal.Title == "" {
		return fmt.Errorf("goal requires a user id and title")
	}
	if goal.ID == "" {
		goal.ID = uuid.New().String()
	}
	goal.CreatedAt = time.Now().UTC()
	return s.goals.Create(ctx, goal)
}

func (s *ingestService) AddDeadline(ctx context.Context, deadline *domain.Deadline) error {
	if deadline.UserID == "" || deadline.Title == "" {
		return fmt.Errorf("deadline requires a user id and title")
	}
	if deadline.Date.IsZero() {
		return fmt.Errorf("deadline requires a date")
	}
	if deadline.ID == "" {
		deadline.ID = uuid.New().String()
	}
	deadline.CreatedAt = time.Now().UTC()
	return s.deadlines.Create(ctx, deadline)
}

func (s *ingestService) AddProject(ctx context.Context, project *domain.Project) error {
	if project.UserID == "" || project.Name == "" {
		return fmt.Errorf("project requires a user id and name")
	}
	if project.ID == "" {
		project.ID = uuid.New().String()
	}
	project.CreatedAt = time.Now().UTC()
	return s.projects.Create(ctx, project)
}
