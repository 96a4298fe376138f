package service

import (
	"context"
	"time"

	"github.com/dmarchetti/tempo/internal/contract"
	"github.com/dmarchetti/tempo/internal/domain"
)

type RunService interface {
	Run(ctx context.Context, req contract.RunRequest) (*contract.RunResult, error)
	CachedResult(ctx context.Context, userID string, feature domain.Feature) (*contract.RunResult, error)
}

type InsightService interface {
	SuggestMeetingTime(ctx context.Context, userID string, durationMin int, now time.Time) (*contract.MeetingSuggestion, error)
	ProductivityCalendar(ctx context.Context, userID string, day time.Time) (*contract.ProductivityCalendar, error)
}

type IngestService interface {
	LogSession(ctx context.Context, s *domain.FocusSession) error
	AddEvent(ctx context.Context, e *domain.CalendarEvent) error
	AddTask(ctx context.Context, t *domain.Task) error
	AddGoal(ctx context.Context, g *domain.Goal) error
	AddDeadline(ctx context.Context, d *domain.Deadline) error
	AddProject(ctx context.Context, p *domain.Project) error
}
