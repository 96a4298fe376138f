package service

import (
	"context"
	"fmt"
	"time"

	"github.com/dmarchetti/tempo/internal/contract"
	"github.com/dmarchetti/tempo/internal/domain"
	"github.com/dmarchetti/tempo/internal/engine"
	"github.com/dmarchetti/tempo/internal/repository"
)

type insightService struct {
	sessions repository.SessionRepo
	calendar repository.CalendarRepo
	cfg      engine.Config
	observer UseCaseObserver
}

func NewInsightService(
	sessions repository.SessionRepo,
	calendar repository.CalendarRepo,
	cfg engine.Config,
	observers ...UseCaseObserver,
) InsightService {
	return &insightService{
		sessions: sessions,
		calendar: calendar,
		cfg:      cfg,
		observer: useCaseObserverOrNoop(observers),
	}
}

// SuggestMeetingTime proposes a slot for a new meeting: a non-peak working
// hour with moderate productivity, which suits collaboration better than a
// deep-work window.
func (s *insightService) SuggestMeetingTime(ctx context.Context, userID string, durationMin int, now time.Time) (*contract.MeetingSuggestion, error) {
	if durationMin <= 0 {
		return nil, fmt.Errorf("meeting duration must be positive, got %d", durationMin)
	}

	pattern, err := s.loadPattern(ctx, userID, now)
	if err != nil {
		return nil, err
	}

	hour := engine.MeetingAlternativeHour(now.Hour(), pattern)
	suggested := time.Date(now.Year(), now.Month(), now.Day(), hour, 0, 0, 0, now.Location())

	return &contract.MeetingSuggestion{
		SuggestedTime: suggested,
		AlternativeTimes: []time.Time{
			suggested.Add(time.Hour),
			suggested.Add(2 * time.Hour),
		},
		Confidence: 0.8,
		Reasoning:  fmt.Sprintf("Optimal for meetings (avoids peak focus hours: %v)", pattern.PeakHours),
	}, nil
}

// ProductivityCalendar renders one day as 24 pattern-annotated hours.
func (s *insightService) ProductivityCalendar(ctx context.Context, userID string, day time.Time) (*contract.ProductivityCalendar, error) {
	pattern, err := s.loadPattern(ctx, userID, day)
	if err != nil {
		return nil, err
	}

	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	schedule, err := s.calendar.ListEvents(ctx, userID, dayStart, dayStart.AddDate(0, 0, 1))
	if err != nil {
		return nil, fmt.Errorf("loading schedule: %w", err)
	}

	cal := &contract.ProductivityCalendar{
		Date:                dayStart,
		Hours:               make([]contract.HourView, 0, 24),
		OptimalFocusWindows: pattern.OptimalFocusWindows,
		DailyProductivity:   dailyScore(pattern, dayStart),
	}
	for hour := 0; hour < 24; hour++ {
		view := contract.HourView{
			Hour:              hour,
			ProductivityScore: pattern.HourScore(hour),
			EnergyLevel:       energyLevel(hour, pattern),
			Recommendation:    hourRecommendation(hour, pattern),
		}
		if ev := eventAtHour(schedule, hour); ev != nil {
			view.Scheduled = &contract.ScheduledActivity{
				Title:   ev.Title,
				Kind:    ev.Kind,
				Optimal: optimallyScheduled(*ev, pattern),
			}
		}
		cal.Hours = append(cal.Hours, view)
	}
	return cal, nil
}

func (s *insightService) loadPattern(ctx context.Context, userID string, now time.Time) (domain.ProductivityPattern, error) {
	sessions, err := s.sessions.ListCompletedSince(ctx, userID, now.AddDate(0, 0, -s.cfg.LookbackDays))
	if err != nil {
		return domain.ProductivityPattern{}, fmt.Errorf("loading focus history: %w", err)
	}
	return engine.BuildPattern(sessions), nil
}

func eventAtHour(schedule []domain.CalendarEvent, hour int) *domain.CalendarEvent {
	for i := range schedule {
		if schedule[i].StartTime.Hour() == hour {
			return &schedule[i]
		}
	}
	return nil
}

func energyLevel(hour int, p domain.ProductivityPattern) string {
	switch {
	case p.IsPeakHour(hour):
		return "high"
	case p.IsLowEnergyHour(hour):
		return "low"
	default:
		return "medium"
	}
}

// optimallyScheduled checks whether an event sits at a sensible hour for its
// kind: demanding tasks belong in peak hours, meetings outside them.
func optimallyScheduled(ev domain.CalendarEvent, p domain.ProductivityPattern) bool {
	hour := ev.StartTime.Hour()
	switch {
	case ev.Kind == domain.BlockTask && ev.EnergyRequirement > 0.7:
		return p.IsPeakHour(hour)
	case ev.Kind == domain.BlockMeeting:
		return !p.IsPeakHour(hour)
	default:
		return true
	}
}

func hourRecommendation(hour int, p domain.ProductivityPattern) string {
	switch {
	case p.IsPeakHour(hour):
		return "Ideal for deep work and complex tasks"
	case p.IsLowEnergyHour(hour):
		return "Good for meetings, administrative tasks, or breaks"
	default:
		return "Suitable for moderate-intensity work"
	}
}

func dailyScore(p domain.ProductivityPattern, day time.Time) float64 {
	if score, ok := p.Daily[day.Weekday().String()]; ok {
		return score
	}
	return 0.5
}
