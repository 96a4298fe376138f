package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmarchetti/tempo/internal/domain"
	"github.com/dmarchetti/tempo/internal/engine"
	"github.com/dmarchetti/tempo/internal/testutil"
)

func newInsightService(r testRepos) InsightService {
	return NewInsightService(r.sessions, r.calendar, engine.DefaultConfig())
}

func TestSuggestMeetingTime_AvoidsPeakHours(t *testing.T) {
	repos := setupRepos(t)
	seedMorningPattern(t, repos, "u1")

	suggestion, err := newInsightService(repos).SuggestMeetingTime(context.Background(), "u1", 30, runNow)
	require.NoError(t, err)

	// 9 and 10 are peaks and 13 scores 0.2; hour 11 at the neutral 0.5 sits
	// closest to the moderate target.
	assert.Equal(t, 11, suggestion.SuggestedTime.Hour())
	assert.Equal(t, runNow.Day(), suggestion.SuggestedTime.Day())

	require.Len(t, suggestion.AlternativeTimes, 2)
	assert.Equal(t, 12, suggestion.AlternativeTimes[0].Hour())
	assert.Equal(t, 13, suggestion.AlternativeTimes[1].Hour())

	assert.InDelta(t, 0.8, suggestion.Confidence, 1e-9)
	assert.Contains(t, suggestion.Reasoning, "peak focus hours")
}

func TestSuggestMeetingTime_RejectsNonPositiveDuration(t *testing.T) {
	repos := setupRepos(t)

	_, err := newInsightService(repos).SuggestMeetingTime(context.Background(), "u1", 0, runNow)
	assert.Error(t, err)
}

func TestSuggestMeetingTime_FocusHistoryFailure(t *testing.T) {
	repos := setupRepos(t)
	repos.sessions = &testutil.FailingSessionRepo{Err: errors.New("store offline")}

	_, err := newInsightService(repos).SuggestMeetingTime(context.Background(), "u1", 30, runNow)
	assert.ErrorContains(t, err, "loading focus history")
}

func TestProductivityCalendar_AnnotatesDay(t *testing.T) {
	repos := setupRepos(t)
	ctx := context.Background()
	seedMorningPattern(t, repos, "u1")

	at := func(hour int) time.Time {
		return time.Date(runNow.Year(), runNow.Month(), runNow.Day(), hour, 0, 0, 0, time.UTC)
	}
	events := []*domain.CalendarEvent{
		testutil.NewTestEvent("u1", "Design review", at(9)), // meeting in a peak hour
		testutil.NewTestEvent("u1", "Standup", at(11)),
		testutil.NewTestEvent("u1", "Deep work", at(13),
			testutil.WithKind(domain.BlockTask),
			testutil.WithEnergyRequirement(0.9),
		),
	}
	for _, e := range events {
		require.NoError(t, repos.calendar.Create(ctx, e))
	}

	cal, err := newInsightService(repos).ProductivityCalendar(ctx, "u1", runNow)
	require.NoError(t, err)

	require.Len(t, cal.Hours, 24)
	assert.Equal(t, at(0), cal.Date)

	nine, thirteen, five := cal.Hours[9], cal.Hours[13], cal.Hours[5]

	assert.InDelta(t, 0.9, nine.ProductivityScore, 1e-9)
	assert.Equal(t, "high", nine.EnergyLevel)
	assert.Equal(t, "Ideal for deep work and complex tasks", nine.Recommendation)
	require.NotNil(t, nine.Scheduled)
	assert.Equal(t, "Design review", nine.Scheduled.Title)
	assert.False(t, nine.Scheduled.Optimal, "meeting occupies a peak hour")

	assert.InDelta(t, 0.2, thirteen.ProductivityScore, 1e-9)
	assert.Equal(t, "low", thirteen.EnergyLevel)
	assert.Equal(t, "Good for meetings, administrative tasks, or breaks", thirteen.Recommendation)
	require.NotNil(t, thirteen.Scheduled)
	assert.False(t, thirteen.Scheduled.Optimal, "demanding task outside peak hours")

	assert.InDelta(t, 0.5, five.ProductivityScore, 1e-9)
	assert.Equal(t, "medium", five.EnergyLevel)
	assert.Equal(t, "Suitable for moderate-intensity work", five.Recommendation)
	assert.Nil(t, five.Scheduled)

	eleven := cal.Hours[11]
	require.NotNil(t, eleven.Scheduled)
	assert.True(t, eleven.Scheduled.Optimal, "meeting outside peak hours")

	require.Len(t, cal.OptimalFocusWindows, 1)
	assert.Equal(t, 9, cal.OptimalFocusWindows[0].StartHour)
	assert.Equal(t, 11, cal.OptimalFocusWindows[0].EndHour)
	assert.Equal(t, domain.FocusHigh, cal.OptimalFocusWindows[0].Quality)

	// All seeded sessions land on Mondays.
	assert.InDelta(t, 2.0/3.0, cal.DailyProductivity, 1e-9)
}

func TestProductivityCalendar_NoHistoryUsesDefaults(t *testing.T) {
	repos := setupRepos(t)

	cal, err := newInsightService(repos).ProductivityCalendar(context.Background(), "u1", runNow)
	require.NoError(t, err)

	require.Len(t, cal.Hours, 24)
	assert.InDelta(t, 0.5, cal.DailyProductivity, 1e-9)
	assert.Equal(t, "high", cal.Hours[9].EnergyLevel)
	assert.Equal(t, "low", cal.Hours[12].EnergyLevel)
	require.NotEmpty(t, cal.OptimalFocusWindows)
	assert.Equal(t, 9, cal.OptimalFocusWindows[0].StartHour)
}
