package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmarchetti/tempo/internal/domain"
	"github.com/dmarchetti/tempo/internal/testutil"
)

// Monday 2026-03-02 10:00 UTC.
var predictNow = time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)

func predictionContext() *domain.RunContext {
	return &domain.RunContext{
		UserID:  "u1",
		Now:     predictNow,
		Hour:    predictNow.Hour(),
		Weekday: predictNow.Weekday().String(),
		Pattern: DefaultPattern(),
	}
}

func byTitle(out []domain.Candidate, title string) *domain.Candidate {
	for i := range out {
		if out[i].Title == title {
			return &out[i]
		}
	}
	return nil
}

func TestDaysUntil_TruncatesTowardZero(t *testing.T) {
	assert.Equal(t, 1, daysUntil(predictNow.Add(47*time.Hour), predictNow))
	assert.Equal(t, 2, daysUntil(predictNow.Add(48*time.Hour), predictNow))
	assert.Equal(t, 0, daysUntil(predictNow.Add(-6*time.Hour), predictNow))
}

func TestPatternTasks_WeekdayRecurrence(t *testing.T) {
	rctx := predictionContext()
	lastMonday := predictNow.AddDate(0, 0, -7)
	twoMondaysAgo := predictNow.AddDate(0, 0, -14)

	rctx.Recent = []domain.Task{
		*testutil.NewTestTask("u1", "Weekly report",
			testutil.WithTaskStatus(domain.TaskCompleted),
			testutil.WithTaskCreatedAt(lastMonday.Add(4*time.Hour))),
		*testutil.NewTestTask("u1", "weekly report",
			testutil.WithTaskStatus(domain.TaskCompleted),
			testutil.WithTaskCreatedAt(twoMondaysAgo.Add(5*time.Hour))),
		// Only one completion, below the recurrence threshold.
		*testutil.NewTestTask("u1", "One-off cleanup",
			testutil.WithTaskStatus(domain.TaskCompleted),
			testutil.WithTaskCreatedAt(lastMonday.Add(3*time.Hour))),
	}

	out, err := patternTasks{}.Generate(rctx)
	require.NoError(t, err)

	c := byTitle(out, "Weekly report")
	require.NotNil(t, c, "recurring title should be predicted")
	assert.Equal(t, domain.ActionPatternTask, c.Action)
	assert.InDelta(t, 0.5, c.Confidence, 1e-9) // 2 completions out of 4 weeks
	assert.Equal(t, domain.SourcePattern, c.Source)

	assert.Nil(t, byTitle(out, "One-off cleanup"))
}

func TestPatternTasks_RecurrenceConfidenceIsCapped(t *testing.T) {
	rctx := predictionContext()
	var recent []domain.Task
	for week := 1; week <= 5; week++ {
		recent = append(recent, *testutil.NewTestTask("u1", "Weekly report",
			testutil.WithTaskStatus(domain.TaskCompleted),
			testutil.WithTaskCreatedAt(predictNow.AddDate(0, 0, -7*week).Add(2*time.Hour)),
		))
	}
	rctx.Recent = recent

	out, err := patternTasks{}.Generate(rctx)
	require.NoError(t, err)

	c := byTitle(out, "Weekly report")
	require.NotNil(t, c)
	assert.InDelta(t, 0.95, c.Confidence, 1e-9)
}

func TestPatternTasks_MilestoneWindow(t *testing.T) {
	rctx := predictionContext()
	soon := predictNow.AddDate(0, 0, 2)
	far := predictNow.AddDate(0, 0, 10)
	rctx.Projects = []domain.Project{
		*testutil.NewTestProject("u1", "Apollo", testutil.WithMilestoneDue(soon)),
		*testutil.NewTestProject("u1", "Zeus", testutil.WithMilestoneDue(far)),
		*testutil.NewTestProject("u1", "NoMilestone"),
	}

	out, err := patternTasks{}.Generate(rctx)
	require.NoError(t, err)

	c := byTitle(out, "Prepare for Apollo milestone")
	require.NotNil(t, c)
	assert.InDelta(t, 0.75, c.Confidence, 1e-9)
	require.NotNil(t, c.DueDate)
	assert.Equal(t, soon.Add(-4*time.Hour), *c.DueDate)

	assert.Nil(t, byTitle(out, "Prepare for Zeus milestone"))
}

func TestPatternTasks_StaleIncompleteTask(t *testing.T) {
	rctx := predictionContext()
	rctx.Recent = []domain.Task{
		*testutil.NewTestTask("u1", "Write docs",
			testutil.WithTaskCreatedAt(predictNow.AddDate(0, 0, -5))),
		*testutil.NewTestTask("u1", "Fresh task",
			testutil.WithTaskCreatedAt(predictNow.AddDate(0, 0, -1))),
	}

	out, err := patternTasks{}.Generate(rctx)
	require.NoError(t, err)

	c := byTitle(out, "Follow up: Write docs")
	require.NotNil(t, c)
	assert.InDelta(t, 0.6, c.Confidence, 1e-9)
	assert.Nil(t, byTitle(out, "Follow up: Fresh task"))
}

func TestCalendarTasks_PrepFollowUpAndReview(t *testing.T) {
	rctx := predictionContext()
	clientCall := testutil.NewTestEvent("u1", "Client call", predictNow.AddDate(0, 0, 1),
		testutil.WithImportance(0.9))
	standup := testutil.NewTestEvent("u1", "Standup", predictNow.AddDate(0, 0, 1),
		testutil.WithRecurring())
	casual := testutil.NewTestEvent("u1", "Coffee chat", predictNow.AddDate(0, 0, 2),
		testutil.WithImportance(0.3))
	rctx.Schedule = []domain.CalendarEvent{*clientCall, *standup, *casual}

	out, err := calendarTasks{}.Generate(rctx)
	require.NoError(t, err)

	prep := byTitle(out, "Prepare for Client call")
	require.NotNil(t, prep)
	assert.InDelta(t, 0.8, prep.Confidence, 1e-9)
	require.NotNil(t, prep.DueDate)
	assert.Equal(t, clientCall.StartTime.Add(-2*time.Hour), *prep.DueDate)

	followUp := byTitle(out, "Follow up on Client call")
	require.NotNil(t, followUp)
	assert.InDelta(t, 0.9, followUp.Confidence, 1e-9)
	assert.Equal(t, clientCall.EndTime.Add(4*time.Hour), *followUp.DueDate)

	review := byTitle(out, "Review outcomes from Standup")
	require.NotNil(t, review)
	assert.InDelta(t, 0.7, review.Confidence, 1e-9)

	assert.Nil(t, byTitle(out, "Prepare for Coffee chat"))
	assert.Nil(t, byTitle(out, "Follow up on Standup"), "recurring meetings get reviews, not follow-ups")
}

func TestGoalTasks_KindsAndUrgencyTiers(t *testing.T) {
	rctx := predictionContext()
	in2 := predictNow.AddDate(0, 0, 2)
	in20 := predictNow.AddDate(0, 0, 20)
	rctx.Goals = []domain.Goal{
		*testutil.NewTestGoal("u1", "Learn Go", "learning", testutil.WithGoalDeadline(in2)),
		*testutil.NewTestGoal("u1", "Ship v2", "project", testutil.WithGoalDeadline(in20)),
		*testutil.NewTestGoal("u1", "Meditate daily", "habit"),
	}

	out, err := goalTasks{}.Generate(rctx)
	require.NoError(t, err)

	study := byTitle(out, "Study session: Learn Go")
	require.NotNil(t, study)
	assert.Equal(t, 50, study.DurationMin)

	work := byTitle(out, "Work on: Ship v2")
	require.NotNil(t, work)
	assert.Equal(t, 75, work.DurationMin)

	urgent := byTitle(out, "URGENT: Final push for Learn Go")
	require.NotNil(t, urgent)
	assert.InDelta(t, 0.9, urgent.Confidence, 1e-9) // 2-day tier
	assert.Equal(t, domain.PriorityHigh, urgent.Priority)

	assert.Nil(t, byTitle(out, "URGENT: Final push for Ship v2"))
	// No deadline means no goal predictions at all.
	assert.Nil(t, byTitle(out, "Review progress on: Meditate daily"))
}

func TestGoalTasks_FinalDayIsCritical(t *testing.T) {
	rctx := predictionContext()
	tomorrow := predictNow.Add(20 * time.Hour)
	rctx.Goals = []domain.Goal{
		*testutil.NewTestGoal("u1", "Thesis", "project", testutil.WithGoalDeadline(tomorrow)),
	}

	out, err := goalTasks{}.Generate(rctx)
	require.NoError(t, err)

	// Under 24 hours truncates to zero days and the goal is skipped, the
	// same as an already-passed deadline.
	assert.Empty(t, out)
}

func TestGoalTasks_OneDayTier(t *testing.T) {
	rctx := predictionContext()
	rctx.Goals = []domain.Goal{
		*testutil.NewTestGoal("u1", "Thesis", "project",
			testutil.WithGoalDeadline(predictNow.Add(30*time.Hour))),
	}

	out, err := goalTasks{}.Generate(rctx)
	require.NoError(t, err)

	urgent := byTitle(out, "URGENT: Final push for Thesis")
	require.NotNil(t, urgent)
	assert.InDelta(t, 0.95, urgent.Confidence, 1e-9)
	assert.Equal(t, domain.PriorityCritical, urgent.Priority)
	assert.Equal(t, 90, urgent.DurationMin)
}

func TestDeadlineTasks_UrgencyTiers(t *testing.T) {
	rctx := predictionContext()
	rctx.Deadlines = []domain.Deadline{
		*testutil.NewTestDeadline("u1", "Tax filing", predictNow.Add(30*time.Hour)),
		*testutil.NewTestDeadline("u1", "Conference talk", predictNow.AddDate(0, 0, 3)),
		*testutil.NewTestDeadline("u1", "Quarterly report", predictNow.AddDate(0, 0, 6)),
		*testutil.NewTestDeadline("u1", "Missed already", predictNow.Add(-2*time.Hour)),
	}

	out, err := deadlineTasks{}.Generate(rctx)
	require.NoError(t, err)

	urgent := byTitle(out, "URGENT PREP: Tax filing")
	require.NotNil(t, urgent)
	assert.InDelta(t, 0.95, urgent.Confidence, 1e-9)
	assert.Equal(t, domain.PriorityCritical, urgent.Priority)
	assert.Equal(t, 60, urgent.DurationMin)

	prepare := byTitle(out, "Prepare for: Conference talk")
	require.NotNil(t, prepare)
	assert.InDelta(t, 0.85, prepare.Confidence, 1e-9)

	plan := byTitle(out, "Plan approach for: Quarterly report")
	require.NotNil(t, plan)
	assert.InDelta(t, 0.7, plan.Confidence, 1e-9)

	for _, c := range out {
		assert.NotContains(t, c.Title, "Missed already")
	}
}

func TestDeadlineTasks_ComplexDeadlineGetsBuffer(t *testing.T) {
	rctx := predictionContext()
	date := predictNow.AddDate(0, 0, 3)
	rctx.Deadlines = []domain.Deadline{
		*testutil.NewTestDeadline("u1", "Migration", date, testutil.WithComplexity(0.9)),
	}

	out, err := deadlineTasks{}.Generate(rctx)
	require.NoError(t, err)

	buffer := byTitle(out, "Buffer time: Migration")
	require.NotNil(t, buffer)
	assert.InDelta(t, 0.6, buffer.Confidence, 1e-9)
	require.NotNil(t, buffer.DueDate)
	assert.Equal(t, date.AddDate(0, 0, -1), *buffer.DueDate)
}
