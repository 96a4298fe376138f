package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmarchetti/tempo/internal/contract"
	"github.com/dmarchetti/tempo/internal/domain"
	"github.com/dmarchetti/tempo/internal/engine"
	"github.com/dmarchetti/tempo/internal/repository"
	"github.com/dmarchetti/tempo/internal/testutil"
)

type testRepos struct {
	sessions  repository.SessionRepo
	calendar  repository.CalendarRepo
	tasks     repository.TaskRepo
	goals     repository.GoalRepo
	deadlines repository.DeadlineRepo
	projects  repository.ProjectRepo
	cache     repository.RunCacheRepo
}

func setupRepos(t *testing.T) testRepos {
	database := testutil.NewTestDB(t)
	return testRepos{
		sessions:  repository.NewSQLiteSessionRepo(database),
		calendar:  repository.NewSQLiteCalendarRepo(database),
		tasks:     repository.NewSQLiteTaskRepo(database),
		goals:     repository.NewSQLiteGoalRepo(database),
		deadlines: repository.NewSQLiteDeadlineRepo(database),
		projects:  repository.NewSQLiteProjectRepo(database),
		cache:     repository.NewSQLiteRunCacheRepo(database),
	}
}

func newRunService(r testRepos, cfg engine.Config) RunService {
	return NewRunService(r.sessions, r.calendar, r.tasks, r.goals, r.deadlines, r.projects, r.cache, cfg)
}

// Monday 2026-03-02 08:00 UTC.
var runNow = time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)

// seedMorningPattern writes sessions that make 9 and 10 peak hours and 13 a
// low-energy hour.
func seedMorningPattern(t *testing.T, r testRepos, userID string) {
	t.Helper()
	ctx := context.Background()
	for _, daysAgo := range []int{7, 14} {
		base := runNow.AddDate(0, 0, -daysAgo)
		at := func(hour int) time.Time {
			return time.Date(base.Year(), base.Month(), base.Day(), hour, 0, 0, 0, time.UTC)
		}
		require.NoError(t, r.sessions.Create(ctx, testutil.NewTestSession(userID, at(9), 0.9)))
		require.NoError(t, r.sessions.Create(ctx, testutil.NewTestSession(userID, at(10), 0.9)))
		require.NoError(t, r.sessions.Create(ctx, testutil.NewTestSession(userID, at(13), 0.2)))
	}
}

func optimizeRequest(userID string) contract.RunRequest {
	now := runNow
	req := contract.NewOptimizeRequest(userID,
		time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC),
	)
	req.Now = &now
	return req
}

func TestRun_ScheduleOptimization_EndToEnd(t *testing.T) {
	repos := setupRepos(t)
	ctx := context.Background()
	seedMorningPattern(t, repos, "u1")

	deepWork := testutil.NewTestEvent("u1", "Deep work", runNow.Add(5*time.Hour), // 13:00
		testutil.WithKind(domain.BlockTask),
		testutil.WithEnergyRequirement(0.9),
	)
	sync := testutil.NewTestEvent("u1", "Sync", runNow.Add(time.Hour), testutil.WithImportance(0.5))      // 09:00
	review := testutil.NewTestEvent("u1", "Review", runNow.Add(8*time.Hour), testutil.WithImportance(0.5)) // 16:00
	for _, e := range []*domain.CalendarEvent{deepWork, sync, review} {
		require.NoError(t, repos.calendar.Create(ctx, e))
	}

	svc := newRunService(repos, engine.DefaultConfig())
	result, err := svc.Run(ctx, optimizeRequest("u1"))
	require.NoError(t, err)

	assert.Equal(t, domain.FeatureScheduleOptimization, result.Feature)
	assert.Equal(t, runNow, result.GeneratedAt)
	assert.Empty(t, result.Warnings)

	// The focus block (impact 0.8) and the task reschedule (0.7) clear the
	// gate; the meeting move (confidence exactly 0.8) and the consolidation
	// (0.7) remain suggestions.
	require.Len(t, result.Executed, 2)
	block, reschedule := result.Executed[0], result.Executed[1]

	assert.Equal(t, domain.ActionBlockFocusTime, block.Action)
	assert.Equal(t, domain.StatusCreated, block.Status)
	assert.NotEmpty(t, block.CreatedTaskID)
	assert.Equal(t, 120, block.DurationMin)

	assert.Equal(t, domain.ActionRescheduleLowEnergyTask, reschedule.Action)
	assert.Equal(t, domain.StatusRescheduled, reschedule.Status)

	suggestedActions := make([]domain.ActionType, 0, len(result.Suggested))
	for _, s := range result.Suggested {
		suggestedActions = append(suggestedActions, s.Action)
	}
	assert.Equal(t, []domain.ActionType{
		domain.ActionMoveMeetingFromPeak,
		domain.ActionConsolidateMeetings,
	}, suggestedActions)

	// Side effects landed: focus block task exists, the deep-work block
	// moved to the strongest peak hour with its duration preserved.
	created, err := repos.tasks.GetByID(ctx, block.CreatedTaskID)
	require.NoError(t, err)
	assert.Equal(t, "Focus Block", created.Title)
	assert.True(t, created.AutoGenerated)

	events, err := repos.calendar.ListEvents(ctx, "u1", runNow.Add(-24*time.Hour), runNow.Add(24*time.Hour))
	require.NoError(t, err)
	var moved *domain.CalendarEvent
	for i := range events {
		if events[i].ID == deepWork.ID {
			moved = &events[i]
		}
	}
	require.NotNil(t, moved)
	assert.Equal(t, 9, moved.StartTime.Hour())
	assert.Equal(t, 60, moved.DurationMin())

	assert.Equal(t, 2, result.Impact.ExecutedCount)
	assert.Equal(t, 2, result.Impact.SuccessfulCount)
	assert.InDelta(t, 1.5, result.Impact.TotalProductivityGain, 1e-9)
	assert.InDelta(t, 0.875, result.Impact.AverageConfidence, 1e-9)
	assert.Equal(t, 120, result.Impact.FocusTimeGainedMin)
}

func TestRun_TaskPrediction_ScanWindowLimitsAutoCreation(t *testing.T) {
	repos := setupRepos(t)
	ctx := context.Background()

	// Deadline within a day ranks first; the client call's follow-up ranks
	// second; its prep task third but below the confidence gate; the goal's
	// urgent push is confident enough yet falls outside the top-3 scan.
	require.NoError(t, repos.deadlines.Create(ctx,
		testutil.NewTestDeadline("u1", "Tax filing", runNow.Add(30*time.Hour))))
	require.NoError(t, repos.goals.Create(ctx,
		testutil.NewTestGoal("u1", "Thesis", "project", testutil.WithGoalDeadline(runNow.Add(30*time.Hour)))))
	require.NoError(t, repos.calendar.Create(ctx,
		testutil.NewTestEvent("u1", "Client call", runNow.Add(24*time.Hour), testutil.WithImportance(0.9))))

	now := runNow
	req := contract.NewPredictRequest("u1")
	req.Now = &now

	svc := newRunService(repos, engine.DefaultConfig())
	result, err := svc.Run(ctx, req)
	require.NoError(t, err)
	assert.Empty(t, result.Warnings)

	require.Len(t, result.Executed, 2)
	assert.Equal(t, "URGENT PREP: Tax filing", result.Executed[0].Title)
	assert.Equal(t, "Follow up on Client call", result.Executed[1].Title)
	for _, exec := range result.Executed {
		assert.Equal(t, domain.StatusCreated, exec.Status)
		assert.NotEmpty(t, exec.CreatedTaskID)

		task, err := repos.tasks.GetByID(ctx, exec.CreatedTaskID)
		require.NoError(t, err)
		assert.True(t, task.AutoGenerated)
	}

	suggestedTitles := make(map[string]bool)
	for _, s := range result.Suggested {
		suggestedTitles[s.Title] = true
	}
	assert.True(t, suggestedTitles["Prepare for Client call"], "below confidence gate")
	assert.True(t, suggestedTitles["URGENT: Final push for Thesis"], "outside scan window")
}

func TestRun_ResultIsCached(t *testing.T) {
	repos := setupRepos(t)
	ctx := context.Background()
	seedMorningPattern(t, repos, "u1")

	svc := newRunService(repos, engine.DefaultConfig())
	result, err := svc.Run(ctx, optimizeRequest("u1"))
	require.NoError(t, err)

	cached, err := svc.CachedResult(ctx, "u1", domain.FeatureScheduleOptimization)
	require.NoError(t, err)
	assert.Equal(t, result.Feature, cached.Feature)
	assert.Equal(t, result.Impact, cached.Impact)
	assert.Len(t, cached.Executed, len(result.Executed))

	// Other feature and other user stay empty.
	_, err = svc.CachedResult(ctx, "u1", domain.FeatureTaskPrediction)
	assert.ErrorIs(t, err, repository.ErrNotFound)
	_, err = svc.CachedResult(ctx, "u2", domain.FeatureScheduleOptimization)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestRun_CacheExpires(t *testing.T) {
	repos := setupRepos(t)
	ctx := context.Background()

	cfg := engine.DefaultConfig()
	cfg.CacheTTL = time.Millisecond

	svc := newRunService(repos, cfg)
	_, err := svc.Run(ctx, optimizeRequest("u1"))
	require.NoError(t, err)

	time.Sleep(20 * time.Millisecond)

	_, err = svc.CachedResult(ctx, "u1", domain.FeatureScheduleOptimization)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestRun_RequestValidation(t *testing.T) {
	repos := setupRepos(t)
	svc := newRunService(repos, engine.DefaultConfig())

	var runErr *contract.RunError

	_, err := svc.Run(context.Background(), contract.RunRequest{Feature: domain.FeatureTaskPrediction})
	require.ErrorAs(t, err, &runErr)
	assert.Equal(t, contract.ErrMissingUser, runErr.Code)

	_, err = svc.Run(context.Background(), contract.RunRequest{UserID: "u1", Feature: "mind_reading"})
	require.ErrorAs(t, err, &runErr)
	assert.Equal(t, contract.ErrInvalidFeature, runErr.Code)

	bad := contract.NewOptimizeRequest("u1", runNow, runNow)
	_, err = svc.Run(context.Background(), bad)
	require.ErrorAs(t, err, &runErr)
	assert.Equal(t, contract.ErrInvalidWindow, runErr.Code)
}

func TestRun_FocusHistoryFailureDegradesToDefaultPattern(t *testing.T) {
	repos := setupRepos(t)
	repos.sessions = &testutil.FailingSessionRepo{Err: errors.New("store offline")}

	svc := newRunService(repos, engine.DefaultConfig())
	result, err := svc.Run(context.Background(), optimizeRequest("u1"))
	require.NoError(t, err, "a degraded data source never fails the run")

	require.NotEmpty(t, result.Warnings)
	assert.Contains(t, result.Warnings[0], "focus history unavailable")

	// With the default pattern and an empty calendar, the only candidate is
	// the default focus window's block proposal.
	require.NotEmpty(t, result.Executed)
	assert.Equal(t, domain.ActionBlockFocusTime, result.Executed[0].Action)
}

func TestRun_CacheWriteFailureIsNonFatal(t *testing.T) {
	repos := setupRepos(t)
	repos.cache = &testutil.FailingRunCache{Err: errors.New("cache down")}

	svc := newRunService(repos, engine.DefaultConfig())
	result, err := svc.Run(context.Background(), optimizeRequest("u1"))
	require.NoError(t, err)

	require.NotEmpty(t, result.Warnings)
	assert.Contains(t, result.Warnings[len(result.Warnings)-1], "result cache write failed")
}

func TestRun_ExecutorFailureRecordsFailedAndContinues(t *testing.T) {
	repos := setupRepos(t)
	ctx := context.Background()
	seedMorningPattern(t, repos, "u1")

	deepWork := testutil.NewTestEvent("u1", "Deep work", runNow.Add(5*time.Hour),
		testutil.WithKind(domain.BlockTask),
		testutil.WithEnergyRequirement(0.9),
	)
	require.NoError(t, repos.calendar.Create(ctx, deepWork))

	// Task creation fails, so the focus block lands as failed while the
	// later reschedule still goes through.
	repos.tasks = &testutil.FailingTaskRepo{Err: errors.New("task store down")}

	svc := newRunService(repos, engine.DefaultConfig())
	result, err := svc.Run(ctx, optimizeRequest("u1"))
	require.NoError(t, err)

	require.Len(t, result.Executed, 2)
	block, reschedule := result.Executed[0], result.Executed[1]

	assert.Equal(t, domain.ActionBlockFocusTime, block.Action)
	assert.Equal(t, domain.StatusFailed, block.Status)
	assert.Contains(t, block.Error, "task store down")
	assert.Zero(t, block.ProductivityGainEstimate)

	assert.Equal(t, domain.StatusRescheduled, reschedule.Status)

	assert.Equal(t, 2, result.Impact.ExecutedCount)
	assert.Equal(t, 1, result.Impact.SuccessfulCount)
	assert.Zero(t, result.Impact.FocusTimeGainedMin)
}

func TestRun_RepeatedRunsRankIdentically(t *testing.T) {
	repos := setupRepos(t)
	ctx := context.Background()
	seedMorningPattern(t, repos, "u1")

	// Every prediction source contributes candidates, so the ranking mixes
	// four generators' output with plenty of equal-score ties.
	require.NoError(t, repos.calendar.Create(ctx,
		testutil.NewTestEvent("u1", "Client call", runNow.Add(24*time.Hour), testutil.WithImportance(0.9))))
	require.NoError(t, repos.calendar.Create(ctx,
		testutil.NewTestEvent("u1", "Standup", runNow.Add(2*time.Hour), testutil.WithRecurring())))
	require.NoError(t, repos.goals.Create(ctx,
		testutil.NewTestGoal("u1", "Learn Go", "learning", testutil.WithGoalDeadline(runNow.AddDate(0, 0, 2)))))
	require.NoError(t, repos.deadlines.Create(ctx,
		testutil.NewTestDeadline("u1", "Tax filing", runNow.Add(30*time.Hour))))
	require.NoError(t, repos.deadlines.Create(ctx,
		testutil.NewTestDeadline("u1", "Conference talk", runNow.AddDate(0, 0, 3))))
	require.NoError(t, repos.projects.Create(ctx,
		testutil.NewTestProject("u1", "Apollo", testutil.WithMilestoneDue(runNow.AddDate(0, 0, 2)))))

	now := runNow
	req := contract.NewPredictRequest("u1")
	req.Now = &now

	svc := newRunService(repos, engine.DefaultConfig())

	titles := func(result *contract.RunResult) (executed, suggested []string) {
		for _, e := range result.Executed {
			executed = append(executed, e.Title)
		}
		for _, s := range result.Suggested {
			suggested = append(suggested, s.Title)
		}
		return executed, suggested
	}

	first, err := svc.Run(ctx, req)
	require.NoError(t, err)
	require.NotEmpty(t, first.Suggested)
	assert.LessOrEqual(t, len(first.Executed), 3)
	wantExecuted, wantSuggested := titles(first)

	for i := 0; i < 10; i++ {
		result, err := svc.Run(ctx, req)
		require.NoError(t, err)

		executed, suggested := titles(result)
		assert.Equal(t, wantExecuted, executed, "run %d", i)
		assert.Equal(t, wantSuggested, suggested, "run %d", i)
	}
}
