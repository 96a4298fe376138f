package service

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/dmarchetti/tempo/internal/contract"
	"github.com/dmarchetti/tempo/internal/domain"
	"github.com/dmarchetti/tempo/internal/engine"
	"github.com/dmarchetti/tempo/internal/repository"
)

const (
	predictionScheduleDays = 7
	deadlineHorizonDays    = 14
)

// ContextLoader assembles the read-only RunContext for one run. Every load
// failure degrades to an empty slice (or the default pattern) and is recorded
// as a warning; a run never aborts because a data source is unavailable.
type ContextLoader struct {
	sessions  repository.SessionRepo
	calendar  repository.CalendarRepo
	tasks     repository.TaskRepo
	goals     repository.GoalRepo
	deadlines repository.DeadlineRepo
	projects  repository.ProjectRepo
	cfg       engine.Config
}

// Load builds the run context. The returned warnings describe any degraded
// data sources.
func (cl *ContextLoader) Load(ctx context.Context, req contract.RunRequest) (*domain.RunContext, []string) {
	now := time.Now().UTC()
	if req.Now != nil {
		now = req.Now.UTC()
	}

	rctx := &domain.RunContext{
		UserID:  req.UserID,
		Now:     now,
		Hour:    now.Hour(),
		Weekday: now.Weekday().String(),
	}
	var warnings []string

	sessions, err := cl.sessions.ListCompletedSince(ctx, req.UserID, now.AddDate(0, 0, -cl.cfg.LookbackDays))
	if err != nil {
		warnings = append(warnings, fmt.Sprintf("focus history unavailable, using default pattern: %v", err))
		rctx.Pattern = engine.DefaultPattern()
	} else {
		rctx.Pattern = engine.BuildPattern(sessions)
	}

	from, to := req.From, req.To
	if req.Feature == domain.FeatureTaskPrediction {
		from, to = now, now.AddDate(0, 0, predictionScheduleDays)
	}
	rctx.Schedule, err = cl.calendar.ListEvents(ctx, req.UserID, from, to)
	if err != nil {
		warnings = append(warnings, fmt.Sprintf("calendar unavailable: %v", err))
		rctx.Schedule = nil
	}

	if req.Feature == domain.FeatureTaskPrediction {
		rctx.Recent, err = cl.tasks.ListRecent(ctx, req.UserID, cl.cfg.RecentTaskDays)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("task history unavailable: %v", err))
			rctx.Recent = nil
		}
		rctx.Goals, err = cl.goals.ListActive(ctx, req.UserID)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("goals unavailable: %v", err))
			rctx.Goals = nil
		}
		rctx.Deadlines, err = cl.deadlines.ListUpcoming(ctx, req.UserID, now.AddDate(0, 0, deadlineHorizonDays))
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("deadlines unavailable: %v", err))
			rctx.Deadlines = nil
		}
		rctx.Projects, err = cl.projects.ListActive(ctx, req.UserID)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("projects unavailable: %v", err))
			rctx.Projects = nil
		}
	}

	return rctx, warnings
}

// generateCandidates fans the generators out in parallel and reassembles their
// output in declaration order, so equal-score ties later resolve identically
// run to run. A failing or panicking generator contributes nothing; the rest
// of the run proceeds.
func generateCandidates(ctx context.Context, rctx *domain.RunContext, generators []engine.Generator) ([]domain.Candidate, []string) {
	batches := make([][]domain.Candidate, len(generators))
	errs := make([]error, len(generators))

	g, _ := errgroup.WithContext(ctx)
	for i, gen := range generators {
		g.Go(func() error {
			defer func() {
				if r := recover(); r != nil {
					errs[i] = fmt.Errorf("generator panic: %v", r)
				}
			}()
			batch, err := gen.Generate(rctx)
			if err != nil {
				errs[i] = err
				return nil
			}
			batches[i] = batch
			return nil
		})
	}
	_ = g.Wait()

	var candidates []domain.Candidate
	var warnings []string
	for i, gen := range generators {
		if errs[i] != nil {
			warnings = append(warnings, fmt.Sprintf("generator %s failed: %v", gen.Name(), errs[i]))
			continue
		}
		for _, c := range batches[i] {
			if err := c.Validate(); err != nil {
				warnings = append(warnings, fmt.Sprintf("generator %s: dropped invalid candidate: %v", gen.Name(), err))
				continue
			}
			candidates = append(candidates, c)
		}
	}
	return candidates, warnings
}

// summarizeImpact aggregates executed results into the run-level summary.
// Gain and confidence average over every executed result; focus minutes count
// only focus-block creations that actually landed.
func summarizeImpact(executed []contract.ExecutionResult) contract.ImpactSummary {
	summary := contract.ImpactSummary{ExecutedCount: len(executed)}
	for _, r := range executed {
		summary.TotalProductivityGain += r.ProductivityGainEstimate
		summary.AverageConfidence += r.Confidence
		if r.Status.Succeeded() {
			summary.SuccessfulCount++
		}
		if r.Action == domain.ActionBlockFocusTime && r.Status.Succeeded() {
			summary.FocusTimeGainedMin += r.DurationMin
		}
	}
	if summary.ExecutedCount > 0 {
		summary.AverageConfidence /= float64(summary.ExecutedCount)
	}
	return summary
}

func toSuggested(remainder []domain.ScoredCandidate) []contract.SuggestedCandidate {
	suggested := make([]contract.SuggestedCandidate, 0, len(remainder))
	for _, sc := range remainder {
		suggested = append(suggested, contract.SuggestedCandidate{
			Action:          sc.Action,
			Title:           sc.Title,
			Description:     sc.Description,
			Confidence:      sc.Confidence,
			Impact:          sc.Impact,
			ImportanceScore: sc.ImportanceScore,
			Priority:        sc.Priority,
			Source:          sc.Source,
			Reasoning:       sc.Reasoning,
			DueDate:         sc.DueDate,
			SuggestedTime:   sc.SuggestedTime,
			DurationMin:     sc.DurationMin,
		})
	}
	return suggested
}
