package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/dmarchetti/tempo/internal/contract"
	"github.com/dmarchetti/tempo/internal/domain"
	"github.com/dmarchetti/tempo/internal/engine"
	"github.com/dmarchetti/tempo/internal/repository"
)

type runService struct {
	loader   *ContextLoader
	executor *Executor
	cache    repository.RunCacheRepo
	cfg      engine.Config
	observer UseCaseObserver
}

func NewRunService(
	sessions repository.SessionRepo,
	calendar repository.CalendarRepo,
	tasks repository.TaskRepo,
	goals repository.GoalRepo,
	deadlines repository.DeadlineRepo,
	projects repository.ProjectRepo,
	cache repository.RunCacheRepo,
	cfg engine.Config,
	observers ...UseCaseObserver,
) RunService {
	return &runService{
		loader: &ContextLoader{
			sessions:  sessions,
			calendar:  calendar,
			tasks:     tasks,
			goals:     goals,
			deadlines: deadlines,
			projects:  projects,
			cfg:       cfg,
		},
		executor: &Executor{calendar: calendar, tasks: tasks},
		cache:    cache,
		cfg:      cfg,
		observer: useCaseObserverOrNoop(observers),
	}
}

// Run executes one recommendation run end to end. Only request validation can
// fail; degraded data sources, generator failures, executor failures, and
// cache write failures all downgrade to warnings on the result.
func (s *runService) Run(ctx context.Context, req contract.RunRequest) (*contract.RunResult, error) {
	started := time.Now()

	if err := validateRequest(req); err != nil {
		return nil, err
	}

	rctx, warnings := s.loader.Load(ctx, req)

	candidates, genWarnings := generateCandidates(ctx, rctx, engine.Generators(req.Feature))
	warnings = append(warnings, genWarnings...)
	candidates = engine.Dedupe(candidates)

	var ranked []domain.ScoredCandidate
	var policy engine.GatePolicy
	switch req.Feature {
	case domain.FeatureScheduleOptimization:
		ranked = engine.RankByImpact(candidates)
		policy = s.cfg.OptimizationGate
	default:
		ranked = engine.RankByImportance(candidates, rctx.Now)
		policy = s.cfg.PredictionGate
	}

	selected, remainder := engine.SelectForExecution(ranked, policy)
	executed := s.executor.Execute(ctx, req.UserID, selected)

	result := &contract.RunResult{
		UserID:      req.UserID,
		Feature:     req.Feature,
		GeneratedAt: rctx.Now,
		Executed:    executed,
		Suggested:   toSuggested(remainder),
		Impact:      summarizeImpact(executed),
		Warnings:    warnings,
	}

	if err := s.cacheResult(ctx, req, result); err != nil {
		result.Warnings = append(result.Warnings, fmt.Sprintf("result cache write failed: %v", err))
	}

	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      "run_" + string(req.Feature),
		Duration:  time.Since(started),
		Success:   true,
		Degraded:  len(result.Warnings) > 0,
		StartedAt: started,
		Fields: map[string]any{
			"user_id":    req.UserID,
			"candidates": len(candidates),
			"executed":   len(executed),
			"successful": result.Impact.SuccessfulCount,
		},
	})
	return result, nil
}

// CachedResult returns the last run cached for the user and feature, or
// repository.ErrNotFound when nothing fresh is cached.
func (s *runService) CachedResult(ctx context.Context, userID string, feature domain.Feature) (*contract.RunResult, error) {
	payload, err := s.cache.Get(ctx, repository.CacheKey(userID, feature))
	if err != nil {
		return nil, err
	}
	var result contract.RunResult
	if err := json.Unmarshal(payload, &result); err != nil {
		return nil, fmt.Errorf("decoding cached run result: %w", err)
	}
	return &result, nil
}

func (s *runService) cacheResult(ctx context.Context, req contract.RunRequest, result *contract.RunResult) error {
	payload, err := json.Marshal(result)
	if err != nil {
		return err
	}
	return s.cache.Set(ctx, repository.CacheKey(req.UserID, req.Feature), payload, s.cfg.CacheTTL)
}

func validateRequest(req contract.RunRequest) error {
	if req.UserID == "" {
		return &contract.RunError{Code: contract.ErrMissingUser, Message: "user_id is required"}
	}
	switch req.Feature {
	case domain.FeatureScheduleOptimization:
		if !req.To.After(req.From) {
			return &contract.RunError{Code: contract.ErrInvalidWindow, Message: "schedule window must end after it starts"}
		}
	case domain.FeatureTaskPrediction:
	default:
		return &contract.RunError{Code: contract.ErrInvalidFeature, Message: fmt.Sprintf("unknown feature %q", req.Feature)}
	}
	return nil
}
