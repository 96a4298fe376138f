package testutil

import (
	"context"
	"time"

	"github.com/dmarchetti/tempo/internal/domain"
	"github.com/dmarchetti/tempo/internal/repository"
)

// FailingSessionRepo wraps a SessionRepo and fails every read with Err. This
// drives the degraded-pattern path in pipeline tests: writes still succeed so
// fixtures can be seeded before the failure is switched on.
type FailingSessionRepo struct {
	Inner repository.SessionRepo
	Err   error
}

func (r *FailingSessionRepo) Create(ctx context.Context, s *domain.FocusSession) error {
	return r.Inner.Create(ctx, s)
}

func (r *FailingSessionRepo) ListCompletedSince(context.Context, string, time.Time) ([]*domain.FocusSession, error) {
	return nil, r.Err
}

// FailingRunCache fails every write with Err; reads pass through.
type FailingRunCache struct {
	Inner repository.RunCacheRepo
	Err   error
}

func (c *FailingRunCache) Set(context.Context, string, []byte, time.Duration) error {
	return c.Err
}

func (c *FailingRunCache) Get(ctx context.Context, key string) ([]byte, error) {
	return c.Inner.Get(ctx, key)
}

// FailingTaskRepo fails every Create with Err; reads pass through. It lets
// executor tests exercise the failed-result path without touching the others.
type FailingTaskRepo struct {
	Inner repository.TaskRepo
	Err   error
}

func (r *FailingTaskRepo) Create(context.Context, *domain.Task) error {
	return r.Err
}

func (r *FailingTaskRepo) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	return r.Inner.GetByID(ctx, id)
}

func (r *FailingTaskRepo) ListRecent(ctx context.Context, userID string, days int) ([]domain.Task, error) {
	return r.Inner.ListRecent(ctx, userID, days)
}
