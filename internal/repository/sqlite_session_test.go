package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmarchetti/tempo/internal/domain"
	"github.com/dmarchetti/tempo/internal/repository"
	"github.com/dmarchetti/tempo/internal/testutil"
)

var baseTime = time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

func TestSessionRepo_ListCompletedSince(t *testing.T) {
	repo := repository.NewSQLiteSessionRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	old := testutil.NewTestSession("u1", baseTime.AddDate(0, 0, -40), 0.4)
	recent := testutil.NewTestSession("u1", baseTime.AddDate(0, 0, -2), 0.9, testutil.WithInterrupted())
	newest := testutil.NewTestSession("u1", baseTime.AddDate(0, 0, -1), 0.7)
	other := testutil.NewTestSession("u2", baseTime.AddDate(0, 0, -1), 0.6)
	for _, s := range []*domain.FocusSession{old, recent, newest, other} {
		require.NoError(t, repo.Create(ctx, s))
	}

	sessions, err := repo.ListCompletedSince(ctx, "u1", baseTime.AddDate(0, 0, -30))
	require.NoError(t, err)

	require.Len(t, sessions, 2)
	assert.Equal(t, recent.ID, sessions[0].ID, "ordered by completion time")
	assert.Equal(t, newest.ID, sessions[1].ID)
	assert.True(t, sessions[0].Interrupted)
	assert.InDelta(t, 0.9, sessions[0].FocusScore, 1e-9)
	assert.Equal(t, 50, sessions[0].Minutes)
	assert.True(t, sessions[0].CompletedAt.Equal(recent.CompletedAt))
}

func TestSessionRepo_EmptyResult(t *testing.T) {
	repo := repository.NewSQLiteSessionRepo(testutil.NewTestDB(t))

	sessions, err := repo.ListCompletedSince(context.Background(), "nobody", baseTime)
	require.NoError(t, err)
	assert.Empty(t, sessions)
}
