package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/smartly/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActivityRepo_ListSinceWindow(t *testing.T) {
	repo := NewSQLiteActivityRepo(testutil.NewTestDB(t))
	ctx := context.Background()
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	old := testutil.NewTestCompletion("u1", "w-old", now.AddDate(0, 0, -30))
	recent := testutil.NewTestCompletion("u1", "w-recent", now.AddDate(0, 0, -2), testutil.WithCompletionCategory("hiit"))
	latest := testutil.NewTestCompletion("u1", "w-latest", now.Add(-time.Hour), testutil.WithCompletionDuration(45))
	other := testutil.NewTestCompletion("u2", "w-other", now.Add(-time.Hour))
	require.NoError(t, repo.Create(ctx, old))
	require.NoError(t, repo.Create(ctx, recent))
	require.NoError(t, repo.Create(ctx, latest))
	require.NoError(t, repo.Create(ctx, other))

	got, err := repo.ListSince(ctx, "u1", now.AddDate(0, 0, -14))
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "w-latest", got[0].ContentID)
	assert.Equal(t, 45, got[0].DurationMin)
	assert.Equal(t, "w-recent", got[1].ContentID)
	assert.Equal(t, "hiit", got[1].Category)
}

func TestActivityRepo_ListSinceComparesInUTC(t *testing.T) {
	repo := NewSQLiteActivityRepo(testutil.NewTestDB(t))
	ctx := context.Background()
	tz := time.FixedZone("UTC+5", 5*3600)

	at := time.Date(2025, 6, 15, 3, 0, 0, 0, tz) // 2025-06-14 22:00 UTC
	require.NoError(t, repo.Create(ctx, testutil.NewTestCompletion("u1", "w1", at)))

	got, err := repo.ListSince(ctx, "u1", time.Date(2025, 6, 14, 21, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Len(t, got, 1)

	got, err = repo.ListSince(ctx, "u1", time.Date(2025, 6, 14, 23, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Empty(t, got)
}
