package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alexanderramin/smartly/internal/domain"
	"github.com/alexanderramin/smartly/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingContentRepo counts ListVisible calls reaching the backing store.
type countingContentRepo struct {
	ContentRepo
	calls int
	err   error
}

func (c *countingContentRepo) ListVisible(ctx context.Context, ct domain.ContentType) ([]domain.ContentItem, error) {
	c.calls++
	if c.err != nil {
		return nil, c.err
	}
	return c.ContentRepo.ListVisible(ctx, ct)
}

func TestCachedContentCatalog_ServesFromCache(t *testing.T) {
	backing := &countingContentRepo{ContentRepo: NewSQLiteContentRepo(testutil.NewTestDB(t))}
	ctx := context.Background()
	require.NoError(t, backing.Create(ctx, testutil.NewTestContentItem("A")))

	cached := NewCachedContentCatalog(backing, time.Minute)
	first, err := cached.ListVisible(ctx, domain.ContentWorkout)
	require.NoError(t, err)
	second, err := cached.ListVisible(ctx, domain.ContentWorkout)
	require.NoError(t, err)

	assert.Equal(t, 1, backing.calls)
	assert.Equal(t, first, second)
}

func TestCachedContentCatalog_ReturnsCopies(t *testing.T) {
	backing := &countingContentRepo{ContentRepo: NewSQLiteContentRepo(testutil.NewTestDB(t))}
	ctx := context.Background()
	require.NoError(t, backing.Create(ctx, testutil.NewTestContentItem("A")))

	cached := NewCachedContentCatalog(backing, time.Minute)
	first, err := cached.ListVisible(ctx, domain.ContentWorkout)
	require.NoError(t, err)
	first[0].Name = "mutated"

	second, err := cached.ListVisible(ctx, domain.ContentWorkout)
	require.NoError(t, err)
	assert.Equal(t, "A", second[0].Name)
}

func TestCachedContentCatalog_CreateInvalidates(t *testing.T) {
	backing := &countingContentRepo{ContentRepo: NewSQLiteContentRepo(testutil.NewTestDB(t))}
	ctx := context.Background()
	cached := NewCachedContentCatalog(backing, time.Minute)

	items, err := cached.ListVisible(ctx, domain.ContentWorkout)
	require.NoError(t, err)
	assert.Empty(t, items)

	require.NoError(t, cached.Create(ctx, testutil.NewTestContentItem("B")))

	items, err = cached.ListVisible(ctx, domain.ContentWorkout)
	require.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Equal(t, 2, backing.calls)
}

func TestCachedContentCatalog_ErrorsAreNotCached(t *testing.T) {
	backing := &countingContentRepo{ContentRepo: NewSQLiteContentRepo(testutil.NewTestDB(t)), err: errors.New("disk gone")}
	ctx := context.Background()
	cached := NewCachedContentCatalog(backing, time.Minute)

	_, err := cached.ListVisible(ctx, domain.ContentWorkout)
	require.Error(t, err)

	backing.err = nil
	_, err = cached.ListVisible(ctx, domain.ContentWorkout)
	require.NoError(t, err)
	assert.Equal(t, 2, backing.calls)
}
