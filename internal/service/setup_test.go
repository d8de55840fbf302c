package service

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/alexanderramin/smartly/internal/domain"
	"github.com/alexanderramin/smartly/internal/repository"
	"github.com/alexanderramin/smartly/internal/suggest"
	"github.com/alexanderramin/smartly/internal/testutil"
	"github.com/stretchr/testify/require"
)

var svcNow = time.Date(2025, 6, 15, 18, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return svcNow }

// testEnv wires the real SQLite stores behind the suggestion services.
type testEnv struct {
	db           *sql.DB
	content      *repository.SQLiteContentRepo
	goals        *repository.SQLiteFitnessGoalRepo
	measurements *repository.SQLiteMeasurementGoalRepo
	activity     *repository.SQLiteActivityRepo
	interactions *repository.SQLiteInteractionRepo
	logs         *AsyncInteractionLogger
	logBuf       *bytes.Buffer
	svc          SuggestService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	database := testutil.NewTestDB(t)
	env := &testEnv{
		db:           database,
		content:      repository.NewSQLiteContentRepo(database),
		goals:        repository.NewSQLiteFitnessGoalRepo(database),
		measurements: repository.NewSQLiteMeasurementGoalRepo(database),
		activity:     repository.NewSQLiteActivityRepo(database),
		interactions: repository.NewSQLiteInteractionRepo(database),
		logBuf:       &bytes.Buffer{},
	}
	logger := slog.New(slog.NewTextHandler(env.logBuf, nil))
	env.logs = NewAsyncInteractionLogger(env.interactions, logger, time.Second)
	t.Cleanup(env.logs.Wait)

	agg := NewContextAggregator(env.goals, env.measurements, env.activity, logger, WithClock(fixedClock))
	env.svc = NewSuggestService(agg, suggest.NewEngine(suggest.DefaultWeights()), env.content, env.logs,
		WithSuggestClock(fixedClock), WithSuggestLogger(logger))
	return env
}

func (e *testEnv) seedItems(t *testing.T, items ...*domain.ContentItem) {
	t.Helper()
	for _, it := range items {
		require.NoError(t, e.content.Create(context.Background(), it))
	}
}

func (e *testEnv) seedCompletions(t *testing.T, userID string, daysAgo ...int) {
	t.Helper()
	for i, d := range daysAgo {
		c := testutil.NewTestCompletion(userID, fmt.Sprintf("done-%d", i), svcNow.AddDate(0, 0, -d).Add(-time.Hour))
		require.NoError(t, e.activity.Create(context.Background(), c))
	}
}

// interactionCount flushes pending writes and counts stored logs.
func (e *testEnv) interactionCount(t *testing.T) int {
	t.Helper()
	e.logs.Wait()
	var n int
	require.NoError(t, e.db.QueryRow(`SELECT COUNT(*) FROM suggestion_interactions`).Scan(&n))
	return n
}

var errStoreDown = errors.New("store unavailable")

type failingGoalRepo struct{ repository.FitnessGoalRepo }

func (failingGoalRepo) Latest(context.Context, string) (*domain.FitnessGoal, error) {
	return nil, errStoreDown
}

type failingMeasurementRepo struct{ repository.MeasurementGoalRepo }

func (failingMeasurementRepo) Latest(context.Context, string) (*domain.MeasurementGoal, error) {
	return nil, errStoreDown
}

type failingActivityRepo struct{ repository.ActivityRepo }

func (failingActivityRepo) ListSince(context.Context, string, time.Time) ([]domain.WorkoutCompletion, error) {
	return nil, errStoreDown
}

type failingCatalog struct{}

func (failingCatalog) ListVisible(context.Context, domain.ContentType) ([]domain.ContentItem, error) {
	return nil, errStoreDown
}

// recordingLogger captures log entries synchronously.
type recordingLogger struct {
	entries []*domain.InteractionLog
}

func (r *recordingLogger) Log(_ context.Context, entry *domain.InteractionLog) {
	r.entries = append(r.entries, entry)
}
