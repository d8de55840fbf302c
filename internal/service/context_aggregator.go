package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/alexanderramin/smartly/internal/domain"
	"github.com/alexanderramin/smartly/internal/repository"
)

// DefaultActivityWindowDays bounds how far back completions are read.
const DefaultActivityWindowDays = 14

// ContextAggregator assembles a UserContext from the goal, measurement and
// activity stores. It never fails: a store that errors contributes nothing
// and the failure is logged.
type ContextAggregator struct {
	goals        repository.FitnessGoalRepo
	measurements repository.MeasurementGoalRepo
	activity     repository.ActivityRepo
	logger       *slog.Logger
	windowDays   int
	now          func() time.Time
}

type AggregatorOption func(*ContextAggregator)

func WithActivityWindowDays(days int) AggregatorOption {
	return func(a *ContextAggregator) {
		if days > 0 {
			a.windowDays = days
		}
	}
}

// WithClock fixes the aggregator's notion of now.
func WithClock(now func() time.Time) AggregatorOption {
	return func(a *ContextAggregator) {
		a.now = now
	}
}

func NewContextAggregator(
	goals repository.FitnessGoalRepo,
	measurements repository.MeasurementGoalRepo,
	activity repository.ActivityRepo,
	logger *slog.Logger,
	opts ...AggregatorOption,
) *ContextAggregator {
	a := &ContextAggregator{
		goals:        goals,
		measurements: measurements,
		activity:     activity,
		logger:       loggerOrDiscard(logger),
		windowDays:   DefaultActivityWindowDays,
		now:          func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Aggregate reads everything known about userID. An empty userID is an
// anonymous visitor and skips all reads. If ctx ends before the reads
// settle the snapshot is returned still loading.
func (a *ContextAggregator) Aggregate(ctx context.Context, userID string) domain.UserContext {
	now := a.now()
	uc := domain.Loading(userID)
	uc.Activity = domain.SummarizeActivity(nil, now)
	uc.LoadedAt = now
	if userID == "" {
		uc.IsLoading = false
		return uc
	}

	explicit, err := a.goals.Latest(ctx, userID)
	if err != nil {
		a.logger.WarnContext(ctx, "context read failed", "source", "fitness_goals", "user_id", userID, "error", err)
		explicit = nil
	}

	measurement, err := a.measurements.Latest(ctx, userID)
	if err != nil {
		a.logger.WarnContext(ctx, "context read failed", "source", "measurement_goals", "user_id", userID, "error", err)
		measurement = nil
	}

	since := now.AddDate(0, 0, -a.windowDays)
	completions, err := a.activity.ListSince(ctx, userID, since)
	if err != nil {
		a.logger.WarnContext(ctx, "context read failed", "source", "workout_completions", "user_id", userID, "error", err)
		completions = nil
	}

	if ctx.Err() != nil {
		a.logger.WarnContext(ctx, "context aggregation abandoned", "user_id", userID, "error", ctx.Err())
		return uc
	}

	uc.IsLoading = false
	uc.Goal, uc.GoalSource, uc.GoalSetAt = domain.ResolveGoal(explicit, measurement)
	uc.Measurement = measurement
	uc.HasAnyGoals = explicit != nil || measurement != nil
	uc.Activity = domain.SummarizeActivity(completions, now)
	return uc
}
