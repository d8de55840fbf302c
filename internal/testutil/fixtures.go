package testutil

import (
	"time"

	"github.com/alexanderramin/smartly/internal/domain"
	"github.com/google/uuid"
)

// Content item options
type ContentOption func(*domain.ContentItem)

func WithContentID(id string) ContentOption {
	return func(c *domain.ContentItem) {
		c.ID = id
	}
}

func WithContentType(t domain.ContentType) ContentOption {
	return func(c *domain.ContentItem) {
		c.ContentType = t
	}
}

func WithCategory(cat string) ContentOption {
	return func(c *domain.ContentItem) {
		c.Category = cat
	}
}

func WithDifficulty(d domain.Difficulty) ContentOption {
	return func(c *domain.ContentItem) {
		c.Difficulty = d
	}
}

func WithDuration(min int) ContentOption {
	return func(c *domain.ContentItem) {
		c.DurationMin = min
	}
}

func WithEquipment(e domain.Equipment) ContentOption {
	return func(c *domain.ContentItem) {
		c.Equipment = e
	}
}

func WithCreatedAt(t time.Time) ContentOption {
	return func(c *domain.ContentItem) {
		c.CreatedAt = t
	}
}

func WithPremium() ContentOption {
	return func(c *domain.ContentItem) {
		c.IsPremium = true
	}
}

func WithHidden() ContentOption {
	return func(c *domain.ContentItem) {
		c.IsVisible = false
	}
}

var baseCreatedAt = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

func NewTestContentItem(name string, opts ...ContentOption) *domain.ContentItem {
	c := &domain.ContentItem{
		ID:          uuid.New().String(),
		ContentType: domain.ContentWorkout,
		Name:        name,
		Category:    "full_body",
		Difficulty:  domain.DifficultyIntermediate,
		DurationMin: 30,
		Equipment:   domain.EquipmentBodyweight,
		Format:      "circuit",
		Description: name + " session",
		IsVisible:   true,
		CreatedAt:   baseCreatedAt,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Catalog flattens fixture pointers into the value slice the engine takes.
func Catalog(items ...*domain.ContentItem) []domain.ContentItem {
	out := make([]domain.ContentItem, len(items))
	for i, it := range items {
		out[i] = *it
	}
	return out
}

func NewTestFitnessGoal(userID string, goal domain.Goal, setAt time.Time) *domain.FitnessGoal {
	return &domain.FitnessGoal{
		ID:        uuid.New().String(),
		UserID:    userID,
		Goal:      goal,
		CreatedAt: setAt,
	}
}

// Measurement goal options
type MeasurementOption func(*domain.MeasurementGoal)

func WithTargetWeight(kg float64) MeasurementOption {
	return func(m *domain.MeasurementGoal) {
		m.TargetWeightKg = &kg
	}
}

func WithTargetBodyFat(pct float64) MeasurementOption {
	return func(m *domain.MeasurementGoal) {
		m.TargetBodyFatPct = &pct
	}
}

func WithTargetMuscleMass(kg float64) MeasurementOption {
	return func(m *domain.MeasurementGoal) {
		m.TargetMuscleMassKg = &kg
	}
}

func NewTestMeasurementGoal(userID string, opts ...MeasurementOption) *domain.MeasurementGoal {
	m := &domain.MeasurementGoal{
		ID:        uuid.New().String(),
		UserID:    userID,
		CreatedAt: time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Completion options
type CompletionOption func(*domain.WorkoutCompletion)

func WithCompletionCategory(cat string) CompletionOption {
	return func(c *domain.WorkoutCompletion) {
		c.Category = cat
	}
}

func WithCompletionDuration(min int) CompletionOption {
	return func(c *domain.WorkoutCompletion) {
		c.DurationMin = min
	}
}

func NewTestCompletion(userID, contentID string, completedAt time.Time, opts ...CompletionOption) *domain.WorkoutCompletion {
	c := &domain.WorkoutCompletion{
		ID:          uuid.New().String(),
		UserID:      userID,
		ContentID:   contentID,
		ContentType: domain.ContentWorkout,
		Category:    "full_body",
		Difficulty:  domain.DifficultyIntermediate,
		DurationMin: 30,
		CompletedAt: completedAt,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Context options for engine-level tests that skip the aggregator.
type ContextOption func(*domain.UserContext)

func WithGoal(g domain.Goal, src domain.GoalSource, setAt time.Time) ContextOption {
	return func(u *domain.UserContext) {
		u.Goal = &g
		u.GoalSource = src
		u.GoalSetAt = &setAt
		u.HasAnyGoals = true
	}
}

func WithActivity(completions []domain.WorkoutCompletion, now time.Time) ContextOption {
	return func(u *domain.UserContext) {
		u.Activity = domain.SummarizeActivity(completions, now)
	}
}

func NewTestUserContext(userID string, opts ...ContextOption) domain.UserContext {
	u := domain.UserContext{
		UserID:     userID,
		GoalSource: domain.SourceManual,
		Activity:   domain.RecentActivity{CompletedIDs: map[string]bool{}},
		LoadedAt:   time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(&u)
	}
	return u
}
