package repository

import (
	"context"
	"time"

	"github.com/alexanderramin/smartly/internal/domain"
)

type ContentRepo interface {
	Create(ctx context.Context, c *domain.ContentItem) error
	GetByID(ctx context.Context, id string) (*domain.ContentItem, error)
	// ListVisible returns visible items of one content type, newest first.
	ListVisible(ctx context.Context, contentType domain.ContentType) ([]domain.ContentItem, error)
	List(ctx context.Context, includeHidden bool) ([]domain.ContentItem, error)
}

// FitnessGoalRepo stores explicit goal records. Latest returns nil, nil when
// the user has never set one.
type FitnessGoalRepo interface {
	Create(ctx context.Context, g *domain.FitnessGoal) error
	Latest(ctx context.Context, userID string) (*domain.FitnessGoal, error)
}

type MeasurementGoalRepo interface {
	Create(ctx context.Context, m *domain.MeasurementGoal) error
	Latest(ctx context.Context, userID string) (*domain.MeasurementGoal, error)
}

type ActivityRepo interface {
	Create(ctx context.Context, c *domain.WorkoutCompletion) error
	ListSince(ctx context.Context, userID string, since time.Time) ([]domain.WorkoutCompletion, error)
}

type InteractionRepo interface {
	Create(ctx context.Context, l *domain.InteractionLog) error
	ListByUser(ctx context.Context, userID string, limit int) ([]*domain.InteractionLog, error)
}
