package service

import (
	"context"
	"time"

	"github.com/alexanderramin/smartly/internal/domain"
	"github.com/alexanderramin/smartly/internal/importer"
	"github.com/alexanderramin/smartly/internal/suggest"
)

// SuggestService opens suggestion sessions.
type SuggestService interface {
	Start(ctx context.Context, req StartRequest) (*Session, error)
	// Inspect aggregates context and confidence without opening a session.
	Inspect(ctx context.Context, userID string) (*ContextReport, error)
}

type ProfileService interface {
	SetGoal(ctx context.Context, userID string, goal domain.Goal) (*domain.FitnessGoal, error)
	SetMeasurementGoal(ctx context.Context, userID string, targets MeasurementTargets) (*domain.MeasurementGoal, error)
	LogCompletion(ctx context.Context, req CompletionRequest) (*domain.WorkoutCompletion, error)
	History(ctx context.Context, userID string, limit int) ([]*domain.InteractionLog, error)
}

type CatalogService interface {
	ImportFile(ctx context.Context, path string) (*CatalogImportResult, error)
	ImportSchema(ctx context.Context, schema *importer.CatalogSchema) (*CatalogImportResult, error)
	List(ctx context.Context, includeHidden bool) ([]domain.ContentItem, error)
}

// InteractionLogger records a session's terminal action.
type InteractionLogger interface {
	Log(ctx context.Context, entry *domain.InteractionLog)
}

// CatalogReader is the read side of the content catalog used by sessions.
type CatalogReader interface {
	ListVisible(ctx context.Context, contentType domain.ContentType) ([]domain.ContentItem, error)
}

type StartRequest struct {
	UserID      string
	ContentType domain.ContentType
}

type ContextReport struct {
	Context    domain.UserContext
	Confidence suggest.ConfidenceResult
	Questions  []suggest.Question
}

type MeasurementTargets struct {
	WeightKg     *float64
	BodyFatPct   *float64
	MuscleMassKg *float64
}

type CompletionRequest struct {
	UserID      string
	ContentID   string
	CompletedAt time.Time
	// DurationMin overrides the catalog duration when > 0.
	DurationMin int
}

type CatalogImportResult struct {
	Items    []*domain.ContentItem
	Workouts int
	Programs int
	Hidden   int
}
