package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/smartly/internal/domain"
	"github.com/alexanderramin/smartly/internal/repository"
	"github.com/google/uuid"
)

// ErrUserRequired is returned by writes that need a signed-in user.
var ErrUserRequired = errors.New("user id is required")

type profileService struct {
	goals        repository.FitnessGoalRepo
	measurements repository.MeasurementGoalRepo
	activity     repository.ActivityRepo
	content      repository.ContentRepo
	interactions repository.InteractionRepo
	now          func() time.Time
}

func NewProfileService(
	goals repository.FitnessGoalRepo,
	measurements repository.MeasurementGoalRepo,
	activity repository.ActivityRepo,
	content repository.ContentRepo,
	interactions repository.InteractionRepo,
) ProfileService {
	return &profileService{
		goals:        goals,
		measurements: measurements,
		activity:     activity,
		content:      content,
		interactions: interactions,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

func (s *profileService) SetGoal(ctx context.Context, userID string, goal domain.Goal) (*domain.FitnessGoal, error) {
	if userID == "" {
		return nil, ErrUserRequired
	}
	if !goal.Valid() {
		return nil, fmt.Errorf("unknown goal %q", goal)
	}
	g := &domain.FitnessGoal{
		ID:        uuid.New().String(),
		UserID:    userID,
		Goal:      goal,
		CreatedAt: s.now(),
	}
	if err := s.goals.Create(ctx, g); err != nil {
		return nil, err
	}
	return g, nil
}

func (s *profileService) SetMeasurementGoal(ctx context.Context, userID string, targets MeasurementTargets) (*domain.MeasurementGoal, error) {
	if userID == "" {
		return nil, ErrUserRequired
	}
	if targets.WeightKg == nil && targets.BodyFatPct == nil && targets.MuscleMassKg == nil {
		return nil, fmt.Errorf("at least one measurement target is required")
	}
	for name, v := range map[string]*float64{
		"weight":      targets.WeightKg,
		"body fat":    targets.BodyFatPct,
		"muscle mass": targets.MuscleMassKg,
	} {
		if v != nil && *v <= 0 {
			return nil, fmt.Errorf("%s target must be positive", name)
		}
	}

	m := &domain.MeasurementGoal{
		ID:                 uuid.New().String(),
		UserID:             userID,
		TargetWeightKg:     targets.WeightKg,
		TargetBodyFatPct:   targets.BodyFatPct,
		TargetMuscleMassKg: targets.MuscleMassKg,
		CreatedAt:          s.now(),
	}
	if err := s.measurements.Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

// LogCompletion records a finished workout. Category, difficulty and
// duration are copied from the catalog item so the activity summary does
// not depend on later catalog edits.
func (s *profileService) LogCompletion(ctx context.Context, req CompletionRequest) (*domain.WorkoutCompletion, error) {
	if req.UserID == "" {
		return nil, ErrUserRequired
	}
	item, err := s.content.GetByID(ctx, req.ContentID)
	if err != nil {
		return nil, fmt.Errorf("looking up content %q: %w", req.ContentID, err)
	}

	completedAt := req.CompletedAt
	if completedAt.IsZero() {
		completedAt = s.now()
	}
	duration := item.DurationMin
	if req.DurationMin > 0 {
		duration = req.DurationMin
	}

	c := &domain.WorkoutCompletion{
		ID:          uuid.New().String(),
		UserID:      req.UserID,
		ContentID:   item.ID,
		ContentType: item.ContentType,
		Category:    item.Category,
		Difficulty:  item.Difficulty,
		DurationMin: duration,
		CompletedAt: completedAt,
	}
	if err := s.activity.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *profileService) History(ctx context.Context, userID string, limit int) ([]*domain.InteractionLog, error) {
	if userID == "" {
		return nil, ErrUserRequired
	}
	return s.interactions.ListByUser(ctx, userID, limit)
}
