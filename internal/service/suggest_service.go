package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/alexanderramin/smartly/internal/suggest"
	"github.com/google/uuid"
)

type suggestService struct {
	aggregator     *ContextAggregator
	engine         *suggest.Engine
	catalog        CatalogReader
	logs           InteractionLogger
	observer       UseCaseObserver
	logger         *slog.Logger
	goalStaleAfter time.Duration
	now            func() time.Time
}

type SuggestOption func(*suggestService)

func WithGoalStaleAfter(d time.Duration) SuggestOption {
	return func(s *suggestService) {
		if d > 0 {
			s.goalStaleAfter = d
		}
	}
}

func WithSuggestClock(now func() time.Time) SuggestOption {
	return func(s *suggestService) {
		s.now = now
	}
}

func WithSuggestLogger(logger *slog.Logger) SuggestOption {
	return func(s *suggestService) {
		s.logger = loggerOrDiscard(logger)
	}
}

func WithUseCaseObserver(obs UseCaseObserver) SuggestOption {
	return func(s *suggestService) {
		if obs != nil {
			s.observer = obs
		}
	}
}

func NewSuggestService(
	aggregator *ContextAggregator,
	engine *suggest.Engine,
	catalog CatalogReader,
	logs InteractionLogger,
	opts ...SuggestOption,
) SuggestService {
	s := &suggestService{
		aggregator:     aggregator,
		engine:         engine,
		catalog:        catalog,
		logs:           logs,
		observer:       NoopUseCaseObserver{},
		logger:         loggerOrDiscard(nil),
		goalStaleAfter: suggest.DefaultConfidenceOptions(time.Time{}).GoalStaleAfter,
		now:            func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *suggestService) Start(ctx context.Context, req StartRequest) (sess *Session, err error) {
	startedAt := time.Now()
	fields := map[string]any{
		"user_id":      req.UserID,
		"content_type": string(req.ContentType),
	}
	defer observe(ctx, s.observer, UseCaseSuggestStart, startedAt, fields, &err)

	if !req.ContentType.Valid() {
		return nil, &SessionError{
			Code:    ErrInvalidContentType,
			Message: fmt.Sprintf("unknown content type %q", req.ContentType),
		}
	}

	report := s.inspect(ctx, req.UserID)
	sess = &Session{
		id:          uuid.New().String(),
		contentType: req.ContentType,
		uc:          report.Context,
		confidence:  report.Confidence,
		questions:   report.Questions,
		answers:     suggest.Answers{},
		state:       StateAskingQuestions,
		engine:      s.engine,
		catalog:     s.catalog,
		logs:        s.logs,
		observer:    s.observer,
		logger:      s.logger,
		now:         s.now,
	}
	fields["session_id"] = sess.id
	fields["confidence"] = string(report.Confidence.Level)
	fields["questions"] = len(report.Questions)
	return sess, nil
}

func (s *suggestService) Inspect(ctx context.Context, userID string) (*ContextReport, error) {
	report := s.inspect(ctx, userID)
	return &report, nil
}

func (s *suggestService) inspect(ctx context.Context, userID string) ContextReport {
	uc := s.aggregator.Aggregate(ctx, userID)
	opts := suggest.DefaultConfidenceOptions(s.now())
	opts.GoalStaleAfter = s.goalStaleAfter
	conf := suggest.EvaluateConfidence(uc, opts)
	return ContextReport{
		Context:    uc,
		Confidence: conf,
		Questions:  suggest.SelectQuestions(conf, uc),
	}
}
