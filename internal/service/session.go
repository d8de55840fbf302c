package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/alexanderramin/smartly/internal/domain"
	"github.com/alexanderramin/smartly/internal/suggest"
	"github.com/google/uuid"
)

type SessionState string

const (
	StateAskingQuestions     SessionState = "asking_questions"
	StateComputing           SessionState = "computing_suggestion"
	StateShowingResult       SessionState = "showing_result"
	StateAccepted            SessionState = "accepted"
	StateAlternativeSelected SessionState = "alternative_selected"
	StateDismissed           SessionState = "dismissed"
	StateNoContent           SessionState = "no_content"
)

// Terminal reports whether the session is finished.
func (s SessionState) Terminal() bool {
	switch s {
	case StateAccepted, StateAlternativeSelected, StateDismissed, StateNoContent:
		return true
	}
	return false
}

type SessionErrorCode string

const (
	ErrUnknownQuestion    SessionErrorCode = "UNKNOWN_QUESTION"
	ErrInvalidAnswer      SessionErrorCode = "INVALID_ANSWER"
	ErrInvalidState       SessionErrorCode = "INVALID_STATE"
	ErrNoAlternative      SessionErrorCode = "NO_ALTERNATIVE"
	ErrInvalidContentType SessionErrorCode = "INVALID_CONTENT_TYPE"
)

type SessionError struct {
	Code    SessionErrorCode
	Message string
}

func (e *SessionError) Error() string {
	return string(e.Code) + ": " + e.Message
}

func stateError(op string, state SessionState) error {
	return &SessionError{
		Code:    ErrInvalidState,
		Message: fmt.Sprintf("cannot %s while %s", op, state),
	}
}

// Session walks one suggestion round: questions, computation, result and a
// single terminal action. It is not safe for concurrent use; each caller
// owns its session.
type Session struct {
	id          string
	contentType domain.ContentType
	uc          domain.UserContext
	confidence  suggest.ConfidenceResult
	questions   []suggest.Question
	current     int
	stepped     []int // question indexes answered in turn, most recent last
	answers     suggest.Answers
	state       SessionState

	suggestion *suggest.Suggestion
	note       suggest.SmartNote
	chosen     *suggest.ScoredContent

	engine   *suggest.Engine
	catalog  CatalogReader
	logs     InteractionLogger
	observer UseCaseObserver
	logger   *slog.Logger
	now      func() time.Time
}

func (s *Session) ID() string                           { return s.id }
func (s *Session) State() SessionState                  { return s.state }
func (s *Session) ContentType() domain.ContentType      { return s.contentType }
func (s *Session) Context() domain.UserContext          { return s.uc }
func (s *Session) Confidence() suggest.ConfidenceResult { return s.confidence }
func (s *Session) Suggestion() *suggest.Suggestion      { return s.suggestion }
func (s *Session) Note() suggest.SmartNote              { return s.note }

// Chosen is the item the user accepted or picked as an alternative.
func (s *Session) Chosen() *suggest.ScoredContent { return s.chosen }

// Questions returns the questions selected for this session in ask order.
func (s *Session) Questions() []suggest.Question {
	out := make([]suggest.Question, len(s.questions))
	copy(out, s.questions)
	return out
}

func (s *Session) Answers() suggest.Answers { return s.answers.Clone() }

// CurrentQuestion is the next question awaiting an answer.
func (s *Session) CurrentQuestion() (suggest.Question, bool) {
	if s.state != StateAskingQuestions || s.current >= len(s.questions) {
		return suggest.Question{}, false
	}
	return s.questions[s.current], true
}

// Progress returns the zero-based position of the current question and the
// number of selected questions.
func (s *Session) Progress() (int, int) {
	return s.current, len(s.questions)
}

// Answer records value for question id, replacing any earlier answer.
// Answers to catalog questions that were not selected are kept too, so a
// caller can supply everything up front.
func (s *Session) Answer(id suggest.QuestionID, value string) error {
	if s.state != StateAskingQuestions && s.state != StateComputing {
		return stateError("answer", s.state)
	}
	q, ok := s.lookup(id)
	if !ok {
		return &SessionError{Code: ErrUnknownQuestion, Message: fmt.Sprintf("unknown question %q", id)}
	}
	if !q.Accepts(value) {
		return &SessionError{Code: ErrInvalidAnswer, Message: fmt.Sprintf("%q is not a valid answer to %s", value, id)}
	}

	if s.current < len(s.questions) && s.questions[s.current].ID == id {
		s.stepped = append(s.stepped, s.current)
	}
	s.answers.Set(id, value)
	s.advance()
	return nil
}

// Back returns to the question answered most recently in turn and discards
// its answer. Answers supplied ahead of their question are kept.
func (s *Session) Back() error {
	if s.state != StateAskingQuestions && s.state != StateComputing {
		return stateError("go back", s.state)
	}
	if len(s.stepped) == 0 {
		return &SessionError{Code: ErrInvalidState, Message: "already at the first question"}
	}
	last := len(s.stepped) - 1
	s.current = s.stepped[last]
	s.stepped = s.stepped[:last]
	s.answers.Delete(s.questions[s.current].ID)
	s.state = StateAskingQuestions
	return nil
}

// Compute scores the catalog and moves to showing_result, or to no_content
// when nothing of the session's content type is available. Unanswered
// questions fall back to their defaults.
func (s *Session) Compute(ctx context.Context) (sugg *suggest.Suggestion, err error) {
	if s.state != StateAskingQuestions && s.state != StateComputing {
		return nil, stateError("compute", s.state)
	}
	startedAt := time.Now()
	fields := map[string]any{"session_id": s.id, "content_type": string(s.contentType)}
	defer observe(ctx, s.observer, UseCaseSuggestCompute, startedAt, fields, &err)

	s.state = StateComputing
	for _, q := range s.questions {
		if _, answered := s.answers.Get(q.ID); !answered && q.Default != "" {
			s.answers.Set(q.ID, q.Default)
		}
	}
	s.current = len(s.questions)

	catalog, readErr := s.catalog.ListVisible(ctx, s.contentType)
	if readErr != nil {
		s.logger.WarnContext(ctx, "catalog read failed", "content_type", string(s.contentType), "error", readErr)
		catalog = nil
	}
	fields["candidates"] = len(catalog)

	result, ok := s.engine.Suggest(catalog, s.uc, s.answers, s.contentType)
	if !ok {
		s.state = StateNoContent
		fields["result"] = string(StateNoContent)
		return nil, nil
	}

	s.suggestion = result
	s.note = suggest.GenerateNote(s.noteContext(), result.Main.Item)
	s.state = StateShowingResult
	fields["main_id"] = result.Main.Item.ID
	fields["alternatives"] = len(result.Alternatives)
	fields["note"] = string(s.note.Type)
	return result, nil
}

// Accept takes the main suggestion.
func (s *Session) Accept(ctx context.Context) error {
	if s.state != StateShowingResult {
		return stateError("accept", s.state)
	}
	main := s.suggestion.Main
	s.finish(ctx, StateAccepted, domain.ActionAccepted, &main)
	return nil
}

// SelectAlternative takes alternative n (1 or 2).
func (s *Session) SelectAlternative(ctx context.Context, n int) error {
	if s.state != StateShowingResult {
		return stateError("select an alternative", s.state)
	}
	if n < 1 || n > len(s.suggestion.Alternatives) {
		return &SessionError{
			Code:    ErrNoAlternative,
			Message: fmt.Sprintf("alternative %d does not exist (have %d)", n, len(s.suggestion.Alternatives)),
		}
	}
	action := domain.ActionAlternative1
	if n == 2 {
		action = domain.ActionAlternative2
	}
	alt := s.suggestion.Alternatives[n-1]
	s.finish(ctx, StateAlternativeSelected, action, &alt)
	return nil
}

// Dismiss closes the session. Only a dismissed result is logged; leaving
// before anything was suggested records nothing.
func (s *Session) Dismiss(ctx context.Context) error {
	switch s.state {
	case StateShowingResult:
		main := s.suggestion.Main
		s.finish(ctx, StateDismissed, domain.ActionDismissed, &main)
		s.chosen = nil
	case StateAskingQuestions, StateComputing:
		s.state = StateDismissed
		var err error
		observe(ctx, s.observer, UseCaseSuggestFinish, time.Now(), map[string]any{
			"session_id": s.id,
			"action":     string(domain.ActionDismissed),
			"logged":     false,
		}, &err)
	default:
		return stateError("dismiss", s.state)
	}
	return nil
}

func (s *Session) finish(ctx context.Context, state SessionState, action domain.InteractionAction, item *suggest.ScoredContent) {
	s.state = state
	s.chosen = item

	entry := &domain.InteractionLog{
		ID:              uuid.New().String(),
		ContentType:     s.contentType,
		ContentID:       item.Item.ID,
		ConfidenceLevel: string(s.confidence.Level),
		QuestionsAsked:  s.questionIDs(),
		UserResponses:   s.answers.StringMap(),
		ActionTaken:     action,
		CreatedAt:       s.now(),
	}
	if s.uc.UserID != "" {
		uid := s.uc.UserID
		entry.UserID = &uid
	}
	s.logs.Log(ctx, entry)

	var err error
	observe(ctx, s.observer, UseCaseSuggestFinish, time.Now(), map[string]any{
		"session_id": s.id,
		"action":     string(action),
		"content_id": item.Item.ID,
		"logged":     true,
	}, &err)
}

func (s *Session) lookup(id suggest.QuestionID) (suggest.Question, bool) {
	for _, q := range s.questions {
		if q.ID == id {
			return q, true
		}
	}
	return suggest.LookupQuestion(id)
}

// advance skips past selected questions that already have an answer.
func (s *Session) advance() {
	for s.current < len(s.questions) {
		if _, ok := s.answers.Get(s.questions[s.current].ID); !ok {
			return
		}
		s.current++
	}
	s.state = StateComputing
}

func (s *Session) questionIDs() []string {
	ids := make([]string, len(s.questions))
	for i, q := range s.questions {
		ids[i] = string(q.ID)
	}
	return ids
}

// noteContext is the session context with the answered goal applied, so the
// note agrees with what was scored.
func (s *Session) noteContext() domain.UserContext {
	uc := s.uc
	if g := suggest.EffectiveGoal(uc, s.answers); g.Valid() {
		uc.Goal = &g
	}
	return uc
}
