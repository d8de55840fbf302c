package suggest

import "github.com/alexanderramin/smartly/internal/domain"

const (
	// DefaultMaxReasons caps the reasons kept for display per item.
	DefaultMaxReasons = 3
	maxAlternatives   = 2
)

// Suggestion is the engine output: a main pick plus up to two alternatives
// of the same content type.
type Suggestion struct {
	ContentType  domain.ContentType
	Main         ScoredContent
	Alternatives []ScoredContent
}

// Engine scores a catalog snapshot against a user context and answers.
// It holds no per-session state and is safe to share.
type Engine struct {
	weights    Weights
	maxReasons int
}

func NewEngine(weights Weights) *Engine {
	return &Engine{weights: weights, maxReasons: DefaultMaxReasons}
}

// WithMaxReasons returns a copy of the engine keeping n display reasons.
func (e *Engine) WithMaxReasons(n int) *Engine {
	cp := *e
	if n > 0 {
		cp.maxReasons = n
	}
	return &cp
}

func (e *Engine) Weights() Weights { return e.weights }

// EffectiveGoal returns the goal used for scoring: a valid goal answer
// overrides the context goal.
func EffectiveGoal(uc domain.UserContext, answers Answers) domain.Goal {
	if v, ok := answers.Get(QuestionGoal); ok {
		if g := domain.Goal(v); g.Valid() {
			return g
		}
	}
	return uc.GoalValue()
}

// Rank scores every item of contentType, drops duplicate ids and returns
// them in canonical order with display reasons.
func (e *Engine) Rank(catalog []domain.ContentItem, uc domain.UserContext, answers Answers, contentType domain.ContentType) []ScoredContent {
	goal := EffectiveGoal(uc, answers)
	seen := make(map[string]bool, len(catalog))

	scored := make([]ScoredContent, 0, len(catalog))
	for _, item := range catalog {
		if item.ContentType != contentType || seen[item.ID] {
			continue
		}
		seen[item.ID] = true
		sc := ScoreItem(ScoringInput{
			Item:         item,
			Goal:         goal,
			Answers:      answers,
			CompletedIDs: uc.Activity.CompletedIDs,
			Weights:      e.weights,
		})
		sc.Reasons = e.displayReasons(sc.Reasons)
		scored = append(scored, sc)
	}
	CanonicalSort(scored)
	return scored
}

// Suggest returns the top pick and up to two alternatives. It returns
// false when no item of contentType is available.
func (e *Engine) Suggest(catalog []domain.ContentItem, uc domain.UserContext, answers Answers, contentType domain.ContentType) (*Suggestion, bool) {
	ranked := e.Rank(catalog, uc, answers, contentType)
	if len(ranked) == 0 {
		return nil, false
	}
	s := &Suggestion{ContentType: contentType, Main: ranked[0]}
	for _, sc := range ranked[1:] {
		if len(s.Alternatives) == maxAlternatives {
			break
		}
		s.Alternatives = append(s.Alternatives, sc)
	}
	return s, true
}

// SuggestOne is the single-result form of Suggest.
func (e *Engine) SuggestOne(catalog []domain.ContentItem, uc domain.UserContext, answers Answers, contentType domain.ContentType) (*ScoredContent, bool) {
	s, ok := e.Suggest(catalog, uc, answers, contentType)
	if !ok {
		return nil, false
	}
	main := s.Main
	return &main, true
}

func (e *Engine) displayReasons(all []Reason) []Reason {
	var positive []Reason
	for _, r := range all {
		if r.Weight > 0 {
			positive = append(positive, r)
		}
	}
	sortReasons(positive)
	if len(positive) > e.maxReasons {
		positive = positive[:e.maxReasons]
	}
	return positive
}
