package suggest

import (
	"time"

	"github.com/alexanderramin/smartly/internal/domain"
)

type ConfidenceLevel string

const (
	ConfidenceLow    ConfidenceLevel = "low"
	ConfidenceMedium ConfidenceLevel = "medium"
	ConfidenceHigh   ConfidenceLevel = "high"
)

type ConfidenceSignal string

const (
	SignalExplicitGoal   ConfidenceSignal = "explicit_goal"
	SignalInferredGoal   ConfidenceSignal = "inferred_goal"
	SignalStaleGoal      ConfidenceSignal = "stale_goal"
	SignalNoGoal         ConfidenceSignal = "no_goal"
	SignalRecentActivity ConfidenceSignal = "recent_activity"
	SignalNoActivity     ConfidenceSignal = "no_activity"
	SignalLoading        ConfidenceSignal = "loading"
)

type ConfidenceResult struct {
	Level   ConfidenceLevel
	Signals []ConfidenceSignal
}

func (r ConfidenceResult) Has(s ConfidenceSignal) bool {
	for _, sig := range r.Signals {
		if sig == s {
			return true
		}
	}
	return false
}

// ConfidenceOptions tunes what counts as fresh context.
type ConfidenceOptions struct {
	Now               time.Time
	GoalStaleAfter    time.Duration
	ActivityFreshDays int
}

func DefaultConfidenceOptions(now time.Time) ConfidenceOptions {
	return ConfidenceOptions{
		Now:               now,
		GoalStaleAfter:    90 * 24 * time.Hour,
		ActivityFreshDays: 14,
	}
}

// EvaluateConfidence maps the completeness of a context snapshot to a tier.
// High needs a fresh explicit goal and recent activity; medium covers any
// single input or a stale/inferred goal; low means nothing is known.
func EvaluateConfidence(uc domain.UserContext, opts ConfidenceOptions) ConfidenceResult {
	if uc.IsLoading {
		return ConfidenceResult{Level: ConfidenceLow, Signals: []ConfidenceSignal{SignalLoading}}
	}

	var signals []ConfidenceSignal

	hasGoal := uc.Goal != nil
	strongGoal := false
	switch {
	case !hasGoal:
		signals = append(signals, SignalNoGoal)
	case uc.GoalSource == domain.SourceFitnessGoals:
		signals = append(signals, SignalExplicitGoal)
		if isStale(uc.GoalSetAt, opts) {
			signals = append(signals, SignalStaleGoal)
		} else {
			strongGoal = true
		}
	default:
		signals = append(signals, SignalInferredGoal)
	}

	hasActivity := hasRecentActivity(uc.Activity, opts)
	if hasActivity {
		signals = append(signals, SignalRecentActivity)
	} else {
		signals = append(signals, SignalNoActivity)
	}

	level := ConfidenceLow
	switch {
	case strongGoal && hasActivity:
		level = ConfidenceHigh
	case hasGoal || hasActivity:
		level = ConfidenceMedium
	}
	return ConfidenceResult{Level: level, Signals: signals}
}

func isStale(setAt *time.Time, opts ConfidenceOptions) bool {
	if setAt == nil || opts.GoalStaleAfter <= 0 {
		return false
	}
	return opts.Now.Sub(*setAt) > opts.GoalStaleAfter
}

func hasRecentActivity(a domain.RecentActivity, opts ConfidenceOptions) bool {
	if a.Completions == 0 {
		return false
	}
	if a.DaysSinceLast == nil || opts.ActivityFreshDays <= 0 {
		return true
	}
	return *a.DaysSinceLast <= opts.ActivityFreshDays
}
