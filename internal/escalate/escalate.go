// Package escalate decides when a call leaves self-service and produces the
// hand-off record for the technician dispatch queue.
//
// The engine is a pure rule evaluator over the scenario's escalation policy
// and the call's running state. Checks run in a fixed order so the recorded
// reason is deterministic when several conditions hold at once: an
// auto-escalating sub-issue wins over an explicit customer request, which
// wins over exhausted budgets.
package escalate

import (
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ashikjoy21/abc-customer-care/internal/scenario"
)

// Reason labels why a call was escalated.
type Reason string

const (
	// ReasonAutoSubIssue marks a sub-issue that always needs a technician.
	ReasonAutoSubIssue Reason = "auto_sub_issue"

	// ReasonCustomerRequest marks an explicit request for a human.
	ReasonCustomerRequest Reason = "customer_request"

	// ReasonStepBudget marks too many failed troubleshooting steps.
	ReasonStepBudget Reason = "step_budget_exhausted"

	// ReasonCallDuration marks a call running past the scenario's limit.
	ReasonCallDuration Reason = "call_duration_exceeded"

	// ReasonLowConfidence marks classification staying below the floor.
	ReasonLowConfidence Reason = "low_confidence"
)

// CallState is the running state the engine evaluates against the policy.
// Owned by the call-session manager; the engine only reads it.
type CallState struct {
	// FailedSteps counts troubleshooting steps reported as unsuccessful.
	FailedSteps int

	// Elapsed is the time since call start.
	Elapsed time.Duration

	// Confidence is the latest classification confidence.
	Confidence float64

	// SubIssues are the detected sub-issue ids.
	SubIssues []string

	// LastUtterance is the customer's latest enhanced utterance.
	LastUtterance string
}

// Record is the hand-off artifact produced when a call escalates.
type Record struct {
	// ID is a fresh UUID identifying the escalation.
	ID string

	// Issue and SubIssues carry the classification at hand-off time.
	Issue     string
	SubIssues []string

	// Reason labels the triggering condition; Trigger holds the concrete
	// value (the matched keyword, the sub-issue id, or a formatted count).
	Reason  Reason
	Trigger string

	// CreatedAt is the evaluation time.
	CreatedAt time.Time
}

// Option configures an [Engine].
type Option func(*Engine)

// WithLogger sets the logger. Defaults to [slog.Default].
func WithLogger(log *slog.Logger) Option {
	return func(e *Engine) {
		e.log = log
	}
}

// WithClock overrides the record timestamp source.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

// Engine evaluates escalation policies. Stateless and safe for concurrent
// use.
type Engine struct {
	log *slog.Logger
	now func() time.Time
}

// New returns an escalation engine.
func New(opts ...Option) *Engine {
	e := &Engine{
		log: slog.Default(),
		now: time.Now,
	}
	for _, o := range opts {
		o(e)
	}
	return e
}

// Evaluate checks the call state against the policy. It returns a populated
// record and true when the call must escalate, nil and false otherwise.
func (e *Engine) Evaluate(policy scenario.EscalationPolicy, issue string, state CallState) (*Record, bool) {
	if reason, trigger, ok := e.match(policy, state); ok {
		rec := &Record{
			ID:        uuid.NewString(),
			Issue:     issue,
			SubIssues: state.SubIssues,
			Reason:    reason,
			Trigger:   trigger,
			CreatedAt: e.now(),
		}
		e.log.Info("escalate: call escalated",
			"id", rec.ID, "issue", issue, "reason", reason, "trigger", trigger)
		return rec, true
	}
	return nil, false
}

func (e *Engine) match(policy scenario.EscalationPolicy, state CallState) (Reason, string, bool) {
	for _, auto := range policy.AutoSubIssues {
		for _, sub := range state.SubIssues {
			if sub == auto {
				return ReasonAutoSubIssue, sub, true
			}
		}
	}

	utterance := strings.ToLower(state.LastUtterance)
	for _, kw := range policy.Keywords {
		if kw != "" && strings.Contains(utterance, strings.ToLower(kw)) {
			return ReasonCustomerRequest, kw, true
		}
	}

	if policy.MaxFailedSteps > 0 && state.FailedSteps >= policy.MaxFailedSteps {
		return ReasonStepBudget, strconv.Itoa(state.FailedSteps), true
	}

	if policy.MaxCallDuration > 0 && state.Elapsed >= policy.MaxCallDuration {
		return ReasonCallDuration, state.Elapsed.String(), true
	}

	if policy.MinConfidence > 0 && state.Confidence < policy.MinConfidence {
		return ReasonLowConfidence, strconv.FormatFloat(state.Confidence, 'f', 2, 64), true
	}

	return "", "", false
}
