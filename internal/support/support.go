// Package support wires the transcript pipeline into one engine: normalize
// raw STT text, enhance it, classify the issue, pick a troubleshooting
// scenario, and rank its steps for the caller's profile. Outcome reports feed
// back into the prioritizer's success statistics.
//
// The engine owns no call state. Conversation history, the customer profile,
// and per-call counters are supplied by the call-session manager on every
// request, so a single engine serves all in-flight calls concurrently.
package support

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ashikjoy21/abc-customer-care/internal/classify"
	"github.com/ashikjoy21/abc-customer-care/internal/enhance"
	"github.com/ashikjoy21/abc-customer-care/internal/escalate"
	"github.com/ashikjoy21/abc-customer-care/internal/lexicon"
	"github.com/ashikjoy21/abc-customer-care/internal/normalize"
	"github.com/ashikjoy21/abc-customer-care/internal/observe"
	"github.com/ashikjoy21/abc-customer-care/internal/scenario"
	"github.com/ashikjoy21/abc-customer-care/internal/steps"
	"github.com/ashikjoy21/abc-customer-care/pkg/types"
)

// Option configures an [Engine].
type Option func(*Engine)

// WithLexicon overrides the built-in lexicon.
func WithLexicon(lex *lexicon.Lexicon) Option {
	return func(e *Engine) {
		e.lex = lex
	}
}

// WithCatalog sets the scenario registry. Defaults to a registry over the
// embedded catalog.
func WithCatalog(reg *scenario.Registry) Option {
	return func(e *Engine) {
		e.catalog = reg
	}
}

// WithMetrics sets the metrics instance. Defaults to
// [observe.DefaultMetrics].
func WithMetrics(m *observe.Metrics) Option {
	return func(e *Engine) {
		e.metrics = m
	}
}

// WithLogger sets the logger. Defaults to [slog.Default].
func WithLogger(log *slog.Logger) Option {
	return func(e *Engine) {
		e.log = log
	}
}

// Engine is the support bot core. Construct once with [New]; safe for
// concurrent use.
type Engine struct {
	lex     *lexicon.Lexicon
	catalog *scenario.Registry
	metrics *observe.Metrics
	log     *slog.Logger

	normalizer  *normalize.Normalizer
	enhancer    *enhance.Enhancer
	classifier  *classify.Classifier
	prioritizer *steps.Prioritizer
	escalator   *escalate.Engine
}

// New builds an engine. With no options it runs on the built-in lexicon and
// the embedded scenario catalog.
func New(opts ...Option) (*Engine, error) {
	e := &Engine{
		lex: lexicon.Default(),
		log: slog.Default(),
	}
	for _, o := range opts {
		o(e)
	}

	if err := e.lex.Validate(); err != nil {
		return nil, fmt.Errorf("support: lexicon: %w", err)
	}
	if e.catalog == nil {
		cat, err := scenario.Default()
		if err != nil {
			return nil, fmt.Errorf("support: catalog: %w", err)
		}
		e.catalog = scenario.NewRegistry(cat)
	}
	if e.metrics == nil {
		e.metrics = observe.DefaultMetrics()
	}

	e.normalizer = normalize.New(
		normalize.WithSilenceDenylist(e.lex.SilenceDenylist),
		normalize.WithContentDenylist(e.lex.ContentDenylist),
		normalize.WithLogger(e.log),
	)
	e.enhancer = enhance.New(e.lex, enhance.WithLogger(e.log))
	e.classifier = classify.New(e.lex, classify.WithLogger(e.log))
	e.prioritizer = steps.New(steps.WithLogger(e.log))
	e.escalator = escalate.New(escalate.WithLogger(e.log))

	return e, nil
}

// Normalize cleans one raw STT utterance. An empty result means the
// utterance was noise and the call flow should reprompt rather than respond.
func (e *Engine) Normalize(ctx context.Context, raw string, opts ...normalize.CallOption) string {
	ctx, span := observe.StartSpan(ctx, "support.normalize")
	defer span.End()
	start := time.Now()

	out := e.normalizer.Normalize(raw, opts...)

	e.metrics.NormalizeDuration.Record(ctx, time.Since(start).Seconds())
	if out == "" && raw != "" {
		e.metrics.SilenceDrops.Add(ctx, 1)
	}
	return out
}

// Enhance runs the transcript enhancement pipeline over normalized text.
func (e *Engine) Enhance(ctx context.Context, text string, history []types.ConversationTurn) string {
	ctx, span := observe.StartSpan(ctx, "support.enhance")
	defer span.End()
	start := time.Now()

	out := e.enhancer.Enhance(text, history)

	e.metrics.EnhanceDuration.Record(ctx, time.Since(start).Seconds())
	return out
}

// Classify classifies an enhanced utterance.
func (e *Engine) Classify(ctx context.Context, text string, history []types.ConversationTurn, opts ...classify.ClassifyOption) types.ClassificationResult {
	ctx, span := observe.StartSpan(ctx, "support.classify")
	defer span.End()
	start := time.Now()

	res := e.classifier.Classify(text, history, opts...)

	e.metrics.ClassifyDuration.Record(ctx, time.Since(start).Seconds())
	e.metrics.RecordClassification(ctx, res.Issue, res.UsedHistory)
	return res
}

// Plan picks the scenario for a classification and returns its steps ranked
// for the profile. completed maps step ids already attempted this call to
// their outcome. A nil scenario means the catalog has no flow for the issue
// (e.g. unclassified) and the bot should ask a clarifying question instead.
func (e *Engine) Plan(ctx context.Context, res types.ClassificationResult, profile types.CustomerTechnicalProfile, completed map[string]bool) (*scenario.Scenario, []types.TroubleshootingStep, error) {
	ctx, span := observe.StartSpan(ctx, "support.plan")
	defer span.End()
	start := time.Now()

	sc := e.catalog.Current().Match(res.Issue, res.SubIssues)
	if sc == nil {
		return nil, nil, nil
	}

	ranked, err := e.prioritizer.Prioritize(sc.Steps, profile, completed)
	if err != nil {
		return nil, nil, fmt.Errorf("support: plan %q: %w", sc.ID, err)
	}

	e.metrics.PrioritizeDuration.Record(ctx, time.Since(start).Seconds())
	return sc, ranked, nil
}

// RecordOutcome reports one attempted step's result and updates the success
// statistics used by future rankings.
func (e *Engine) RecordOutcome(ctx context.Context, stepID string, succeeded bool) {
	e.prioritizer.RecordOutcome(stepID, succeeded)
	e.metrics.RecordStepOutcome(ctx, stepID, succeeded)
}

// CheckEscalation evaluates the scenario's hand-off policy against the call
// state.
func (e *Engine) CheckEscalation(ctx context.Context, sc *scenario.Scenario, res types.ClassificationResult, state escalate.CallState) (*escalate.Record, bool) {
	if sc == nil {
		return nil, false
	}
	rec, ok := e.escalator.Evaluate(sc.Escalation, res.Issue, state)
	if ok {
		e.metrics.RecordEscalation(ctx, string(rec.Reason))
	}
	return rec, ok
}

// Process is the per-utterance happy path: normalize, enhance, classify.
// The returned text is the enhanced utterance ("" when the input was noise,
// in which case the zero ClassificationResult is returned untouched).
func (e *Engine) Process(ctx context.Context, raw string, history []types.ConversationTurn, opts ...classify.ClassifyOption) (string, types.ClassificationResult) {
	text := e.Normalize(ctx, raw)
	if text == "" {
		return "", types.ClassificationResult{Issue: types.IssueUnclassified}
	}
	text = e.Enhance(ctx, text, history)
	return text, e.Classify(ctx, text, history, opts...)
}
