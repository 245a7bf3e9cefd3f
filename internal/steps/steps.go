// Package steps ranks troubleshooting steps for a classified issue against a
// customer's technical profile and the accumulated success history.
//
// Each eligible step gets a composite score from four weighted factors:
//
//   - historical success rate of the step (prior 0.5 when unobserved)
//   - fit between step complexity and the customer's technical level
//   - estimated completion time scaled by the customer's patience
//   - inverse raw complexity
//
// Steps whose prerequisites have not all succeeded are filtered out before
// scoring. Ordering is fully deterministic for a given profile and history:
// the sort is stable and the input order breaks score ties.
package steps

import (
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/ashikjoy21/abc-customer-care/pkg/types"
)

// Weights controls the relative contribution of each scoring factor. The
// fields should sum to 1 so composite scores stay in [0, 1].
type Weights struct {
	Success    float64
	TechMatch  float64
	Time       float64
	Complexity float64
}

// DefaultWeights is the tuning the bot ships with.
var DefaultWeights = Weights{
	Success:    0.45,
	TechMatch:  0.25,
	Time:       0.15,
	Complexity: 0.15,
}

const (
	// successPrior is the assumed success rate for a step with no recorded
	// outcomes yet.
	successPrior = 0.5

	// defaultDecay is the EMA smoothing factor for recorded outcomes.
	defaultDecay = 0.1

	// timeCeiling is the estimated duration at which the time factor bottoms
	// out at zero.
	timeCeiling = 5 * time.Minute
)

// Option configures a [Prioritizer].
type Option func(*Prioritizer)

// WithWeights overrides [DefaultWeights].
func WithWeights(w Weights) Option {
	return func(p *Prioritizer) {
		p.weights = w
	}
}

// WithDecay sets the EMA smoothing factor used by [Prioritizer.RecordOutcome].
// Default: 0.1.
func WithDecay(alpha float64) Option {
	return func(p *Prioritizer) {
		p.decay = alpha
	}
}

// WithLogger sets the logger. Defaults to [slog.Default].
func WithLogger(log *slog.Logger) Option {
	return func(p *Prioritizer) {
		p.log = log
	}
}

// stepStats is the running success estimate for one step.
type stepStats struct {
	rate     float64
	observed int
}

// Prioritizer ranks steps and accumulates per-step outcome statistics.
// Safe for concurrent use.
type Prioritizer struct {
	weights Weights
	decay   float64
	log     *slog.Logger

	mu    sync.Mutex
	stats map[string]stepStats
}

// New returns a Prioritizer with no recorded history.
func New(opts ...Option) *Prioritizer {
	p := &Prioritizer{
		weights: DefaultWeights,
		decay:   defaultDecay,
		log:     slog.Default(),
		stats:   make(map[string]stepStats),
	}
	for _, o := range opts {
		o(p)
	}
	return p
}

// Prioritize returns the given steps reordered best-first for the profile.
// completed maps step IDs to whether that step succeeded; steps whose
// prerequisites are not all marked successful are excluded. A prerequisite
// referencing an unknown step ID is a catalog defect and returns an error.
func (p *Prioritizer) Prioritize(steps []types.TroubleshootingStep, profile types.CustomerTechnicalProfile, completed map[string]bool) ([]types.TroubleshootingStep, error) {
	known := make(map[string]struct{}, len(steps))
	for _, s := range steps {
		known[s.ID] = struct{}{}
	}

	eligible := make([]types.TroubleshootingStep, 0, len(steps))
	for _, s := range steps {
		ok := true
		for _, req := range s.Requires {
			if _, exists := known[req]; !exists {
				if _, done := completed[req]; !done {
					return nil, fmt.Errorf("steps: step %q requires unknown step %q", s.ID, req)
				}
			}
			if !completed[req] {
				ok = false
				break
			}
		}
		if ok {
			eligible = append(eligible, s)
		}
	}

	scores := make(map[string]float64, len(eligible))
	for _, s := range eligible {
		scores[s.ID] = p.score(s, profile)
	}

	sort.SliceStable(eligible, func(i, j int) bool {
		return scores[eligible[i].ID] > scores[eligible[j].ID]
	})

	p.log.Debug("steps: prioritized", "eligible", len(eligible), "total", len(steps))
	return eligible, nil
}

// Score exposes the composite score of a single step for the profile.
func (p *Prioritizer) Score(step types.TroubleshootingStep, profile types.CustomerTechnicalProfile) float64 {
	return p.score(step, profile)
}

func (p *Prioritizer) score(step types.TroubleshootingStep, profile types.CustomerTechnicalProfile) float64 {
	w := p.weights

	success := p.successRate(step.ID)
	tech := techMatch(step.Complexity, profile.Level)
	timeScore := timeFactor(step.EstimatedTime) * patienceFactor(profile.Patience)
	complexity := 1 - float64(step.Complexity-1)/4

	return w.Success*success + w.TechMatch*tech + w.Time*timeScore + w.Complexity*complexity
}

// RecordOutcome folds one observed outcome into the step's success estimate
// using an exponential moving average, so recent outcomes dominate stale
// history.
func (p *Prioritizer) RecordOutcome(stepID string, succeeded bool) {
	outcome := 0.0
	if succeeded {
		outcome = 1.0
	}

	p.mu.Lock()
	st, ok := p.stats[stepID]
	if !ok {
		st = stepStats{rate: successPrior}
	}
	st.rate = st.rate + p.decay*(outcome-st.rate)
	st.observed++
	p.stats[stepID] = st
	p.mu.Unlock()

	p.log.Info("steps: outcome recorded", "step", stepID, "succeeded", succeeded, "rate", st.rate)
}

// SuccessRate returns the current success estimate for a step. Unobserved
// steps report the prior.
func (p *Prioritizer) SuccessRate(stepID string) float64 {
	return p.successRate(stepID)
}

func (p *Prioritizer) successRate(stepID string) float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	if st, ok := p.stats[stepID]; ok {
		return st.rate
	}
	return successPrior
}

// techMatch scores how well a step's complexity fits the customer's level.
// A perfect fit scores 1; each level of mismatch costs 0.25.
func techMatch(complexity int, level types.TechnicalLevel) float64 {
	diff := complexity - int(level)
	if diff < 0 {
		diff = -diff
	}
	score := 1 - 0.25*float64(diff)
	if score < 0 {
		return 0
	}
	return score
}

// timeFactor prefers quick steps: 1 at zero duration, 0 at timeCeiling and
// beyond.
func timeFactor(d time.Duration) float64 {
	frac := float64(d) / float64(timeCeiling)
	if frac > 1 {
		frac = 1
	}
	return 1 - frac
}

// patienceFactor maps the customer's 1..5 patience rating onto (0, 1].
func patienceFactor(patience int) float64 {
	if patience < 1 {
		patience = 1
	}
	if patience > 5 {
		patience = 5
	}
	return float64(patience) / 5
}
