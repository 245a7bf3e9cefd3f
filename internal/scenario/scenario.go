// Package scenario provides the troubleshooting scenario catalog: the YAML
// schema, loader, and the registry that publishes the active catalog to the
// rest of the bot.
//
// A catalog maps classified issue types to ordered troubleshooting scenarios.
// Catalogs are immutable after load; a reload builds a fresh catalog and
// publishes it with an atomic pointer swap, so in-flight calls keep the
// catalog they started with.
package scenario

import (
	"errors"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/ashikjoy21/abc-customer-care/pkg/types"
)

// EscalationPolicy declares when a scenario should stop self-service and hand
// the call to a human technician.
type EscalationPolicy struct {
	// MaxFailedSteps escalates after this many failed steps. Zero disables
	// the check.
	MaxFailedSteps int `yaml:"max_failed_steps"`

	// MaxCallDuration escalates once the call has run this long. Zero
	// disables the check.
	MaxCallDuration time.Duration `yaml:"max_call_duration"`

	// MinConfidence escalates when classification confidence stays below this
	// floor. Zero disables the check.
	MinConfidence float64 `yaml:"min_confidence"`

	// Keywords are customer phrases (either language) that request a human
	// directly.
	Keywords []string `yaml:"keywords"`

	// AutoSubIssues lists sub-issue ids that escalate immediately, without
	// attempting any step (e.g. a confirmed fiber cut).
	AutoSubIssues []string `yaml:"auto_sub_issues"`
}

// UnmarshalYAML decodes the policy; durations are Go duration strings.
func (p *EscalationPolicy) UnmarshalYAML(value *yaml.Node) error {
	var raw struct {
		MaxFailedSteps  int      `yaml:"max_failed_steps"`
		MaxCallDuration string   `yaml:"max_call_duration"`
		MinConfidence   float64  `yaml:"min_confidence"`
		Keywords        []string `yaml:"keywords"`
		AutoSubIssues   []string `yaml:"auto_sub_issues"`
	}
	if err := value.Decode(&raw); err != nil {
		return err
	}

	p.MaxFailedSteps = raw.MaxFailedSteps
	p.MinConfidence = raw.MinConfidence
	p.Keywords = raw.Keywords
	p.AutoSubIssues = raw.AutoSubIssues
	p.MaxCallDuration = 0
	if raw.MaxCallDuration != "" {
		d, err := time.ParseDuration(raw.MaxCallDuration)
		if err != nil {
			return fmt.Errorf("scenario: max_call_duration: %w", err)
		}
		p.MaxCallDuration = d
	}
	return nil
}

// Scenario is one troubleshooting flow for an issue (optionally narrowed to a
// sub-issue).
type Scenario struct {
	// ID uniquely identifies the scenario across the whole catalog.
	ID string `yaml:"id"`

	// Issue is the classified issue type this scenario handles.
	Issue string `yaml:"issue"`

	// SubIssue optionally narrows the scenario to one sub-issue id. Scenarios
	// with a sub-issue are preferred over the issue-wide fallback.
	SubIssue string `yaml:"sub_issue"`

	// Title is the scenario's display name in both languages.
	Title types.LocalizedText `yaml:"title"`

	// Steps is the declared step pool, in catalog order. Runtime ordering is
	// the prioritizer's job.
	Steps []types.TroubleshootingStep `yaml:"steps"`

	// Escalation declares the hand-off conditions for this scenario.
	Escalation EscalationPolicy `yaml:"escalation"`
}

// Catalog is a full, validated scenario set.
type Catalog struct {
	Scenarios []Scenario `yaml:"scenarios"`

	byID    map[string]*Scenario
	byIssue map[string][]*Scenario
}

// finish builds the lookup indexes. Called once by the loader.
func (c *Catalog) finish() {
	c.byID = make(map[string]*Scenario, len(c.Scenarios))
	c.byIssue = make(map[string][]*Scenario, len(c.Scenarios))
	for i := range c.Scenarios {
		s := &c.Scenarios[i]
		c.byID[s.ID] = s
		c.byIssue[s.Issue] = append(c.byIssue[s.Issue], s)
	}
}

// ByID returns the scenario with the given id.
func (c *Catalog) ByID(id string) (*Scenario, bool) {
	s, ok := c.byID[id]
	return s, ok
}

// ForIssue returns every scenario declared for an issue type, in catalog
// order.
func (c *Catalog) ForIssue(issue string) []*Scenario {
	return c.byIssue[issue]
}

// Match picks the scenario for a classification: the first scenario whose
// sub-issue is among the detected sub-issues, else the issue-wide scenario
// (one with no sub-issue), else nil.
func (c *Catalog) Match(issue string, subIssues []string) *Scenario {
	var fallback *Scenario
	for _, s := range c.byIssue[issue] {
		if s.SubIssue == "" {
			if fallback == nil {
				fallback = s
			}
			continue
		}
		for _, sub := range subIssues {
			if s.SubIssue == sub {
				return s
			}
		}
	}
	return fallback
}

// Validate checks the catalog for structural problems. It returns a joined
// error listing all failures found.
func (c *Catalog) Validate() error {
	var errs []error

	if len(c.Scenarios) == 0 {
		errs = append(errs, errors.New("scenario: catalog is empty"))
	}

	idsSeen := make(map[string]int, len(c.Scenarios))
	for i, s := range c.Scenarios {
		prefix := fmt.Sprintf("scenario: scenarios[%d]", i)
		if s.ID == "" {
			errs = append(errs, fmt.Errorf("%s.id is required", prefix))
		} else {
			if prev, ok := idsSeen[s.ID]; ok {
				errs = append(errs, fmt.Errorf("%s.id %q is a duplicate of scenarios[%d]", prefix, s.ID, prev))
			}
			idsSeen[s.ID] = i
		}
		if s.Issue == "" {
			errs = append(errs, fmt.Errorf("%s.issue is required", prefix))
		}
		if len(s.Steps) == 0 {
			errs = append(errs, fmt.Errorf("%s has no steps", prefix))
		}

		stepSeen := make(map[string]struct{}, len(s.Steps))
		for j, step := range s.Steps {
			sp := fmt.Sprintf("%s.steps[%d]", prefix, j)
			if step.ID == "" {
				errs = append(errs, fmt.Errorf("%s.id is required", sp))
				continue
			}
			if _, ok := stepSeen[step.ID]; ok {
				errs = append(errs, fmt.Errorf("%s.id %q is a duplicate within the scenario", sp, step.ID))
			}
			if step.Complexity < 1 || step.Complexity > 5 {
				errs = append(errs, fmt.Errorf("%s.complexity %d is out of range [1, 5]", sp, step.Complexity))
			}
			if step.Text.Malayalam == "" {
				errs = append(errs, fmt.Errorf("%s.text.ml is required", sp))
			}
			// Prerequisites must be declared earlier in the same scenario,
			// which also rules out cycles.
			for _, req := range step.Requires {
				if _, ok := stepSeen[req]; !ok {
					errs = append(errs, fmt.Errorf("%s requires %q, which is not declared before it", sp, req))
				}
			}
			stepSeen[step.ID] = struct{}{}
		}
	}

	return errors.Join(errs...)
}
