// Package classify scores enhanced transcripts against the lexicon's issue
// tables and produces a ranked classification with confidence and extracted
// technical parameters.
//
// Scoring is tiered and additive per candidate issue type:
//
//   - area/incident match against the customer's service area: 10
//   - exact issue-type keyword match (either language): 8
//   - linked domain-keyword-set match: 3 per distinct set
//   - loose word overlap with the issue description: 2 per distinct word
//
// Confidence is the candidate's score divided by the combined weight of the
// two strong tiers (area + type), clamped to [0, 1]. The denominator is
// fixed, so an additional matched signal can only raise confidence, and a
// type-keyword hit corroborated by an area incident reaches full confidence
// on its own. Ties between candidates are broken by declaration order in the
// lexicon, which is deterministic but essentially arbitrary.
//
// Priority rules (unambiguous physical-layer signals such as a red LOS
// light) bypass tiered scoring entirely and return with near-certain
// confidence.
package classify

import (
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/ashikjoy21/abc-customer-care/internal/lexicon"
	"github.com/ashikjoy21/abc-customer-care/pkg/types"
)

const (
	weightArea   = 10.0
	weightType   = 8.0
	weightDomain = 3.0
	weightWord   = 2.0

	// confidenceCeiling normalizes scores into confidence. It is a fixed
	// reference (not the sum of whichever tiers matched) so that confidence
	// is monotonically non-decreasing in the matched signals.
	confidenceCeiling = weightArea + weightType

	priorityConfidence = 0.99

	defaultMinConfidence = 0.3
	defaultHistoryWindow = 3
)

// Option configures a [Classifier].
type Option func(*Classifier)

// WithMinConfidence sets the confidence floor below which conversation
// history is folded in for a second scoring pass. Default: 0.3.
func WithMinConfidence(c float64) Option {
	return func(cl *Classifier) {
		cl.minConfidence = c
	}
}

// WithHistoryWindow sets how many trailing turns the history fallback may
// concatenate. Default: 3.
func WithHistoryWindow(n int) Option {
	return func(cl *Classifier) {
		cl.historyWindow = n
	}
}

// WithLogger sets the logger. Defaults to [slog.Default].
func WithLogger(log *slog.Logger) Option {
	return func(cl *Classifier) {
		cl.log = log
	}
}

// ClassifyOption carries per-call context into [Classifier.Classify].
type ClassifyOption func(*query)

// WithCustomerArea supplies the caller's service area for the incident tier.
func WithCustomerArea(area string) ClassifyOption {
	return func(q *query) {
		q.area = area
	}
}

// WithActiveIncidents supplies the currently active provider incidents.
func WithActiveIncidents(incidents []types.Incident) ClassifyOption {
	return func(q *query) {
		q.incidents = incidents
	}
}

type query struct {
	area      string
	incidents []types.Incident
}

// Classifier scores utterances against the lexicon's issue tables.
// Read-only after construction and safe for concurrent use.
type Classifier struct {
	lex           *lexicon.Lexicon
	minConfidence float64
	historyWindow int
	log           *slog.Logger
}

// New returns a Classifier over the given lexicon.
func New(lex *lexicon.Lexicon, opts ...Option) *Classifier {
	cl := &Classifier{
		lex:           lex,
		minConfidence: defaultMinConfidence,
		historyWindow: defaultHistoryWindow,
		log:           slog.Default(),
	}
	for _, o := range opts {
		o(cl)
	}
	return cl
}

// Classify classifies an enhanced utterance. It is total: degenerate input
// yields the unclassified sentinel at zero confidence, never an error.
func (cl *Classifier) Classify(text string, history []types.ConversationTurn, opts ...ClassifyOption) types.ClassificationResult {
	var q query
	for _, o := range opts {
		o(&q)
	}

	result := types.ClassificationResult{Issue: types.IssueUnclassified}
	result.Params = cl.extractParams(text)

	lower := strings.ToLower(strings.TrimSpace(text))
	if lower == "" {
		return result
	}

	if res, ok := cl.applyPriorityRules(lower, result.Params); ok {
		return res
	}

	issue, confidence, matches := cl.scoreCandidates(lower, q)

	if confidence < cl.minConfidence && len(history) > 0 {
		combined := cl.combineWithHistory(lower, history)
		if hIssue, hConf, hMatches := cl.scoreCandidates(combined, q); hConf > confidence {
			issue, confidence, matches = hIssue, hConf, hMatches
			result.UsedHistory = true
			cl.log.Info("classify: recovered from history", "issue", issue, "confidence", hConf)
		}
	}

	if issue == "" {
		return result
	}

	result.Issue = issue
	result.Confidence = confidence
	result.Matches = matches
	result.SubIssues = cl.detectSubIssues(lower, issue)
	return result
}

// applyPriorityRules checks the ordered fast-path rules.
func (cl *Classifier) applyPriorityRules(lower string, params types.TechnicalParams) (types.ClassificationResult, bool) {
	for _, rule := range cl.lex.PriorityRules {
		for _, ind := range rule.Indicators {
			if !containsPhrase(lower, ind) {
				continue
			}
			cl.log.Info("classify: priority rule hit", "rule", rule.Name, "indicator", ind)
			res := types.ClassificationResult{
				Issue:      rule.Issue,
				Confidence: priorityConfidence,
				Matches:    []types.KeywordMatch{{Keyword: ind, Tier: "rule", Score: 0}},
				Params:     params,
			}
			if rule.SubIssue != "" {
				res.SubIssues = []string{rule.SubIssue}
			}
			return res, true
		}
	}
	return types.ClassificationResult{}, false
}

// scoreCandidates runs the tiered scorer over every issue type and returns
// the winner. An empty issue means no candidate scored above zero.
func (cl *Classifier) scoreCandidates(lower string, q query) (string, float64, []types.KeywordMatch) {
	queryTokens := distinctTokens(lower)

	incidentIssues := make(map[string]string, len(q.incidents))
	if q.area != "" {
		for _, inc := range q.incidents {
			if strings.EqualFold(inc.Area, q.area) {
				incidentIssues[inc.Issue] = inc.Area
			}
		}
	}

	var (
		bestIssue   string
		bestScore   float64
		bestConf    float64
		bestMatches []types.KeywordMatch
	)

	for _, def := range cl.lex.Issues {
		var (
			score   float64
			matches []types.KeywordMatch
		)

		// Area tier.
		if area, ok := incidentIssues[def.Type]; ok {
			score += weightArea
			matches = append(matches, types.KeywordMatch{Keyword: area, Tier: "area", Score: weightArea})
		}

		// Type-keyword tier: 8 once per matching category.
		for _, kw := range def.Keywords {
			if containsPhrase(lower, kw) {
				score += weightType
				matches = append(matches, types.KeywordMatch{Keyword: kw, Tier: "type", Score: weightType})
				break
			}
		}

		// Domain-set tier: 3 per distinct matching linked set.
		for _, setName := range def.DomainSets {
			for _, syn := range cl.lex.DomainSets[setName] {
				if containsPhrase(lower, syn) {
					score += weightDomain
					matches = append(matches, types.KeywordMatch{Keyword: setName, Tier: "domain", Score: weightDomain})
					break
				}
			}
		}

		// Word-overlap tier: 2 per distinct query token found in the
		// description.
		descTokens := distinctTokens(strings.ToLower(def.Description))
		for tok := range queryTokens {
			if _, ok := descTokens[tok]; ok {
				score += weightWord
				matches = append(matches, types.KeywordMatch{Keyword: tok, Tier: "word", Score: weightWord})
			}
		}

		if score <= 0 {
			continue
		}
		conf := score / confidenceCeiling
		if conf > 1 {
			conf = 1
		}

		// Strictly-greater comparison keeps the earliest declared issue on
		// ties.
		if score > bestScore {
			bestIssue, bestScore, bestConf, bestMatches = def.Type, score, conf, matches
		}
	}

	return bestIssue, bestConf, bestMatches
}

// detectSubIssues runs the second, issue-scoped pass.
func (cl *Classifier) detectSubIssues(lower, issue string) []string {
	var out []string
	for _, sub := range cl.lex.SubIssues[issue] {
		for _, ind := range sub.Indicators {
			if containsPhrase(lower, ind) {
				out = append(out, sub.ID)
				break
			}
		}
	}
	return out
}

// combineWithHistory concatenates the current text with the trailing
// customer turns, most recent first.
func (cl *Classifier) combineWithHistory(lower string, history []types.ConversationTurn) string {
	parts := []string{lower}
	added := 0
	for i := len(history) - 1; i >= 0 && added < cl.historyWindow; i-- {
		if history[i].Role != types.RoleCustomer {
			continue
		}
		parts = append(parts, strings.ToLower(history[i].Text))
		added++
	}
	return strings.Join(parts, " ")
}

// extractParams pulls technical parameters out of the raw text. Extraction
// never affects scoring.
func (cl *Classifier) extractParams(text string) types.TechnicalParams {
	var params types.TechnicalParams

	if m := lexicon.SpeedPattern.FindStringSubmatch(text); m != nil {
		if v, err := strconv.Atoi(m[1]); err == nil {
			params.Speed = &types.SpeedValue{Value: v, Unit: strings.ToLower(m[2])}
		}
	}
	if m := lexicon.ErrorCodePattern.FindStringSubmatch(text); m != nil {
		params.ErrorCode = strings.ToLower(m[1])
	}
	if m := lexicon.DurationPattern.FindStringSubmatch(text); m != nil {
		if v, err := strconv.Atoi(m[1]); err == nil {
			params.Duration = time.Duration(v) * durationUnit(m[2])
		}
	}
	return params
}

func durationUnit(unit string) time.Duration {
	switch strings.ToLower(unit) {
	case "ദിവസം", "day", "days":
		return 24 * time.Hour
	case "മണിക്കൂർ", "hour", "hours":
		return time.Hour
	default:
		return time.Minute
	}
}

// containsPhrase reports whether phrase occurs in text as a whole token
// sequence. Word boundaries are token boundaries: regex \b is ASCII-only and
// useless for Malayalam script.
func containsPhrase(lower, phrase string) bool {
	phrase = strings.ToLower(strings.TrimSpace(phrase))
	if phrase == "" {
		return false
	}
	textTokens := strings.Fields(strings.Map(stripPunct, lower))
	phraseTokens := strings.Fields(phrase)
	if len(phraseTokens) == 0 || len(phraseTokens) > len(textTokens) {
		return false
	}
outer:
	for i := 0; i+len(phraseTokens) <= len(textTokens); i++ {
		for j, pt := range phraseTokens {
			if textTokens[i+j] != pt {
				continue outer
			}
		}
		return true
	}
	return false
}

func distinctTokens(lower string) map[string]struct{} {
	tokens := strings.Fields(strings.Map(stripPunct, lower))
	set := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		set[t] = struct{}{}
	}
	return set
}

func stripPunct(r rune) rune {
	switch r {
	case '.', ',', '?', '!', ':', ';', '"', '\'':
		return ' '
	}
	return r
}
