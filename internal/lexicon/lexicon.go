// Package lexicon holds the static dictionaries and pattern tables that drive
// transcript enhancement and issue classification: romanization maps, known
// STT error substitutions, technical-term synonym tables, domain n-grams, the
// common-phrase corpus and the per-issue keyword tables.
//
// A [Lexicon] is immutable after construction. Components receive it at
// construction time and never mutate it, so a single instance can be shared
// by every in-flight call. Runtime replacement (e.g. after a catalog reload)
// is an atomic pointer swap performed by the scenario registry, never an
// in-place edit.
package lexicon

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// ErrorPattern is one deterministic substitution applied by the enhancer's
// error-correction stage. Patterns are applied in declaration order; earlier
// patterns win for overlapping spans because later patterns see the already
// rewritten text.
type ErrorPattern struct {
	// Name is a short label used in logs.
	Name string

	// Match is the compiled trigger pattern. Nil when Literal is set.
	Match *regexp.Regexp

	// Literal is a plain-text trigger, used for the common case where no
	// regular expression is needed.
	Literal string

	// Replace is the replacement text. For regex patterns it may reference
	// capture groups ($1, $2, ...).
	Replace string
}

// Apply returns text with this pattern's substitution applied. A pattern that
// does not match is a no-op.
func (p ErrorPattern) Apply(text string) string {
	if p.Match != nil {
		return p.Match.ReplaceAllString(text, p.Replace)
	}
	return strings.ReplaceAll(text, p.Literal, p.Replace)
}

// Phrase is one entry of the common-phrase corpus used by fuzzy correction.
type Phrase struct {
	// Text is the canonical phrase.
	Text string

	// Freq is the relative observation frequency. Fuzzy-score ties are broken
	// in favour of the higher-frequency phrase.
	Freq int
}

// NGram is one ordered multi-word domain correction.
type NGram struct {
	From string
	To   string
}

// IssueDefinition declares one classifiable issue type. Declaration order in
// [Lexicon.Issues] is the documented (deterministic but arbitrary) tie-break
// for equal classification scores.
type IssueDefinition struct {
	// Type is the issue type identifier (e.g. "internet_down").
	Type string

	// Keywords are exact-match issue keywords in both languages.
	Keywords []string

	// DomainSets names the multilingual synonym sets linked to this issue.
	DomainSets []string

	// Description is free text whose tokens feed the loose word-overlap tier.
	Description string
}

// SubIssue is a finer-grained classification nested under a primary issue.
type SubIssue struct {
	ID         string
	Indicators []string
}

// PriorityRule short-circuits classification when its indicators match,
// mapping directly to an issue/sub-issue pair with near-certain confidence.
// Used for signals that make further scoring pointless (a red LOS light is a
// fiber cut, a dead adapter is a hardware fault).
type PriorityRule struct {
	Name       string
	Issue      string
	SubIssue   string
	Indicators []string

	// Metadata is attached verbatim to the classification result's matches
	// via the rule name; flags such as "needs_technician" live here.
	Metadata map[string]bool
}

// Lexicon bundles every static table. All fields are read-only after Default
// or a catalog load; see the package comment for the sharing contract.
type Lexicon struct {
	// Romanized maps lowercase romanized-Malayalam words and phrases to
	// Malayalam script. Multi-word keys are matched greedily, longest first.
	Romanized map[string]string

	// Loanwords maps lowercase English loanwords to their canonical Malayalam
	// rendering, used by code-switch normalization.
	Loanwords map[string]string

	// ErrorPatterns is the ordered STT error-substitution list.
	ErrorPatterns []ErrorPattern

	// NGrams are domain phrase corrections, checked as 2–3 token windows
	// before single-token fallbacks.
	NGrams []NGram

	// Terms maps technical-term synonyms and misspellings to one canonical
	// representative per language.
	Terms map[string]string

	// Phrases is the common-phrase corpus for fuzzy correction.
	Phrases []Phrase

	// SilenceDenylist lists known STT mis-transcriptions of silence or
	// background noise.
	SilenceDenylist []string

	// ContentDenylist lists inappropriate tokens stripped by the normalizer,
	// covering script variants of the same term.
	ContentDenylist []string

	// Issues is the ordered issue-type table.
	Issues []IssueDefinition

	// DomainSets maps a set name (e.g. "fiber") to its multilingual synonyms.
	DomainSets map[string][]string

	// SubIssues maps an issue type to its sub-issue indicator table.
	SubIssues map[string][]SubIssue

	// PriorityRules are evaluated before tiered scoring, in order.
	PriorityRules []PriorityRule

	maxRomanizedWords int
	maxNGramWords     int
	ngramIndex        map[string]string
	canonical         map[string]struct{}
}

// Default returns the built-in lexicon. The tables are assembled once; the
// returned value must be treated as immutable.
func Default() *Lexicon {
	lex := &Lexicon{
		Romanized:       romanizedMalayalam,
		Loanwords:       englishLoanwords,
		ErrorPatterns:   sttErrorPatterns,
		NGrams:          domainNGrams,
		Terms:           technicalTerms,
		Phrases:         commonPhrases,
		SilenceDenylist: silenceDenylist,
		ContentDenylist: contentDenylist,
		Issues:          issueTable,
		DomainSets:      domainKeywordSets,
		SubIssues:       subIssueTable,
		PriorityRules:   priorityRules,
	}
	lex.finish()
	return lex
}

// finish computes derived lookup structures. Must be called exactly once,
// before the lexicon is shared.
func (l *Lexicon) finish() {
	for phrase := range l.Romanized {
		if n := len(strings.Fields(phrase)); n > l.maxRomanizedWords {
			l.maxRomanizedWords = n
		}
	}

	// Longest-first so multi-word corrections run before their sub-phrases.
	sort.SliceStable(l.NGrams, func(i, j int) bool {
		return len(l.NGrams[i].From) > len(l.NGrams[j].From)
	})

	l.ngramIndex = make(map[string]string, len(l.NGrams))
	for _, g := range l.NGrams {
		if _, ok := l.ngramIndex[g.From]; !ok {
			l.ngramIndex[g.From] = g.To
		}
		if n := len(strings.Fields(g.From)); n > l.maxNGramWords {
			l.maxNGramWords = n
		}
	}

	l.canonical = make(map[string]struct{}, len(l.Terms)+len(l.Phrases))
	for _, canon := range l.Terms {
		for _, tok := range strings.Fields(canon) {
			l.canonical[tok] = struct{}{}
		}
	}
	for _, p := range l.Phrases {
		for _, tok := range strings.Fields(p.Text) {
			l.canonical[tok] = struct{}{}
		}
	}
	for _, g := range l.NGrams {
		for _, tok := range strings.Fields(g.To) {
			l.canonical[tok] = struct{}{}
		}
	}
	for _, malayalam := range l.Romanized {
		for _, tok := range strings.Fields(malayalam) {
			l.canonical[tok] = struct{}{}
		}
	}
}

// MaxRomanizedWords is the longest phrase length (in words) present in the
// romanization table; the enhancer uses it to bound its n-gram window.
func (l *Lexicon) MaxRomanizedWords() int {
	if l.maxRomanizedWords == 0 {
		return 1
	}
	return l.maxRomanizedWords
}

// NGramReplacement looks up the domain correction for an exact token phrase.
func (l *Lexicon) NGramReplacement(phrase string) (string, bool) {
	to, ok := l.ngramIndex[phrase]
	return to, ok
}

// MaxNGramWords is the longest n-gram length (in words), bounding the
// enhancer's token window.
func (l *Lexicon) MaxNGramWords() int {
	if l.maxNGramWords == 0 {
		return 1
	}
	return l.maxNGramWords
}

// IsCanonical reports whether token is already a canonical in-vocabulary
// form. Canonical tokens are never altered by fuzzy correction, which keeps
// the enhancement pipeline idempotent.
func (l *Lexicon) IsCanonical(token string) bool {
	_, ok := l.canonical[token]
	return ok
}

// IssueByType returns the declaration of the given issue type, or nil.
func (l *Lexicon) IssueByType(issue string) *IssueDefinition {
	for i := range l.Issues {
		if l.Issues[i].Type == issue {
			return &l.Issues[i]
		}
	}
	return nil
}

// Validate checks the lexicon for structural problems that would make
// request-time behaviour undefined. It is called at load time and returns a
// joined error listing every failure found; a process must not serve
// requests against a lexicon that fails validation.
func (l *Lexicon) Validate() error {
	var errs []error

	if len(l.Issues) == 0 {
		errs = append(errs, errors.New("lexicon: issue table is empty"))
	}
	seen := make(map[string]int, len(l.Issues))
	for i, def := range l.Issues {
		if def.Type == "" {
			errs = append(errs, fmt.Errorf("lexicon: issues[%d].type is required", i))
			continue
		}
		if prev, ok := seen[def.Type]; ok {
			errs = append(errs, fmt.Errorf("lexicon: issues[%d].type %q duplicates issues[%d]", i, def.Type, prev))
		}
		seen[def.Type] = i
		if len(def.Keywords) == 0 {
			errs = append(errs, fmt.Errorf("lexicon: issue %q has no keywords", def.Type))
		}
		for _, set := range def.DomainSets {
			if _, ok := l.DomainSets[set]; !ok {
				errs = append(errs, fmt.Errorf("lexicon: issue %q references unknown domain set %q", def.Type, set))
			}
		}
	}
	for issue := range l.SubIssues {
		if _, ok := seen[issue]; !ok {
			errs = append(errs, fmt.Errorf("lexicon: sub-issue table references unknown issue %q", issue))
		}
	}
	for i, rule := range l.PriorityRules {
		if rule.Issue == "" || len(rule.Indicators) == 0 {
			errs = append(errs, fmt.Errorf("lexicon: priority_rules[%d] (%s) needs an issue and indicators", i, rule.Name))
			continue
		}
		if _, ok := seen[rule.Issue]; !ok {
			errs = append(errs, fmt.Errorf("lexicon: priority_rules[%d] (%s) references unknown issue %q", i, rule.Name, rule.Issue))
			continue
		}
		if rule.SubIssue != "" && !hasSubIssue(l.SubIssues[rule.Issue], rule.SubIssue) {
			errs = append(errs, fmt.Errorf("lexicon: priority_rules[%d] (%s) references unknown sub-issue %q under %q", i, rule.Name, rule.SubIssue, rule.Issue))
		}
	}
	for i, p := range l.ErrorPatterns {
		if p.Match == nil && p.Literal == "" {
			errs = append(errs, fmt.Errorf("lexicon: error_patterns[%d] (%s) has neither a regex nor a literal", i, p.Name))
		}
	}

	return errors.Join(errs...)
}

func hasSubIssue(subs []SubIssue, id string) bool {
	for _, s := range subs {
		if s.ID == id {
			return true
		}
	}
	return false
}
