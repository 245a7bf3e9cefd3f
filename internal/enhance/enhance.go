// Package enhance repairs speech-to-text errors in Malayalam/English
// customer-support transcripts.
//
// The [Enhancer] runs a fixed pipeline whose stage order is load-bearing:
// romanized Latin-script Malayalam must be resolved before any Malayalam-
// script matching can work, deterministic substitutions must run before
// fuzzy correction so the fuzzy stage only sees residual errors, and the
// fuzzy stage must skip already-canonical tokens so that enhancing its own
// output is a no-op.
//
// Every stage is total: a lookup miss leaves the affected fragment unchanged
// and the pipeline continues. Enhance never fails.
package enhance

import (
	"log/slog"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"github.com/ashikjoy21/abc-customer-care/internal/enhance/fuzzy"
	"github.com/ashikjoy21/abc-customer-care/internal/enhance/morph"
	"github.com/ashikjoy21/abc-customer-care/internal/lexicon"
	"github.com/ashikjoy21/abc-customer-care/pkg/types"
)

const (
	defaultHistoryWindow    = 3
	defaultAmbiguityEpsilon = 0.03
	minFuzzyTokenRunes      = 3
)

var duplicatedPunct = regexp.MustCompile(`([.,?!:;])[.,?!:;]+`)

// Option configures an [Enhancer].
type Option func(*Enhancer)

// WithMatcher replaces the fuzzy matcher used by the correction stage.
func WithMatcher(m *fuzzy.Matcher) Option {
	return func(e *Enhancer) {
		e.matcher = m
	}
}

// WithHistoryWindow sets how many trailing conversation turns feed context
// correction. Default: 3.
func WithHistoryWindow(n int) Option {
	return func(e *Enhancer) {
		e.historyWindow = n
	}
}

// WithAmbiguityEpsilon sets the score gap under which two fuzzy candidates
// are considered ambiguous and history is consulted. Default: 0.03.
func WithAmbiguityEpsilon(eps float64) Option {
	return func(e *Enhancer) {
		e.ambiguityEpsilon = eps
	}
}

// WithLogger sets the logger. Defaults to [slog.Default].
func WithLogger(log *slog.Logger) Option {
	return func(e *Enhancer) {
		e.log = log
	}
}

// Enhancer is the transcript-correction pipeline. Read-only after
// construction; one instance serves all in-flight calls.
type Enhancer struct {
	lex     *lexicon.Lexicon
	matcher *fuzzy.Matcher
	morph   *morph.Analyzer

	corpusTokens []fuzzy.Candidate

	historyWindow    int
	ambiguityEpsilon float64
	log              *slog.Logger
}

// New returns an Enhancer over the given lexicon.
func New(lex *lexicon.Lexicon, opts ...Option) *Enhancer {
	e := &Enhancer{
		lex:              lex,
		matcher:          fuzzy.New(),
		morph:            morph.NewAnalyzer(),
		historyWindow:    defaultHistoryWindow,
		ambiguityEpsilon: defaultAmbiguityEpsilon,
		log:              slog.Default(),
	}
	for _, o := range opts {
		o(e)
	}
	e.corpusTokens = corpusTokens(lex)
	return e
}

// Enhance runs the full correction pipeline over text. history is read-only
// and only consulted to disambiguate fuzzy candidates; it never introduces a
// substitution on its own.
func (e *Enhancer) Enhance(text string, history []types.ConversationTurn) string {
	if strings.TrimSpace(text) == "" {
		return ""
	}

	text = e.resolveRomanization(text)
	text = e.normalizeCodeSwitch(text)
	text = normalizeScript(text)
	text = e.applyErrorPatterns(text)
	text = e.applyNGrams(text)
	text = e.standardizeTerms(text)
	text = e.fuzzyCorrect(text, history)

	return strings.Join(strings.Fields(text), " ")
}

// resolveRomanization converts romanized Malayalam to Malayalam script.
// Multi-word phrases are matched greedily, longest window first, before
// single-word fallback.
func (e *Enhancer) resolveRomanization(text string) string {
	words := strings.Fields(text)
	out := make([]string, 0, len(words))
	maxWindow := e.lex.MaxRomanizedWords()

	for i := 0; i < len(words); {
		matched := false
		limit := min(maxWindow, len(words)-i)
		for j := limit; j >= 2; j-- {
			phrase := strings.ToLower(strings.Join(words[i:i+j], " "))
			if malayalam, ok := e.lex.Romanized[phrase]; ok {
				out = append(out, malayalam)
				i += j
				matched = true
				break
			}
		}
		if matched {
			continue
		}

		word, punct := splitPunct(words[i])
		if malayalam, ok := e.lex.Romanized[strings.ToLower(word)]; ok {
			out = append(out, malayalam+punct)
		} else {
			out = append(out, words[i])
		}
		i++
	}
	return strings.Join(out, " ")
}

// normalizeCodeSwitch replaces recognized English loanwords with their
// canonical Malayalam rendering. Two-word loanword phrases ("speed test")
// are checked before single words. Unknown English words stay untouched.
func (e *Enhancer) normalizeCodeSwitch(text string) string {
	words := strings.Fields(text)
	out := make([]string, 0, len(words))

	for i := 0; i < len(words); {
		if i+1 < len(words) {
			phrase := strings.ToLower(words[i] + " " + words[i+1])
			if malayalam, ok := e.lex.Loanwords[phrase]; ok {
				out = append(out, malayalam)
				i += 2
				continue
			}
		}

		word, punct := splitPunct(words[i])
		if malayalam, ok := e.lex.Loanwords[strings.ToLower(word)]; ok && isLatin(word) {
			out = append(out, malayalam+punct)
		} else {
			out = append(out, words[i])
		}
		i++
	}
	return strings.Join(out, " ")
}

// normalizeScript applies NFC normalization (so Malayalam vowel signs have a
// single canonical byte form), strips control characters and collapses
// duplicated punctuation. Format characters (ZWJ/ZWNJ) are preserved: they
// are orthographically significant in Malayalam.
func normalizeScript(text string) string {
	text = norm.NFC.String(text)
	text = strings.Map(func(r rune) rune {
		if unicode.IsControl(r) && r != '\n' && r != '\t' {
			return -1
		}
		return r
	}, text)
	return duplicatedPunct.ReplaceAllString(text, "$1")
}

// applyErrorPatterns runs the ordered STT error-substitution list once each,
// in declaration order.
func (e *Enhancer) applyErrorPatterns(text string) string {
	for _, p := range e.lex.ErrorPatterns {
		text = p.Apply(text)
	}
	return text
}

// applyNGrams applies domain phrase corrections over sliding token windows,
// longest window first. Matching is token-exact, never substring: Malayalam
// compounds routinely contain shorter terms ("ഇന്റർനെറ്റ്" contains
// "നെറ്റ്") and substring replacement would corrupt already-correct text.
// When a window's replacement is already spelled out at that position the
// span is consumed unchanged, which keeps the stage idempotent.
func (e *Enhancer) applyNGrams(text string) string {
	tokens := strings.Fields(text)
	out := make([]string, 0, len(tokens))
	maxWindow := e.lex.MaxNGramWords()

	for i := 0; i < len(tokens); {
		matched := false
		for j := min(maxWindow, len(tokens)-i); j >= 1; j-- {
			phrase := strings.Join(tokens[i:i+j], " ")
			to, ok := e.lex.NGramReplacement(phrase)
			if !ok {
				continue
			}
			toTokens := strings.Fields(to)
			if i+len(toTokens) <= len(tokens) && equalTokens(tokens[i:i+len(toTokens)], toTokens) {
				out = append(out, toTokens...)
				i += len(toTokens)
			} else {
				out = append(out, toTokens...)
				i += j
			}
			matched = true
			break
		}
		if !matched {
			out = append(out, tokens[i])
			i++
		}
	}
	return strings.Join(out, " ")
}

func equalTokens(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// standardizeTerms canonicalizes technical-term synonyms token by token,
// using the synonym table first and morphological analysis for inflected
// forms the table does not list.
func (e *Enhancer) standardizeTerms(text string) string {
	words := strings.Fields(text)
	out := make([]string, 0, len(words))
	for _, w := range words {
		word, punct := splitPunct(w)
		if canon, ok := e.lex.Terms[word]; ok {
			out = append(out, canon+punct)
			continue
		}
		out = append(out, e.morph.Canonicalize(word)+punct)
	}
	return strings.Join(out, " ")
}

// fuzzyCorrect replaces residual non-canonical tokens with their best corpus
// match (stage 7) and uses conversation history to break near-ties between
// candidates (stage 8).
func (e *Enhancer) fuzzyCorrect(text string, history []types.ConversationTurn) string {
	contextCands := e.contextCandidates(history)

	words := strings.Fields(text)
	out := make([]string, 0, len(words))
	for _, w := range words {
		word, punct := splitPunct(w)

		if e.lex.IsCanonical(word) || len([]rune(word)) < minFuzzyTokenRunes {
			out = append(out, w)
			continue
		}

		// Context-derived terms are higher-trust, so they are tried first
		// under the stricter threshold.
		if m, ok := e.matcher.MatchContext(word, contextCands); ok {
			out = append(out, m.Text+punct)
			continue
		}

		ranked := e.matcher.Rank(word, e.corpusTokens, e.matcher.CorpusThreshold())
		if len(ranked) == 0 {
			out = append(out, w)
			continue
		}

		choice := ranked[0]
		if len(ranked) > 1 && ranked[0].Score-ranked[1].Score < e.ambiguityEpsilon {
			if preferred, ok := disambiguate(ranked, history); ok {
				choice = preferred
			}
		}
		out = append(out, choice.Text+punct)
	}
	return strings.Join(out, " ")
}

// contextCandidates collects canonical technical terms mentioned in the
// trailing history window, weighted by mention count.
func (e *Enhancer) contextCandidates(history []types.ConversationTurn) []fuzzy.Candidate {
	if len(history) == 0 {
		return nil
	}
	start := len(history) - e.historyWindow
	if start < 0 {
		start = 0
	}

	counts := make(map[string]int)
	var order []string
	for _, turn := range history[start:] {
		for _, tok := range strings.Fields(turn.Text) {
			word, _ := splitPunct(tok)
			if !e.lex.IsCanonical(word) {
				continue
			}
			if counts[word] == 0 {
				order = append(order, word)
			}
			counts[word]++
		}
	}

	cands := make([]fuzzy.Candidate, 0, len(order))
	for _, w := range order {
		cands = append(cands, fuzzy.Candidate{Text: w, Freq: counts[w]})
	}
	return cands
}

// disambiguate picks among near-tied fuzzy candidates the one history
// mentions unambiguously. Reports false when history names none or several
// of them.
func disambiguate(ranked []fuzzy.Match, history []types.ConversationTurn) (fuzzy.Match, bool) {
	var found fuzzy.Match
	n := 0
	for _, cand := range ranked {
		for _, turn := range history {
			if strings.Contains(turn.Text, cand.Text) {
				found = cand
				n++
				break
			}
		}
	}
	if n == 1 {
		return found, true
	}
	return fuzzy.Match{}, false
}

// corpusTokens flattens the phrase corpus into distinct tokens with summed
// frequencies for token-level fuzzy matching.
func corpusTokens(lex *lexicon.Lexicon) []fuzzy.Candidate {
	counts := make(map[string]int)
	var order []string
	for _, p := range lex.Phrases {
		for _, tok := range strings.Fields(p.Text) {
			if counts[tok] == 0 {
				order = append(order, tok)
			}
			counts[tok] += p.Freq
		}
	}
	cands := make([]fuzzy.Candidate, 0, len(order))
	for _, tok := range order {
		cands = append(cands, fuzzy.Candidate{Text: tok, Freq: counts[tok]})
	}
	return cands
}

// splitPunct detaches trailing sentence punctuation from a token.
func splitPunct(tok string) (word, punct string) {
	trimmed := strings.TrimRight(tok, ".,?!:;\"'")
	return trimmed, tok[len(trimmed):]
}

func isLatin(word string) bool {
	for _, r := range word {
		if r > unicode.MaxASCII {
			return false
		}
	}
	return word != ""
}
