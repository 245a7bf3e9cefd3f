// Package fuzzy implements approximate matching of transcript tokens against
// a known-phrase corpus, using Double Metaphone phonetic encoding combined
// with Jaro-Winkler string similarity.
//
// The algorithm proceeds in two stages:
//
//  1. Phonetic candidate filtering: Double Metaphone codes are computed for
//     the input and for each candidate. Code overlap marks a candidate as a
//     phonetic match. Malayalam-script tokens produce no metaphone codes, so
//     for them this stage is a no-op and ranking falls through to stage 2.
//
//  2. Jaro-Winkler ranking: candidates are ranked by Jaro-Winkler similarity
//     on the original strings. Only candidates at or above the caller's
//     threshold are returned. Ties are broken by corpus frequency, then
//     lexicographically, so ranking is deterministic.
//
// Two thresholds are carried: a strict one for context-derived terms (terms
// seen earlier in the same call, where a correction is aggressive) and a
// looser one for the general corpus.
package fuzzy

import (
	"sort"
	"strings"

	"github.com/antzucaro/matchr"
)

const (
	defaultContextThreshold = 0.92
	defaultCorpusThreshold  = 0.84
)

// Candidate is one correction target with its corpus frequency.
type Candidate struct {
	Text string
	Freq int
}

// Match is one ranked correction candidate.
type Match struct {
	// Text is the candidate text.
	Text string

	// Score is the Jaro-Winkler similarity in [0, 1].
	Score float64

	// Freq is the candidate's corpus frequency.
	Freq int

	// Phonetic reports whether the candidate also matched phonetically.
	Phonetic bool
}

// Option is a functional option for configuring a [Matcher].
type Option func(*Matcher)

// WithContextThreshold sets the minimum similarity required to accept a
// correction against a context-derived term. Default: 0.92.
func WithContextThreshold(threshold float64) Option {
	return func(m *Matcher) {
		m.contextThreshold = threshold
	}
}

// WithCorpusThreshold sets the minimum similarity required to accept a
// correction against the general phrase corpus. Default: 0.84.
func WithCorpusThreshold(threshold float64) Option {
	return func(m *Matcher) {
		m.corpusThreshold = threshold
	}
}

// Matcher ranks correction candidates for transcript tokens. Read-only after
// construction and safe for concurrent use.
type Matcher struct {
	contextThreshold float64
	corpusThreshold  float64
}

// New returns a new [Matcher] configured with the supplied options.
func New(opts ...Option) *Matcher {
	m := &Matcher{
		contextThreshold: defaultContextThreshold,
		corpusThreshold:  defaultCorpusThreshold,
	}
	for _, o := range opts {
		o(m)
	}
	return m
}

// MatchContext finds the best context-term correction for word. When matched
// is false, the returned Match is the zero value.
func (m *Matcher) MatchContext(word string, candidates []Candidate) (Match, bool) {
	ranked := m.Rank(word, candidates, m.contextThreshold)
	if len(ranked) == 0 {
		return Match{}, false
	}
	return ranked[0], true
}

// MatchCorpus finds the best general-corpus correction for word. When matched
// is false, the returned Match is the zero value.
func (m *Matcher) MatchCorpus(word string, candidates []Candidate) (Match, bool) {
	ranked := m.Rank(word, candidates, m.corpusThreshold)
	if len(ranked) == 0 {
		return Match{}, false
	}
	return ranked[0], true
}

// CorpusThreshold returns the configured general-corpus threshold.
func (m *Matcher) CorpusThreshold() float64 { return m.corpusThreshold }

// Rank returns every candidate scoring at or above threshold, best first.
// Equal scores are ordered by descending frequency, then lexicographically.
// An empty result means no candidate qualified; the caller keeps the word.
func (m *Matcher) Rank(word string, candidates []Candidate, threshold float64) []Match {
	word = strings.ToLower(strings.TrimSpace(word))
	if word == "" || len(candidates) == 0 {
		return nil
	}

	inputTokens := strings.Fields(word)
	inputCodes := codesForTokens(inputTokens)

	var out []Match
	for _, c := range candidates {
		candLower := strings.ToLower(strings.TrimSpace(c.Text))
		if candLower == "" {
			continue
		}
		candTokens := strings.Fields(candLower)

		score := bestSimilarity(inputTokens, candTokens, word, candLower)
		if score < threshold {
			continue
		}
		out = append(out, Match{
			Text:     c.Text,
			Score:    score,
			Freq:     c.Freq,
			Phonetic: codesOverlap(inputCodes, codesForTokens(candTokens)),
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		if out[i].Freq != out[j].Freq {
			return out[i].Freq > out[j].Freq
		}
		return out[i].Text < out[j].Text
	})
	return out
}

// codesForTokens returns the union of all Double Metaphone codes for the
// given tokens. Tokens that yield no code (non-Latin scripts, very short
// words) contribute nothing.
func codesForTokens(tokens []string) map[string]struct{} {
	codes := make(map[string]struct{}, len(tokens)*2)
	for _, t := range tokens {
		p, s := matchr.DoubleMetaphone(t)
		if p != "" {
			codes[p] = struct{}{}
		}
		if s != "" {
			codes[s] = struct{}{}
		}
	}
	return codes
}

func codesOverlap(a, b map[string]struct{}) bool {
	if len(a) > len(b) {
		a, b = b, a
	}
	for code := range a {
		if _, ok := b[code]; ok {
			return true
		}
	}
	return false
}

// bestSimilarity computes the highest Jaro-Winkler similarity between the
// input and the candidate using three strategies: full strings, space-
// stripped strings, and the best pairwise token score.
func bestSimilarity(inputTokens, candTokens []string, inputFull, candFull string) float64 {
	score := matchr.JaroWinkler(inputFull, candFull, false)

	if len(inputTokens) > 1 || len(candTokens) > 1 {
		concat1 := strings.Join(inputTokens, "")
		concat2 := strings.Join(candTokens, "")
		if s := matchr.JaroWinkler(concat1, concat2, false); s > score {
			score = s
		}
	}

	for _, it := range inputTokens {
		for _, ct := range candTokens {
			if s := matchr.JaroWinkler(it, ct, false); s > score {
				score = s
			}
		}
	}

	return score
}
