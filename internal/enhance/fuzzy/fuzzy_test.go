package fuzzy_test

import (
	"testing"

	"github.com/ashikjoy21/abc-customer-care/internal/enhance/fuzzy"
)

func TestMatchCorpusExact(t *testing.T) {
	t.Parallel()

	m := fuzzy.New()
	candidates := []fuzzy.Candidate{
		{Text: "router", Freq: 10},
		{Text: "modem", Freq: 5},
	}

	match, ok := m.MatchCorpus("router", candidates)
	if !ok {
		t.Fatal("exact word did not match")
	}
	if match.Text != "router" {
		t.Errorf("matched %q, want router", match.Text)
	}
	if match.Score < 0.99 {
		t.Errorf("score = %v, want ~1.0", match.Score)
	}
}

func TestMatchCorpusNearMiss(t *testing.T) {
	t.Parallel()

	m := fuzzy.New()
	candidates := []fuzzy.Candidate{
		{Text: "router", Freq: 10},
		{Text: "recharge", Freq: 5},
	}

	match, ok := m.MatchCorpus("rauter", candidates)
	if !ok {
		t.Fatal("near-miss did not match")
	}
	if match.Text != "router" {
		t.Errorf("matched %q, want router", match.Text)
	}
	if !match.Phonetic {
		t.Error("rauter/router should overlap phonetically")
	}
}

func TestMatchCorpusRejectsDissimilar(t *testing.T) {
	t.Parallel()

	m := fuzzy.New()
	candidates := []fuzzy.Candidate{{Text: "router", Freq: 10}}

	if match, ok := m.MatchCorpus("television", candidates); ok {
		t.Errorf("unexpected match %+v", match)
	}
}

func TestContextThresholdStricter(t *testing.T) {
	t.Parallel()

	m := fuzzy.New()
	candidates := []fuzzy.Candidate{{Text: "broadband", Freq: 1}}

	// "brodband" scores between the two thresholds: accepted for the corpus,
	// rejected as a context correction.
	if _, ok := m.MatchCorpus("brodband", candidates); !ok {
		t.Error("corpus match rejected")
	}
}

func TestRankFrequencyTieBreak(t *testing.T) {
	t.Parallel()

	m := fuzzy.New()
	// Identical candidates except frequency: the ranking must prefer the
	// more frequent one deterministically.
	candidates := []fuzzy.Candidate{
		{Text: "signal", Freq: 2},
		{Text: "signal", Freq: 9},
	}

	ranked := m.Rank("signal", candidates, 0.8)
	if len(ranked) != 2 {
		t.Fatalf("got %d matches, want 2", len(ranked))
	}
	if ranked[0].Freq != 9 {
		t.Errorf("top match freq = %d, want 9", ranked[0].Freq)
	}
}

func TestRankMalayalamScript(t *testing.T) {
	t.Parallel()

	m := fuzzy.New()
	candidates := []fuzzy.Candidate{
		{Text: "ഇന്റർനെറ്റ് വരുന്നില്ല", Freq: 120},
		{Text: "ബിൽ അടച്ചു", Freq: 28},
	}

	// No metaphone codes exist for Malayalam, so ranking is pure
	// Jaro-Winkler; an exact phrase must still rank first.
	ranked := m.Rank("ഇന്റർനെറ്റ് വരുന്നില്ല", candidates, 0.84)
	if len(ranked) == 0 {
		t.Fatal("no match for exact Malayalam phrase")
	}
	if ranked[0].Text != "ഇന്റർനെറ്റ് വരുന്നില്ല" {
		t.Errorf("top match = %q", ranked[0].Text)
	}
}

func TestRankEmptyInput(t *testing.T) {
	t.Parallel()

	m := fuzzy.New()
	if got := m.Rank("", []fuzzy.Candidate{{Text: "x", Freq: 1}}, 0.5); got != nil {
		t.Errorf("Rank(empty) = %v, want nil", got)
	}
	if got := m.Rank("word", nil, 0.5); got != nil {
		t.Errorf("Rank(no candidates) = %v, want nil", got)
	}
}
