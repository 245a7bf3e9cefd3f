package lexicon_test

import (
	"strings"
	"testing"

	"github.com/ashikjoy21/abc-customer-care/internal/lexicon"
)

func TestDefaultValidates(t *testing.T) {
	t.Parallel()

	if err := lexicon.Default().Validate(); err != nil {
		t.Fatalf("Default() failed validation: %v", err)
	}
}

func TestValidateReportsAllProblems(t *testing.T) {
	t.Parallel()

	lex := &lexicon.Lexicon{
		Issues: []lexicon.IssueDefinition{
			{Type: "internet_down", Keywords: []string{"x"}, DomainSets: []string{"missing_set"}},
			{Type: "internet_down", Keywords: nil},
		},
		PriorityRules: []lexicon.PriorityRule{{Name: "empty"}},
	}

	err := lex.Validate()
	if err == nil {
		t.Fatal("expected validation to fail")
	}
	msg := err.Error()
	for _, want := range []string{"missing_set", "duplicates", "no keywords", "priority_rules[0]"} {
		if !strings.Contains(msg, want) {
			t.Errorf("validation error missing %q:\n%s", want, msg)
		}
	}
}

func TestValidatePriorityRuleReferences(t *testing.T) {
	t.Parallel()

	lex := &lexicon.Lexicon{
		Issues: []lexicon.IssueDefinition{
			{Type: "internet_down", Keywords: []string{"offline"}},
		},
		SubIssues: map[string][]lexicon.SubIssue{
			"internet_down": {{ID: "fiber_cut", Indicators: []string{"red light"}}},
		},
		PriorityRules: []lexicon.PriorityRule{
			{Name: "bad_issue", Issue: "power_cut", Indicators: []string{"x"}},
			{Name: "bad_sub", Issue: "internet_down", SubIssue: "melted_router", Indicators: []string{"y"}},
			{Name: "good", Issue: "internet_down", SubIssue: "fiber_cut", Indicators: []string{"red light"}},
		},
	}

	err := lex.Validate()
	if err == nil {
		t.Fatal("expected validation to fail")
	}
	msg := err.Error()
	for _, want := range []string{"power_cut", "melted_router"} {
		if !strings.Contains(msg, want) {
			t.Errorf("validation error missing %q:\n%s", want, msg)
		}
	}
	if strings.Contains(msg, "(good)") {
		t.Errorf("well-formed rule rejected:\n%s", msg)
	}
}

func TestErrorPatternOrder(t *testing.T) {
	t.Parallel()

	lex := lexicon.Default()

	// The bare form must be corrected before the longer phrases that
	// contain it, so a phrase like "സെക്സ് റൗട്ടർ" comes out with the
	// corrected word in place.
	text := "സെക്സ് റൗട്ടർ"
	for _, p := range lex.ErrorPatterns {
		text = p.Apply(text)
	}
	if text != "ചെക്ക് റൗട്ടർ" {
		t.Errorf("got %q, want %q", text, "ചെക്ക് റൗട്ടർ")
	}
}

func TestNGramsSortedLongestFirst(t *testing.T) {
	t.Parallel()

	lex := lexicon.Default()
	for i := 1; i < len(lex.NGrams); i++ {
		if len(lex.NGrams[i-1].From) < len(lex.NGrams[i].From) {
			t.Fatalf("ngrams[%d] %q is longer than ngrams[%d] %q",
				i, lex.NGrams[i].From, i-1, lex.NGrams[i-1].From)
		}
	}
}

func TestIsCanonical(t *testing.T) {
	t.Parallel()

	lex := lexicon.Default()

	tests := []struct {
		token string
		want  bool
	}{
		{"ഇന്റർനെറ്റ്", true},
		{"വൈഫൈ", true},
		{"റൗട്ടർ", true},
		{"വരുന്നില്ല", true},
		{"മോടം", false},  // known misrecognition, not canonical
		{"വൈഫാ", false},
		{"zzzz", false},
	}
	for _, tt := range tests {
		if got := lex.IsCanonical(tt.token); got != tt.want {
			t.Errorf("IsCanonical(%q) = %v, want %v", tt.token, got, tt.want)
		}
	}
}

func TestMaxRomanizedWords(t *testing.T) {
	t.Parallel()

	lex := lexicon.Default()
	// "wifi connect cheythittum internet varunnilla" is five words.
	if got := lex.MaxRomanizedWords(); got < 5 {
		t.Errorf("MaxRomanizedWords() = %d, want >= 5", got)
	}
}

func TestIssueByType(t *testing.T) {
	t.Parallel()

	lex := lexicon.Default()
	if def := lex.IssueByType("internet_down"); def == nil {
		t.Error("IssueByType(internet_down) = nil")
	}
	if def := lex.IssueByType("nonexistent"); def != nil {
		t.Errorf("IssueByType(nonexistent) = %+v, want nil", def)
	}
}

func TestSpeedPattern(t *testing.T) {
	t.Parallel()

	m := lexicon.SpeedPattern.FindStringSubmatch("സ്പീഡ് 20 Mbps മാത്രം കിട്ടുന്നു")
	if m == nil {
		t.Fatal("no speed match")
	}
	if m[1] != "20" || strings.ToLower(m[2]) != "mbps" {
		t.Errorf("got value=%q unit=%q", m[1], m[2])
	}
}
