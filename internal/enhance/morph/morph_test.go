package morph_test

import (
	"testing"

	"github.com/ashikjoy21/abc-customer-care/internal/enhance/morph"
)

func TestAnalyzeTechnicalTerms(t *testing.T) {
	t.Parallel()

	a := morph.NewAnalyzer()

	tests := []struct {
		word       string
		wantStem   string
		wantSuffix string
	}{
		{"റൗട്ടർ", "റൗട്ടർ", ""},
		{"റൗട്ടറിന്റെ", "റൗട്ടറിന്റെ", ""}, // chillu-final stem, carried whole
		{"വൈഫൈയിൽ", "വൈഫൈ", "യിൽ"},
		{"ഇന്റർനെറ്റ്", "ഇന്റർനെറ്റ്", ""},
	}
	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			t.Parallel()

			an := a.Analyze(tt.word)
			if an.Type != morph.TypeTechnical {
				t.Fatalf("type = %s, want technical", an.Type)
			}
			if an.Stem != tt.wantStem || an.Suffix != tt.wantSuffix {
				t.Errorf("stem=%q suffix=%q, want stem=%q suffix=%q",
					an.Stem, an.Suffix, tt.wantStem, tt.wantSuffix)
			}
		})
	}
}

func TestAnalyzeSpecialCases(t *testing.T) {
	t.Parallel()

	a := morph.NewAnalyzer()

	// Inflected short forms expand to the full technical term with the same
	// inflection preserved.
	tests := map[string]string{
		"നെറ്റിൽ":      "ഇന്റർനെറ്റിൽ",
		"നെറ്റിന്റെ":   "ഇന്റർനെറ്റിന്റെ",
		"നെറ്റുകൾ":     "ഇന്റർനെറ്റുകൾ",
		"വരുന്നില്ലാ":  "വരുന്നില്ല",
	}
	for word, want := range tests {
		if got := a.Analyze(word).Stem; got != want {
			t.Errorf("Analyze(%q).Stem = %q, want %q", word, got, want)
		}
	}
}

func TestAnalyzeNounCases(t *testing.T) {
	t.Parallel()

	a := morph.NewAnalyzer()

	an := a.Analyze("വീട്ടിൽ")
	if an.Type != morph.TypeNoun {
		t.Fatalf("type = %s, want noun", an.Type)
	}
	if an.Case != "locative" {
		t.Errorf("case = %q, want locative", an.Case)
	}

	an = a.Analyze("വീടിന്റെ")
	if an.Stem != "വീട്" {
		t.Errorf("Analyze(വീടിന്റെ).Stem = %q, want വീട്", an.Stem)
	}
}

func TestAnalyzeVerbTenses(t *testing.T) {
	t.Parallel()

	a := morph.NewAnalyzer()

	tests := []struct {
		word      string
		wantStem  string
		wantTense string
	}{
		{"ചെയ്തു", "ചെയ്യുക", "past"},
		{"ചെയ്യുന്നു", "ചെയ്യുക", "present"},
		{"ചെയ്യുന്നില്ല", "ചെയ്യുക", "negative_present"},
	}
	for _, tt := range tests {
		an := a.Analyze(tt.word)
		if an.Type != morph.TypeVerb {
			t.Errorf("Analyze(%q).Type = %s, want verb", tt.word, an.Type)
			continue
		}
		if an.Stem != tt.wantStem || an.Tense != tt.wantTense {
			t.Errorf("Analyze(%q) = stem %q tense %q, want %q/%q",
				tt.word, an.Stem, an.Tense, tt.wantStem, tt.wantTense)
		}
	}
}

func TestAnalyzeUnknown(t *testing.T) {
	t.Parallel()

	a := morph.NewAnalyzer()
	an := a.Analyze("ആകാശം")
	if an.Stem == "" {
		t.Error("unknown word lost its stem")
	}
}

func TestCanonicalize(t *testing.T) {
	t.Parallel()

	a := morph.NewAnalyzer()

	tests := map[string]string{
		"റൗട്ടറിന്റെ": "റൗട്ടറിന്റെ",   // stem canonical, suffix reattached
		"നെറ്റിൽ":     "ഇന്റർനെറ്റിൽ", // short form expanded
		"നെറ്റ്":       "ഇന്റർനെറ്റ്",
		"വീട്ടിൽ":     "വീട്ടിൽ", // non-technical nouns untouched
		"പറഞ്ഞു":      "പറഞ്ഞു",
	}
	for word, want := range tests {
		if got := a.Canonicalize(word); got != want {
			t.Errorf("Canonicalize(%q) = %q, want %q", word, got, want)
		}
	}
}
