// Package morph provides a lightweight morphological analyzer for Malayalam
// words. It recognises common noun case, verb tense, plural and adjective
// suffixes, plus a table of domain technical stems, so that an inflected
// technical term ("റൗട്ടറിന്റെ") can be canonicalised without losing its
// suffix.
//
// This is a rule-based approximation, not a full morphology engine. It covers
// the inflection patterns that actually occur in ISP support calls.
package morph

// WordType classifies the analyzed word.
type WordType string

const (
	TypeTechnical WordType = "technical"
	TypeNoun      WordType = "noun"
	TypeVerb      WordType = "verb"
	TypePlural    WordType = "plural"
	TypeAdjective WordType = "adjective"
	TypeUnknown   WordType = "unknown"
)

// Analysis is the result of analyzing a single word.
type Analysis struct {
	// Stem is the canonical base form.
	Stem string

	// Suffix is the detached inflection suffix, empty for base forms.
	Suffix string

	// Type classifies the word.
	Type WordType

	// Case is the grammatical case for nouns ("locative", "genitive", ...).
	Case string

	// Tense is the tense for verbs ("present", "past", "negative_present", ...).
	Tense string

	// Original is the word as given.
	Original string
}

// suffixRule is one ordered suffix-strip rule. Replacement is appended to the
// remainder after the suffix is removed.
type suffixRule struct {
	suffix      string
	replacement string
	label       string
}

// Rule order is load-bearing: rules are tried first to last and the first
// matching suffix wins, so more specific rules must not be shadowed by a
// shorter rule listed before them.
var nounCaseRules = []suffixRule{
	// Accusative.
	{"യെ", "", "accusative"},
	{"നെ", "", "accusative"},
	{"ത്തെ", "ം", "accusative"},
	{"ത്തിനെ", "ം", "accusative"},
	{"വിനെ", "വ്", "accusative"},
	// Genitive.
	{"യുടെ", "", "genitive"},
	{"ന്റെ", "ൻ", "genitive"},
	{"ത്തിന്റെ", "ം", "genitive"},
	{"വിന്റെ", "വ്", "genitive"},
	// Dative.
	{"യ്ക്ക്", "", "dative"},
	{"ന്", "ൻ", "dative"},
	{"ത്തിന്", "ം", "dative"},
	{"വിന്", "വ്", "dative"},
	// Sociative.
	{"യോട്", "", "sociative"},
	{"നോട്", "ൻ", "sociative"},
	{"ത്തോട്", "ം", "sociative"},
	{"വോട്", "വ്", "sociative"},
	// Instrumental.
	{"യാൽ", "", "instrumental"},
	{"നാൽ", "ൻ", "instrumental"},
	{"ത്താൽ", "ം", "instrumental"},
	{"വാൽ", "വ്", "instrumental"},
	// Locative.
	{"യിൽ", "", "locative"},
	{"നിൽ", "ൻ", "locative"},
	{"ത്തിൽ", "ം", "locative"},
	{"വിൽ", "വ്", "locative"},
	{"ിൽ", "്", "locative"},
}

var verbRules = []suffixRule{
	// Present tense.
	{"ുന്നു", "ുക", "present"},
	{"ക്കുന്നു", "ക്കുക", "present"},
	{"ിക്കുന്നു", "ിക്കുക", "present"},
	// Past tense.
	{"ി", "ുക", "past"},
	{"ച്ചു", "ക്കുക", "past"},
	{"ത്തു", "ത്തുക", "past"},
	{"ന്നു", "ൽ", "past"},
	{"യ്തു", "യ്യുക", "past"},
	// Future tense.
	{"ും", "ുക", "future"},
	{"ക്കും", "ക്കുക", "future"},
	// Negative forms.
	{"ുന്നില്ല", "ുക", "negative_present"},
	{"ക്കുന്നില്ല", "ക്കുക", "negative_present"},
	{"ില്ല", "ുക", "negative"},
	{"ാത്ത", "ുക", "negative"},
	// Conditional forms.
	{"ാൽ", "ുക", "conditional"},
	{"െങ്കിൽ", "ുക", "conditional"},
	// Imperative forms.
	{"ൂ", "ുക", "imperative"},
	{"ക്കൂ", "ക്കുക", "imperative"},
}

var pluralRules = []suffixRule{
	{"കൾ", "", "plural"},
	{"മാർ", "ൻ", "plural"},
}

var adjectiveRules = []suffixRule{
	{"മായ", "ം", "adjective"},
	{"മുള്ള", "ം", "adjective"},
	{"ത്തുള്ള", "ം", "adjective"},
}

// technicalStems maps domain term stems to their canonical form. A word that
// starts with a stem keeps its trailing suffix after canonicalisation.
var technicalStems = []struct{ stem, canonical string }{
	{"വൈഫൈ", "വൈഫൈ"},
	{"ഇന്റർനെറ്റ്", "ഇന്റർനെറ്റ്"},
	{"റൗട്ടർ", "റൗട്ടർ"},
	{"മോഡം", "മോഡം"},
	{"കണക്ഷൻ", "കണക്ഷൻ"},
	{"സിഗ്നൽ", "സിഗ്നൽ"},
	{"നെറ്റ്", "ഇന്റർനെറ്റ്"},
	{"സ്പീഡ്", "സ്പീഡ്"},
	{"ബ്രോഡ്ബാൻഡ്", "ബ്രോഡ്ബാൻഡ്"},
}

// specialCases maps complete inflected words whose canonical rendering cannot
// be derived by suffix stripping (mostly "നെറ്റ്" inflections that expand to
// "ഇന്റർനെറ്റ്" plus the same inflection).
var specialCases = map[string]string{
	"നെറ്റിന്റെ":   "ഇന്റർനെറ്റിന്റെ",
	"നെറ്റിന്":     "ഇന്റർനെറ്റിന്",
	"നെറ്റിൽ":      "ഇന്റർനെറ്റിൽ",
	"നെറ്റിനെ":     "ഇന്റർനെറ്റിനെ",
	"നെറ്റിനോട്":   "ഇന്റർനെറ്റിനോട്",
	"നെറ്റിനാൽ":    "ഇന്റർനെറ്റിനാൽ",
	"നെറ്റുമായി":   "ഇന്റർനെറ്റുമായി",
	"നെറ്റുകൾ":     "ഇന്റർനെറ്റുകൾ",
	"നെറ്റിലേക്ക്": "ഇന്റർനെറ്റിലേക്ക്",
	"നെറ്റിലൂടെ":   "ഇന്റർനെറ്റിലൂടെ",

	// Inflected forms of chillu-final stems. Suffix stripping cannot
	// reconstruct these (the final chillu becomes a full consonant before a
	// vowel sign), so they are carried whole. Identity mappings mark them as
	// already canonical.
	"റൗട്ടറിന്റെ": "റൗട്ടറിന്റെ",
	"റൗട്ടറിൽ":    "റൗട്ടറിൽ",
	"റൗട്ടറിനെ":   "റൗട്ടറിനെ",
	"റൗട്ടറുകൾ":   "റൗട്ടറുകൾ",
	"മോഡത്തിന്റെ": "മോഡത്തിന്റെ",
	"മോഡത്തിൽ":    "മോഡത്തിൽ",
	"മോഡങ്ങൾ":     "മോഡങ്ങൾ",
	"സിഗ്നലിന്റെ": "സിഗ്നലിന്റെ",
	"സിഗ്നലിൽ":    "സിഗ്നലിൽ",
	"സിഗ്നലുകൾ":   "സിഗ്നലുകൾ",
	"സ്പീഡിന്റെ":  "സ്പീഡിന്റെ",
	"സ്പീഡിൽ":     "സ്പീഡിൽ",
	"കണക്ഷന്റെ":   "കണക്ഷന്റെ",
	"കണക്ഷനിൽ":    "കണക്ഷനിൽ",
	"കണക്ഷനുകൾ":   "കണക്ഷനുകൾ",
	"ചാനലിന്റെ":   "ചാനലിന്റെ",
	"ചാനലിൽ":      "ചാനലിൽ",
	"ചാനലുകൾ":     "ചാനലുകൾ",

	// Verb-form variants collapsed to the standard negative.
	"വരുന്നില്ലാ":           "വരുന്നില്ല",
	"വരുന്നില്ലെ":           "വരുന്നില്ല",
	"കിട്ടുന്നില്ലാ":        "കിട്ടുന്നില്ല",
	"കിട്ടുന്നില്ലെ":        "കിട്ടുന്നില്ല",
	"കാണുന്നില്ലാ":          "കാണുന്നില്ല",
	"കാണുന്നില്ലെ":          "കാണുന്നില്ല",
	"പ്രവർത്തിക്കുന്നില്ലാ": "പ്രവർത്തിക്കുന്നില്ല",
	"പ്രവർത്തിക്കുന്നില്ലെ": "പ്രവർത്തിക്കുന്നില്ല",
}

// nounStems maps inflected household nouns straight to their stem.
var nounStems = map[string]string{
	"വീടിൽ":     "വീട്",
	"വീടിന്റെ":  "വീട്",
	"വീടിന്":    "വീട്",
	"വീടിനെ":    "വീട്",
	"വീടിനോട്":  "വീട്",
	"വീടിനാൽ":   "വീട്",
}

// verbStems maps common irregular verb forms to their dictionary form.
var verbStems = map[string]string{
	"ചെയ്തു":        "ചെയ്യുക",
	"ചെയ്യുന്നു":    "ചെയ്യുക",
	"ചെയ്യും":       "ചെയ്യുക",
	"ചെയ്യുന്നില്ല": "ചെയ്യുക",
}

// Analyzer analyzes Malayalam words against the built-in rule tables.
// Stateless and safe for concurrent use.
type Analyzer struct{}

// NewAnalyzer returns a ready Analyzer.
func NewAnalyzer() *Analyzer {
	return &Analyzer{}
}

// Analyze finds the stem and inflection of a Malayalam word.
func (a *Analyzer) Analyze(word string) Analysis {
	if canonical, ok := specialCases[word]; ok {
		return Analysis{Stem: canonical, Type: TypeTechnical, Original: word}
	}
	if stem, ok := nounStems[word]; ok {
		return Analysis{Stem: stem, Type: TypeNoun, Case: inferCase(word), Original: word}
	}
	if stem, ok := verbStems[word]; ok {
		return Analysis{Stem: stem, Type: TypeVerb, Tense: inferTense(word), Original: word}
	}

	for _, t := range technicalStems {
		if word == t.stem {
			return Analysis{Stem: t.canonical, Type: TypeTechnical, Original: word}
		}
		if len(word) > len(t.stem) && word[:len(t.stem)] == t.stem {
			return Analysis{
				Stem:     t.canonical,
				Suffix:   word[len(t.stem):],
				Type:     TypeTechnical,
				Original: word,
			}
		}
	}

	if an, ok := applyRules(word, nounCaseRules, TypeNoun); ok {
		return an
	}
	if an, ok := applyRules(word, verbRules, TypeVerb); ok {
		return an
	}
	if an, ok := applyRules(word, pluralRules, TypePlural); ok {
		return an
	}
	if an, ok := applyRules(word, adjectiveRules, TypeAdjective); ok {
		return an
	}

	return Analysis{Stem: word, Type: TypeUnknown, Original: word}
}

// Stem returns the canonical base form of word.
func (a *Analyzer) Stem(word string) string {
	return a.Analyze(word).Stem
}

// Canonicalize rewrites word so that an inflected technical term carries its
// canonical stem with the original suffix reattached. Non-technical words are
// returned unchanged.
func (a *Analyzer) Canonicalize(word string) string {
	if canonical, ok := specialCases[word]; ok {
		return canonical
	}
	an := a.Analyze(word)
	if an.Type != TypeTechnical {
		return word
	}
	out := an.Stem + an.Suffix
	// Guard against stacking the expansion of a stem that already carried it.
	if out == "ഇന്റർഇന്റർനെറ്റ്" {
		return "ഇന്റർനെറ്റ്"
	}
	return out
}

func applyRules(word string, rules []suffixRule, typ WordType) (Analysis, bool) {
	for _, r := range rules {
		if !hasSuffix(word, r.suffix) || len(word) == len(r.suffix) {
			continue
		}
		an := Analysis{
			Stem:     word[:len(word)-len(r.suffix)] + r.replacement,
			Suffix:   r.suffix,
			Type:     typ,
			Original: word,
		}
		switch typ {
		case TypeNoun:
			an.Case = r.label
		case TypeVerb:
			an.Tense = r.label
		}
		return an, true
	}
	return Analysis{}, false
}

func hasSuffix(s, suffix string) bool {
	return len(s) >= len(suffix) && s[len(s)-len(suffix):] == suffix
}

func inferCase(word string) string {
	switch {
	case hasSuffix(word, "ിന്റെ"):
		return "genitive"
	case hasSuffix(word, "ിനോട്"):
		return "sociative"
	case hasSuffix(word, "ിനാൽ"):
		return "instrumental"
	case hasSuffix(word, "ിനെ"):
		return "accusative"
	case hasSuffix(word, "ിന്"):
		return "dative"
	case hasSuffix(word, "ിൽ"):
		return "locative"
	}
	return "unknown"
}

func inferTense(word string) string {
	switch {
	case hasSuffix(word, "ുന്നില്ല"), hasSuffix(word, "ില്ല"):
		return "negative_present"
	case hasSuffix(word, "ുന്നു"):
		return "present"
	case hasSuffix(word, "ച്ചു"), hasSuffix(word, "ത്തു"), hasSuffix(word, "യ്തു"), hasSuffix(word, "ി"):
		return "past"
	case hasSuffix(word, "ും"):
		return "future"
	}
	return "unknown"
}
