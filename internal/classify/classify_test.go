package classify_test

import (
	"testing"
	"time"

	"github.com/ashikjoy21/abc-customer-care/internal/classify"
	"github.com/ashikjoy21/abc-customer-care/internal/lexicon"
	"github.com/ashikjoy21/abc-customer-care/pkg/types"
)

func newClassifier(t *testing.T) *classify.Classifier {
	t.Helper()
	return classify.New(lexicon.Default())
}

func TestClassifyKeywordMatch(t *testing.T) {
	t.Parallel()

	cl := newClassifier(t)

	tests := []struct {
		text string
		want string
	}{
		{"ഇന്റർനെറ്റ് വരുന്നില്ല", "internet_down"},
		{"നെറ്റ് കിട്ടുന്നില്ല", "internet_down"},
		{"ഇന്റർനെറ്റ് സ്ലോ ആണ്", "slow_internet"},
		{"വൈഫൈ പാസ്‌വേഡ് മറന്നു", "wifi_issues"},
		{"ടിവി ചാനൽ വരുന്നില്ല", "tv_issues"},
		{"ബിൽ അടച്ചിട്ടും ആക്റ്റീവ് ആയില്ല", "billing_issues"},
		{"internet not working", "internet_down"},
	}
	for _, tt := range tests {
		res := cl.Classify(tt.text, nil)
		if res.Issue != tt.want {
			t.Errorf("Classify(%q).Issue = %q, want %q", tt.text, res.Issue, tt.want)
		}
		if res.Confidence <= 0 {
			t.Errorf("Classify(%q).Confidence = %v, want > 0", tt.text, res.Confidence)
		}
	}
}

func TestClassifyAreaIncidentTier(t *testing.T) {
	t.Parallel()

	cl := newClassifier(t)

	incidents := []types.Incident{{Issue: "internet_down", Area: "Kakkanad"}}

	// A type-keyword hit plus a matching area incident and nothing else:
	// 8 + 10 out of an attainable 18.
	res := cl.Classify("signal lost", nil,
		classify.WithCustomerArea("Kakkanad"),
		classify.WithActiveIncidents(incidents),
	)
	if res.Issue != "internet_down" {
		t.Fatalf("Issue = %q, want internet_down", res.Issue)
	}
	if res.Confidence != 1 {
		t.Errorf("Confidence = %v, want 1", res.Confidence)
	}

	var gotArea, gotType bool
	for _, m := range res.Matches {
		switch m.Tier {
		case "area":
			gotArea = true
		case "type":
			gotType = true
		}
	}
	if !gotArea || !gotType {
		t.Errorf("Matches = %+v, want both area and type tiers", res.Matches)
	}

	// Same text without the incident context scores lower.
	base := cl.Classify("signal lost", nil)
	if base.Issue != "internet_down" {
		t.Fatalf("baseline Issue = %q", base.Issue)
	}
	if len(base.Matches) >= len(res.Matches) {
		t.Errorf("incident context added no match: %+v", base.Matches)
	}
}

func TestClassifyConfidenceMonotonic(t *testing.T) {
	t.Parallel()

	cl := newClassifier(t)

	// Each utterance adds one matched signal on top of the same type keyword
	// (a fiber domain synonym, then a description-word overlap). Confidence
	// must never drop as evidence accumulates.
	utterances := []string{
		"offline",
		"offline കേബിൾ",
		"offline കേബിൾ internet",
	}
	prev := -1.0
	for _, text := range utterances {
		res := cl.Classify(text, nil)
		if res.Issue != "internet_down" {
			t.Fatalf("Classify(%q).Issue = %q, want internet_down", text, res.Issue)
		}
		if res.Confidence < prev {
			t.Errorf("Classify(%q).Confidence = %v, dropped below %v", text, res.Confidence, prev)
		}
		prev = res.Confidence
	}

	base := cl.Classify("offline", nil)
	if prev <= base.Confidence {
		t.Errorf("extra matched signals did not raise confidence: %v -> %v", base.Confidence, prev)
	}
}

func TestClassifyIncidentOtherAreaIgnored(t *testing.T) {
	t.Parallel()

	cl := newClassifier(t)

	incidents := []types.Incident{{Issue: "internet_down", Area: "Thrissur"}}
	res := cl.Classify("signal lost", nil,
		classify.WithCustomerArea("Kakkanad"),
		classify.WithActiveIncidents(incidents),
	)
	for _, m := range res.Matches {
		if m.Tier == "area" {
			t.Errorf("incident in a different area matched: %+v", m)
		}
	}
}

func TestClassifyPriorityRules(t *testing.T) {
	t.Parallel()

	cl := newClassifier(t)

	tests := []struct {
		text     string
		issue    string
		subIssue string
	}{
		{"റൗട്ടറിൽ റെഡ് ലൈറ്റ് കാണിക്കുന്നു", "internet_down", "fiber_cut"},
		{"red light on the router", "internet_down", "fiber_cut"},
		{"അഡാപ്റ്റർ പവർ ഇല്ല", "internet_down", "adapter_issue"},
		{"no power on modem", "internet_down", "adapter_issue"},
	}
	for _, tt := range tests {
		res := cl.Classify(tt.text, nil)
		if res.Issue != tt.issue {
			t.Errorf("Classify(%q).Issue = %q, want %q", tt.text, res.Issue, tt.issue)
		}
		if res.Confidence < 0.99 {
			t.Errorf("Classify(%q).Confidence = %v, want >= 0.99", tt.text, res.Confidence)
		}
		if len(res.SubIssues) != 1 || res.SubIssues[0] != tt.subIssue {
			t.Errorf("Classify(%q).SubIssues = %v, want [%s]", tt.text, res.SubIssues, tt.subIssue)
		}
	}
}

func TestClassifySubIssues(t *testing.T) {
	t.Parallel()

	cl := newClassifier(t)

	res := cl.Classify("ഇന്റർനെറ്റ് ഇല്ല കേബിൾ കേടായി", nil)
	if res.Issue != "internet_down" {
		t.Fatalf("Issue = %q", res.Issue)
	}
	found := false
	for _, s := range res.SubIssues {
		if s == "cable_issue" {
			found = true
		}
	}
	if !found {
		t.Errorf("SubIssues = %v, want cable_issue", res.SubIssues)
	}
}

func TestClassifyHistoryFallback(t *testing.T) {
	t.Parallel()

	cl := newClassifier(t)

	history := []types.ConversationTurn{
		{Role: types.RoleCustomer, Text: "ഇന്റർനെറ്റ് വരുന്നില്ല", Timestamp: 10 * time.Second},
		{Role: types.RoleBot, Text: "റൗട്ടർ റീസ്റ്റാർട്ട് ചെയ്യാമോ", Timestamp: 25 * time.Second},
	}

	res := cl.Classify("ഇപ്പോഴും ശരിയായില്ല", history)
	if res.Issue != "internet_down" {
		t.Fatalf("Issue = %q, want internet_down", res.Issue)
	}
	if !res.UsedHistory {
		t.Error("UsedHistory = false, want true")
	}

	// A confident direct hit must not touch history.
	direct := cl.Classify("ഇന്റർനെറ്റ് വരുന്നില്ല", history)
	if direct.UsedHistory {
		t.Error("direct classification flagged UsedHistory")
	}
}

func TestClassifyUnclassified(t *testing.T) {
	t.Parallel()

	cl := newClassifier(t)

	for _, text := range []string{"", "   ", "ഹലോ", "good morning"} {
		res := cl.Classify(text, nil)
		if res.Issue != types.IssueUnclassified {
			t.Errorf("Classify(%q).Issue = %q, want %q", text, res.Issue, types.IssueUnclassified)
		}
		if res.Confidence != 0 {
			t.Errorf("Classify(%q).Confidence = %v, want 0", text, res.Confidence)
		}
	}
}

func TestClassifyExtractsParams(t *testing.T) {
	t.Parallel()

	cl := newClassifier(t)

	res := cl.Classify("സ്പീഡ് 20 mbps മാത്രം 2 ദിവസം ആയി", nil)
	if res.Params.Speed == nil {
		t.Fatal("Params.Speed = nil")
	}
	if res.Params.Speed.Value != 20 || res.Params.Speed.Unit != "mbps" {
		t.Errorf("Speed = %+v", *res.Params.Speed)
	}
	if res.Params.Duration != 48*time.Hour {
		t.Errorf("Duration = %v, want 48h", res.Params.Duration)
	}

	res = cl.Classify("tv shows error code e104", nil)
	if res.Params.ErrorCode != "e104" {
		t.Errorf("ErrorCode = %q, want e104", res.Params.ErrorCode)
	}
}

func TestClassifyDeterministic(t *testing.T) {
	t.Parallel()

	cl := newClassifier(t)

	first := cl.Classify("ഇന്റർനെറ്റ് സ്ലോ ആണ് ബഫറിങ് ഉണ്ട്", nil)
	for range 10 {
		got := cl.Classify("ഇന്റർനെറ്റ് സ്ലോ ആണ് ബഫറിങ് ഉണ്ട്", nil)
		if got.Issue != first.Issue || got.Confidence != first.Confidence {
			t.Fatalf("unstable result: %+v vs %+v", got, first)
		}
	}
}
