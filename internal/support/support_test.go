package support_test

import (
	"context"
	"testing"
	"time"

	"github.com/ashikjoy21/abc-customer-care/internal/escalate"
	"github.com/ashikjoy21/abc-customer-care/internal/normalize"
	"github.com/ashikjoy21/abc-customer-care/internal/support"
	"github.com/ashikjoy21/abc-customer-care/pkg/types"
)

func newEngine(t *testing.T) *support.Engine {
	t.Helper()
	e, err := support.New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return e
}

func TestProcessRomanizedWifiComplaint(t *testing.T) {
	t.Parallel()

	e := newEngine(t)
	ctx := context.Background()

	text, res := e.Process(ctx, "njan ente veetil wifi varunnilla ennu paranju", nil)
	if text != "ഞാൻ എന്റെ വീട്ടിൽ വൈഫൈ പ്രവർത്തിക്കുന്നില്ല എന്ന് പറഞ്ഞു" {
		t.Errorf("enhanced = %q", text)
	}
	if res.Issue != "wifi_issues" {
		t.Errorf("issue = %q, want wifi_issues", res.Issue)
	}
	if res.Confidence <= 0 {
		t.Errorf("confidence = %v", res.Confidence)
	}
}

func TestProcessSilenceShortCircuits(t *testing.T) {
	t.Parallel()

	e := newEngine(t)
	ctx := context.Background()

	text, res := e.Process(ctx, "സെക്സ്", nil)
	if text != "" {
		t.Errorf("text = %q, want empty", text)
	}
	if res.Issue != types.IssueUnclassified {
		t.Errorf("issue = %q, want unclassified", res.Issue)
	}
}

func TestNormalizeWithAudioLevel(t *testing.T) {
	t.Parallel()

	e := newEngine(t)
	ctx := context.Background()

	got := e.Normalize(ctx, "സെക്സ് എന്തോ ഒരു ശബ്ദം കേട്ടു", normalize.WithAudioLevel(12))
	if got != "" {
		t.Errorf("low audio level: got %q, want empty", got)
	}
}

func TestPlanRanksScenarioSteps(t *testing.T) {
	t.Parallel()

	e := newEngine(t)
	ctx := context.Background()

	_, res := e.Process(ctx, "ഇന്റർനെറ്റ് വരുന്നില്ല", nil)
	if res.Issue != "internet_down" {
		t.Fatalf("issue = %q", res.Issue)
	}

	novice := types.CustomerTechnicalProfile{Level: types.LevelNovice, Patience: 3}
	sc, ranked, err := e.Plan(ctx, res, novice, nil)
	if err != nil {
		t.Fatal(err)
	}
	if sc == nil {
		t.Fatal("no scenario matched")
	}
	if sc.Issue != "internet_down" {
		t.Errorf("scenario issue = %q", sc.Issue)
	}
	if len(ranked) == 0 {
		t.Fatal("no eligible steps")
	}

	// Steps with unmet prerequisites must not be offered first.
	for _, s := range ranked {
		if len(s.Requires) != 0 {
			t.Errorf("step %q with prerequisites offered before any outcome", s.ID)
		}
	}

	// Completing the first step unlocks its dependents.
	first := ranked[0]
	completed := map[string]bool{first.ID: true}
	_, rankedAfter, err := e.Plan(ctx, res, novice, completed)
	if err != nil {
		t.Fatal(err)
	}
	if len(rankedAfter) <= len(ranked) {
		t.Errorf("completing %q unlocked nothing: %d -> %d steps", first.ID, len(ranked), len(rankedAfter))
	}
}

func TestPlanPrefersSubIssueScenario(t *testing.T) {
	t.Parallel()

	e := newEngine(t)
	ctx := context.Background()

	_, res := e.Process(ctx, "റൗട്ടറിൽ റെഡ് ലൈറ്റ് കാണിക്കുന്നു", nil)
	if res.Issue != "internet_down" || len(res.SubIssues) == 0 {
		t.Fatalf("classification: %+v", res)
	}

	profile := types.CustomerTechnicalProfile{Level: types.LevelNovice, Patience: 3}
	sc, _, err := e.Plan(ctx, res, profile, nil)
	if err != nil {
		t.Fatal(err)
	}
	if sc == nil || sc.SubIssue != "fiber_cut" {
		t.Errorf("scenario = %+v, want the fiber_cut flow", sc)
	}
}

func TestPlanUnclassifiedReturnsNoScenario(t *testing.T) {
	t.Parallel()

	e := newEngine(t)
	ctx := context.Background()

	res := types.ClassificationResult{Issue: types.IssueUnclassified}
	profile := types.CustomerTechnicalProfile{Level: types.LevelNovice, Patience: 3}
	sc, ranked, err := e.Plan(ctx, res, profile, nil)
	if err != nil {
		t.Fatal(err)
	}
	if sc != nil || ranked != nil {
		t.Errorf("expected no plan, got scenario %+v with %d steps", sc, len(ranked))
	}
}

func TestRecordOutcomeInfluencesRanking(t *testing.T) {
	t.Parallel()

	e := newEngine(t)
	ctx := context.Background()

	_, res := e.Process(ctx, "ഇന്റർനെറ്റ് സ്ലോ ആണ്", nil)
	if res.Issue != "slow_internet" {
		t.Fatalf("issue = %q", res.Issue)
	}

	profile := types.CustomerTechnicalProfile{Level: types.LevelIntermediate, Patience: 3}
	_, before, err := e.Plan(ctx, res, profile, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(before) < 2 {
		t.Fatalf("need at least two eligible steps, got %d", len(before))
	}

	// Repeated failures of the current leader must push it down.
	leader := before[0].ID
	for range 10 {
		e.RecordOutcome(ctx, leader, false)
	}
	_, after, err := e.Plan(ctx, res, profile, nil)
	if err != nil {
		t.Fatal(err)
	}
	if after[0].ID == leader {
		t.Errorf("step %q still leads after ten failures", leader)
	}
}

func TestCheckEscalation(t *testing.T) {
	t.Parallel()

	e := newEngine(t)
	ctx := context.Background()

	_, res := e.Process(ctx, "റൗട്ടറിൽ റെഡ് ലൈറ്റ് കാണിക്കുന്നു", nil)
	profile := types.CustomerTechnicalProfile{Level: types.LevelNovice, Patience: 3}
	sc, _, err := e.Plan(ctx, res, profile, nil)
	if err != nil {
		t.Fatal(err)
	}

	state := escalate.CallState{
		Confidence: res.Confidence,
		SubIssues:  res.SubIssues,
		Elapsed:    time.Minute,
	}
	rec, ok := e.CheckEscalation(ctx, sc, res, state)
	if !ok {
		t.Fatal("fiber cut did not escalate")
	}
	if rec.Reason != escalate.ReasonAutoSubIssue {
		t.Errorf("reason = %s", rec.Reason)
	}
	if rec.Issue != "internet_down" {
		t.Errorf("issue = %s", rec.Issue)
	}
}
