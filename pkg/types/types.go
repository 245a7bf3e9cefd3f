// Package types defines the shared types used across the abc-customer-care
// core packages.
//
// These types form the lingua franca between the normalizer, the transcript
// enhancer, the issue classifier and the step prioritizer. They are
// intentionally minimal — each package defines its own domain types, but
// cross-cutting data structures live here to avoid circular imports.
package types

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// Role identifies who produced a conversation turn.
type Role string

const (
	// RoleCustomer marks an utterance spoken by the caller.
	RoleCustomer Role = "customer"

	// RoleBot marks a response spoken by the support bot.
	RoleBot Role = "bot"
)

// IsValid reports whether r is a recognised speaker role.
func (r Role) IsValid() bool {
	return r == RoleCustomer || r == RoleBot
}

// ConversationTurn is one utterance in a call. Turns are append-only across a
// call and owned by the external call-session manager; the core only reads
// them.
type ConversationTurn struct {
	// Role identifies the speaker.
	Role Role

	// Text is the (already enhanced) utterance text.
	Text string

	// Timestamp marks when the utterance started, relative to call start.
	Timestamp time.Duration
}

// Language selects one of the two supported support languages.
type Language string

const (
	LangMalayalam Language = "ml"
	LangEnglish   Language = "en"
)

// LocalizedText is a text pair carried in both support languages.
type LocalizedText struct {
	Malayalam string `yaml:"ml"`
	English   string `yaml:"en"`
}

// In returns the text for lang, falling back to Malayalam for unknown values.
func (t LocalizedText) In(lang Language) string {
	if lang == LangEnglish {
		return t.English
	}
	return t.Malayalam
}

// KeywordMatch records a single matched classification signal and the score it
// contributed.
type KeywordMatch struct {
	// Keyword is the matched keyword, domain set name, or area name.
	Keyword string

	// Tier describes which scoring tier produced the match.
	// Well-known values: "area", "type", "domain", "word".
	Tier string

	// Score is the weight this match contributed to the candidate's total.
	Score float64
}

// SpeedValue is a numeric connection-speed mention extracted from an
// utterance (e.g. "പത്ത് mbps", "100 Mbps").
type SpeedValue struct {
	Value int
	Unit  string // "kbps", "mbps", or "gbps"
}

// TechnicalParams holds technical parameters extracted from the classified
// text. Extraction is regex-based and never influences the score.
type TechnicalParams struct {
	// Speed is the mentioned connection speed, when present.
	Speed *SpeedValue

	// ErrorCode is a mentioned error code (e.g. "error code: e104"), when present.
	ErrorCode string

	// Duration is a mentioned outage/issue duration, when present.
	Duration time.Duration
}

// ClassificationResult is the outcome of a single classification call.
// Created fresh per call; immutable once returned.
type ClassificationResult struct {
	// Issue is the primary issue type. IssueUnclassified with zero confidence
	// when no candidate matched — a valid outcome, not an error.
	Issue string

	// SubIssues lists finer-grained sub-issue ids detected within Issue.
	SubIssues []string

	// Confidence is the normalized score in [0, 1].
	Confidence float64

	// Matches itemises every signal that contributed to the winning score.
	Matches []KeywordMatch

	// Params holds extracted technical parameters.
	Params TechnicalParams

	// UsedHistory reports whether prior turns were folded in to recover a
	// low-signal utterance.
	UsedHistory bool
}

// IssueUnclassified is the sentinel primary issue type returned when no
// candidate exceeds the zero-score floor.
const IssueUnclassified = "unclassified"

// TroubleshootingStep describes one troubleshooting action offered to the
// customer. Steps are declared in the scenario catalog; the success/attempt
// statistics live in the prioritizer, not here, so a step value stays
// immutable after load.
type TroubleshootingStep struct {
	// ID uniquely identifies the step within its scenario.
	ID string `yaml:"id"`

	// Text is the customer-facing instruction in both languages.
	Text LocalizedText `yaml:"text"`

	// TechnicalDetail is extra context for a technician, not read to the customer.
	TechnicalDetail string `yaml:"technical_detail"`

	// Complexity rates how demanding the step is on a 1 (trivial) to 5
	// (expert) ordinal scale.
	Complexity int `yaml:"complexity"`

	// EstimatedTime is the expected wall-clock duration of the step.
	EstimatedTime time.Duration `yaml:"estimated_time"`

	// Requires lists step ids that must have succeeded in this call before
	// this step may be offered.
	Requires []string `yaml:"requires"`
}

// UnmarshalYAML decodes a step from the scenario catalog. Estimated time is
// written as a Go duration string ("30s", "2m") in the YAML source.
func (s *TroubleshootingStep) UnmarshalYAML(value *yaml.Node) error {
	var raw struct {
		ID              string        `yaml:"id"`
		Text            LocalizedText `yaml:"text"`
		TechnicalDetail string        `yaml:"technical_detail"`
		Complexity      int           `yaml:"complexity"`
		EstimatedTime   string        `yaml:"estimated_time"`
		Requires        []string      `yaml:"requires"`
	}
	if err := value.Decode(&raw); err != nil {
		return err
	}

	s.ID = raw.ID
	s.Text = raw.Text
	s.TechnicalDetail = raw.TechnicalDetail
	s.Complexity = raw.Complexity
	s.Requires = raw.Requires
	s.EstimatedTime = 0
	if raw.EstimatedTime != "" {
		d, err := time.ParseDuration(raw.EstimatedTime)
		if err != nil {
			return fmt.Errorf("types: step %q: estimated_time: %w", raw.ID, err)
		}
		s.EstimatedTime = d
	}
	return nil
}

// TechnicalLevel is an ordinal rating of a customer's comfort with
// self-service troubleshooting.
type TechnicalLevel int

const (
	LevelNovice       TechnicalLevel = 1
	LevelIntermediate TechnicalLevel = 3
	LevelAdvanced     TechnicalLevel = 5
)

// IsValid reports whether l is inside the 1–5 ordinal range.
func (l TechnicalLevel) IsValid() bool {
	return l >= 1 && l <= 5
}

// CustomerTechnicalProfile describes the caller's self-service ability.
// Supplied read-only by the external customer record store.
type CustomerTechnicalProfile struct {
	// Level is the customer's technical comfort rating.
	Level TechnicalLevel

	// Patience rates the customer's tolerance for long steps on a 1
	// (impatient) to 5 (very patient) scale.
	Patience int

	// Area is the customer's service area, matched against active incidents.
	Area string

	// PreviousCalls and SuccessfulResolutions summarise prior support history.
	PreviousCalls         int
	SuccessfulResolutions int
}

// SuccessRatio is the customer's historical resolution rate, defaulting to
// 0.5 when there is no history.
func (p CustomerTechnicalProfile) SuccessRatio() float64 {
	if p.PreviousCalls == 0 {
		return 0.5
	}
	return float64(p.SuccessfulResolutions) / float64(p.PreviousCalls)
}

// Incident is an active service incident known to the provider, used by the
// classifier's area tier.
type Incident struct {
	// Issue is the issue type this incident maps to (e.g. "internet_down").
	Issue string

	// Area is the affected service area.
	Area string
}
