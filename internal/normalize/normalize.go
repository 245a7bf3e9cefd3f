// Package normalize implements first-line cleanup of raw STT transcripts:
// silence-artifact rejection, content filtering and whitespace collapsing.
//
// Telephone STT engines emit a small set of junk tokens for silence and
// background noise on Malayalam audio. A very short utterance consisting of
// such a token is almost never real speech, so the normalizer drops the whole
// utterance. Longer utterances keep their real content and only the junk
// tokens are removed.
package normalize

import (
	"log/slog"
	"strings"
)

const defaultSilenceThreshold = 100

// Option configures a [Normalizer].
type Option func(*Normalizer)

// WithSilenceDenylist replaces the set of tokens treated as silence
// artifacts.
func WithSilenceDenylist(words []string) Option {
	return func(n *Normalizer) {
		n.silence = toSet(words)
	}
}

// WithContentDenylist replaces the set of tokens stripped from transcripts.
func WithContentDenylist(words []string) Option {
	return func(n *Normalizer) {
		n.content = toSet(words)
	}
}

// WithSilenceThreshold sets the audio level below which a denylisted token is
// taken as a silence misrecognition. Default: 100.
func WithSilenceThreshold(level float64) Option {
	return func(n *Normalizer) {
		n.silenceThreshold = level
	}
}

// WithLogger sets the logger used for filter side-effect logging. Defaults to
// [slog.Default].
func WithLogger(log *slog.Logger) Option {
	return func(n *Normalizer) {
		n.log = log
	}
}

// CallOption carries per-call signals into [Normalizer.Normalize].
type CallOption func(*callState)

// WithAudioLevel supplies the mean audio level of the frames that produced
// this transcript. Without it, silence detection relies on text shape alone.
func WithAudioLevel(level float64) CallOption {
	return func(c *callState) {
		c.audioLevel = level
		c.hasAudioLevel = true
	}
}

type callState struct {
	audioLevel    float64
	hasAudioLevel bool
}

// Normalizer cleans raw transcripts. Read-only after construction and safe
// for concurrent use.
type Normalizer struct {
	silence          map[string]struct{}
	content          map[string]struct{}
	silenceThreshold float64
	log              *slog.Logger
}

// New returns a Normalizer with the supplied options applied. Without
// denylist options the normalizer only collapses whitespace.
func New(opts ...Option) *Normalizer {
	n := &Normalizer{
		silenceThreshold: defaultSilenceThreshold,
		log:              slog.Default(),
	}
	for _, o := range opts {
		o(n)
	}
	return n
}

// Normalize cleans a raw transcript. It returns the empty string when the
// input is judged to be a silence artifact; callers must treat that as
// "nothing was said", not as an error.
func (n *Normalizer) Normalize(raw string, opts ...CallOption) string {
	var call callState
	for _, o := range opts {
		o(&call)
	}

	text := strings.TrimSpace(raw)
	if len([]rune(text)) <= 1 {
		return ""
	}

	if n.isSilence(text, call) {
		n.log.Info("normalize: silence artifact dropped", "text", text)
		return ""
	}

	text = n.filterContent(text)

	return strings.Join(strings.Fields(text), " ")
}

// isSilence reports whether text is a known silence misrecognition. A short
// utterance (two tokens or fewer) containing a denylisted token qualifies;
// with a corroborating low audio level the length limit is waived.
func (n *Normalizer) isSilence(text string, call callState) bool {
	if len(n.silence) == 0 {
		return false
	}

	tokens := strings.Fields(text)
	containsArtifact := false
	for _, tok := range tokens {
		if _, ok := n.silence[canonicalToken(tok)]; ok {
			containsArtifact = true
			break
		}
	}
	if !containsArtifact {
		return false
	}

	if len(tokens) <= 2 {
		return true
	}
	return call.hasAudioLevel && call.audioLevel < n.silenceThreshold
}

// filterContent removes denylisted tokens from longer utterances. Tokens are
// compared whole after canonicalisation; a denylisted word embedded inside a
// longer legitimate token never matches. Script variants of the same word are
// separate denylist entries.
func (n *Normalizer) filterContent(text string) string {
	if len(n.content) == 0 {
		return text
	}

	tokens := strings.Fields(text)
	kept := tokens[:0]
	for _, tok := range tokens {
		if _, blocked := n.content[canonicalToken(tok)]; blocked {
			n.log.Warn("normalize: filtered token", "token", tok)
			continue
		}
		kept = append(kept, tok)
	}
	return strings.Join(kept, " ")
}

func canonicalToken(tok string) string {
	return strings.ToLower(strings.Trim(tok, ".,?!:;\"'"))
}

func toSet(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[strings.ToLower(w)] = struct{}{}
	}
	return set
}
