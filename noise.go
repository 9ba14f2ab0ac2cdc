package contentrec

import "strings"

// DefaultNoiseSubstrings is the built-in set of UI and analytics boilerplate
// markers. A candidate text containing any of them (case-insensitively) is
// dropped when emitted as paragraph content.
//
// Matching is a plain substring test, not tokenized: a legitimate sentence
// containing "clear" is dropped too. That is the intended behavior.
var DefaultNoiseSubstrings = []string{
	"google tag manager",
	"loading results",
	"load more",
	"updating results",
	"something went wrong",
	"filters",
	"apply filters",
	"clear",
	"sort by",
	"to collect end-user usage analytics",
	"place this code immediately before the closing",
}

// NoiseClassifier detects boilerplate text by substring matching.
type NoiseClassifier struct {
	substrings []string
}

// NewNoiseClassifier creates a classifier matching the given substrings,
// which must be lower-case. With no arguments it uses
// DefaultNoiseSubstrings.
func NewNoiseClassifier(substrings ...string) *NoiseClassifier {
	if len(substrings) == 0 {
		substrings = DefaultNoiseSubstrings
	}
	return &NoiseClassifier{substrings: substrings}
}

// IsNoise reports whether the trimmed, lower-cased text contains any of the
// configured substrings. Empty or whitespace-only text is never noise;
// callers decide separately whether to emit blank markers.
func (c *NoiseClassifier) IsNoise(text string) bool {
	t := strings.ToLower(strings.TrimSpace(text))
	if t == "" {
		return false
	}
	for _, sub := range c.substrings {
		if strings.Contains(t, sub) {
			return true
		}
	}
	return false
}
