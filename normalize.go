package contentrec

import (
	"regexp"
	"strings"
)

var (
	horizontalWS  = regexp.MustCompile(`[ \t]+`)
	newlineEdgeWS = regexp.MustCompile(`[ \t]*\n[ \t]*`)
	anyWS         = regexp.MustCompile(`\s+`)
)

// NormalizeKeepNewlines canonicalizes whitespace without discarding line
// structure: CRLF and CR become LF, non-breaking spaces become regular
// spaces, runs of spaces and tabs collapse to one space, and horizontal
// whitespace immediately surrounding each newline is trimmed.
func NormalizeKeepNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	s = strings.ReplaceAll(s, " ", " ")
	s = horizontalWS.ReplaceAllString(s, " ")
	s = newlineEdgeWS.ReplaceAllString(s, "\n")
	return s
}

// CollapseWhitespace collapses every whitespace run (including newlines) to
// a single space and trims the result.
func CollapseWhitespace(s string) string {
	return strings.TrimSpace(anyWS.ReplaceAllString(s, " "))
}
