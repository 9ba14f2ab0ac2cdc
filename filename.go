package contentrec

import (
	"regexp"
	"strings"
)

// maxFilenameLength bounds generated document file names.
const maxFilenameLength = 120

var unsafeFilenameChars = regexp.MustCompile(`[\\/*?:"<>|]+`)

// SafeFilename turns a page name into a name safe for downloads and zip
// entries: whitespace runs collapse to single spaces, characters that break
// downloads are removed, commas are dropped, and the result is trimmed to
// 120 characters with trailing dots and spaces stripped.
func SafeFilename(name string) string {
	name = CollapseWhitespace(name)
	name = unsafeFilenameChars.ReplaceAllString(name, "")
	name = strings.ReplaceAll(name, ",", "")
	if runes := []rune(name); len(runes) > maxFilenameLength {
		name = string(runes[:maxFilenameLength])
	}
	return strings.TrimRight(name, ". ")
}
