package contentrec

import (
	"net/url"
	"strings"
	"unicode"
)

// DefaultPageNameMarker is the path segment that marks structured
// destination URLs: when it appears with at least two further segments, the
// segment two positions later names the page.
const DefaultPageNameMarker = "destinations"

// SlugToName converts a URL slug to a display name: hyphens become spaces,
// each letter following a non-letter is title-cased and the rest are
// lower-cased, so dotted hostnames come out as "Example.Com".
func SlugToName(slug string) string {
	s := strings.TrimSpace(strings.ReplaceAll(slug, "-", " "))
	var b strings.Builder
	b.Grow(len(s))
	prevLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			if prevLetter {
				r = unicode.ToLower(r)
			} else {
				r = unicode.ToTitle(r)
			}
			prevLetter = true
		} else {
			prevLetter = false
		}
		b.WriteRune(r)
	}
	return b.String()
}

// PageNameFromURL derives a fallback page name from a resolved URL, used
// when the page has no usable <h1>. If a path segment equals marker and two
// further segments follow, the segment two positions later is used.
// Otherwise the last non-empty path segment, or the hostname, or "Page",
// slug-cased in every case. An empty marker disables the marker rule.
func PageNameFromURL(rawURL, marker string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return SlugToName("Page")
	}

	var parts []string
	for _, p := range strings.Split(strings.Trim(u.Path, "/"), "/") {
		if p != "" {
			parts = append(parts, p)
		}
	}

	if marker != "" {
		for i, p := range parts {
			if p == marker && len(parts) > i+2 {
				return SlugToName(parts[i+2])
			}
		}
	}

	if len(parts) > 0 {
		return SlugToName(parts[len(parts)-1])
	}
	if host := u.Hostname(); host != "" {
		return SlugToName(host)
	}
	return SlugToName("Page")
}
