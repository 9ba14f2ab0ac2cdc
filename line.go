package contentrec

import (
	"fmt"
	"strings"
)

// LineKind identifies the semantic role of a signposted line.
type LineKind int

// Line kinds.
const (
	KindBlank LineKind = iota
	KindHeading
	KindParagraph
	KindImage
)

// Line is one unit of extracted output tagged with its semantic role.
// The zero value is a blank line, which acts as a separator in the
// rendered sequence.
type Line struct {
	Kind  LineKind
	Level int    // heading level 1-6, set only for KindHeading
	Text  string // heading or paragraph text
	Alt   string // image alt text
	Src   string // image source, empty unless source inclusion was requested
}

// HeadingLine returns a heading line at the given level.
func HeadingLine(level int, text string) Line {
	return Line{Kind: KindHeading, Level: level, Text: text}
}

// ParagraphLine returns a paragraph line.
func ParagraphLine(text string) Line {
	return Line{Kind: KindParagraph, Text: text}
}

// BlankLine returns a blank separator line.
func BlankLine() Line {
	return Line{Kind: KindBlank}
}

// ImageLine returns an image line. src may be empty, in which case the
// rendered form omits the src attribute entirely.
func ImageLine(alt, src string) Line {
	return Line{Kind: KindImage, Alt: alt, Src: src}
}

// String renders the line in its wire form: "<h1> text" through "<h6> text",
// "<p> text", `<img alt="...">` or `<img alt="..." src="...">`, and the
// empty string for a blank line. Double quotes inside image attributes are
// escaped.
func (l Line) String() string {
	switch l.Kind {
	case KindHeading:
		return fmt.Sprintf("<h%d> %s", l.Level, l.Text)
	case KindParagraph:
		return "<p> " + l.Text
	case KindImage:
		alt := escapeQuotes(l.Alt)
		if l.Src != "" {
			return `<img alt="` + alt + `" src="` + escapeQuotes(l.Src) + `">`
		}
		return `<img alt="` + alt + `">`
	default:
		return ""
	}
}

// RenderLines renders a line sequence to its wire form, one string per line.
func RenderLines(lines []Line) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = l.String()
	}
	return out
}

func escapeQuotes(s string) string {
	return strings.ReplaceAll(s, `"`, `\"`)
}
