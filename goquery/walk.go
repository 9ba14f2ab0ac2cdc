package goquery

import (
	"strings"

	"github.com/jackalderton/contentrec"
	"golang.org/x/net/html"
)

// walker accumulates signposted lines during one body traversal.
type walker struct {
	noise         *contentrec.NoiseClassifier
	annotateLinks bool
	includeImgSrc bool
	lines         []contentrec.Line
}

func (w *walker) emit(l contentrec.Line) {
	w.lines = append(w.lines, l)
}

// walkBody processes the direct children of the body root. Bare text nodes
// become paragraph lines; a newline-only text node becomes a blank marker.
func (w *walker) walkBody(body *html.Node) {
	for c := body.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case html.TextNode:
			raw := contentrec.NormalizeKeepNewlines(c.Data)
			if strings.TrimSpace(raw) != "" {
				if !w.noise.IsNoise(raw) {
					w.emitParagraph(raw)
				}
			} else if strings.Contains(raw, "\n") {
				w.emit(contentrec.BlankLine())
			}
		case html.ElementNode:
			if c.Data == "img" {
				w.emitImage(c)
			} else {
				w.handle(c)
			}
		}
	}
}

// handle classifies one element by tag identity and emits its lines.
func (w *walker) handle(el *html.Node) {
	tag := el.Data
	if strippedTags[tag] {
		return
	}

	if level := headingLevel(tag); level > 0 {
		w.emitHeading(level, flattenText(el, w.annotateLinks))
		return
	}

	switch tag {
	case "p":
		w.emitParagraph(flattenText(el, w.annotateLinks))
		w.emitImages(el)
	case "ul", "ol":
		w.walkList(el)
	case "img":
		w.emitImage(el)
	default:
		w.walkContainer(el)
	}
}

// walkList flattens each direct list item to paragraph-equivalent lines.
// A single level of nested sub-lists is flattened directly after the parent
// item's content; deeper nesting is not specially handled.
func (w *walker) walkList(list *html.Node) {
	for li := list.FirstChild; li != nil; li = li.NextSibling {
		if li.Type != html.ElementNode || li.Data != "li" {
			continue
		}
		w.emitListItem(li)
		for sub := li.FirstChild; sub != nil; sub = sub.NextSibling {
			if sub.Type != html.ElementNode || (sub.Data != "ul" && sub.Data != "ol") {
				continue
			}
			for subLi := sub.FirstChild; subLi != nil; subLi = subLi.NextSibling {
				if subLi.Type == html.ElementNode && subLi.Data == "li" {
					w.emitListItem(subLi)
				}
			}
		}
	}
}

func (w *walker) emitListItem(li *html.Node) {
	if txt := flattenText(li, w.annotateLinks); strings.TrimSpace(txt) != "" {
		w.emitParagraph(txt)
	}
	w.emitImages(li)
}

// walkContainer accumulates contiguous runs of text and inline elements
// into one buffer, flushing as paragraph lines around images and block
// children.
func (w *walker) walkContainer(el *html.Node) {
	var buf []string
	flush := func() {
		if len(buf) == 0 {
			return
		}
		joined := contentrec.NormalizeKeepNewlines(strings.Join(buf, ""))
		buf = buf[:0]
		if strings.TrimSpace(joined) == "" || w.noise.IsNoise(joined) {
			return
		}
		w.emitParagraph(joined)
	}

	for c := el.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case html.TextNode:
			buf = append(buf, c.Data)
		case html.ElementNode:
			switch {
			case c.Data == "br":
				buf = append(buf, "\n")
			case c.Data == "img":
				flush()
				w.emitImage(c)
			case inlineTags[c.Data]:
				buf = append(buf, flattenText(c, w.annotateLinks))
			default:
				flush()
				w.handle(c)
			}
		}
	}
	flush()
}

// emitHeading splits normalized heading text on embedded newlines and emits
// one heading line per non-empty segment. Levels 2-6 get one blank
// separator before the first segment unless the previous emitted line is
// already blank. Whitespace-only headings emit nothing.
func (w *walker) emitHeading(level int, text string) {
	text = contentrec.NormalizeKeepNewlines(text)
	if strings.TrimSpace(text) == "" {
		return
	}
	if level >= 2 {
		if n := len(w.lines); n > 0 && w.lines[n-1].Kind != contentrec.KindBlank {
			w.emit(contentrec.BlankLine())
		}
	}
	for _, seg := range strings.Split(text, "\n") {
		if seg = strings.TrimSpace(seg); seg != "" {
			w.emit(contentrec.HeadingLine(level, seg))
		}
	}
}

// emitParagraph splits normalized text on newlines and emits one paragraph
// line per non-empty segment, dropping noise segments.
func (w *walker) emitParagraph(text string) {
	text = contentrec.NormalizeKeepNewlines(text)
	for _, seg := range strings.Split(text, "\n") {
		seg = strings.TrimSpace(seg)
		if seg == "" || w.noise.IsNoise(seg) {
			continue
		}
		w.emit(contentrec.ParagraphLine(seg))
	}
}

// emitImage emits an image line for the element. The src attribute is
// included only when source inclusion was requested and src is non-empty.
func (w *walker) emitImage(img *html.Node) {
	alt := strings.TrimSpace(attrVal(img, "alt"))
	if w.includeImgSrc {
		if src := strings.TrimSpace(attrVal(img, "src")); src != "" {
			w.emit(contentrec.ImageLine(alt, src))
			return
		}
	}
	w.emit(contentrec.ImageLine(alt, ""))
}

// emitImages emits every descendant image of el in document order.
func (w *walker) emitImages(el *html.Node) {
	for c := el.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.Data == "img" {
			w.emitImage(c)
		}
		w.emitImages(c)
	}
}
