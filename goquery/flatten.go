package goquery

import (
	"strings"

	"golang.org/x/net/html"
)

// inlineTags are treated as part of the same paragraph when accumulating
// text runs inside generic containers.
var inlineTags = map[string]bool{
	"a": true, "span": true, "strong": true, "em": true, "b": true,
	"i": true, "u": true, "s": true, "small": true, "sup": true,
	"sub": true, "mark": true, "abbr": true, "time": true, "code": true,
	"var": true, "kbd": true,
}

// strippedTags contribute nothing to the body walk and are never descended
// into. style, noscript and template are already pruned from the tree;
// script is kept for structured-data extraction and skipped here.
var strippedTags = map[string]bool{
	"script": true, "style": true, "noscript": true, "template": true,
}

// flattenText renders a node's visible text at every nesting depth: text
// nodes are concatenated in document order, <br> becomes an embedded
// newline, and anchors are reduced to a single unit so link-internal markup
// cannot leak duplicate or malformed fragments into the output.
func flattenText(n *html.Node, annotateLinks bool) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case html.TextNode:
			b.WriteString(c.Data)
		case html.ElementNode:
			switch c.Data {
			case "br":
				b.WriteString("\n")
			case "a":
				b.WriteString(anchorText(c, annotateLinks))
			default:
				b.WriteString(flattenText(c, annotateLinks))
			}
		}
	}
	return b.String()
}

// anchorText flattens an anchor to its visible text, word-joined and
// trimmed, optionally suffixed with a " (→ href)" annotation.
func anchorText(a *html.Node, annotate bool) string {
	var parts []string
	var collect func(*html.Node)
	collect = func(n *html.Node) {
		if n.Type == html.TextNode {
			if t := strings.TrimSpace(n.Data); t != "" {
				parts = append(parts, t)
			}
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			collect(c)
		}
	}
	collect(a)

	text := strings.Join(parts, " ")
	if href := attrVal(a, "href"); annotate && href != "" {
		return text + " (→ " + href + ")"
	}
	return text
}

func attrVal(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func splitClasses(attr string) []string {
	return strings.Fields(attr)
}

func headingLevel(tag string) int {
	if len(tag) == 2 && tag[0] == 'h' && tag[1] >= '1' && tag[1] <= '6' {
		return int(tag[1] - '0')
	}
	return 0
}
