// Package goquery implements HTML extraction on top of goquery, cascadia
// and the x/net/html node tree: selector-based pruning, the signposted body
// walk, structured-data side extraction, and page metadata resolution.
package goquery

import (
	"bytes"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"github.com/jackalderton/contentrec"
)

// Ensure Extractor implements contentrec.Extractor at compile time.
var _ contentrec.Extractor = (*Extractor)(nil)

// hardKillClasses is a safety net for SPA search-results containers: any
// element carrying all three tokens is removed even when the selector pass
// missed it. The removal is idempotent with the default exclusion list.
var hardKillClasses = []string{"sr-main", "js-searchpage-content", "visible"}

// Extractor converts raw HTML into signposted content lines and metadata.
type Extractor struct {
	noise          *contentrec.NoiseClassifier
	clock          contentrec.Clock
	pageNameMarker string
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithNoiseClassifier replaces the default boilerplate classifier.
func WithNoiseClassifier(c *contentrec.NoiseClassifier) Option {
	return func(e *Extractor) {
		e.noise = c
	}
}

// WithClock injects the clock used for the metadata date field.
func WithClock(c contentrec.Clock) Option {
	return func(e *Extractor) {
		e.clock = c
	}
}

// WithPageNameMarker sets the URL path marker used for fallback page
// naming. Defaults to contentrec.DefaultPageNameMarker.
func WithPageNameMarker(marker string) Option {
	return func(e *Extractor) {
		e.pageNameMarker = marker
	}
}

// New creates a new Extractor.
func New(opts ...Option) *Extractor {
	e := &Extractor{
		noise:          contentrec.NewNoiseClassifier(),
		clock:          contentrec.SystemClock{},
		pageNameMarker: contentrec.DefaultPageNameMarker,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract parses the document, prunes excluded subtrees, walks the body and
// resolves metadata. The document tree is private to this call; it is
// mutated by pruning and discarded on return.
func (e *Extractor) Extract(htmlBytes []byte, finalURL string, opts contentrec.Options) (*contentrec.Result, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(htmlBytes))
	if err != nil {
		return nil, contentrec.Errorf(contentrec.EINVALID, "failed to parse HTML: %v", err)
	}

	// Structured data runs first: it must see script elements before any
	// destructive pruning. The body walk never descends into scripts.
	schema := extractStructuredData(doc)

	doc.Find("style, noscript, template").Remove()

	body := doc.Find("body").First()
	prune(body, opts.Selectors())

	if opts.RemoveBeforeH1 {
		trimBeforeFirstHeading(body)
	}

	w := &walker{
		noise:         e.noise,
		annotateLinks: opts.AnnotateLinks,
		includeImgSrc: opts.IncludeImgSrc,
	}
	for _, n := range body.Nodes {
		w.walkBody(n)
	}

	meta := e.resolveMeta(doc, body, finalURL)
	meta.Schema = schema

	return &contentrec.Result{
		Meta:  meta,
		Lines: collapseAdjacent(w.lines),
	}, nil
}

// prune removes excluded subtrees from the body. Each selector is compiled
// independently; an invalid or non-matching selector is a no-op, never
// fatal.
func prune(body *goquery.Selection, selectors []string) {
	for _, sel := range selectors {
		matcher, err := cascadia.Compile(sel)
		if err != nil {
			continue
		}
		body.FindMatcher(matcher).Remove()
	}

	// Class-token matching is independent of the selector engine, so this
	// pass survives selector edge cases.
	body.Find("[class]").Each(func(_ int, s *goquery.Selection) {
		if hasAllClasses(s, hardKillClasses) {
			s.Remove()
		}
	})
}

func hasAllClasses(s *goquery.Selection, classes []string) bool {
	have := make(map[string]bool)
	for _, c := range splitClasses(s.AttrOr("class", "")) {
		have[c] = true
	}
	for _, c := range classes {
		if !have[c] {
			return false
		}
	}
	return true
}

// trimBeforeFirstHeading removes every document-order predecessor of the
// first <h1>: it walks the ancestor chain from the heading up to the body
// and deletes all preceding siblings at each level. No-op without an <h1>.
func trimBeforeFirstHeading(body *goquery.Selection) {
	h1 := body.Find("h1").First()
	if h1.Length() == 0 || body.Length() == 0 {
		return
	}
	root := body.Nodes[0]
	for n := h1.Nodes[0]; n != nil && n != root && n.Parent != nil; n = n.Parent {
		for prev := n.PrevSibling; prev != nil; {
			before := prev.PrevSibling
			n.Parent.RemoveChild(prev)
			prev = before
		}
	}
}

// collapseAdjacent drops consecutive duplicate lines, comparing rendered
// forms. Runs of blank markers collapse to a single blank; a blank is never
// merged with a neighboring non-blank duplicate.
func collapseAdjacent(lines []contentrec.Line) []contentrec.Line {
	out := make([]contentrec.Line, 0, len(lines))
	prev := ""
	for i, ln := range lines {
		s := ln.String()
		if i == 0 || s != prev {
			out = append(out, ln)
		}
		prev = s
	}
	return out
}
