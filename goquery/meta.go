package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/jackalderton/contentrec"
)

// resolveMeta derives the metadata record from the already pruned document.
// Title and description fall back to the "N/A" sentinel when absent, with
// zero lengths.
func (e *Extractor) resolveMeta(doc *goquery.Document, body *goquery.Selection, finalURL string) contentrec.Meta {
	meta := contentrec.Meta{
		URL:  finalURL,
		Date: contentrec.DateString(e.clock.Now()),
	}

	meta.SetTitle(strings.TrimSpace(doc.Find("head title").First().Text()))

	var description string
	if v, ok := doc.Find(`meta[name="description"]`).First().Attr("content"); ok {
		description = strings.TrimSpace(v)
	}
	meta.SetDescription(description)

	meta.Page = e.pageName(body, finalURL)
	return meta
}

// pageName prefers the first <h1> in the body, whitespace-collapsed;
// otherwise the name is derived from the resolved URL path.
func (e *Extractor) pageName(body *goquery.Selection, finalURL string) string {
	h1 := body.Find("h1").First()
	if h1.Length() > 0 {
		// Normalize first so non-breaking spaces collapse too.
		txt := contentrec.NormalizeKeepNewlines(flattenText(h1.Nodes[0], false))
		if txt = contentrec.CollapseWhitespace(txt); txt != "" {
			return txt
		}
	}
	return contentrec.PageNameFromURL(finalURL, e.pageNameMarker)
}
