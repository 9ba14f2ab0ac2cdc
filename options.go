package contentrec

// DefaultExcludeSelectors is the built-in list of CSS selectors removed from
// the body before extraction. It covers navigation chrome, cookie and
// newsletter banners, breadcrumbs, search-results widgets, and known modal
// containers. Callers may replace or extend the list per request.
var DefaultExcludeSelectors = []string{
	"header", "footer", "nav",
	".cookie", ".newsletter",
	"[class*='breadcrumb']",
	"[class*='wishlist']",
	"[class*='simplesearch']",
	"[id*='gallery']",
	"[class*='usp']",
	"[class*='feefo']",
	"[class*='associated-blogs']",
	"[class*='popular']",
	// SPA search-results containers and variants.
	".sr-main.js-searchpage-content.visible",
	"[class~='sr-main'][class~='js-searchpage-content'][class~='visible']",
	"[class*='js-searchpage-content']",
	"[class*='searchpage-content']",
	// Map modal container.
	".lmd-map-modal-create.js-lmd-map-modal-map",
}

// Options controls a single extraction run.
type Options struct {
	// ExcludeSelectors is an ordered list of CSS selectors whose matching
	// subtrees are removed from the body before traversal. Invalid or
	// non-matching selectors are skipped silently. Nil means
	// DefaultExcludeSelectors.
	ExcludeSelectors []string

	// AnnotateLinks appends " (→ URL)" after anchor text when the anchor
	// has an href.
	AnnotateLinks bool

	// RemoveBeforeH1 deletes every node preceding the first <h1> in the
	// body, at every ancestor nesting level. No-op if the body has no <h1>.
	RemoveBeforeH1 bool

	// IncludeImgSrc includes the src attribute in emitted image lines when
	// the image has a non-empty src.
	IncludeImgSrc bool
}

// Selectors returns the exclusion selectors to apply, falling back to the
// defaults when none were set.
func (o Options) Selectors() []string {
	if o.ExcludeSelectors == nil {
		return DefaultExcludeSelectors
	}
	return o.ExcludeSelectors
}
