package contentrec

// Extractor converts raw HTML into a metadata record and an ordered
// signposted line sequence.
type Extractor interface {
	// Extract parses the document bytes, prunes excluded subtrees, walks
	// the body, and resolves page metadata. finalURL is the resolved URL
	// after redirects; it feeds the metadata record and the fallback page
	// name. The extraction is deterministic: identical bytes and options
	// yield byte-identical output.
	Extract(html []byte, finalURL string, opts Options) (*Result, error)
}
