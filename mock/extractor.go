package mock

import "github.com/jackalderton/contentrec"

var _ contentrec.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of contentrec.Extractor.
type Extractor struct {
	ExtractFn func(html []byte, finalURL string, opts contentrec.Options) (*contentrec.Result, error)
}

func (e *Extractor) Extract(html []byte, finalURL string, opts contentrec.Options) (*contentrec.Result, error) {
	return e.ExtractFn(html, finalURL, opts)
}
