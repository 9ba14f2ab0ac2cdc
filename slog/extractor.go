package slog

import (
	"log/slog"
	"time"

	"github.com/jackalderton/contentrec"
)

// Ensure Extractor implements contentrec.Extractor at compile time.
var _ contentrec.Extractor = (*Extractor)(nil)

// Extractor wraps a contentrec.Extractor with extraction logging.
type Extractor struct {
	next   contentrec.Extractor
	logger *slog.Logger
}

// NewExtractor creates a new logging Extractor.
func NewExtractor(next contentrec.Extractor, logger *slog.Logger) *Extractor {
	return &Extractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the outcome.
func (e *Extractor) Extract(html []byte, finalURL string, opts contentrec.Options) (*contentrec.Result, error) {
	begin := time.Now()
	result, err := e.next.Extract(html, finalURL, opts)
	if err != nil {
		e.logger.Error("extraction failed",
			"url", finalURL,
			"duration", time.Since(begin),
			"error", err,
		)
		return nil, err
	}
	e.logger.Info("extraction",
		"url", finalURL,
		"page", result.Meta.Page,
		"lines", len(result.Lines),
		"schema_lines", len(result.Meta.Schema),
		"duration", time.Since(begin),
	)
	return result, nil
}
