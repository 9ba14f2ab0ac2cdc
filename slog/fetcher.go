// Package slog provides logging decorators around the domain interfaces.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/jackalderton/contentrec"
)

// Ensure Fetcher implements contentrec.Fetcher at compile time.
var _ contentrec.Fetcher = (*Fetcher)(nil)

// Fetcher wraps a contentrec.Fetcher with request logging.
type Fetcher struct {
	next   contentrec.Fetcher
	logger *slog.Logger
}

// NewFetcher creates a new logging Fetcher.
func NewFetcher(next contentrec.Fetcher, logger *slog.Logger) *Fetcher {
	return &Fetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs the outcome.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, []byte, error) {
	begin := time.Now()
	finalURL, body, err := f.next.Fetch(ctx, url)
	if err != nil {
		f.logger.Error("fetch failed",
			"url", url,
			"duration", time.Since(begin),
			"error", err,
		)
		return "", nil, err
	}
	f.logger.Info("fetch",
		"url", url,
		"final_url", finalURL,
		"bytes", len(body),
		"duration", time.Since(begin),
	)
	return finalURL, body, nil
}

// Close delegates to the wrapped fetcher.
func (f *Fetcher) Close() error {
	return f.next.Close()
}
