package http

import (
	"context"
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/jackalderton/contentrec"
	"golang.org/x/sync/singleflight"
)

// DefaultCacheTTL is how long a fetched document stays valid in the cache.
const DefaultCacheTTL = time.Hour

// Ensure CachingFetcher implements contentrec.Fetcher at compile time.
var _ contentrec.Fetcher = (*CachingFetcher)(nil)

// CachingFetcher wraps a Fetcher with an in-memory TTL cache keyed by URL,
// so repeated extractions of the same page within the TTL reuse the
// response. Concurrent fetches of the same URL collapse into one request.
// Failures are never cached.
type CachingFetcher struct {
	next  contentrec.Fetcher
	clock contentrec.Clock
	ttl   time.Duration

	group   singleflight.Group
	mu      sync.Mutex
	entries map[uint64]cacheEntry
}

type cacheEntry struct {
	finalURL  string
	body      []byte
	fetchedAt time.Time
}

// CacheOption configures a CachingFetcher.
type CacheOption func(*CachingFetcher)

// WithTTL sets the cache entry lifetime. Defaults to DefaultCacheTTL (1h).
func WithTTL(d time.Duration) CacheOption {
	return func(f *CachingFetcher) {
		f.ttl = d
	}
}

// WithClock injects the clock used for expiry decisions.
func WithClock(c contentrec.Clock) CacheOption {
	return func(f *CachingFetcher) {
		f.clock = c
	}
}

// NewCachingFetcher creates a caching decorator around next.
func NewCachingFetcher(next contentrec.Fetcher, opts ...CacheOption) *CachingFetcher {
	f := &CachingFetcher{
		next:    next,
		clock:   contentrec.SystemClock{},
		ttl:     DefaultCacheTTL,
		entries: make(map[uint64]cacheEntry),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Fetch returns a cached response when a fresh entry exists, otherwise
// delegates to the wrapped fetcher and caches the result.
func (f *CachingFetcher) Fetch(ctx context.Context, url string) (string, []byte, error) {
	key := xxhash.Sum64String(url)
	if e, ok := f.lookup(key); ok {
		return e.finalURL, e.body, nil
	}

	v, err, _ := f.group.Do(url, func() (interface{}, error) {
		// Another caller may have populated the entry while this one
		// waited on the flight group.
		if e, ok := f.lookup(key); ok {
			return e, nil
		}

		finalURL, body, err := f.next.Fetch(ctx, url)
		if err != nil {
			return nil, err
		}

		e := cacheEntry{finalURL: finalURL, body: body, fetchedAt: f.clock.Now()}
		f.mu.Lock()
		f.entries[key] = e
		f.mu.Unlock()
		return e, nil
	})
	if err != nil {
		return "", nil, err
	}

	e := v.(cacheEntry)
	return e.finalURL, e.body, nil
}

func (f *CachingFetcher) lookup(key uint64) (cacheEntry, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	e, ok := f.entries[key]
	if !ok || f.clock.Now().Sub(e.fetchedAt) >= f.ttl {
		return cacheEntry{}, false
	}
	return e, true
}

// Close closes the wrapped fetcher.
func (f *CachingFetcher) Close() error {
	return f.next.Close()
}
