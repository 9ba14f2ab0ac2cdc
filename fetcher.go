package contentrec

import "context"

// Fetcher retrieves raw document bytes from URLs.
type Fetcher interface {
	// Fetch performs a GET request for the URL, following redirects, and
	// returns the final resolved URL together with the response body.
	// A non-success status is an error.
	Fetch(ctx context.Context, url string) (finalURL string, body []byte, err error)

	// Close releases any resources held by the fetcher.
	Close() error
}
