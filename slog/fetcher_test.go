package slog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/jackalderton/contentrec"
	"github.com/jackalderton/contentrec/mock"
	cslog "github.com/jackalderton/contentrec/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return slog.New(slog.NewTextHandler(&buf, nil)), &buf
}

func TestFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("passes through the result and logs success", func(t *testing.T) {
		t.Parallel()

		logger, buf := newLogger()
		next := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, []byte, error) {
				return url + "/", []byte("<html/>"), nil
			},
		}
		fetcher := cslog.NewFetcher(next, logger)

		finalURL, body, err := fetcher.Fetch(context.Background(), "https://example.com")
		require.NoError(t, err)
		assert.Equal(t, "https://example.com/", finalURL)
		assert.Equal(t, "<html/>", string(body))

		out := buf.String()
		assert.Contains(t, out, "level=INFO")
		assert.Contains(t, out, "url=https://example.com")
		assert.Contains(t, out, "final_url=https://example.com/")
		assert.Contains(t, out, "bytes=7")
	})

	t.Run("logs failures at error level", func(t *testing.T) {
		t.Parallel()

		logger, buf := newLogger()
		next := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, []byte, error) {
				return "", nil, contentrec.Errorf(contentrec.EUNAVAILABLE, "HTTP 502 for %s", url)
			},
		}
		fetcher := cslog.NewFetcher(next, logger)

		_, _, err := fetcher.Fetch(context.Background(), "https://example.com")
		require.Error(t, err)

		out := buf.String()
		assert.Contains(t, out, "level=ERROR")
		assert.Contains(t, out, "HTTP 502")
	})

	t.Run("close delegates to the wrapped fetcher", func(t *testing.T) {
		t.Parallel()

		logger, _ := newLogger()
		var closed bool
		next := &mock.Fetcher{
			CloseFn: func() error {
				closed = true
				return nil
			},
		}
		fetcher := cslog.NewFetcher(next, logger)

		require.NoError(t, fetcher.Close())
		assert.True(t, closed)
	})
}

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("passes through the result and logs counts", func(t *testing.T) {
		t.Parallel()

		logger, buf := newLogger()
		next := &mock.Extractor{
			ExtractFn: func(html []byte, finalURL string, opts contentrec.Options) (*contentrec.Result, error) {
				return &contentrec.Result{
					Meta: contentrec.Meta{Page: "Costa Blanca", Schema: []string{"{}"}},
					Lines: []contentrec.Line{
						contentrec.HeadingLine(1, "Costa Blanca"),
						contentrec.ParagraphLine("Sun and sand."),
					},
				}, nil
			},
		}
		extractor := cslog.NewExtractor(next, logger)

		result, err := extractor.Extract([]byte("<html/>"), "https://example.com/page", contentrec.Options{})
		require.NoError(t, err)
		assert.Len(t, result.Lines, 2)

		out := buf.String()
		assert.Contains(t, out, "level=INFO")
		assert.Contains(t, out, `page="Costa Blanca"`)
		assert.Contains(t, out, "lines=2")
		assert.Contains(t, out, "schema_lines=1")
	})

	t.Run("logs failures at error level", func(t *testing.T) {
		t.Parallel()

		logger, buf := newLogger()
		next := &mock.Extractor{
			ExtractFn: func(html []byte, finalURL string, opts contentrec.Options) (*contentrec.Result, error) {
				return nil, contentrec.Errorf(contentrec.EINTERNAL, "parse failed")
			},
		}
		extractor := cslog.NewExtractor(next, logger)

		_, err := extractor.Extract([]byte("<html/>"), "https://example.com/page", contentrec.Options{})
		require.Error(t, err)
		assert.Contains(t, buf.String(), "level=ERROR")
	})
}
