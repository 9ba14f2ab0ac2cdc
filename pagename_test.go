package contentrec_test

import (
	"testing"

	"github.com/jackalderton/contentrec"
	"github.com/stretchr/testify/assert"
)

func TestSlugToName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Costa Del Sol", contentrec.SlugToName("costa-del-sol"))
	assert.Equal(t, "Page", contentrec.SlugToName("page"))

	t.Run("a letter after any non-letter starts a new word", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "Example.Com", contentrec.SlugToName("example.com"))
		assert.Equal(t, "O'Brien'S Cove", contentrec.SlugToName("o'brien's-cove"))
		assert.Equal(t, "Top10Beaches", contentrec.SlugToName("top10beaches"))
	})

	t.Run("mixed case input is normalized", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "Costa Blanca", contentrec.SlugToName("COSTA-bLaNcA"))
	})
}

func TestPageNameFromURL(t *testing.T) {
	t.Parallel()

	marker := contentrec.DefaultPageNameMarker

	t.Run("uses the segment two past the marker", func(t *testing.T) {
		t.Parallel()

		got := contentrec.PageNameFromURL("https://example.com/destinations/spain/costa-blanca", marker)
		assert.Equal(t, "Costa Blanca", got)
	})

	t.Run("falls back to the last segment when the marker has too few followers", func(t *testing.T) {
		t.Parallel()

		got := contentrec.PageNameFromURL("https://example.com/destinations/spain", marker)
		assert.Equal(t, "Spain", got)
	})

	t.Run("uses the last non-empty path segment", func(t *testing.T) {
		t.Parallel()

		got := contentrec.PageNameFromURL("https://example.com/blog/winter-sun/", marker)
		assert.Equal(t, "Winter Sun", got)
	})

	t.Run("uses the hostname when the path is empty", func(t *testing.T) {
		t.Parallel()

		got := contentrec.PageNameFromURL("https://example.com/", marker)
		assert.Equal(t, "Example.Com", got)
	})

	t.Run("empty marker disables the marker rule", func(t *testing.T) {
		t.Parallel()

		got := contentrec.PageNameFromURL("https://example.com/destinations/spain/costa-blanca", "")
		assert.Equal(t, "Costa Blanca", got)
	})
}
