package goquery_test

import (
	"testing"

	"github.com/jackalderton/contentrec"
	"github.com/stretchr/testify/assert"
)

func TestExtract_Paragraphs(t *testing.T) {
	t.Parallel()

	t.Run("splits on line breaks", func(t *testing.T) {
		t.Parallel()

		result := extract(t, `<body><p>Hello<br>World</p></body>`, contentrec.Options{})

		assert.Equal(t, []string{"<p> Hello", "<p> World"}, result.Rendered())
	})

	t.Run("empty paragraph emits nothing", func(t *testing.T) {
		t.Parallel()

		result := extract(t, `<body><p>  </p><p>Text</p></body>`, contentrec.Options{})

		assert.Equal(t, []string{"<p> Text"}, result.Rendered())
	})

	t.Run("embedded images are emitted after the paragraph text", func(t *testing.T) {
		t.Parallel()

		result := extract(t, `<body><p>Text<img alt="Pic"></p></body>`, contentrec.Options{})

		assert.Equal(t, []string{"<p> Text", `<img alt="Pic">`}, result.Rendered())
	})

	t.Run("inline markup flattens into the paragraph", func(t *testing.T) {
		t.Parallel()

		result := extract(t, `<body><p>Our <strong>best</strong> offer</p></body>`, contentrec.Options{})

		assert.Equal(t, []string{"<p> Our best offer"}, result.Rendered())
	})
}

func TestExtract_Links(t *testing.T) {
	t.Parallel()

	t.Run("annotates anchors when enabled", func(t *testing.T) {
		t.Parallel()

		doc := `<body><p><a href="https://x.com">Click</a></p></body>`
		result := extract(t, doc, contentrec.Options{AnnotateLinks: true})

		assert.Equal(t, []string{"<p> Click (→ https://x.com)"}, result.Rendered())
	})

	t.Run("plain anchor text when disabled", func(t *testing.T) {
		t.Parallel()

		doc := `<body><p><a href="https://x.com">Click</a></p></body>`
		result := extract(t, doc, contentrec.Options{})

		assert.Equal(t, []string{"<p> Click"}, result.Rendered())
	})

	t.Run("anchor without href is never annotated", func(t *testing.T) {
		t.Parallel()

		doc := `<body><p><a>Click</a></p></body>`
		result := extract(t, doc, contentrec.Options{AnnotateLinks: true})

		assert.Equal(t, []string{"<p> Click"}, result.Rendered())
	})

	t.Run("anchors are atomic: internal markup cannot leak fragments", func(t *testing.T) {
		t.Parallel()

		doc := `<body><div><a href="/x"><span>Part</span> <b>of</b> one</a></div></body>`
		result := extract(t, doc, contentrec.Options{})

		assert.Equal(t, []string{"<p> Part of one"}, result.Rendered())
	})
}

func TestExtract_Images(t *testing.T) {
	t.Parallel()

	t.Run("alt only by default", func(t *testing.T) {
		t.Parallel()

		doc := `<body><img alt="Cat" src="c.jpg"></body>`
		result := extract(t, doc, contentrec.Options{})

		assert.Equal(t, []string{`<img alt="Cat">`}, result.Rendered())
	})

	t.Run("src included when requested", func(t *testing.T) {
		t.Parallel()

		doc := `<body><img alt="Cat" src="c.jpg"></body>`
		result := extract(t, doc, contentrec.Options{IncludeImgSrc: true})

		assert.Equal(t, []string{`<img alt="Cat" src="c.jpg">`}, result.Rendered())
	})

	t.Run("empty src falls back to the alt-only form", func(t *testing.T) {
		t.Parallel()

		doc := `<body><img alt="Cat" src=""></body>`
		result := extract(t, doc, contentrec.Options{IncludeImgSrc: true})

		assert.Equal(t, []string{`<img alt="Cat">`}, result.Rendered())
	})

	t.Run("alt is trimmed and quotes are escaped", func(t *testing.T) {
		t.Parallel()

		doc := `<body><img alt=' A &quot;cat&quot; '></body>`
		result := extract(t, doc, contentrec.Options{})

		assert.Equal(t, []string{`<img alt="A \"cat\"">`}, result.Rendered())
	})

	t.Run("missing alt renders empty", func(t *testing.T) {
		t.Parallel()

		doc := `<body><img src="c.jpg"></body>`
		result := extract(t, doc, contentrec.Options{})

		assert.Equal(t, []string{`<img alt="">`}, result.Rendered())
	})
}

func TestExtract_Lists(t *testing.T) {
	t.Parallel()

	t.Run("items flatten to paragraph lines", func(t *testing.T) {
		t.Parallel()

		doc := `<body><ul><li>One</li><li>Two</li></ul></body>`
		result := extract(t, doc, contentrec.Options{})

		assert.Equal(t, []string{"<p> One", "<p> Two"}, result.Rendered())
	})

	t.Run("ordered lists behave the same", func(t *testing.T) {
		t.Parallel()

		doc := `<body><ol><li>First</li><li>Second</li></ol></body>`
		result := extract(t, doc, contentrec.Options{})

		assert.Equal(t, []string{"<p> First", "<p> Second"}, result.Rendered())
	})

	t.Run("one level of nesting flattens after the parent item", func(t *testing.T) {
		t.Parallel()

		doc := `<body><ul><li>Top</li><li>Parent <ul><li>Child</li></ul></li></ul></body>`
		result := extract(t, doc, contentrec.Options{})

		// The parent item's flattened text includes its sub-list text;
		// the sub-items are then emitted again on their own lines.
		assert.Equal(t, []string{"<p> Top", "<p> Parent Child", "<p> Child"}, result.Rendered())
	})

	t.Run("item images are emitted after the item text", func(t *testing.T) {
		t.Parallel()

		doc := `<body><ul><li>Item<img alt="I"></li></ul></body>`
		result := extract(t, doc, contentrec.Options{})

		assert.Equal(t, []string{"<p> Item", `<img alt="I">`}, result.Rendered())
	})
}

func TestExtract_GenericContainers(t *testing.T) {
	t.Parallel()

	t.Run("inline runs accumulate into one paragraph", func(t *testing.T) {
		t.Parallel()

		doc := `<body><div>Text <span>inline</span> more</div></body>`
		result := extract(t, doc, contentrec.Options{})

		assert.Equal(t, []string{"<p> Text inline more"}, result.Rendered())
	})

	t.Run("line breaks split the buffered run", func(t *testing.T) {
		t.Parallel()

		doc := `<body><div>First<br>Second</div></body>`
		result := extract(t, doc, contentrec.Options{})

		assert.Equal(t, []string{"<p> First", "<p> Second"}, result.Rendered())
	})

	t.Run("an image flushes the buffer before emitting", func(t *testing.T) {
		t.Parallel()

		doc := `<body><div>Lead<img alt="Mid">tail</div></body>`
		result := extract(t, doc, contentrec.Options{})

		assert.Equal(t, []string{"<p> Lead", `<img alt="Mid">`, "<p> tail"}, result.Rendered())
	})

	t.Run("a block child flushes the buffer then recurses", func(t *testing.T) {
		t.Parallel()

		doc := `<body><div>Lead<p>Para</p>tail</div></body>`
		result := extract(t, doc, contentrec.Options{})

		assert.Equal(t, []string{"<p> Lead", "<p> Para", "<p> tail"}, result.Rendered())
	})

	t.Run("noise buffers are dropped whole", func(t *testing.T) {
		t.Parallel()

		doc := `<body><div>Apply filters</div><div>Keep</div></body>`
		result := extract(t, doc, contentrec.Options{})

		assert.Equal(t, []string{"<p> Keep"}, result.Rendered())
	})
}

func TestExtract_TopLevelText(t *testing.T) {
	t.Parallel()

	t.Run("bare text becomes a paragraph", func(t *testing.T) {
		t.Parallel()

		result := extract(t, `<body>Loose text</body>`, contentrec.Options{})

		assert.Equal(t, []string{"<p> Loose text"}, result.Rendered())
	})

	t.Run("newline-only text becomes a blank marker", func(t *testing.T) {
		t.Parallel()

		result := extract(t, "<body><p>A</p>\n<p>B</p></body>", contentrec.Options{})

		assert.Equal(t, []string{"<p> A", "", "<p> B"}, result.Rendered())
	})

	t.Run("noise text is dropped", func(t *testing.T) {
		t.Parallel()

		result := extract(t, `<body>Google Tag Manager snippet<p>Keep</p></body>`, contentrec.Options{})

		assert.Equal(t, []string{"<p> Keep"}, result.Rendered())
	})
}
