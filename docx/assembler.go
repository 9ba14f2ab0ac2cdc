// Package docx implements contentrec.Assembler over .docx templates.
// A template is a zip archive with the document body in
// word/document.xml (WordprocessingML); only that entry is rewritten.
package docx

import (
	"archive/zip"
	"bytes"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/beevik/etree"
	"github.com/jackalderton/contentrec"
)

// Placeholder tokens recognized in templates. BodyContentPlaceholder is
// required; the rest are replaced when present.
const (
	BodyContentPlaceholder = "[PAGE BODY CONTENT]"
	SchemaPlaceholder      = "[SCHEMA]"
)

const documentEntry = "word/document.xml"

// Ensure Assembler implements contentrec.Assembler at compile time.
var _ contentrec.Assembler = (*Assembler)(nil)

// Assembler fills .docx templates with extracted content.
type Assembler struct{}

// NewAssembler creates a new Assembler.
func NewAssembler() *Assembler {
	return &Assembler{}
}

// Assemble replaces scalar placeholders with metadata values, expands the
// body-content placeholder into one paragraph per line, and expands the
// optional schema placeholder into the structured-data lines. Returns
// ENOTFOUND when the template has no body-content placeholder.
func (a *Assembler) Assemble(template []byte, meta contentrec.Meta, lines []string) ([]byte, error) {
	r, err := zip.NewReader(bytes.NewReader(template), int64(len(template)))
	if err != nil {
		return nil, contentrec.Errorf(contentrec.EINVALID, "not a valid .docx template: %v", err)
	}

	var docEntry *zip.File
	for _, f := range r.File {
		if f.Name == documentEntry {
			docEntry = f
			break
		}
	}
	if docEntry == nil {
		return nil, contentrec.Errorf(contentrec.EINVALID, "template is missing %s", documentEntry)
	}

	docXML, err := readEntry(docEntry)
	if err != nil {
		return nil, err
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(docXML); err != nil {
		return nil, contentrec.Errorf(contentrec.EINVALID, "malformed %s: %v", documentEntry, err)
	}

	replaceScalars(doc, scalarMapping(meta))

	if err := replaceWithLines(doc, BodyContentPlaceholder, lines); err != nil {
		return nil, err
	}
	// The schema placeholder is optional: older templates don't carry it.
	if err := replaceWithLines(doc, SchemaPlaceholder, meta.Schema); err != nil &&
		contentrec.ErrorCode(err) != contentrec.ENOTFOUND {
		return nil, err
	}

	rewritten, err := doc.WriteToBytes()
	if err != nil {
		return nil, err
	}

	return rebuildArchive(r, rewritten)
}

// scalarMapping returns the placeholder-to-value map for single-value
// substitutions.
func scalarMapping(meta contentrec.Meta) map[string]string {
	return map[string]string{
		"[PAGE]":               meta.Page,
		"[DATE]":               meta.Date,
		"[URL]":                meta.URL,
		"[TITLE]":              meta.Title,
		"[TITLE LENGTH]":       strconv.Itoa(meta.TitleLength),
		"[DESCRIPTION]":        meta.Description,
		"[DESCRIPTION LENGTH]": strconv.Itoa(meta.DescriptionLength),
		"[AGENCY]":             meta.Agency,
		"[CLIENT NAME]":        meta.ClientName,
	}
}

// replaceScalars substitutes placeholders in every paragraph, longest key
// first so overlapping tokens resolve deterministically. A paragraph whose
// runs carry a split placeholder is merged into a single run; its character
// formatting is lost, paragraph formatting is kept.
func replaceScalars(doc *etree.Document, mapping map[string]string) {
	keys := make([]string, 0, len(mapping))
	for k := range mapping {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})

	for _, p := range doc.FindElements("//w:p") {
		text := paragraphText(p)
		replaced := false
		for _, k := range keys {
			if strings.Contains(text, k) {
				text = strings.ReplaceAll(text, k, mapping[k])
				replaced = true
			}
		}
		if replaced {
			setParagraphText(p, text)
		}
	}
}

// replaceWithLines finds the paragraph containing the placeholder and
// replaces it with one paragraph per line: the first line in place, the
// rest inserted after it. An empty line slice clears the paragraph.
func replaceWithLines(doc *etree.Document, placeholder string, lines []string) error {
	var target *etree.Element
	for _, p := range doc.FindElements("//w:p") {
		if strings.Contains(paragraphText(p), placeholder) {
			target = p
			break
		}
	}
	if target == nil {
		return contentrec.Errorf(contentrec.ENOTFOUND, "placeholder %q not found in template", placeholder)
	}

	if len(lines) == 0 {
		setParagraphText(target, "")
		return nil
	}

	setParagraphText(target, lines[0])

	parent := target.Parent()
	idx := target.Index()
	for i, line := range lines[1:] {
		p := etree.NewElement("w:p")
		r := p.CreateElement("w:r")
		t := r.CreateElement("w:t")
		t.CreateAttr("xml:space", "preserve")
		t.SetText(line)
		parent.InsertChildAt(idx+1+i, p)
	}
	return nil
}

// paragraphText concatenates the text of every run in the paragraph.
func paragraphText(p *etree.Element) string {
	var b strings.Builder
	for _, t := range p.FindElements(".//w:t") {
		b.WriteString(t.Text())
	}
	return b.String()
}

// setParagraphText drops the paragraph's runs and replaces them with a
// single run holding text. Paragraph properties (w:pPr) are preserved.
func setParagraphText(p *etree.Element, text string) {
	for _, child := range p.ChildElements() {
		if child.Tag != "pPr" {
			p.RemoveChild(child)
		}
	}
	r := p.CreateElement("w:r")
	t := r.CreateElement("w:t")
	t.CreateAttr("xml:space", "preserve")
	t.SetText(text)
}

func readEntry(f *zip.File) ([]byte, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}

// rebuildArchive writes a new zip with the rewritten document entry and
// every other entry copied through unchanged, preserving entry order.
func rebuildArchive(r *zip.Reader, document []byte) ([]byte, error) {
	var out bytes.Buffer
	w := zip.NewWriter(&out)
	for _, f := range r.File {
		if f.Name == documentEntry {
			fw, err := w.Create(f.Name)
			if err != nil {
				return nil, err
			}
			if _, err := fw.Write(document); err != nil {
				return nil, err
			}
			continue
		}

		data, err := readEntry(f)
		if err != nil {
			return nil, err
		}
		fw, err := w.Create(f.Name)
		if err != nil {
			return nil, err
		}
		if _, err := fw.Write(data); err != nil {
			return nil, err
		}
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}
