package contentrec

import "unicode/utf8"

// MetaSentinel is the placeholder value used when a page has no title or no
// meta description.
const MetaSentinel = "N/A"

// Meta is the metadata record for one extracted page.
type Meta struct {
	// Page is the resolved page name: the first <h1> when present,
	// otherwise derived from the URL path.
	Page string `json:"page"`

	// Date is the extraction date, DD/MM/YYYY in Europe/London.
	Date string `json:"date"`

	// URL is the final resolved URL after redirects.
	URL string `json:"url"`

	// Title is the document title, or MetaSentinel when absent.
	Title string `json:"title"`

	// TitleLength is the rune count of Title, 0 for the sentinel.
	TitleLength int `json:"title_len"`

	// Description is the meta description, or MetaSentinel when absent.
	Description string `json:"description"`

	// DescriptionLength is the rune count of Description, 0 for the
	// sentinel.
	DescriptionLength int `json:"description_len"`

	// Agency and ClientName are free-text fields supplied by the caller.
	Agency     string `json:"agency,omitempty"`
	ClientName string `json:"client_name,omitempty"`

	// Schema holds the structured-data (JSON-LD) line sequence, with one
	// blank line between consecutive blocks.
	Schema []string `json:"schema,omitempty"`
}

// SetTitle sets the title, applying the sentinel for empty values and
// keeping the length field consistent.
func (m *Meta) SetTitle(title string) {
	m.Title, m.TitleLength = sentinelValue(title)
}

// SetDescription sets the description, applying the sentinel for empty
// values and keeping the length field consistent.
func (m *Meta) SetDescription(description string) {
	m.Description, m.DescriptionLength = sentinelValue(description)
}

func sentinelValue(s string) (string, int) {
	if s == "" {
		return MetaSentinel, 0
	}
	return s, utf8.RuneCountInString(s)
}

// Result is the complete output of one extraction: the metadata record plus
// the ordered signposted line sequence.
type Result struct {
	Meta  Meta
	Lines []Line
}

// Rendered returns the line sequence in its wire form.
func (r *Result) Rendered() []string {
	return RenderLines(r.Lines)
}
