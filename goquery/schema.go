package goquery

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// extractStructuredData collects JSON-LD script blocks in document order.
// The type attribute is matched by case-insensitive substring, so media
// type parameters like charset suffixes are honored. Valid JSON is
// pretty-printed with 2-space indentation, which keeps key order and
// non-ASCII characters intact; blocks that fail to parse are kept as raw
// trimmed text. Consecutive blocks are separated by exactly one blank line.
func extractStructuredData(doc *goquery.Document) []string {
	var lines []string
	doc.Find("script[type]").Each(func(_ int, s *goquery.Selection) {
		typ, _ := s.Attr("type")
		if !strings.Contains(strings.ToLower(typ), "ld+json") {
			return
		}

		block := strings.TrimSpace(s.Text())
		if block == "" {
			return
		}

		var pretty bytes.Buffer
		if err := json.Indent(&pretty, []byte(block), "", "  "); err == nil {
			block = pretty.String()
		}

		if len(lines) > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, strings.Split(block, "\n")...)
	})
	return lines
}
