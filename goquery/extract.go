// Package goquery provides a CSS-selector based implementation of
// postlens.Extractor. Extraction rules live in a closed per-platform table;
// supporting a new platform means adding a table row, not new control flow.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/postlens/postlens"
)

// Ensure Extractor implements postlens.Extractor at compile time.
var _ postlens.Extractor = (*Extractor)(nil)

// Extractor extracts content records from platform HTML using ordered
// selector fallback chains. It is total: any input, including empty or
// unparseable HTML, yields a usable record.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML for the given platform. Within each field's
// fallback chain the first non-empty value wins. A record whose text chain
// produced nothing falls back to the title, so RawText is never empty when
// a title was found. Read and comment counts are placeholders: both
// platforms render them via client-side script that never runs here.
func (e *Extractor) Extract(platform postlens.Platform, html string) *postlens.Content {
	content := &postlens.Content{
		Author:       "Unknown",
		ReadCount:    "N/A",
		CommentCount: "N/A",
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return content
	}

	rules := rulesByPlatform[platform]
	content.Title = firstMatch(doc, rules.title)
	if author := firstMatch(doc, rules.author); author != "" {
		content.Author = author
	}
	content.RawText = firstMatch(doc, rules.text)
	if content.RawText == "" {
		content.RawText = content.Title
	}

	return content
}

// firstMatch evaluates rules in order and returns the first non-empty value.
func firstMatch(doc *goquery.Document, rules []Rule) string {
	for _, rule := range rules {
		sel := doc.Find(rule.Selector).First()
		if sel.Length() == 0 {
			continue
		}

		var value string
		if rule.Attr != "" {
			value, _ = sel.Attr(rule.Attr)
		} else {
			value = sel.Text()
		}

		if value = strings.TrimSpace(value); value != "" {
			return value
		}
	}
	return ""
}
