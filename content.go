package postlens

import "context"

// Platform identifies a supported publishing platform.
type Platform string

// Supported platforms.
const (
	PlatformXiaohongshu Platform = "xiaohongshu"
	PlatformWeixin      Platform = "weixin"
)

// Content is the normalized record extracted from a fetched page.
// It is produced once per request and consumed read-only afterwards.
type Content struct {
	Title   string `json:"title"`
	Author  string `json:"author"`
	RawText string `json:"rawText"`

	// ReadCount and CommentCount are best-effort placeholders. Both
	// platforms render these values via client-side script, so static
	// markup cannot reliably provide them.
	ReadCount    string `json:"readCount"`
	CommentCount string `json:"commentCount"`
}

// MaxAnalysisInput bounds how much page text is sent to a provider,
// in runes. The platforms publish mostly CJK text, so the bound must
// not split multi-byte sequences.
const MaxAnalysisInput = 3000

// Excerpt returns the first MaxAnalysisInput runes of the raw text.
func (c *Content) Excerpt() string {
	runes := []rune(c.RawText)
	if len(runes) <= MaxAnalysisInput {
		return c.RawText
	}
	return string(runes[:MaxAnalysisInput])
}

// Fetcher retrieves raw HTML from URLs.
type Fetcher interface {
	// Fetch retrieves the page at url and returns its HTML.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases any resources held by the fetcher.
	Close() error
}

// Extractor extracts a content record from platform HTML.
// Extraction is total: it always returns a record, possibly with empty
// fields, and never fails. Callers treat an empty record as "usable but
// empty" rather than an error.
type Extractor interface {
	Extract(platform Platform, html string) *Content
}
