package mock

import "github.com/postlens/postlens"

var _ postlens.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of postlens.Extractor.
type Extractor struct {
	ExtractFn func(platform postlens.Platform, html string) *postlens.Content
}

func (e *Extractor) Extract(platform postlens.Platform, html string) *postlens.Content {
	return e.ExtractFn(platform, html)
}
