package goquery

import "github.com/postlens/postlens"

// Rule describes one extraction attempt for a field.
type Rule struct {
	// Selector is a CSS selector tried against the document.
	Selector string

	// Attr, when set, reads the named attribute instead of element text.
	Attr string
}

// platformRules holds the ordered fallback chains for one platform.
type platformRules struct {
	title  []Rule
	author []Rule
	text   []Rule
}

// rulesByPlatform is the closed table of supported platforms.
//
// Both platforms serve partially-dynamic markup, so every chain starts from
// social-preview metadata (stable across redesigns) before falling back to
// in-page elements.
var rulesByPlatform = map[postlens.Platform]platformRules{
	postlens.PlatformXiaohongshu: {
		title: []Rule{
			{Selector: `meta[property="og:title"]`, Attr: "content"},
			{Selector: "#detail-title"},
		},
		author: []Rule{
			{Selector: `meta[name="author"]`, Attr: "content"},
			{Selector: ".author-container .username"},
			{Selector: ".note-detail .username"},
		},
		text: []Rule{
			{Selector: "#detail-desc"},
			{Selector: ".note-content .desc"},
			{Selector: `meta[name="description"]`, Attr: "content"},
		},
	},
	postlens.PlatformWeixin: {
		title: []Rule{
			{Selector: `meta[property="og:title"]`, Attr: "content"},
			{Selector: "#activity-name"},
		},
		author: []Rule{
			{Selector: `meta[name="author"]`, Attr: "content"},
			{Selector: "#js_name"},
			{Selector: ".rich_media_meta_nickname"},
		},
		text: []Rule{
			{Selector: "#js_content"},
			{Selector: ".rich_media_content"},
			{Selector: `meta[name="description"]`, Attr: "content"},
		},
	},
}
