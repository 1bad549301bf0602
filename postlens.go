// Package postlens analyzes social-content URLs. It classifies a link to one
// of the supported publishing platforms, extracts the post's text from the
// fetched HTML, and fans the text out to the configured AI providers for
// keyword and summary analysis.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, openai/, gemini/).
package postlens
