package gemini

import (
	"context"
	"fmt"
	"strings"

	"github.com/postlens/postlens"
	"google.golang.org/genai"
)

const model = "gemini-2.5-flash"

// Ensure Analyzer implements postlens.Analyzer at compile time.
var _ postlens.Analyzer = (*Analyzer)(nil)

// Analyzer implements postlens.Analyzer using Google Gemini. Unlike the
// chat-completion family there is no forced-JSON response mode: the JSON
// contract is embedded in the prompt and the reply is unfenced before
// decoding.
type Analyzer struct {
	client *genai.Client
}

// NewAnalyzer creates a new Analyzer.
func NewAnalyzer(client *genai.Client) *Analyzer {
	return &Analyzer{client: client}
}

// Name returns the provider's identifier.
func (a *Analyzer) Name() string {
	return "gemini"
}

// Analyze sends a single generative prompt and normalizes the reply.
func (a *Analyzer) Analyze(ctx context.Context, content *postlens.Content) (*postlens.Analysis, error) {
	result, err := a.client.Models.GenerateContent(ctx, model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: BuildPrompt(content)}},
		}},
		BuildConfig(),
	)
	if err != nil {
		return nil, err
	}
	if result == nil || len(result.Candidates) == 0 {
		return nil, postlens.Errorf(postlens.EINTERNAL, "gemini returned no candidates")
	}

	text := result.Text()
	if strings.TrimSpace(text) == "" {
		return nil, postlens.Errorf(postlens.EINTERNAL, "gemini returned an empty response")
	}

	return postlens.ParseAnalysis(StripFences(text)), nil
}

// BuildConfig returns the GenerateContentConfig for Gemini API calls.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(0.4)
	return &genai.GenerateContentConfig{
		Temperature: &temp,
	}
}

// BuildPrompt builds the analysis prompt from a content record. The JSON
// contract lives in the prompt text itself, bounded to the analysis input
// cap.
func BuildPrompt(content *postlens.Content) string {
	var sb strings.Builder
	sb.WriteString("Analyze the following social media post.\n")
	sb.WriteString(`Respond with only a JSON object of the form {"keywords": ["..."], "summary": "..."}. `)
	sb.WriteString("Extract 5-8 keywords and write a short summary in the language of the post. Do not wrap the JSON in a code block.\n\n")
	fmt.Fprintf(&sb, "Title: %s\n\n", content.Title)
	fmt.Fprintf(&sb, "Body:\n%s", content.Excerpt())
	return sb.String()
}

// StripFences removes a wrapping fenced code block from a provider reply.
// Gemini frequently fences JSON output even when asked not to.
func StripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}

	s = strings.TrimPrefix(s, "```")
	if i := strings.Index(s, "\n"); i >= 0 {
		// Drop the opening fence line together with any language tag.
		s = s[i+1:]
	} else {
		return strings.TrimSpace(strings.TrimSuffix(s, "```"))
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
