// Package openai provides postlens.Analyzer implementations for providers
// exposing OpenAI-compatible chat-completion APIs. One implementation serves
// every such provider (DeepSeek, Moonshot, OpenAI itself); the base URL
// selects which one.
package openai

import (
	"context"
	"fmt"
	"strings"

	"github.com/postlens/postlens"
	openai "github.com/sashabaranov/go-openai"
)

// Endpoint defaults for the providers wired in cmd/postlens.
const (
	DeepSeekBaseURL = "https://api.deepseek.com/v1"
	DeepSeekModel   = "deepseek-chat"

	MoonshotBaseURL = "https://api.moonshot.cn/v1"
	MoonshotModel   = "moonshot-v1-8k"
)

// SystemPrompt fixes the analysis contract for the chat-completion family.
const SystemPrompt = `You are a content analyst. Given the title and body of a social media post, respond with a JSON object of the form {"keywords": [...], "summary": "..."}. Extract 5-8 keywords. Write the summary as exactly three numbered points. Respond in the language of the post.`

// Ensure Analyzer implements postlens.Analyzer at compile time.
var _ postlens.Analyzer = (*Analyzer)(nil)

// Analyzer implements postlens.Analyzer over a chat-completion endpoint.
type Analyzer struct {
	name   string
	model  string
	client *openai.Client
}

// NewAnalyzer creates an Analyzer for the named provider. An empty baseURL
// targets the OpenAI default endpoint.
func NewAnalyzer(name, apiKey, baseURL, model string) *Analyzer {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &Analyzer{
		name:   name,
		model:  model,
		client: openai.NewClientWithConfig(cfg),
	}
}

// Name returns the provider's identifier.
func (a *Analyzer) Name() string {
	return a.name
}

// Analyze sends a system/user message pair with a forced-JSON response mode
// and normalizes the reply. Transport and API failures surface as errors;
// a reply that is not well-formed JSON degrades through ParseAnalysis to a
// keywordless analysis carrying the raw text.
func (a *Analyzer) Analyze(ctx context.Context, content *postlens.Content) (*postlens.Analysis, error) {
	resp, err := a.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       a.model,
		Temperature: 0.4,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: SystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: BuildUserPrompt(content)},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		return nil, err
	}
	if len(resp.Choices) == 0 {
		return nil, postlens.Errorf(postlens.EINTERNAL, "%s returned no choices", a.name)
	}

	return postlens.ParseAnalysis(resp.Choices[0].Message.Content), nil
}

// BuildUserPrompt builds the user message from a content record, bounding
// the body text to the analysis input cap.
func BuildUserPrompt(content *postlens.Content) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Title: %s\n\n", content.Title)
	fmt.Fprintf(&sb, "Body:\n%s", content.Excerpt())
	return sb.String()
}
