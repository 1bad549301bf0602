package gemini_test

import (
	"strings"
	"testing"

	"github.com/postlens/postlens"
	"github.com/postlens/postlens/gemini"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Analyzer implements postlens.Analyzer at compile time.
var _ postlens.Analyzer = (*gemini.Analyzer)(nil)

func TestAnalyzer_Name(t *testing.T) {
	t.Parallel()

	a := gemini.NewAnalyzer(nil) // nil client ok for this test
	assert.Equal(t, "gemini", a.Name())
}

func TestBuildConfig_SetsTemperature(t *testing.T) {
	t.Parallel()

	config := gemini.BuildConfig()

	require.NotNil(t, config.Temperature)
	assert.InDelta(t, 0.4, float64(*config.Temperature), 0.001)
}

func TestBuildPrompt(t *testing.T) {
	t.Parallel()

	t.Run("embeds the JSON contract and content fields", func(t *testing.T) {
		t.Parallel()

		prompt := gemini.BuildPrompt(&postlens.Content{Title: "探店笔记", RawText: "这家店的招牌菜值得一试。"})

		assert.Contains(t, prompt, `{"keywords": ["..."], "summary": "..."}`)
		assert.Contains(t, prompt, "Title: 探店笔记")
		assert.Contains(t, prompt, "这家店的招牌菜值得一试。")
	})

	t.Run("bounds the body text", func(t *testing.T) {
		t.Parallel()

		content := &postlens.Content{Title: "t", RawText: strings.Repeat("字", postlens.MaxAnalysisInput+200)}

		prompt := gemini.BuildPrompt(content)

		assert.Less(t, len([]rune(prompt)), postlens.MaxAnalysisInput+200)
	})
}

func TestStripFences(t *testing.T) {
	t.Parallel()

	t.Run("strips a json-tagged fence", func(t *testing.T) {
		t.Parallel()

		raw := "```json\n{\"keywords\":[\"a\"],\"summary\":\"s\"}\n```"
		assert.Equal(t, `{"keywords":["a"],"summary":"s"}`, gemini.StripFences(raw))
	})

	t.Run("strips a bare fence", func(t *testing.T) {
		t.Parallel()

		raw := "```\n{\"summary\":\"s\"}\n```"
		assert.Equal(t, `{"summary":"s"}`, gemini.StripFences(raw))
	})

	t.Run("strips a single-line fence", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "{}", gemini.StripFences("```{}```"))
	})

	t.Run("leaves unfenced text alone", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, `{"summary":"s"}`, gemini.StripFences(`{"summary":"s"}`))
	})

	t.Run("trims surrounding whitespace", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "plain", gemini.StripFences("  plain  \n"))
	})
}
