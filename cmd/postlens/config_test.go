package main

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unsetenv removes a variable for the test's duration. t.Setenv registers
// the restore; envconfig treats set-but-empty differently from unset.
func unsetenv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	_ = os.Unsetenv(key)
}

func TestLoadConfig_Defaults(t *testing.T) {
	for _, key := range []string{"ADDR", "DEEPSEEK_API_KEY", "DEEPSEEK_MODEL", "MOONSHOT_MODEL", "PROVIDER_TIMEOUT"} {
		unsetenv(t, key)
	}

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Empty(t, cfg.DeepSeekAPIKey)
	assert.Equal(t, "deepseek-chat", cfg.DeepSeekModel)
	assert.Equal(t, "moonshot-v1-8k", cfg.MoonshotModel)
	assert.Equal(t, 30*time.Second, cfg.GetProviderTimeout())
}

func TestLoadConfig_ReadsEnvironment(t *testing.T) {
	t.Setenv("ADDR", ":9000")
	t.Setenv("DEEPSEEK_API_KEY", "sk-test")
	t.Setenv("DEEPSEEK_MODEL", "deepseek-reasoner")
	t.Setenv("PROVIDER_TIMEOUT", "10")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, ":9000", cfg.Addr)
	assert.Equal(t, "sk-test", cfg.DeepSeekAPIKey)
	assert.Equal(t, "deepseek-reasoner", cfg.DeepSeekModel)
	assert.Equal(t, 10*time.Second, cfg.GetProviderTimeout())
}

func TestLoadConfig_RejectsMalformedTimeout(t *testing.T) {
	t.Setenv("PROVIDER_TIMEOUT", "soon")

	_, err := LoadConfig()
	require.Error(t, err)
}
