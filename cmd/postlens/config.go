package main

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/postlens/postlens/openai"
)

// Config holds the environment-derived configuration. A provider joins the
// analysis fan-out when its API key is present; absent keys simply leave
// that provider out.
type Config struct {
	Addr string `envconfig:"ADDR" default:":8080"`

	DeepSeekAPIKey string `envconfig:"DEEPSEEK_API_KEY"`
	MoonshotAPIKey string `envconfig:"MOONSHOT_API_KEY"`
	GeminiAPIKey   string `envconfig:"GEMINI_API_KEY"`

	DeepSeekModel string `envconfig:"DEEPSEEK_MODEL"`
	MoonshotModel string `envconfig:"MOONSHOT_MODEL"`

	// ProviderTimeout bounds each provider call, in seconds.
	ProviderTimeout int `envconfig:"PROVIDER_TIMEOUT" default:"30"`
}

// LoadConfig reads configuration from the environment, honoring a .env
// file when present.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}

	if cfg.DeepSeekModel == "" {
		cfg.DeepSeekModel = openai.DeepSeekModel
	}
	if cfg.MoonshotModel == "" {
		cfg.MoonshotModel = openai.MoonshotModel
	}

	return &cfg, nil
}

// GetProviderTimeout returns the per-provider timeout as a duration.
func (c *Config) GetProviderTimeout() time.Duration {
	return time.Duration(c.ProviderTimeout) * time.Second
}
