// Command postlens serves the social-content analysis API.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	"github.com/postlens/postlens"
	"github.com/postlens/postlens/analyze"
	"github.com/postlens/postlens/gemini"
	"github.com/postlens/postlens/goquery"
	postlenshttp "github.com/postlens/postlens/http"
	"github.com/postlens/postlens/openai"
	postlensslog "github.com/postlens/postlens/slog"
	"google.golang.org/genai"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := Run(ctx, os.Args[1:], os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// CLI holds the command-line flags. Credentials come from the environment;
// flags carry the operational knobs.
type CLI struct {
	Addr  string `help:"Listen address. Overrides ADDR from the environment." placeholder:"HOST:PORT"`
	Debug bool   `help:"Enable debug logging."`
}

// Run executes the server with the given arguments.
func Run(ctx context.Context, args []string, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("postlens"),
		kong.Description("Social-content analysis API server."),
		kong.Writers(stderr, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}
	if _, err := parser.Parse(args); err != nil {
		return err
	}

	cfg, err := LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if cli.Addr != "" {
		cfg.Addr = cli.Addr
	}

	level := slog.LevelInfo
	if cli.Debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	analyzers, err := buildAnalyzers(ctx, cfg, logger)
	if err != nil {
		return err
	}
	if len(analyzers) == 0 {
		logger.Warn("no provider API key configured, /api/analyze will return demo output")
	}

	fetcher := postlensslog.NewLoggingFetcher(postlenshttp.NewFetcher(), logger)
	defer fetcher.Close()

	server := postlenshttp.NewServer(
		fetcher,
		goquery.NewExtractor(),
		&analyze.Runner{Analyzers: analyzers, Timeout: cfg.GetProviderTimeout()},
		logger,
	)

	httpServer := &http.Server{
		Addr:    cfg.Addr,
		Handler: server.Handler(),
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- httpServer.ListenAndServe()
	}()

	logger.Info("listening", "addr", cfg.Addr, "providers", len(analyzers))

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}

// buildAnalyzers wires one analyzer per configured credential, each wrapped
// in a logging decorator.
func buildAnalyzers(ctx context.Context, cfg *Config, logger *slog.Logger) ([]postlens.Analyzer, error) {
	var analyzers []postlens.Analyzer

	if cfg.DeepSeekAPIKey != "" {
		analyzers = append(analyzers, openai.NewAnalyzer("deepseek", cfg.DeepSeekAPIKey, openai.DeepSeekBaseURL, cfg.DeepSeekModel))
	}
	if cfg.MoonshotAPIKey != "" {
		analyzers = append(analyzers, openai.NewAnalyzer("moonshot", cfg.MoonshotAPIKey, openai.MoonshotBaseURL, cfg.MoonshotModel))
	}
	if cfg.GeminiAPIKey != "" {
		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  cfg.GeminiAPIKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to connect to Gemini API: %w", err)
		}
		analyzers = append(analyzers, gemini.NewAnalyzer(client))
	}

	for i, a := range analyzers {
		analyzers[i] = postlensslog.NewLoggingAnalyzer(a, logger)
	}

	return analyzers, nil
}
