package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/postlens/postlens"
	"github.com/postlens/postlens/mock"
	postlensslog "github.com/postlens/postlens/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure LoggingFetcher implements postlens.Fetcher.
var _ postlens.Fetcher = (*postlensslog.LoggingFetcher)(nil)

func TestLoggingFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("delegates and logs the fetched size", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))

		next := &mock.Fetcher{
			FetchFn: func(context.Context, string) (string, error) { return "<html>ok</html>", nil },
			CloseFn: func() error { return nil },
		}

		f := postlensslog.NewLoggingFetcher(next, logger)

		html, err := f.Fetch(context.Background(), "https://mp.weixin.qq.com/s/abc")
		require.NoError(t, err)
		assert.Equal(t, "<html>ok</html>", html)

		out := buf.String()
		assert.Contains(t, out, "source page fetch")
		assert.Contains(t, out, "bytes=15")
	})

	t.Run("logs fetch errors", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))

		next := &mock.Fetcher{
			FetchFn: func(context.Context, string) (string, error) { return "", errors.New("dns failure") },
			CloseFn: func() error { return nil },
		}

		f := postlensslog.NewLoggingFetcher(next, logger)

		_, err := f.Fetch(context.Background(), "https://www.xiaohongshu.com/explore/x")
		require.Error(t, err)
		assert.Contains(t, buf.String(), "dns failure")
	})

	t.Run("close delegates to the wrapped fetcher", func(t *testing.T) {
		t.Parallel()

		closed := false
		next := &mock.Fetcher{
			CloseFn: func() error {
				closed = true
				return nil
			},
		}

		f := postlensslog.NewLoggingFetcher(next, slog.New(slog.DiscardHandler))
		require.NoError(t, f.Close())
		assert.True(t, closed)
	})
}
