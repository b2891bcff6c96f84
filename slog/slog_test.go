package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/sitechat"
	"github.com/fwojciec/sitechat/mock"
	sclog "github.com/fwojciec/sitechat/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return slog.New(slog.NewTextHandler(&buf, nil)), &buf
}

func TestLoggingFetcher(t *testing.T) {
	t.Parallel()

	t.Run("logs url, size and duration", func(t *testing.T) {
		t.Parallel()

		logger, buf := newLogger()
		inner := &mock.Fetcher{
			FetchFn: func(_ context.Context, _ string) (string, error) {
				return "<html>hours</html>", nil
			},
		}

		html, err := sclog.NewLoggingFetcher(inner, logger).Fetch(context.Background(), "https://example.com/hours")

		require.NoError(t, err)
		assert.Equal(t, "<html>hours</html>", html)
		out := buf.String()
		assert.Contains(t, out, "msg=fetch")
		assert.Contains(t, out, "url=https://example.com/hours")
		assert.Contains(t, out, "bytes=18")
		assert.Contains(t, out, "duration=")
	})

	t.Run("logs error and delegates close", func(t *testing.T) {
		t.Parallel()

		logger, buf := newLogger()
		closed := false
		inner := &mock.Fetcher{
			FetchFn: func(_ context.Context, _ string) (string, error) {
				return "", errors.New("connection reset")
			},
			CloseFn: func() error {
				closed = true
				return nil
			},
		}
		f := sclog.NewLoggingFetcher(inner, logger)

		_, err := f.Fetch(context.Background(), "https://example.com")
		require.Error(t, err)
		require.NoError(t, f.Close())

		assert.Contains(t, buf.String(), `err="connection reset"`)
		assert.True(t, closed)
	})
}

func TestLoggingSitemapService(t *testing.T) {
	t.Parallel()

	logger, buf := newLogger()
	inner := &mock.SitemapService{
		DiscoverURLsFn: func(_ context.Context, _ string, _ *sitechat.URLFilter) ([]string, error) {
			return []string{"https://example.com/a", "https://example.com/b"}, nil
		},
	}

	urls, err := sclog.NewLoggingSitemapService(inner, logger).DiscoverURLs(context.Background(), "https://example.com", nil)

	require.NoError(t, err)
	assert.Len(t, urls, 2)
	assert.Contains(t, buf.String(), `msg="sitemap discovery"`)
	assert.Contains(t, buf.String(), "count=2")
	assert.Contains(t, buf.String(), "filtered=false")
}

func TestLoggingRetriever(t *testing.T) {
	t.Parallel()

	t.Run("logs match count and best distance", func(t *testing.T) {
		t.Parallel()

		logger, buf := newLogger()
		inner := &mock.Retriever{
			RetrieveFn: func(_ context.Context, _ string) ([]sitechat.Match, error) {
				return []sitechat.Match{
					{Chunk: &sitechat.Chunk{Content: "a"}, Distance: 0.25},
					{Chunk: &sitechat.Chunk{Content: "b"}, Distance: 0.5},
				}, nil
			},
		}

		matches, err := sclog.NewLoggingRetriever(inner, logger).Retrieve(context.Background(), "hours")

		require.NoError(t, err)
		assert.Len(t, matches, 2)
		out := buf.String()
		assert.Contains(t, out, "msg=retrieve")
		assert.Contains(t, out, "matches=2")
		assert.Contains(t, out, "best=0.25")
	})

	t.Run("omits best distance without matches", func(t *testing.T) {
		t.Parallel()

		logger, buf := newLogger()
		inner := &mock.Retriever{
			RetrieveFn: func(_ context.Context, _ string) ([]sitechat.Match, error) {
				return nil, nil
			},
		}

		_, err := sclog.NewLoggingRetriever(inner, logger).Retrieve(context.Background(), "hours")

		require.NoError(t, err)
		assert.Contains(t, buf.String(), "matches=0")
		assert.NotContains(t, buf.String(), "best=")
	})
}

func TestLoggingGenerator(t *testing.T) {
	t.Parallel()

	logger, buf := newLogger()
	inner := &mock.Generator{
		GenerateFn: func(_ context.Context, _ []sitechat.Message) (string, error) {
			return "Open at 9.", nil
		},
	}

	reply, err := sclog.NewLoggingGenerator(inner, logger).Generate(context.Background(), []sitechat.Message{
		{Role: sitechat.RoleSystem, Content: "s"},
		{Role: sitechat.RoleUser, Content: "u"},
	})

	require.NoError(t, err)
	assert.Equal(t, "Open at 9.", reply)
	assert.Contains(t, buf.String(), "msg=generate")
	assert.Contains(t, buf.String(), "messages=2")
	assert.Contains(t, buf.String(), "chars=10")
}

func TestLoggingEmbedder(t *testing.T) {
	t.Parallel()

	logger, buf := newLogger()
	inner := &mock.Embedder{
		EmbedFn: func(_ context.Context, texts []string) ([][]float32, error) {
			return make([][]float32, len(texts)), nil
		},
		ModelFn: func() string { return "nomic-embed-text" },
	}
	e := sclog.NewLoggingEmbedder(inner, logger)

	vectors, err := e.Embed(context.Background(), []string{"a", "b", "c"})

	require.NoError(t, err)
	assert.Len(t, vectors, 3)
	assert.Equal(t, "nomic-embed-text", e.Model())
	assert.Contains(t, buf.String(), "model=nomic-embed-text")
	assert.Contains(t, buf.String(), "texts=3")
}

func TestLoggingAnswerer(t *testing.T) {
	t.Parallel()

	t.Run("logs outcome", func(t *testing.T) {
		t.Parallel()

		logger, buf := newLogger()
		inner := &mock.Answerer{
			AnswerFn: func(_ context.Context, _ string, _ sitechat.History) (*sitechat.Reply, error) {
				return &sitechat.Reply{Text: "- A\n- B", Outcome: sitechat.OutcomeExtracted}, nil
			},
		}
		history := sitechat.History{{Role: sitechat.RoleUser, Content: "hi"}}

		reply, err := sclog.NewLoggingAnswerer(inner, logger).Answer(context.Background(), "Which?", history)

		require.NoError(t, err)
		assert.Equal(t, "- A\n- B", reply.Text)
		assert.Contains(t, buf.String(), "msg=answer")
		assert.Contains(t, buf.String(), "history=1")
		assert.Contains(t, buf.String(), "outcome=extracted")
	})

	t.Run("logs error without outcome", func(t *testing.T) {
		t.Parallel()

		logger, buf := newLogger()
		inner := &mock.Answerer{
			AnswerFn: func(_ context.Context, _ string, _ sitechat.History) (*sitechat.Reply, error) {
				return nil, errors.New("model unavailable")
			},
		}

		_, err := sclog.NewLoggingAnswerer(inner, logger).Answer(context.Background(), "Which?", nil)

		require.Error(t, err)
		assert.Contains(t, buf.String(), `outcome=""`)
		assert.Contains(t, buf.String(), `err="model unavailable"`)
	})
}
