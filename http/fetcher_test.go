package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/fwojciec/sitechat"
	sitechathttp "github.com/fwojciec/sitechat/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("returns HTML body from server", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			_, _ = w.Write([]byte("<html><body>Hello World</body></html>"))
		}))
		defer server.Close()

		fetcher := sitechathttp.NewFetcher()
		defer fetcher.Close()

		html, err := fetcher.Fetch(context.Background(), server.URL)

		require.NoError(t, err)
		assert.Equal(t, "<html><body>Hello World</body></html>", html)
	})

	t.Run("sends the user agent", func(t *testing.T) {
		t.Parallel()

		got := make(chan string, 1)
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got <- r.UserAgent()
			w.Header().Set("Content-Type", "text/html")
		}))
		defer server.Close()

		fetcher := sitechathttp.NewFetcher(sitechathttp.WithUserAgent("test-agent/1.0"))

		_, err := fetcher.Fetch(context.Background(), server.URL)

		require.NoError(t, err)
		assert.Equal(t, "test-agent/1.0", <-got)
	})

	t.Run("caps the body size", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/html")
			_, _ = w.Write([]byte(strings.Repeat("x", 100)))
		}))
		defer server.Close()

		fetcher := sitechathttp.NewFetcher(sitechathttp.WithMaxBodySize(10))

		html, err := fetcher.Fetch(context.Background(), server.URL)

		require.NoError(t, err)
		assert.Len(t, html, 10)
	})

	t.Run("maps status codes to error codes", func(t *testing.T) {
		t.Parallel()

		tests := []struct {
			status int
			code   string
		}{
			{http.StatusNotFound, sitechat.ENOTFOUND},
			{http.StatusGone, sitechat.ENOTFOUND},
			{http.StatusForbidden, sitechat.EINVALID},
			{http.StatusTooManyRequests, sitechat.EUNAVAILABLE},
			{http.StatusBadGateway, sitechat.EUNAVAILABLE},
		}

		for _, tt := range tests {
			t.Run(http.StatusText(tt.status), func(t *testing.T) {
				t.Parallel()

				server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					w.WriteHeader(tt.status)
				}))
				defer server.Close()

				_, err := sitechathttp.NewFetcher().Fetch(context.Background(), server.URL)

				require.Error(t, err)
				assert.Equal(t, tt.code, sitechat.ErrorCode(err))
				assert.Contains(t, sitechat.ErrorMessage(err), "HTTP")
			})
		}
	})

	t.Run("rejects non-HTML content", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/pdf")
			_, _ = w.Write([]byte("%PDF-1.7"))
		}))
		defer server.Close()

		_, err := sitechathttp.NewFetcher().Fetch(context.Background(), server.URL)

		require.Error(t, err)
		assert.Equal(t, sitechat.EINVALID, sitechat.ErrorCode(err))
	})

	t.Run("respects custom timeout option", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(100 * time.Millisecond)
			_, _ = w.Write([]byte("response"))
		}))
		defer server.Close()

		fetcher := sitechathttp.NewFetcher(sitechathttp.WithTimeout(10 * time.Millisecond))

		_, err := fetcher.Fetch(context.Background(), server.URL)

		require.Error(t, err)
		assert.Equal(t, sitechat.EUNAVAILABLE, sitechat.ErrorCode(err))
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("response"))
		}))
		defer server.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := sitechathttp.NewFetcher().Fetch(ctx, server.URL)

		require.ErrorIs(t, err, context.Canceled)
	})

	t.Run("returns error for non-existent host", func(t *testing.T) {
		t.Parallel()

		fetcher := sitechathttp.NewFetcher(sitechathttp.WithTimeout(100 * time.Millisecond))

		_, err := fetcher.Fetch(context.Background(), "http://non-existent-host.invalid/page")

		require.Error(t, err)
	})
}
