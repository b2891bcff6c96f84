//go:build integration

package http_test

import (
	"context"
	"testing"
	"time"

	sitechathttp "github.com/fwojciec/sitechat/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSitemapService_Integration(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	svc := sitechathttp.NewSitemapService(nil)

	// htmx.org declares its sitemap in robots.txt.
	urls, err := svc.DiscoverURLs(ctx, "https://htmx.org/docs", nil)
	require.NoError(t, err)

	assert.NotEmpty(t, urls)
	for _, u := range urls {
		assert.Contains(t, u, "/docs")
	}
	t.Logf("found %d URLs", len(urls))
}
