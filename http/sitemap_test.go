package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/fwojciec/sitechat"
	sitechathttp "github.com/fwojciec/sitechat/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSitemapService_DiscoverURLs(t *testing.T) {
	t.Parallel()

	t.Run("reads sitemaps named in robots.txt", func(t *testing.T) {
		t.Parallel()

		srv := newTestServer(t, map[string]string{
			"/robots.txt": "User-agent: *\nDisallow: /private/\nSitemap: {{BASE}}/pages.xml\n",
			"/pages.xml":  urlset("{{BASE}}/faq", "{{BASE}}/pricing"),
		})

		urls, err := sitechathttp.NewSitemapService(srv.Client()).DiscoverURLs(context.Background(), srv.URL, nil)

		require.NoError(t, err)
		assert.Equal(t, []string{srv.URL + "/faq", srv.URL + "/pricing"}, urls)
	})

	t.Run("falls back to sitemap.xml", func(t *testing.T) {
		t.Parallel()

		srv := newTestServer(t, map[string]string{
			"/sitemap.xml": urlset("{{BASE}}/page1"),
		})

		urls, err := sitechathttp.NewSitemapService(srv.Client()).DiscoverURLs(context.Background(), srv.URL, nil)

		require.NoError(t, err)
		assert.Equal(t, []string{srv.URL + "/page1"}, urls)
	})

	t.Run("returns empty slice when the site has no sitemap", func(t *testing.T) {
		t.Parallel()

		srv := newTestServer(t, map[string]string{})

		urls, err := sitechathttp.NewSitemapService(srv.Client()).DiscoverURLs(context.Background(), srv.URL, nil)

		require.NoError(t, err)
		assert.NotNil(t, urls)
		assert.Empty(t, urls)
	})

	t.Run("follows sitemap indexes once each", func(t *testing.T) {
		t.Parallel()

		srv := newTestServer(t, map[string]string{
			"/sitemap.xml": `<?xml version="1.0" encoding="UTF-8"?>
<sitemapindex xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">
  <sitemap><loc>{{BASE}}/a.xml</loc></sitemap>
  <sitemap><loc>{{BASE}}/b.xml</loc></sitemap>
  <sitemap><loc>{{BASE}}/a.xml</loc></sitemap>
</sitemapindex>`,
			"/a.xml": urlset("{{BASE}}/one", "{{BASE}}/two"),
			"/b.xml": urlset("{{BASE}}/two", "{{BASE}}/three"),
		})

		urls, err := sitechathttp.NewSitemapService(srv.Client()).DiscoverURLs(context.Background(), srv.URL, nil)

		require.NoError(t, err)
		assert.Equal(t, []string{srv.URL + "/one", srv.URL + "/two", srv.URL + "/three"}, urls)
	})

	t.Run("keeps URLs under the base path", func(t *testing.T) {
		t.Parallel()

		srv := newTestServer(t, map[string]string{
			"/sitemap.xml": urlset("{{BASE}}/help", "{{BASE}}/help/orders", "{{BASE}}/helpdesk", "{{BASE}}/blog"),
		})

		urls, err := sitechathttp.NewSitemapService(srv.Client()).DiscoverURLs(context.Background(), srv.URL+"/help", nil)

		require.NoError(t, err)
		assert.Equal(t, []string{srv.URL + "/help", srv.URL + "/help/orders"}, urls)
	})

	t.Run("drops URLs on other hosts", func(t *testing.T) {
		t.Parallel()

		srv := newTestServer(t, map[string]string{
			"/sitemap.xml": urlset("{{BASE}}/mine", "https://cdn.example.net/theirs"),
		})

		urls, err := sitechathttp.NewSitemapService(srv.Client()).DiscoverURLs(context.Background(), srv.URL, nil)

		require.NoError(t, err)
		assert.Equal(t, []string{srv.URL + "/mine"}, urls)
	})

	t.Run("applies the URL filter", func(t *testing.T) {
		t.Parallel()

		srv := newTestServer(t, map[string]string{
			"/sitemap.xml": urlset("{{BASE}}/en/faq", "{{BASE}}/de/faq"),
		})
		filter, err := sitechat.NewURLFilter([]string{"/en/"}, nil)
		require.NoError(t, err)

		urls, err := sitechathttp.NewSitemapService(srv.Client()).DiscoverURLs(context.Background(), srv.URL, filter)

		require.NoError(t, err)
		assert.Equal(t, []string{srv.URL + "/en/faq"}, urls)
	})

	t.Run("returns error for malformed sitemap", func(t *testing.T) {
		t.Parallel()

		srv := newTestServer(t, map[string]string{
			"/sitemap.xml": "<urlset><url></urlset>",
		})

		_, err := sitechathttp.NewSitemapService(srv.Client()).DiscoverURLs(context.Background(), srv.URL, nil)

		require.Error(t, err)
		assert.Equal(t, sitechat.EINVALID, sitechat.ErrorCode(err))
	})

	t.Run("returns error for invalid base URL", func(t *testing.T) {
		t.Parallel()

		_, err := sitechathttp.NewSitemapService(nil).DiscoverURLs(context.Background(), "not a url", nil)

		assert.Equal(t, sitechat.EINVALID, sitechat.ErrorCode(err))
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := sitechathttp.NewSitemapService(nil).DiscoverURLs(ctx, "https://example.com", nil)

		require.ErrorIs(t, err, context.Canceled)
	})
}

func urlset(locs ...string) string {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	b.WriteString(`<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">` + "\n")
	for _, loc := range locs {
		b.WriteString("  <url><loc>" + loc + "</loc></url>\n")
	}
	b.WriteString("</urlset>")
	return b.String()
}

// newTestServer serves content by path, replacing {{BASE}} with the
// server's URL.
func newTestServer(t *testing.T, content map[string]string) *httptest.Server {
	t.Helper()

	var srv *httptest.Server
	srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, ok := content[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		if r.URL.Path == "/robots.txt" {
			w.Header().Set("Content-Type", "text/plain")
		} else {
			w.Header().Set("Content-Type", "application/xml")
		}
		_, _ = w.Write([]byte(strings.ReplaceAll(body, "{{BASE}}", srv.URL)))
	}))
	t.Cleanup(srv.Close)
	return srv
}
