package http

import (
	"bufio"
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/beevik/etree"
	"github.com/fwojciec/sitechat"
)

// maxSitemapSize caps how much of a robots.txt or sitemap is read.
const maxSitemapSize = 50 << 20

var _ sitechat.SitemapService = (*SitemapService)(nil)

// SitemapService discovers page URLs from a site's XML sitemaps.
type SitemapService struct {
	client    *http.Client
	userAgent string
}

// NewSitemapService creates a SitemapService. A nil client uses
// http.DefaultClient.
func NewSitemapService(client *http.Client) *SitemapService {
	if client == nil {
		client = http.DefaultClient
	}
	return &SitemapService{client: client, userAgent: DefaultUserAgent}
}

// DiscoverURLs returns the sitemap URLs on baseURL's host under baseURL's
// path that pass filter, in sitemap order without duplicates.
func (s *SitemapService) DiscoverURLs(ctx context.Context, baseURL string, filter *sitechat.URLFilter) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	base, err := url.Parse(baseURL)
	if err != nil || base.Host == "" {
		return nil, sitechat.Errorf(sitechat.EINVALID, "invalid base URL %q", baseURL)
	}
	root := &url.URL{Scheme: base.Scheme, Host: base.Host}

	sitemaps, err := s.findSitemaps(ctx, root)
	if err != nil {
		return nil, err
	}

	seenSitemaps := make(map[string]bool)
	seenURLs := make(map[string]bool)
	urls := []string{}
	for _, sm := range sitemaps {
		locs, err := s.readSitemap(ctx, sm, seenSitemaps)
		if err != nil {
			return nil, err
		}
		for _, u := range locs {
			if seenURLs[u] || !underBase(u, base) || !filter.Match(u) {
				continue
			}
			seenURLs[u] = true
			urls = append(urls, u)
		}
	}
	return urls, nil
}

// underBase reports whether rawURL is on base's host, ignoring a leading
// "www.", with a path at or below base's path.
func underBase(rawURL string, base *url.URL) bool {
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	if trimWWW(u.Host) != trimWWW(base.Host) {
		return false
	}
	prefix := base.Path
	if prefix == "" || prefix == "/" {
		return true
	}
	if !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}
	return strings.HasPrefix(u.Path+"/", prefix)
}

func trimWWW(host string) string {
	return strings.TrimPrefix(strings.ToLower(host), "www.")
}

// findSitemaps returns the sitemaps named in robots.txt, or /sitemap.xml
// when robots.txt names none and it exists.
func (s *SitemapService) findSitemaps(ctx context.Context, root *url.URL) ([]string, error) {
	robots := root.ResolveReference(&url.URL{Path: "/robots.txt"}).String()
	if sitemaps, err := s.robotsSitemaps(ctx, robots); err == nil && len(sitemaps) > 0 {
		return sitemaps, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	fallback := root.ResolveReference(&url.URL{Path: "/sitemap.xml"}).String()
	body, err := s.get(ctx, fallback)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, nil
	}
	body.Close()
	return []string{fallback}, nil
}

// robotsSitemaps returns the values of Sitemap: directives in robots.txt.
func (s *SitemapService) robotsSitemaps(ctx context.Context, robotsURL string) ([]string, error) {
	body, err := s.get(ctx, robotsURL)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	var sitemaps []string
	scanner := bufio.NewScanner(body)
	for scanner.Scan() {
		key, value, ok := strings.Cut(scanner.Text(), ":")
		if !ok || !strings.EqualFold(strings.TrimSpace(key), "sitemap") {
			continue
		}
		if v := strings.TrimSpace(value); v != "" {
			sitemaps = append(sitemaps, v)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, sitechat.Errorf(sitechat.EUNAVAILABLE, "read robots.txt: %v", err)
	}
	return sitemaps, nil
}

// readSitemap returns the page URLs of a urlset, following sitemap
// indexes recursively. Each sitemap is read at most once.
func (s *SitemapService) readSitemap(ctx context.Context, sitemapURL string, seen map[string]bool) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if seen[sitemapURL] {
		return nil, nil
	}
	seen[sitemapURL] = true

	body, err := s.get(ctx, sitemapURL)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(body); err != nil {
		return nil, sitechat.Errorf(sitechat.EINVALID, "parse sitemap %s: %v", sitemapURL, err)
	}
	root := doc.Root()
	if root == nil {
		return nil, sitechat.Errorf(sitechat.EINVALID, "empty sitemap %s", sitemapURL)
	}

	if root.Tag != "sitemapindex" {
		return locs(root, "url"), nil
	}

	var urls []string
	for _, child := range locs(root, "sitemap") {
		childURLs, err := s.readSitemap(ctx, child, seen)
		if err != nil {
			return nil, err
		}
		urls = append(urls, childURLs...)
	}
	return urls, nil
}

// locs returns the non-empty <loc> values of root's tag children.
func locs(root *etree.Element, tag string) []string {
	var values []string
	for _, el := range root.SelectElements(tag) {
		loc := el.SelectElement("loc")
		if loc == nil {
			continue
		}
		if v := strings.TrimSpace(loc.Text()); v != "" {
			values = append(values, v)
		}
	}
	return values
}

// get fetches targetURL and returns its body, which the caller closes.
func (s *SitemapService) get(ctx context.Context, targetURL string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, targetURL, nil)
	if err != nil {
		return nil, sitechat.Errorf(sitechat.EINVALID, "invalid URL %q: %v", targetURL, err)
	}
	req.Header.Set("User-Agent", s.userAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, sitechat.Errorf(sitechat.EUNAVAILABLE, "fetch %s: %v", targetURL, err)
	}
	if err := statusError(resp.StatusCode, targetURL); err != nil {
		resp.Body.Close()
		return nil, err
	}
	return readCloser{io.LimitReader(resp.Body, maxSitemapSize), resp.Body}, nil
}

type readCloser struct {
	io.Reader
	io.Closer
}
