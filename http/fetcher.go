// Package http implements sitechat services over plain HTTP: a Fetcher for
// server-rendered pages, sitemap discovery, and the question answering API.
package http

import (
	"context"
	"io"
	"mime"
	"net/http"
	"time"

	"github.com/fwojciec/sitechat"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 10 * time.Second

// DefaultMaxBodySize caps how much of a response body is read.
const DefaultMaxBodySize = 5 << 20

// DefaultUserAgent identifies the crawler to the sites it fetches.
const DefaultUserAgent = "sitechat/1.0 (+https://github.com/fwojciec/sitechat)"

var _ sitechat.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves HTML over HTTP without executing JavaScript.
type Fetcher struct {
	client      *http.Client
	timeout     time.Duration
	userAgent   string
	maxBodySize int64
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent sets the User-Agent header sent with each request.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// WithMaxBodySize caps the number of body bytes read per page.
func WithMaxBodySize(n int64) Option {
	return func(f *Fetcher) {
		f.maxBodySize = n
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:     DefaultFetchTimeout,
		userAgent:   DefaultUserAgent,
		maxBodySize: DefaultMaxBodySize,
	}
	for _, opt := range opts {
		opt(f)
	}
	f.client = &http.Client{Timeout: f.timeout}
	return f
}

// Fetch returns the HTML served at url. Missing pages are ENOTFOUND, other
// client errors and non-HTML responses are EINVALID, and server errors or
// rate limiting are EUNAVAILABLE.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", sitechat.Errorf(sitechat.EINVALID, "invalid URL %q: %v", url, err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml;q=0.9,*/*;q=0.5")

	resp, err := f.client.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		return "", sitechat.Errorf(sitechat.EUNAVAILABLE, "fetch %s: %v", url, err)
	}
	defer resp.Body.Close()

	if err := statusError(resp.StatusCode, url); err != nil {
		return "", err
	}
	if !isHTML(resp.Header.Get("Content-Type")) {
		return "", sitechat.Errorf(sitechat.EINVALID, "%s is not HTML (%s)", url, resp.Header.Get("Content-Type"))
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBodySize))
	if err != nil {
		return "", sitechat.Errorf(sitechat.EUNAVAILABLE, "read %s: %v", url, err)
	}
	return string(body), nil
}

// Close is a no-op; http.Client holds nothing that needs releasing.
func (f *Fetcher) Close() error {
	return nil
}

func statusError(status int, url string) error {
	switch {
	case status >= 200 && status < 300:
		return nil
	case status == http.StatusNotFound || status == http.StatusGone:
		return sitechat.Errorf(sitechat.ENOTFOUND, "HTTP %d for %s", status, url)
	case status == http.StatusTooManyRequests || status >= 500:
		return sitechat.Errorf(sitechat.EUNAVAILABLE, "HTTP %d for %s", status, url)
	default:
		return sitechat.Errorf(sitechat.EINVALID, "HTTP %d for %s", status, url)
	}
}

// isHTML reports whether contentType is an HTML media type. A missing
// header is treated as HTML.
func isHTML(contentType string) bool {
	if contentType == "" {
		return true
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return mediaType == "text/html" || mediaType == "application/xhtml+xml"
}
