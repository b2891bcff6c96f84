package crawl

import (
	"net/url"
	"strings"

	"github.com/fwojciec/sitechat"
)

// scope decides which discovered URLs belong to the site being indexed:
// same host (ignoring a leading "www."), path under the start URL's path,
// and accepted by the optional filter.
type scope struct {
	host   string
	prefix string
	filter *sitechat.URLFilter
}

func newScope(start *url.URL, filter *sitechat.URLFilter) scope {
	prefix := start.Path
	if prefix != "" && !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}
	return scope{
		host:   normalizeHost(start.Host),
		prefix: prefix,
		filter: filter,
	}
}

func (s scope) contains(rawURL string) bool {
	u, err := url.Parse(rawURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		return false
	}
	if normalizeHost(u.Host) != s.host {
		return false
	}
	if s.prefix != "" && s.prefix != "/" && !strings.HasPrefix(u.Path+"/", s.prefix) {
		return false
	}
	return s.filter.Match(rawURL)
}

func normalizeHost(host string) string {
	return strings.TrimPrefix(strings.ToLower(host), "www.")
}
