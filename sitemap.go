package sitechat

import (
	"context"
	"regexp"
	"slices"
)

// SitemapService discovers page URLs from a website's sitemaps.
type SitemapService interface {
	// DiscoverURLs returns the page URLs listed in the site's sitemaps that
	// fall under baseURL's path and pass filter. robots.txt Sitemap
	// directives are consulted first, then /sitemap.xml; sitemap indexes are
	// followed recursively. A site without sitemaps yields an empty slice.
	DiscoverURLs(ctx context.Context, baseURL string, filter *URLFilter) ([]string, error)
}

// URLFilter selects which discovered URLs are indexed.
type URLFilter struct {
	// Include patterns: when set, a URL must match at least one.
	Include []*regexp.Regexp

	// Exclude patterns: a URL matching any of them is dropped.
	// Exclude is applied after Include.
	Exclude []*regexp.Regexp
}

// NewURLFilter compiles include and exclude patterns into a URLFilter.
// Returns nil when both pattern lists are empty.
func NewURLFilter(include, exclude []string) (*URLFilter, error) {
	if len(include) == 0 && len(exclude) == 0 {
		return nil, nil
	}
	f := &URLFilter{}
	for _, p := range include {
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, Errorf(EINVALID, "invalid include pattern %q: %v", p, err)
		}
		f.Include = append(f.Include, re)
	}
	for _, p := range exclude {
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, Errorf(EINVALID, "invalid exclude pattern %q: %v", p, err)
		}
		f.Exclude = append(f.Exclude, re)
	}
	return f, nil
}

// Match returns true if the URL passes the filter.
// A nil filter passes every URL.
func (f *URLFilter) Match(url string) bool {
	if f == nil {
		return true
	}
	matches := func(re *regexp.Regexp) bool { return re.MatchString(url) }
	if len(f.Include) > 0 && !slices.ContainsFunc(f.Include, matches) {
		return false
	}
	return !slices.ContainsFunc(f.Exclude, matches)
}
