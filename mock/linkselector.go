package mock

import "github.com/fwojciec/sitechat"

var _ sitechat.LinkSelector = (*LinkSelector)(nil)

// LinkSelector is a mock implementation of sitechat.LinkSelector.
type LinkSelector struct {
	ExtractLinksFn func(html string, baseURL string) ([]sitechat.DiscoveredLink, error)
}

func (s *LinkSelector) ExtractLinks(html string, baseURL string) ([]sitechat.DiscoveredLink, error) {
	return s.ExtractLinksFn(html, baseURL)
}
