// Package goquery implements sitechat.LinkSelector with goquery, ranking a
// page's links by where they appear.
package goquery

import (
	"net/url"
	"path"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/sitechat"
)

var _ sitechat.LinkSelector = (*LinkSelector)(nil)

// region is a part of the page whose links share a priority.
type region struct {
	selector string
	priority sitechat.LinkPriority
	source   string
}

// regions are matched in order. A link found in several regions keeps its
// highest priority; anchors outside every region count as content.
var regions = []region{
	{`nav a[href], header a[href], [role="navigation"] a[href], .menu a[href], .navbar a[href]`, sitechat.PriorityNavigation, "nav"},
	{`footer a[href], .footer a[href], [role="contentinfo"] a[href]`, sitechat.PriorityFooter, "footer"},
	{`a[href]`, sitechat.PriorityContent, "content"},
}

// skippedExtensions are link targets that never hold page content.
var skippedExtensions = map[string]bool{
	".pdf": true, ".zip": true, ".jpg": true, ".jpeg": true, ".png": true,
	".gif": true, ".svg": true, ".webp": true, ".mp4": true, ".mp3": true,
	".css": true, ".js": true, ".xml": true, ".ics": true, ".doc": true, ".docx": true,
}

// LinkSelector extracts same-site links from HTML.
type LinkSelector struct{}

// NewLinkSelector creates a new LinkSelector.
func NewLinkSelector() *LinkSelector {
	return &LinkSelector{}
}

// ExtractLinks returns the links in html that point to other pages on
// baseURL's host, ignoring a leading "www.", in document order of first
// appearance. Fragments are dropped and links to baseURL itself skipped.
func (s *LinkSelector) ExtractLinks(html string, baseURL string) ([]sitechat.DiscoveredLink, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, sitechat.Errorf(sitechat.EINVALID, "invalid base URL: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, sitechat.Errorf(sitechat.EINVALID, "parse HTML: %v", err)
	}

	// <base href> changes how relative links resolve.
	if href, ok := doc.Find("base[href]").First().Attr("href"); ok {
		if ref, err := url.Parse(href); err == nil {
			base = base.ResolveReference(ref)
		}
	}

	seen := make(map[string]int)
	var links []sitechat.DiscoveredLink
	for _, r := range regions {
		doc.Find(r.selector).Each(func(_ int, sel *goquery.Selection) {
			href, _ := sel.Attr("href")
			resolved := resolve(base, href)
			if resolved == "" {
				return
			}

			link := sitechat.DiscoveredLink{
				URL:      resolved,
				Priority: r.priority,
				Text:     strings.Join(strings.Fields(sel.Text()), " "),
				Source:   r.source,
			}
			if i, ok := seen[resolved]; ok {
				if link.Priority > links[i].Priority {
					links[i] = link
				}
				return
			}
			seen[resolved] = len(links)
			links = append(links, link)
		})
	}
	return links, nil
}

// resolve returns href as an absolute URL without fragment, or "" if it
// does not lead to another crawlable page on base's site.
func resolve(base *url.URL, href string) string {
	href = strings.TrimSpace(href)
	if href == "" || strings.HasPrefix(href, "#") {
		return ""
	}
	ref, err := url.Parse(href)
	if err != nil {
		return ""
	}

	u := base.ResolveReference(ref)
	u.Fragment = ""
	if u.Scheme != "http" && u.Scheme != "https" {
		return ""
	}
	if trimWWW(u.Host) != trimWWW(base.Host) {
		return ""
	}
	if skippedExtensions[strings.ToLower(path.Ext(u.Path))] {
		return ""
	}

	self := *base
	self.Fragment = ""
	if u.String() == self.String() {
		return ""
	}
	return u.String()
}

func trimWWW(host string) string {
	return strings.TrimPrefix(strings.ToLower(host), "www.")
}
