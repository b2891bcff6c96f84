// Package trafilatura implements sitechat.Extractor with go-trafilatura,
// which separates a page's main text from navigation and boilerplate.
package trafilatura

import (
	"bytes"
	"strings"

	"github.com/fwojciec/sitechat"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

var _ sitechat.Extractor = (*Extractor)(nil)

// Extractor extracts main content with go-trafilatura. Tables are kept
// since business pages often carry prices and opening hours in them.
type Extractor struct {
	opts trafilatura.Options
}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{opts: trafilatura.Options{
		EnableFallback:  true,
		ExcludeComments: true,
	}}
}

// Extract returns the title and main content of rawHTML. A page without
// recognisable main content yields an empty ContentHTML.
func (e *Extractor) Extract(rawHTML string) (*sitechat.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, sitechat.Errorf(sitechat.EINVALID, "empty HTML input")
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), e.opts)
	if err != nil {
		return nil, sitechat.Errorf(sitechat.EINVALID, "extract content: %v", err)
	}

	out := &sitechat.ExtractResult{Title: strings.TrimSpace(result.Metadata.Title)}
	if result.ContentNode != nil {
		var buf bytes.Buffer
		if err := html.Render(&buf, result.ContentNode); err != nil {
			return nil, err
		}
		out.ContentHTML = buf.String()
	}
	return out, nil
}
