// Package readability implements sitechat.Extractor with go-readability,
// a port of Mozilla's Readability. It recovers content on pages where
// trafilatura finds none.
package readability

import (
	"strings"

	"github.com/fwojciec/sitechat"
	"github.com/go-shiori/go-readability"
)

var _ sitechat.Extractor = (*Extractor)(nil)

// Extractor extracts main content with go-readability.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract returns the title and main content of rawHTML.
func (e *Extractor) Extract(rawHTML string) (*sitechat.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, sitechat.Errorf(sitechat.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, sitechat.Errorf(sitechat.EINVALID, "extract content: %v", err)
	}

	return &sitechat.ExtractResult{
		Title:       strings.TrimSpace(article.Title),
		ContentHTML: strings.TrimSpace(article.Content),
	}, nil
}
