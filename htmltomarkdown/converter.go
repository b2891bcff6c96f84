// Package htmltomarkdown implements sitechat.Converter with
// html-to-markdown.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/fwojciec/sitechat"
)

var _ sitechat.Converter = (*Converter)(nil)

// Converter converts extracted HTML to CommonMark with GFM tables.
// Bullet items always use "-" so list answers can be lifted verbatim.
type Converter struct {
	conv *converter.Converter
}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	return &Converter{conv: converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(
				commonmark.WithBulletListMarker("-"),
			),
			table.NewTablePlugin(),
		),
	)}
}

// Convert transforms html into markdown.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", sitechat.Errorf(sitechat.EINVALID, "empty HTML input")
	}

	md, err := c.conv.ConvertString(html)
	if err != nil {
		return "", sitechat.Errorf(sitechat.EINVALID, "convert HTML: %v", err)
	}
	return strings.TrimSpace(md), nil
}
