package sitechat

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms clean HTML (e.g. from an Extractor) into Markdown.
	// Markdown keeps list structure as "- item" and "1. item" lines.
	Convert(html string) (string, error)
}
