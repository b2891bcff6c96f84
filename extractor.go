package sitechat

// ExtractResult holds the main content of an HTML page.
type ExtractResult struct {
	// Title is the page title taken from page metadata.
	Title string

	// ContentHTML is the main content as HTML with navigation, footers,
	// sidebars and ads removed.
	ContentHTML string
}

// Extractor extracts the main content from HTML pages.
type Extractor interface {
	Extract(html string) (*ExtractResult, error)
}
