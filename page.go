package sitechat

import "context"

// Page represents a fetched website page converted to markdown.
type Page struct {
	URL      string
	Title    string
	Content  string // Markdown
	Position int    // Discovery order within the site
}

// PageStore keeps a snapshot of the pages of one indexing run. Saved pages
// become visible together on Commit; Abort discards them.
type PageStore interface {
	Save(ctx context.Context, page *Page) error
	Commit() error
	Abort() error
}
