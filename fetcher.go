package sitechat

import "context"

// Fetcher retrieves the HTML of a web page.
type Fetcher interface {
	// Fetch returns the HTML served (or rendered) at url.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases any resources held by the fetcher.
	Close() error
}
