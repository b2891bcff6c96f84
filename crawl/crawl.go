// Package crawl builds the searchable index of a website. It discovers the
// site's pages, extracts and converts their main content to markdown,
// splits it into chunks, embeds the chunks and stores them.
package crawl

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/fwojciec/sitechat"
)

// Indexer defaults.
const (
	DefaultConcurrency = 5
	DefaultMaxPages    = 500
	DefaultEmbedBatch  = 32
)

// Indexer crawls a site and stores its embedded chunks.
type Indexer struct {
	Sitemaps     sitechat.SitemapService
	Fetcher      sitechat.Fetcher
	Extractors   []sitechat.Extractor // tried in order
	Converter    sitechat.Converter
	LinkSelector sitechat.LinkSelector
	RateLimiter  sitechat.DomainLimiter
	Embedder     sitechat.Embedder
	Chunks       sitechat.ChunkService
	TokenCounter sitechat.TokenCounter // optional
	Pages        sitechat.PageStore    // optional snapshot of converted pages

	Filter      *sitechat.URLFilter
	Concurrency int
	MaxPages    int
	ChunkSize   int
	EmbedBatch  int
	RetryDelays []time.Duration
}

// Result summarises an indexing run.
type Result struct {
	Pages  int // pages converted to markdown
	Failed int // pages that could not be fetched or converted
	Chunks int // chunks stored
	Bytes  int // markdown bytes across pages
	Tokens int // tokens across pages, when a TokenCounter is set
}

// ProgressType indicates the type of progress event.
type ProgressType int

// Progress event types.
const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressEmbedding
	ProgressFinished
)

// ProgressEvent reports progress during indexing. Total is zero while
// pages are discovered by walking links, as the page count is unknown.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	URL       string
	Error     error
}

// ProgressFunc is a callback for reporting indexing progress. Calls are
// serialized.
type ProgressFunc func(event ProgressEvent)

// pageResult is the outcome of processing one URL.
type pageResult struct {
	page  *sitechat.Page
	links []sitechat.DiscoveredLink
	err   error
}

// IndexSite crawls site and stores its chunks. The chunks of a run are
// stored in a single transaction, so a failed run leaves nothing behind.
// A site that yields no content is EINVALID.
func (ix *Indexer) IndexSite(ctx context.Context, site *sitechat.Site, progress ProgressFunc) (_ *Result, err error) {
	if model := ix.Embedder.Model(); model != site.EmbedModel {
		return nil, sitechat.Errorf(sitechat.EINVALID,
			"site %q uses embedding model %q, indexer uses %q", site.ID, site.EmbedModel, model)
	}

	report := serialize(progress)

	pages, failed, err := ix.collect(ctx, site.URL, report)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if ix.Pages != nil {
		if err := ix.savePages(ctx, pages); err != nil {
			return nil, err
		}
		defer func() {
			if err != nil {
				_ = ix.Pages.Abort()
			}
		}()
	}

	result := &Result{Pages: len(pages), Failed: failed}
	for _, p := range pages {
		result.Bytes += len(p.Content)
		if ix.TokenCounter != nil {
			if n, err := ix.TokenCounter.CountTokens(ctx, p.Content); err == nil {
				result.Tokens += n
			}
		}
	}

	chunks := ix.split(site.ID, pages)
	if len(chunks) == 0 {
		return nil, sitechat.Errorf(sitechat.EINVALID, "site could not be indexed: no content found at %s", site.URL)
	}

	if err := ix.embed(ctx, chunks, report); err != nil {
		return nil, err
	}
	if err := ix.Chunks.CreateChunks(ctx, chunks); err != nil {
		return nil, fmt.Errorf("store chunks: %w", err)
	}
	result.Chunks = len(chunks)

	if ix.Pages != nil {
		if err = ix.Pages.Commit(); err != nil {
			return nil, fmt.Errorf("commit pages: %w", err)
		}
	}

	report(ProgressEvent{Type: ProgressFinished, Completed: len(chunks), Total: len(chunks)})
	return result, nil
}

// savePages writes pages to the page store, discarding the snapshot if
// any write fails.
func (ix *Indexer) savePages(ctx context.Context, pages []*sitechat.Page) error {
	for _, p := range pages {
		if err := ix.Pages.Save(ctx, p); err != nil {
			_ = ix.Pages.Abort()
			return fmt.Errorf("save page %s: %w", p.URL, err)
		}
	}
	return nil
}

// collect returns the site's pages in discovery order and the number of
// pages that failed. Sitemap URLs are used when the site publishes any;
// otherwise links are followed from the start page.
func (ix *Indexer) collect(ctx context.Context, startURL string, report ProgressFunc) ([]*sitechat.Page, int, error) {
	urls, err := ix.Sitemaps.DiscoverURLs(ctx, startURL, ix.Filter)
	if err != nil && ctx.Err() != nil {
		return nil, 0, ctx.Err()
	}

	var results []pageResult
	if err == nil && len(urls) > 0 {
		results = ix.fetchAll(ctx, urls[:min(len(urls), ix.maxPages())], report)
	} else {
		results, err = ix.walk(ctx, startURL, report)
		if err != nil {
			return nil, 0, err
		}
	}

	var pages []*sitechat.Page
	failed := 0
	for _, r := range results {
		if r.err != nil {
			failed++
			continue
		}
		r.page.Position = len(pages)
		pages = append(pages, r.page)
	}
	return pages, failed, nil
}

// fetchAll processes urls concurrently, returning results in input order.
func (ix *Indexer) fetchAll(ctx context.Context, urls []string, report ProgressFunc) []pageResult {
	report(ProgressEvent{Type: ProgressStarted, Total: len(urls)})

	results := make([]pageResult, len(urls))
	var (
		mu        sync.Mutex
		completed int
	)
	forEach(ctx, len(urls), ix.concurrency(), func(ctx context.Context, i int) {
		results[i] = ix.processPage(ctx, urls[i], false)

		mu.Lock()
		completed++
		n := completed
		mu.Unlock()
		report(pageEvent(results[i], urls[i], n, len(urls)))
	})
	return results
}

// processPage fetches url and converts its main content to markdown.
// Links are extracted when withLinks is set, even if conversion fails.
func (ix *Indexer) processPage(ctx context.Context, url string, withLinks bool) pageResult {
	if ix.RateLimiter != nil {
		if err := ix.RateLimiter.Wait(ctx, hostOf(url)); err != nil {
			return pageResult{err: err}
		}
	}

	html, err := FetchWithRetry(ctx, ix.Fetcher, url, ix.retryDelays())
	if err != nil {
		return pageResult{err: err}
	}

	var r pageResult
	if withLinks && ix.LinkSelector != nil {
		if links, err := ix.LinkSelector.ExtractLinks(html, url); err == nil {
			r.links = links
		}
	}

	extracted, err := ix.extract(html)
	if err != nil {
		r.err = err
		return r
	}

	markdown, err := ix.Converter.Convert(extracted.ContentHTML)
	if err != nil {
		r.err = fmt.Errorf("convert %s: %w", url, err)
		return r
	}
	if strings.TrimSpace(markdown) == "" {
		r.err = sitechat.Errorf(sitechat.EINVALID, "no content at %s", url)
		return r
	}

	r.page = &sitechat.Page{URL: url, Title: extracted.Title, Content: markdown}
	return r
}

// extract returns the first non-empty result of the extractors.
func (ix *Indexer) extract(html string) (*sitechat.ExtractResult, error) {
	var lastErr error
	for _, e := range ix.Extractors {
		result, err := e.Extract(html)
		if err != nil {
			lastErr = err
			continue
		}
		if result != nil && result.ContentHTML != "" {
			return result, nil
		}
	}
	if lastErr != nil {
		return nil, lastErr
	}
	return nil, sitechat.Errorf(sitechat.EINVALID, "no main content found")
}

func (ix *Indexer) concurrency() int {
	if ix.Concurrency <= 0 {
		return DefaultConcurrency
	}
	return ix.Concurrency
}

func (ix *Indexer) maxPages() int {
	if ix.MaxPages <= 0 {
		return DefaultMaxPages
	}
	return ix.MaxPages
}

func (ix *Indexer) retryDelays() []time.Duration {
	if ix.RetryDelays == nil {
		return DefaultRetryDelays()
	}
	return ix.RetryDelays
}

func pageEvent(r pageResult, url string, completed, total int) ProgressEvent {
	if r.err != nil {
		return ProgressEvent{Type: ProgressFailed, Completed: completed, Total: total, URL: url, Error: r.err}
	}
	return ProgressEvent{Type: ProgressCompleted, Completed: completed, Total: total, URL: url}
}

// serialize returns a ProgressFunc that is safe to call from several
// goroutines. A nil progress yields a no-op.
func serialize(progress ProgressFunc) ProgressFunc {
	if progress == nil {
		return func(ProgressEvent) {}
	}
	var mu sync.Mutex
	return func(e ProgressEvent) {
		mu.Lock()
		defer mu.Unlock()
		progress(e)
	}
}
