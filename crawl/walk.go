package crawl

import (
	"context"
	"net/url"

	"github.com/fwojciec/sitechat"
)

// Frontier sizing for walks.
const (
	frontierExpectedURLs      = 10000
	frontierFalsePositiveRate = 0.01
)

// walk discovers pages by following links from startURL, processing up to
// MaxPages pages concurrently. Results are in dispatch order.
func (ix *Indexer) walk(ctx context.Context, startURL string, report ProgressFunc) ([]pageResult, error) {
	start, err := url.Parse(startURL)
	if err != nil {
		return nil, sitechat.Errorf(sitechat.EINVALID, "invalid site URL %q", startURL)
	}
	inScope := newScope(start, ix.Filter)

	frontier := NewFrontier(frontierExpectedURLs, frontierFalsePositiveRate)
	frontier.Push(sitechat.DiscoveredLink{URL: startURL, Priority: sitechat.PriorityNavigation})

	report(ProgressEvent{Type: ProgressStarted})

	type done struct {
		seq    int
		url    string
		result pageResult
	}
	doneCh := make(chan done)
	var results []pageResult
	dispatched, inflight := 0, 0
	limit := ix.maxPages()

	for {
		for inflight < ix.concurrency() && dispatched < limit && ctx.Err() == nil {
			link, ok := frontier.Pop()
			if !ok {
				break
			}
			results = append(results, pageResult{})
			go func(seq int, u string) {
				doneCh <- done{seq: seq, url: u, result: ix.processPage(ctx, u, true)}
			}(dispatched, link.URL)
			dispatched++
			inflight++
		}
		if inflight == 0 {
			break
		}

		d := <-doneCh
		inflight--
		results[d.seq] = d.result
		for _, link := range d.result.links {
			if inScope.contains(link.URL) {
				frontier.Push(link)
			}
		}
		report(pageEvent(d.result, d.url, len(results)-inflight, 0))
	}

	return results, nil
}

func hostOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return u.Host
}
