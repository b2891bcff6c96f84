package crawl

import (
	"context"
	"time"

	"github.com/fwojciec/sitechat"
)

// DefaultRetryDelays returns the backoff delays for fetch retries: 1s, 2s, 4s.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}
}

// FetchWithRetry fetches url, retrying after each of delays in turn.
// Pages that do not exist or are not HTML (ENOTFOUND, EINVALID) fail
// immediately, since asking again will not change the answer.
func FetchWithRetry(ctx context.Context, fetcher sitechat.Fetcher, url string, delays []time.Duration) (string, error) {
	for attempt := 0; ; attempt++ {
		html, err := fetcher.Fetch(ctx, url)
		if err == nil {
			return html, nil
		}
		if attempt >= len(delays) || !retryable(err) {
			return "", err
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(delays[attempt]):
		}
	}
}

func retryable(err error) bool {
	switch sitechat.ErrorCode(err) {
	case sitechat.ENOTFOUND, sitechat.EINVALID:
		return false
	}
	return true
}
