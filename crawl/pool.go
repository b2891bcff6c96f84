package crawl

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// forEach calls fn for each index in [0, n) with at most limit calls in
// flight. Cancelling ctx stops new calls from starting.
func forEach(ctx context.Context, n, limit int, fn func(ctx context.Context, i int)) {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i := 0; i < n; i++ {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			fn(gctx, i)
			return nil
		})
	}
	_ = g.Wait()
}
