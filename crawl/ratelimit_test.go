package crawl_test

import (
	"context"
	"testing"
	"time"

	"github.com/fwojciec/sitechat/crawl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDomainLimiter(t *testing.T) {
	t.Parallel()

	t.Run("spaces requests to the same host", func(t *testing.T) {
		t.Parallel()

		l := crawl.NewDomainLimiter(20)
		start := time.Now()

		for i := 0; i < 3; i++ {
			require.NoError(t, l.Wait(context.Background(), "example.com"))
		}

		assert.GreaterOrEqual(t, time.Since(start), 90*time.Millisecond)
	})

	t.Run("limits hosts independently", func(t *testing.T) {
		t.Parallel()

		l := crawl.NewDomainLimiter(0.001)
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()

		require.NoError(t, l.Wait(ctx, "a.example.com"))
		require.NoError(t, l.Wait(ctx, "b.example.com"))
	})

	t.Run("returns error when the context is done", func(t *testing.T) {
		t.Parallel()

		l := crawl.NewDomainLimiter(0.001)
		require.NoError(t, l.Wait(context.Background(), "example.com"))

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		defer cancel()

		assert.Error(t, l.Wait(ctx, "example.com"))
	})
}
