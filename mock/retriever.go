package mock

import (
	"context"

	"github.com/fwojciec/sitechat"
)

var _ sitechat.Retriever = (*Retriever)(nil)

// Retriever is a mock implementation of sitechat.Retriever.
type Retriever struct {
	RetrieveFn func(ctx context.Context, query string) ([]sitechat.Match, error)
}

func (r *Retriever) Retrieve(ctx context.Context, query string) ([]sitechat.Match, error) {
	return r.RetrieveFn(ctx, query)
}
