package mock

import (
	"context"

	"github.com/fwojciec/sitechat"
)

var _ sitechat.Generator = (*Generator)(nil)

// Generator is a mock implementation of sitechat.Generator.
type Generator struct {
	GenerateFn func(ctx context.Context, messages []sitechat.Message) (string, error)
}

func (g *Generator) Generate(ctx context.Context, messages []sitechat.Message) (string, error) {
	return g.GenerateFn(ctx, messages)
}
