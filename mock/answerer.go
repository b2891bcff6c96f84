package mock

import (
	"context"

	"github.com/fwojciec/sitechat"
)

var _ sitechat.Answerer = (*Answerer)(nil)

// Answerer is a mock implementation of sitechat.Answerer.
type Answerer struct {
	AnswerFn func(ctx context.Context, question string, history sitechat.History) (*sitechat.Reply, error)
}

func (a *Answerer) Answer(ctx context.Context, question string, history sitechat.History) (*sitechat.Reply, error) {
	return a.AnswerFn(ctx, question, history)
}
