package main

import (
	"context"
	"fmt"
	"time"

	"github.com/fwojciec/sitechat"
	sitechathttp "github.com/fwojciec/sitechat/http"
)

// Run executes the serve command. It serves until the context is done.
func (c *ServeCmd) Run(deps *Dependencies) error {
	answerer, err := answererFor(deps, c.URL)
	if err != nil {
		return err
	}

	s := sitechathttp.NewServer(timeoutAnswerer{next: answerer, timeout: c.Timeout})
	s.Addr = c.Addr
	s.Logger = deps.Logger
	s.Metrics = deps.Metrics

	if err := s.Open(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}
	fmt.Fprintf(deps.Stdout, "Serving %s on %s\n", c.URL, s.URL())

	<-deps.Ctx.Done()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.Close(ctx)
}

// timeoutAnswerer bounds each answer to timeout.
type timeoutAnswerer struct {
	next    sitechat.Answerer
	timeout time.Duration
}

func (a timeoutAnswerer) Answer(ctx context.Context, question string, history sitechat.History) (*sitechat.Reply, error) {
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()
	return a.next.Answer(ctx, question, history)
}
