package main

import (
	"context"
	"fmt"

	"github.com/fwojciec/sitechat"
)

// Run executes the ask command.
func (c *AskCmd) Run(deps *Dependencies) error {
	answerer, err := answererFor(deps, c.URL)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(deps.Ctx, c.Timeout)
	defer cancel()

	reply, err := answerer.Answer(ctx, c.Question, nil)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: could not process request: %s\n", sitechat.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, reply.Text)
	return nil
}
