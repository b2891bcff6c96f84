package main

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/fwojciec/sitechat"
)

// Run executes the chat command. The session owns the conversation
// history: each answered question and its reply are appended to it, and
// failed questions leave it untouched.
func (c *ChatCmd) Run(deps *Dependencies) error {
	answerer, err := answererFor(deps, c.URL)
	if err != nil {
		return err
	}

	fmt.Fprintf(deps.Stdout, "Ask about %s. Type \"exit\" to quit.\n", c.URL)

	var history sitechat.History
	scanner := bufio.NewScanner(deps.Stdin)
	for {
		fmt.Fprint(deps.Stdout, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(deps.Stdout)
			return scanner.Err()
		}

		question := strings.TrimSpace(scanner.Text())
		switch question {
		case "":
			continue
		case "exit", "quit":
			return nil
		}

		reply, err := c.answer(deps, answerer, question, history)
		if err != nil {
			if deps.Ctx.Err() != nil {
				return deps.Ctx.Err()
			}
			fmt.Fprintf(deps.Stderr, "error: could not process request: %s\n", sitechat.ErrorMessage(err))
			continue
		}

		fmt.Fprintln(deps.Stdout, reply.Text)
		history = append(history,
			sitechat.Message{Role: sitechat.RoleUser, Content: question},
			sitechat.Message{Role: sitechat.RoleAssistant, Content: reply.Text},
		)
	}
}

func (c *ChatCmd) answer(deps *Dependencies, answerer sitechat.Answerer, question string, history sitechat.History) (*sitechat.Reply, error) {
	ctx, cancel := context.WithTimeout(deps.Ctx, c.Timeout)
	defer cancel()
	return answerer.Answer(ctx, question, history)
}
