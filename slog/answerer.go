package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/sitechat"
)

// Ensure LoggingAnswerer implements sitechat.Answerer.
var _ sitechat.Answerer = (*LoggingAnswerer)(nil)

// LoggingAnswerer wraps an Answerer with logging.
type LoggingAnswerer struct {
	next   sitechat.Answerer
	logger *slog.Logger
}

// NewLoggingAnswerer creates a new LoggingAnswerer.
func NewLoggingAnswerer(next sitechat.Answerer, logger *slog.Logger) *LoggingAnswerer {
	return &LoggingAnswerer{next: next, logger: logger}
}

// Answer delegates to the wrapped answerer and logs which path produced the reply.
func (a *LoggingAnswerer) Answer(ctx context.Context, question string, history sitechat.History) (reply *sitechat.Reply, err error) {
	defer func(begin time.Time) {
		var outcome sitechat.Outcome
		if reply != nil {
			outcome = reply.Outcome
		}
		a.logger.Info("answer",
			"history", len(history),
			"outcome", outcome,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return a.next.Answer(ctx, question, history)
}
