package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/sitechat"
)

// Ensure LoggingGenerator implements sitechat.Generator.
var _ sitechat.Generator = (*LoggingGenerator)(nil)

// LoggingGenerator wraps a Generator with logging.
type LoggingGenerator struct {
	next   sitechat.Generator
	logger *slog.Logger
}

// NewLoggingGenerator creates a new LoggingGenerator.
func NewLoggingGenerator(next sitechat.Generator, logger *slog.Logger) *LoggingGenerator {
	return &LoggingGenerator{next: next, logger: logger}
}

// Generate delegates to the wrapped generator and logs message and reply sizes.
func (g *LoggingGenerator) Generate(ctx context.Context, messages []sitechat.Message) (reply string, err error) {
	defer func(begin time.Time) {
		g.logger.Info("generate",
			"messages", len(messages),
			"chars", len(reply),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return g.next.Generate(ctx, messages)
}
