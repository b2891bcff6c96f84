package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/sitechat"
)

// Ensure LoggingRetriever implements sitechat.Retriever.
var _ sitechat.Retriever = (*LoggingRetriever)(nil)

// LoggingRetriever wraps a Retriever with logging.
type LoggingRetriever struct {
	next   sitechat.Retriever
	logger *slog.Logger
}

// NewLoggingRetriever creates a new LoggingRetriever.
func NewLoggingRetriever(next sitechat.Retriever, logger *slog.Logger) *LoggingRetriever {
	return &LoggingRetriever{next: next, logger: logger}
}

// Retrieve delegates to the wrapped retriever and logs the best distance.
func (r *LoggingRetriever) Retrieve(ctx context.Context, query string) (matches []sitechat.Match, err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"matches", len(matches),
			"duration", time.Since(begin),
			"err", err,
		}
		if len(matches) > 0 {
			attrs = append(attrs, "best", matches[0].Distance)
		}
		r.logger.Info("retrieve", attrs...)
	}(time.Now())
	return r.next.Retrieve(ctx, query)
}
