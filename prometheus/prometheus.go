// Package prometheus exposes answering metrics with the Prometheus client.
package prometheus

import (
	"context"
	"net/http"
	"time"

	"github.com/fwojciec/sitechat"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// outcomeError labels answers that failed with an error.
const outcomeError = "error"

// Metrics holds the collectors for answering.
type Metrics struct {
	answers  *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		answers: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sitechat_answers_total",
				Help: "Total number of answered questions by outcome",
			},
			[]string{"outcome"},
		),
		duration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "sitechat_answer_duration_seconds",
				Help:    "Duration of answering a question in seconds",
				Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
			},
			[]string{"outcome"},
		),
	}
}

// Handler returns an HTTP handler serving the metrics gathered by g.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}

// Ensure Answerer implements sitechat.Answerer.
var _ sitechat.Answerer = (*Answerer)(nil)

// Answerer wraps an Answerer and records each answer's outcome and duration.
type Answerer struct {
	next    sitechat.Answerer
	metrics *Metrics
}

// NewAnswerer creates a new Answerer.
func NewAnswerer(next sitechat.Answerer, metrics *Metrics) *Answerer {
	return &Answerer{next: next, metrics: metrics}
}

// Answer delegates to the wrapped answerer.
func (a *Answerer) Answer(ctx context.Context, question string, history sitechat.History) (reply *sitechat.Reply, err error) {
	defer func(begin time.Time) {
		outcome := outcomeError
		if err == nil && reply != nil {
			outcome = string(reply.Outcome)
		}
		a.metrics.answers.WithLabelValues(outcome).Inc()
		a.metrics.duration.WithLabelValues(outcome).Observe(time.Since(begin).Seconds())
	}(time.Now())
	return a.next.Answer(ctx, question, history)
}
