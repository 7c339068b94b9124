// Package metrics registers Prometheus instrumentation for the pipeline.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Deliveries counts inbound webhook deliveries by event type and outcome
	// (delivered, filtered, failed, rejected).
	Deliveries = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "webhook_deliveries_total",
		Help: "Inbound webhook deliveries by event type and outcome.",
	}, []string{"event", "result"})

	// Sends counts outbound Telegram sendMessage calls by outcome.
	Sends = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "telegram_sends_total",
		Help: "Outbound Telegram sends by outcome.",
	}, []string{"result"})

	// SendDuration observes outbound send latency.
	SendDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "telegram_send_duration_seconds",
		Help:    "Latency of Telegram sendMessage calls.",
		Buckets: prometheus.DefBuckets,
	})
)
