// Package metrics holds the Prometheus collectors shared by the upstream API
// clients.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// DefaultBuckets provides a common set of histogram buckets in seconds that can
// be reused across the application for latency metrics.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals

var (
	// UpstreamRequestDuration observes every HTTP request sent to a third-party
	// API, labelled by upstream, endpoint template and status code ("error"
	// when no response was received).
	UpstreamRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{ //nolint: gochecknoglobals
		Namespace: "brandkit",
		Subsystem: "upstream",
		Name:      "request_duration_seconds",
		Help:      "Duration of requests sent to third-party APIs.",
		Buckets:   DefaultBuckets,
	}, []string{"upstream", "endpoint", "status"})

	// UpstreamRetries counts retries performed after a failed upstream call.
	UpstreamRetries = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint: gochecknoglobals
		Namespace: "brandkit",
		Subsystem: "upstream",
		Name:      "retries_total",
		Help:      "Number of retried requests to third-party APIs.",
	}, []string{"upstream", "endpoint"})

	// PresetRecords counts records created or skipped by bulk DNS presets.
	PresetRecords = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint: gochecknoglobals
		Namespace: "brandkit",
		Subsystem: "dns",
		Name:      "preset_records_total",
		Help:      "Records attempted by DNS presets, by preset and result.",
	}, []string{"preset", "result"})
)

// ObserveUpstream records a finished upstream request. A zero status means
// the request failed before a response was received.
func ObserveUpstream(upstream, endpoint string, status int, started time.Time) {
	label := "error"
	if status > 0 {
		label = strconv.Itoa(status)
	}
	UpstreamRequestDuration.WithLabelValues(upstream, endpoint, label).Observe(time.Since(started).Seconds())
}
