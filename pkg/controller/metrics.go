package controller

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// HTTPMetrics records request counts and latencies per route through an
// OpenTelemetry meter.
type HTTPMetrics struct {
	duration metric.Float64Histogram
	inFlight metric.Int64UpDownCounter
}

// NewHTTPMetrics creates the instruments on a meter taken from mp.
func NewHTTPMetrics(mp metric.MeterProvider) (*HTTPMetrics, error) {
	meter := mp.Meter("brandkit/pkg/controller")

	duration, err := meter.Float64Histogram("http.server.request.duration",
		metric.WithDescription("Duration of HTTP server requests."),
		metric.WithUnit("s"))
	if err != nil {
		return nil, err //nolint: wrapcheck
	}
	inFlight, err := meter.Int64UpDownCounter("http.server.active_requests",
		metric.WithDescription("Number of active HTTP server requests."),
		metric.WithUnit("{request}"))
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	return &HTTPMetrics{duration: duration, inFlight: inFlight}, nil
}

// Middleware must be installed on a chi router so the matched route pattern
// is known once the handler returns. Unmatched requests are recorded with an
// empty route.
func (m *HTTPMetrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		method := attribute.String("http.request.method", r.Method)

		m.inFlight.Add(ctx, 1, metric.WithAttributes(method))
		defer m.inFlight.Add(ctx, -1, metric.WithAttributes(method))

		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		route := ""
		if rctx := chi.RouteContext(ctx); rctx != nil {
			route = rctx.RoutePattern()
		}
		m.duration.Record(ctx, time.Since(start).Seconds(), metric.WithAttributes(
			method,
			attribute.String("http.route", route),
			attribute.String("http.response.status_code", strconv.Itoa(rec.status)),
		))
	})
}
