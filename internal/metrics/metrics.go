// Package metrics exposes Prometheus instrumentation for the demo service.
package metrics

import (
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/valyala/fasthttp"
	"github.com/valyala/fasthttp/fasthttpadaptor"
)

var (
	responsesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "respond_demo_responses_total",
		Help: "Responses emitted, partitioned by envelope kind.",
	}, []string{"method", "path", "kind"})

	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "respond_demo_request_duration_seconds",
		Help:    "Request handling time in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path"})
)

// RecordResponse tracks one finished request and the envelope kind its
// status code maps to.
func RecordResponse(method, path string, statusCode int, duration time.Duration) {
	normalized := NormalizePath(path)
	responsesTotal.WithLabelValues(method, normalized, KindForStatus(statusCode)).Inc()
	requestDuration.WithLabelValues(method, normalized).Observe(duration.Seconds())
}

// KindForStatus maps an HTTP status class onto the envelope kind the
// handlers emit for it: 4xx responses carry fail envelopes, 5xx error
// envelopes, everything else success.
func KindForStatus(statusCode int) string {
	switch {
	case statusCode >= 500:
		return "error"
	case statusCode >= 400:
		return "fail"
	default:
		return "success"
	}
}

// NormalizePath collapses per-entity path segments so metric cardinality
// stays bounded.
func NormalizePath(path string) string {
	if strings.HasPrefix(path, "/api/v1/notes/") {
		return "/api/v1/notes/:id"
	}
	return path
}

// Handler serves the Prometheus scrape endpoint on a fasthttp server.
func Handler() fasthttp.RequestHandler {
	return fasthttpadaptor.NewFastHTTPHandler(promhttp.Handler())
}
