// Package metrics declares the Prometheus collectors of the service.
// Collectors register with the default registry on package init and are
// served by promhttp on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "platrr"

var (
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "HTTP requests by method, route template and status code.",
	}, []string{"method", "path", "status"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency by method and route template.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "path"})

	AttendanceTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "attendance_transitions_total",
		Help:      "Attendance state machine steps by transition (clock-in, clock-out, none).",
	}, []string{"transition"})

	MutationFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "mutation_failures_total",
		Help:      "Failed gateway writes by collection and operation.",
	}, []string{"collection", "operation"})

	FeedSubscriptions = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "feed_subscriptions",
		Help:      "Open live collection subscriptions.",
	})

	FeedSnapshots = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "feed_snapshots_total",
		Help:      "Snapshots delivered to subscribers by collection.",
	}, []string{"collection"})

	NoticesSent = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notices_total",
		Help:      "User-facing notices by level.",
	}, []string{"level"})
)
