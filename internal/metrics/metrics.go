// Package metrics defines Prometheus metrics for the market watch backend.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "mlw"

// HTTP metrics.
var (
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Duration of HTTP requests in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests, split by caller identity.",
	}, []string{"method", "path", "status", "caller"})

	HTTPRequestsInFlight = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "http_requests_in_flight",
		Help:      "Number of HTTP requests currently being served. Long-lived notification streams hold this up.",
	})
)

// Health gauges, set from probe results.
var (
	HealthzUp = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "healthz_up",
		Help:      "1 if the last liveness probe succeeded, 0 otherwise.",
	})

	ReadyzUp = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "readyz_up",
		Help:      "1 if the last readiness probe succeeded, 0 otherwise.",
	})
)

// Feed metrics.
var (
	FeedPollDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "feed_poll_duration_seconds",
		Help:      "Duration of snapshot feed poll cycles in seconds.",
		Buckets:   prometheus.DefBuckets,
	})

	FeedPollErrorsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "feed_poll_errors_total",
		Help:      "Total number of failed feed poll cycles.",
	})

	FeedSnapshotsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "feed_snapshots_total",
		Help:      "Total number of product snapshots delivered by the feed.",
	})
)

// Change detection metrics.
var (
	ChangeEventsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "change_events_total",
		Help:      "Total number of change events emitted, by kind.",
	}, []string{"kind"})

	WatchedEntities = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "watched_entities",
		Help:      "Number of entities in the active watch-set across sessions.",
	})
)

// Notification metrics.
var (
	NotificationsCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_created_total",
		Help:      "Total number of notification items persisted.",
	})

	NotificationsDedupedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_deduped_total",
		Help:      "Total number of change events dropped by the idempotency key.",
	})

	PushFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "push_failures_total",
		Help:      "Total number of failed push deliveries.",
	})

	PushThrottledTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "push_throttled_total",
		Help:      "Total number of pushes rejected by the daily quota.",
	})

	PushDailyRemaining = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "push_daily_remaining",
		Help:      "Pushes left in the current 24-hour quota window.",
	})

	PersistenceFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "persistence_failures_total",
		Help:      "Total number of failed notification store writes.",
	})
)

// System state gauges, synced periodically from the store.
var (
	FavoritesTotal = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "favorites_total",
		Help:      "Total number of favorite entries.",
	})

	NotificationsUnread = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "notifications_unread",
		Help:      "Total number of unread notification items.",
	})
)
