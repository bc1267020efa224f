// Package metrics holds the counters exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "carwash"

// OrdersRegisteredTotal counts service orders created.
// Label:
//   - status: the status the order was registered with (e.g. "PENDIENTE")
var OrdersRegisteredTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "orders_registered_total",
		Help:      "Total number of service orders registered, by initial status.",
	},
	[]string{"status"},
)

// ExitTimeFallbackTotal counts orders whose exit time could not be derived
// from the entry time and was set equal to it.
var ExitTimeFallbackTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "order_exit_time_fallback_total",
		Help:      "Orders registered with hora_salida copied from hora_entrada.",
	},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "invalid_credentials"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// EarningsComputedTotal counts earnings calculations served.
var EarningsComputedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "earnings_computed_total",
		Help:      "Total number of washer earnings calculations.",
	},
)

// SessionsPurgedTotal counts token records removed by the purge job.
var SessionsPurgedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sessions_purged_total",
		Help:      "Token records deleted by the scheduled purge.",
	},
)

// HTTPRequestsTotal counts served requests.
// Labels:
//   - method: HTTP method
//   - route: the matched route pattern, not the raw path
//   - code: response status code
var HTTPRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests, by method, route and status code.",
	},
	[]string{"method", "route", "code"},
)

// HTTPRequestDuration measures handler latency per route.
var HTTPRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Duration of HTTP requests.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"method", "route"},
)
