package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTPRequestsTotal counts handled HTTP requests by method, route and status.
var HTTPRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "currency_service_http_requests_total",
		Help: "Total number of HTTP requests handled.",
	},
	[]string{"method", "route", "status"},
)

// HTTPRequestDuration observes request latency by method and route.
var HTTPRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "currency_service_http_request_duration_seconds",
		Help:    "HTTP request latency.",
		Buckets: prometheus.DefBuckets,
	},
	[]string{"method", "route"},
)

// RateRefreshTotal counts refresh attempts by outcome ("success"/"failure").
var RateRefreshTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "currency_service_rate_refresh_total",
		Help: "Total number of exchange rate refresh attempts.",
	},
	[]string{"outcome"},
)
