package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "portfolio_http_requests_total",
		Help: "HTTP requests by method, route and status.",
	}, []string{"method", "route", "status"})

	HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "portfolio_http_request_duration_seconds",
		Help:    "HTTP request latency.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})

	CacheRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "portfolio_cache_requests_total",
		Help: "Cache lookups by entity cache and result (hit, miss, error).",
	}, []string{"cache", "result"})

	AuthEvents = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "portfolio_auth_events_total",
		Help: "Authentication events by kind and outcome.",
	}, []string{"event", "outcome"})
)

func Handler() http.Handler {
	return promhttp.Handler()
}
