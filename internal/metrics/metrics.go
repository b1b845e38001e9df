// Package metrics holds the prometheus collectors exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	BackendRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "internhub",
		Name:      "backend_requests_total",
		Help:      "Backend API calls by method and response status.",
	}, []string{"method", "status"})

	BackendLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "internhub",
		Name:      "backend_request_duration_seconds",
		Help:      "Backend API call latency.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method"})

	SessionsExpired = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "internhub",
		Name:      "sessions_expired_total",
		Help:      "Live sessions cleared because the backend answered 401 or 403.",
	})

	SessionsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "internhub",
		Name:      "sessions_created_total",
		Help:      "Sessions started by login or register.",
	})
)
