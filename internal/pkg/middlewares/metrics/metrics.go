package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "bakeryops",
			Name:      "http_request_duration_seconds",
			Help:      "Dashboard API request latency",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "bakeryops",
			Name:      "http_requests_total",
			Help:      "Total number of dashboard API requests",
		},
		[]string{"method", "route", "status"},
	)
)
