package dispatch

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	DispatchPublishTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dispatch_publish_total",
			Help: "Total number of assignment requests published to Kafka",
		},
		[]string{"topic", "result"},
	)

	DispatchPublishDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "dispatch_publish_duration_seconds",
			Help:    "Duration of synchronous publish of assignment requests",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5},
		},
		[]string{"topic"},
	)
)
