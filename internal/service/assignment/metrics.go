package assignment

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	AssignmentAttemptsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "assignment_attempts_total",
			Help: "Total number of courier assignment attempts by result",
		},
		[]string{"result"},
	)

	AssignmentResolutionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "assignment_resolutions_total",
			Help: "Total number of resolved assignment attempts by final state",
		},
		[]string{"state"},
	)
)
