package rate_limiter

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// RateLimitExceededTotal: route - шаблон mux-роута, как в http_requests_total.
var RateLimitExceededTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "bakeryops",
		Name:      "rate_limit_exceeded_total",
		Help:      "Dashboard API requests rejected by the token bucket",
	},
	[]string{"method", "route"},
)
