package healthcheck_head

import (
	"context"
	"net/http"
	"sync/atomic"
	"time"
)

const probeTimeout = 2 * time.Second

// Pinger - зависимость, без которой инстанс не готов принимать трафик.
type Pinger interface {
	Ping(ctx context.Context) error
}

// PingFunc адаптирует функцию к Pinger, например redis.Client.Ping(ctx).Err.
type PingFunc func(ctx context.Context) error

func (f PingFunc) Ping(ctx context.Context) error {
	return f(ctx)
}

type Handler struct {
	isShuttingDown *atomic.Bool
	probes         []Pinger
}

func New(isShuttingDown *atomic.Bool, probes ...Pinger) *Handler {
	return &Handler{
		isShuttingDown: isShuttingDown,
		probes:         probes,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.isShuttingDown.Load() {
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), probeTimeout)
	defer cancel()

	for _, probe := range h.probes {
		if err := probe.Ping(ctx); err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
	}
	w.WriteHeader(http.StatusNoContent)
}
