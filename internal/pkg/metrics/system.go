package metrics

import (
	"context"
	"runtime"
	"time"

	"bakeryops/pkg/logger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
)

const (
	namespace       = "bakeryops"
	collectInterval = 5 * time.Second
	cpuSampleWindow = time.Second
)

var (
	SystemCPUUsage = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "system_cpu_usage_percent",
			Help:      "Host CPU usage percentage",
		},
	)

	SystemMemoryUsage = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "system_memory_usage_bytes",
			Help:      "Host memory usage in bytes",
		},
	)

	ApplicationMemoryUsage = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "application_heap_alloc_bytes",
			Help:      "Go heap allocation of the dashboard process",
		},
	)

	ApplicationGoroutines = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "application_goroutines",
			Help:      "Number of live goroutines, includes background tasks and in-flight requests",
		},
	)
)

type collectorLogger interface {
	Debug(msg string, fields ...logger.Field)
}

// StartSystemMetricsCollector опрашивает хост раз в collectInterval до отмены ctx.
func StartSystemMetricsCollector(ctx context.Context, log collectorLogger) {
	go func() {
		ticker := time.NewTicker(collectInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				collectSystemMetrics(ctx, log)
			}
		}
	}()
}

func collectSystemMetrics(ctx context.Context, log collectorLogger) {
	cpuPercent, err := cpu.PercentWithContext(ctx, cpuSampleWindow, false)
	switch {
	case err != nil:
		log.Debug("collect cpu usage", logger.NewField("error", err))
	case len(cpuPercent) > 0:
		SystemCPUUsage.Set(cpuPercent[0])
	}

	vmStat, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		log.Debug("collect memory usage", logger.NewField("error", err))
	} else {
		SystemMemoryUsage.Set(float64(vmStat.Used))
	}

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	ApplicationMemoryUsage.Set(float64(m.HeapAlloc))
	ApplicationGoroutines.Set(float64(runtime.NumGoroutine()))
}
