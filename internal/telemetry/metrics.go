package telemetry

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus collectors for one benchmark run.
type Metrics struct {
	registry *prometheus.Registry

	ExecutionSeconds  *prometheus.GaugeVec
	MemoryUsedMB      *prometheus.GaugeVec
	MeasurementsTotal prometheus.Counter
}

// NewMetrics creates and registers the benchmark collectors on a private registry.
func NewMetrics() *Metrics {
	m := &Metrics{registry: prometheus.NewRegistry()}

	m.ExecutionSeconds = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "sortbench_execution_seconds",
			Help: "Wall-clock time of a single sort run in seconds",
		},
		[]string{"algorithm", "size"},
	)

	m.MemoryUsedMB = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "sortbench_memory_used_mb",
			Help: "Memory delta (final - initial) observed around a sort run in MB",
		},
		[]string{"algorithm", "size"},
	)

	m.MeasurementsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "sortbench_measurements_total",
			Help: "Total number of measurements taken",
		},
	)

	m.registry.MustRegister(
		m.ExecutionSeconds,
		m.MemoryUsedMB,
		m.MeasurementsTotal,
	)

	return m
}

// Observe records one measurement.
func (m *Metrics) Observe(algorithm string, size int, seconds, memoryUsedMB float64) {
	label := strconv.Itoa(size)
	m.ExecutionSeconds.WithLabelValues(algorithm, label).Set(seconds)
	m.MemoryUsedMB.WithLabelValues(algorithm, label).Set(memoryUsedMB)
	m.MeasurementsTotal.Inc()
}

// WriteTextfile writes all collected metrics in the Prometheus text format.
func (m *Metrics) WriteTextfile(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("failed to write metrics to %s: %w", path, err)
	}
	return nil
}
