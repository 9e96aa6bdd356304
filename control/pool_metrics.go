// control/pool_metrics.go
// Author: momentics <momentics@gmail.com>
//
// Prometheus-backed gauges for the pool's three counters, grounded in the
// MetricsRegistry shape above but backed by
// github.com/prometheus/client_golang — the metrics library the wider
// example pack (NVIDIA-aistore, deepfabric-elasticell) reaches for,
// adopted here for the same ambient "observability" concern the teacher's
// own registry only half-implements (an in-memory map with no scrape
// surface).

package control

import "github.com/prometheus/client_golang/prometheus"

// PoolCounters is satisfied by *mempool.Pool without control importing the
// mempool package's types directly into its public surface.
type PoolCounters interface {
	Counters() (allocated, freed, released uint64)
}

// PoolMetrics exposes a pool's Allocated/Freed/Released counters as
// Prometheus gauges on a dedicated registry.
type PoolMetrics struct {
	registry *prometheus.Registry

	allocated prometheus.Gauge
	freed     prometheus.Gauge
	released  prometheus.Gauge
}

// NewPoolMetrics creates gauges registered under the "filemempool_pool_"
// namespace.
func NewPoolMetrics() *PoolMetrics {
	reg := prometheus.NewRegistry()

	pm := &PoolMetrics{
		registry: reg,
		allocated: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "filemempool_pool_allocated",
			Help: "Slots currently held by callers.",
		}),
		freed: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "filemempool_pool_freed",
			Help: "Slots currently in the Free queue.",
		}),
		released: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "filemempool_pool_released",
			Help: "Slots currently in the Released queue.",
		}),
	}
	reg.MustRegister(pm.allocated, pm.freed, pm.released)
	return pm
}

// Registry returns the underlying Prometheus registry for HTTP exposition.
func (pm *PoolMetrics) Registry() *prometheus.Registry {
	return pm.registry
}

// Collect reads a consistent snapshot from the pool and updates the
// gauges. Intended to be called on a short ticker from cmd/filemempoolctl,
// not from inside the pool's own critical section.
func (pm *PoolMetrics) Collect(p PoolCounters) {
	a, f, r := p.Counters()
	pm.allocated.Set(float64(a))
	pm.freed.Set(float64(f))
	pm.released.Set(float64(r))
}
