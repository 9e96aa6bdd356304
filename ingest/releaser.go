// File: ingest/releaser.go
// Author: momentics <momentics@gmail.com>
//
// Releaser simulates a completion callback firing on a different thread
// than the allocator — the cross-thread return path base spec §4.3.4 and
// §9's "Two-queue asymmetry" exist for.

package ingest

import (
	"log"
	"time"

	"github.com/momentics/filemempool/control"
	"github.com/momentics/filemempool/mempool"
)

// Releaser drains in and returns each slot via Pool.Release. Any number of
// Releasers may run concurrently against the same pool.
type Releaser struct {
	pool    *mempool.Pool
	in      <-chan mempool.Slot
	metrics *control.MetricsRegistry
}

// NewReleaser builds a Releaser for pool reading from in. metrics may be
// nil; when non-nil, Run records release throughput and the latency of
// each Pool.Release call into it.
func NewReleaser(pool *mempool.Pool, in <-chan mempool.Slot, metrics *control.MetricsRegistry) *Releaser {
	return &Releaser{pool: pool, in: in, metrics: metrics}
}

func (r *Releaser) record(key string, value any) {
	if r.metrics != nil {
		r.metrics.Set(key, value)
	}
}

// Run blocks until in is closed or stop fires.
func (r *Releaser) Run(stop <-chan struct{}) {
	var released uint64
	for {
		select {
		case s, ok := <-r.in:
			if !ok {
				return
			}
			start := time.Now()
			if err := r.pool.Release(s); err != nil {
				log.Printf("ingest: release failed: %v", err)
				continue
			}
			released++
			r.record("ingest.releaser.released_total", released)
			r.record("ingest.releaser.last_release_latency_ns", time.Since(start).Nanoseconds())
		case <-stop:
			return
		}
	}
}
