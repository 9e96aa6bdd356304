// File: ingest/allocator.go
// Author: momentics <momentics@gmail.com>
//
// Allocator simulates the packet-processor thread, grounded in
// server/hioload.go's worker-goroutine shape: a single goroutine looping a
// blocking-ish acquire and handing results downstream.

package ingest

import (
	"log"
	"time"

	"github.com/momentics/filemempool/affinity"
	"github.com/momentics/filemempool/control"
	"github.com/momentics/filemempool/mempool"
)

// Allocator repeatedly calls Pool.Alloc and forwards each acquired slot to
// out. On exhaustion it backs off briefly rather than busy-spinning under
// the pool's mutex.
type Allocator struct {
	pool    *mempool.Pool
	out     chan<- mempool.Slot
	cpu     int
	pinned  bool
	metrics *control.MetricsRegistry
}

// NewAllocator builds an Allocator for pool. If cpu >= 0, Run pins its
// goroutine's OS thread to that core before looping (affinity.SetAffinity),
// matching the NUMA-locality rationale in base spec §4.1. metrics may be
// nil; when non-nil, Run records exhaustion backoff and alloc throughput
// into it (the "derived timing" diagnostics control.MetricsRegistry holds
// alongside the Prometheus pool counters).
func NewAllocator(pool *mempool.Pool, out chan<- mempool.Slot, cpu int, metrics *control.MetricsRegistry) *Allocator {
	return &Allocator{pool: pool, out: out, cpu: cpu, pinned: cpu >= 0, metrics: metrics}
}

func (a *Allocator) record(key string, value any) {
	if a.metrics != nil {
		a.metrics.Set(key, value)
	}
}

// Run blocks until stop is closed. It is safe to run at most one Allocator
// per channel if ordering of hand-off matters to the caller; the pool
// itself tolerates any number of concurrent allocators.
func (a *Allocator) Run(stop <-chan struct{}) {
	if a.pinned {
		if err := affinity.SetAffinity(a.cpu); err != nil {
			log.Printf("ingest: allocator affinity pin to cpu %d failed: %v", a.cpu, err)
		}
	}

	const maxBackoff = 10 * time.Millisecond
	backoff := time.Millisecond
	var allocs uint64

	for {
		select {
		case <-stop:
			return
		default:
		}

		s, ok := a.pool.Alloc()
		if !ok {
			a.record("ingest.allocator.backoff_ns", int64(backoff))
			time.Sleep(backoff)
			if backoff < maxBackoff {
				backoff *= 2
				if backoff > maxBackoff {
					backoff = maxBackoff
				}
			}
			continue
		}
		backoff = time.Millisecond
		allocs++
		a.record("ingest.allocator.allocs_total", allocs)

		select {
		case a.out <- s:
		case <-stop:
			return
		}
	}
}
