// File: mempool/pool.go
// Author: momentics <momentics@gmail.com>
//
// Pool façade: mutex-guarded alloc/free/release/counters enforcing the
// magic-marker invariants (base spec §4.3). Grounded in
// file_mempool.cc's FileMemPool, generalised to idiomatic Go: explicit
// error returns instead of logged-and-ignored C++ error paths, a
// constructor that always returns a safe-to-use Pool.

package mempool

import (
	"fmt"
	"log"
	"sync"
)

// Pool is a fixed-capacity, mutex-guarded slot pool (base spec §3/§4).
// Every public operation is safe to call concurrently from any goroutine.
type Pool struct {
	mu sync.Mutex

	slab     *Slab
	free     *ringQueue
	released *releasedQueue

	capacity uint64
	slotSize int
	total    uint64
	numaNode int
	verify   bool
	closed   bool
}

// New constructs a Pool of capacity slots, each slotSize bytes (must be at
// least 8, to hold the free-marker). A zero capacity or a slotSize below 8
// leaves the Pool in the degenerate state described by base spec §3
// Lifecycle: usable, but every Alloc fails and every counter reads zero.
//
// New always returns a non-nil, safe-to-use Pool; the error return exists
// so a caller that wants fail-fast construction can check it, without
// forcing every caller to nil-check a degenerate Pool (SPEC_FULL.md §5).
func New(capacity uint64, slotSize int, opts ...Option) (*Pool, error) {
	cfg := defaultOptions()
	for _, o := range opts {
		o(cfg)
	}

	p := &Pool{
		free:     newRingQueue(capacity),
		released: newReleasedQueue(capacity),
		verify:   cfg.verifyOnOp,
		numaNode: cfg.numaNode,
	}

	if capacity == 0 || slotSize < 8 {
		return p, ErrInvalidArgument.WithContext("capacity", capacity).WithContext("slotSize", slotSize)
	}

	slab, err := newSlab(capacity, slotSize, cfg.numaNode)
	if err != nil {
		return p, ErrInternal.WithContext("reason", err.Error())
	}

	var installed uint64
	for i := uint64(0); i < capacity; i++ {
		s := slab.slot(i)
		s.stampFree()
		if !p.free.push(s) {
			log.Printf("mempool: free queue init stopped early at slot %d of %d", i, capacity)
			break
		}
		installed++
	}

	p.slab = slab
	p.capacity = capacity
	p.slotSize = slotSize
	p.total = installed
	return p, nil
}

// NUMANode returns the NUMA node preference recorded at construction.
func (p *Pool) NUMANode() int {
	return p.numaNode
}

// Capacity returns the configured capacity N.
func (p *Pool) Capacity() uint64 {
	return p.capacity
}

// SlotSize returns the configured slot size S.
func (p *Pool) SlotSize() int {
	return p.slotSize
}

// Alloc pops a slot from the Free queue, falling back to the Released
// queue on empty (base spec §4.3.2). It returns (Slot{}, false) if both
// are empty (Exhausted, §7). The magic is zeroed before the slot is
// returned, so the slot reads as in-use and can be handed straight back to
// Free or Release without the caller writing to it first.
func (p *Pool) Alloc() (Slot, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.total == 0 {
		return Slot{}, false
	}

	s, ok := p.free.pop()
	if !ok {
		s, ok = p.released.pop()
		if !ok {
			return Slot{}, false
		}
	}

	if !s.isFree() {
		log.Printf("mempool: corruption detected on alloc: slot at offset %d missing free magic", s.off)
	}
	clear(s.header())

	return s, true
}

// Free returns slot via the synchronous path (base spec §4.3.3). Intended
// to be called from the same goroutine that called Alloc.
func (p *Pool) Free(s Slot) error {
	return p.removeTo(p.free, s)
}

// Release returns slot via the cross-thread path (base spec §4.3.4).
// Identical semantics to Free, routed to a separate queue so an allocator
// draining Free never contends with an asynchronous releaser.
func (p *Pool) Release(s Slot) error {
	return p.removeTo(p.released, s)
}

// removeTo implements the shared subroutine behind Free/Release (§4.3.5).
// Unlike the C++ source, which pushes before checking for double-free, this
// checks first: a slot that fails the double-free check is never enqueued
// (base spec §9, "Open questions" — check-then-push adopted).
func (p *Pool) removeTo(q slotQueue, s Slot) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !s.valid() {
		return ErrInvalidSlot
	}
	if s.isFree() {
		return ErrDoubleFree
	}
	if !q.push(s) {
		// Under the stated invariants this is unreachable: the queue
		// was sized to the pool's capacity. Still surfaced as a
		// distinct failure rather than silently dropping the slot.
		log.Printf("mempool: return queue full, rejecting slot at offset %d", s.off)
		return ErrQueueFull
	}
	s.stampFree()

	if p.verify {
		if err := p.verifyLocked(); err != nil {
			log.Printf("mempool: verify failed after return: %v", err)
		}
	}
	return nil
}

// Counters returns a single consistent snapshot of allocated/freed/released
// (base spec §4.3.6).
func (p *Pool) Counters() (allocated, freed, released uint64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.countersLocked()
}

func (p *Pool) countersLocked() (allocated, freed, released uint64) {
	f := uint64(p.free.used())
	r := uint64(p.released.used())
	return p.total - f - r, f, r
}

// Allocated returns the number of slots currently held by callers.
func (p *Pool) Allocated() uint64 {
	a, _, _ := p.Counters()
	return a
}

// Freed returns the number of slots currently in the Free queue.
func (p *Pool) Freed() uint64 {
	_, f, _ := p.Counters()
	return f
}

// Released returns the number of slots currently in the Released queue.
func (p *Pool) Released() uint64 {
	_, _, r := p.Counters()
	return r
}

// Verify asserts the queue-size invariants from base spec §4.3.8. It has
// no observable effect on pool state and is safe to call at any time.
func (p *Pool) Verify() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.verifyLocked()
}

func (p *Pool) verifyLocked() error {
	freeUsed := uint64(p.free.used())
	relUsed := uint64(p.released.used())

	if freeUsed > p.capacity {
		return fmt.Errorf("mempool: free queue overflow: %d > capacity %d", freeUsed, p.capacity)
	}
	if relUsed > p.capacity {
		return fmt.Errorf("mempool: released queue overflow: %d > capacity %d", relUsed, p.capacity)
	}
	if freeUsed+relUsed > p.total {
		return fmt.Errorf("mempool: queues exceed total: %d+%d > %d", freeUsed, relUsed, p.total)
	}
	return nil
}

// Close releases the slab. It is a precondition that no operation is in
// flight (base spec §4.3.7 / §5 Reentrancy); Close is idempotent.
func (p *Pool) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return nil
	}
	p.closed = true
	return p.slab.close()
}
