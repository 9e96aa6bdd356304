// File: mempool/released_queue.go
// Author: momentics <momentics@gmail.com>
//
// Released-path queue: the cross-thread return FIFO (base spec §4.2,
// §4.3.4, §9 "Two-queue asymmetry"). Wraps github.com/eapache/queue, which
// the teacher's go.mod already requires but never imports anywhere in the
// tree — this is its home now. eapache/queue is an unbounded, auto-growing
// ring; the pool's hard cap of exactly N is enforced externally by
// checking Length() before every push, since the spec requires a fixed
// capacity the underlying library does not provide on its own.

package mempool

import "github.com/eapache/queue"

type releasedQueue struct {
	q   *queue.Queue
	cap uint64
}

func newReleasedQueue(capacity uint64) *releasedQueue {
	return &releasedQueue{q: queue.New(), cap: capacity}
}

func (r *releasedQueue) push(s Slot) bool {
	if uint64(r.q.Length()) >= r.cap {
		return false
	}
	r.q.Add(s)
	return true
}

func (r *releasedQueue) pop() (Slot, bool) {
	if r.q.Length() == 0 {
		return Slot{}, false
	}
	v := r.q.Remove()
	s, _ := v.(Slot)
	return s, true
}

func (r *releasedQueue) used() int {
	return r.q.Length()
}

func (r *releasedQueue) capacity() int {
	return int(r.cap)
}

var _ slotQueue = (*releasedQueue)(nil)
