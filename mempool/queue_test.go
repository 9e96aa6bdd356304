package mempool

import "testing"

func TestRingQueue_FIFOAndCapacity(t *testing.T) {
	q := newRingQueue(3)
	if q.capacity() != 3 {
		t.Fatalf("capacity = %d, want 3", q.capacity())
	}

	slab := &Slab{data: make([]byte, 3*16), stride: 16}
	s0, s1, s2 := slab.slot(0), slab.slot(1), slab.slot(2)

	if !q.push(s0) || !q.push(s1) || !q.push(s2) {
		t.Fatal("push failed within capacity")
	}
	if q.push(slab.slot(0)) {
		t.Fatal("push succeeded past capacity")
	}
	if q.used() != 3 {
		t.Fatalf("used = %d, want 3", q.used())
	}

	for _, want := range []Slot{s0, s1, s2} {
		got, ok := q.pop()
		if !ok || got != want {
			t.Fatalf("pop = (%v,%v), want (%v,true)", got, ok, want)
		}
	}
	if _, ok := q.pop(); ok {
		t.Fatal("pop succeeded on empty queue")
	}
}

func TestRingQueue_WrapAround(t *testing.T) {
	q := newRingQueue(2)
	slab := &Slab{data: make([]byte, 2*16), stride: 16}
	a, b, c := slab.slot(0), slab.slot(1), slab.slot(0)

	q.push(a)
	q.push(b)
	q.pop()
	q.push(c)

	got, ok := q.pop()
	if !ok || got != b {
		t.Fatalf("expected b after wraparound, got %v ok=%v", got, ok)
	}
	got, ok = q.pop()
	if !ok || got != c {
		t.Fatalf("expected c after wraparound, got %v ok=%v", got, ok)
	}
}

func TestReleasedQueue_CapacityEnforcedExternally(t *testing.T) {
	rq := newReleasedQueue(2)
	slab := &Slab{data: make([]byte, 3*16), stride: 16}

	if !rq.push(slab.slot(0)) || !rq.push(slab.slot(1)) {
		t.Fatal("push failed within capacity")
	}
	if rq.push(slab.slot(2)) {
		t.Fatal("push succeeded past configured capacity")
	}
	if rq.used() != 2 {
		t.Fatalf("used = %d, want 2", rq.used())
	}
	if _, ok := rq.pop(); !ok {
		t.Fatal("pop failed on non-empty queue")
	}
	if rq.used() != 1 {
		t.Fatalf("used after pop = %d, want 1", rq.used())
	}
}
