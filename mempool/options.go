package mempool

// options carries construction-time tuning for New. New copies these into
// the Pool, which reads the verifier toggle on every Free/Release and
// reports the NUMA preference via NUMANode; both may also be surfaced
// through control.PoolConfig for operators, but the Pool never mutates its
// own capacity (base spec Non-goals: "growing the pool dynamically").
type options struct {
	verifyOnOp bool
	numaNode   int
}

func defaultOptions() *options {
	return &options{numaNode: -1}
}

// Option configures Pool construction.
type Option func(*options)

// WithVerify runs the debug verifier (§4.3.8) after every Free/Release.
// Intended for tests and development builds: it adds O(1) bookkeeping
// checks under the mutex, never growth or I/O.
func WithVerify(enabled bool) Option {
	return func(o *options) { o.verifyOnOp = enabled }
}

// WithNUMANode records a NUMA node preference. The slab itself does not
// pin pages to a node; the preference is exposed via Pool.NUMANode for
// NUMA-aware callers. ingest.Allocator does not read it: it takes its core
// number as a constructor argument.
func WithNUMANode(node int) Option {
	return func(o *options) { o.numaNode = node }
}
